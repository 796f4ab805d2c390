package parse

import (
	"errors"
	"slices"
)

// State is the token cursor of one resolution pass
type State interface {
	Pos() int                            // Position of the current token
	Skip()                               // Advance past the current token
	CurrentArg() string                  // The current token, "" once Done
	ArgAt(pos int) (string, error)       // The token at pos
	RemoveArgAt(pos int) (string, error) // Remove the token at pos
	Done() bool                          // Whether every token has been consumed
	Len() int                            // Number of tokens left in the list
}

// ErrInvalidPosition is returned for positions outside the token list
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState works on a private copy of the tokens. The cursor starts on the first one.
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a State over a copy of args
func NewState(args []string) State {
	return &DefaultState{args: slices.Clone(args)}
}

func (s *DefaultState) Pos() int {
	return s.pos
}

func (s *DefaultState) Skip() {
	s.pos++
}

func (s *DefaultState) CurrentArg() string {
	if s.Done() {
		return ""
	}

	return s.args[s.pos]
}

func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// RemoveArgAt removes the token at pos. The cursor stays on the same token when pos lies
// before it.
func (s *DefaultState) RemoveArgAt(pos int) (string, error) {
	arg, err := s.ArgAt(pos)
	if err != nil {
		return "", err
	}
	s.args = slices.Delete(s.args, pos, pos+1)
	if pos < s.pos {
		s.pos--
	}

	return arg, nil
}

func (s *DefaultState) Done() bool {
	return s.pos >= len(s.args)
}

func (s *DefaultState) Len() int {
	return len(s.args)
}
