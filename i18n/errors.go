package i18n

import "fmt"

// TranslatableError is an error whose message is looked up in a Bundle by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
}

// TrError is a translatable sentinel. WithArgs and Wrap derive copies which still match the
// sentinel they were derived from under errors.Is:
//
//	var ErrNoAction = NewError("cliglue.error.no_action")
//	err := ErrNoAction.WithArgs("git remote")
//	errors.Is(err, ErrNoAction) // true
type TrError struct {
	origin  *TrError
	key     string
	args    []interface{}
	wrapped error
}

// NewError creates a sentinel for key
func NewError(key string) *TrError {
	e := &TrError{key: key}
	e.origin = e

	return e
}

func (e *TrError) derive(args []interface{}, wrapped error) *TrError {
	return &TrError{origin: e.origin, key: e.key, args: args, wrapped: wrapped}
}

// WithArgs returns a copy carrying the format arguments of the message
func (e *TrError) WithArgs(args ...interface{}) *TrError {
	return e.derive(args, e.wrapped)
}

// Wrap returns a copy wrapping cause
func (e *TrError) Wrap(cause error) *TrError {
	return e.derive(e.args, cause)
}

// Error renders the message in English
func (e *TrError) Error() string {
	msg := Default().T(e.key, e.args...)
	if e.wrapped == nil {
		return msg
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// Is matches copies derived from the same sentinel
func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	return ok && t.origin == e.origin
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.wrapped
}
