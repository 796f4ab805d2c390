package types

import "time"

// RuleKind is the closed set of declarable rule kinds
type RuleKind int

const (
	Root          RuleKind = iota // Root is the top-level builder, never declared directly
	Subcommand                    // Subcommand descends into a nested rule context
	Flag                          // Flag records presence (or an occurrence count)
	Parameter                     // Parameter consumes exactly one value token
	Argument                      // Argument consumes one positional token
	Arguments                     // Arguments collects all remaining positional tokens
	DefaultAction                 // DefaultAction supplies the action of its parent context
	PrimaryOption                 // PrimaryOption short-circuits resolution when present anywhere
)

// String returns the string representation of a RuleKind
func (k RuleKind) String() string {
	switch k {
	case Root:
		return "root"
	case Subcommand:
		return "subcommand"
	case Flag:
		return "flag"
	case Parameter:
		return "parameter"
	case Argument:
		return "argument"
	case Arguments:
		return "arguments"
	case DefaultAction:
		return "default action"
	case PrimaryOption:
		return "primary option"
	}
	return "unknown"
}

// IsKeyword returns true for kinds triggered by a keyword token
func (k RuleKind) IsKeyword() bool {
	switch k {
	case Subcommand, Flag, Parameter, PrimaryOption:
		return true
	}
	return false
}

// IsParent returns true for kinds which may own child rules
func (k RuleKind) IsParent() bool {
	switch k {
	case Root, Subcommand, PrimaryOption:
		return true
	}
	return false
}

// IsValue returns true for kinds which carry a value into a Binding
func (k RuleKind) IsValue() bool {
	switch k {
	case Flag, Parameter, Argument, Arguments:
		return true
	}
	return false
}

// ValueType is the declared type of a parameter or positional value
type ValueType int

const (
	Any      ValueType = iota // Any is only meaningful for action slots and skips type checks
	String                    // String keeps the raw token
	Int                       // Int accepts decimal integer literals
	Float                     // Float accepts floating point literals
	Bool                      // Bool accepts strconv.ParseBool literals
	Choice                    // Choice accepts one of a declared set of strings
	Time                      // Time accepts any layout understood by dateparse
	Duration                  // Duration accepts time.ParseDuration literals
	Custom                    // Custom values are converted by a user supplied parser
)

// String returns the string representation of a ValueType
func (v ValueType) String() string {
	switch v {
	case Any:
		return "any"
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Choice:
		return "choice"
	case Time:
		return "time"
	case Duration:
		return "duration"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// Zero returns the zero value bound for an absent value of this type
func (v ValueType) Zero() any {
	switch v {
	case Int:
		return 0
	case Float:
		return float64(0)
	case Bool:
		return false
	case Time:
		return time.Time{}
	case Duration:
		return time.Duration(0)
	case String, Choice:
		return ""
	}
	return nil
}

// TokenClass is the classification decision for one input token
type TokenClass int

const (
	Unrecognized      TokenClass = iota // Unrecognized looks like an option but matches no rule
	SubcommandKeyword                   // SubcommandKeyword descends into a sub-command
	FlagKeyword                         // FlagKeyword sets one flag
	CombinedFlags                       // CombinedFlags sets several single-letter flags (-vf)
	ParameterKeyword                    // ParameterKeyword consumes this token and a value
	PrimaryKeyword                      // PrimaryKeyword triggers a primary option
	PositionalValue                     // PositionalValue fills an argument slot
	EndOfOptions                        // EndOfOptions is the "--" separator
)

// String returns the string representation of a TokenClass
func (c TokenClass) String() string {
	switch c {
	case Unrecognized:
		return "unrecognized"
	case SubcommandKeyword:
		return "subcommand-keyword"
	case FlagKeyword:
		return "flag-keyword"
	case CombinedFlags:
		return "combined-flags"
	case ParameterKeyword:
		return "parameter-keyword"
	case PrimaryKeyword:
		return "primary-keyword"
	case PositionalValue:
		return "positional-value"
	case EndOfOptions:
		return "end-of-options"
	}
	return "unknown"
}

// Mode selects how strictly a resolution pass treats incomplete input
type Mode int

const (
	Strict  Mode = iota // Strict reports every resolution error
	Lenient             // Lenient suppresses errors so an incomplete prefix still yields a state
)

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
