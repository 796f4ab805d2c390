// Package errs holds the error taxonomy of cliglue. Every error is translatable through the i18n
// bundle and matches its sentinel under errors.Is.
package errs

import (
	"github.com/napalu/cliglue/i18n"
	"github.com/napalu/cliglue/types"
)

// Definition errors, raised by Build
var (
	ErrDefinition         = i18n.NewError(types.ErrDefinitionKey)
	ErrDuplicateKeyword   = i18n.NewError(types.ErrDuplicateKeywordKey)
	ErrDuplicateCollector = i18n.NewError(types.ErrDuplicateCollectorKey)
	ErrDuplicateBinding   = i18n.NewError(types.ErrDuplicateBindingKey)
	ErrChildrenNotAllowed = i18n.NewError(types.ErrChildrenNotAllowedKey)
	ErrMissingKeyword     = i18n.NewError(types.ErrMissingKeywordKey)
	ErrMissingName        = i18n.NewError(types.ErrMissingNameKey)
	ErrInvalidOption      = i18n.NewError(types.ErrInvalidOptionKey)
	ErrUnsatisfiedSlot    = i18n.NewError(types.ErrUnsatisfiedSlotKey)
	ErrSlotTypeMismatch   = i18n.NewError(types.ErrSlotTypeMismatchKey)
	ErrInvalidCount       = i18n.NewError(types.ErrInvalidCountKey)
)

// Resolution errors
var (
	ErrUnrecognizedToken = i18n.NewError(types.ErrUnrecognizedTokenKey)
	ErrMissingParameter  = i18n.NewError(types.ErrMissingParameterKey)
	ErrMissingParamValue = i18n.NewError(types.ErrMissingParamValueKey)
	ErrMissingArgument   = i18n.NewError(types.ErrMissingArgumentKey)
	ErrTooFewArguments   = i18n.NewError(types.ErrTooFewArgumentsKey)
	ErrTypeCoercion      = i18n.NewError(types.ErrTypeCoercionKey)
	ErrInvalidChoice     = i18n.NewError(types.ErrInvalidChoiceKey)
	ErrNoAction          = i18n.NewError(types.ErrNoActionKey)
)

// Shell integration errors
var (
	ErrCompletionScript    = i18n.NewError(types.ErrCompletionScriptKey)
	ErrUnsupportedShell    = i18n.NewError(types.ErrUnsupportedShellKey)
	ErrLanguageUnavailable = i18n.NewError(types.ErrLanguageUnavailableKey)
)

// DefinitionError reports an inconsistent rule tree. It matches ErrDefinition as well as the
// sentinel describing the concrete problem.
type DefinitionError struct {
	Rule string
	*i18n.TrError
}

// NewDefinitionError builds a DefinitionError about rule from one of the definition sentinels
func NewDefinitionError(sentinel *i18n.TrError, rule string, args ...interface{}) *DefinitionError {
	return &DefinitionError{Rule: rule, TrError: sentinel.WithArgs(args...)}
}

func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition || e.TrError.Is(target)
}

// UnrecognizedTokenError reports a token no active rule accepts
type UnrecognizedTokenError struct {
	Token string
	Path  string
	*i18n.TrError
}

// NewUnrecognizedTokenError builds an UnrecognizedTokenError for token seen under path
func NewUnrecognizedTokenError(token, path string) *UnrecognizedTokenError {
	return &UnrecognizedTokenError{Token: token, Path: path, TrError: ErrUnrecognizedToken.WithArgs(token)}
}

// MissingParameterError reports a required parameter which is absent, or a parameter keyword
// without its value. Both variants match ErrMissingParameter.
type MissingParameterError struct {
	Parameter string
	*i18n.TrError
}

// NewMissingParameterError reports an absent required parameter
func NewMissingParameterError(parameter string) *MissingParameterError {
	return &MissingParameterError{Parameter: parameter, TrError: ErrMissingParameter.WithArgs(parameter)}
}

// NewMissingParamValueError reports a parameter keyword which is the last token
func NewMissingParamValueError(parameter string) *MissingParameterError {
	return &MissingParameterError{Parameter: parameter, TrError: ErrMissingParamValue.WithArgs(parameter)}
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter || e.TrError.Is(target)
}

// MissingArgumentError reports an unfilled required positional argument, or a collector which
// received fewer values than its minimum. Both variants match ErrMissingArgument.
type MissingArgumentError struct {
	Argument string
	*i18n.TrError
}

// NewMissingArgumentError reports an unfilled required argument
func NewMissingArgumentError(argument string) *MissingArgumentError {
	return &MissingArgumentError{Argument: argument, TrError: ErrMissingArgument.WithArgs(argument)}
}

// NewTooFewArgumentsError reports a collector holding got values where want are required
func NewTooFewArgumentsError(argument string, want, got int) *MissingArgumentError {
	return &MissingArgumentError{Argument: argument, TrError: ErrTooFewArguments.WithArgs(want, argument, got)}
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument || e.TrError.Is(target)
}

// TypeCoercionError reports a raw value which cannot be converted to the declared type of rule.
// Values outside a strict choice set are reported the same way and match ErrTypeCoercion.
type TypeCoercionError struct {
	Rule  string
	Value string
	*i18n.TrError
}

// NewTypeCoercionError wraps the conversion failure cause
func NewTypeCoercionError(rule, value string, valueType types.ValueType, cause error) *TypeCoercionError {
	tr := ErrTypeCoercion.WithArgs(value, valueType.String(), rule)
	if cause != nil {
		tr = tr.Wrap(cause)
	}
	return &TypeCoercionError{Rule: rule, Value: value, TrError: tr}
}

// NewInvalidChoiceError reports value as being outside choices
func NewInvalidChoiceError(rule, value, choices string) *TypeCoercionError {
	return &TypeCoercionError{Rule: rule, Value: value, TrError: ErrInvalidChoice.WithArgs(value, rule, choices)}
}

func (e *TypeCoercionError) Is(target error) bool {
	return target == ErrTypeCoercion || e.TrError.Is(target)
}

// NoActionError reports a resolved path with no action to run
type NoActionError struct {
	Path string
	*i18n.TrError
}

// NewNoActionError builds a NoActionError for path
func NewNoActionError(path string) *NoActionError {
	return &NoActionError{Path: path, TrError: ErrNoAction.WithArgs(path)}
}
