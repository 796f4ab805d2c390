// Package types provides common type definitions for the cliglue library.
// This file contains constants for all translation keys used throughout the library.
package types

// Prefix for all cliglue translation keys
const (
	PrefixKey = "cliglue"
)

const (
	ErrorPrefixKey   = PrefixKey + ".error"
	MessagePrefixKey = PrefixKey + ".msg"
	HelpPrefixKey    = PrefixKey + ".help"
)

// Resolution and definition errors
const (
	ErrDefinitionKey          = ErrorPrefixKey + ".definition"
	ErrDuplicateKeywordKey    = ErrorPrefixKey + ".duplicate_keyword"
	ErrDuplicateCollectorKey  = ErrorPrefixKey + ".duplicate_collector"
	ErrDuplicateBindingKey    = ErrorPrefixKey + ".duplicate_binding"
	ErrChildrenNotAllowedKey  = ErrorPrefixKey + ".children_not_allowed"
	ErrMissingKeywordKey      = ErrorPrefixKey + ".missing_keyword"
	ErrMissingNameKey         = ErrorPrefixKey + ".missing_name"
	ErrInvalidOptionKey       = ErrorPrefixKey + ".invalid_option_for_kind"
	ErrUnsatisfiedSlotKey     = ErrorPrefixKey + ".unsatisfied_slot"
	ErrSlotTypeMismatchKey    = ErrorPrefixKey + ".slot_type_mismatch"
	ErrInvalidCountKey        = ErrorPrefixKey + ".invalid_count"
	ErrUnrecognizedTokenKey   = ErrorPrefixKey + ".unrecognized_token"
	ErrMissingParameterKey    = ErrorPrefixKey + ".missing_parameter"
	ErrMissingParamValueKey   = ErrorPrefixKey + ".missing_parameter_value"
	ErrMissingArgumentKey     = ErrorPrefixKey + ".missing_argument"
	ErrTooFewArgumentsKey     = ErrorPrefixKey + ".too_few_arguments"
	ErrTypeCoercionKey        = ErrorPrefixKey + ".type_coercion"
	ErrInvalidChoiceKey       = ErrorPrefixKey + ".invalid_choice"
	ErrNoActionKey            = ErrorPrefixKey + ".no_action"
	ErrCompletionScriptKey    = ErrorPrefixKey + ".completion_script"
	ErrUnsupportedShellKey    = ErrorPrefixKey + ".unsupported_shell"
	ErrLanguageUnavailableKey = ErrorPrefixKey + ".language_unavailable"
)

// UIMessages contains keys for user interface messages
const (
	MsgOptionalKey       = MessagePrefixKey + ".optional"
	MsgRequiredKey       = MessagePrefixKey + ".required"
	MsgDefaultsToKey     = MessagePrefixKey + ".defaults_to"
	MsgInstalledKey      = MessagePrefixKey + ".completion_installed"
	MsgHelpOptionKey     = MessagePrefixKey + ".help_option"
	MsgVersionOptionKey  = MessagePrefixKey + ".version_option"
	MsgInstallOptionKey  = MessagePrefixKey + ".install_option"
	MsgCompleteOptionKey = MessagePrefixKey + ".autocomplete_option"
	MsgShellOptionKey    = MessagePrefixKey + ".shell_option"
)

// Help message keys
const (
	HelpUsageKey    = HelpPrefixKey + ".usage"
	HelpOptionsKey  = HelpPrefixKey + ".options"
	HelpCommandsKey = HelpPrefixKey + ".commands"
	HelpFooterKey   = HelpPrefixKey + ".footer"
)
