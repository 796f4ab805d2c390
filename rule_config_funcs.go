package cliglue

import (
	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
)

// allowedFor reports whether rule is of one of kinds. Otherwise it stores a DefinitionError
// naming option in err.
func allowedFor(rule *Rule, err *error, option string, kinds ...types.RuleKind) bool {
	for _, k := range kinds {
		if rule.kind == k {
			return true
		}
	}
	*err = errs.NewDefinitionError(errs.ErrInvalidOption, rule.DisplayName(), option, rule.kind.String())

	return false
}

// WithHelp sets the text shown for the rule in help output
func WithHelp(help string) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithHelp", types.Subcommand, types.Flag, types.Parameter,
			types.Argument, types.Arguments, types.PrimaryOption) {
			rule.help = help
		}
	}
}

// WithType sets the value type of a parameter, an argument or a collector. Values which cannot
// be converted fail resolution with a TypeCoercionError. types.Choice implies strict choices.
func WithType(valueType types.ValueType) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithType", types.Parameter, types.Argument, types.Arguments) {
			rule.valueType = valueType
			rule.typeSet = true
		}
	}
}

// WithParser converts the values of a parameter, an argument or a collector with parser. The
// value type becomes types.Custom; a collector binds []any.
func WithParser(parser ValueParser) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if !allowedFor(rule, err, "WithParser", types.Parameter, types.Argument, types.Arguments) {
			return
		}
		if parser == nil {
			*err = errs.NewDefinitionError(errs.ErrInvalidOption, rule.DisplayName(), "WithParser(nil)", rule.kind.String())
			return
		}
		rule.parser = parser
		rule.valueType = types.Custom
		rule.typeSet = true
	}
}

// SetRequired makes a parameter mandatory, or an argument optional when false
func SetRequired(required bool) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "SetRequired", types.Parameter, types.Argument) {
			rule.required = &required
		}
	}
}

// WithDefault sets the value bound when the rule is not matched. The value is bound as is and
// should have the Go type of the rule's value type.
func WithDefault(value any) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithDefault", types.Parameter, types.Argument, types.Arguments) {
			rule.defaultVal = value
			rule.hasDefault = true
		}
	}
}

// SetMultiple lets a parameter accumulate every occurrence into a slice, or a flag count its
// occurrences
func SetMultiple(multiple bool) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "SetMultiple", types.Flag, types.Parameter) {
			rule.multiple = multiple
		}
	}
}

// WithChoices sets the values proposed by completion
func WithChoices(choices ...string) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithChoices", types.Parameter, types.Argument, types.Arguments) {
			rule.choices = append(rule.choices, choices...)
		}
	}
}

// WithChoiceFunc sets a provider computing completion proposals from the current word
func WithChoiceFunc(provider ChoiceProvider) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithChoiceFunc", types.Parameter, types.Argument, types.Arguments) {
			rule.choiceFunc = provider
		}
	}
}

// SetStrictChoices rejects values outside the static choices with a TypeCoercionError
func SetStrictChoices(strict bool) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "SetStrictChoices", types.Parameter, types.Argument, types.Arguments) {
			rule.strict = strict
		}
	}
}

// WithName overrides the binding name of a flag or a parameter (derived from the longest
// keyword by default), or renames a positional rule
func WithName(name string) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithName", types.Flag, types.Parameter, types.Argument, types.Arguments) {
			rule.name = name
		}
	}
}

// WithAliases adds keywords
func WithAliases(aliases ...string) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if !allowedFor(rule, err, "WithAliases", types.Subcommand, types.Flag, types.Parameter, types.PrimaryOption) {
			return
		}
		for _, alias := range aliases {
			if rule.kind == types.Flag || rule.kind == types.Parameter {
				alias = util.NormalizeKeyword(alias)
			}
			rule.keywords = append(rule.keywords, alias)
		}
	}
}

// WithRun sets the action of a sub-command or a primary option
func WithRun(action *Action) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithRun", types.Subcommand, types.PrimaryOption) {
			rule.action = action
		}
	}
}

// WithCount makes a collector take exactly count values
func WithCount(count int) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithCount", types.Arguments) {
			rule.count = count
		}
	}
}

// WithMinCount sets the minimum number of values of a collector
func WithMinCount(minCount int) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithMinCount", types.Arguments) {
			rule.minCount = minCount
		}
	}
}

// WithMaxCount sets the maximum number of values of a collector
func WithMaxCount(maxCount int) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "WithMaxCount", types.Arguments) {
			rule.maxCount = maxCount
		}
	}
}

// SetJoinedWith binds the values of a collector as one string joined with separator
func SetJoinedWith(separator string) ConfigureRuleFunc {
	return func(rule *Rule, err *error) {
		if allowedFor(rule, err, "SetJoinedWith", types.Arguments) {
			rule.joinedWith = separator
			rule.joined = true
		}
	}
}
