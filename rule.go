package cliglue

import (
	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
)

func newRule(kind types.RuleKind, keywords []string, name string, configs []ConfigureRuleFunc) *Rule {
	r := &Rule{
		kind:      kind,
		keywords:  append([]string(nil), keywords...),
		name:      name,
		valueType: types.String,
		count:     -1,
		minCount:  -1,
		maxCount:  -1,
	}
	if kind == types.Flag || kind == types.Parameter {
		for i, kw := range r.keywords {
			r.keywords[i] = util.NormalizeKeyword(kw)
		}
	}
	for _, config := range configs {
		if r.err != nil {
			break
		}
		config(r, &r.err)
	}

	return r
}

// Subcommand declares a sub-command triggered by any of keywords. Rules attached with Has
// apply only once the sub-command has been matched.
func Subcommand(keywords []string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.Subcommand, keywords, "", configs)
}

// Flag declares a presence flag. Keywords without dashes are normalised (v -> -v, verbose ->
// --verbose). With SetMultiple(true) the flag counts its occurrences.
func Flag(keywords []string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.Flag, keywords, "", configs)
}

// Parameter declares a keyword taking exactly one value, given as the next token or inline as
// --keyword=value.
func Parameter(keywords []string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.Parameter, keywords, "", configs)
}

// Argument declares one positional value. It is required unless it has a default or
// SetRequired(false) is used.
func Argument(name string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.Argument, nil, name, configs)
}

// Arguments declares a collector for the remaining positional values
func Arguments(name string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.Arguments, nil, name, configs)
}

// DefaultAction declares the action of its parent context
func DefaultAction(action *Action) *Rule {
	r := newRule(types.DefaultAction, nil, "", nil)
	r.action = action

	return r
}

// PrimaryOption declares an option which, present anywhere in the input, replaces normal
// resolution with its own action. Rules attached with Has consume the tokens which follow it.
func PrimaryOption(keywords []string, configs ...ConfigureRuleFunc) *Rule {
	return newRule(types.PrimaryOption, keywords, "", configs)
}

// Has attaches child rules and returns r for chaining. Only sub-commands and primary options
// may own children; Build reports anything else.
func (r *Rule) Has(children ...*Rule) *Rule {
	r.children = append(r.children, children...)
	return r
}

// Kind returns the rule kind
func (r *Rule) Kind() types.RuleKind {
	return r.kind
}

// Keywords returns the trigger keywords
func (r *Rule) Keywords() []string {
	return r.keywords
}

// Help returns the help text
func (r *Rule) Help() string {
	return r.help
}

// Children returns the attached rules
func (r *Rule) Children() []*Rule {
	return r.children
}

// DisplayName returns the name used in help output and error messages: the longest keyword for
// keyword rules, the declared name otherwise.
func (r *Rule) DisplayName() string {
	if r.kind.IsKeyword() {
		return util.LongestKeyword(r.keywords)
	}

	return r.name
}

// IsRequired reports whether resolution fails without a value for r
func (r *Rule) IsRequired() bool {
	switch r.kind {
	case types.Parameter:
		return r.required != nil && *r.required && !r.hasDefault
	case types.Argument:
		if r.required != nil {
			return *r.required && !r.hasDefault
		}
		return !r.hasDefault
	case types.Arguments:
		return r.minimum() > 0
	}

	return false
}

// boundType is the element type of the value r binds
func (r *Rule) boundType() types.ValueType {
	switch r.kind {
	case types.Flag:
		if r.multiple {
			return types.Int
		}
		return types.Bool
	case types.Arguments:
		if r.joined {
			return types.String
		}
	}

	return r.valueType
}

// bindsList reports whether r binds a slice: a repeatable parameter or a collector which is
// not joined
func (r *Rule) bindsList() bool {
	switch r.kind {
	case types.Parameter:
		return r.multiple
	case types.Arguments:
		return !r.joined
	}

	return false
}

func (r *Rule) strictChoices() bool {
	return r.strict || r.valueType == types.Choice
}

func (r *Rule) minimum() int {
	if r.count >= 0 {
		return r.count
	}
	if r.minCount >= 0 {
		return r.minCount
	}

	return 0
}

// maximum returns -1 when the collector is unbounded
func (r *Rule) maximum() int {
	if r.count >= 0 {
		return r.count
	}

	return r.maxCount
}

func (r *Rule) hints(current string) []string {
	hints := append([]string(nil), r.choices...)
	if r.choiceFunc != nil {
		hints = append(hints, r.choiceFunc(current)...)
	}

	return hints
}
