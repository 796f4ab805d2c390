package cliglue

import (
	"slices"
	"strings"

	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
	"github.com/napalu/cliglue/types/orderedmap"
)

// Bind converts the raw values of res to their declared types and returns the Binding handed
// to the selected action. Conversion failures and values outside strict choices are reported
// as a TypeCoercionError naming the rule.
func (t *Tree) Bind(res *Resolution) (*Binding, error) {
	values := orderedmap.NewOrderedMap[string, any]()
	for _, f := range res.scope() {
		for _, ci := range t.nodes[f].children {
			if !t.nodes[ci].rule.kind.IsValue() {
				continue
			}
			raw, matched := res.values.Get(ci)
			v, bound, err := t.bindValue(ci, raw, matched)
			if err != nil {
				return nil, err
			}
			name := t.nodes[ci].bindName
			if values.Has(name) && !matched {
				continue
			}
			if bound {
				values.Set(name, v)
			} else {
				values.Delete(name)
			}
		}
	}

	if res.action != nil {
		values = res.action.restrict(values)
	}

	return &Binding{
		tree:    t,
		frames:  res.frames,
		values:  values,
		action:  res.action,
		args:    res.args,
		primary: res.primaryKeyword,
	}, nil
}

func (t *Tree) bindValue(idx int, raw []string, matched bool) (any, bool, error) {
	rule := t.nodes[idx].rule

	switch rule.kind {
	case types.Flag:
		if rule.multiple {
			return len(raw), true, nil
		}
		return matched, true, nil
	case types.Parameter, types.Argument:
		if !matched {
			return rule.defaultVal, rule.hasDefault, nil
		}
		if rule.kind == types.Parameter && rule.multiple {
			v, err := t.coerceList(rule, raw)
			return v, err == nil, err
		}
		v, err := t.coerce(rule, raw[len(raw)-1])
		return v, err == nil, err
	case types.Arguments:
		if !matched {
			return rule.defaultVal, rule.hasDefault, nil
		}
		if rule.joined {
			for _, value := range raw {
				if err := t.checkChoice(rule, value); err != nil {
					return nil, false, err
				}
			}
			return strings.Join(raw, rule.joinedWith), true, nil
		}
		v, err := t.coerceList(rule, raw)
		return v, err == nil, err
	}

	return nil, false, nil
}

func (t *Tree) coerce(rule *Rule, value string) (any, error) {
	if err := t.checkChoice(rule, value); err != nil {
		return nil, err
	}
	v, err := t.convert(rule, value)
	if err != nil {
		return nil, errs.NewTypeCoercionError(rule.DisplayName(), value, rule.valueType, err)
	}

	return v, nil
}

func (t *Tree) coerceList(rule *Rule, values []string) (any, error) {
	for _, value := range values {
		if err := t.checkChoice(rule, value); err != nil {
			return nil, err
		}
	}
	if rule.parser == nil {
		v, failed, err := util.CoerceList(values, rule.valueType)
		if err != nil {
			return nil, errs.NewTypeCoercionError(rule.DisplayName(), values[failed], rule.valueType, err)
		}
		return v, nil
	}

	out := make([]any, 0, len(values))
	for _, value := range values {
		v, err := t.convert(rule, value)
		if err != nil {
			return nil, errs.NewTypeCoercionError(rule.DisplayName(), value, rule.valueType, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func (t *Tree) convert(rule *Rule, value string) (any, error) {
	if rule.parser != nil {
		return rule.parser(value)
	}

	return util.Coerce(value, rule.valueType)
}

func (t *Tree) checkChoice(rule *Rule, value string) error {
	if !rule.strictChoices() || len(rule.choices) == 0 || slices.Contains(rule.choices, value) {
		return nil
	}

	return errs.NewInvalidChoiceError(rule.DisplayName(), value, strings.Join(rule.choices, ", "))
}
