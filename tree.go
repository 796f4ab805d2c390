package cliglue

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
	"github.com/napalu/cliglue/types/orderedmap"
)

const noNode = -1

type node struct {
	rule      *Rule
	parent    int
	children  []int
	keywords  *orderedmap.OrderedMap[string, int]
	collector int
	bindName  string
}

// Tree is the compiled, immutable form of a rule declaration. Rules live in a flat arena linked
// by index; node 0 is the root. A Tree may be used by any number of concurrent passes.
type Tree struct {
	nodes    []node
	name     string
	fallback *Action
	logger   *slog.Logger
}

func compile(root *Rule, name string, fallback *Action, logger *slog.Logger) (*Tree, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t := &Tree{name: name, fallback: fallback, logger: logger}
	if _, err := t.add(root, noNode); err != nil {
		return nil, err
	}
	if err := t.checkActions(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tree) add(r *Rule, parent int) (int, error) {
	if r.err != nil {
		return noNode, r.err
	}

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		rule:      r,
		parent:    parent,
		keywords:  orderedmap.NewOrderedMap[string, int](),
		collector: noNode,
	})
	owner := t.name
	if parent != noNode {
		owner = t.pathName(t.chain(parent))
	}

	if err := t.checkRule(r, owner); err != nil {
		return noNode, err
	}
	if r.kind.IsValue() {
		name := r.name
		if name == "" {
			name = util.LongestKeyword(r.keywords)
		}
		t.nodes[idx].bindName = util.BindingName(name)
	}

	bound := make(map[string]bool)
	for _, child := range r.children {
		ci, err := t.add(child, idx)
		if err != nil {
			return noNode, err
		}
		n := &t.nodes[idx]
		n.children = append(n.children, ci)
		if name := t.nodes[ci].bindName; child.kind.IsValue() {
			if bound[name] {
				return noNode, errs.NewDefinitionError(errs.ErrDuplicateBinding, child.DisplayName(), name, t.pathName(t.chain(idx)))
			}
			bound[name] = true
		}
		if child.kind.IsKeyword() {
			for _, kw := range child.keywords {
				if n.keywords.Has(kw) {
					return noNode, errs.NewDefinitionError(errs.ErrDuplicateKeyword, kw, kw, t.pathName(t.chain(idx)))
				}
				n.keywords.Set(kw, ci)
			}
		}
		if child.kind == types.Arguments {
			if n.collector != noNode {
				return noNode, errs.NewDefinitionError(errs.ErrDuplicateCollector, child.name, t.pathName(t.chain(idx)))
			}
			n.collector = ci
		}
	}

	return idx, nil
}

func (t *Tree) checkRule(r *Rule, owner string) error {
	if len(r.children) > 0 && !r.kind.IsParent() {
		return errs.NewDefinitionError(errs.ErrChildrenNotAllowed, r.DisplayName(), r.kind.String(), r.DisplayName())
	}

	switch r.kind {
	case types.Subcommand, types.Flag, types.Parameter, types.PrimaryOption:
		if len(r.keywords) == 0 {
			return errs.NewDefinitionError(errs.ErrMissingKeyword, owner, r.kind.String(), owner)
		}
		for _, kw := range r.keywords {
			if kw == "" {
				return errs.NewDefinitionError(errs.ErrMissingKeyword, owner, r.kind.String(), owner)
			}
		}
	case types.Argument:
		if r.name == "" {
			return errs.NewDefinitionError(errs.ErrMissingName, owner, r.kind.String(), owner)
		}
	case types.Arguments:
		if r.name == "" {
			return errs.NewDefinitionError(errs.ErrMissingName, owner, r.kind.String(), owner)
		}
		if r.count < -1 || r.minCount < -1 || r.maxCount < -1 ||
			(r.minCount >= 0 && r.maxCount >= 0 && r.minCount > r.maxCount) {
			return errs.NewDefinitionError(errs.ErrInvalidCount, r.name, r.name)
		}
	case types.DefaultAction:
		if r.action == nil {
			return errs.NewDefinitionError(errs.ErrInvalidOption, owner, "DefaultAction(nil)", r.kind.String())
		}
	}

	return nil
}

// checkActions verifies that every required slot of every action can be satisfied by a value
// rule in scope of the node the action is attached to
func (t *Tree) checkActions() error {
	for idx := range t.nodes {
		r := t.nodes[idx].rule
		if r.action == nil {
			continue
		}
		scopeOwner := idx
		if r.kind == types.DefaultAction {
			scopeOwner = t.nodes[idx].parent
		}
		if err := t.checkSlots(r.action, t.chain(scopeOwner)); err != nil {
			return err
		}
	}
	if t.fallback != nil {
		return t.checkSlots(t.fallback, []int{0})
	}

	return nil
}

func (t *Tree) checkSlots(a *Action, frames []int) error {
	scope := t.valueScope(frames)
	for _, slot := range a.slots {
		idx, found := scope.Get(slot.Name)
		if !found {
			if slot.Required {
				return errs.NewDefinitionError(errs.ErrUnsatisfiedSlot, a.name, a.name, slot.Name, t.pathName(frames))
			}
			continue
		}
		rule := t.nodes[idx].rule
		bound, list := rule.boundType(), rule.bindsList()
		if !compatible(slot.Type, bound) || (slot.Type != types.Any && slot.List != list) {
			return errs.NewDefinitionError(errs.ErrSlotTypeMismatch, a.name, a.name, slot.Name, slot.String(), typeName(bound, list))
		}
	}

	return nil
}

func compatible(slot, bound types.ValueType) bool {
	if slot == types.Any || slot == bound {
		return true
	}
	str := func(v types.ValueType) bool { return v == types.String || v == types.Choice }

	return str(slot) && str(bound)
}

// valueScope maps binding names to the value rules visible from frames. Deeper frames shadow
// their ancestors.
func (t *Tree) valueScope(frames []int) *orderedmap.OrderedMap[string, int] {
	scope := orderedmap.NewOrderedMap[string, int]()
	for _, f := range frames {
		for _, ci := range t.nodes[f].children {
			if t.nodes[ci].rule.kind.IsValue() {
				scope.Set(t.nodes[ci].bindName, ci)
			}
		}
	}

	return scope
}

// chain returns the node indices from the root down to idx
func (t *Tree) chain(idx int) []int {
	var frames []int
	for i := idx; i != noNode; i = t.nodes[i].parent {
		frames = append(frames, i)
	}
	slices.Reverse(frames)

	return frames
}

// pathName renders frames as the program name followed by the first keyword of every frame
func (t *Tree) pathName(frames []int) string {
	parts := []string{t.name}
	for _, f := range frames {
		if f == 0 {
			continue
		}
		parts = append(parts, t.nodes[f].rule.keywords[0])
	}

	return strings.Join(parts, " ")
}

// effectiveAction is the run action of idx, or the action of its DefaultAction child
func (t *Tree) effectiveAction(idx int) *Action {
	n := t.nodes[idx]
	if n.rule.action != nil && n.rule.kind != types.DefaultAction {
		return n.rule.action
	}
	for _, ci := range n.children {
		if t.nodes[ci].rule.kind == types.DefaultAction {
			return t.nodes[ci].rule.action
		}
	}

	return nil
}

// Name returns the program name
func (t *Tree) Name() string {
	return t.name
}
