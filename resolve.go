package cliglue

import (
	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/internal/parse"
	"github.com/napalu/cliglue/types"
	"github.com/napalu/cliglue/types/orderedmap"
	"github.com/napalu/cliglue/types/queue"
)

type pendingToken struct {
	value  string
	dashed bool
}

// Resolution is the structural outcome of one pass over a token vector: the sub-command path,
// the raw values matched per rule and the selected action. Values are not converted yet, see
// Tree.Bind.
type Resolution struct {
	tree           *Tree
	mode           types.Mode
	args           []string
	frames         []int
	primaryFrames  []int
	values         *orderedmap.OrderedMap[int, []string]
	pending        *queue.Q[pendingToken]
	primary        int
	primaryKeyword string
	awaiting       int
	optionsEnded   bool
	action         *Action
}

// Resolve matches args against the tree. It fails with an UnrecognizedTokenError,
// a MissingParameterError, a MissingArgumentError or a NoActionError.
func (t *Tree) Resolve(args []string) (*Resolution, error) {
	return t.resolve(args, types.Strict, true)
}

func (t *Tree) resolve(args []string, mode types.Mode, allowPrimary bool) (*Resolution, error) {
	r := &Resolution{
		tree:     t,
		mode:     mode,
		args:     args,
		frames:   []int{0},
		values:   orderedmap.NewOrderedMap[int, []string](),
		pending:  queue.New[pendingToken](),
		primary:  noNode,
		awaiting: noNode,
	}

	state := parse.NewState(args)
	if err := r.consume(state, allowPrimary); err != nil {
		return r, err
	}
	if r.primary != noNode {
		return r, r.finishPrimary(state)
	}
	if err := r.checkRequired(r.frames); err != nil {
		return r, err
	}

	return r, r.selectAction()
}

// consume walks the tokens left in state. It stops early when a primary option is found.
func (r *Resolution) consume(state parse.State, allowPrimary bool) error {
	for !state.Done() {
		if allowPrimary && !r.optionsEnded && r.findPrimary(state) {
			return nil
		}

		token := state.CurrentArg()
		c := r.tree.classify(token, r.frames, r.optionsEnded)
		state.Skip()

		switch c.class {
		case types.EndOfOptions:
			r.optionsEnded = true
		case types.SubcommandKeyword:
			r.frames = append(r.frames, c.node)
			r.drain()
		case types.FlagKeyword:
			r.record(c.node, token)
		case types.PrimaryKeyword:
			r.record(c.node, token)
			// completion descends into the option's own rules
			if r.mode == types.Lenient && !allowPrimary && r.primary == noNode &&
				len(r.tree.nodes[c.node].children) > 0 {
				r.frames = append(r.frames, c.node)
				r.drain()
			}
		case types.CombinedFlags:
			for _, f := range c.flags {
				r.record(f, token)
			}
		case types.ParameterKeyword:
			value := c.value
			if !c.inline {
				if state.Done() {
					if r.mode == types.Lenient {
						r.awaiting = c.node
						return nil
					}
					return errs.NewMissingParamValueError(token)
				}
				value = state.CurrentArg()
				state.Skip()
			}
			r.record(c.node, value)
		default:
			r.pending.Enqueue(pendingToken{value: token, dashed: c.class == types.Unrecognized})
			r.drain()
		}
	}

	return nil
}

// findPrimary removes the first primary option keyword left in state, up to "--"
func (r *Resolution) findPrimary(state parse.State) bool {
	for pos := state.Pos(); pos < state.Len(); pos++ {
		token, _ := state.ArgAt(pos)
		if token == endOfOptions {
			return false
		}
		if idx, found := r.tree.isPrimary(r.frames, token); found {
			_, _ = state.RemoveArgAt(pos)
			r.primary = idx
			r.primaryKeyword = token
			r.tree.logger.Debug("primary option", "keyword", token, "path", r.tree.pathName(r.frames))
			return true
		}
	}

	return false
}

// finishPrimary resolves the tokens around a primary option. An option with children consumes
// them strictly against its own rules; any other option uses them leniently to find the context
// path (help for "app remote --help" is the help of remote).
func (r *Resolution) finishPrimary(state parse.State) error {
	prim := r.tree.nodes[r.primary]
	if len(prim.children) > 0 {
		base := len(r.frames)
		r.frames = append(r.frames, r.primary)
		err := r.consume(state, false)
		r.primaryFrames = append([]int(nil), r.frames[base:]...)
		r.frames = r.frames[:base]
		if err != nil {
			return err
		}
		if err := r.checkRequired(r.primaryFrames); err != nil {
			return err
		}
	} else {
		mode := r.mode
		r.mode = types.Lenient
		_ = r.consume(state, false)
		r.mode = mode
		r.pending.Clear()
	}

	if r.action = r.tree.effectiveAction(r.primary); r.action != nil {
		return nil
	}

	return r.selectAction()
}

// drain moves pending tokens into positional slots. Single arguments are filled first, deepest
// frame first and in declaration order; a collector only opens once every single argument in
// scope is filled. Unrecognized dash tokens are only accepted by a collector.
func (r *Resolution) drain() {
	r.pending.Drain(func(p pendingToken) bool {
		if slot := r.nextArgument(); slot != noNode {
			if p.dashed {
				return true
			}
			r.record(slot, p.value)
			return false
		}
		if collector := r.openCollector(); collector != noNode {
			r.record(collector, p.value)
			return false
		}
		return true
	})
}

func (r *Resolution) nextArgument() int {
	for i := len(r.frames) - 1; i >= 0; i-- {
		for _, ci := range r.tree.nodes[r.frames[i]].children {
			if r.tree.nodes[ci].rule.kind == types.Argument && !r.values.Has(ci) {
				return ci
			}
		}
	}

	return noNode
}

func (r *Resolution) openCollector() int {
	for i := len(r.frames) - 1; i >= 0; i-- {
		ci := r.tree.nodes[r.frames[i]].collector
		if ci == noNode {
			continue
		}
		limit := r.tree.nodes[ci].rule.maximum()
		if vals, _ := r.values.Get(ci); limit < 0 || len(vals) < limit {
			return ci
		}
	}

	return noNode
}

func (r *Resolution) record(idx int, value string) {
	vals, _ := r.values.Get(idx)
	r.values.Set(idx, append(vals, value))
}

// checkRequired enforces presence in strict mode: required parameters, required arguments and
// collector minimums in frames, then tokens nothing accepted
func (r *Resolution) checkRequired(frames []int) error {
	if r.mode != types.Strict {
		return nil
	}

	for _, f := range frames {
		for _, ci := range r.tree.nodes[f].children {
			rule := r.tree.nodes[ci].rule
			if rule.kind == types.Parameter && rule.IsRequired() && !r.values.Has(ci) {
				return errs.NewMissingParameterError(rule.DisplayName())
			}
		}
	}
	for _, f := range frames {
		for _, ci := range r.tree.nodes[f].children {
			rule := r.tree.nodes[ci].rule
			vals, _ := r.values.Get(ci)
			switch {
			case rule.kind == types.Argument && rule.IsRequired() && len(vals) == 0:
				return errs.NewMissingArgumentError(rule.name)
			case rule.kind == types.Arguments && len(vals) < rule.minimum():
				return errs.NewTooFewArgumentsError(rule.name, rule.minimum(), len(vals))
			}
		}
	}
	if p, found := r.pending.Front(); found {
		return errs.NewUnrecognizedTokenError(p.value, r.tree.pathName(r.frames))
	}

	return nil
}

// selectAction walks the path from the deepest frame up to the root and takes the first
// effective action, then the fallback
func (r *Resolution) selectAction() error {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if a := r.tree.effectiveAction(r.frames[i]); a != nil {
			r.action = a
			break
		}
	}
	if r.action == nil {
		r.action = r.tree.fallback
	}
	if r.action == nil {
		if r.mode == types.Strict {
			return errs.NewNoActionError(r.tree.pathName(r.frames))
		}
		return nil
	}
	r.tree.logger.Debug("resolved", "path", r.tree.pathName(r.frames), "action", r.action.name)

	return nil
}

// Action returns the selected action
func (r *Resolution) Action() *Action {
	return r.action
}

// Path returns the keywords of the sub-commands descended into
func (r *Resolution) Path() []string {
	path := make([]string, 0, len(r.frames))
	for _, f := range r.frames[1:] {
		path = append(path, r.tree.nodes[f].rule.keywords[0])
	}

	return path
}

// Primary returns the keyword of the primary option found, or ""
func (r *Resolution) Primary() string {
	return r.primaryKeyword
}

// Raw returns the raw values matched for the rule bound as name in the active scope
func (r *Resolution) Raw(name string) []string {
	idx, found := r.tree.valueScope(r.scope()).Get(name)
	if !found {
		return nil
	}
	vals, _ := r.values.Get(idx)

	return vals
}

func (r *Resolution) scope() []int {
	scope := make([]int, 0, len(r.frames)+len(r.primaryFrames))
	scope = append(scope, r.frames...)

	return append(scope, r.primaryFrames...)
}
