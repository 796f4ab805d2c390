package cliglue

import (
	"strings"

	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
)

// Complete returns the proposals for the last word of tokens, which may be empty or partial.
// The other tokens are resolved leniently: errors are suppressed, values are not converted and
// primary options do not short-circuit. Proposals are filtered on the last word (case
// sensitive), kept in declaration order and free of duplicates.
func (t *Tree) Complete(tokens []string) []string {
	word := ""
	prefix := tokens
	if len(tokens) > 0 {
		word = tokens[len(tokens)-1]
		prefix = tokens[:len(tokens)-1]
	}

	r, err := t.resolve(prefix, types.Lenient, false)
	if err != nil {
		t.logger.Debug("completion prefix did not resolve", "error", err)
	}

	var candidates []string
	if r.awaiting != noNode {
		candidates = t.nodes[r.awaiting].rule.hints(word)
	} else if inline, ok := r.inlineCandidates(word); ok {
		candidates = inline
	} else {
		candidates = r.candidates(word)
	}

	filtered := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(c, word) {
			filtered = append(filtered, c)
		}
	}

	return util.Dedupe(filtered)
}

// inlineCandidates proposes --keyword=choice when word is --keyword=partial for a parameter
func (r *Resolution) inlineCandidates(word string) ([]string, bool) {
	if r.optionsEnded || !strings.HasPrefix(word, "-") {
		return nil, false
	}
	kw, partial, found := strings.Cut(word, "=")
	if !found {
		return nil, false
	}
	idx, ok := r.tree.lookup(r.frames, kw)
	if !ok || r.tree.nodes[idx].rule.kind != types.Parameter {
		return nil, false
	}

	hints := r.tree.nodes[idx].rule.hints(partial)
	candidates := make([]string, 0, len(hints))
	for _, h := range hints {
		candidates = append(candidates, kw+"="+h)
	}

	return candidates, true
}

// candidates lists sub-commands of the deepest frame, then the flags, parameters and primary
// options in scope (deepest frame first), then hints for the next positional slot
func (r *Resolution) candidates(word string) []string {
	var candidates []string

	if !r.optionsEnded {
		deepest := r.frames[len(r.frames)-1]
		for _, ci := range r.tree.nodes[deepest].children {
			if rule := r.tree.nodes[ci].rule; rule.kind == types.Subcommand {
				candidates = append(candidates, rule.keywords...)
			}
		}
		for i := len(r.frames) - 1; i >= 0; i-- {
			for _, ci := range r.tree.nodes[r.frames[i]].children {
				switch rule := r.tree.nodes[ci].rule; rule.kind {
				case types.Flag, types.Parameter, types.PrimaryOption:
					candidates = append(candidates, rule.keywords...)
				}
			}
		}
	}

	if slot := r.nextArgument(); slot != noNode {
		candidates = append(candidates, r.tree.nodes[slot].rule.hints(word)...)
	} else if collector := r.openCollector(); collector != noNode {
		candidates = append(candidates, r.tree.nodes[collector].rule.hints(word)...)
	}

	return candidates
}
