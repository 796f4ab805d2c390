package cliglue

import (
	"strings"

	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
)

const endOfOptions = "--"

// classification is the decision taken for one token
type classification struct {
	class  types.TokenClass
	node   int
	flags  []int
	value  string
	inline bool
}

// lookup finds the rule triggered by keyword in frames. The deepest frame offers every keyword
// child; its ancestors only lend their flags, parameters and primary options. Deeper frames
// shadow ancestors.
func (t *Tree) lookup(frames []int, keyword string) (int, bool) {
	for i := len(frames) - 1; i >= 0; i-- {
		idx, found := t.nodes[frames[i]].keywords.Get(keyword)
		if !found {
			continue
		}
		if i == len(frames)-1 || t.nodes[idx].rule.kind != types.Subcommand {
			return idx, true
		}
	}

	return noNode, false
}

// classify decides what token means in frames. Matching is exact: keywords are never completed
// from a prefix.
func (t *Tree) classify(token string, frames []int, optionsEnded bool) classification {
	if optionsEnded {
		return classification{class: types.PositionalValue, node: noNode}
	}
	if token == endOfOptions {
		return classification{class: types.EndOfOptions, node: noNode}
	}

	if idx, found := t.lookup(frames, token); found {
		switch t.nodes[idx].rule.kind {
		case types.PrimaryOption:
			return classification{class: types.PrimaryKeyword, node: idx}
		case types.Subcommand:
			return classification{class: types.SubcommandKeyword, node: idx}
		case types.Flag:
			return classification{class: types.FlagKeyword, node: idx}
		case types.Parameter:
			return classification{class: types.ParameterKeyword, node: idx}
		}
	}

	if !strings.HasPrefix(token, "-") || token == "-" {
		return classification{class: types.PositionalValue, node: noNode}
	}

	if kw, value, found := strings.Cut(token, "="); found {
		if idx, ok := t.lookup(frames, kw); ok && t.nodes[idx].rule.kind == types.Parameter {
			return classification{class: types.ParameterKeyword, node: idx, value: value, inline: true}
		}
	}

	if flags := t.combinedFlags(frames, token); flags != nil {
		return classification{class: types.CombinedFlags, node: noNode, flags: flags}
	}

	if util.IsNegativeNumber(token) {
		return classification{class: types.PositionalValue, node: noNode}
	}

	return classification{class: types.Unrecognized, node: noNode}
}

// combinedFlags splits -abc into the single-letter flags -a, -b and -c. Every letter has to be a
// declared flag, otherwise nil is returned.
func (t *Tree) combinedFlags(frames []int, token string) []int {
	if len(token) < 3 || strings.HasPrefix(token, "--") {
		return nil
	}

	var flags []int
	for _, letter := range token[1:] {
		idx, found := t.lookup(frames, "-"+string(letter))
		if !found || t.nodes[idx].rule.kind != types.Flag {
			return nil
		}
		flags = append(flags, idx)
	}

	return flags
}

// isPrimary reports whether token triggers a primary option visible from frames
func (t *Tree) isPrimary(frames []int, token string) (int, bool) {
	idx, found := t.lookup(frames, token)
	if !found || t.nodes[idx].rule.kind != types.PrimaryOption {
		return noNode, false
	}

	return idx, true
}
