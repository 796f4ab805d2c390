package cliglue

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
)

const maxLabelWidth = 32

// PrettyPrintConfig controls how the sub-command tree is drawn in help output.
// NewCommandPrefix precedes top-level commands, DefaultPrefix nested commands with
// sub-commands and TerminalPrefix nested commands without. OuterLevelBindPrefix is repeated
// once per nesting level.
type PrettyPrintConfig struct {
	NewCommandPrefix     string
	DefaultPrefix        string
	TerminalPrefix       string
	OuterLevelBindPrefix string
}

// DefaultPrettyPrintConfig is used by help output
var DefaultPrettyPrintConfig = PrettyPrintConfig{
	NewCommandPrefix:     " +",
	DefaultPrefix:        " │",
	TerminalPrefix:       " └",
	OuterLevelBindPrefix: "─",
}

// DefaultRenderer renders help output for an App
type DefaultRenderer struct {
	app    *App
	tree   *Tree
	width  int
	config PrettyPrintConfig
}

// NewRenderer creates a renderer wrapping text to the width of w when it is a terminal
func NewRenderer(app *App, tree *Tree, w io.Writer) *DefaultRenderer {
	return &DefaultRenderer{
		app:    app,
		tree:   tree,
		width:  util.TerminalWidth(w),
		config: DefaultPrettyPrintConfig,
	}
}

// AppInfo returns "name vX - description", leaving out what is not configured
func (r *DefaultRenderer) AppInfo() string {
	info := r.app.name
	if r.app.version != "" {
		info += " " + normalizeVersion(r.app.version)
	}
	if r.app.help != "" {
		info += " - " + r.app.help
	}

	return info
}

// RuleLabel returns the keywords of r, shortest first, followed by the value placeholder of a
// parameter and the positional values of a primary option
func (r *DefaultRenderer) RuleLabel(rule *Rule) string {
	keywords := slices.Clone(rule.keywords)
	slices.SortStableFunc(keywords, func(a, b string) int {
		if n := cmp.Compare(len(a), len(b)); n != 0 {
			return n
		}
		return strings.Compare(a, b)
	})
	label := strings.Join(keywords, ", ")

	switch rule.kind {
	case types.Parameter:
		label += " " + placeholder(rule)
	case types.PrimaryOption:
		for _, child := range rule.children {
			if p := positional(child); p != "" {
				label += " " + p
			}
		}
	}

	return label
}

// RuleDescription returns the help of r with its default value and whether it is required
func (r *DefaultRenderer) RuleDescription(rule *Rule) string {
	description := rule.help
	if rule.hasDefault && rule.kind == types.Parameter {
		description += fmt.Sprintf(" (%s: %v)", r.app.tl(types.MsgDefaultsToKey), rule.defaultVal)
	}
	if rule.IsRequired() {
		description += " (" + r.app.tl(types.MsgRequiredKey) + ")"
	}

	return strings.TrimSpace(description)
}

func (r *DefaultRenderer) render(w io.Writer, frames []int) {
	var sb strings.Builder
	deepest := frames[len(frames)-1]

	if deepest == 0 {
		sb.WriteString(r.AppInfo() + "\n\n")
	} else if help := r.tree.nodes[deepest].rule.help; help != "" {
		sb.WriteString(r.tree.pathName(frames) + " - " + help + "\n\n")
	}

	sb.WriteString(r.app.tl(types.HelpUsageKey) + "\n  " + r.usage(frames) + "\n")

	if options := r.options(frames); len(options) > 0 {
		sb.WriteString("\n" + r.app.tl(types.HelpOptionsKey) + "\n")
		r.writeRows(&sb, options, "  ")
	}

	if r.hasSubcommands(deepest) {
		sb.WriteString("\n" + r.app.tl(types.HelpCommandsKey) + "\n")
		var rows [][2]string
		r.visitCommands(deepest, 0, func(idx, level int) {
			rule := r.tree.nodes[idx].rule
			prefix := r.config.DefaultPrefix
			switch {
			case level == 0:
				prefix = r.config.NewCommandPrefix
			case !r.hasSubcommands(idx):
				prefix = r.config.TerminalPrefix
			}
			rows = append(rows, [2]string{
				prefix + strings.Repeat(r.config.OuterLevelBindPrefix, level) + " " + strings.Join(rule.keywords, ", "),
				rule.help,
			})
		})
		r.writeRows(&sb, rows, "")
		sb.WriteString("\n" + r.app.tl(types.HelpFooterKey, r.tree.pathName(frames)) + "\n")
	}

	_, _ = io.WriteString(w, sb.String())
}

// usage renders the synopsis of frames: path, then [COMMAND], [OPTIONS] and positional values
func (r *DefaultRenderer) usage(frames []int) string {
	parts := []string{r.tree.pathName(frames)}
	if r.hasSubcommands(frames[len(frames)-1]) {
		parts = append(parts, "[COMMAND]")
	}
	if len(r.options(frames)) > 0 {
		parts = append(parts, "[OPTIONS]")
	}
	for _, f := range frames {
		for _, ci := range r.tree.nodes[f].children {
			if p := positional(r.tree.nodes[ci].rule); p != "" {
				parts = append(parts, p)
			}
		}
	}

	return strings.Join(parts, " ")
}

// options lists the flags, parameters and primary options in scope, deepest frame first.
// Rules whose keywords are all shadowed by a deeper frame are left out.
func (r *DefaultRenderer) options(frames []int) [][2]string {
	var rows [][2]string
	seen := make(map[string]bool)
	for i := len(frames) - 1; i >= 0; i-- {
		for _, ci := range r.tree.nodes[frames[i]].children {
			rule := r.tree.nodes[ci].rule
			switch rule.kind {
			case types.Flag, types.Parameter, types.PrimaryOption:
			default:
				continue
			}
			visible := false
			for _, kw := range rule.keywords {
				if !seen[kw] {
					visible = true
					seen[kw] = true
				}
			}
			if visible {
				rows = append(rows, [2]string{r.RuleLabel(rule), r.RuleDescription(rule)})
			}
		}
	}

	return rows
}

func (r *DefaultRenderer) hasSubcommands(idx int) bool {
	for _, ci := range r.tree.nodes[idx].children {
		if r.tree.nodes[ci].rule.kind == types.Subcommand {
			return true
		}
	}

	return false
}

// visitCommands calls visit for every sub-command below idx, parents before children
func (r *DefaultRenderer) visitCommands(idx, level int, visit func(idx, level int)) {
	for _, ci := range r.tree.nodes[idx].children {
		if r.tree.nodes[ci].rule.kind != types.Subcommand {
			continue
		}
		visit(ci, level)
		r.visitCommands(ci, level+1, visit)
	}
}

// writeRows writes label/description pairs in two columns, wrapping descriptions to the
// terminal width
func (r *DefaultRenderer) writeRows(sb *strings.Builder, rows [][2]string, indent string) {
	column := 0
	for _, row := range rows {
		if n := len([]rune(row[0])); n > column && n <= maxLabelWidth {
			column = n
		}
	}
	column += len(indent) + 2

	for _, row := range rows {
		label := indent + row[0]
		if row[1] == "" {
			sb.WriteString(label + "\n")
			continue
		}
		pad := column - len([]rune(label))
		if pad < 2 {
			sb.WriteString(label + "\n")
			pad = column
			label = ""
		}
		lines := wrap(row[1], max(r.width-column, 20))
		sb.WriteString(label + strings.Repeat(" ", pad) + lines[0] + "\n")
		for _, line := range lines[1:] {
			sb.WriteString(strings.Repeat(" ", column) + line + "\n")
		}
	}
}

// placeholder names the value of a parameter after its binding name
func placeholder(rule *Rule) string {
	name := rule.name
	if name == "" {
		name = rule.DisplayName()
	}

	return strings.ToUpper(util.BindingName(name))
}

// positional renders an argument as NAME or [NAME] and a collector as NAME... or [NAME...]
func positional(rule *Rule) string {
	switch rule.kind {
	case types.Argument:
		if rule.IsRequired() {
			return strings.ToUpper(rule.name)
		}
		return "[" + strings.ToUpper(rule.name) + "]"
	case types.Arguments:
		if rule.IsRequired() {
			return strings.ToUpper(rule.name) + "..."
		}
		return "[" + strings.ToUpper(rule.name) + "...]"
	}

	return ""
}

// wrap breaks text into lines of at most width runes at word boundaries
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len([]rune(line))+1+len([]rune(word)) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}

	return append(lines, line)
}
