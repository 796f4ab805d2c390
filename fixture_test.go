package cliglue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type arrayWriter struct {
	data *[]string
}

func newArrayWriter() *arrayWriter {
	return &arrayWriter{data: &[]string{}}
}

func (writer arrayWriter) Write(p []byte) (int, error) {
	*writer.data = append(*writer.data, string(p))

	return len(p), nil
}

func (writer arrayWriter) String() string {
	out := ""
	for _, s := range *writer.data {
		out += s
	}

	return out
}

// recorder collects the names of the actions invoked and the last binding
type recorder struct {
	calls []string
	last  *Binding
}

func (r *recorder) action(name string, slots ...Slot) *Action {
	return NewAction(name, func(b *Binding) error {
		r.calls = append(r.calls, name)
		r.last = b
		return nil
	}, slots...)
}

func gitRules(rec *recorder) []*Rule {
	return []*Rule{
		Flag([]string{"-v", "--verbose"}, SetMultiple(true), WithHelp("Increase verbosity")),
		Flag([]string{"-q", "--quiet"}, WithHelp("Suppress output")),
		Parameter([]string{"-C"}, WithName("dir"), WithHelp("Run as if started in dir")),
		DefaultAction(rec.action("status")),
		Subcommand([]string{"remote"}, WithRun(rec.action("remote")), WithHelp("Manage remotes")).Has(
			Subcommand([]string{"push"}, WithRun(rec.action("push")), WithHelp("Push refs")).Has(
				Flag([]string{"-f", "--force"}),
				Argument("remote", SetRequired(false), WithChoices("origin", "upstream")),
				Arguments("refs"),
			),
			Subcommand([]string{"add"}, WithRun(rec.action("add")), WithHelp("Add a remote")).Has(
				Argument("name"),
				Argument("url"),
			),
		),
		Subcommand([]string{"checkout"}, WithRun(rec.action("checkout")), WithHelp("Switch branches")).Has(
			Flag([]string{"-b"}, WithName("create")),
			Argument("branch", WithChoiceFunc(func(string) []string { return []string{"main", "develop"} })),
		),
	}
}

func build(t *testing.T, rules ...*Rule) *Tree {
	t.Helper()
	tree, err := New(WithProgramName("git"), WithDefaults(false)).Has(rules...).Build()
	require.NoError(t, err)

	return tree
}

func gitTree(t *testing.T, rec *recorder) *Tree {
	t.Helper()
	return build(t, gitRules(rec)...)
}

// run resolves and binds args
func run(tree *Tree, args ...string) (*Binding, error) {
	res, err := tree.Resolve(args)
	if err != nil {
		return nil, err
	}

	return tree.Bind(res)
}
