package cliglue

import (
	"io"
	"log/slog"

	"github.com/napalu/cliglue/i18n"
	"github.com/napalu/cliglue/types"
	"golang.org/x/text/language"
)

// ConfigureAppFunc is used when configuring an App
type ConfigureAppFunc func(app *App, err *error)

// ConfigureRuleFunc is used when configuring a Rule. Options which make no sense for the kind
// of the rule report a DefinitionError through err, which Build returns.
type ConfigureRuleFunc func(rule *Rule, err *error)

// ChoiceProvider returns value hints for the word being completed. It is called with the
// (possibly empty) partial word.
type ChoiceProvider func(current string) []string

// ValueParser converts a raw value into a domain type. A returned error fails binding with a
// TypeCoercionError.
type ValueParser func(value string) (any, error)

// RunFunc is the body of an Action
type RunFunc func(b *Binding) error

// ExitFunc terminates the process, os.Exit by default
type ExitFunc func(code int)

// Rule is one node of a command-line declaration: a sub-command, a flag, a parameter, a
// positional argument, an argument collector, a default action or a primary option. Rules are
// created with the constructor named after their kind and assembled with Has.
type Rule struct {
	kind       types.RuleKind
	keywords   []string
	name       string
	help       string
	valueType  types.ValueType
	typeSet    bool
	required   *bool
	defaultVal any
	hasDefault bool
	multiple   bool
	choices    []string
	choiceFunc ChoiceProvider
	parser     ValueParser
	strict     bool
	action     *Action
	count      int
	minCount   int
	maxCount   int
	joinedWith string
	joined     bool
	children   []*Rule
	err        error
}

// App is the builder surface: it owns the root of the rule tree and the glue which runs a
// resolved action (help, version, completion, error reporting).
type App struct {
	name        string
	version     string
	help        string
	root        *Rule
	fallback    *Action
	defaults    bool
	helpOnError bool
	reraise     bool
	stdout      io.Writer
	stderr      io.Writer
	logger      *slog.Logger
	lang        language.Tag
	bundle      *i18n.Bundle
	exit        ExitFunc
	err         error
	tree        *Tree
}
