// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cliglue declares command lines as a tree of rules and dispatches them to actions.
//
// A declaration combines seven rule kinds:
//
//	Subcommand    - a keyword opening a nested context (git remote add)
//	Flag          - a presence keyword, optionally counting occurrences (-v -v)
//	Parameter     - a keyword taking one value (--count 5, --count=5)
//	Argument      - one positional value
//	Arguments     - a collector for the remaining positional values
//	DefaultAction - the action of its parent context
//	PrimaryOption - a keyword which replaces normal resolution wherever it appears (--help)
//
// Rules nested under a sub-command only apply once the sub-command has been matched. Flags,
// parameters and primary options of enclosing contexts stay available in nested ones, and
// keywords, sub-commands and positional values may be given in any order.
//
//	app := cliglue.New(cliglue.WithProgramName("git"), cliglue.WithVersion("1.0.0")).Has(
//		cliglue.Flag([]string{"-v", "--verbose"}, cliglue.SetMultiple(true)),
//		cliglue.Subcommand([]string{"remote"}).Has(
//			cliglue.Subcommand([]string{"add"}, cliglue.WithRun(addRemote)).Has(
//				cliglue.Argument("name"),
//				cliglue.Argument("url"),
//			),
//		),
//	)
//	app.Run()
package cliglue

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/i18n"
	"github.com/napalu/cliglue/internal/util"
	"github.com/napalu/cliglue/types"
	"golang.org/x/text/language"
)

// New creates an App named after the running executable. Configuration errors are kept and
// returned by Build.
func New(configs ...ConfigureAppFunc) *App {
	app := &App{
		name:     filepath.Base(os.Args[0]),
		root:     newRule(types.Root, nil, "", nil),
		defaults: true,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   util.NewLogger(os.Stderr, slog.LevelWarn),
		lang:     language.English,
		bundle:   i18n.Default(),
		exit:     os.Exit,
	}

	for _, config := range configs {
		config(app, &app.err)
		if app.err != nil {
			break
		}
	}

	return app
}

// Has attaches rules to the root context and returns app for chaining
func (a *App) Has(rules ...*Rule) *App {
	a.root.Has(rules...)
	a.tree = nil

	return a
}

// Name returns the program name
func (a *App) Name() string {
	return a.name
}

// Version returns the configured version
func (a *App) Version() string {
	return a.version
}

// Build validates the declaration and compiles it into a Tree. Unless WithDefaults(false) is
// used, the help, version and shell completion primary options are added to the root for
// every keyword the declaration does not claim itself. The Tree is cached until Has is called
// again.
func (a *App) Build() (*Tree, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.tree != nil {
		return a.tree, nil
	}

	root := a.root
	if a.defaults {
		root = a.withBuiltins()
	}
	t, err := compile(root, a.name, a.fallback, a.logger)
	if err != nil {
		return nil, err
	}
	a.tree = t

	return t, nil
}

// Execute resolves args, binds the values and invokes the selected action. It returns the
// exit code along with the error. Errors are printed to stderr, followed by the help of the
// context reached when SetHelpOnError(true) is used, unless SetReraise(true) is used.
func (a *App) Execute(args []string) (int, error) {
	t, err := a.Build()
	if err != nil {
		a.report(nil, err)
		return 1, err
	}

	res, err := t.Resolve(args)
	if err != nil {
		a.report(res, err)
		return 1, err
	}
	b, err := t.Bind(res)
	if err != nil {
		a.report(res, err)
		return 1, err
	}
	if err := b.action.Invoke(b); err != nil {
		a.report(res, err)
		return 1, err
	}

	return 0, nil
}

// RunArgs is Execute for embedding in main: on error it exits with code 1, or returns the error
// when SetReraise(true) is used.
func (a *App) RunArgs(args []string) error {
	code, err := a.Execute(args)
	if err == nil {
		return nil
	}
	if a.reraise {
		return err
	}
	a.exit(code)

	return nil
}

// Run calls RunArgs with the process arguments
func (a *App) Run() error {
	return a.RunArgs(os.Args[1:])
}

// PrintHelp writes the help of the context reached by path, a sequence of sub-command keywords
func (a *App) PrintHelp(w io.Writer, path ...string) error {
	t, err := a.Build()
	if err != nil {
		return err
	}

	frames := []int{0}
	for _, kw := range path {
		idx, found := t.nodes[frames[len(frames)-1]].keywords.Get(kw)
		if !found || t.nodes[idx].rule.kind != types.Subcommand {
			return errs.NewUnrecognizedTokenError(kw, t.pathName(frames))
		}
		frames = append(frames, idx)
	}
	NewRenderer(a, t, w).render(w, frames)

	return nil
}

func (a *App) report(res *Resolution, err error) {
	if a.reraise {
		return
	}
	a.logger.Debug("execution failed", "error", err)
	_, _ = fmt.Fprintln(a.stderr, a.bundle.Localize(a.lang, err))
	if a.helpOnError && res != nil {
		_, _ = fmt.Fprintln(a.stderr)
		NewRenderer(a, res.tree, a.stderr).render(a.stderr, res.frames)
	}
}

// tl translates key in the configured language
func (a *App) tl(key string, args ...interface{}) string {
	return a.bundle.TL(a.lang, key, args...)
}
