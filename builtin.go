package cliglue

import (
	"fmt"
	"slices"
	"strings"

	"github.com/napalu/cliglue/completion"
	"github.com/napalu/cliglue/internal/parse"
	"github.com/napalu/cliglue/types"
)

const (
	completeKeyword = "--bash-autocomplete"
	installKeyword  = "--bash-install"
	shellKeyword    = "--shell"
)

// withBuiltins returns a copy of the root with the help, version and completion primary
// options added. Keywords the root already declares are left to the declaration.
func (a *App) withBuiltins() *Rule {
	root := *a.root
	root.children = slices.Clone(a.root.children)

	declared := make(map[string]bool)
	for _, child := range root.children {
		for _, kw := range child.keywords {
			declared[kw] = true
		}
	}
	add := func(keywords []string, build func(free []string) *Rule) {
		var free []string
		for _, kw := range keywords {
			if !declared[kw] {
				free = append(free, kw)
			}
		}
		if len(free) > 0 {
			root.children = append(root.children, build(free))
		}
	}

	add([]string{"-h", "--help"}, func(free []string) *Rule {
		return PrimaryOption(free,
			WithHelp(a.tl(types.MsgHelpOptionKey)),
			WithRun(NewAction("help", a.runHelp)))
	})
	if a.version != "" {
		add([]string{"--version"}, func(free []string) *Rule {
			return PrimaryOption(free,
				WithHelp(a.tl(types.MsgVersionOptionKey)),
				WithRun(NewAction("version", a.runVersion)))
		})
	}
	add([]string{completeKeyword}, func(free []string) *Rule {
		return PrimaryOption(free,
			WithHelp(a.tl(types.MsgCompleteOptionKey)),
			WithRun(NewAction("autocomplete", a.runComplete))).Has(
			Parameter([]string{shellKeyword},
				WithName("completion_shell"),
				WithHelp(a.tl(types.MsgShellOptionKey)),
				WithDefault("bash"),
				WithChoices(completion.Shells()...)),
			Argument("completion_line", SetRequired(false)),
			Arguments("completion_words", SetJoinedWith(" ")),
		)
	})
	add([]string{installKeyword}, func(free []string) *Rule {
		return PrimaryOption(free,
			WithHelp(a.tl(types.MsgInstallOptionKey)),
			WithRun(NewAction("install", a.runInstall))).Has(
			Argument("shell",
				WithName("install_shell"),
				WithType(types.Choice),
				WithChoices(completion.Shells()...),
				WithDefault(completion.DetectShell())),
		)
	})

	return &root
}

func (a *App) runHelp(b *Binding) error {
	NewRenderer(a, b.tree, a.stdout).render(a.stdout, b.frames)
	return nil
}

func (a *App) runVersion(b *Binding) error {
	_, err := fmt.Fprintln(a.stdout, a.name+" "+normalizeVersion(a.version))
	return err
}

// runComplete prints the proposals for the command line typed so far, one per line. The line
// arrives as one argument and starts with the program name. Bash splits words on "=", so
// --keyword=value proposals are reduced to the value for it.
func (a *App) runComplete(b *Binding) error {
	line := b.String("completion_line")
	if words := b.String("completion_words"); words != "" {
		line += " " + words
	}
	shell := b.String("completion_shell")

	for _, candidate := range b.tree.Complete(parse.SplitCommandLine(line)) {
		if shell == "bash" && strings.HasPrefix(candidate, "-") {
			if _, value, found := strings.Cut(candidate, "="); found {
				candidate = value
			}
		}
		if _, err := fmt.Fprintln(a.stdout, candidate); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) runInstall(b *Binding) error {
	shell := b.String("install_shell")
	manager, err := completion.NewManager(shell, a.name)
	if err != nil {
		return err
	}
	manager.Accept(completion.NewHookData(a.name, completeKeyword, shellKeyword))
	path, err := manager.Save()
	if err != nil {
		return err
	}
	a.logger.Info("completion hook installed", "shell", shell, "path", path)
	_, err = fmt.Fprintln(a.stdout, a.tl(types.MsgInstalledKey, shell, path))

	return err
}

// normalizeVersion prefixes numeric versions with "v"
func normalizeVersion(version string) string {
	if version != "" && version[0] >= '0' && version[0] <= '9' {
		return "v" + version
	}

	return version
}
