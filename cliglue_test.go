package cliglue

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/napalu/cliglue/completion"
	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestApp(rec *recorder, configs ...ConfigureAppFunc) (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	configs = append([]ConfigureAppFunc{
		WithProgramName("git"),
		WithStdout(stdout),
		WithStderr(stderr),
	}, configs...)

	return New(configs...).Has(gitRules(rec)...), stdout, stderr
}

func TestApp_Execute(t *testing.T) {
	rec := &recorder{}
	app, _, stderr := newTestApp(rec)

	code, err := app.Execute([]string{"remote", "push", "origin"})
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"push"}, rec.calls)
	assert.Equal(t, "origin", rec.last.String("remote"))
	assert.Empty(t, stderr.String())

	code, err = app.Execute(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"push", "status"}, rec.calls)
}

func TestApp_ExecuteReportsErrors(t *testing.T) {
	rec := &recorder{}
	app, _, stderr := newTestApp(rec)

	code, err := app.Execute([]string{"--nope"})
	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedToken))
	assert.Equal(t, "unrecognized argument \"--nope\"\n", stderr.String())
	assert.Empty(t, rec.calls, "no action runs after an error")
}

func TestApp_ExecuteBindErrorRunsNothing(t *testing.T) {
	rec := &recorder{}
	stderr := &bytes.Buffer{}
	app := New(WithProgramName("app"), WithStderr(stderr)).Has(
		Parameter([]string{"--count"}, WithType(types.Int)),
		DefaultAction(rec.action("run")),
	)

	code, err := app.Execute([]string{"--count", "x"})
	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, errs.ErrTypeCoercion))
	assert.Contains(t, stderr.String(), `cannot parse "x" as int for "--count"`)
	assert.Empty(t, rec.calls)
}

func TestApp_ExecuteActionError(t *testing.T) {
	boom := errors.New("boom")
	stderr := &bytes.Buffer{}
	app := New(WithStderr(stderr)).Has(
		DefaultAction(NewAction("fail", func(*Binding) error { return boom })),
	)

	code, err := app.Execute(nil)
	assert.Equal(t, 1, code)
	assert.Same(t, boom, err)
	assert.Equal(t, "boom\n", stderr.String())
}

func TestApp_ExecuteDefinitionError(t *testing.T) {
	stderr := &bytes.Buffer{}
	app := New(WithStderr(stderr)).Has(Flag([]string{"-v"}), Flag([]string{"-v"}))

	code, err := app.Execute(nil)
	assert.Equal(t, 1, code)
	assert.True(t, errors.Is(err, errs.ErrDefinition))
	assert.NotEmpty(t, stderr.String())
}

func TestApp_SetHelpOnError(t *testing.T) {
	app, _, stderr := newTestApp(&recorder{}, SetHelpOnError(true))

	_, err := app.Execute([]string{"remote", "add", "origin"})
	require.Error(t, err)
	out := stderr.String()
	assert.True(t, strings.HasPrefix(out, "required positional argument \"url\" is not given\n\n"))
	assert.Contains(t, out, "git remote add [OPTIONS] NAME URL")
}

func TestApp_SetReraise(t *testing.T) {
	app, _, stderr := newTestApp(&recorder{}, SetReraise(true))

	err := app.RunArgs([]string{"--nope"})
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedToken))
	assert.Empty(t, stderr.String(), "reraised errors are left to the caller")
}

func TestApp_RunArgsExits(t *testing.T) {
	exitCode := -1
	app, _, stderr := newTestApp(&recorder{}, WithExitFunc(func(code int) { exitCode = code }))

	assert.NoError(t, app.RunArgs([]string{"checkout", "main"}))
	assert.Equal(t, -1, exitCode, "success does not exit")

	assert.NoError(t, app.RunArgs([]string{"checkout"}))
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `"branch"`)
}

func TestApp_WithLanguage(t *testing.T) {
	app, _, stderr := newTestApp(&recorder{}, WithLanguage(language.German))

	_, err := app.Execute([]string{"--nope"})
	require.Error(t, err)
	assert.Equal(t, "unbekanntes Argument \"--nope\"\n", stderr.String())

	app, _, _ = newTestApp(&recorder{}, WithLanguage(language.MustParse("de-CH")))
	_, err = app.Build()
	assert.NoError(t, err, "regional variants match their base language")
	assert.Equal(t, language.German, app.lang)

	app, _, _ = newTestApp(&recorder{}, WithLanguage(language.Japanese))
	_, err = app.Build()
	assert.True(t, errors.Is(err, errs.ErrLanguageUnavailable))
}

func TestApp_WithSystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")

	app := New(WithSystemLanguage())
	assert.Equal(t, language.German, app.lang)

	t.Setenv("LC_MESSAGES", "ja_JP.UTF-8")
	app = New(WithSystemLanguage())
	assert.Equal(t, language.English, app.lang, "unsupported languages keep the default")
}

func TestApp_Version(t *testing.T) {
	app, stdout, _ := newTestApp(&recorder{}, WithVersion("1.2.3"))

	code, err := app.Execute([]string{"remote", "--version"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "git v1.2.3\n", stdout.String())
	assert.Equal(t, "1.2.3", app.Version())

	app, _, _ = newTestApp(&recorder{})
	_, err = app.Execute([]string{"--version"})
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedToken), "--version needs a version")
}

func TestApp_Help(t *testing.T) {
	rec := &recorder{}
	app, stdout, _ := newTestApp(rec, WithDescription("the stupid content tracker"))

	code, err := app.Execute([]string{"remote", "--help", "--nope"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, rec.calls)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "git remote - Manage remotes\n\nUsage:\n  git remote [COMMAND] [OPTIONS]\n"), out)
	assert.Contains(t, out, "  -h, --help")
	assert.Contains(t, out, "  -C DIR")
	assert.Contains(t, out, " + push")
	assert.Contains(t, out, " + add")
	assert.Contains(t, out, `Run "git remote COMMAND --help"`)
	assert.NotContains(t, out, "checkout")

	stdout.Reset()
	_, err = app.Execute([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "git - the stupid content tracker\n"))
}

func TestApp_BuiltinsYieldToDeclaredKeywords(t *testing.T) {
	rec := &recorder{}
	stdout := &bytes.Buffer{}
	app := New(WithStdout(stdout)).Has(
		Flag([]string{"-h"}, WithName("human")),
		DefaultAction(rec.action("run")),
	)

	_, err := app.Execute([]string{"-h"})
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, rec.calls)
	assert.True(t, rec.last.Bool("human"))
	assert.Empty(t, stdout.String())

	_, err = app.Execute([]string{"--help"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "--help")
}

func TestApp_WithDefaultsFalse(t *testing.T) {
	app, _, _ := newTestApp(&recorder{}, WithDefaults(false))

	_, err := app.Execute([]string{"--help"})
	assert.True(t, errors.Is(err, errs.ErrUnrecognizedToken))
}

func TestApp_Autocomplete(t *testing.T) {
	app, stdout, _ := newTestApp(&recorder{}, WithVersion("1.0"))

	_, err := app.Execute([]string{"--bash-autocomplete", "git rem"})
	require.NoError(t, err)
	assert.Equal(t, "remote\n", stdout.String())

	stdout.Reset()
	_, err = app.Execute([]string{"--bash-autocomplete", "git "})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"remote", "checkout", "-v", "--verbose", "-q", "--quiet", "-C",
		"-h", "--help", "--version", "--bash-autocomplete", "--bash-install",
	}, strings.Fields(stdout.String()))

	stdout.Reset()
	_, err = app.Execute([]string{"--bash-autocomplete", "git", "remote", "push", "o"})
	require.NoError(t, err)
	assert.Equal(t, "origin\n", stdout.String(), "unquoted lines are joined")
}

func TestApp_AutocompleteInstallShells(t *testing.T) {
	app, stdout, _ := newTestApp(&recorder{})

	_, err := app.Execute([]string{"--bash-autocomplete", "git --bash-install f"})
	require.NoError(t, err)
	assert.Equal(t, "fish\n", stdout.String())

	stdout.Reset()
	_, err = app.Execute([]string{"--bash-autocomplete", "git --bash-install "})
	require.NoError(t, err)
	words := strings.Fields(stdout.String())
	assert.Subset(t, words, completion.Shells())
	assert.Contains(t, words, "--help", "root keywords stay in scope")

	stdout.Reset()
	_, err = app.Execute([]string{"--bash-autocomplete", "git --bash-autocomplete --shell z"})
	require.NoError(t, err)
	assert.Equal(t, "zsh\n", stdout.String())
}

func TestApp_AutocompleteInlineValues(t *testing.T) {
	stdout := &bytes.Buffer{}
	app := New(WithProgramName("app"), WithStdout(stdout)).Has(
		Parameter([]string{"--mode"}, WithChoices("fast", "safe")),
		DefaultAction(NewAction("run", nil)),
	)

	_, err := app.Execute([]string{"--bash-autocomplete", "app --mode=f"})
	require.NoError(t, err)
	assert.Equal(t, "fast\n", stdout.String(), "bash completes the word after =")

	stdout.Reset()
	_, err = app.Execute([]string{"--bash-autocomplete", "--shell", "zsh", "app --mode="})
	require.NoError(t, err)
	assert.Equal(t, "--mode=fast\n--mode=safe\n", stdout.String())
}

func TestApp_AutocompleteBypassesRequired(t *testing.T) {
	stdout := &bytes.Buffer{}
	app := New(WithProgramName("app"), WithStdout(stdout)).Has(
		Parameter([]string{"--count"}, SetRequired(true)),
		Argument("target"),
		Subcommand([]string{"sync"}),
		DefaultAction(NewAction("run", nil)),
	)

	_, err := app.Execute([]string{"--bash-autocomplete", "app s"})
	require.NoError(t, err)
	assert.Equal(t, "sync\n", stdout.String())
}

func TestApp_Install(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory layout differs on Windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	app, stdout, _ := newTestApp(&recorder{})
	_, err := app.Execute([]string{"--bash-install", "fish"})
	require.NoError(t, err)

	var written []string
	require.NoError(t, filepath.WalkDir(home, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			written = append(written, path)
		}
		return err
	}))
	require.Len(t, written, 1)
	assert.Equal(t, "git.fish", filepath.Base(written[0]))
	assert.Contains(t, stdout.String(), written[0])

	script, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(script), "git --bash-autocomplete --shell fish (commandline -cp)")

	_, err = app.Execute([]string{"--bash-install", "tcsh"})
	assert.True(t, errors.Is(err, errs.ErrInvalidChoice))
}

func TestApp_PrintHelpUnknownPath(t *testing.T) {
	app, _, _ := newTestApp(&recorder{})

	err := app.PrintHelp(&bytes.Buffer{}, "remote", "nope")
	var unrecognized *errs.UnrecognizedTokenError
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, "nope", unrecognized.Token)
	assert.Equal(t, "git remote", unrecognized.Path)
}
