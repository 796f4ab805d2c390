package cliglue

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/cliglue/errs"
	"github.com/napalu/cliglue/i18n"
	"golang.org/x/text/language"
)

// WithProgramName sets the program name used in help output, error messages and completion
// hooks
func WithProgramName(name string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.name = name
	}
}

// WithVersion sets the version printed by --version. Versions starting with a digit are shown
// with a "v" prefix.
func WithVersion(version string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.version = version
	}
}

// WithDescription sets the text shown next to the program name in help output
func WithDescription(help string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.help = help
	}
}

// WithAction sets the action of the root context
func WithAction(action *Action) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.root.action = action
	}
}

// WithFallback sets the action run when no context on the resolved path has one
func WithFallback(action *Action) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.fallback = action
	}
}

// WithDefaults controls whether the help, version and completion primary options are added
func WithDefaults(enabled bool) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.defaults = enabled
	}
}

// SetHelpOnError prints the help of the context reached after an error message
func SetHelpOnError(enabled bool) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.helpOnError = enabled
	}
}

// SetReraise makes Run and RunArgs return errors instead of printing them and exiting
func SetReraise(enabled bool) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.reraise = enabled
	}
}

// WithStdout sets the writer for help, version and completion output
func WithStdout(w io.Writer) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.stdout = w
	}
}

// WithStderr sets the writer for error messages
func WithStderr(w io.Writer) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.stderr = w
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.logger = logger
	}
}

// WithBundle replaces the translation bundle, e.g. to add languages
func WithBundle(bundle *i18n.Bundle) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.bundle = bundle
	}
}

// WithLanguage selects the language of messages. The closest language of the bundle is used;
// it fails with errs.ErrLanguageUnavailable when the bundle has no language with the same base.
func WithLanguage(lang language.Tag) ConfigureAppFunc {
	return func(app *App, err *error) {
		matched, ok := matchLanguage(app.bundle, lang)
		if !ok {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang.String())
			return
		}
		app.lang = matched
	}
}

// WithSystemLanguage selects the language named by LC_ALL, LC_MESSAGES or LANG when the bundle
// supports it, and keeps the current language otherwise
func WithSystemLanguage() ConfigureAppFunc {
	return func(app *App, err *error) {
		for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			value := os.Getenv(env)
			if value == "" {
				continue
			}
			// de_DE.UTF-8@euro -> de-DE
			value, _, _ = strings.Cut(value, ".")
			value, _, _ = strings.Cut(value, "@")
			tag, parseErr := language.Parse(strings.ReplaceAll(value, "_", "-"))
			if parseErr != nil {
				return
			}
			if matched, ok := matchLanguage(app.bundle, tag); ok {
				app.lang = matched
			}
			return
		}
	}
}

// WithExitFunc replaces os.Exit
func WithExitFunc(exit ExitFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.exit = exit
	}
}

func matchLanguage(bundle *i18n.Bundle, lang language.Tag) (language.Tag, bool) {
	matched := bundle.Match(lang)
	want, _ := lang.Base()
	got, _ := matched.Base()

	return matched, want == got
}
