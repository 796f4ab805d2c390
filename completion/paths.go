package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/napalu/cliglue/errs"
)

// environment holds the directories completion locations derive from. Relative XDG
// directories are ignored, as the XDG base directory specification requires.
type environment struct {
	goos       string
	home       string
	dataHome   string
	configHome string
}

func currentEnvironment() (environment, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return environment{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	return newEnvironment(runtime.GOOS, home, os.Getenv("XDG_DATA_HOME"), os.Getenv("XDG_CONFIG_HOME")), nil
}

func newEnvironment(goos, home, dataHome, configHome string) environment {
	if !filepath.IsAbs(dataHome) {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if !filepath.IsAbs(configHome) {
		configHome = filepath.Join(home, ".config")
	}

	return environment{goos: goos, home: home, dataHome: dataHome, configHome: configHome}
}

// completionPaths returns the user-level directories shell loads completion scripts from
func (e environment) completionPaths(shell string) (CompletionPaths, error) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(e.dataHome, "bash-completion", "completions"),
			Fallback: filepath.Join(e.home, ".bash_completion.d"),
			Comment:  "loaded on demand by bash-completion 2",
		}, nil
	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(e.home, ".zsh", "completion"),
			Fallback: filepath.Join(e.home, ".zfunc"),
			Prefix:   "_",
			Comment:  "must be listed in fpath before compinit runs",
		}, nil
	case "fish":
		return CompletionPaths{
			Primary:   filepath.Join(e.configHome, "fish", "completions"),
			Fallback:  filepath.Join(e.dataHome, "fish", "vendor_completions.d"),
			Extension: ".fish",
			Comment:   "loaded on demand by fish",
		}, nil
	case "powershell":
		paths := CompletionPaths{
			Primary:   filepath.Join(e.configHome, "powershell", "Completions"),
			Fallback:  filepath.Join(e.dataHome, "powershell", "Completions"),
			Extension: ".ps1",
			Comment:   "must be dot-sourced from the PowerShell profile",
		}
		switch e.goos {
		case "windows":
			paths.Primary = filepath.Join(e.home, "Documents", "PowerShell", "Completions")
			paths.Fallback = filepath.Join(e.home, "Documents", "WindowsPowerShell", "Completions")
		case "darwin":
			paths.Fallback = filepath.Join(e.home, "Library", "PowerShell", "Completions")
		}
		return paths, nil
	}

	return CompletionPaths{}, errs.ErrUnsupportedShell.WithArgs(shell)
}

// ensureMode sets the permission bits of path to perm. Windows has no POSIX modes.
func ensureMode(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" || info.Mode().Perm() == perm {
		return nil
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("chmod %o %s: %w", perm, path, err)
	}

	return nil
}
