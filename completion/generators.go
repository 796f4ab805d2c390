package completion

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// Generator renders the hook script of one shell
type Generator interface {
	Generate(data HookData) string
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

// Shells returns the supported shell names
func Shells() []string {
	return slices.Clone(shells)
}

// GetGenerator returns the generator for shell, or nil when the shell is not supported
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return nil
	}
}

// DetectShell guesses the interactive shell from the environment and falls back to bash
func DetectShell() string {
	if sh := filepath.Base(os.Getenv("SHELL")); slices.Contains(shells, sh) {
		return sh
	}
	if runtime.GOOS == "windows" || (os.Getenv("PSModulePath") != "" && os.Getenv("SHELL") == "") {
		return "powershell"
	}

	return "bash"
}
