package completion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napalu/cliglue/errs"
)

// Manager generates and installs the completion hook of one program for one shell
type Manager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewManager creates a completion manager for shell. It fails with errs.ErrUnsupportedShell when
// no generator exists for shell.
func NewManager(shell, programName string) (*Manager, error) {
	generator := GetGenerator(shell)
	if generator == nil {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}
	env, err := currentEnvironment()
	if err != nil {
		return nil, err
	}
	paths, err := env.completionPaths(shell)
	if err != nil {
		return nil, err
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Accept generates and stores the hook script from the provided data
func (m *Manager) Accept(data HookData) {
	m.script = m.generator.Generate(data)
}

// Script returns the generated hook script
func (m *Manager) Script() string {
	return m.script
}

// Save writes the previously generated script and returns the path written to
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", errs.ErrCompletionScript
	}

	dir, err := m.ensureCompletionPath()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.fileName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("failed to write completion file: %w", err)
	}

	return path, ensureMode(path, 0644)
}

// ensureCompletionPath returns the primary directory, created if needed, or the fallback when
// the primary cannot be used
func (m *Manager) ensureCompletionPath() (string, error) {
	var failed error
	for _, dir := range []string{m.Paths.Primary, m.Paths.Fallback} {
		if dir == "" {
			continue
		}
		err := os.MkdirAll(dir, 0755)
		if err == nil {
			err = ensureMode(dir, 0755)
		}
		if err == nil {
			return dir, nil
		}
		failed = errors.Join(failed, err)
	}

	return "", fmt.Errorf("failed to create completion directory: %w", failed)
}

func (m *Manager) fileName() string {
	return m.Paths.Prefix + m.ProgramName + m.Paths.Extension
}
