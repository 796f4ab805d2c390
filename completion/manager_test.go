package completion

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/napalu/cliglue/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	m, err := NewManager("bash", "/usr/local/bin/mytool")
	require.NoError(t, err)
	assert.Equal(t, "mytool", m.ProgramName)
	assert.Equal(t, "bash", m.Shell)
	assert.IsType(t, &BashGenerator{}, m.generator)

	_, err = NewManager("tcsh", "mytool")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
}

func TestManager_FileName(t *testing.T) {
	tests := []struct {
		shell string
		want  string
	}{
		{"bash", "mytool"},
		{"zsh", "_mytool"},
		{"fish", "mytool.fish"},
		{"powershell", "mytool.ps1"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			m, err := NewManager(tt.shell, "/opt/bin/mytool")
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.fileName())
		})
	}
}

func TestManager_Save(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		shell     string
		accept    bool
		checkFile func(*testing.T, string)
		wantErr   error
	}{
		{
			name:   "bash save",
			shell:  "bash",
			accept: true,
			checkFile: func(t *testing.T, path string) {
				assert.Equal(t, "mytool", filepath.Base(path))
			},
		},
		{
			name:   "zsh save",
			shell:  "zsh",
			accept: true,
			checkFile: func(t *testing.T, path string) {
				assert.True(t, strings.HasPrefix(filepath.Base(path), "_"))
			},
		},
		{
			name:   "fish save",
			shell:  "fish",
			accept: true,
			checkFile: func(t *testing.T, path string) {
				assert.True(t, strings.HasSuffix(path, ".fish"))
			},
		},
		{
			name:   "powershell save",
			shell:  "powershell",
			accept: true,
			checkFile: func(t *testing.T, path string) {
				assert.True(t, strings.HasSuffix(path, ".ps1"))
			},
		},
		{
			name:    "no script",
			shell:   "bash",
			wantErr: errs.ErrCompletionScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManager(tt.shell, "mytool")
			require.NoError(t, err)
			m.Paths.Primary = filepath.Join(tmpDir, tt.shell)
			m.Paths.Fallback = ""
			if tt.accept {
				m.Accept(NewHookData("mytool", "--bash-autocomplete", "--shell"))
			}

			path, err := m.Save()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, m.Paths.Primary, filepath.Dir(path))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, m.Script(), string(content))
			if runtime.GOOS != "windows" {
				info, err := os.Stat(path)
				require.NoError(t, err)
				assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
			}
			tt.checkFile(t, path)
		})
	}
}
