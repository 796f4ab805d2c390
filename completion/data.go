package completion

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// HookData describes the program a completion hook is generated for. The hook calls the program
// back with the completion option, the shell option naming the calling shell and the command
// line typed so far as a single argument.
type HookData struct {
	ProgramName    string // Command name the hook is registered for
	FunctionName   string // Shell function name, unique per program
	CompleteOption string // Primary option printing proposals, one per line
	ShellOption    string // Parameter of CompleteOption naming the calling shell
}

// NewHookData returns the hook data for programName
func NewHookData(programName, completeOption, shellOption string) HookData {
	name := filepath.Base(programName)
	return HookData{
		ProgramName:    name,
		FunctionName:   FunctionName(name),
		CompleteOption: completeOption,
		ShellOption:    shellOption,
	}
}

// FunctionName derives a stable shell identifier from programName. Program names may contain
// characters which are not valid in function names.
func FunctionName(programName string) string {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(programName))
	return "__cliglue_" + strings.ReplaceAll(id.String(), "-", "")[:12]
}

// CompletionPaths lists where a completion script is installed and how its file is named
type CompletionPaths struct {
	Primary   string // Directory tried first
	Fallback  string // Directory used when Primary cannot be created
	Prefix    string // File name prefix required by the shell
	Extension string // File name extension required by the shell
	Comment   string // How the shell picks up scripts from the directory
}
