package parse

import (
	"strings"

	"github.com/google/shlex"
)

// Split splits a command string into arguments
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}

// SplitCommandLine splits a shell completion line (bash COMP_LINE) into the arguments following
// the program name. A trailing blank yields an empty final word so that completion proposes the
// next token instead of finishing the last one. An unbalanced quote, as typed mid-word, falls
// back to splitting on white space.
func SplitCommandLine(line string) []string {
	if len(line) > 1 && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) {
		line = line[1 : len(line)-1]
	}

	args, err := Split(line)
	if err != nil {
		args = strings.Fields(line)
	}
	if len(args) > 0 {
		args = args[1:]
	}
	if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		args = append(args, "")
	}

	return args
}
