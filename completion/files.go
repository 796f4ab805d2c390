package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// FileCompleter proposes file system entries starting with current. Directories end with a
// slash so completion can continue inside them; hidden entries are only proposed once current
// names a dot. It can be used as a choice provider.
func FileCompleter(current string) []string {
	dir, prefix := filepath.Split(current)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	var candidates []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		candidate := dir + name
		if e.IsDir() {
			candidate += "/"
		}
		candidates = append(candidates, candidate)
	}

	return candidates
}
