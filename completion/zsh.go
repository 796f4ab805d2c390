package completion

import (
	"fmt"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(data HookData) string {
	return fmt.Sprintf(`#compdef %[1]s

%[2]s() {
    local -a candidates
    candidates=("${(@f)$(%[3]s %[4]s %[5]s zsh "${BUFFER[1,CURSOR]}" 2>/dev/null)}")
    [[ -n ${candidates[1]} ]] || return 1
    compadd -Q -- "${candidates[@]}"
}

compdef %[2]s %[3]s
`, data.ProgramName, data.FunctionName, quotePosix(data.ProgramName),
		data.CompleteOption, data.ShellOption)
}
