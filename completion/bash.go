package completion

import (
	"fmt"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(data HookData) string {
	return fmt.Sprintf(`# bash completion for %[1]s

%[2]s() {
    local IFS=$'\n'
    COMPREPLY=( $(%[3]s %[4]s %[5]s bash "${COMP_LINE:0:COMP_POINT}" 2>/dev/null) )
    if [[ ${#COMPREPLY[@]} -eq 1 && ${COMPREPLY[0]} == */ ]]; then
        compopt -o nospace 2>/dev/null
    fi
}

complete -o default -F %[2]s %[3]s
`, data.ProgramName, data.FunctionName, quotePosix(data.ProgramName),
		data.CompleteOption, data.ShellOption)
}
