package completion

import (
	"fmt"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(data HookData) string {
	return fmt.Sprintf(`# fish completion for %[1]s

function %[2]s
    %[3]s %[4]s %[5]s fish (commandline -cp) 2>/dev/null
end

complete -c %[3]s -f -a '(%[2]s)'
`, data.ProgramName, data.FunctionName, quoteFish(data.ProgramName),
		data.CompleteOption, data.ShellOption)
}
