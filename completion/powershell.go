package completion

import (
	"fmt"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(data HookData) string {
	return fmt.Sprintf(`# PowerShell completion for %[1]s

Register-ArgumentCompleter -Native -CommandName %[2]s -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $line = $commandAst.Extent.Text
    $offset = $cursorPosition - $commandAst.Extent.StartOffset
    if ($offset -lt $line.Length) {
        $line = $line.Substring(0, $offset)
    } elseif ($offset -gt $line.Length) {
        $line = $line + ' '
    }
    & %[2]s %[3]s %[4]s powershell $line 2>$null | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`, data.ProgramName, quotePowerShell(data.ProgramName), data.CompleteOption, data.ShellOption)
}
