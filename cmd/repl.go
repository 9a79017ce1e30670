package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine"
	"github.com/coreyalejandro/pseudocode-to-code/internal/engine/diag"
	"github.com/coreyalejandro/pseudocode-to-code/internal/report"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive pseudocode session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// repl accumulates pseudocode lines and converts the buffer on demand.
type repl struct {
	lines []string
}

func runRepl() {
	r := &repl{}
	fmt.Println("Type pseudocode, one line at a time.")
	fmt.Println("Commands: :show <target>   :flowchart   :list   :clear   :quit")
	p := prompt.New(r.execute, r.complete,
		prompt.OptionTitle("p2c repl"),
		prompt.OptionPrefix(">>> "),
	)
	p.Run()
}

func (r *repl) source() string { return strings.Join(r.lines, "\n") }

func (r *repl) execute(in string) {
	in = strings.TrimSpace(in)
	switch {
	case in == "":
	case strings.HasPrefix(in, ":"):
		r.command(in)
	default:
		r.lines = append(r.lines, in)
	}
}

func (r *repl) command(in string) {
	fields := strings.Fields(in)
	switch fields[0] {
	case ":quit", ":q":
		fmt.Println("bye")
		os.Exit(0)

	case ":clear":
		r.lines = nil
		fmt.Println("buffer cleared")

	case ":list":
		for i, line := range r.lines {
			fmt.Printf("%3d  %s\n", i+1, line)
		}

	case ":show":
		if len(fields) != 2 {
			fmt.Println("usage: :show <target>")
			return
		}
		r.show(engine.Target(strings.ToLower(fields[1])))

	case ":flowchart":
		res, err := engine.ConvertToFlowchart(r.source())
		r.printDiagnostics(res.Diagnostics)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(res.Diagram)

	default:
		fmt.Printf("unknown command %s\n", fields[0])
	}
}

func (r *repl) show(target engine.Target) {
	res, err := engine.Convert(r.source(), []engine.Target{target})
	r.printDiagnostics(res.Diagnostics)
	if err != nil {
		fmt.Println(err)
		return
	}
	if terr, ok := res.Errors[target]; ok {
		fmt.Println(terr)
		return
	}
	fmt.Println(res.Outputs[target])
}

func (r *repl) printDiagnostics(diags []diag.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	report.NewDiagnosticPrinter(os.Stdout, useColor()).Print("repl", r.source(), diags)
}

// complete suggests dialect keywords and repl commands for the word under
// the cursor, matching case-insensitively like the parser does.
func (r *repl) complete(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: ":show", Description: "convert the buffer to a target"},
		{Text: ":flowchart", Description: "render the buffer as a Mermaid chart"},
		{Text: ":list", Description: "print the buffer"},
		{Text: ":clear", Description: "drop the buffer"},
		{Text: ":quit", Description: "leave"},
		{Text: "START", Description: "begin the program"},
		{Text: "END", Description: "finish the program"},
		{Text: "INPUT", Description: "INPUT <variable>"},
		{Text: "OUTPUT", Description: "OUTPUT <message>"},
		{Text: "PRINT", Description: "PRINT <message>"},
		{Text: "SET", Description: "SET <name> = <value>"},
		{Text: "IF", Description: "IF <condition> THEN"},
		{Text: "ELSE", Description: "else branch"},
		{Text: "END IF", Description: "close an IF"},
		{Text: "WHILE", Description: "WHILE <condition>"},
		{Text: "END WHILE", Description: "close a WHILE"},
		{Text: "FOR", Description: "FOR <name> FROM <start> TO <end>"},
		{Text: "END FOR", Description: "close a FOR"},
	}
	return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
}
