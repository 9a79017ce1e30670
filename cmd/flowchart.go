package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine"
	"github.com/coreyalejandro/pseudocode-to-code/internal/report"
)

var flowchartStdout bool

var FlowchartCmd = &cobra.Command{
	Use:   "flowchart [file]",
	Short: "Render a pseudocode file as a Mermaid flowchart",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlowchart,
}

func init() {
	FlowchartCmd.Flags().BoolVar(&flowchartStdout, "stdout", false, "print the diagram instead of writing a file")
}

func runFlowchart(cmd *cobra.Command, args []string) error {
	path := args[0]
	if filepath.Ext(path) != ".pseudo" {
		return fmt.Errorf("source must have a .pseudo extension")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)

	res, err := engine.ConvertToFlowchart(src)
	if len(res.Diagnostics) > 0 {
		report.NewDiagnosticPrinter(os.Stderr, useColor()).Print(path, src, res.Diagnostics)
	}
	if err != nil {
		return err
	}

	if flowchartStdout {
		fmt.Println(res.Diagram)
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	outFile := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(path), ".pseudo")+".mmd")
	if err := os.WriteFile(outFile, []byte(res.Diagram), 0o644); err != nil {
		return err
	}
	fmt.Printf("↪ wrote %s\n", outFile)
	return nil
}
