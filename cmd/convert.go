package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	tidwall "github.com/tidwall/pretty"

	"github.com/coreyalejandro/pseudocode-to-code/internal/engine"
	"github.com/coreyalejandro/pseudocode-to-code/internal/report"
)

var (
	targetsFlag []string
	jsonOut     bool
	astDump     bool
	toStdout    bool
)

// extensions per target for the generated files
var targetExt = map[engine.Target]string{
	"pseudocode": ".pseudo",
	"python":     ".py",
	"javascript": ".js",
	"java":       ".java",
	"csharp":     ".cs",
	"cpp":        ".cpp",
	"go":         ".go",
	"rust":       ".rs",
}

var ConvertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert pseudocode files into target languages",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func init() {
	ConvertCmd.Flags().StringSliceVarP(&targetsFlag, "targets", "t", nil, "target languages (default python)")
	ConvertCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as JSON instead of writing files")
	ConvertCmd.Flags().BoolVar(&astDump, "ast", false, "dump the parsed statement tree before converting")
	ConvertCmd.Flags().BoolVar(&toStdout, "stdout", false, "write generated code to stdout instead of files")
}

func runConvert(cmd *cobra.Command, args []string) error {
	targets := resolveTargets()

	var bar *progressbar.ProgressBar
	if len(args) > 1 && !toStdout && !jsonOut && !astDump {
		bar = progressbar.Default(int64(len(args)), "converting")
	}

	failures := 0
	for _, path := range args {
		if err := convertFile(path, targets); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failures, len(args))
	}
	return nil
}

func convertFile(path string, targets []engine.Target) error {
	if filepath.Ext(path) != ".pseudo" {
		return fmt.Errorf("source must have a .pseudo extension")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	src := string(data)

	if astDump {
		printer := pp.New()
		printer.SetColoringEnabled(useColor())
		printer.Println(engine.Parse(src))
	}

	res, err := engine.Convert(src, targets)
	if len(res.Diagnostics) > 0 && !jsonOut {
		report.NewDiagnosticPrinter(os.Stderr, useColor()).Print(path, src, res.Diagnostics)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(path, res)
	}
	return writeOutputs(path, targets, res)
}

func writeOutputs(path string, targets []engine.Target, res *engine.Result) error {
	base := strings.TrimSuffix(filepath.Base(path), ".pseudo")

	if !toStdout {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	var lastErr error
	for _, target := range targets {
		if terr, ok := res.Errors[target]; ok {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, terr)
			lastErr = terr
			continue
		}
		code := res.Outputs[target]

		if toStdout {
			fmt.Printf("Generated %s:\n%s\n", target, code)
			continue
		}

		ext, ok := targetExt[target]
		if !ok {
			ext = "." + string(target)
		}
		outFile := filepath.Join(outDir, base+ext)
		if err := os.WriteFile(outFile, []byte(code), 0o644); err != nil {
			return err
		}
		fmt.Printf("↪ wrote %s\n", outFile)
	}
	return lastErr
}

// --- JSON output ---

type jsonDiagnostic struct {
	Line       int    `json:"line"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

type jsonResult struct {
	File        string            `json:"file"`
	Outputs     map[string]string `json:"outputs"`
	Errors      map[string]string `json:"errors,omitempty"`
	Diagnostics []jsonDiagnostic  `json:"diagnostics"`
}

func printJSON(path string, res *engine.Result) error {
	out := jsonResult{
		File:        path,
		Outputs:     make(map[string]string, len(res.Outputs)),
		Diagnostics: make([]jsonDiagnostic, 0, len(res.Diagnostics)),
	}
	for target, code := range res.Outputs {
		out.Outputs[string(target)] = code
	}
	if len(res.Errors) > 0 {
		out.Errors = make(map[string]string, len(res.Errors))
		for target, terr := range res.Errors {
			out.Errors[string(target)] = terr.Error()
		}
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, jsonDiagnostic{
			Line:       d.Line,
			Kind:       d.Kind.String(),
			Message:    d.Message,
			Suggestion: d.Suggestion,
		})
	}

	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	data = tidwall.Pretty(data)
	if useColor() {
		data = tidwall.Color(data, nil)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// resolveTargets picks the target list: flag, then config, then python.
func resolveTargets() []engine.Target {
	names := targetsFlag
	if len(names) == 0 {
		names = config.Targets
	}
	if len(names) == 0 {
		names = []string{"python"}
	}

	targets := make([]engine.Target, 0, len(names))
	for _, name := range names {
		targets = append(targets, engine.Target(strings.ToLower(strings.TrimSpace(name))))
	}
	return targets
}
