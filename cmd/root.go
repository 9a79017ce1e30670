package cmd

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Config is the optional on-disk configuration. Flags always win over it.
type Config struct {
	Targets []string `yaml:"targets"`
	Color   string   `yaml:"color"`
}

var (
	outDir     string
	configPath string
	colorMode  string

	config Config
)

var rootCmd = &cobra.Command{
	Use:   "p2c",
	Short: "p2c: pseudocode to real code",
	Long: `p2c parses beginner-style pseudocode and converts it into source code,
a cleaned-up pseudocode reformat, or a Mermaid flowchart.

Commands:
  init       Scaffold a starter (.pseudo) file
  convert    Convert (.pseudo) files into one or more target languages
  flowchart  Render a (.pseudo) file as a Mermaid flowchart
  targets    List the supported target languages
  repl       Interactive pseudocode session
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory for generated files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/p2c/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize diagnostics: auto, always, never")

	rootCmd.AddCommand(InitCmd, ConvertCmd, FlowchartCmd, TargetsCmd, ReplCmd)
}

// loadConfig reads the YAML config when present. A missing default config
// is fine; a missing --config the user asked for by name is an error.
func loadConfig() error {
	path := configPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if configPath == "" {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, &config)
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "p2c", "config.yaml"), nil
}

// useColor resolves the --color flag (and the config fallback) against
// whether stdout is actually a terminal.
func useColor() bool {
	mode := colorMode
	if mode == "auto" && config.Color != "" {
		mode = config.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
