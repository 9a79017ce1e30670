package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var writeConfig bool

const starterProgram = `// %s: starter program
START
INPUT limit
SET total = 0
FOR i = 1 TO limit
    total = total + i
NEXT
IF total > 100 THEN
    PRINT "big sum"
ELSE
    PRINT total
END IF
END
`

var InitCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a starter pseudocode file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	InitCmd.Flags().BoolVar(&writeConfig, "write-config", false, "also write a default config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := strings.TrimSuffix(args[0], ".pseudo")
	path := name + ".pseudo"

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(fmt.Sprintf(starterProgram, name)), 0o644); err != nil {
		return err
	}
	fmt.Printf("↪ wrote %s\n", path)

	if !writeConfig {
		return nil
	}
	return writeDefaultConfig()
}

// writeDefaultConfig materializes the config loadConfig would otherwise
// assume, so users have something to edit.
func writeDefaultConfig() error {
	path := configPath
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return err
		}
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data, err := yaml.Marshal(Config{Targets: []string{"python"}, Color: "auto"})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("↪ wrote %s\n", path)
	return nil
}
