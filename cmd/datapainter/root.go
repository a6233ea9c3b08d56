// Root command for the datapainter CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapainter/internal/paths"
	"github.com/mesh-intelligence/datapainter/pkg/datapainter"
)

// Exit codes. 65/66 follow the sysexits convention for unusable input
// sources and failed operations.
const (
	exitSuccess   = 0
	exitUsage     = 2
	exitOpenError = 65
	exitOpError   = 66
)

// Global flag values.
var (
	flagConfigDir string
	flagDatabase  string
)

// configDatabase holds the database value loaded from config.yaml. Set by
// PersistentPreRunE so all subcommands can use it.
var configDatabase string

var rootCmd = &cobra.Command{
	Use:     "datapainter",
	Short:   "datapainter is a two-class 2D point labeling tool",
	Version: datapainter.Version,
	Long: `datapainter manages SQLite-backed tables of labeled 2D points.
Each table carries exactly two label values; edits accumulate in an
append-only change log with undo/redo and are committed atomically.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}
		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		configDatabase = cfg.GetString(cfgKeyDatabase)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "database file (default: $(CWD)/datapainter.db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveDatabase returns the database path following the precedence
// chain: --database flag > config.yaml > DATAPAINTER_DB env > CWD default.
func resolveDatabase() (string, error) {
	return paths.ResolveDatabase(flagDatabase, configDatabase)
}
