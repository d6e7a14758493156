// datacheck certifies fine-tuning corpora before training: it runs a fixed
// pipeline of validation checks over each domain's train/validation/test
// splits and exits non-zero when any requested domain fails.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"datacheck/internal/report"
)

const version = "1.2.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "datacheck",
	Short: "datacheck - fine-tuning dataset validation engine",
	Long: `datacheck inspects structured conversation corpora and certifies that
each domain meets its quality bars before training.

Checks performed per domain:
  JSON validity, conversation format, schema compliance, empty fields,
  category balance, duplicates, token length, split ratios, PII detection.

The full report is always printed; the exit code (0 = all requested
domains passed) is the contract automation should depend on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the tool version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datacheck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("datacheck %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a datacheck YAML config file")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(domainsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, report.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
