package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"datacheck/internal/config"
	"datacheck/internal/report"
)

var (
	// validate flags
	domainFlag  string
	allDomains  bool
	datasetsDir string
	schemasDir  string
	jobs        int
)

// validateCmd runs the validation pipeline for one or all domains
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate one or all domain datasets",
	Long: `Runs the full check pipeline over each requested domain and prints a
per-domain report followed by a cross-domain summary.

Examples:
  datacheck validate --domain contracts
  datacheck validate --all
  datacheck validate --domain medical --datasets-dir /corpora/datasets`,
	RunE: runValidate,
}

// domainsCmd lists the configured domains
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the configured domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		for _, d := range cfg.Domains {
			fmt.Println(d)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&domainFlag, "domain", "", "validate a single domain dataset")
	validateCmd.Flags().BoolVar(&allDomains, "all", false, "validate all configured domains")
	validateCmd.Flags().StringVar(&datasetsDir, "datasets-dir", "", "override the datasets directory")
	validateCmd.Flags().StringVar(&schemasDir, "schemas-dir", "", "override the schemas directory")
	validateCmd.Flags().IntVar(&jobs, "jobs", 0, "max domains validated in parallel (0 = all at once)")
	validateCmd.MarkFlagsMutuallyExclusive("domain", "all")
	validateCmd.MarkFlagsOneRequired("domain", "all")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if datasetsDir != "" {
		cfg.DatasetsDir = datasetsDir
	}
	if schemasDir != "" {
		cfg.SchemasDir = schemasDir
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = jobs
	}

	domains := cfg.Domains
	if !allDomains {
		if !cfg.IsValidDomain(domainFlag) {
			return fmt.Errorf("unknown domain %q (configured: %v)", domainFlag, cfg.Domains)
		}
		domains = []string{domainFlag}
	}

	runID := uuid.NewString()
	logger.Info("starting validation run",
		zap.String("run_id", runID),
		zap.Strings("domains", domains),
		zap.String("datasets_dir", cfg.DatasetsDir),
		zap.String("schemas_dir", cfg.SchemasDir))

	runner := &report.Runner{
		DatasetsDir: cfg.DatasetsDir,
		SchemasDir:  cfg.SchemasDir,
		Jobs:        cfg.Jobs,
		Logger:      logger,
	}
	reports := runner.ValidateAll(cmd.Context(), domains)

	renderer := report.NewRenderer(os.Stdout)
	for _, r := range reports {
		renderer.Domain(r)
	}
	renderer.Summary(runID, reports)

	if !report.AllPassed(reports) {
		return report.ErrValidationFailed
	}
	return nil
}
