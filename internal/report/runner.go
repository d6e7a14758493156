package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"datacheck/internal/checks"
	"datacheck/internal/corpus"
	"datacheck/internal/schema"
)

// Runner validates domains against the datasets and schemas directories.
// Domains share no mutable state, so the runner fans them out across
// goroutines and joins on the completed reports.
type Runner struct {
	DatasetsDir string
	SchemasDir  string
	// Jobs bounds concurrent domain validations; <=0 means unbounded.
	Jobs   int
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return zap.NewNop()
}

// ValidateAll validates every listed domain, in parallel, and returns the
// reports in input order regardless of completion order.
func (r *Runner) ValidateAll(ctx context.Context, domains []string) []*DomainReport {
	reports := make([]*DomainReport, len(domains))

	g, gctx := errgroup.WithContext(ctx)
	if r.Jobs > 0 {
		g.SetLimit(r.Jobs)
	}
	for i, domain := range domains {
		i, domain := i, domain
		g.Go(func() error {
			reports[i] = r.ValidateDomain(gctx, domain)
			return nil
		})
	}
	// Workers never return errors; findings live in the reports.
	_ = g.Wait()

	return reports
}

// ValidateDomain runs the full check sequence over one domain's corpus.
// Nothing here aborts the domain short of loading zero records: schema load
// failures, unreadable files, and every structural finding all surface as
// check results inside the report.
func (r *Runner) ValidateDomain(ctx context.Context, domain string) *DomainReport {
	log := r.logger().With(zap.String("domain", domain))
	report := &DomainReport{Domain: domain, SplitCounts: make(map[string]int)}

	if err := ctx.Err(); err != nil {
		report.Checks = append(report.Checks, checks.Fail("Validation run", fmt.Sprintf("run cancelled: %v", err)))
		return report
	}

	sch, err := schema.Load(r.SchemasDir, domain)
	if err != nil {
		log.Warn("schema loading failed", zap.Error(err))
		report.Checks = append(report.Checks, checks.Fail("Schema loading", err.Error()))
	} else {
		log.Info("schema loaded", zap.Bool("draft07_validator", sch.CanValidate()))
	}

	domainDir := filepath.Join(r.DatasetsDir, domain)
	if info, statErr := os.Stat(domainDir); statErr != nil || !info.IsDir() {
		report.Checks = append(report.Checks, checks.Fail("Dataset directory",
			fmt.Sprintf("directory not found: %s", domainDir)))
		return report
	}

	loaded := corpus.LoadDomain(domainDir)
	report.SplitCounts = loaded.SplitCounts
	report.ExampleCount = loaded.ExampleCount()
	log.Info("corpus loaded",
		zap.Int("examples", report.ExampleCount),
		zap.Int("load_errors", len(loaded.Errors)))

	if len(loaded.Errors) > 0 {
		report.Checks = append(report.Checks, checks.Fail("File loading", loaded.Errors...))
	}
	if report.ExampleCount == 0 {
		report.Checks = append(report.Checks, checks.Fail("Data presence",
			fmt.Sprintf("no examples loaded for domain %q", domain)))
		return report
	}

	in := checks.Input{
		Label:              "[" + domain + "]",
		Records:            loaded.Records,
		Schema:             sch,
		UseSchemaValidator: sch.CanValidate(),
		SplitCounts:        loaded.SplitCounts,
	}

	for _, desc := range checks.Registry(sch != nil) {
		result := desc.Run(in)
		report.Checks = append(report.Checks, result)
		log.Debug("check completed",
			zap.String("check", result.Name),
			zap.Bool("passed", result.Passed),
			zap.Int("errors", len(result.Errors)),
			zap.Int("warnings", len(result.Warnings)))
	}

	log.Info("domain validated", zap.Bool("passed", report.Passed()))
	return report
}
