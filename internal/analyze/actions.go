// Package analyze implements the analyze command: scan the partitions of a
// data directory in parallel, reduce the partial aggregates into one usage
// report, rank the chatty sites and tags, and render the result.
package analyze

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dtnitsch/qa-stats/internal/corpus"
	"github.com/dtnitsch/qa-stats/models"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.Config{}
	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
		config = loaded
	}

	// CLI flags override config file values.
	if c.IsSet("data-dir") {
		config.DataDir = c.String("data-dir")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("report-id") {
		config.ReportID = c.String("report-id")
	}
	if c.IsSet("output") {
		config.Output = c.String("output")
	}
	if c.IsSet("format") {
		config.Format = c.String("format")
	}

	if c.IsSet("workers") && c.Int("workers") <= 0 {
		logger.Warn("Invalid worker count, using host parallelism instead", "requested", c.Int("workers"))
	}
	config.ApplyDefaults()

	if config.DataDir == "" {
		fmt.Fprintln(os.Stderr, "Error: No data directory provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  qa-stats analyze --data-dir ./data`)
		fmt.Fprintln(os.Stderr, `  qa-stats analyze --config config.yaml --workers 8`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: qa-stats analyze --help")
		os.Exit(1)
	}
	if config.Format != "json" && config.Format != "table" {
		fmt.Fprintf(os.Stderr, "Error: Unknown format %q (expected json or table)\n", config.Format)
		os.Exit(1)
	}

	partitions, err := corpus.Discover(config.DataDir)
	if err != nil {
		logger.Error("failed to discover partitions", "error", err, "data_dir", config.DataDir)
		os.Exit(2)
	}
	logger.Info("Discovered partitions", "count", len(partitions), "data_dir", config.DataDir)

	report, err := run(logger, config, partitions)
	if err != nil {
		logger.Error("analysis failed, no report produced", "error", err)
		os.Exit(1)
	}

	totalQuestions := 0
	totalWords := 0
	for _, site := range report.Sites {
		totalQuestions += site.Questions
		totalWords += site.Words
	}

	switch config.Format {
	case "table":
		renderTable(os.Stdout, report)
	default:
		if err := writeJSON(report, config.Output); err != nil {
			logger.Error("failed to write report", "error", err)
			os.Exit(2)
		}
	}

	logger.Info("Analysis complete",
		"sites", len(report.Sites),
		"tags", len(report.Tags),
		"questions", humanize.Comma(int64(totalQuestions)),
		"words", humanize.Comma(int64(totalWords)),
		"duration", time.Since(startTime).Round(time.Millisecond).String(),
	)

	return nil
}
