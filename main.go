package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/qa-stats/internal/analyze"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "qa-stats",
		Usage: "aggregate question and word usage statistics over JSONL partitions",
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "scan a data directory and emit the aggregated usage report",
				Action: analyze.AnalyzeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data-dir",
						Usage: "directory containing the .jsonl partition files",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "worker pool size (defaults to host parallelism)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file (flags override file values)",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "write the JSON report to this file instead of stdout",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "report format: json or table",
					},
					&cli.StringFlag{
						Name:  "report-id",
						Usage: "identifier stamped into the report",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
