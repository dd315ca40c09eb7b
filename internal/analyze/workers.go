package analyze

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dtnitsch/qa-stats/internal/corpus"
	"github.com/dtnitsch/qa-stats/models"
	"github.com/dtnitsch/qa-stats/pkg/mapreduce"
	"github.com/dtnitsch/qa-stats/pkg/parser"
	"github.com/dtnitsch/qa-stats/pkg/stats"
)

// Job defines a task for a worker to perform: scan one partition.
type Job struct {
	Partition corpus.Partition
}

// Result holds the outcome of a scanned partition.
type Result struct {
	Partial mapreduce.Partial
	Err     error
}

// scanPartition runs the parse -> map -> accumulate pipeline over one
// partition. The fragment stream and the accumulator are private to this
// call; nothing is shared until the aggregate is handed back.
func scanPartition(p *parser.Parser, part corpus.Partition) (*stats.SiteStats, error) {
	fragments := make(chan *stats.SiteStats, 64)
	scanErr := make(chan error, 1)

	go func() {
		defer close(fragments)
		scanErr <- part.EachLine(func(lineNo int, line []byte) error {
			record, err := p.ParseLine(line)
			if err != nil {
				return fmt.Errorf("partition %s line %d: %w", part.Path, lineNo, err)
			}
			fragments <- mapreduce.Map(record)
			return nil
		})
	}()

	acc := mapreduce.Accumulate(fragments)
	if err := <-scanErr; err != nil {
		return nil, err
	}

	return acc, nil
}

// worker is a goroutine that processes jobs from the jobs channel and sends
// results to the results channel.
func worker(id int, logger *slog.Logger, p *parser.Parser, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("Worker scanning partition", "worker_id", id, "site", job.Partition.Site, "path", job.Partition.Path)
		acc, err := scanPartition(p, job.Partition)
		results <- Result{
			Partial: mapreduce.Partial{Site: job.Partition.Site, Stats: acc},
			Err:     err,
		}
	}
}

// run executes the three phases over the given partitions: scan fans the
// partitions out to the worker pool, reduce merges the collected partials
// into one report, rank attaches the chatty rankings. Any scan error fails
// the whole run; no partial report is ever returned.
func run(logger *slog.Logger, config *models.Config, partitions []corpus.Partition) (*stats.Report, error) {
	p := &parser.Parser{}

	logger.Info("Starting scan phase", "partitions", len(partitions), "workers", config.Workers)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(partitions))
	results := make(chan Result, len(partitions))

	for w := 1; w <= config.Workers; w++ {
		wg.Add(1)
		go worker(w, logger, p, &wg, jobs, results)
	}

	for _, part := range partitions {
		jobs <- Job{Partition: part}
	}
	close(jobs)

	wg.Wait()
	close(results)

	partials := make([]mapreduce.Partial, 0, len(partitions))
	var runErr error
	for result := range results {
		if result.Err != nil {
			logger.Error("Partition scan failed", "error", result.Err)
			if runErr == nil {
				runErr = result.Err
			}
			continue
		}
		partials = append(partials, result.Partial)
	}
	if runErr != nil {
		return nil, runErr
	}
	logger.Info("Scan phase complete", "partials", len(partials))

	report := mapreduce.ReducePartials(config.ReportID, partials)
	logger.Info("Reduce phase complete", "sites", len(report.Sites), "tags", len(report.Tags))

	mapreduce.RankReport(report)
	logger.Info("Rank phase complete")

	return report, nil
}
