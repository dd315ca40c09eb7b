// Package mapreduce implements the map and reduce stages of the usage
// computation plus the chatty top-K selector. Map is pure, the merge used
// by Accumulate and ReducePartials is associative and commutative, so the
// result is identical however the work is split across workers.
package mapreduce

import (
	"github.com/dtnitsch/qa-stats/models"
	"github.com/dtnitsch/qa-stats/pkg/analytics"
	"github.com/dtnitsch/qa-stats/pkg/stats"
)

// Map turns one record into the elementary aggregate it contributes: one
// question and W words for the site, and the same one question and W words
// for every tag on the record. Words are attributed whole to each tag, not
// divided across them.
func Map(record *models.Record) *stats.SiteStats {
	words := analytics.WordCount(record.Texts)

	fragment := stats.NewSiteStats()
	fragment.UsageStat = stats.UsageStat{Questions: 1, Words: words}
	for _, tag := range record.Tags {
		fragment.Tags[tag] = stats.UsageStat{Questions: 1, Words: words}
	}

	return fragment
}

// Accumulate folds a stream of per-record fragments for one site into a
// single aggregate. An empty stream yields the zero aggregate.
func Accumulate(fragments <-chan *stats.SiteStats) *stats.SiteStats {
	acc := stats.NewSiteStats()
	for fragment := range fragments {
		acc.Merge(fragment)
	}
	return acc
}

// Partial is one partition's scan result: the site it belongs to and the
// aggregate of every record in it.
type Partial struct {
	Site  string
	Stats *stats.SiteStats
}

// ReducePartials merges all per-partition aggregates into one report,
// folding each site's tag stats into the global tag totals as it goes.
// Partials sharing a site name merge into a single site entry.
func ReducePartials(id string, partials []Partial) *stats.Report {
	report := stats.NewReport(id)
	for _, partial := range partials {
		report.MergeSite(partial.Site, partial.Stats)
	}
	return report
}
