package mapreduce

import (
	"sort"

	"github.com/dtnitsch/qa-stats/pkg/stats"
)

// chattyLimit bounds every chatty ranking to the ten highest-ratio keys.
const chattyLimit = 10

// Chatty returns the keys with the highest words-per-question ratio, at
// most ten, ordered by descending ratio with ties broken by ascending key.
// The tie-break makes the order a total one, so the result is identical no
// matter how the input map iterates.
func Chatty(usage map[string]stats.UsageStat) []string {
	type ranked struct {
		key   string
		ratio float64
	}

	items := make([]ranked, 0, len(usage))
	for key, stat := range usage {
		items = append(items, ranked{key: key, ratio: stat.Ratio()})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].ratio != items[j].ratio {
			return items[i].ratio > items[j].ratio
		}
		return items[i].key < items[j].key
	})

	limit := chattyLimit
	if len(items) < limit {
		limit = len(items)
	}

	keys := make([]string, limit)
	for i := 0; i < limit; i++ {
		keys[i] = items[i].key
	}

	return keys
}

// RankReport computes the three chatty rankings over a fully merged report
// and attaches them: the global site ranking, the global tag ranking, and
// each site's own tag ranking. It must run exactly once, after the last
// merge; rankings are never recomputed incrementally.
func RankReport(report *stats.Report) {
	siteUsage := make(map[string]stats.UsageStat, len(report.Sites))
	for name, site := range report.Sites {
		siteUsage[name] = site.UsageStat
	}
	report.Totals["chatty_sites"] = Chatty(siteUsage)
	report.Totals["chatty_tags"] = Chatty(report.Tags)

	for _, site := range report.Sites {
		site.ChattyTags = Chatty(site.Tags)
	}
}
