package stats

// Report is the fully aggregated output of a run: per-site aggregates,
// global per-tag totals across all sites, and the bounded chatty rankings.
// Totals holds the "chatty_sites" and "chatty_tags" entries once the
// ranking phase has run; before that it is empty. After ranking the report
// is read-only.
type Report struct {
	ID     string                `json:"id"`
	Sites  map[string]*SiteStats `json:"sites"`
	Tags   map[string]UsageStat  `json:"tags"`
	Totals map[string][]string   `json:"totals"`
}

// NewReport returns an empty report, the identity of MergeSite.
func NewReport(id string) *Report {
	return &Report{
		ID:     id,
		Sites:  make(map[string]*SiteStats),
		Tags:   make(map[string]UsageStat),
		Totals: make(map[string][]string),
	}
}

// MergeSite folds one site aggregate into the report: the site's stats
// merge into Sites[name] (several partitions may legitimately share a site
// name) and its per-tag stats fold into the global tag totals. The site
// aggregate is taken over by the report when the name is new; callers must
// not reuse it afterwards.
func (r *Report) MergeSite(name string, site *SiteStats) {
	if existing, ok := r.Sites[name]; ok {
		existing.Merge(site)
	} else {
		r.Sites[name] = site
	}

	for tag, stat := range site.Tags {
		r.Tags[tag] = r.Tags[tag].Add(stat)
	}
}
