package stats

// SiteStats aggregates every question attributed to one site: the site's
// own totals plus per-tag totals for the tags seen on its questions.
// ChattyTags stays empty until the ranking phase runs over the fully merged
// report; merges never touch it.
type SiteStats struct {
	UsageStat
	Tags       map[string]UsageStat `json:"tags"`
	ChattyTags []string             `json:"chatty_tags"`
}

// NewSiteStats returns the zero aggregate, the identity of Merge.
func NewSiteStats() *SiteStats {
	return &SiteStats{
		Tags:       make(map[string]UsageStat),
		ChattyTags: []string{},
	}
}

// Merge folds another site aggregate into this one: totals are added and
// the tag maps unioned, adding stats for tags present in both. The receiver
// must be privately owned by the caller; other is never modified.
func (s *SiteStats) Merge(other *SiteStats) {
	s.UsageStat = s.UsageStat.Add(other.UsageStat)
	for tag, stat := range other.Tags {
		s.Tags[tag] = s.Tags[tag].Add(stat)
	}
}
