// Package stats holds the aggregate value types for the usage report and
// their merge operations. Merging is plain integer addition everywhere,
// which is what makes the reduce phase insensitive to partition splits,
// merge order, and worker count.
package stats

// UsageStat counts how many questions contributed to a key and how many
// words those questions carried in total. Both counters only ever grow.
type UsageStat struct {
	Questions int `json:"questions"`
	Words     int `json:"words"`
}

// Add returns the field-wise sum of two stats.
func (u UsageStat) Add(other UsageStat) UsageStat {
	return UsageStat{
		Questions: u.Questions + other.Questions,
		Words:     u.Words + other.Words,
	}
}

// Ratio is the average words-per-question figure the chatty rankings sort
// by. A key only exists because at least one question contributed to it, so
// Questions is at least 1 for any stat reachable from a report.
func (u UsageStat) Ratio() float64 {
	return float64(u.Words) / float64(u.Questions)
}
