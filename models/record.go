package models

// Record is one question as it appears on a single line of a partition file:
// the question's text fragments plus the tags attached to it. Records are
// transient; they only live long enough to be turned into statistics.
type Record struct {
	Texts []string `json:"texts"`
	Tags  []string `json:"tags"`
}
