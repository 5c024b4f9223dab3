package model

// WorkEntry is one work type's attendance for a single date: headcounts
// for the three shifts plus the derived total, and an optional progress
// reading in percent. A nil Progress means no reading was recorded that
// day, which is different from 0.
type WorkEntry struct {
	Day      int      `json:"day"`
	Night    int      `json:"night"`
	Midnight int      `json:"midnight"`
	Total    int      `json:"total"`
	Progress *float64 `json:"progress,omitempty"`
}

// NewWorkEntry builds an entry with Total derived from the shift counts.
func NewWorkEntry(day, night, midnight int, progress *float64) *WorkEntry {
	e := &WorkEntry{Day: day, Night: night, Midnight: midnight, Progress: progress}
	e.RecomputeTotal()
	return e
}

// RecomputeTotal rederives Total from the shift counts. Callers that
// mutate shift counts directly must call this before persisting.
func (e *WorkEntry) RecomputeTotal() {
	e.Total = e.Day + e.Night + e.Midnight
}
