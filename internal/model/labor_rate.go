package model

import "time"

// LaborRate holds the per-head rates for one work type, one per shift.
// Locked rates are excluded from bulk edits (administrative concern only;
// the health engine reads rates regardless of the lock).
type LaborRate struct {
	WorkType  string    `json:"work_type"`
	Day       int       `json:"day"`
	Night     int       `json:"night"`
	Midnight  int       `json:"midnight"`
	Locked    bool      `json:"locked"`
	UpdatedAt time.Time `json:"updated_at"`
}
