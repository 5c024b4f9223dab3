package model

// FlagLevel is the ordinal severity of one health signal.
type FlagLevel int

const (
	FlagGood FlagLevel = iota
	FlagWarn
	FlagBad
)

func (f FlagLevel) String() string {
	switch f {
	case FlagBad:
		return "bad"
	case FlagWarn:
		return "warn"
	default:
		return "good"
	}
}

// MarshalJSON emits the flag as its label so API payloads stay readable.
func (f FlagLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// HealthFlags holds the three per-signal classifications.
type HealthFlags struct {
	Cost      FlagLevel `json:"cost"`
	Schedule  FlagLevel `json:"schedule"`
	Workforce FlagLevel `json:"workers"`
}

// Max returns the worst of the three flags.
func (f HealthFlags) Max() FlagLevel {
	max := f.Cost
	if f.Schedule > max {
		max = f.Schedule
	}
	if f.Workforce > max {
		max = f.Workforce
	}
	return max
}

// Overall status labels and display colors, as the dashboards render them.
const (
	StatusGood    = "양호"
	StatusWarning = "경고"
	StatusDanger  = "위험"

	ColorGood    = "success"
	ColorWarning = "warning"
	ColorDanger  = "danger"
)

// StatusForLevel maps an ordinal level to its label and display color.
func StatusForLevel(l FlagLevel) (status, color string) {
	switch l {
	case FlagBad:
		return StatusDanger, ColorDanger
	case FlagWarn:
		return StatusWarning, ColorWarning
	default:
		return StatusGood, ColorGood
	}
}

// HealthResult is the full classification output for one project: the
// overall status plus the auditable metric breakdown behind it. Transient,
// recomputed on every read.
type HealthResult struct {
	Status      string `json:"status"`
	StatusColor string `json:"status_color"`

	AvgProgress      float64     `json:"avg_progress"`
	OverrunRatio     float64     `json:"overrun_pct"`
	TodayWorkers     int         `json:"today_workers"`
	RecentAvgWorkers float64     `json:"recent_avg_workers"`
	Flags            HealthFlags `json:"flags"`
}
