package model

import (
	"fmt"
	"strings"
	"time"
)

// HealthPolicy is the process-wide set of classification thresholds.
// Cost and workforce thresholds are fractional ratios; progress minimums are
// fractions of the 0-100 progress scale. A zero threshold means "unset" and
// fails validation: a missing threshold silently disabling an alert is a
// configuration error, not sparse data.
type HealthPolicy struct {
	CostOverrunWarn   float64 `json:"cost_overrun_warn" yaml:"cost_overrun_warn"`
	CostOverrunDanger float64 `json:"cost_overrun_danger" yaml:"cost_overrun_danger"`

	ProgressWarnMin   float64 `json:"progress_warn_min" yaml:"progress_warn_min"`
	ProgressDangerMin float64 `json:"progress_danger_min" yaml:"progress_danger_min"`

	WorkforceWindowDays  int     `json:"workforce_window_days" yaml:"workforce_window_days"`
	WorkforceWarnDrop    float64 `json:"workforce_warn_drop" yaml:"workforce_warn_drop"`
	WorkforceDangerDrop  float64 `json:"workforce_danger_drop" yaml:"workforce_danger_drop"`
	WorkforceWarnSurge   float64 `json:"workforce_warn_surge" yaml:"workforce_warn_surge"`
	WorkforceDangerSurge float64 `json:"workforce_danger_surge" yaml:"workforce_danger_surge"`

	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// DefaultHealthPolicy returns the company-standard thresholds.
func DefaultHealthPolicy() HealthPolicy {
	return HealthPolicy{
		CostOverrunWarn:      0.05,
		CostOverrunDanger:    0.12,
		ProgressWarnMin:      0.50,
		ProgressDangerMin:    0.20,
		WorkforceWindowDays:  7,
		WorkforceWarnDrop:    -0.40,
		WorkforceDangerDrop:  -0.60,
		WorkforceWarnSurge:   0.40,
		WorkforceDangerSurge: 0.60,
	}
}

// Validate rejects unset or inconsistent thresholds.
func (p HealthPolicy) Validate() error {
	var errs []string
	if p.CostOverrunWarn <= 0 {
		errs = append(errs, "cost_overrun_warn must be set and positive")
	}
	if p.CostOverrunDanger <= 0 {
		errs = append(errs, "cost_overrun_danger must be set and positive")
	}
	if p.CostOverrunDanger < p.CostOverrunWarn {
		errs = append(errs, "cost_overrun_danger must be >= cost_overrun_warn")
	}
	if p.ProgressWarnMin <= 0 || p.ProgressWarnMin > 1 {
		errs = append(errs, "progress_warn_min must be in (0, 1]")
	}
	if p.ProgressDangerMin <= 0 || p.ProgressDangerMin > 1 {
		errs = append(errs, "progress_danger_min must be in (0, 1]")
	}
	if p.ProgressDangerMin > p.ProgressWarnMin {
		errs = append(errs, "progress_danger_min must be <= progress_warn_min")
	}
	if p.WorkforceWindowDays < 1 {
		errs = append(errs, "workforce_window_days must be at least 1")
	}
	if p.WorkforceWarnDrop >= 0 {
		errs = append(errs, "workforce_warn_drop must be set and negative")
	}
	if p.WorkforceDangerDrop >= 0 {
		errs = append(errs, "workforce_danger_drop must be set and negative")
	}
	if p.WorkforceDangerDrop > p.WorkforceWarnDrop {
		errs = append(errs, "workforce_danger_drop must be <= workforce_warn_drop")
	}
	if p.WorkforceWarnSurge <= 0 {
		errs = append(errs, "workforce_warn_surge must be set and positive")
	}
	if p.WorkforceDangerSurge <= 0 {
		errs = append(errs, "workforce_danger_surge must be set and positive")
	}
	if p.WorkforceDangerSurge < p.WorkforceWarnSurge {
		errs = append(errs, "workforce_danger_surge must be >= workforce_warn_surge")
	}
	if len(errs) > 0 {
		return fmt.Errorf("health policy: %s", strings.Join(errs, "; "))
	}
	return nil
}

// HealthPolicyPatch is a partial threshold update; nil fields keep the
// current value. The whole policy is read-modify-written in one step.
type HealthPolicyPatch struct {
	CostOverrunWarn      *float64 `json:"cost_overrun_warn,omitempty"`
	CostOverrunDanger    *float64 `json:"cost_overrun_danger,omitempty"`
	ProgressWarnMin      *float64 `json:"progress_warn_min,omitempty"`
	ProgressDangerMin    *float64 `json:"progress_danger_min,omitempty"`
	WorkforceWindowDays  *int     `json:"workforce_window_days,omitempty"`
	WorkforceWarnDrop    *float64 `json:"workforce_warn_drop,omitempty"`
	WorkforceDangerDrop  *float64 `json:"workforce_danger_drop,omitempty"`
	WorkforceWarnSurge   *float64 `json:"workforce_warn_surge,omitempty"`
	WorkforceDangerSurge *float64 `json:"workforce_danger_surge,omitempty"`
}

// Apply returns a copy of p with the patch's non-nil fields replaced.
func (p HealthPolicy) Apply(patch HealthPolicyPatch) HealthPolicy {
	if patch.CostOverrunWarn != nil {
		p.CostOverrunWarn = *patch.CostOverrunWarn
	}
	if patch.CostOverrunDanger != nil {
		p.CostOverrunDanger = *patch.CostOverrunDanger
	}
	if patch.ProgressWarnMin != nil {
		p.ProgressWarnMin = *patch.ProgressWarnMin
	}
	if patch.ProgressDangerMin != nil {
		p.ProgressDangerMin = *patch.ProgressDangerMin
	}
	if patch.WorkforceWindowDays != nil {
		p.WorkforceWindowDays = *patch.WorkforceWindowDays
	}
	if patch.WorkforceWarnDrop != nil {
		p.WorkforceWarnDrop = *patch.WorkforceWarnDrop
	}
	if patch.WorkforceDangerDrop != nil {
		p.WorkforceDangerDrop = *patch.WorkforceDangerDrop
	}
	if patch.WorkforceWarnSurge != nil {
		p.WorkforceWarnSurge = *patch.WorkforceWarnSurge
	}
	if patch.WorkforceDangerSurge != nil {
		p.WorkforceDangerSurge = *patch.WorkforceDangerSurge
	}
	return p
}
