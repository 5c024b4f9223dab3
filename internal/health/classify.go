package health

import (
	"math"

	"github.com/sitelabor/backend/internal/model"
)

// Metrics is the aggregated input the classifier judges: one number per
// signal plus the raw counts surfaced in the result for auditability.
type Metrics struct {
	AvgProgress      float64
	TotalContract    int
	TotalLaborCost   int
	OverrunRatio     float64
	DeltaRatio       float64
	TodayWorkers     int
	RecentAvgWorkers float64
}

// ComputeMetrics runs the three aggregations over one project.
func ComputeMetrics(p *model.Project, rates map[string]model.LaborRate, windowDays int) Metrics {
	m := Metrics{AvgProgress: AverageProgress(p)}
	m.TotalContract, m.TotalLaborCost, m.OverrunRatio = CumulativeCost(p, rates)
	m.DeltaRatio, m.TodayWorkers, m.RecentAvgWorkers = WorkforceDelta(p, windowDays)
	return m
}

// classifyFlags maps each signal to its ordinal level. Cost worsens as the
// overrun ratio rises, schedule worsens as average progress falls, and the
// workforce signal treats a crash and a spike as equally risky.
func classifyFlags(m Metrics, policy model.HealthPolicy) model.HealthFlags {
	var flags model.HealthFlags

	switch {
	case m.OverrunRatio >= policy.CostOverrunDanger:
		flags.Cost = model.FlagBad
	case m.OverrunRatio >= policy.CostOverrunWarn:
		flags.Cost = model.FlagWarn
	}

	switch {
	case m.AvgProgress < policy.ProgressDangerMin*100.0:
		flags.Schedule = model.FlagBad
	case m.AvgProgress < policy.ProgressWarnMin*100.0:
		flags.Schedule = model.FlagWarn
	}

	switch {
	case m.DeltaRatio <= policy.WorkforceDangerDrop || m.DeltaRatio >= policy.WorkforceDangerSurge:
		flags.Workforce = model.FlagBad
	case m.DeltaRatio <= policy.WorkforceWarnDrop || m.DeltaRatio >= policy.WorkforceWarnSurge:
		flags.Workforce = model.FlagWarn
	}

	return flags
}

func buildResult(m Metrics, flags model.HealthFlags, overall model.FlagLevel) model.HealthResult {
	status, color := model.StatusForLevel(overall)
	return model.HealthResult{
		Status:           status,
		StatusColor:      color,
		AvgProgress:      math.Round(m.AvgProgress*10) / 10,
		OverrunRatio:     m.OverrunRatio,
		TodayWorkers:     m.TodayWorkers,
		RecentAvgWorkers: m.RecentAvgWorkers,
		Flags:            flags,
	}
}

// Classifier turns a project, its labor rates, and a policy snapshot into a
// HealthResult. Implementations differ only in how the three flags reduce
// to one overall status. The returned error is a configuration error from
// an invalid policy; sparse or malformed project data never fails.
type Classifier interface {
	Classify(p *model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy) (model.HealthResult, error)
}

// Classifier kinds accepted by New.
const (
	KindMax  = "max"
	KindMean = "mean"
)

// New returns the classifier for the configured kind. Anything other than
// KindMean yields the canonical max-of-flags classifier.
func New(kind string) Classifier {
	if kind == KindMean {
		return MeanScoreClassifier{}
	}
	return MaxFlagClassifier{}
}

// MaxFlagClassifier is the canonical reduction: the overall status is the
// worst of the three flags, so any single critical signal marks the whole
// project critical.
type MaxFlagClassifier struct{}

func (MaxFlagClassifier) Classify(p *model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy) (model.HealthResult, error) {
	if err := policy.Validate(); err != nil {
		return model.HealthResult{}, err
	}
	m := ComputeMetrics(p, rates, policy.WorkforceWindowDays)
	flags := classifyFlags(m, policy)
	return buildResult(m, flags, flags.Max()), nil
}

// MeanScoreClassifier is the alternate reduction: the mean of the three
// ordinal flag scores, thresholded at 1.5 (danger) and 0.5 (warning). A
// single bad flag with two good ones reads as warning here, not danger.
type MeanScoreClassifier struct{}

func (MeanScoreClassifier) Classify(p *model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy) (model.HealthResult, error) {
	if err := policy.Validate(); err != nil {
		return model.HealthResult{}, err
	}
	m := ComputeMetrics(p, rates, policy.WorkforceWindowDays)
	flags := classifyFlags(m, policy)

	score := float64(flags.Cost+flags.Schedule+flags.Workforce) / 3.0
	overall := model.FlagGood
	switch {
	case score >= 1.5:
		overall = model.FlagBad
	case score >= 0.5:
		overall = model.FlagWarn
	}
	return buildResult(m, flags, overall), nil
}

// Evaluate classifies one project with the canonical max-of-flags policy.
func Evaluate(p *model.Project, rates map[string]model.LaborRate, policy model.HealthPolicy) (model.HealthResult, error) {
	return MaxFlagClassifier{}.Classify(p, rates, policy)
}
