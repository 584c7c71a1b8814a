package quit

import (
	"time"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// StatsSnapshot is everything the dashboard shows, derived from a single
// (now, profile) pair. It is recomputed from scratch on every evaluation;
// nothing here accumulates state.
type StatsSnapshot struct {
	Now               time.Time           `json:"now"`
	ElapsedSeconds    int64               `json:"elapsed_seconds"`
	Elapsed           Breakdown           `json:"elapsed"`
	CigarettesAvoided int64               `json:"cigarettes_avoided"`
	MoneySaved        float64             `json:"money_saved"`
	MoneySavedDisplay string              `json:"money_saved_display"`
	Currency          string              `json:"currency"`
	LifeRegained      LifeRegained        `json:"life_regained"`
	Projections       []Projection        `json:"projections"`
	GoalProgress      *GoalProgress       `json:"goal_progress,omitempty"`
	Milestones        []MilestoneProgress `json:"milestones"`
	Organs            []OrganRecovery     `json:"organs"`
	Level             LevelState          `json:"level"`
	Badges            []BadgeState        `json:"badges"`
}

// ComputeStats evaluates the whole engine at one instant. The profile is read
// only; a nil profile is the caller's error and not checked here.
func ComputeStats(now time.Time, p *internal.Profile, lang string) *StatsSnapshot {
	elapsed := ElapsedSeconds(now, p.QuitInstant)
	saved := MoneySaved(elapsed, p)
	return &StatsSnapshot{
		Now:               now,
		ElapsedSeconds:    elapsed,
		Elapsed:           BreakdownSeconds(elapsed),
		CigarettesAvoided: CigarettesAvoided(elapsed, p),
		MoneySaved:        saved,
		MoneySavedDisplay: FormatMoney(saved),
		Currency:          p.Currency,
		LifeRegained:      LifeRegainedFrom(elapsed, p),
		Projections:       Projections(p),
		GoalProgress:      GoalProgressFrom(elapsed, p),
		Milestones:        EvaluateMilestones(elapsed, lang),
		Organs:            EvaluateOrgans(elapsed, lang),
		Level:             EvaluateLevel(elapsed, lang),
		Badges:            EvaluateBadges(elapsed, lang),
	}
}
