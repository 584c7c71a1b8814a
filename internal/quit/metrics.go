package quit

import (
	"strconv"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// MinutesPerCigarette is the published heuristic of life expectancy regained
// per cigarette not smoked. Approximate, not a clinical claim.
const MinutesPerCigarette = 11

// ProjectionPeriodsDays are the canonical forward-projection horizons:
// one, five and ten years.
var ProjectionPeriodsDays = []int{365, 365 * 5, 365 * 10}

type LifeRegained struct {
	Minutes int64 `json:"minutes"`
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
}

type Projection struct {
	PeriodDays int     `json:"period_days"`
	Amount     float64 `json:"amount"`
}

type GoalProgress struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Saved        float64 `json:"saved"`
	Percent      float64 `json:"percent"`
}

// CigarettesAvoided floors rather than rounds: a user who just crossed a
// fraction of a cigarette is not credited early.
func CigarettesAvoided(elapsedSeconds int64, p *internal.Profile) int64 {
	return int64(float64(elapsedSeconds) / float64(SecondsPerDay) * p.CigarettesPerDay)
}

// CostPerCigarette assumes a validated profile; CigarettesPerPack > 0 is
// enforced at the input boundary before a Profile ever exists.
func CostPerCigarette(p *internal.Profile) float64 {
	return p.PricePerPack / float64(p.CigarettesPerPack)
}

// MoneySaved keeps full precision. Rounding to two decimals is a display
// concern; the raw value feeds the goal-progress ratio.
func MoneySaved(elapsedSeconds int64, p *internal.Profile) float64 {
	return float64(CigarettesAvoided(elapsedSeconds, p)) * CostPerCigarette(p)
}

// FormatMoney renders an amount the way the dashboard shows it.
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func LifeRegainedFrom(elapsedSeconds int64, p *internal.Profile) LifeRegained {
	minutes := CigarettesAvoided(elapsedSeconds, p) * MinutesPerCigarette
	return LifeRegained{
		Minutes: minutes,
		Days:    minutes / (24 * 60),
		Hours:   (minutes % (24 * 60)) / 60,
	}
}

// ProjectedSavings is a forward projection from the daily rate, independent
// of elapsed time.
func ProjectedSavings(p *internal.Profile, periodDays int) float64 {
	return p.CigarettesPerDay / float64(p.CigarettesPerPack) * p.PricePerPack * float64(periodDays)
}

func Projections(p *internal.Profile) []Projection {
	out := make([]Projection, 0, len(ProjectionPeriodsDays))
	for _, d := range ProjectionPeriodsDays {
		out = append(out, Projection{PeriodDays: d, Amount: ProjectedSavings(p, d)})
	}
	return out
}

// GoalProgressFrom returns nil when no savings goal is set.
func GoalProgressFrom(elapsedSeconds int64, p *internal.Profile) *GoalProgress {
	if p.SavingsGoal == nil || p.SavingsGoal.TargetAmount <= 0 {
		return nil
	}
	saved := MoneySaved(elapsedSeconds, p)
	percent := saved / p.SavingsGoal.TargetAmount * 100
	if percent > 100 {
		percent = 100
	}
	return &GoalProgress{
		Name:         p.SavingsGoal.Name,
		TargetAmount: p.SavingsGoal.TargetAmount,
		Saved:        saved,
		Percent:      percent,
	}
}
