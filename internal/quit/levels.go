package quit

// tier is one step of the rank progression. Threshold is where the next tier
// starts, in elapsed days.
type tier struct {
	level         int
	titleAr       string
	titleFr       string
	thresholdDays int
}

var tiers = []tier{
	{1, "مبتدئ", "Novice", 1},
	{2, "متدرب", "Apprenti", 7},
	{3, "محارب", "Guerrier", 30},
	{4, "بطل", "Héros", 90},
	{5, "أسطورة", "Légende", 365},
	{6, "معلم", "Maître", 0}, // top tier, no next threshold
}

// LevelState is the rank derived from elapsed days. At the top tier AtCap is
// set and NextThresholdDays is zero; there is no computed future day count.
type LevelState struct {
	Level             int     `json:"level"`
	Title             string  `json:"title"`
	NextThresholdDays int     `json:"next_threshold_days"`
	PercentToNext     float64 `json:"percent_to_next"`
	AtCap             bool    `json:"at_cap"`
}

type badgeDef struct {
	id      string
	labelAr string
	labelFr string
	seconds int64
}

var badgeDefs = []badgeDef{
	{"24h", "24 ساعة", "24 heures", 24 * 3600},
	{"1w", "أسبوع", "1 semaine", 7 * 24 * 3600},
	{"1m", "شهر", "1 mois", 30 * 24 * 3600},
	{"3m", "3 أشهر", "3 mois", 90 * 24 * 3600},
	{"1y", "سنة", "1 an", 365 * 24 * 3600},
}

// BadgeState is a pure predicate over elapsed seconds; for a fixed quit
// instant the achieved set only grows as real time advances.
type BadgeState struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Achieved bool   `json:"achieved"`
}

// EvaluateLevel maps elapsed seconds onto the six-tier rank ladder.
func EvaluateLevel(elapsedSeconds int64, lang string) LevelState {
	days := float64(elapsedSeconds) / float64(SecondsPerDay)
	for _, t := range tiers[:len(tiers)-1] {
		if days < float64(t.thresholdDays) {
			return LevelState{
				Level:             t.level,
				Title:             tierTitle(t, lang),
				NextThresholdDays: t.thresholdDays,
				PercentToNext:     days / float64(t.thresholdDays) * 100,
			}
		}
	}
	top := tiers[len(tiers)-1]
	return LevelState{
		Level:         top.level,
		Title:         tierTitle(top, lang),
		PercentToNext: 100,
		AtCap:         true,
	}
}

func EvaluateBadges(elapsedSeconds int64, lang string) []BadgeState {
	out := make([]BadgeState, 0, len(badgeDefs))
	for _, b := range badgeDefs {
		label := b.labelAr
		if lang == "fr" {
			label = b.labelFr
		}
		out = append(out, BadgeState{
			ID:       b.id,
			Label:    label,
			Achieved: elapsedSeconds >= b.seconds,
		})
	}
	return out
}

func tierTitle(t tier, lang string) string {
	if lang == "fr" {
		return t.titleFr
	}
	return t.titleAr
}
