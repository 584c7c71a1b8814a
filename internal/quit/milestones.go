package quit

// Milestone is one entry of the fixed health-recovery catalog. Durations are
// approximate published heuristics, not clinical guarantees.
type Milestone struct {
	ID      int
	LabelAr string
	LabelFr string
	Seconds int64
	Icon    string
}

// Organ is a named aggregate recovery figure with a single threshold of its
// own; it is not derived from the milestone list.
type Organ struct {
	ID      string
	LabelAr string
	LabelFr string
	Seconds int64
}

// HealthMilestones spans 20 minutes to 10 years, ordered ascending by
// threshold. The evaluation below does not rely on that ordering.
var HealthMilestones = []Milestone{
	{1, "ضغط الدم يعود لطبيعته", "La tension artérielle redevient normale", 20 * 60, "heart"},
	{2, "مستوى أول أكسيد الكربون يعود لطبيعته", "Le monoxyde de carbone redevient normal", 8 * 3600, "wind"},
	{3, "انخفاض خطر الإصابة بنوبة قلبية", "Risque de crise cardiaque réduit", 24 * 3600, "activity"},
	{4, "تحسن حاستي الشم والتذوق", "Amélioration de l'odorat et du goût", 48 * 3600, "smile"},
	{5, "استرخاء الشعب الهوائية", "Les bronches se relâchent", 72 * 3600, "wind"},
	{6, "تحسن الدورة الدموية", "Amélioration de la circulation sanguine", 14 * 24 * 3600, "activity"},
	{7, "انخفاض السعال وضيق التنفس", "Diminution de la toux et de l'essoufflement", 30 * 24 * 3600, "wind"},
	{8, "خطر أمراض القلب ينخفض للنصف", "Risque de maladie cardiaque réduit de moitié", 365 * 24 * 3600, "heart"},
	{9, "خطر السكتة الدماغية يعود لطبيعته", "Risque d'AVC redevient normal", 5 * 365 * 24 * 3600, "shield"},
	{10, "خطر سرطان الرئة ينخفض للنصف", "Risque de cancer du poumon réduit de moitié", 10 * 365 * 24 * 3600, "award"},
}

var Organs = []Organ{
	{"lungs", "تجدد أهداب الرئة وتنظيف الممرات الهوائية", "Régénération des cils pulmonaires et nettoyage des voies respiratoires", 270 * 24 * 3600},
	{"circulation", "تحسن الدورة الدموية", "Amélioration de la circulation sanguine", 14 * 24 * 3600},
	{"heart", "خطر أمراض القلب ينخفض للنصف", "Risque de maladie cardiaque réduit de moitié", 365 * 24 * 3600},
}

type MilestoneProgress struct {
	MilestoneID int    `json:"milestone_id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Percent     int    `json:"percent"` // floored, clamped to [0,100]
	Complete    bool   `json:"complete"`
}

type OrganRecovery struct {
	OrganID string `json:"organ_id"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// progressPercent floors min(100, elapsed/threshold*100). Flooring keeps
// Percent == 100 equivalent to completion: anything short of the threshold
// lands at 99 or below.
func progressPercent(elapsedSeconds, thresholdSeconds int64) int {
	ratio := float64(elapsedSeconds) / float64(thresholdSeconds) * 100
	if ratio >= 100 {
		return 100
	}
	return int(ratio)
}

// EvaluateMilestones computes each catalog entry independently; there is no
// sequential gating between milestones.
func EvaluateMilestones(elapsedSeconds int64, lang string) []MilestoneProgress {
	out := make([]MilestoneProgress, 0, len(HealthMilestones))
	for _, m := range HealthMilestones {
		pct := progressPercent(elapsedSeconds, m.Seconds)
		out = append(out, MilestoneProgress{
			MilestoneID: m.ID,
			Label:       milestoneLabel(m, lang),
			Icon:        m.Icon,
			Percent:     pct,
			Complete:    pct >= 100,
		})
	}
	return out
}

func EvaluateOrgans(elapsedSeconds int64, lang string) []OrganRecovery {
	out := make([]OrganRecovery, 0, len(Organs))
	for _, o := range Organs {
		label := o.LabelAr
		if lang == "fr" {
			label = o.LabelFr
		}
		out = append(out, OrganRecovery{
			OrganID: o.ID,
			Label:   label,
			Percent: progressPercent(elapsedSeconds, o.Seconds),
		})
	}
	return out
}

func milestoneLabel(m Milestone, lang string) string {
	if lang == "fr" {
		return m.LabelFr
	}
	return m.LabelAr
}
