package quit

import "time"

var motivationalQuotesAr = []string{
	"أنا غير مدخن. هذا هو قراري. أنا حر.",
	"السيجارة لا تعطيني شيئاً، بل تسرق مني كل شيء.",
	"كل رغبة تستمر 3 دقائق فقط. اشتغل على أي شيء 3 دقائق، ستختفي.",
	"أنا لا أحاول الإقلاع، أنا غير مدخن.",
	"الاستثمار في صحتك هو أفضل استثمار ستقوم به على الإطلاق.",
	"حتى سحبة واحدة ترجعك للبداية. لا سيجارة واحدة أبداً.",
	"الرغبة الملحة ستمر، سواء دخنت أم لا. اختر ألا تدخن.",
}

var motivationalQuotesFr = []string{
	"Je suis non-fumeur. C'est ma décision. Je suis libre.",
	"La cigarette ne me donne rien, elle me vole tout.",
	"Chaque envie ne dure que 3 minutes. Occupez-vous pendant 3 minutes, elle disparaîtra.",
	"Je n'essaie pas d'arrêter, je suis non-fumeur.",
	"Investir dans votre santé est le meilleur investissement que vous ferez jamais.",
	"Même une seule bouffée vous ramène au début. Pas une seule cigarette, jamais.",
	"L'envie passera, que vous fumiez ou non. Choisissez de ne pas fumer.",
}

var cravingTipsAr = []string{
	"اشرب كوباً كبيراً من الماء ببطء.",
	"قم بممارسة تمرين التنفس العميق.",
	"اخرج للمشي قليلاً في الهواء الطلق.",
	"اتصل بصديق أو شخص داعم.",
	"اغسل أسنانك لتشعر بالانتعاش.",
	"مضغ علكة خالية من السكر.",
	"اشغل يديك بشيء آخر (كرة ضغط، قلم).",
}

var cravingTipsFr = []string{
	"Buvez un grand verre d'eau lentement.",
	"Faites un exercice de respiration profonde.",
	"Sortez pour une petite marche en plein air.",
	"Appelez un ami ou une personne de soutien.",
	"Brossez-vous les dents pour vous sentir frais.",
	"Mâchez un chewing-gum sans sucre.",
	"Occupez vos mains avec autre chose (balle anti-stress, stylo).",
}

// BrandPreset is a pack-price preset for the setup form.
type BrandPreset struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var BrandPresets = []BrandPreset{
	{"Marlboro Rouge", 350},
	{"Marlboro Gold", 350},
	{"Gauloises Blondes", 300},
	{"Winston", 300},
	{"L&M", 250},
	{"Rym", 150},
	{"Nassim", 150},
	{"Afras", 150},
	{"Custom / مخصص", 0},
}

func MotivationalQuotes(lang string) []string {
	if lang == "fr" {
		return motivationalQuotesFr
	}
	return motivationalQuotesAr
}

func CravingTips(lang string) []string {
	if lang == "fr" {
		return cravingTipsFr
	}
	return cravingTipsAr
}

// QuoteOfDay picks one quote per calendar day so the dashboard shows a stable
// quote instead of a new one on every refresh.
func QuoteOfDay(now time.Time, lang string) string {
	quotes := MotivationalQuotes(lang)
	return quotes[now.YearDay()%len(quotes)]
}
