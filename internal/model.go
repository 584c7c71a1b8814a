package internal

import "time"

// CravingTrigger is the fixed set of trigger tags a craving can carry.
// An empty trigger is allowed (the user skipped the question).
type CravingTrigger string

const (
	TriggerStress  CravingTrigger = "stress"
	TriggerCoffee  CravingTrigger = "coffee"
	TriggerSocial  CravingTrigger = "social"
	TriggerBoredom CravingTrigger = "boredom"
	TriggerAlcohol CravingTrigger = "alcohol"
)

// SavingsGoal is an optional target the user saves toward.
type SavingsGoal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
}

// Profile is the quit profile, set up once and changed only by explicit
// re-edit. QuitInstant is always stored in UTC; conversion from the user's
// local wall-clock input happens at the API boundary and nowhere else.
type Profile struct {
	QuitInstant       time.Time    `json:"quit_instant"`
	CigarettesPerDay  float64      `json:"cigarettes_per_day"`
	PricePerPack      float64      `json:"price_per_pack"`
	CigarettesPerPack int          `json:"cigarettes_per_pack"`
	Currency          string       `json:"currency"`
	SavingsGoal       *SavingsGoal `json:"savings_goal,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// CravingLog is a single user-reported craving. Timestamp is the instant of
// logging, not of the craving's onset. Entries are immutable once created;
// only a full reset removes them.
type CravingLog struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Intensity int            `json:"intensity"` // 1–10 scale
	Trigger   CravingTrigger `json:"trigger,omitempty"`
	Mood      string         `json:"mood,omitempty"` // reserved, no UI writes it yet
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of the coaching conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings are the display preferences persisted alongside the user data.
type Settings struct {
	Theme    string `json:"theme"`    // light, dark
	Language string `json:"language"` // ar, fr
}

// Snapshot is the full persisted state. Export returns it verbatim; reset
// replaces it with the zero state.
type Snapshot struct {
	Profile     *Profile      `json:"profile"`
	Cravings    []CravingLog  `json:"cravings"`
	ChatHistory []ChatMessage `json:"chat_history"`
	Settings    Settings      `json:"settings"`
}

func DefaultSettings() Settings {
	return Settings{Theme: "light", Language: "ar"}
}

func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Cravings:    []CravingLog{},
		ChatHistory: []ChatMessage{},
		Settings:    DefaultSettings(),
	}
}
