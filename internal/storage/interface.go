package storage

import (
	"context"

	"github.com/Oussamaberchi/Quickkt/internal"
)

type ProfileRepository interface {
	// SaveProfile creates or replaces the single quit profile.
	SaveProfile(ctx context.Context, p *internal.Profile) error
	// GetProfile returns (nil, nil) when no profile has been set up yet;
	// an absent profile is a normal state, not an error.
	GetProfile(ctx context.Context) (*internal.Profile, error)
}

type CravingRepository interface {
	// SaveCraving appends one entry. The log is append-only; entries are
	// removed only by Reset.
	SaveCraving(ctx context.Context, c *internal.CravingLog) error
	// ListCravings returns the full log in insertion order.
	ListCravings(ctx context.Context) ([]internal.CravingLog, error)
}

type ChatRepository interface {
	AppendMessage(ctx context.Context, m *internal.ChatMessage) error
	ListMessages(ctx context.Context) ([]internal.ChatMessage, error)
}

type SettingsRepository interface {
	SaveSettings(ctx context.Context, s internal.Settings) error
	GetSettings(ctx context.Context) (internal.Settings, error)
}

// StateStore is the persistence boundary: one logical snapshot slot holding
// profile, craving log, chat history and settings.
type StateStore interface {
	ProfileRepository
	CravingRepository
	ChatRepository
	SettingsRepository

	// Snapshot returns a faithful, complete copy of the live state for export.
	Snapshot(ctx context.Context) (*internal.Snapshot, error)
	// Reset clears the profile, craving log and chat history. Destructive;
	// confirmation is the caller's concern.
	Reset(ctx context.Context) error

	Close() error
}
