package storage

import (
	"context"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// TickSource adapts a StateStore for the tick path. It only ever reads; a
// load failure degrades to "no profile" so a storage hiccup can never stall
// the clock-driven recomputation.
type TickSource struct {
	store  StateStore
	logger internal.Logger
}

func NewTickSource(store StateStore, logger internal.Logger) *TickSource {
	return &TickSource{store: store, logger: logger}
}

func (s *TickSource) CurrentProfile() *internal.Profile {
	p, err := s.store.GetProfile(context.Background())
	if err != nil {
		s.logger.Warnf("tick source: profile read failed: %v", err)
		return nil
	}
	return p
}

func (s *TickSource) CurrentLanguage() string {
	set, err := s.store.GetSettings(context.Background())
	if err != nil {
		return internal.DefaultSettings().Language
	}
	return set.Language
}
