package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

type CravingRequest struct {
	Intensity int    `json:"intensity" validate:"required,gte=1,lte=10"`
	Trigger   string `json:"trigger" validate:"omitempty,oneof=stress coffee social boredom alcohol"`
	Mood      string `json:"mood" validate:"omitempty"`
}

func ValidateCravingRequest(req *CravingRequest) error {
	return validate.Struct(req)
}

// LogCraving appends one entry. The timestamp is the instant of logging, not
// of the craving's onset.
func LogCraving(ctx context.Context, repo storage.CravingRepository, req *CravingRequest) (*internal.CravingLog, error) {
	entry := &internal.CravingLog{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Intensity: req.Intensity,
		Trigger:   internal.CravingTrigger(req.Trigger),
		Mood:      req.Mood,
	}
	if err := repo.SaveCraving(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
