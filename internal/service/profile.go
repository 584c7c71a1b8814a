package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/storage"
)

var validate = validator.New()

type SavingsGoalRequest struct {
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"required,gt=0"`
}

// ProfileRequest is what the setup form submits. QuitInstant arrives as
// RFC3339 with the user's offset; it is normalized to UTC here, once, and
// never converted again.
type ProfileRequest struct {
	QuitInstant       time.Time           `json:"quit_instant" validate:"required"`
	CigarettesPerDay  float64             `json:"cigarettes_per_day" validate:"required,gt=0"`
	PricePerPack      float64             `json:"price_per_pack" validate:"gte=0"`
	CigarettesPerPack int                 `json:"cigarettes_per_pack" validate:"required,gt=0"`
	Currency          string              `json:"currency" validate:"required"`
	SavingsGoal       *SavingsGoalRequest `json:"savings_goal,omitempty"`
}

// ValidateProfileRequest rejects invalid input before a Profile ever exists.
// CigarettesPerPack > 0 in particular is enforced here because the metrics
// engine divides by it.
func ValidateProfileRequest(req *ProfileRequest) error {
	return validate.Struct(req)
}

func SaveProfile(ctx context.Context, repo storage.ProfileRepository, req *ProfileRequest) (*internal.Profile, error) {
	p := &internal.Profile{
		QuitInstant:       req.QuitInstant.UTC(),
		CigarettesPerDay:  req.CigarettesPerDay,
		PricePerPack:      req.PricePerPack,
		CigarettesPerPack: req.CigarettesPerPack,
		Currency:          req.Currency,
		CreatedAt:         time.Now().UTC(),
	}
	if req.SavingsGoal != nil {
		p.SavingsGoal = &internal.SavingsGoal{
			Name:         req.SavingsGoal.Name,
			TargetAmount: req.SavingsGoal.TargetAmount,
		}
	}
	if err := repo.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
