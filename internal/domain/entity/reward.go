package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// Reward is a catalog entry redeemable for a fixed number of points
type Reward struct {
	ID         string
	Name       string
	Slug       string
	PointsCost int64
	CreatedAt  time.Time
}

// NewReward validates and creates a catalog entry
func NewReward(name string, pointsCost int64, timeProvider coreport.TimeProvider) (*Reward, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrInvalidRewardName
	}
	if err := ValidateAmount(pointsCost); err != nil {
		return nil, err
	}

	s := slug.Make(name)
	if s == "" {
		return nil, errs.ErrInvalidRewardName
	}

	return &Reward{
		ID:         uuid.NewString(),
		Name:       name,
		Slug:       s,
		PointsCost: pointsCost,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// RedemptionDescription is the ledger description recorded when the reward is redeemed
func (r *Reward) RedemptionDescription() string {
	return "Reward: " + r.Name
}
