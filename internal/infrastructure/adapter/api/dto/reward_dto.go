package dto

import "github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"

// RewardResponse is a catalog entry
type RewardResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PointsCost int64  `json:"pointsCost"`
}

// NewRewardResponse maps a catalog entry
func NewRewardResponse(r *entity.Reward) RewardResponse {
	return RewardResponse{ID: r.ID, Name: r.Name, Slug: r.Slug, PointsCost: r.PointsCost}
}
