package dto

import (
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// ProfileResponse represents a user's profile and balance
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Points    int64     `json:"points"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileViewResponse is the caller's profile with recent activity
type ProfileViewResponse struct {
	Profile        ProfileResponse       `json:"profile"`
	RecentActivity []TransactionResponse `json:"recentActivity"`
}

// NewProfileResponse maps a profile
func NewProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Points:    p.Points(),
		IsAdmin:   p.IsAdmin,
		CreatedAt: p.CreatedAt,
	}
}

// NewProfileViewResponse maps a profile view
func NewProfileViewResponse(v *entity.ProfileView) ProfileViewResponse {
	activity := make([]TransactionResponse, 0, len(v.RecentActivity))
	for _, t := range v.RecentActivity {
		activity = append(activity, NewTransactionResponse(t))
	}
	return ProfileViewResponse{Profile: NewProfileResponse(v.Profile), RecentActivity: activity}
}
