package entity

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge from a follower to a followed user.
type Follow struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowProfile is a user as seen in a followers or following list.
type FollowProfile struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	UserType     UserType  `json:"user_type"`
	BusinessName string    `json:"business_name,omitempty"`
	FollowedAt   time.Time `json:"followed_at"`
}

// BusinessListing is a search result row for business discovery.
type BusinessListing struct {
	UserID         uuid.UUID `json:"user_id"`
	BusinessName   string    `json:"business_name"`
	Category       string    `json:"category,omitempty"`
	City           string    `json:"city,omitempty"`
	FollowersCount int       `json:"followers_count"`
	IsPro          bool      `json:"is_pro"`
}
