package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID           int64              `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"-"`
	AboutMe      string             `json:"about_me,omitempty"`
	LastSeen     pgtype.Timestamptz `json:"last_seen"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

// UserProfile is a user as seen by another (or the same) user.
type UserProfile struct {
	User           *User `json:"user"`
	FollowersCount int   `json:"followers_count"`
	FollowingCount int   `json:"following_count"`
	IsFollowing    bool  `json:"is_following"`
}
