package model

import "github.com/jackc/pgx/v5/pgtype"

type Follow struct {
	FollowerID int64              `json:"follower_id"`
	FollowedID int64              `json:"followed_id"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
