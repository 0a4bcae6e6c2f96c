package model

import "github.com/jackc/pgx/v5/pgtype"

// MaxPostLength is counted in runes, not bytes.
const MaxPostLength = 140

type Post struct {
	ID        int64              `json:"id"`
	AuthorID  int64              `json:"author_id"`
	Body      string             `json:"body"`
	Language  string             `json:"language,omitempty"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type PostDetailed struct {
	Post   *Post `json:"post,omitempty"`
	Author *User `json:"author,omitempty"`
}
