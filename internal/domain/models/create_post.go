package model

type CreatePostDTO struct {
	AuthorID int64  `json:"author_id"`
	Body     string `json:"body"`
	// Language is optional; when empty the service asks the detector.
	Language string `json:"language,omitempty"`
}
