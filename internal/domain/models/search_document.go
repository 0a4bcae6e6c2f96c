package model

type SearchDocument struct {
	ID             int64  `json:"id"`
	AuthorUsername string `json:"author_username"`
	Body           string `json:"body"`
	Language       string `json:"language,omitempty"`
}

func NewSearchDocument(post *Post, author *User) *SearchDocument {
	doc := &SearchDocument{
		ID:       post.ID,
		Body:     post.Body,
		Language: post.Language,
	}
	if author != nil {
		doc.AuthorUsername = author.Username
	}
	return doc
}
