package model

type PostFilters struct {
	AuthorID *int64
	// FollowedBy selects posts written by this user or by anyone they follow.
	FollowedBy *int64
	Limit      *int
	Offset     *int
}
