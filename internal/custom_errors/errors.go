package custom_errors

import (
	"errors"
	"fmt"
)

// Categories. Every domain error below wraps exactly one of them so callers can
// branch on the category with errors.Is.
var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotFound         = errors.New("not found")
	ErrIndexSync        = errors.New("search index sync failure")
)

// Infrastructure errors.
var (
	ErrDatabaseQuery        = errors.New("database query failed")
	ErrCacheMiss            = errors.New("cache miss")
	ErrExternalServiceError = errors.New("external service error")
	ErrUnauthenticated      = errors.New("unauthenticated")
)

// Post store.
var (
	ErrPostBodyEmpty   = fmt.Errorf("%w: post body is empty", ErrValidation)
	ErrPostBodyTooLong = fmt.Errorf("%w: post body exceeds 140 characters", ErrValidation)
	ErrPostNotFound    = fmt.Errorf("%w: post", ErrNotFound)
)

// Pagination and search.
var (
	ErrInvalidPageSize   = fmt.Errorf("%w: page size must be positive", ErrValidation)
	ErrEmptySearchQuery  = fmt.Errorf("%w: search query is empty", ErrValidation)
	ErrInvalidPageNumber = fmt.Errorf("%w: page must be a number", ErrValidation)
)

// User directory.
var (
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrUsernameTaken      = fmt.Errorf("%w: username already in use", ErrValidation)
	ErrEmailTaken         = fmt.Errorf("%w: email address already in use", ErrValidation)
	ErrAboutMeTooLong     = fmt.Errorf("%w: about me exceeds 140 characters", ErrValidation)
	ErrInvalidUsername    = fmt.Errorf("%w: username is empty", ErrValidation)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
)

// Follow graph.
var (
	ErrSelfFollow = fmt.Errorf("%w: users cannot follow themselves", ErrInvalidOperation)
)
