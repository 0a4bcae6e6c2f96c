package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog-service/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
)

type toucherFunc func(ctx context.Context, userID int64) error

func (f toucherFunc) TouchLastSeen(ctx context.Context, userID int64) error { return f(ctx, userID) }

func TestRecovery(t *testing.T) {
	h := Recovery(logger.New("test"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	var seen string
	h := AccessLog(logger.New("test"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestTouchLastSeen_AnonymousPassesThrough(t *testing.T) {
	called := false
	toucher := toucherFunc(func(ctx context.Context, userID int64) error {
		called = true
		return nil
	})
	h := TouchLastSeen(toucher, logger.New("test"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserIDContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := UserIDFromContext(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}
