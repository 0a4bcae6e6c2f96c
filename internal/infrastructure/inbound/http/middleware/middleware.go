package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"microblog-service/internal/custom_errors"
	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/inbound/http/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func Recovery(log ports.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("Panic while handling request",
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())))
					response.Error(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog tags each request with an id, reusing one sent by the client.
func AccessLog(log ports.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

			log.Info("HTTP request",
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

func Metrics(metrics ports.MetricsProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			status := strconv.Itoa(rec.status)
			metrics.IncrementHTTPRequests(r.Method, route, status)
			metrics.RecordHTTPRequestDuration(r.Method, route, status, time.Since(start))
		})
	}
}

type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Auth rejects requests without a valid bearer token.
func Auth(tokens TokenVerifier, log ports.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				response.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				log.Debug("Rejected bearer token", slog.String("error", err.Error()))
				response.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

type LastSeenToucher interface {
	TouchLastSeen(ctx context.Context, userID int64) error
}

// TouchLastSeen records activity of the authenticated user. A token whose user
// no longer exists is rejected.
func TouchLastSeen(users LastSeenToucher, log ports.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := UserIDFromContext(r.Context()); ok {
				if err := users.TouchLastSeen(r.Context(), userID); err != nil {
					if errors.Is(err, custom_errors.ErrUserNotFound) {
						response.Error(w, http.StatusUnauthorized, "unknown user")
						return
					}
					log.Warn("Failed to update last seen", slog.Int64("user_id", userID), slog.String("error", err.Error()))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

type IndexEnsurer interface {
	EnsureIndexed(ctx context.Context) error
}

// EnsureIndexed gives the search index a chance to rebuild itself. Failures
// never block the request.
func EnsureIndexed(search IndexEnsurer, log ports.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := search.EnsureIndexed(r.Context()); err != nil {
				log.Warn("Search index check failed", slog.String("error", err.Error()))
			}
			next.ServeHTTP(w, r)
		})
	}
}
