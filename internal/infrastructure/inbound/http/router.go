package delivery_http

import (
	"net/http"

	ports "microblog-service/internal/domain/ports/output"
	"microblog-service/internal/infrastructure/inbound/http/handler"
	"microblog-service/internal/infrastructure/inbound/http/middleware"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Posts  *handler.PostHandler
	Users  *handler.UserHandler
	Search *handler.SearchHandler
}

type Guards struct {
	Tokens   middleware.TokenVerifier
	LastSeen middleware.LastSeenToucher
	Index    middleware.IndexEnsurer
}

func NewRouter(h Handlers, g Guards, log ports.Logger, metrics ports.MetricsProvider) *mux.Router {
	r := mux.NewRouter()
	r.Use(
		middleware.Recovery(log),
		middleware.AccessLog(log),
		middleware.Metrics(metrics),
	)

	r.HandleFunc("/healthz", handler.Health).Methods(http.MethodGet)
	r.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(
		middleware.Auth(g.Tokens, log),
		middleware.TouchLastSeen(g.LastSeen, log),
		middleware.EnsureIndexed(g.Index, log),
	)

	api.HandleFunc("/feed", h.Posts.Feed).Methods(http.MethodGet)
	api.HandleFunc("/explore", h.Posts.Explore).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.Posts.Create).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", h.Posts.Get).Methods(http.MethodGet)
	api.HandleFunc("/profile", h.Users.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users/{username}", h.Users.Profile).Methods(http.MethodGet)
	api.HandleFunc("/users/{username}/posts", h.Users.Posts).Methods(http.MethodGet)
	api.HandleFunc("/users/{username}/follow", h.Users.Follow).Methods(http.MethodPost)
	api.HandleFunc("/users/{username}/follow", h.Users.Unfollow).Methods(http.MethodDelete)
	api.HandleFunc("/search", h.Search.Search).Methods(http.MethodGet)

	return r
}
