package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tallyapp/tally/internal/auth"
	activityHandler "github.com/tallyapp/tally/internal/http/activity"
	authHandler "github.com/tallyapp/tally/internal/http/auth"
	childHandler "github.com/tallyapp/tally/internal/http/child"
	"github.com/tallyapp/tally/internal/http/metrics"
	messageHandler "github.com/tallyapp/tally/internal/http/message"
	pointsHandler "github.com/tallyapp/tally/internal/http/points"
)

func New(
	tokens *auth.Authenticator,
	allowedOrigins []string,
	authV1 *authHandler.Handler,
	childrenV1 *childHandler.Handler,
	pointsV1 *pointsHandler.Handler,
	activitiesV1 *activityHandler.Handler,
	messagesV1 *messageHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(tokens))
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/children", childrenV1.Routes)
			r.Route("/points", pointsV1.Routes)
			r.Route("/messages", messagesV1.Routes)

			r.Route("/activities", func(r chi.Router) {
				r.Use(RequireRole(auth.RoleParent, auth.RoleAdmin))
				activitiesV1.Routes(r)
			})
		})
	})

	return router
}
