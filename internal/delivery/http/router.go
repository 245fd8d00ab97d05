package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"allocate/internal/delivery/http/controllers"
	"allocate/internal/delivery/http/middleware"
	"allocate/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes. Event
// reads are public; event mutations require a valid bearer token.
func NewRouter(authController *controllers.AuthController, eventController *controllers.EventController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Admin auth
	mux.HandleFunc("POST /api/admin/signup", authController.SignUp)
	mux.HandleFunc("POST /api/admin/login", authController.Login)

	// Events
	mux.HandleFunc("GET /api/events", eventController.List)
	mux.HandleFunc("GET /api/events/{id}", eventController.GetByID)
	mux.HandleFunc("POST /api/events", requireAuth(eventController.Create))
	mux.HandleFunc("PUT /api/events/{id}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /api/events/{id}", requireAuth(eventController.Delete))

	// Liveness
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
