package routes

import (
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"

	"pulsewave/app/auth"
	"pulsewave/app/controllers"
	"pulsewave/app/middleware"
	"pulsewave/app/repositories"
	"pulsewave/app/services"
)

// Options carries everything the router needs beyond the store.
type Options struct {
	AuthConfig auth.Config
	BotSecret  string
}

// SetupRoutes defines the application's routes and returns a router, using
// the provided Badger DB.
func SetupRoutes(db *badger.DB, opts Options) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	postService := services.NewPostService(postRepo)
	return SetupRoutesWithService(postService, opts)
}

// SetupRoutesWithService wires the router over an existing service, which
// lets tests supply a mock-backed one.
func SetupRoutesWithService(postService *services.PostService, opts Options) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Session(opts.AuthConfig.SessionSecret))

	postController := controllers.NewPostController(postService)
	botController := controllers.NewBotController(postService, opts.BotSecret)
	authController := controllers.NewAuthController(opts.AuthConfig)

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods(http.MethodGet)
	posts.HandleFunc("", postController.Create).Methods(http.MethodPost)
	posts.HandleFunc("/{id}", postController.React).Methods(http.MethodPatch)

	// Bot posting endpoint
	api.HandleFunc("/bot-post", botController.Create).Methods(http.MethodPost)

	// Session capability endpoint
	api.HandleFunc("/auth/session", authController.Session).Methods(http.MethodGet)

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
