package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"careerdisha/internal/metrics"
	"careerdisha/internal/service"
	"careerdisha/internal/transport/rest/handler"
	"careerdisha/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router.
type Container struct {
	AuthService      *service.AuthService
	UserService      *service.UserService
	QuizService      *service.QuizService
	RecommendService *service.RecommendService
	DirectoryService *service.DirectoryService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService)
	quizHandler := handler.NewQuizHandler(c.QuizService)
	recommendHandler := handler.NewRecommendHandler(c.RecommendService)
	directoryHandler := handler.NewDirectoryHandler(c.DirectoryService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first, then request metrics
	r.Use(corsMiddleware)
	r.Use(metrics.Middleware)

	// Health check and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/quiz/questions", quizHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/courses", directoryHandler.ListCourses).Methods("GET", "OPTIONS")
	v1.HandleFunc("/colleges", directoryHandler.ListColleges).Methods("GET", "OPTIONS")
	v1.HandleFunc("/colleges/nearby", directoryHandler.Nearby).Methods("GET", "OPTIONS")
	v1.HandleFunc("/timeline", directoryHandler.ListEvents).Methods("GET", "OPTIONS")

	// Student routes (require auth)
	studentRoutes := v1.NewRoute().Subrouter()
	studentRoutes.Use(authMW.RequireStudent)

	studentRoutes.HandleFunc("/quiz/submit", quizHandler.Submit).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/recommendations", recommendHandler.Get).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/users/me", userHandler.Me).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/users/me/location", userHandler.UpdateLocation).Methods("PUT", "OPTIONS")
	studentRoutes.HandleFunc("/courses", directoryHandler.CreateCourse).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/colleges", directoryHandler.CreateCollege).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/timeline", directoryHandler.CreateEvent).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
