package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"stock-sentiment-api/database"
	"stock-sentiment-api/sentiment"
	"stock-sentiment-api/stocks"
)

// Server handles HTTP API requests
type Server struct {
	sentimentSvc *sentiment.Service
	priceSvc     *stocks.Service
	postRepo     *database.PostRepository
	db           *database.Database

	defaultWindowDays int
}

// NewServer creates a new API server instance
func NewServer(sentimentSvc *sentiment.Service, priceSvc *stocks.Service, postRepo *database.PostRepository, db *database.Database, defaultWindowDays int) *Server {
	return &Server{
		sentimentSvc:      sentimentSvc,
		priceSvc:          priceSvc,
		postRepo:          postRepo,
		db:                db,
		defaultWindowDays: defaultWindowDays,
	}
}

// Start starts the HTTP server on the specified port
func (s *Server) Start(port int) error {
	mux := http.NewServeMux()

	// Sentiment routes
	mux.HandleFunc("GET /api/reddit/{ticker}", s.handleGetSocialPosts)
	mux.HandleFunc("GET /api/redditSentiment/{ticker}", s.handleGetAggregateSentiment)
	mux.HandleFunc("GET /api/sentimentTimeseries/{ticker}", s.handleGetSentimentTimeseries)

	// Stock routes
	mux.HandleFunc("GET /api/stocks/{ticker}", s.handleGetStock)

	// Pinned post routes
	mux.HandleFunc("POST /api/posts", s.handleCreatePost)
	mux.HandleFunc("GET /api/posts", s.handleListPosts)

	mux.HandleFunc("GET /health", s.handleHealth)

	// Add middleware
	handler := s.corsMiddleware(s.loggingMiddleware(mux))

	serverAddr := fmt.Sprintf("0.0.0.0:%d", port)
	log.Printf("🚀 API Server starting on %s", serverAddr)
	return http.ListenAndServe(serverAddr, handler)
}

// Middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// Handlers are distributed across multiple files:
// - handlers_sentiment.go: Social posts, aggregate signal, daily series
// - handlers_stocks.go: Quote lookups through the cache gate
// - handlers_posts.go: Dashboard-pinned posts and health check
