package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"stock-sentiment-api/api"
	"stock-sentiment-api/cache"
	"stock-sentiment-api/config"
	"stock-sentiment-api/database"
	"stock-sentiment-api/marketdata"
	"stock-sentiment-api/reddit"
	"stock-sentiment-api/sentiment"
	"stock-sentiment-api/stocks"
)

// App represents the main application
type App struct {
	config *config.Config

	redditClient *reddit.Client
	quoteClient  *marketdata.Client

	db       *database.Database
	redis    *cache.RedisClient
	postRepo *database.PostRepository

	sentimentSvc *sentiment.Service
	priceSvc     *stocks.Service
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	return &App{
		config:       cfg,
		redditClient: reddit.NewClient(cfg.RedditClientID, cfg.RedditClientSecret),
		quoteClient:  marketdata.NewClient(cfg.AlphaVantageBaseURL, cfg.AlphaVantageAPIKey),
		db:           nil, // Will be initialized in Start()
		redis:        nil, // Will be initialized in Start()
	}
}

// Start starts the application
func (a *App) Start() error {
	clock := clockwork.NewRealClock()

	// 1. Database Connection
	fmt.Println("🗄️  Connecting to database...")
	db, err := database.Connect(database.Config{
		Host:     a.config.DatabaseHost,
		Port:     a.config.DatabasePort,
		User:     a.config.DatabaseUser,
		Password: a.config.DatabasePassword,
		DBName:   a.config.DatabaseName,
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.db = db

	a.postRepo = database.NewPostRepository(a.db)
	if err := a.postRepo.InitSchema(); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	// 2. Redis Connection
	fmt.Println("🧠 Connecting to Redis...")
	redisClient := cache.NewRedisClient(
		a.config.RedisHost,
		a.config.RedisPort,
		a.config.RedisPassword,
	)
	if redisClient == nil {
		// Quote lookups still work; every request just refreshes from the provider
		fmt.Println("⚠️  Redis connection failed. Quote caching disabled.")
	} else {
		a.redis = redisClient
	}

	// 3. Wire services
	a.sentimentSvc = sentiment.NewService(a.redditClient, sentiment.NewClassifier(), clock, a.config.Sentiment)
	a.priceSvc = stocks.NewService(cache.NewPriceCache(a.redis), a.quoteClient, clock)

	if a.config.AlphaVantageAPIKey == "" {
		log.Println("⚠️  No Alpha Vantage API key configured, quote lookups will serve placeholder data")
	}
	if a.config.RedditClientID == "" {
		log.Println("⚠️  No Reddit credentials configured, sentiment will degrade to neutral")
	}

	// 4. Start API Server
	apiServer := api.NewServer(a.sentimentSvc, a.priceSvc, a.postRepo, a.db, a.config.Sentiment.DefaultWindowDays)
	go func() {
		if err := apiServer.Start(a.config.Port); err != nil {
			log.Printf("⚠️  API Server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("📡 Received signal %v, shutting down...", sig)

	return a.Stop()
}

// Stop gracefully shuts down the application
func (a *App) Stop() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		}
	}

	log.Println("👋 Shutdown complete")
	return nil
}
