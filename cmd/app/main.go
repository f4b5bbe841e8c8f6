package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"cardledger/pkg/auth"
	"cardledger/pkg/events"
	livehandler "cardledger/pkg/handlers/live"
	"cardledger/pkg/handlers/transactions"
	"cardledger/pkg/middleware"
	"cardledger/pkg/query"
	dynamostore "cardledger/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	transactionsTable := os.Getenv("DYNAMODB_TRANSACTIONS_TABLE_NAME")
	countersTable := os.Getenv("DYNAMODB_COUNTERS_TABLE_NAME")
	if transactionsTable == "" || countersTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Create our storage implementation
	store := dynamostore.New(dbClient, transactionsTable, countersTable)

	// Redis carries the live delta stream between writers and viewers.
	redisClient, err := events.NewRedisClient(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		log.Fatalf("unable to connect to redis, %v", err)
	}
	bus := events.NewRedisBus(redisClient, store, logger)

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	// Query engine and handlers
	engine := query.NewEngine(store, store)
	txHandler := transactions.NewTransactionsHandler(engine, store, store, bus, logger)
	liveHandler := livehandler.NewLiveHandler(engine, bus, logger)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/transactions", func(r chi.Router) {
		r.Use(auth.RequireSession([]byte(sessionSecret)))
		r.Get("/", txHandler.ListTransactions)
		r.Post("/", txHandler.CreateTransaction)
		r.Get("/live", liveHandler.ServeLiveView)
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	logger.Info("starting server", "port", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
