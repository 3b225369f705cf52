package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"stock-screener/internal/api/handlers"
	"stock-screener/internal/api/middleware"
	"stock-screener/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Optional .env for local development; silently absent elsewhere.
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("SCREENER_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded configuration from %s", path)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	valueHandler := handlers.NewValueHandler(nil, cfg)
	screenHandler := handlers.NewScreenHandler(nil, nil, cfg)
	sectorHandler := handlers.NewSectorHandler(cfg)
	historyHandler := handlers.NewHistoryHandler(nil)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/value", valueHandler.RunValuation)
		api.POST("/screen", screenHandler.RunScreen)

		api.GET("/indices", handlers.ListIndices)
		api.GET("/sectors", sectorHandler.ListSectors)
		api.GET("/history/:ticker", historyHandler.GetHistory)
	}

	// CORS wraps the whole engine so preflight requests are answered
	// without per-route handlers.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
