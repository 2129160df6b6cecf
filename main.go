package main

import (
	"net/http"

	"food4u-api/config"
	"food4u-api/handlers"
	"food4u-api/logger"
	"food4u-api/routes"
	"food4u-api/session"
	"food4u-api/store"
	"food4u-api/token"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(logger.ParseLevel(cfg.LogLevel))

	// Set Gin mode
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Warningf("close database: %v", err)
		}
	}()
	logger.Infof("Database %s connected and migrated", cfg.DBPath)

	tokens := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	sessions := session.NewManager(
		store.NewAccountStore(db),
		session.NewBcryptHasher(cfg.BcryptCost),
		tokens,
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "db": "disconnected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "db": "connected"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Food4U API is running",
			"health":  "/health",
			"roles":   []string{"customer", "driver", "restaurant"},
		})
	})

	routes.SetupRoutes(r, routes.Deps{
		Auth:     handlers.NewAuthHandler(sessions),
		Foods:    handlers.NewFoodHandler(store.NewFoodStore(db)),
		Tokens:   tokens,
		Sessions: sessions,
	})

	logger.Infof("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Errorf("Failed to start server: %v", err)
	}
}
