package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/router"
	"github.com/SandMart23/Aplikasi-Bawang/internal/storage"
	"github.com/SandMart23/Aplikasi-Bawang/pkg/utils"
)

// buildStore picks the key-value backend from STORAGE_DRIVER.
// redis is the default; postgres and memory are also supported.
func buildStore(ctx context.Context) (storage.Store, error) {
	driver := utils.Getenv("STORAGE_DRIVER", "redis")
	switch driver {
	case "postgres":
		dbHost := utils.Getenv("DB_HOST", "localhost")
		dbPort := utils.Getenv("DB_PORT", "5432")
		dbUser := utils.Getenv("DB_USER", "bawang_user")
		dbPassword := utils.Getenv("DB_PASSWORD", "bawang_password")
		dbName := utils.Getenv("DB_NAME", "bawang_goreng_db")
		dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
		return storage.NewPostgresStore(ctx, dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		addr := utils.Getenv("REDIS_ADDR", "localhost:6379")
		password := utils.Getenv("REDIS_PASSWORD", "")
		db := utils.GetenvInt("REDIS_DB", 0)
		return storage.NewRedisStore(ctx, addr, password, db)
	}
}

func main() {
	// Initialize Logger
	utils.InitLogger()

	jwtSecret := utils.Getenv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	utils.InitJWT(jwtSecret)

	adminUsername := utils.Getenv("ADMIN_USERNAME", "admin")
	adminPassword := utils.Getenv("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}
	adminPasswordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	store, err := buildStore(context.Background())
	if err != nil {
		utils.LogError(err, "Failed to initialize storage")
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	utils.LogInfo("Storage initialized", map[string]interface{}{"driver": utils.Getenv("STORAGE_DRIVER", "redis")})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, store, router.Config{
		AdminUsername:     adminUsername,
		AdminPasswordHash: adminPasswordHash,
	})

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
