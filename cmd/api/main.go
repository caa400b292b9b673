package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/a-team/clinic-booking-api/internal/auth"
	"github.com/a-team/clinic-booking-api/internal/config"
	"github.com/a-team/clinic-booking-api/internal/handlers"
	"github.com/a-team/clinic-booking-api/internal/repository"
	"github.com/a-team/clinic-booking-api/internal/routes"
	"github.com/a-team/clinic-booking-api/internal/services"
)

func main() {
	cfg := config.Load()
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET is not set")
	}

	// --- Database connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("Successfully connected to MongoDB!")

	// --- Services ---
	hasher := auth.NewPasswordHasher(cfg.PasswordPepper, cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.TokenSecret)
	mailer, err := services.NewMailer(cfg.Email, cfg.FrontendURL)
	if err != nil {
		log.Fatalf("Failed to set up mailer: %v", err)
	}
	images, err := services.NewImageStore(cfg.AssetsDir)
	if err != nil {
		log.Fatalf("Failed to set up image store: %v", err)
	}

	h := handlers.New(db, hasher, tokens, mailer, images)

	// --- Gin router ---
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	r.Static("/static", cfg.AssetsDir)

	routes.Register(r, h, tokens)

	log.Printf("Server is running on port %s ...", cfg.ServerPort)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
