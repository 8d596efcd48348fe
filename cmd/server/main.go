package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"avatar-mint-backend/internal/avatargen"
	"avatar-mint-backend/internal/chain"
	"avatar-mint-backend/internal/config"
	"avatar-mint-backend/internal/database"
	"avatar-mint-backend/internal/handlers"
	"avatar-mint-backend/internal/middleware"
	"avatar-mint-backend/internal/services"
	"avatar-mint-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Run migrations before opening the serving connection.
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	avatarClient := avatargen.NewClient(cfg.AIAPIURL, cfg.AIAPIKey)

	// Storage and realtime are optional: without Supabase credentials the
	// generated image stays a data URI and no events are published.
	var storageClient *supabase.StorageClient
	var realtimeClient *supabase.RealtimeClient
	if cfg.StorageEnabled() {
		storageClient, err = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}

		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Supabase client: %v", err)
		}
		realtimeClient = supabase.NewRealtimeClient(supabaseClient.Supabase)
	} else {
		log.Println("Supabase storage not configured; generated images will be returned as data URIs")
	}

	var verifier *chain.Verifier
	if cfg.VerifyMintTx {
		verifier, err = chain.NewVerifier(cfg.ChainRPCURL, cfg.NFTContractAddress)
		if err != nil {
			log.Fatalf("Failed to initialize chain verifier: %v", err)
		}
		defer verifier.Close()
		log.Println("Mint transaction verification enabled")
	}

	// nil interface values must stay nil when the concrete client is absent
	var avatarStorage services.AvatarStorage
	if storageClient != nil {
		avatarStorage = storageClient
	}
	var events services.EventPublisher
	if realtimeClient != nil {
		events = realtimeClient
	}
	var txVerifier services.TxVerifier
	if verifier != nil {
		txVerifier = verifier
	}

	generationService := services.NewGenerationService(dbClient, avatarClient, avatarStorage, events)
	mintService := services.NewMintService(dbClient, txVerifier, events)

	generateHandler := handlers.NewGenerateHandler(generationService)
	mintHandler := handlers.NewMintHandler(mintService)
	imagesHandler := handlers.NewImagesHandler(dbClient)

	router := gin.Default()

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	api.POST("/generate-character", generateHandler.Generate)
	api.POST("/mint", mintHandler.Confirm)
	api.GET("/images/:id", imagesHandler.GetImage)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
