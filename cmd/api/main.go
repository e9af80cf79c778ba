// cmd/api/main.go
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/msafryx/fleet-management-backend/config"
	"github.com/msafryx/fleet-management-backend/internal/api/routes"
	"github.com/msafryx/fleet-management-backend/internal/auth"
	"github.com/msafryx/fleet-management-backend/internal/database"
	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/s3"
	"github.com/msafryx/fleet-management-backend/internal/socket"
	mongostore "github.com/msafryx/fleet-management-backend/internal/store/mongo"
)

func main() {
	// 1. Local .env overrides, then configuration
	_ = godotenv.Load()
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. MongoDB
	db, err := mongostore.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	// 3. One-time starter data, guarded by an existence check
	if cfg.Seed.Enabled {
		if err := database.SeedFleet(db); err != nil {
			log.Fatalf("Failed to seed fleet: %v", err)
		}
	}

	// 4. Token verifier against the external identity provider
	if cfg.OIDC.Issuer == "" && !cfg.OIDC.Disabled {
		log.Fatal("OIDC issuer is required unless auth is disabled")
	}
	verifier := auth.NewVerifier(cfg.OIDC.Issuer)
	if cfg.OIDC.Disabled {
		log.Println("WARNING: token verification is disabled")
	}

	// 5. Document storage is optional; without a bucket the upload endpoint
	// reports itself unavailable.
	var uploader *s3.Uploader
	if cfg.S3.Bucket != "" {
		uploader, err = s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
	}

	// 6. Services and the live event hub
	wsHub := socket.NewHub()
	fleetService := fleet.NewService(mongostore.NewVehicleStore(db))
	fleetService.SetNotifier(wsHub)
	maintenanceService := maintenance.NewService(mongostore.NewMaintenanceStore(db))
	workshopService := maintenance.NewWorkshopService(mongostore.NewWorkshopStore(db))

	// 7. Router
	router := routes.SetupRouter(cfg, db, fleetService, maintenanceService, workshopService, verifier, uploader, wsHub)

	// 8. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
