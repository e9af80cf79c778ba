// internal/api/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msafryx/fleet-management-backend/config"
	"github.com/msafryx/fleet-management-backend/internal/api/handlers"
	"github.com/msafryx/fleet-management-backend/internal/api/middleware"
	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/s3"
	"github.com/msafryx/fleet-management-backend/internal/socket"
)

// SetupRouter wires the middleware chain and all route groups. Health
// stays public; everything under /api/v1 goes through Authenticate and the
// method-based Authorize policy (mutations need fleet-admin, reads need a
// valid token).
func SetupRouter(
	cfg config.Config,
	db *mongo.Database,
	fleetService *fleet.Service,
	maintenanceService *maintenance.Service,
	workshopService *maintenance.WorkshopService,
	verifier middleware.TokenVerifier,
	s3Uploader *s3.Uploader,
	wsHub *socket.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.OriginList()))

	vehicleHandler := &handlers.VehicleHandler{Service: fleetService, S3Uploader: s3Uploader}
	maintenanceHandler := &handlers.MaintenanceHandler{Service: maintenanceService}
	workshopHandler := &handlers.WorkshopHandler{Service: workshopService}
	driverHandler := &handlers.DriverHandler{DB: db}
	healthHandler := &handlers.HealthHandler{DB: db}
	webSocketHandler := &handlers.WebSocketHandler{
		Hub:          wsHub,
		Verifier:     verifier,
		AuthDisabled: cfg.OIDC.Disabled,
	}

	// Health runs through the same chain as everything else; the policy's
	// public-path rule lets it pass without a token.
	router.GET("/health",
		middleware.Authenticate(verifier, cfg.OIDC.Disabled),
		middleware.Authorize(),
		healthHandler.Health)

	apiV1 := router.Group("/api/v1")
	{
		// WebSocket authenticates via query parameter inside the handler.
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		protected := apiV1.Group("/")
		protected.Use(middleware.Authenticate(verifier, cfg.OIDC.Disabled))
		protected.Use(middleware.Authorize())
		{
			vehicles := protected.Group("/vehicles")
			{
				vehicles.GET("/", vehicleHandler.ListVehicles)
				vehicles.GET("/available", vehicleHandler.GetAvailableVehicles)
				vehicles.GET("/stats", vehicleHandler.GetStatistics)
				vehicles.GET("/fuel-report", vehicleHandler.GetFuelReport)
				vehicles.GET("/:id", vehicleHandler.GetVehicle)
				vehicles.GET("/:id/history", vehicleHandler.GetStatusHistory)
				vehicles.POST("/", vehicleHandler.CreateVehicle)
				vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
				vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
				vehicles.POST("/:id/assign", vehicleHandler.AssignDriver)
				vehicles.POST("/:id/unassign", vehicleHandler.UnassignDriver)
				vehicles.POST("/:id/documents", vehicleHandler.UploadDocument)
			}

			maintenanceRoutes := protected.Group("/maintenance")
			{
				maintenanceRoutes.GET("/", maintenanceHandler.ListItems)
				maintenanceRoutes.GET("/summary", maintenanceHandler.GetSummary)
				maintenanceRoutes.GET("/vehicle/:vehicleID/history", maintenanceHandler.GetVehicleHistory)
				maintenanceRoutes.GET("/:id", maintenanceHandler.GetItem)
				maintenanceRoutes.POST("/", maintenanceHandler.CreateItem)
				maintenanceRoutes.PUT("/:id", maintenanceHandler.UpdateItem)
				maintenanceRoutes.DELETE("/:id", maintenanceHandler.DeleteItem)
				maintenanceRoutes.POST("/status/refresh", maintenanceHandler.RefreshStatuses)

				maintenanceRoutes.GET("/technicians", workshopHandler.ListTechnicians)
				maintenanceRoutes.POST("/technicians", workshopHandler.CreateTechnician)
				maintenanceRoutes.PUT("/technicians/:id", workshopHandler.UpdateTechnician)
				maintenanceRoutes.DELETE("/technicians/:id", workshopHandler.DeleteTechnician)

				maintenanceRoutes.GET("/parts", workshopHandler.ListParts)
				maintenanceRoutes.POST("/parts", workshopHandler.CreatePart)
				maintenanceRoutes.PUT("/parts/:id", workshopHandler.UpdatePart)
				maintenanceRoutes.DELETE("/parts/:id", workshopHandler.DeletePart)

				maintenanceRoutes.GET("/recurring-schedules", workshopHandler.ListSchedules)
				maintenanceRoutes.POST("/recurring-schedules", workshopHandler.CreateSchedule)
				maintenanceRoutes.PUT("/recurring-schedules/:id", workshopHandler.UpdateSchedule)
				maintenanceRoutes.DELETE("/recurring-schedules/:id", workshopHandler.DeleteSchedule)
			}

			drivers := protected.Group("/drivers")
			{
				drivers.GET("/", driverHandler.GetAllDrivers)
				drivers.GET("/:id", driverHandler.GetDriverByID)
				drivers.POST("/", driverHandler.CreateDriver)
				drivers.PUT("/:id", driverHandler.UpdateDriver)
				drivers.DELETE("/:id", driverHandler.DeleteDriver)
			}
		}
	}

	return router
}
