// internal/api/handlers/vehicle_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/msafryx/fleet-management-backend/internal/api/middleware"
	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/models"
	"github.com/msafryx/fleet-management-backend/internal/s3"
)

type VehicleHandler struct {
	Service    *fleet.Service
	S3Uploader *s3.Uploader
}

func writeFleetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
	case errors.Is(err, fleet.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure", "details": err.Error()})
	}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload fleet.CreateVehicleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Service.Create(c.Request.Context(), payload)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// ListVehicles returns the fleet, optionally filtered by ?status=.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var filter fleet.Filter
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseVehicleStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Status = &status
	}

	vehicles, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload fleet.UpdateVehicleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.UpdatedBy == "" {
		payload.UpdatedBy = middleware.Subject(c)
	}

	vehicle, err := h.Service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

type AssignDriverRequest struct {
	DriverID string `json:"driverId" binding:"required"`
}

func (h *VehicleHandler) AssignDriver(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle, err := h.Service.AssignDriver(c.Request.Context(), c.Param("id"), req.DriverID, middleware.Subject(c))
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (h *VehicleHandler) UnassignDriver(c *gin.Context) {
	vehicle, previousDriver, err := h.Service.UnassignDriver(c.Request.Context(), c.Param("id"), middleware.Subject(c))
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle, "previousDriverId": previousDriver})
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// GetStatusHistory works for deleted vehicles too; history outlives the
// vehicle record.
func (h *VehicleHandler) GetStatusHistory(c *gin.Context) {
	records, err := h.Service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *VehicleHandler) GetStatistics(c *gin.Context) {
	stats, err := h.Service.Statistics(c.Request.Context())
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *VehicleHandler) GetAvailableVehicles(c *gin.Context) {
	vehicles, err := h.Service.AvailableVehicles(c.Request.Context())
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetFuelReport(c *gin.Context) {
	report, err := h.Service.FuelReport(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// UploadDocument stores a registration or maintenance document on S3 and
// attaches the pointer to the vehicle.
func (h *VehicleHandler) UploadDocument(c *gin.Context) {
	if h.S3Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	vehicleID := c.Param("id")
	objectKey := fmt.Sprintf("vehicles/%s/%s-%s", vehicleID, uuid.New().String()[:8], fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.S3Uploader.UploadFile(c.Request.Context(), file, objectKey, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document", "details": err.Error()})
		return
	}

	doc := models.MediaPointer{
		ID:       uuid.New().String(),
		URL:      url,
		FileName: fileHeader.Filename,
		FileType: contentType,
	}
	vehicle, err := h.Service.AddDocument(c.Request.Context(), vehicleID, doc)
	if err != nil {
		writeFleetError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}
