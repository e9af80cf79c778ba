// internal/api/handlers/maintenance_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
)

type MaintenanceHandler struct {
	Service *maintenance.Service
}

func writeMaintenanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, maintenance.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance item not found"})
	case errors.Is(err, maintenance.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure", "details": err.Error()})
	}
}

func (h *MaintenanceHandler) CreateItem(c *gin.Context) {
	var payload maintenance.CreateItemInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.Create(c.Request.Context(), payload)
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MaintenanceHandler) GetItem(c *gin.Context) {
	item, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListItems filters by vehicle, repeated status and priority, and
// assignedTo, with page/per_page pagination.
func (h *MaintenanceHandler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	filter := maintenance.Filter{
		VehicleID:  c.Query("vehicle"),
		Statuses:   c.QueryArray("status"),
		Priorities: c.QueryArray("priority"),
		AssignedTo: c.Query("assignedTo"),
		Page:       page,
		PerPage:    perPage,
	}

	result, err := h.Service.List(c.Request.Context(), filter)
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *MaintenanceHandler) UpdateItem(c *gin.Context) {
	var payload maintenance.UpdateItemInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MaintenanceHandler) DeleteItem(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance item deleted successfully"})
}

func (h *MaintenanceHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context())
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *MaintenanceHandler) GetVehicleHistory(c *gin.Context) {
	history, err := h.Service.VehicleHistory(c.Request.Context(), c.Param("vehicleID"))
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// RefreshStatuses is the bulk re-derivation job endpoint.
func (h *MaintenanceHandler) RefreshStatuses(c *gin.Context) {
	updated, err := h.Service.RefreshStatuses(c.Request.Context())
	if err != nil {
		writeMaintenanceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Maintenance statuses refreshed",
		"updated_count": updated,
	})
}
