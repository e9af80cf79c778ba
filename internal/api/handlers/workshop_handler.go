// internal/api/handlers/workshop_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
)

// WorkshopHandler serves the maintenance sub-resources: technicians,
// the parts inventory and recurring schedules.
type WorkshopHandler struct {
	Service *maintenance.WorkshopService
}

func writeWorkshopError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, maintenance.ErrTechnicianNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
	case errors.Is(err, maintenance.ErrPartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Part not found"})
	case errors.Is(err, maintenance.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring schedule not found"})
	case errors.Is(err, maintenance.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure", "details": err.Error()})
	}
}

func (h *WorkshopHandler) ListTechnicians(c *gin.Context) {
	technicians, err := h.Service.ListTechnicians(c.Request.Context())
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, technicians)
}

func (h *WorkshopHandler) CreateTechnician(c *gin.Context) {
	var payload maintenance.CreateTechnicianInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technician, err := h.Service.CreateTechnician(c.Request.Context(), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusCreated, technician)
}

func (h *WorkshopHandler) UpdateTechnician(c *gin.Context) {
	var payload maintenance.UpdateTechnicianInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	technician, err := h.Service.UpdateTechnician(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, technician)
}

func (h *WorkshopHandler) DeleteTechnician(c *gin.Context) {
	if err := h.Service.DeleteTechnician(c.Request.Context(), c.Param("id")); err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Technician deleted successfully"})
}

// ListParts filters the inventory by ?q= against name, part number and
// category.
func (h *WorkshopHandler) ListParts(c *gin.Context) {
	parts, err := h.Service.ListParts(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *WorkshopHandler) CreatePart(c *gin.Context) {
	var payload maintenance.CreatePartInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.Service.CreatePart(c.Request.Context(), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusCreated, part)
}

func (h *WorkshopHandler) UpdatePart(c *gin.Context) {
	var payload maintenance.UpdatePartInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := h.Service.UpdatePart(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *WorkshopHandler) DeletePart(c *gin.Context) {
	if err := h.Service.DeletePart(c.Request.Context(), c.Param("id")); err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}

func (h *WorkshopHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.Service.ListSchedules(c.Request.Context())
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *WorkshopHandler) CreateSchedule(c *gin.Context) {
	var payload maintenance.CreateScheduleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.Service.CreateSchedule(c.Request.Context(), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *WorkshopHandler) UpdateSchedule(c *gin.Context) {
	var payload maintenance.UpdateScheduleInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.Service.UpdateSchedule(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *WorkshopHandler) DeleteSchedule(c *gin.Context) {
	if err := h.Service.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		writeWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
