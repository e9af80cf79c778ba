// internal/api/handlers/driver_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

type DriverHandler struct {
	DB *mongo.Database
}

type CreateDriverRequest struct {
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone"`
	LicenseNumber string     `json:"licenseNumber" binding:"required"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := h.DB.Collection("drivers")

	count, err := collection.CountDocuments(context.Background(), bson.M{"email": req.Email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error checking for driver"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Driver with this email already exists"})
		return
	}

	now := time.Now().UTC()
	newDriver := models.Driver{
		DriverID:      fmt.Sprintf("DRV-%s", uuid.New().String()[:8]),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := collection.InsertOne(context.Background(), newDriver); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver"})
		return
	}
	c.JSON(http.StatusCreated, newDriver)
}

func (h *DriverHandler) GetAllDrivers(c *gin.Context) {
	collection := h.DB.Collection("drivers")

	cursor, err := collection.Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query drivers"})
		return
	}
	defer cursor.Close(context.Background())

	var drivers []models.Driver
	if err = cursor.All(context.Background(), &drivers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode drivers"})
		return
	}

	if drivers == nil {
		drivers = []models.Driver{}
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriverHandler) GetDriverByID(c *gin.Context) {
	driverID := c.Param("id")

	collection := h.DB.Collection("drivers")
	var driver models.Driver
	err := collection.FindOne(context.Background(), bson.M{"driverID": driverID}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve driver"})
		}
		return
	}
	c.JSON(http.StatusOK, driver)
}

type UpdateDriverRequest struct {
	Name          *string    `json:"name"`
	Phone         *string    `json:"phone"`
	LicenseNumber *string    `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	Status        *string    `json:"status"`
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	driverID := c.Param("id")

	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.LicenseNumber != nil {
		set["licenseNumber"] = *req.LicenseNumber
	}
	if req.LicenseExpiry != nil {
		set["licenseExpiry"] = *req.LicenseExpiry
	}
	if req.Status != nil {
		if *req.Status != "active" && *req.Status != "inactive" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be active or inactive"})
			return
		}
		set["status"] = *req.Status
	}

	collection := h.DB.Collection("drivers")
	res, err := collection.UpdateOne(context.Background(), bson.M{"driverID": driverID}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver updated successfully"})
}

func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	driverID := c.Param("id")

	collection := h.DB.Collection("drivers")
	res, err := collection.DeleteOne(context.Background(), bson.M{"driverID": driverID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete driver"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}
