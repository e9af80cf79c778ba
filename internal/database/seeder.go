// internal/database/seeder.go
package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// SeedFleet inserts a small starter fleet on first boot. The existence
// check makes it safe to run on every start; it never touches data once
// vehicles exist.
func SeedFleet(db *mongo.Database) error {
	vehicles := db.Collection("vehicles")

	count, err := vehicles.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Vehicles already exist. Seeding skipped.")
		return nil
	}

	log.Println("No vehicles found. Seeding starter fleet...")

	now := time.Now().UTC()
	nextWeek := now.Add(5 * 24 * time.Hour)
	seed := []interface{}{
		newSeedVehicle("Toyota", "Corolla", 2020, "ABC123", "White", "petrol", 45210, now, nil),
		newSeedVehicle("Ford", "Transit", 2019, "FLT204", "Blue", "diesel", 98760, now, &nextWeek),
		newSeedVehicle("Tesla", "Model 3", 2022, "EVX901", "Black", "electric", 30125, now, nil),
	}

	if _, err := vehicles.InsertMany(context.Background(), seed); err != nil {
		return err
	}

	log.Printf("Seeded %d vehicles successfully.", len(seed))
	return nil
}

func newSeedVehicle(make, model string, year int, plate, color, fuelType string, mileage float64, now time.Time, nextMaintenance *time.Time) models.Vehicle {
	return models.Vehicle{
		VehicleID:       fmt.Sprintf("VEH-%s", uuid.New().String()[:8]),
		Make:            make,
		Model:           model,
		Year:            year,
		LicensePlate:    plate,
		Color:           color,
		FuelType:        fuelType,
		Mileage:         mileage,
		FuelLevel:       100,
		Status:          models.StatusIdle,
		NextMaintenance: nextMaintenance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
