// internal/models/vehicle.go
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// VehicleStatus is persisted as an integer; the wire format is the label.
type VehicleStatus int

const (
	StatusIdle VehicleStatus = iota
	StatusActive
	StatusMaintenance
	StatusOffline
)

// String returns the fixed label for a status. Anything outside the four
// known values renders as "unknown".
func (s VehicleStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusMaintenance:
		return "maintenance"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ParseVehicleStatus maps a label back to its status, case-insensitively.
func ParseVehicleStatus(raw string) (VehicleStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "idle":
		return StatusIdle, nil
	case "active":
		return StatusActive, nil
	case "maintenance":
		return StatusMaintenance, nil
	case "offline":
		return StatusOffline, nil
	default:
		return 0, fmt.Errorf("unknown vehicle status %q", raw)
	}
}

func (s VehicleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *VehicleStatus) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, err := ParseVehicleStatus(label)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Vehicle struct {
	VehicleID        string         `bson:"vehicleID" json:"vehicleID"`
	Make             string         `bson:"make" json:"make"`
	Model            string         `bson:"model" json:"model"`
	Year             int            `bson:"year" json:"year"`
	LicensePlate     string         `bson:"licensePlate" json:"licensePlate"`
	Color            string         `bson:"color,omitempty" json:"color"`
	FuelType         string         `bson:"fuelType,omitempty" json:"fuelType"`
	Mileage          float64        `bson:"mileage" json:"mileage"`
	FuelLevel        float64        `bson:"fuelLevel" json:"fuelLevel"` // 0-100
	Location         string         `bson:"location,omitempty" json:"location,omitempty"`
	AssignedDriverID *string        `bson:"assignedDriverID,omitempty" json:"assignedDriverID"`
	Status           VehicleStatus  `bson:"status" json:"status"`
	LastMaintenance  *time.Time     `bson:"lastMaintenance,omitempty" json:"lastMaintenance,omitempty"`
	NextMaintenance  *time.Time     `bson:"nextMaintenance,omitempty" json:"nextMaintenance,omitempty"`
	Documents        []MediaPointer `bson:"documents,omitempty" json:"documents,omitempty"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Available reports whether the vehicle is eligible for a new driver
// assignment: no driver, idle, and at least 20% fuel.
func (v *Vehicle) Available() bool {
	return v.AssignedDriverID == nil && v.Status == StatusIdle && v.FuelLevel >= 20
}

// StatusChangeRecord is an append-only audit entry for one observed status
// transition. It references the vehicle by ID only, so deleting a vehicle
// leaves its history intact.
type StatusChangeRecord struct {
	RecordID  string        `bson:"recordID" json:"recordID"`
	VehicleID string        `bson:"vehicleID" json:"vehicleID"`
	OldStatus VehicleStatus `bson:"oldStatus" json:"oldStatus"`
	NewStatus VehicleStatus `bson:"newStatus" json:"newStatus"`
	Reason    string        `bson:"reason" json:"reason"`
	ChangedBy string        `bson:"changedBy" json:"changedBy"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
