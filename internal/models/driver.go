// internal/models/driver.go
package models

import "time"

// Driver matches the document in MongoDB.
type Driver struct {
	DriverID      string     `bson:"driverID" json:"driverID"`
	Name          string     `bson:"name" json:"name"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone,omitempty" json:"phone"`
	LicenseNumber string     `bson:"licenseNumber" json:"licenseNumber"`
	LicenseExpiry *time.Time `bson:"licenseExpiry,omitempty" json:"licenseExpiry,omitempty"`
	Status        string     `bson:"status" json:"status"` // active, inactive
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}
