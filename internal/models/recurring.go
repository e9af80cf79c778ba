// internal/models/recurring.go
package models

import "time"

// RecurringSchedule is a template that generates maintenance work on a
// fixed cadence (every N days or every N kilometres).
type RecurringSchedule struct {
	ScheduleID        string     `bson:"scheduleID" json:"scheduleID"`
	Name              string     `bson:"name" json:"name"`
	VehicleID         string     `bson:"vehicleID" json:"vehicleID"`
	MaintenanceType   string     `bson:"maintenanceType" json:"maintenanceType"`
	Description       string     `bson:"description,omitempty" json:"description"`
	Frequency         string     `bson:"frequency" json:"frequency"`
	FrequencyValue    int        `bson:"frequencyValue" json:"frequencyValue"`
	EstimatedCost     float64    `bson:"estimatedCost,omitempty" json:"estimatedCost"`
	EstimatedDuration float64    `bson:"estimatedDuration,omitempty" json:"estimatedDuration"`
	AssignedTo        string     `bson:"assignedTo,omitempty" json:"assignedTo"`
	IsActive          bool       `bson:"isActive" json:"isActive"`
	LastExecuted      *time.Time `bson:"lastExecuted,omitempty" json:"lastExecuted,omitempty"`
	NextScheduled     *time.Time `bson:"nextScheduled,omitempty" json:"nextScheduled,omitempty"`
	TotalExecutions   int        `bson:"totalExecutions,omitempty" json:"totalExecutions"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
}
