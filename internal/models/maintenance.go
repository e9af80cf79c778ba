// internal/models/maintenance.go
package models

import "time"

// Maintenance item statuses. The first three are set by callers; overdue and
// due_soon are derived from the due date and refreshed in bulk.
const (
	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceCancelled  = "cancelled"
	MaintenanceOverdue    = "overdue"
	MaintenanceDueSoon    = "due_soon"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

type MaintenanceItem struct {
	ItemID         string     `bson:"itemID" json:"itemID"`
	VehicleID      string     `bson:"vehicleID" json:"vehicleID"`
	Type           string     `bson:"type" json:"type"`
	Description    string     `bson:"description,omitempty" json:"description"`
	Status         string     `bson:"status" json:"status"`
	Priority       string     `bson:"priority" json:"priority"`
	DueDate        time.Time  `bson:"dueDate" json:"dueDate"`
	DueMileage     float64    `bson:"dueMileage,omitempty" json:"dueMileage"`
	CurrentMileage float64    `bson:"currentMileage,omitempty" json:"currentMileage"`
	EstimatedCost  float64    `bson:"estimatedCost,omitempty" json:"estimatedCost"`
	ActualCost     float64    `bson:"actualCost,omitempty" json:"actualCost"`
	AssignedTo     string     `bson:"assignedTo,omitempty" json:"assignedTo"`
	CompletedDate  *time.Time `bson:"completedDate,omitempty" json:"completedDate,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Open reports whether the item still has work pending, i.e. its derived
// schedule status may change as the due date approaches.
func (m *MaintenanceItem) Open() bool {
	switch m.Status {
	case MaintenanceCompleted, MaintenanceCancelled, MaintenanceInProgress:
		return false
	default:
		return true
	}
}

func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted,
		MaintenanceCancelled, MaintenanceOverdue, MaintenanceDueSoon:
		return true
	default:
		return false
	}
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}
