// internal/models/technician.go
package models

import "time"

const (
	TechnicianActive   = "active"
	TechnicianInactive = "inactive"
	TechnicianOnLeave  = "on_leave"
)

// Technician is a member of the workshop staff who can be assigned to
// maintenance items.
type Technician struct {
	TechnicianID   string     `bson:"technicianID" json:"technicianID"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email" json:"email"`
	Phone          string     `bson:"phone" json:"phone"`
	Specialization []string   `bson:"specialization,omitempty" json:"specialization"`
	Status         string     `bson:"status" json:"status"`
	Rating         float64    `bson:"rating,omitempty" json:"rating"`
	CompletedJobs  int        `bson:"completedJobs,omitempty" json:"completedJobs"`
	ActiveJobs     int        `bson:"activeJobs,omitempty" json:"activeJobs"`
	Certifications []string   `bson:"certifications,omitempty" json:"certifications"`
	HourlyRate     float64    `bson:"hourlyRate" json:"hourlyRate"`
	JoinDate       *time.Time `bson:"joinDate,omitempty" json:"joinDate,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

func ValidTechnicianStatus(s string) bool {
	switch s {
	case TechnicianActive, TechnicianInactive, TechnicianOnLeave:
		return true
	default:
		return false
	}
}
