// internal/maintenance/schedule.go
package maintenance

import (
	"time"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// dueSoonWindow matches the dashboard's "due soon" horizon.
const dueSoonWindow = 7 * 24 * time.Hour

// DeriveStatus computes the schedule status of an open item from its due
// date. Items that are in progress, completed or cancelled keep their
// status untouched.
func DeriveStatus(item *models.MaintenanceItem, now time.Time) string {
	if !item.Open() {
		return item.Status
	}
	if item.DueDate.Before(truncateToDay(now)) {
		return models.MaintenanceOverdue
	}
	if item.DueDate.Before(now.Add(dueSoonWindow)) {
		return models.MaintenanceDueSoon
	}
	return models.MaintenanceScheduled
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
