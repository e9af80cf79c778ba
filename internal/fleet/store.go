// internal/fleet/store.go
package fleet

import (
	"context"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// Filter narrows List and report queries. A nil Status means "all".
type Filter struct {
	Status *models.VehicleStatus
}

// MutateFunc edits a vehicle in place and optionally returns an audit record
// to append. Returning an error aborts the mutation without writing.
type MutateFunc func(v *models.Vehicle) (*models.StatusChangeRecord, error)

// VehicleStore is the persistence boundary for vehicles and their
// status-change history.
//
// Mutate must run the read, the callback, the vehicle write and the history
// append atomically with respect to concurrent writers on the same vehicle
// ID. It returns ErrVehicleNotFound when the ID does not exist. Deleting a
// vehicle must leave its history rows untouched.
type VehicleStore interface {
	Insert(ctx context.Context, v *models.Vehicle) error
	FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error)
	Find(ctx context.Context, f Filter) ([]models.Vehicle, error)
	Mutate(ctx context.Context, vehicleID string, fn MutateFunc) (*models.Vehicle, error)
	Delete(ctx context.Context, vehicleID string) error
	HistoryByVehicle(ctx context.Context, vehicleID string) ([]models.StatusChangeRecord, error)
}

// Notifier receives committed status transitions, e.g. for pushing to
// websocket clients. Implementations must not block the caller for long.
type Notifier interface {
	StatusChanged(rec models.StatusChangeRecord)
}
