// internal/maintenance/store.go
package maintenance

import (
	"context"
	"errors"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrItemNotFound = errors.New("maintenance item not found")
)

// Filter narrows maintenance queries. Statuses and Priorities are OR-sets,
// bound from repeated query parameters. PerPage 0 disables pagination.
type Filter struct {
	VehicleID  string
	Statuses   []string
	Priorities []string
	AssignedTo string
	Page       int
	PerPage    int
}

type Store interface {
	Insert(ctx context.Context, item *models.MaintenanceItem) error
	FindByID(ctx context.Context, itemID string) (*models.MaintenanceItem, error)
	// Find returns one page of matches plus the total match count.
	Find(ctx context.Context, f Filter) ([]models.MaintenanceItem, int, error)
	Update(ctx context.Context, item *models.MaintenanceItem) error
	Delete(ctx context.Context, itemID string) error
}
