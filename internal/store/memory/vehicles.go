// internal/store/memory/vehicles.go
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

// VehicleStore is the in-memory implementation of fleet.VehicleStore, used
// by tests and offline development. The store mutex gives mutations the
// same per-vehicle atomicity the Mongo store gets from transactions.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles map[string]models.Vehicle
	history  []models.StatusChangeRecord
}

func NewVehicleStore() *VehicleStore {
	return &VehicleStore{
		vehicles: make(map[string]models.Vehicle),
	}
}

func (s *VehicleStore) Insert(ctx context.Context, v *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles[v.VehicleID] = *v
	return nil
}

func (s *VehicleStore) FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[vehicleID]
	if !ok {
		return nil, fleet.ErrVehicleNotFound
	}
	return &v, nil
}

func (s *VehicleStore) Find(ctx context.Context, f fleet.Filter) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if f.Status != nil && v.Status != *f.Status {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VehicleID < out[j].VehicleID })
	return out, nil
}

func (s *VehicleStore) Mutate(ctx context.Context, vehicleID string, fn fleet.MutateFunc) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[vehicleID]
	if !ok {
		return nil, fleet.ErrVehicleNotFound
	}

	rec, err := fn(&v)
	if err != nil {
		return nil, err
	}

	s.vehicles[vehicleID] = v
	if rec != nil {
		s.history = append(s.history, *rec)
	}
	return &v, nil
}

func (s *VehicleStore) Delete(ctx context.Context, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vehicles[vehicleID]; !ok {
		return fleet.ErrVehicleNotFound
	}
	// History rows are kept: they reference by ID, not by owning pointer.
	delete(s.vehicles, vehicleID)
	return nil
}

func (s *VehicleStore) HistoryByVehicle(ctx context.Context, vehicleID string) ([]models.StatusChangeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StatusChangeRecord, 0)
	for _, rec := range s.history {
		if rec.VehicleID == vehicleID {
			out = append(out, rec)
		}
	}
	return out, nil
}
