// internal/store/memory/maintenance.go
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

// MaintenanceStore is the in-memory implementation of maintenance.Store.
type MaintenanceStore struct {
	mu    sync.RWMutex
	items map[string]models.MaintenanceItem
}

func NewMaintenanceStore() *MaintenanceStore {
	return &MaintenanceStore{items: make(map[string]models.MaintenanceItem)}
}

func (s *MaintenanceStore) Insert(ctx context.Context, item *models.MaintenanceItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ItemID] = *item
	return nil
}

func (s *MaintenanceStore) FindByID(ctx context.Context, itemID string) (*models.MaintenanceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil, maintenance.ErrItemNotFound
	}
	return &item, nil
}

func (s *MaintenanceStore) Find(ctx context.Context, f maintenance.Filter) ([]models.MaintenanceItem, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.MaintenanceItem, 0, len(s.items))
	for _, item := range s.items {
		if f.VehicleID != "" && item.VehicleID != f.VehicleID {
			continue
		}
		if len(f.Statuses) > 0 && !contains(f.Statuses, item.Status) {
			continue
		}
		if len(f.Priorities) > 0 && !contains(f.Priorities, item.Priority) {
			continue
		}
		if f.AssignedTo != "" && item.AssignedTo != f.AssignedTo {
			continue
		}
		matched = append(matched, item)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ItemID < matched[j].ItemID })

	total := len(matched)
	if f.PerPage > 0 {
		page := f.Page
		if page <= 0 {
			page = 1
		}
		start := (page - 1) * f.PerPage
		if start >= total {
			return []models.MaintenanceItem{}, total, nil
		}
		end := start + f.PerPage
		if end > total {
			end = total
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (s *MaintenanceStore) Update(ctx context.Context, item *models.MaintenanceItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ItemID]; !ok {
		return maintenance.ErrItemNotFound
	}
	s.items[item.ItemID] = *item
	return nil
}

func (s *MaintenanceStore) Delete(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[itemID]; !ok {
		return maintenance.ErrItemNotFound
	}
	delete(s.items, itemID)
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
