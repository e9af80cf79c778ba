// internal/maintenance/service.go
package maintenance

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type CreateItemInput struct {
	VehicleID      string    `json:"vehicleID"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	DueDate        time.Time `json:"dueDate"`
	DueMileage     float64   `json:"dueMileage"`
	CurrentMileage float64   `json:"currentMileage"`
	EstimatedCost  float64   `json:"estimatedCost"`
	AssignedTo     string    `json:"assignedTo"`
}

type UpdateItemInput struct {
	Type           *string    `json:"type"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	DueDate        *time.Time `json:"dueDate"`
	DueMileage     *float64   `json:"dueMileage"`
	CurrentMileage *float64   `json:"currentMileage"`
	EstimatedCost  *float64   `json:"estimatedCost"`
	ActualCost     *float64   `json:"actualCost"`
	AssignedTo     *string    `json:"assignedTo"`
}

type ListResult struct {
	Items   []models.MaintenanceItem `json:"items"`
	Total   int                      `json:"total"`
	Page    int                      `json:"page"`
	PerPage int                      `json:"perPage"`
	Pages   int                      `json:"pages"`
}

// Summary aggregates the backlog for the dashboard endpoint.
type Summary struct {
	TotalItems         int            `json:"total_items"`
	ByStatus           map[string]int `json:"by_status"`
	ByPriority         map[string]int `json:"by_priority"`
	TotalEstimatedCost float64        `json:"total_estimated_cost"`
	TotalActualCost    float64        `json:"total_actual_cost"`
	OverdueCount       int            `json:"overdue_count"`
	DueSoonCount       int            `json:"due_soon_count"`
}

func validateMileage(current, due float64) error {
	if current < 0 || due < 0 {
		return fmt.Errorf("%w: mileage values must be non-negative", ErrInvalidInput)
	}
	if due < current {
		return fmt.Errorf("%w: due mileage must be greater than or equal to current mileage", ErrInvalidInput)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateItemInput) (*models.MaintenanceItem, error) {
	if strings.TrimSpace(in.VehicleID) == "" {
		return nil, fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if in.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: dueDate is required", ErrInvalidInput)
	}
	if err := validateMileage(in.CurrentMileage, in.DueMileage); err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, priority)
	}

	now := time.Now().UTC()
	item := &models.MaintenanceItem{
		ItemID:         fmt.Sprintf("M-%s", uuid.New().String()[:8]),
		VehicleID:      strings.TrimSpace(in.VehicleID),
		Type:           strings.TrimSpace(in.Type),
		Description:    strings.TrimSpace(in.Description),
		Priority:       priority,
		DueDate:        in.DueDate,
		DueMileage:     in.DueMileage,
		CurrentMileage: in.CurrentMileage,
		EstimatedCost:  in.EstimatedCost,
		AssignedTo:     strings.TrimSpace(in.AssignedTo),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	item.Status = DeriveStatus(&models.MaintenanceItem{
		Status:  models.MaintenanceScheduled,
		DueDate: item.DueDate,
	}, now)

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, itemID string) (*models.MaintenanceItem, error) {
	return s.store.FindByID(ctx, itemID)
}

func (s *Service) List(ctx context.Context, f Filter) (*ListResult, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 10
	}
	for _, st := range f.Statuses {
		if !models.ValidMaintenanceStatus(st) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, st)
		}
	}
	for _, p := range f.Priorities {
		if !models.ValidPriority(p) {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, p)
		}
	}

	items, total, err := s.store.Find(ctx, f)
	if err != nil {
		return nil, err
	}

	pages := (total + f.PerPage - 1) / f.PerPage
	return &ListResult{
		Items:   items,
		Total:   total,
		Page:    f.Page,
		PerPage: f.PerPage,
		Pages:   pages,
	}, nil
}

func (s *Service) Update(ctx context.Context, itemID string, in UpdateItemInput) (*models.MaintenanceItem, error) {
	item, err := s.store.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Priority != nil {
		if !models.ValidPriority(*in.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, *in.Priority)
		}
		item.Priority = *in.Priority
	}
	if in.DueDate != nil {
		item.DueDate = *in.DueDate
	}
	if in.DueMileage != nil {
		item.DueMileage = *in.DueMileage
	}
	if in.CurrentMileage != nil {
		item.CurrentMileage = *in.CurrentMileage
	}
	if err := validateMileage(item.CurrentMileage, item.DueMileage); err != nil {
		return nil, err
	}
	if in.EstimatedCost != nil {
		item.EstimatedCost = *in.EstimatedCost
	}
	if in.ActualCost != nil {
		item.ActualCost = *in.ActualCost
	}
	if in.AssignedTo != nil {
		item.AssignedTo = *in.AssignedTo
	}
	if in.Status != nil {
		if !models.ValidMaintenanceStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		item.Status = *in.Status
		if item.Status == models.MaintenanceCompleted && item.CompletedDate == nil {
			t := time.Now().UTC()
			item.CompletedDate = &t
		}
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Delete(ctx context.Context, itemID string) error {
	return s.store.Delete(ctx, itemID)
}

// Summary aggregates over the whole maintenance backlog.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	items, _, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}
	for i := range items {
		item := &items[i]
		sum.TotalItems++
		sum.ByStatus[item.Status]++
		sum.ByPriority[item.Priority]++
		sum.TotalEstimatedCost += item.EstimatedCost
		sum.TotalActualCost += item.ActualCost
		switch item.Status {
		case models.MaintenanceOverdue:
			sum.OverdueCount++
		case models.MaintenanceDueSoon:
			sum.DueSoonCount++
		}
	}
	return sum, nil
}

// VehicleHistory lists a vehicle's completed maintenance, most recent first.
func (s *Service) VehicleHistory(ctx context.Context, vehicleID string) ([]models.MaintenanceItem, error) {
	items, _, err := s.store.Find(ctx, Filter{
		VehicleID: vehicleID,
		Statuses:  []string{models.MaintenanceCompleted},
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		ti, tj := items[i].CompletedDate, items[j].CompletedDate
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	return items, nil
}

// RefreshStatuses re-derives overdue/due_soon for every open item and
// returns the number of items whose status changed. Meant to be hit
// periodically by a scheduler.
func (s *Service) RefreshStatuses(ctx context.Context) (int, error) {
	items, _, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	updated := 0
	for i := range items {
		item := &items[i]
		derived := DeriveStatus(item, now)
		if derived == item.Status {
			continue
		}
		item.Status = derived
		item.UpdatedAt = now
		if err := s.store.Update(ctx, item); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
