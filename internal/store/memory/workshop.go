// internal/store/memory/workshop.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

// WorkshopStore is the in-memory implementation of maintenance.WorkshopStore.
type WorkshopStore struct {
	mu          sync.RWMutex
	technicians map[string]models.Technician
	parts       map[string]models.Part
	schedules   map[string]models.RecurringSchedule
}

func NewWorkshopStore() *WorkshopStore {
	return &WorkshopStore{
		technicians: make(map[string]models.Technician),
		parts:       make(map[string]models.Part),
		schedules:   make(map[string]models.RecurringSchedule),
	}
}

func (s *WorkshopStore) InsertTechnician(ctx context.Context, t *models.Technician) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.technicians[t.TechnicianID] = *t
	return nil
}

func (s *WorkshopStore) FindTechnicianByID(ctx context.Context, techID string) (*models.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.technicians[techID]
	if !ok {
		return nil, maintenance.ErrTechnicianNotFound
	}
	return &t, nil
}

func (s *WorkshopStore) FindTechnicians(ctx context.Context) ([]models.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Technician, 0, len(s.technicians))
	for _, t := range s.technicians {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TechnicianID < out[j].TechnicianID })
	return out, nil
}

func (s *WorkshopStore) UpdateTechnician(ctx context.Context, t *models.Technician) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.technicians[t.TechnicianID]; !ok {
		return maintenance.ErrTechnicianNotFound
	}
	s.technicians[t.TechnicianID] = *t
	return nil
}

func (s *WorkshopStore) DeleteTechnician(ctx context.Context, techID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.technicians[techID]; !ok {
		return maintenance.ErrTechnicianNotFound
	}
	delete(s.technicians, techID)
	return nil
}

func (s *WorkshopStore) InsertPart(ctx context.Context, p *models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts[p.PartID] = *p
	return nil
}

func (s *WorkshopStore) FindPartByID(ctx context.Context, partID string) (*models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parts[partID]
	if !ok {
		return nil, maintenance.ErrPartNotFound
	}
	return &p, nil
}

func (s *WorkshopStore) FindParts(ctx context.Context, query string) ([]models.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	out := make([]models.Part, 0, len(s.parts))
	for _, p := range s.parts {
		if query != "" && !partMatches(&p, query) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartID < out[j].PartID })
	return out, nil
}

func partMatches(p *models.Part, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.PartNumber), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func (s *WorkshopStore) UpdatePart(ctx context.Context, p *models.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[p.PartID]; !ok {
		return maintenance.ErrPartNotFound
	}
	s.parts[p.PartID] = *p
	return nil
}

func (s *WorkshopStore) DeletePart(ctx context.Context, partID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.parts[partID]; !ok {
		return maintenance.ErrPartNotFound
	}
	delete(s.parts, partID)
	return nil
}

func (s *WorkshopStore) InsertSchedule(ctx context.Context, sched *models.RecurringSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sched.ScheduleID] = *sched
	return nil
}

func (s *WorkshopStore) FindScheduleByID(ctx context.Context, scheduleID string) (*models.RecurringSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[scheduleID]
	if !ok {
		return nil, maintenance.ErrScheduleNotFound
	}
	return &sched, nil
}

func (s *WorkshopStore) FindSchedules(ctx context.Context) ([]models.RecurringSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RecurringSchedule, 0, len(s.schedules))
	for _, sched := range s.schedules {
		out = append(out, sched)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduleID < out[j].ScheduleID })
	return out, nil
}

func (s *WorkshopStore) UpdateSchedule(ctx context.Context, sched *models.RecurringSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[sched.ScheduleID]; !ok {
		return maintenance.ErrScheduleNotFound
	}
	s.schedules[sched.ScheduleID] = *sched
	return nil
}

func (s *WorkshopStore) DeleteSchedule(ctx context.Context, scheduleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[scheduleID]; !ok {
		return maintenance.ErrScheduleNotFound
	}
	delete(s.schedules, scheduleID)
	return nil
}
