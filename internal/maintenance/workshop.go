// internal/maintenance/workshop.go
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

var (
	ErrTechnicianNotFound = errors.New("technician not found")
	ErrPartNotFound       = errors.New("part not found")
	ErrScheduleNotFound   = errors.New("recurring schedule not found")
)

// WorkshopStore persists the maintenance sub-resources: technicians, the
// parts inventory and recurring schedules.
type WorkshopStore interface {
	InsertTechnician(ctx context.Context, t *models.Technician) error
	FindTechnicianByID(ctx context.Context, techID string) (*models.Technician, error)
	FindTechnicians(ctx context.Context) ([]models.Technician, error)
	UpdateTechnician(ctx context.Context, t *models.Technician) error
	DeleteTechnician(ctx context.Context, techID string) error

	InsertPart(ctx context.Context, p *models.Part) error
	FindPartByID(ctx context.Context, partID string) (*models.Part, error)
	// FindParts matches query case-insensitively against name, part number
	// and category; empty query returns everything.
	FindParts(ctx context.Context, query string) ([]models.Part, error)
	UpdatePart(ctx context.Context, p *models.Part) error
	DeletePart(ctx context.Context, partID string) error

	InsertSchedule(ctx context.Context, s *models.RecurringSchedule) error
	FindScheduleByID(ctx context.Context, scheduleID string) (*models.RecurringSchedule, error)
	FindSchedules(ctx context.Context) ([]models.RecurringSchedule, error)
	UpdateSchedule(ctx context.Context, s *models.RecurringSchedule) error
	DeleteSchedule(ctx context.Context, scheduleID string) error
}

// WorkshopService owns the maintenance sub-resources.
type WorkshopService struct {
	store WorkshopStore
}

func NewWorkshopService(store WorkshopStore) *WorkshopService {
	return &WorkshopService{store: store}
}

type CreateTechnicianInput struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Specialization []string   `json:"specialization"`
	Status         string     `json:"status"`
	Certifications []string   `json:"certifications"`
	HourlyRate     float64    `json:"hourlyRate"`
	JoinDate       *time.Time `json:"joinDate"`
}

type UpdateTechnicianInput struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Specialization *[]string `json:"specialization"`
	Status         *string   `json:"status"`
	Rating         *float64  `json:"rating"`
	CompletedJobs  *int      `json:"completedJobs"`
	ActiveJobs     *int      `json:"activeJobs"`
	Certifications *[]string `json:"certifications"`
	HourlyRate     *float64  `json:"hourlyRate"`
}

func (s *WorkshopService) CreateTechnician(ctx context.Context, in CreateTechnicianInput) (*models.Technician, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if in.HourlyRate <= 0 {
		return nil, fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
	}

	status := in.Status
	if status == "" {
		status = models.TechnicianActive
	}
	if !models.ValidTechnicianStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	now := time.Now().UTC()
	t := &models.Technician{
		TechnicianID:   fmt.Sprintf("T-%s", uuid.New().String()[:8]),
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Specialization: in.Specialization,
		Status:         status,
		Certifications: in.Certifications,
		HourlyRate:     in.HourlyRate,
		JoinDate:       in.JoinDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.InsertTechnician(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *WorkshopService) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	return s.store.FindTechnicians(ctx)
}

func (s *WorkshopService) UpdateTechnician(ctx context.Context, techID string, in UpdateTechnicianInput) (*models.Technician, error) {
	t, err := s.store.FindTechnicianByID(ctx, techID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Phone != nil {
		t.Phone = *in.Phone
	}
	if in.Specialization != nil {
		t.Specialization = *in.Specialization
	}
	if in.Status != nil {
		if !models.ValidTechnicianStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		t.Status = *in.Status
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.CompletedJobs != nil {
		t.CompletedJobs = *in.CompletedJobs
	}
	if in.ActiveJobs != nil {
		t.ActiveJobs = *in.ActiveJobs
	}
	if in.Certifications != nil {
		t.Certifications = *in.Certifications
	}
	if in.HourlyRate != nil {
		if *in.HourlyRate <= 0 {
			return nil, fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
		}
		t.HourlyRate = *in.HourlyRate
	}
	t.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateTechnician(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *WorkshopService) DeleteTechnician(ctx context.Context, techID string) error {
	return s.store.DeleteTechnician(ctx, techID)
}

type CreatePartInput struct {
	Name        string   `json:"name"`
	PartNumber  string   `json:"partNumber"`
	Category    string   `json:"category"`
	Quantity    int      `json:"quantity"`
	MinQuantity int      `json:"minQuantity"`
	UnitCost    float64  `json:"unitCost"`
	Supplier    string   `json:"supplier"`
	Location    string   `json:"location"`
	UsedIn      []string `json:"usedIn"`
}

type UpdatePartInput struct {
	Name        *string   `json:"name"`
	PartNumber  *string   `json:"partNumber"`
	Category    *string   `json:"category"`
	Quantity    *int      `json:"quantity"`
	MinQuantity *int      `json:"minQuantity"`
	UnitCost    *float64  `json:"unitCost"`
	Supplier    *string   `json:"supplier"`
	Location    *string   `json:"location"`
	UsedIn      *[]string `json:"usedIn"`
}

func (s *WorkshopService) CreatePart(ctx context.Context, in CreatePartInput) (*models.Part, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.PartNumber) == "" {
		return nil, fmt.Errorf("%w: partNumber is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: quantities must be non-negative", ErrInvalidInput)
	}
	if in.UnitCost < 0 {
		return nil, fmt.Errorf("%w: unitCost must be non-negative", ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := &models.Part{
		PartID:      fmt.Sprintf("P-%s", uuid.New().String()[:8]),
		Name:        strings.TrimSpace(in.Name),
		PartNumber:  strings.TrimSpace(in.PartNumber),
		Category:    strings.TrimSpace(in.Category),
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		UnitCost:    in.UnitCost,
		Supplier:    strings.TrimSpace(in.Supplier),
		Location:    strings.TrimSpace(in.Location),
		UsedIn:      in.UsedIn,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.InsertPart(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *WorkshopService) ListParts(ctx context.Context, query string) ([]models.Part, error) {
	return s.store.FindParts(ctx, strings.TrimSpace(query))
}

func (s *WorkshopService) UpdatePart(ctx context.Context, partID string, in UpdatePartInput) (*models.Part, error) {
	p, err := s.store.FindPartByID(ctx, partID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.PartNumber != nil {
		p.PartNumber = *in.PartNumber
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be non-negative", ErrInvalidInput)
		}
		// A restock is any quantity increase.
		if *in.Quantity > p.Quantity {
			t := time.Now().UTC()
			p.LastRestocked = &t
		}
		p.Quantity = *in.Quantity
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, fmt.Errorf("%w: minQuantity must be non-negative", ErrInvalidInput)
		}
		p.MinQuantity = *in.MinQuantity
	}
	if in.UnitCost != nil {
		if *in.UnitCost < 0 {
			return nil, fmt.Errorf("%w: unitCost must be non-negative", ErrInvalidInput)
		}
		p.UnitCost = *in.UnitCost
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.UsedIn != nil {
		p.UsedIn = *in.UsedIn
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdatePart(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *WorkshopService) DeletePart(ctx context.Context, partID string) error {
	return s.store.DeletePart(ctx, partID)
}

type CreateScheduleInput struct {
	Name              string  `json:"name"`
	VehicleID         string  `json:"vehicleID"`
	MaintenanceType   string  `json:"maintenanceType"`
	Description       string  `json:"description"`
	Frequency         string  `json:"frequency"`
	FrequencyValue    int     `json:"frequencyValue"`
	EstimatedCost     float64 `json:"estimatedCost"`
	EstimatedDuration float64 `json:"estimatedDuration"`
	AssignedTo        string  `json:"assignedTo"`
	IsActive          *bool   `json:"isActive"`
}

type UpdateScheduleInput struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Frequency         *string  `json:"frequency"`
	FrequencyValue    *int     `json:"frequencyValue"`
	EstimatedCost     *float64 `json:"estimatedCost"`
	EstimatedDuration *float64 `json:"estimatedDuration"`
	AssignedTo        *string  `json:"assignedTo"`
	IsActive          *bool    `json:"isActive"`
}

func (s *WorkshopService) CreateSchedule(ctx context.Context, in CreateScheduleInput) (*models.RecurringSchedule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.VehicleID) == "" {
		return nil, fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.MaintenanceType) == "" {
		return nil, fmt.Errorf("%w: maintenanceType is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Frequency) == "" {
		return nil, fmt.Errorf("%w: frequency is required", ErrInvalidInput)
	}
	if in.FrequencyValue <= 0 {
		return nil, fmt.Errorf("%w: frequencyValue must be positive", ErrInvalidInput)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	now := time.Now().UTC()
	sched := &models.RecurringSchedule{
		ScheduleID:        fmt.Sprintf("RS-%s", uuid.New().String()[:8]),
		Name:              strings.TrimSpace(in.Name),
		VehicleID:         strings.TrimSpace(in.VehicleID),
		MaintenanceType:   strings.TrimSpace(in.MaintenanceType),
		Description:       strings.TrimSpace(in.Description),
		Frequency:         strings.TrimSpace(in.Frequency),
		FrequencyValue:    in.FrequencyValue,
		EstimatedCost:     in.EstimatedCost,
		EstimatedDuration: in.EstimatedDuration,
		AssignedTo:        strings.TrimSpace(in.AssignedTo),
		IsActive:          active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.store.InsertSchedule(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *WorkshopService) ListSchedules(ctx context.Context) ([]models.RecurringSchedule, error) {
	return s.store.FindSchedules(ctx)
}

func (s *WorkshopService) UpdateSchedule(ctx context.Context, scheduleID string, in UpdateScheduleInput) (*models.RecurringSchedule, error) {
	sched, err := s.store.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		sched.Name = *in.Name
	}
	if in.Description != nil {
		sched.Description = *in.Description
	}
	if in.Frequency != nil {
		if strings.TrimSpace(*in.Frequency) == "" {
			return nil, fmt.Errorf("%w: frequency cannot be empty", ErrInvalidInput)
		}
		sched.Frequency = *in.Frequency
	}
	if in.FrequencyValue != nil {
		if *in.FrequencyValue <= 0 {
			return nil, fmt.Errorf("%w: frequencyValue must be positive", ErrInvalidInput)
		}
		sched.FrequencyValue = *in.FrequencyValue
	}
	if in.EstimatedCost != nil {
		sched.EstimatedCost = *in.EstimatedCost
	}
	if in.EstimatedDuration != nil {
		sched.EstimatedDuration = *in.EstimatedDuration
	}
	if in.AssignedTo != nil {
		sched.AssignedTo = *in.AssignedTo
	}
	if in.IsActive != nil {
		sched.IsActive = *in.IsActive
	}
	sched.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateSchedule(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *WorkshopService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	return s.store.DeleteSchedule(ctx, scheduleID)
}
