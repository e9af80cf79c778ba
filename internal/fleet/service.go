// internal/fleet/service.go
package fleet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// Service is the sole writer of vehicle state and the sole producer of
// status-change audit records.
type Service struct {
	store    VehicleStore
	notifier Notifier
}

func NewService(store VehicleStore) *Service {
	return &Service{store: store}
}

// SetNotifier attaches a listener for committed status transitions.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateVehicleInput struct {
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	LicensePlate    string     `json:"licensePlate"`
	Color           string     `json:"color"`
	FuelType        string     `json:"fuelType"`
	Mileage         float64    `json:"mileage"`
	Location        string     `json:"location"`
	NextMaintenance *time.Time `json:"nextMaintenance"`
}

// UpdateVehicleInput is a partial payload: nil pointer means "not provided",
// which is distinct from an explicit zero value.
type UpdateVehicleInput struct {
	Make            *string               `json:"make"`
	Model           *string               `json:"model"`
	Year            *int                  `json:"year"`
	LicensePlate    *string               `json:"licensePlate"`
	Color           *string               `json:"color"`
	FuelType        *string               `json:"fuelType"`
	Mileage         *float64              `json:"mileage"`
	FuelLevel       *float64              `json:"fuelLevel"`
	Location        *string               `json:"location"`
	Status          *models.VehicleStatus `json:"status"`
	LastMaintenance *time.Time            `json:"lastMaintenance"`
	NextMaintenance *time.Time            `json:"nextMaintenance"`

	// Only consulted when the payload causes a status transition.
	Reason    string `json:"reason"`
	UpdatedBy string `json:"updatedBy"`
}

func newVehicleID() string {
	return fmt.Sprintf("VEH-%s", uuid.New().String()[:8])
}

func newRecordID() string {
	return fmt.Sprintf("SCR-%s", uuid.New().String()[:8])
}

func clampFuel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// Create registers a new vehicle: fuel 100, status idle, no driver.
func (s *Service) Create(ctx context.Context, in CreateVehicleInput) (*models.Vehicle, error) {
	if strings.TrimSpace(in.Make) == "" {
		return nil, fmt.Errorf("%w: make is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Model) == "" {
		return nil, fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if in.Year == 0 {
		return nil, fmt.Errorf("%w: year is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LicensePlate) == "" {
		return nil, fmt.Errorf("%w: licensePlate is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	v := &models.Vehicle{
		VehicleID:       newVehicleID(),
		Make:            strings.TrimSpace(in.Make),
		Model:           strings.TrimSpace(in.Model),
		Year:            in.Year,
		LicensePlate:    strings.TrimSpace(in.LicensePlate),
		Color:           strings.TrimSpace(in.Color),
		FuelType:        strings.TrimSpace(in.FuelType),
		Mileage:         in.Mileage,
		FuelLevel:       100,
		Location:        strings.TrimSpace(in.Location),
		Status:          models.StatusIdle,
		NextMaintenance: in.NextMaintenance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	return s.store.FindByID(ctx, vehicleID)
}

func (s *Service) List(ctx context.Context, f Filter) ([]models.Vehicle, error) {
	return s.store.Find(ctx, f)
}

// Update applies the fields present in the partial payload. The merge runs
// first; only afterwards is the pre-merge status compared to the post-merge
// status to decide whether a transition happened. Setting the status to its
// current value therefore produces no audit record.
func (s *Service) Update(ctx context.Context, vehicleID string, in UpdateVehicleInput) (*models.Vehicle, error) {
	var committed *models.StatusChangeRecord

	v, err := s.store.Mutate(ctx, vehicleID, func(v *models.Vehicle) (*models.StatusChangeRecord, error) {
		prev := v.Status

		if in.Make != nil {
			v.Make = *in.Make
		}
		if in.Model != nil {
			v.Model = *in.Model
		}
		if in.Year != nil {
			v.Year = *in.Year
		}
		if in.LicensePlate != nil {
			v.LicensePlate = *in.LicensePlate
		}
		if in.Color != nil {
			v.Color = *in.Color
		}
		if in.FuelType != nil {
			v.FuelType = *in.FuelType
		}
		if in.Mileage != nil {
			v.Mileage = *in.Mileage
		}
		if in.FuelLevel != nil {
			v.FuelLevel = clampFuel(*in.FuelLevel)
		}
		if in.Location != nil {
			v.Location = *in.Location
		}
		if in.Status != nil {
			v.Status = *in.Status
		}
		if in.LastMaintenance != nil {
			v.LastMaintenance = in.LastMaintenance
		}
		if in.NextMaintenance != nil {
			v.NextMaintenance = in.NextMaintenance
		}
		v.UpdatedAt = time.Now().UTC()

		if v.Status == prev {
			return nil, nil
		}
		rec := s.newRecord(v.VehicleID, prev, v.Status,
			defaultString(in.Reason, "Status updated"),
			defaultString(in.UpdatedBy, "System"))
		committed = rec
		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(committed)
	return v, nil
}

// AssignDriver puts a driver on the vehicle and forces it active. The
// forced transition is recorded regardless of the prior status.
func (s *Service) AssignDriver(ctx context.Context, vehicleID, driverID, assignedBy string) (*models.Vehicle, error) {
	driverID = strings.TrimSpace(driverID)
	if driverID == "" {
		return nil, fmt.Errorf("%w: driverId is required", ErrInvalidInput)
	}

	var committed *models.StatusChangeRecord
	v, err := s.store.Mutate(ctx, vehicleID, func(v *models.Vehicle) (*models.StatusChangeRecord, error) {
		prev := v.Status
		v.AssignedDriverID = &driverID
		v.Status = models.StatusActive
		v.UpdatedAt = time.Now().UTC()

		rec := s.newRecord(v.VehicleID, prev, v.Status,
			fmt.Sprintf("Driver %s assigned to vehicle", driverID),
			defaultString(assignedBy, "System"))
		committed = rec
		return rec, nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(committed)
	return v, nil
}

// UnassignDriver clears the driver and forces the vehicle idle. Returns the
// previously assigned driver ID, which may be empty.
func (s *Service) UnassignDriver(ctx context.Context, vehicleID, unassignedBy string) (*models.Vehicle, string, error) {
	var previousDriver string
	var committed *models.StatusChangeRecord

	v, err := s.store.Mutate(ctx, vehicleID, func(v *models.Vehicle) (*models.StatusChangeRecord, error) {
		prev := v.Status
		if v.AssignedDriverID != nil {
			previousDriver = *v.AssignedDriverID
		}
		v.AssignedDriverID = nil
		v.Status = models.StatusIdle
		v.UpdatedAt = time.Now().UTC()

		reason := "Driver unassigned from vehicle"
		if previousDriver != "" {
			reason = fmt.Sprintf("Driver %s unassigned from vehicle", previousDriver)
		}
		rec := s.newRecord(v.VehicleID, prev, v.Status, reason,
			defaultString(unassignedBy, "System"))
		committed = rec
		return rec, nil
	})
	if err != nil {
		return nil, "", err
	}

	s.notify(committed)
	return v, previousDriver, nil
}

// Delete removes the vehicle. History records are kept.
func (s *Service) Delete(ctx context.Context, vehicleID string) error {
	return s.store.Delete(ctx, vehicleID)
}

// History returns the vehicle's status-change records, oldest first. It does
// not require the vehicle to still exist.
func (s *Service) History(ctx context.Context, vehicleID string) ([]models.StatusChangeRecord, error) {
	return s.store.HistoryByVehicle(ctx, vehicleID)
}

// AddDocument attaches an uploaded document reference to the vehicle.
func (s *Service) AddDocument(ctx context.Context, vehicleID string, doc models.MediaPointer) (*models.Vehicle, error) {
	return s.store.Mutate(ctx, vehicleID, func(v *models.Vehicle) (*models.StatusChangeRecord, error) {
		v.Documents = append(v.Documents, doc)
		v.UpdatedAt = time.Now().UTC()
		return nil, nil
	})
}

func (s *Service) newRecord(vehicleID string, from, to models.VehicleStatus, reason, actor string) *models.StatusChangeRecord {
	return &models.StatusChangeRecord{
		RecordID:  newRecordID(),
		VehicleID: vehicleID,
		OldStatus: from,
		NewStatus: to,
		Reason:    reason,
		ChangedBy: actor,
		CreatedAt: time.Now().UTC(),
	}
}

func (s *Service) notify(rec *models.StatusChangeRecord) {
	if rec == nil || s.notifier == nil {
		return
	}
	s.notifier.StatusChanged(*rec)
}

func defaultString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
