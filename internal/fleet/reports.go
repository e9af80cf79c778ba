// internal/fleet/reports.go
package fleet

import (
	"context"
	"strings"
	"time"

	"github.com/msafryx/fleet-management-backend/internal/models"
)

// Statistics is a point-in-time aggregate over the full live vehicle set.
// It is recomputed on demand, never stored.
type Statistics struct {
	Total               int            `json:"total"`
	ByStatus            map[string]int `json:"byStatus"`
	AverageFuelLevel    float64        `json:"averageFuelLevel"`
	AverageMileage      float64        `json:"averageMileage"`
	LowFuelCount        int            `json:"lowFuelCount"`        // fuel < 25
	MaintenanceDueCount int            `json:"maintenanceDueCount"` // next maintenance within 7 days
}

type FuelReportEntry struct {
	VehicleID    string  `json:"vehicleID"`
	LicensePlate string  `json:"licensePlate"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	FuelLevel    float64 `json:"fuelLevel"`
	FuelType     string  `json:"fuelType"`
	Mileage      float64 `json:"mileage"`
	Status       string  `json:"status"`
}

// Statistics computes fleet-wide counts and averages. The four status
// buckets always sum to the total.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	vehicles, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	stats := &Statistics{
		ByStatus: map[string]int{
			models.StatusIdle.String():        0,
			models.StatusActive.String():      0,
			models.StatusMaintenance.String(): 0,
			models.StatusOffline.String():     0,
		},
	}

	var fuelSum, mileageSum float64
	dueCutoff := time.Now().UTC().Add(7 * 24 * time.Hour)

	for i := range vehicles {
		v := &vehicles[i]
		stats.Total++
		stats.ByStatus[v.Status.String()]++
		fuelSum += v.FuelLevel
		mileageSum += v.Mileage
		if v.FuelLevel < 25 {
			stats.LowFuelCount++
		}
		if v.NextMaintenance != nil && !v.NextMaintenance.After(dueCutoff) {
			stats.MaintenanceDueCount++
		}
	}

	if stats.Total > 0 {
		stats.AverageFuelLevel = fuelSum / float64(stats.Total)
		stats.AverageMileage = mileageSum / float64(stats.Total)
	}
	return stats, nil
}

// AvailableVehicles lists vehicles eligible for a new driver assignment.
func (s *Service) AvailableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	available := make([]models.Vehicle, 0)
	for i := range vehicles {
		if vehicles[i].Available() {
			available = append(available, vehicles[i])
		}
	}
	return available, nil
}

// FuelReport snapshots each vehicle's fuel data with the status rendered as
// its label. statusFilter, when non-empty, matches the label
// case-insensitively.
func (s *Service) FuelReport(ctx context.Context, statusFilter string) ([]FuelReportEntry, error) {
	vehicles, err := s.store.Find(ctx, Filter{})
	if err != nil {
		return nil, err
	}

	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	report := make([]FuelReportEntry, 0, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		label := v.Status.String()
		if statusFilter != "" && label != statusFilter {
			continue
		}
		report = append(report, FuelReportEntry{
			VehicleID:    v.VehicleID,
			LicensePlate: v.LicensePlate,
			Make:         v.Make,
			Model:        v.Model,
			FuelLevel:    v.FuelLevel,
			FuelType:     v.FuelType,
			Mileage:      v.Mileage,
			Status:       label,
		})
	}
	return report, nil
}
