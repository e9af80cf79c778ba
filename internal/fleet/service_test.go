// internal/fleet/service_test.go
package fleet_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/models"
	"github.com/msafryx/fleet-management-backend/internal/store/memory"
)

func newTestService() (*fleet.Service, *memory.VehicleStore) {
	store := memory.NewVehicleStore()
	return fleet.NewService(store), store
}

func mustCreate(t *testing.T, svc *fleet.Service, in fleet.CreateVehicleInput) *models.Vehicle {
	t.Helper()
	v, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create() returned error: %v", err)
	}
	return v
}

func corolla() fleet.CreateVehicleInput {
	return fleet.CreateVehicleInput{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2020,
		LicensePlate: "ABC123",
	}
}

func statusPtr(s models.VehicleStatus) *models.VehicleStatus { return &s }
func float64Ptr(f float64) *float64                          { return &f }
func stringPtr(s string) *string                             { return &s }

func TestCreateVehicleDefaults(t *testing.T) {
	svc, _ := newTestService()

	v := mustCreate(t, svc, corolla())

	if v.Status != models.StatusIdle {
		t.Errorf("new vehicle status = %v, want idle", v.Status)
	}
	if v.FuelLevel != 100 {
		t.Errorf("new vehicle fuel = %v, want 100", v.FuelLevel)
	}
	if v.AssignedDriverID != nil {
		t.Errorf("new vehicle driver = %v, want nil", *v.AssignedDriverID)
	}
	if v.VehicleID == "" {
		t.Error("new vehicle has no ID")
	}
	if v.UpdatedAt.Before(v.CreatedAt) {
		t.Error("updatedAt is before createdAt")
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name   string
		modify func(*fleet.CreateVehicleInput)
	}{
		{"missing make", func(in *fleet.CreateVehicleInput) { in.Make = "" }},
		{"missing model", func(in *fleet.CreateVehicleInput) { in.Model = "  " }},
		{"missing year", func(in *fleet.CreateVehicleInput) { in.Year = 0 }},
		{"missing plate", func(in *fleet.CreateVehicleInput) { in.LicensePlate = "" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := corolla()
			c.modify(&in)
			_, err := svc.Create(context.Background(), in)
			if !errorsIsInvalid(err) {
				t.Errorf("Create() error = %v, want validation error", err)
			}
		})
	}
}

func errorsIsInvalid(err error) bool {
	return errors.Is(err, fleet.ErrInvalidInput)
}

func TestAssignThenUnassignDriver(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v := mustCreate(t, svc, corolla())

	assigned, err := svc.AssignDriver(ctx, v.VehicleID, "D42", "admin")
	if err != nil {
		t.Fatalf("AssignDriver() returned error: %v", err)
	}
	if assigned.Status != models.StatusActive {
		t.Errorf("status after assign = %v, want active", assigned.Status)
	}
	if assigned.AssignedDriverID == nil || *assigned.AssignedDriverID != "D42" {
		t.Errorf("assigned driver = %v, want D42", assigned.AssignedDriverID)
	}

	unassigned, previousDriver, err := svc.UnassignDriver(ctx, v.VehicleID, "admin")
	if err != nil {
		t.Fatalf("UnassignDriver() returned error: %v", err)
	}
	if previousDriver != "D42" {
		t.Errorf("previous driver = %q, want D42", previousDriver)
	}
	if unassigned.Status != models.StatusIdle {
		t.Errorf("status after unassign = %v, want idle", unassigned.Status)
	}
	if unassigned.AssignedDriverID != nil {
		t.Errorf("driver after unassign = %v, want nil", *unassigned.AssignedDriverID)
	}

	records, err := svc.History(ctx, v.VehicleID)
	if err != nil {
		t.Fatalf("History() returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("history length = %d, want 2", len(records))
	}
	if records[0].OldStatus != models.StatusIdle || records[0].NewStatus != models.StatusActive {
		t.Errorf("first record = %v -> %v, want idle -> active", records[0].OldStatus, records[0].NewStatus)
	}
	if !strings.Contains(records[0].Reason, "D42") {
		t.Errorf("first record reason %q does not name the driver", records[0].Reason)
	}
	if records[0].ChangedBy != "admin" {
		t.Errorf("first record actor = %q, want admin", records[0].ChangedBy)
	}
	if records[1].OldStatus != models.StatusActive || records[1].NewStatus != models.StatusIdle {
		t.Errorf("second record = %v -> %v, want active -> idle", records[1].OldStatus, records[1].NewStatus)
	}
	if !strings.Contains(records[1].Reason, "D42") {
		t.Errorf("second record reason %q does not name the previous driver", records[1].Reason)
	}
}

func TestAssignDriverValidation(t *testing.T) {
	svc, _ := newTestService()
	v := mustCreate(t, svc, corolla())

	if _, err := svc.AssignDriver(context.Background(), v.VehicleID, "  ", "admin"); !errorsIsInvalid(err) {
		t.Errorf("AssignDriver with blank driver: error = %v, want validation error", err)
	}
}

func TestUpdateSameStatusNoAuditRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	v := mustCreate(t, svc, corolla())

	_, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{Status: statusPtr(models.StatusIdle)})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	records, _ := svc.History(ctx, v.VehicleID)
	if len(records) != 0 {
		t.Errorf("history length = %d after no-op status update, want 0", len(records))
	}
}

func TestUpdateStatusTransitionAppendsOneRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	v := mustCreate(t, svc, corolla())

	updated, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{
		Status: statusPtr(models.StatusMaintenance),
		Reason: "Brake inspection",
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
	if updated.Status != models.StatusMaintenance {
		t.Errorf("status = %v, want maintenance", updated.Status)
	}

	records, _ := svc.History(ctx, v.VehicleID)
	if len(records) != 1 {
		t.Fatalf("history length = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.OldStatus != models.StatusIdle || rec.NewStatus != models.StatusMaintenance {
		t.Errorf("record = %v -> %v, want idle -> maintenance", rec.OldStatus, rec.NewStatus)
	}
	if rec.Reason != "Brake inspection" {
		t.Errorf("record reason = %q", rec.Reason)
	}
	if rec.ChangedBy != "System" {
		t.Errorf("record actor = %q, want System default", rec.ChangedBy)
	}
}

func TestUpdateDefaultsReasonAndActor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	v := mustCreate(t, svc, corolla())

	if _, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{Status: statusPtr(models.StatusOffline)}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	records, _ := svc.History(ctx, v.VehicleID)
	if len(records) != 1 {
		t.Fatalf("history length = %d, want 1", len(records))
	}
	if records[0].Reason != "Status updated" {
		t.Errorf("default reason = %q, want %q", records[0].Reason, "Status updated")
	}
	if records[0].ChangedBy != "System" {
		t.Errorf("default actor = %q, want System", records[0].ChangedBy)
	}
}

func TestUpdatePartialMergeLeavesOtherFieldsAlone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := corolla()
	in.Color = "White"
	in.FuelType = "petrol"
	v := mustCreate(t, svc, in)

	updated, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{
		Color:   stringPtr("Red"),
		Mileage: float64Ptr(50000),
	})
	if err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}

	if updated.Color != "Red" {
		t.Errorf("color = %q, want Red", updated.Color)
	}
	if updated.Mileage != 50000 {
		t.Errorf("mileage = %v, want 50000", updated.Mileage)
	}
	if updated.FuelType != "petrol" {
		t.Errorf("fuelType = %q changed by unrelated update", updated.FuelType)
	}
	if updated.Make != "Toyota" || updated.Model != "Corolla" {
		t.Errorf("make/model changed by unrelated update: %s %s", updated.Make, updated.Model)
	}
	if updated.Status != models.StatusIdle {
		t.Errorf("status changed by unrelated update: %v", updated.Status)
	}
}

func TestUpdateClampsFuelLevel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	v := mustCreate(t, svc, corolla())

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"above range", 130, 100},
		{"below range", -5, 0},
		{"in range", 42.5, 42.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			updated, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{FuelLevel: float64Ptr(c.in)})
			if err != nil {
				t.Fatalf("Update() returned error: %v", err)
			}
			if updated.FuelLevel != c.want {
				t.Errorf("fuel = %v, want %v", updated.FuelLevel, c.want)
			}
		})
	}
}

func TestAvailableVehiclesProjection(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	available := mustCreate(t, svc, corolla())

	lowFuel := mustCreate(t, svc, fleet.CreateVehicleInput{
		Make: "Ford", Model: "Transit", Year: 2019, LicensePlate: "LOW1",
	})
	if _, err := svc.Update(ctx, lowFuel.VehicleID, fleet.UpdateVehicleInput{FuelLevel: float64Ptr(10)}); err != nil {
		t.Fatal(err)
	}

	inMaintenance := mustCreate(t, svc, fleet.CreateVehicleInput{
		Make: "Tesla", Model: "Model 3", Year: 2022, LicensePlate: "MNT1",
	})
	if _, err := svc.Update(ctx, inMaintenance.VehicleID, fleet.UpdateVehicleInput{Status: statusPtr(models.StatusMaintenance)}); err != nil {
		t.Fatal(err)
	}

	withDriver := mustCreate(t, svc, fleet.CreateVehicleInput{
		Make: "Honda", Model: "Civic", Year: 2021, LicensePlate: "DRV1",
	})
	if _, err := svc.AssignDriver(ctx, withDriver.VehicleID, "D1", "admin"); err != nil {
		t.Fatal(err)
	}

	got, err := svc.AvailableVehicles(ctx)
	if err != nil {
		t.Fatalf("AvailableVehicles() returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("available count = %d, want 1", len(got))
	}
	if got[0].VehicleID != available.VehicleID {
		t.Errorf("available vehicle = %s, want %s", got[0].VehicleID, available.VehicleID)
	}
	for _, v := range got {
		if v.AssignedDriverID != nil || v.Status != models.StatusIdle || v.FuelLevel < 20 {
			t.Errorf("vehicle %s violates the availability projection", v.VehicleID)
		}
	}
}

func TestStatisticsBucketsSumToTotal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	plates := []string{"S1", "S2", "S3", "S4", "S5"}
	for _, p := range plates {
		mustCreate(t, svc, fleet.CreateVehicleInput{Make: "Make", Model: "Model", Year: 2020, LicensePlate: p})
	}

	vehicles, _ := svc.List(ctx, fleet.Filter{})
	if _, err := svc.Update(ctx, vehicles[0].VehicleID, fleet.UpdateVehicleInput{Status: statusPtr(models.StatusOffline)}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Update(ctx, vehicles[1].VehicleID, fleet.UpdateVehicleInput{Status: statusPtr(models.StatusMaintenance)}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Update(ctx, vehicles[2].VehicleID, fleet.UpdateVehicleInput{FuelLevel: float64Ptr(10)}); err != nil {
		t.Fatal(err)
	}
	soon := time.Now().UTC().Add(3 * 24 * time.Hour)
	if _, err := svc.Update(ctx, vehicles[3].VehicleID, fleet.UpdateVehicleInput{NextMaintenance: &soon}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics() returned error: %v", err)
	}

	if stats.Total != len(plates) {
		t.Errorf("total = %d, want %d", stats.Total, len(plates))
	}
	sum := 0
	for _, label := range []string{"idle", "active", "maintenance", "offline"} {
		n, ok := stats.ByStatus[label]
		if !ok {
			t.Errorf("byStatus is missing bucket %q", label)
		}
		sum += n
	}
	if sum != stats.Total {
		t.Errorf("status buckets sum to %d, want total %d", sum, stats.Total)
	}
	if stats.LowFuelCount != 1 {
		t.Errorf("low fuel count = %d, want 1", stats.LowFuelCount)
	}
	if stats.MaintenanceDueCount != 1 {
		t.Errorf("maintenance due count = %d, want 1", stats.MaintenanceDueCount)
	}
}

func TestFuelReportStatusFilter(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	idle := mustCreate(t, svc, corolla())
	active := mustCreate(t, svc, fleet.CreateVehicleInput{
		Make: "Ford", Model: "Transit", Year: 2019, LicensePlate: "FRD1",
	})
	if _, err := svc.AssignDriver(ctx, active.VehicleID, "D7", "admin"); err != nil {
		t.Fatal(err)
	}

	full, err := svc.FuelReport(ctx, "")
	if err != nil {
		t.Fatalf("FuelReport() returned error: %v", err)
	}
	if len(full) != 2 {
		t.Fatalf("unfiltered report length = %d, want 2", len(full))
	}

	// Filter matching is case-insensitive on the label.
	filtered, err := svc.FuelReport(ctx, "IDLE")
	if err != nil {
		t.Fatalf("FuelReport() returned error: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("filtered report length = %d, want 1", len(filtered))
	}
	if filtered[0].VehicleID != idle.VehicleID {
		t.Errorf("filtered vehicle = %s, want %s", filtered[0].VehicleID, idle.VehicleID)
	}
	if filtered[0].Status != "idle" {
		t.Errorf("report status label = %q, want idle", filtered[0].Status)
	}
}

func TestDeleteKeepsStatusHistory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	v := mustCreate(t, svc, corolla())
	if _, err := svc.AssignDriver(ctx, v.VehicleID, "D9", "admin"); err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, v.VehicleID); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}

	if _, err := svc.Get(ctx, v.VehicleID); err == nil {
		t.Error("Get() after delete succeeded, want not found")
	}

	records, err := svc.History(ctx, v.VehicleID)
	if err != nil {
		t.Fatalf("History() after delete returned error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("history length after delete = %d, want 1", len(records))
	}
}

func TestVehicleNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Get(ctx, "VEH-missing"); err == nil {
		t.Error("Get() on missing vehicle succeeded")
	}
	if _, err := svc.Update(ctx, "VEH-missing", fleet.UpdateVehicleInput{}); err == nil {
		t.Error("Update() on missing vehicle succeeded")
	}
	if _, err := svc.AssignDriver(ctx, "VEH-missing", "D1", "admin"); err == nil {
		t.Error("AssignDriver() on missing vehicle succeeded")
	}
	if _, _, err := svc.UnassignDriver(ctx, "VEH-missing", "admin"); err == nil {
		t.Error("UnassignDriver() on missing vehicle succeeded")
	}
	if err := svc.Delete(ctx, "VEH-missing"); err == nil {
		t.Error("Delete() on missing vehicle succeeded")
	}
}

type recordingNotifier struct {
	records []models.StatusChangeRecord
}

func (n *recordingNotifier) StatusChanged(rec models.StatusChangeRecord) {
	n.records = append(n.records, rec)
}

func TestNotifierReceivesCommittedTransitions(t *testing.T) {
	svc, _ := newTestService()
	notifier := &recordingNotifier{}
	svc.SetNotifier(notifier)
	ctx := context.Background()

	v := mustCreate(t, svc, corolla())

	// No transition, no notification.
	if _, err := svc.Update(ctx, v.VehicleID, fleet.UpdateVehicleInput{Color: stringPtr("Green")}); err != nil {
		t.Fatal(err)
	}
	if len(notifier.records) != 0 {
		t.Fatalf("notifications after plain update = %d, want 0", len(notifier.records))
	}

	if _, err := svc.AssignDriver(ctx, v.VehicleID, "D1", "admin"); err != nil {
		t.Fatal(err)
	}
	if len(notifier.records) != 1 {
		t.Fatalf("notifications after assign = %d, want 1", len(notifier.records))
	}
	if notifier.records[0].NewStatus != models.StatusActive {
		t.Errorf("notified new status = %v, want active", notifier.records[0].NewStatus)
	}
}
