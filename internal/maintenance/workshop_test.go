// internal/maintenance/workshop_test.go
package maintenance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/models"
	"github.com/msafryx/fleet-management-backend/internal/store/memory"
)

func newWorkshopService() *maintenance.WorkshopService {
	return maintenance.NewWorkshopService(memory.NewWorkshopStore())
}

func technicianInput() maintenance.CreateTechnicianInput {
	return maintenance.CreateTechnicianInput{
		Name:           "Ada Mechanic",
		Email:          "ada@example.com",
		Phone:          "555-0100",
		Specialization: []string{"engine", "brakes"},
		HourlyRate:     45,
	}
}

func TestCreateTechnicianDefaultsAndValidation(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	tech, err := svc.CreateTechnician(ctx, technicianInput())
	if err != nil {
		t.Fatalf("CreateTechnician() returned error: %v", err)
	}
	if tech.Status != models.TechnicianActive {
		t.Errorf("default status = %q, want active", tech.Status)
	}
	if tech.TechnicianID == "" {
		t.Error("technician has no ID")
	}

	bad := []struct {
		name   string
		modify func(*maintenance.CreateTechnicianInput)
	}{
		{"missing name", func(in *maintenance.CreateTechnicianInput) { in.Name = "" }},
		{"missing email", func(in *maintenance.CreateTechnicianInput) { in.Email = " " }},
		{"missing phone", func(in *maintenance.CreateTechnicianInput) { in.Phone = "" }},
		{"zero rate", func(in *maintenance.CreateTechnicianInput) { in.HourlyRate = 0 }},
		{"unknown status", func(in *maintenance.CreateTechnicianInput) { in.Status = "retired" }},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			in := technicianInput()
			c.modify(&in)
			if _, err := svc.CreateTechnician(ctx, in); !errors.Is(err, maintenance.ErrInvalidInput) {
				t.Errorf("CreateTechnician() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestTechnicianUpdateAndDelete(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	tech, err := svc.CreateTechnician(ctx, technicianInput())
	if err != nil {
		t.Fatal(err)
	}

	onLeave := models.TechnicianOnLeave
	rating := 4.8
	updated, err := svc.UpdateTechnician(ctx, tech.TechnicianID, maintenance.UpdateTechnicianInput{
		Status: &onLeave,
		Rating: &rating,
	})
	if err != nil {
		t.Fatalf("UpdateTechnician() returned error: %v", err)
	}
	if updated.Status != models.TechnicianOnLeave {
		t.Errorf("status = %q, want on_leave", updated.Status)
	}
	if updated.Rating != 4.8 {
		t.Errorf("rating = %v, want 4.8", updated.Rating)
	}
	if updated.Name != "Ada Mechanic" {
		t.Errorf("name changed by unrelated update: %q", updated.Name)
	}

	if err := svc.DeleteTechnician(ctx, tech.TechnicianID); err != nil {
		t.Fatalf("DeleteTechnician() returned error: %v", err)
	}
	if err := svc.DeleteTechnician(ctx, tech.TechnicianID); !errors.Is(err, maintenance.ErrTechnicianNotFound) {
		t.Errorf("second delete error = %v, want ErrTechnicianNotFound", err)
	}

	technicians, err := svc.ListTechnicians(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(technicians) != 0 {
		t.Errorf("technician count after delete = %d, want 0", len(technicians))
	}
}

func partInput() maintenance.CreatePartInput {
	return maintenance.CreatePartInput{
		Name:        "Oil Filter",
		PartNumber:  "OF-2041",
		Category:    "filters",
		Quantity:    12,
		MinQuantity: 4,
		UnitCost:    9.5,
	}
}

func TestCreatePartValidation(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	if _, err := svc.CreatePart(ctx, partInput()); err != nil {
		t.Fatalf("CreatePart() returned error: %v", err)
	}

	bad := []struct {
		name   string
		modify func(*maintenance.CreatePartInput)
	}{
		{"missing name", func(in *maintenance.CreatePartInput) { in.Name = "" }},
		{"missing part number", func(in *maintenance.CreatePartInput) { in.PartNumber = "" }},
		{"missing category", func(in *maintenance.CreatePartInput) { in.Category = "" }},
		{"negative quantity", func(in *maintenance.CreatePartInput) { in.Quantity = -1 }},
		{"negative cost", func(in *maintenance.CreatePartInput) { in.UnitCost = -1 }},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			in := partInput()
			c.modify(&in)
			if _, err := svc.CreatePart(ctx, in); !errors.Is(err, maintenance.ErrInvalidInput) {
				t.Errorf("CreatePart() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestListPartsQueryMatching(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	if _, err := svc.CreatePart(ctx, partInput()); err != nil {
		t.Fatal(err)
	}
	brake := maintenance.CreatePartInput{
		Name: "Brake Pad Set", PartNumber: "BP-7700", Category: "brakes",
		Quantity: 6, MinQuantity: 2, UnitCost: 42,
	}
	if _, err := svc.CreatePart(ctx, brake); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"oil", 1},
		{"BRAKE", 1},
		{"bp-77", 1},
		{"filters", 1},
		{"sprocket", 0},
	}
	for _, c := range cases {
		parts, err := svc.ListParts(ctx, c.query)
		if err != nil {
			t.Fatalf("ListParts(%q) returned error: %v", c.query, err)
		}
		if len(parts) != c.want {
			t.Errorf("ListParts(%q) = %d parts, want %d", c.query, len(parts), c.want)
		}
	}
}

func TestPartRestockTracking(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	part, err := svc.CreatePart(ctx, partInput())
	if err != nil {
		t.Fatal(err)
	}
	if part.LastRestocked != nil {
		t.Error("new part already has a restock date")
	}

	lower := 3
	updated, err := svc.UpdatePart(ctx, part.PartID, maintenance.UpdatePartInput{Quantity: &lower})
	if err != nil {
		t.Fatal(err)
	}
	if updated.LastRestocked != nil {
		t.Error("quantity decrease recorded as a restock")
	}
	if !updated.LowStock() {
		t.Error("part below minQuantity not reported as low stock")
	}

	higher := 20
	updated, err = svc.UpdatePart(ctx, part.PartID, maintenance.UpdatePartInput{Quantity: &higher})
	if err != nil {
		t.Fatal(err)
	}
	if updated.LastRestocked == nil {
		t.Error("quantity increase did not record a restock")
	}
	if updated.LowStock() {
		t.Error("restocked part still reported as low stock")
	}
}

func scheduleInput() maintenance.CreateScheduleInput {
	return maintenance.CreateScheduleInput{
		Name:            "Quarterly oil change",
		VehicleID:       "VEH-1",
		MaintenanceType: "oil_change",
		Frequency:       "months",
		FrequencyValue:  3,
	}
}

func TestCreateScheduleDefaultsAndValidation(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	sched, err := svc.CreateSchedule(ctx, scheduleInput())
	if err != nil {
		t.Fatalf("CreateSchedule() returned error: %v", err)
	}
	if !sched.IsActive {
		t.Error("new schedule is not active by default")
	}

	inactive := false
	in := scheduleInput()
	in.IsActive = &inactive
	sched, err = svc.CreateSchedule(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	if sched.IsActive {
		t.Error("explicit isActive=false ignored")
	}

	bad := []struct {
		name   string
		modify func(*maintenance.CreateScheduleInput)
	}{
		{"missing name", func(in *maintenance.CreateScheduleInput) { in.Name = "" }},
		{"missing vehicle", func(in *maintenance.CreateScheduleInput) { in.VehicleID = "" }},
		{"missing type", func(in *maintenance.CreateScheduleInput) { in.MaintenanceType = "" }},
		{"missing frequency", func(in *maintenance.CreateScheduleInput) { in.Frequency = "" }},
		{"zero frequency value", func(in *maintenance.CreateScheduleInput) { in.FrequencyValue = 0 }},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			in := scheduleInput()
			c.modify(&in)
			if _, err := svc.CreateSchedule(ctx, in); !errors.Is(err, maintenance.ErrInvalidInput) {
				t.Errorf("CreateSchedule() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestScheduleUpdateAndDelete(t *testing.T) {
	svc := newWorkshopService()
	ctx := context.Background()

	sched, err := svc.CreateSchedule(ctx, scheduleInput())
	if err != nil {
		t.Fatal(err)
	}

	value := 6
	inactive := false
	updated, err := svc.UpdateSchedule(ctx, sched.ScheduleID, maintenance.UpdateScheduleInput{
		FrequencyValue: &value,
		IsActive:       &inactive,
	})
	if err != nil {
		t.Fatalf("UpdateSchedule() returned error: %v", err)
	}
	if updated.FrequencyValue != 6 {
		t.Errorf("frequencyValue = %d, want 6", updated.FrequencyValue)
	}
	if updated.IsActive {
		t.Error("schedule still active after deactivation")
	}

	zero := 0
	if _, err := svc.UpdateSchedule(ctx, sched.ScheduleID, maintenance.UpdateScheduleInput{FrequencyValue: &zero}); !errors.Is(err, maintenance.ErrInvalidInput) {
		t.Errorf("UpdateSchedule() with zero frequency: error = %v, want ErrInvalidInput", err)
	}

	if err := svc.DeleteSchedule(ctx, sched.ScheduleID); err != nil {
		t.Fatalf("DeleteSchedule() returned error: %v", err)
	}
	if _, err := svc.UpdateSchedule(ctx, sched.ScheduleID, maintenance.UpdateScheduleInput{}); !errors.Is(err, maintenance.ErrScheduleNotFound) {
		t.Errorf("update after delete error = %v, want ErrScheduleNotFound", err)
	}
}
