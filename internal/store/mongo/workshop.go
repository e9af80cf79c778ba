// internal/store/mongo/workshop.go
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

const (
	technicianCollection = "technicians"
	partCollection       = "parts"
	scheduleCollection   = "recurring_schedules"
)

// WorkshopStore is the MongoDB implementation of maintenance.WorkshopStore.
type WorkshopStore struct {
	db *mongo.Database
}

func NewWorkshopStore(db *mongo.Database) *WorkshopStore {
	return &WorkshopStore{db: db}
}

func (s *WorkshopStore) technicians() *mongo.Collection {
	return s.db.Collection(technicianCollection)
}

func (s *WorkshopStore) parts() *mongo.Collection {
	return s.db.Collection(partCollection)
}

func (s *WorkshopStore) schedules() *mongo.Collection {
	return s.db.Collection(scheduleCollection)
}

func (s *WorkshopStore) InsertTechnician(ctx context.Context, t *models.Technician) error {
	_, err := s.technicians().InsertOne(ctx, t)
	return err
}

func (s *WorkshopStore) FindTechnicianByID(ctx context.Context, techID string) (*models.Technician, error) {
	var t models.Technician
	err := s.technicians().FindOne(ctx, bson.M{"technicianID": techID}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, maintenance.ErrTechnicianNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *WorkshopStore) FindTechnicians(ctx context.Context) ([]models.Technician, error) {
	cursor, err := s.technicians().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"technicianID": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.Technician, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *WorkshopStore) UpdateTechnician(ctx context.Context, t *models.Technician) error {
	res, err := s.technicians().ReplaceOne(ctx, bson.M{"technicianID": t.TechnicianID}, t)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return maintenance.ErrTechnicianNotFound
	}
	return nil
}

func (s *WorkshopStore) DeleteTechnician(ctx context.Context, techID string) error {
	res, err := s.technicians().DeleteOne(ctx, bson.M{"technicianID": techID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return maintenance.ErrTechnicianNotFound
	}
	return nil
}

func (s *WorkshopStore) InsertPart(ctx context.Context, p *models.Part) error {
	_, err := s.parts().InsertOne(ctx, p)
	return err
}

func (s *WorkshopStore) FindPartByID(ctx context.Context, partID string) (*models.Part, error) {
	var p models.Part
	err := s.parts().FindOne(ctx, bson.M{"partID": partID}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, maintenance.ErrPartNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *WorkshopStore) FindParts(ctx context.Context, query string) ([]models.Part, error) {
	filter := bson.M{}
	if query != "" {
		pattern := primitive.Regex{Pattern: query, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"partNumber": pattern},
			bson.M{"category": pattern},
		}
	}

	cursor, err := s.parts().Find(ctx, filter, options.Find().SetSort(bson.M{"partID": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.Part, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *WorkshopStore) UpdatePart(ctx context.Context, p *models.Part) error {
	res, err := s.parts().ReplaceOne(ctx, bson.M{"partID": p.PartID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return maintenance.ErrPartNotFound
	}
	return nil
}

func (s *WorkshopStore) DeletePart(ctx context.Context, partID string) error {
	res, err := s.parts().DeleteOne(ctx, bson.M{"partID": partID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return maintenance.ErrPartNotFound
	}
	return nil
}

func (s *WorkshopStore) InsertSchedule(ctx context.Context, sched *models.RecurringSchedule) error {
	_, err := s.schedules().InsertOne(ctx, sched)
	return err
}

func (s *WorkshopStore) FindScheduleByID(ctx context.Context, scheduleID string) (*models.RecurringSchedule, error) {
	var sched models.RecurringSchedule
	err := s.schedules().FindOne(ctx, bson.M{"scheduleID": scheduleID}).Decode(&sched)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, maintenance.ErrScheduleNotFound
		}
		return nil, err
	}
	return &sched, nil
}

func (s *WorkshopStore) FindSchedules(ctx context.Context) ([]models.RecurringSchedule, error) {
	cursor, err := s.schedules().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"scheduleID": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.RecurringSchedule, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *WorkshopStore) UpdateSchedule(ctx context.Context, sched *models.RecurringSchedule) error {
	res, err := s.schedules().ReplaceOne(ctx, bson.M{"scheduleID": sched.ScheduleID}, sched)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return maintenance.ErrScheduleNotFound
	}
	return nil
}

func (s *WorkshopStore) DeleteSchedule(ctx context.Context, scheduleID string) error {
	res, err := s.schedules().DeleteOne(ctx, bson.M{"scheduleID": scheduleID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return maintenance.ErrScheduleNotFound
	}
	return nil
}
