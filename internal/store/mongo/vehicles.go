// internal/store/mongo/vehicles.go
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msafryx/fleet-management-backend/internal/fleet"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

const (
	vehiclesCollection = "vehicles"
	historyCollection  = "vehicle_status_history"
)

// VehicleStore is the MongoDB implementation of fleet.VehicleStore.
type VehicleStore struct {
	db *mongo.Database
}

func NewVehicleStore(db *mongo.Database) *VehicleStore {
	return &VehicleStore{db: db}
}

func (s *VehicleStore) vehicles() *mongo.Collection {
	return s.db.Collection(vehiclesCollection)
}

func (s *VehicleStore) history() *mongo.Collection {
	return s.db.Collection(historyCollection)
}

func (s *VehicleStore) Insert(ctx context.Context, v *models.Vehicle) error {
	_, err := s.vehicles().InsertOne(ctx, v)
	return err
}

func (s *VehicleStore) FindByID(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.vehicles().FindOne(ctx, bson.M{"vehicleID": vehicleID}).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VehicleStore) Find(ctx context.Context, f fleet.Filter) ([]models.Vehicle, error) {
	filter := bson.M{}
	if f.Status != nil {
		filter["status"] = *f.Status
	}

	cursor, err := s.vehicles().Find(ctx, filter, options.Find().SetSort(bson.M{"vehicleID": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vehicles := make([]models.Vehicle, 0)
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Mutate runs the read, the callback and the writes in one transaction so a
// vehicle update and its history append commit or roll back together.
func (s *VehicleStore) Mutate(ctx context.Context, vehicleID string, fn fleet.MutateFunc) (*models.Vehicle, error) {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var v models.Vehicle
		if err := s.vehicles().FindOne(sc, bson.M{"vehicleID": vehicleID}).Decode(&v); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, fleet.ErrVehicleNotFound
			}
			return nil, err
		}

		rec, err := fn(&v)
		if err != nil {
			return nil, err
		}

		if _, err := s.vehicles().ReplaceOne(sc, bson.M{"vehicleID": vehicleID}, v); err != nil {
			return nil, err
		}
		if rec != nil {
			if _, err := s.history().InsertOne(sc, rec); err != nil {
				return nil, err
			}
		}
		return &v, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Vehicle), nil
}

func (s *VehicleStore) Delete(ctx context.Context, vehicleID string) error {
	// History rows are intentionally left behind; they reference the vehicle
	// by ID only.
	res, err := s.vehicles().DeleteOne(ctx, bson.M{"vehicleID": vehicleID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fleet.ErrVehicleNotFound
	}
	return nil
}

func (s *VehicleStore) HistoryByVehicle(ctx context.Context, vehicleID string) ([]models.StatusChangeRecord, error) {
	cursor, err := s.history().Find(ctx,
		bson.M{"vehicleID": vehicleID},
		options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.StatusChangeRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
