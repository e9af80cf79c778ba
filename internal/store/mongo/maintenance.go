// internal/store/mongo/maintenance.go
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/msafryx/fleet-management-backend/internal/maintenance"
	"github.com/msafryx/fleet-management-backend/internal/models"
)

const maintenanceCollection = "maintenance_items"

// MaintenanceStore is the MongoDB implementation of maintenance.Store.
type MaintenanceStore struct {
	db *mongo.Database
}

func NewMaintenanceStore(db *mongo.Database) *MaintenanceStore {
	return &MaintenanceStore{db: db}
}

func (s *MaintenanceStore) items() *mongo.Collection {
	return s.db.Collection(maintenanceCollection)
}

func (s *MaintenanceStore) Insert(ctx context.Context, item *models.MaintenanceItem) error {
	_, err := s.items().InsertOne(ctx, item)
	return err
}

func (s *MaintenanceStore) FindByID(ctx context.Context, itemID string) (*models.MaintenanceItem, error) {
	var item models.MaintenanceItem
	err := s.items().FindOne(ctx, bson.M{"itemID": itemID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, maintenance.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *MaintenanceStore) Find(ctx context.Context, f maintenance.Filter) ([]models.MaintenanceItem, int, error) {
	filter := bson.M{}
	if f.VehicleID != "" {
		filter["vehicleID"] = f.VehicleID
	}
	if len(f.Statuses) > 0 {
		filter["status"] = bson.M{"$in": f.Statuses}
	}
	if len(f.Priorities) > 0 {
		filter["priority"] = bson.M{"$in": f.Priorities}
	}
	if f.AssignedTo != "" {
		filter["assignedTo"] = f.AssignedTo
	}

	total, err := s.items().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.M{"itemID": 1})
	if f.PerPage > 0 {
		page := f.Page
		if page <= 0 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * f.PerPage)).SetLimit(int64(f.PerPage))
	}

	cursor, err := s.items().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	items := make([]models.MaintenanceItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, int(total), nil
}

func (s *MaintenanceStore) Update(ctx context.Context, item *models.MaintenanceItem) error {
	res, err := s.items().ReplaceOne(ctx, bson.M{"itemID": item.ItemID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return maintenance.ErrItemNotFound
	}
	return nil
}

func (s *MaintenanceStore) Delete(ctx context.Context, itemID string) error {
	res, err := s.items().DeleteOne(ctx, bson.M{"itemID": itemID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return maintenance.ErrItemNotFound
	}
	return nil
}
