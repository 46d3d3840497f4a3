package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

// Cost is stored as a decimal string to avoid float drift; conversion
// happens at the document boundary.
type maintenanceDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	AssetID         string             `bson:"assetId"`
	AssetName       string             `bson:"assetName,omitempty"`
	MaintenanceType string             `bson:"maintenanceType"`
	ScheduledDate   time.Time          `bson:"scheduledDate"`
	Status          string             `bson:"status"`
	PerformedBy     string             `bson:"performedBy,omitempty"`
	Cost            string             `bson:"cost,omitempty"`
	Description     string             `bson:"description,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d *maintenanceDoc) toEntity() (*entity.Maintenance, error) {
	cost := decimal.Zero
	if d.Cost != "" {
		var err error
		cost, err = decimal.NewFromString(d.Cost)
		if err != nil {
			return nil, fmt.Errorf("mongodb: maintenance %s: bad cost %q: %w", d.ID.Hex(), d.Cost, err)
		}
	}
	return &entity.Maintenance{
		ID:              d.ID.Hex(),
		AssetID:         d.AssetID,
		AssetName:       d.AssetName,
		MaintenanceType: d.MaintenanceType,
		ScheduledDate:   d.ScheduledDate,
		Status:          d.Status,
		PerformedBy:     d.PerformedBy,
		Cost:            cost,
		Description:     d.Description,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

// MaintenanceRepository implements repository.MaintenanceRepository on the
// "maintenance" collection.
type MaintenanceRepository struct {
	col *mongo.Collection
}

// NewMaintenanceRepository builds the repository.
func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{col: db.Collection("maintenance")}
}

// Create inserts the record and writes the generated id back onto the entity.
func (r *MaintenanceRepository) Create(ctx context.Context, m *entity.Maintenance) error {
	doc := maintenanceDoc{
		ID:              primitive.NewObjectID(),
		AssetID:         m.AssetID,
		AssetName:       m.AssetName,
		MaintenanceType: m.MaintenanceType,
		ScheduledDate:   m.ScheduledDate,
		Status:          m.Status,
		PerformedBy:     m.PerformedBy,
		Cost:            m.Cost.String(),
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	m.ID = doc.ID.Hex()
	return nil
}

// GetByID returns the record or (nil, nil) when no document matches.
func (r *MaintenanceRepository) GetByID(ctx context.Context, id string) (*entity.Maintenance, error) {
	var doc maintenanceDoc
	err := r.col.FindOne(ctx, IDFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity()
}

// List returns all records matching the filter. All criteria are
// conjunctive; zero values are no-ops.
func (r *MaintenanceRepository) List(ctx context.Context, f entity.MaintenanceFilter) ([]*entity.Maintenance, error) {
	filter := bson.M{}
	if f.From != nil || f.To != nil {
		dateRange := bson.M{}
		if f.From != nil {
			dateRange["$gte"] = *f.From
		}
		if f.To != nil {
			dateRange["$lte"] = *f.To
		}
		filter["scheduledDate"] = dateRange
	}
	if f.MaintenanceType != "" {
		filter["maintenanceType"] = f.MaintenanceType
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.PerformedBy != "" {
		filter["performedBy"] = f.PerformedBy
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			containsFilter("assetName", f.Search),
			containsFilter("description", f.Search),
		}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Maintenance
	for cur.Next(ctx) {
		var doc maintenanceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		m, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Update applies a partial $set merge of the patched fields.
func (r *MaintenanceRepository) Update(ctx context.Context, id string, p entity.MaintenancePatch) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.MaintenanceType != nil {
		set["maintenanceType"] = *p.MaintenanceType
	}
	if p.ScheduledDate != nil {
		set["scheduledDate"] = *p.ScheduledDate
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	if p.PerformedBy != nil {
		set["performedBy"] = *p.PerformedBy
	}
	if p.Cost != nil {
		set["cost"] = p.Cost.String()
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	res, err := r.col.UpdateOne(ctx, IDFilter(id), bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the record by id.
func (r *MaintenanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
