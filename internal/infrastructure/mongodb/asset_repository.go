package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/trackops/assettrack-api/internal/domain/entity"
)

type assetDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Type         string             `bson:"type"`
	Category     string             `bson:"category,omitempty"`
	PurchaseDate *time.Time         `bson:"purchaseDate,omitempty"`
	Warranty     string             `bson:"warranty,omitempty"`
	Location     string             `bson:"location,omitempty"`
	Condition    string             `bson:"condition,omitempty"`
	SerialNumber string             `bson:"serialNumber,omitempty"`
	AssignedTo   string             `bson:"assignedTo,omitempty"`
	Description  string             `bson:"description,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d *assetDoc) toEntity() *entity.Asset {
	return &entity.Asset{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Type:         d.Type,
		Category:     d.Category,
		PurchaseDate: d.PurchaseDate,
		Warranty:     d.Warranty,
		Location:     d.Location,
		Condition:    d.Condition,
		SerialNumber: d.SerialNumber,
		AssignedTo:   d.AssignedTo,
		Description:  d.Description,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// AssetRepository implements repository.AssetRepository on the "assets"
// collection.
type AssetRepository struct {
	col *mongo.Collection
}

// NewAssetRepository builds the repository.
func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{col: db.Collection("assets")}
}

// Create inserts the asset and writes the generated id back onto the entity.
func (r *AssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	doc := assetDoc{
		ID:           primitive.NewObjectID(),
		Name:         asset.Name,
		Type:         asset.Type,
		Category:     asset.Category,
		PurchaseDate: asset.PurchaseDate,
		Warranty:     asset.Warranty,
		Location:     asset.Location,
		Condition:    asset.Condition,
		SerialNumber: asset.SerialNumber,
		AssignedTo:   asset.AssignedTo,
		Description:  asset.Description,
		Status:       asset.Status,
		CreatedAt:    asset.CreatedAt,
		UpdatedAt:    asset.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	asset.ID = doc.ID.Hex()
	return nil
}

// GetByID returns the asset or (nil, nil) when no document matches.
func (r *AssetRepository) GetByID(ctx context.Context, id string) (*entity.Asset, error) {
	var doc assetDoc
	err := r.col.FindOne(ctx, IDFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// List returns all assets matching the filter (full collection scan, no
// pagination).
func (r *AssetRepository) List(ctx context.Context, f entity.AssetFilter) ([]*entity.Asset, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			containsFilter("name", f.Search),
			containsFilter("serialNumber", f.Search),
		}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Asset
	for cur.Next(ctx) {
		var doc assetDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}

// Update applies a partial $set merge of the patched fields.
func (r *AssetRepository) Update(ctx context.Context, id string, p entity.AssetPatch) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.PurchaseDate != nil {
		set["purchaseDate"] = *p.PurchaseDate
	}
	if p.Warranty != nil {
		set["warranty"] = *p.Warranty
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Condition != nil {
		set["condition"] = *p.Condition
	}
	if p.SerialNumber != nil {
		set["serialNumber"] = *p.SerialNumber
	}
	if p.AssignedTo != nil {
		set["assignedTo"] = *p.AssignedTo
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	res, err := r.col.UpdateOne(ctx, IDFilter(id), bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the asset by id.
func (r *AssetRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
