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

type movementDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	AssetID            string             `bson:"assetId"`
	AssetName          string             `bson:"assetName,omitempty"`
	SerialNumber       string             `bson:"serialNumber,omitempty"`
	MovementFrom       string             `bson:"movementFrom"`
	MovementTo         string             `bson:"movementTo"`
	MovementType       string             `bson:"movementType"`
	DispatchedBy       string             `bson:"dispatchedBy,omitempty"`
	ReceivedBy         string             `bson:"receivedBy,omitempty"`
	Date               time.Time          `bson:"date"`
	Returnable         bool               `bson:"returnable"`
	ExpectedReturnDate *time.Time         `bson:"expectedReturnDate,omitempty"`
	ReturnedDateTime   *time.Time         `bson:"returnedDateTime,omitempty"`
	AssetCondition     string             `bson:"assetCondition,omitempty"`
	Description        string             `bson:"description,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

func (d *movementDoc) toEntity() *entity.Movement {
	return &entity.Movement{
		ID:                 d.ID.Hex(),
		AssetID:            d.AssetID,
		AssetName:          d.AssetName,
		SerialNumber:       d.SerialNumber,
		MovementFrom:       d.MovementFrom,
		MovementTo:         d.MovementTo,
		MovementType:       d.MovementType,
		DispatchedBy:       d.DispatchedBy,
		ReceivedBy:         d.ReceivedBy,
		Date:               d.Date,
		Returnable:         d.Returnable,
		ExpectedReturnDate: d.ExpectedReturnDate,
		ReturnedDateTime:   d.ReturnedDateTime,
		AssetCondition:     d.AssetCondition,
		Description:        d.Description,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// MovementRepository implements repository.MovementRepository on the
// "movements" collection.
type MovementRepository struct {
	col *mongo.Collection
}

// NewMovementRepository builds the repository.
func NewMovementRepository(db *mongo.Database) *MovementRepository {
	return &MovementRepository{col: db.Collection("movements")}
}

// Create inserts the movement and writes the generated id back onto the
// entity.
func (r *MovementRepository) Create(ctx context.Context, mv *entity.Movement) error {
	doc := movementDoc{
		ID:                 primitive.NewObjectID(),
		AssetID:            mv.AssetID,
		AssetName:          mv.AssetName,
		SerialNumber:       mv.SerialNumber,
		MovementFrom:       mv.MovementFrom,
		MovementTo:         mv.MovementTo,
		MovementType:       mv.MovementType,
		DispatchedBy:       mv.DispatchedBy,
		ReceivedBy:         mv.ReceivedBy,
		Date:               mv.Date,
		Returnable:         mv.Returnable,
		ExpectedReturnDate: mv.ExpectedReturnDate,
		ReturnedDateTime:   mv.ReturnedDateTime,
		AssetCondition:     mv.AssetCondition,
		Description:        mv.Description,
		CreatedAt:          mv.CreatedAt,
		UpdatedAt:          mv.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	mv.ID = doc.ID.Hex()
	return nil
}

// GetByID returns the movement or (nil, nil) when no document matches.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	var doc movementDoc
	err := r.col.FindOne(ctx, IDFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// List returns all movements matching the filter. All criteria are
// conjunctive; zero values are no-ops.
func (r *MovementRepository) List(ctx context.Context, f entity.MovementFilter) ([]*entity.Movement, error) {
	filter := bson.M{}
	if f.From != nil || f.To != nil {
		dateRange := bson.M{}
		if f.From != nil {
			dateRange["$gte"] = *f.From
		}
		if f.To != nil {
			dateRange["$lte"] = *f.To
		}
		filter["date"] = dateRange
	}
	if f.MovementType != "" {
		filter["movementType"] = f.MovementType
	}
	if f.Returnable != nil {
		filter["returnable"] = *f.Returnable
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			containsFilter("assetName", f.Search),
			containsFilter("serialNumber", f.Search),
		}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.Movement
	for cur.Next(ctx) {
		var doc movementDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}

// Update applies a partial $set merge of the patched fields.
func (r *MovementRepository) Update(ctx context.Context, id string, p entity.MovementPatch) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.MovementFrom != nil {
		set["movementFrom"] = *p.MovementFrom
	}
	if p.MovementTo != nil {
		set["movementTo"] = *p.MovementTo
	}
	if p.MovementType != nil {
		set["movementType"] = *p.MovementType
	}
	if p.DispatchedBy != nil {
		set["dispatchedBy"] = *p.DispatchedBy
	}
	if p.ReceivedBy != nil {
		set["receivedBy"] = *p.ReceivedBy
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	if p.Returnable != nil {
		set["returnable"] = *p.Returnable
	}
	if p.ExpectedReturnDate != nil {
		set["expectedReturnDate"] = *p.ExpectedReturnDate
	}
	if p.ReturnedDateTime != nil {
		set["returnedDateTime"] = *p.ReturnedDateTime
	}
	if p.AssetCondition != nil {
		set["assetCondition"] = *p.AssetCondition
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

// Delete removes the movement by id.
func (r *MovementRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
