package mongodb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DashboardRepository implements repository.DashboardRepository with
// read-only aggregate queries across the four collections.
type DashboardRepository struct {
	db *mongo.Database
}

// NewDashboardRepository builds the repository.
func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.db.Collection("users").CountDocuments(ctx, bson.M{})
}

func (r *DashboardRepository) CountAssets(ctx context.Context) (int64, error) {
	return r.db.Collection("assets").CountDocuments(ctx, bson.M{})
}

func (r *DashboardRepository) CountMovements(ctx context.Context) (int64, error) {
	return r.db.Collection("movements").CountDocuments(ctx, bson.M{})
}

func (r *DashboardRepository) CountMaintenance(ctx context.Context) (int64, error) {
	return r.db.Collection("maintenance").CountDocuments(ctx, bson.M{})
}

// AssetStatusBreakdown groups the assets collection by status.
func (r *DashboardRepository) AssetStatusBreakdown(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.db.Collection("assets").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.Status] = row.Count
	}
	return out, cur.Err()
}

// TotalMaintenanceCost sums the cost field over all maintenance records.
// Costs are stored as decimal strings, so the sum runs client-side over a
// projected scan rather than in an aggregation stage.
func (r *DashboardRepository) TotalMaintenanceCost(ctx context.Context) (decimal.Decimal, error) {
	opts := options.Find().SetProjection(bson.M{"cost": 1})
	cur, err := r.db.Collection("maintenance").Find(ctx, bson.M{}, opts)
	if err != nil {
		return decimal.Zero, err
	}
	defer cur.Close(ctx)

	total := decimal.Zero
	for cur.Next(ctx) {
		var row struct {
			Cost string `bson:"cost"`
		}
		if err := cur.Decode(&row); err != nil {
			return decimal.Zero, err
		}
		if row.Cost == "" {
			continue
		}
		c, err := decimal.NewFromString(row.Cost)
		if err != nil {
			return decimal.Zero, fmt.Errorf("mongodb: bad cost %q: %w", row.Cost, err)
		}
		total = total.Add(c)
	}
	return total, cur.Err()
}
