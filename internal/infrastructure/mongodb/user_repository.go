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

type userDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"passwordHash"`
	Role             string             `bson:"role"`
	ResetToken       string             `bson:"resetToken,omitempty"`
	ResetTokenExpiry *time.Time         `bson:"resetTokenExpiry,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		Role:             d.Role,
		ResetToken:       d.ResetToken,
		ResetTokenExpiry: d.ResetTokenExpiry,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// UserRepository implements repository.UserRepository on the "users"
// collection.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository builds the repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Create inserts the user and writes the generated id back onto the entity.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	doc := userDoc{
		ID:           primitive.NewObjectID(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return err
	}
	user.ID = doc.ID.Hex()
	return nil
}

// GetByID returns the user or (nil, nil) when no document matches.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, IDFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// GetByEmail returns the user or (nil, nil) when no document matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// List returns all users matching the filter (full collection scan, no
// pagination).
func (r *UserRepository) List(ctx context.Context, f entity.UserFilter) ([]*entity.User, error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = f.Role
	}
	if f.Search != "" {
		filter["$or"] = []bson.M{
			containsFilter("name", f.Search),
			containsFilter("email", f.Search),
		}
	}
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*entity.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toEntity())
	}
	return out, cur.Err()
}

// Update applies a partial $set merge of the patched fields.
func (r *UserRepository) Update(ctx context.Context, id string, p entity.UserPatch) (bool, error) {
	set := bson.M{"updatedAt": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.PasswordHash != nil {
		set["passwordHash"] = *p.PasswordHash
	}
	res, err := r.col.UpdateOne(ctx, IDFilter(id), bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the user by id.
func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// SetResetToken stores a pending reset token with its expiry.
func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expiry time.Time) error {
	_, err := r.col.UpdateOne(ctx, IDFilter(id), bson.M{"$set": bson.M{
		"resetToken":       token,
		"resetTokenExpiry": expiry,
		"updatedAt":        time.Now(),
	}})
	return err
}

// GetByResetToken matches email + token + unexpired expiry, or (nil, nil).
func (r *UserRepository) GetByResetToken(ctx context.Context, email, token string, now time.Time) (*entity.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{
		"email":            email,
		"resetToken":       token,
		"resetTokenExpiry": bson.M{"$gt": now},
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// ResetPassword replaces the hash and clears the token and expiry fields,
// making the token single use.
func (r *UserRepository) ResetPassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.col.UpdateOne(ctx, IDFilter(id), bson.M{
		"$set":   bson.M{"passwordHash": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetToken": "", "resetTokenExpiry": ""},
	})
	return err
}
