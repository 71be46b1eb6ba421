package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/harentsoaR/clinic-records/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// UserRepository stores users in a single Mongo collection.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database, collection string) *UserRepository {
	return &UserRepository{coll: db.Collection(collection)}
}

const (
	usernameIndex     = "uniq_username"
	patientPhoneIndex = "uniq_patient_phone"
)

// EnsureIndexes creates the unique indexes backing the username and patient
// phone checks. Safe to call on every start.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName(usernameIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetName(patientPhoneIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"fullName": bson.M{"$exists": true}}),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

// Ping checks the connection behind the collection.
func (r *UserRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// FindOne returns the first user whose field equals value, or nil.
func (r *UserRepository) FindOne(ctx context.Context, field string, value any) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.D{{Key: field, Value: value}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by %s: %w", field, err)
	}
	return &user, nil
}

// FindByID returns the user with the given hex id, or nil when there is none.
// A malformed id cannot match a record and is treated the same way.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.FindOne(ctx, "_id", oid)
}

// Create inserts user and fills in its generated id. A unique index violation
// is reported as models.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, conflictError(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	if res == nil {
		return nil, nil
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// Count returns how many users match q, ignoring its pagination.
func (r *UserRepository) Count(ctx context.Context, q models.ListQuery) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, ListFilter(q))
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Find returns one page of users matching q.
func (r *UserRepository) Find(ctx context.Context, q models.ListQuery) ([]models.User, error) {
	opts := options.Find().SetSort(SortDocument(q.SortBy))
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}

	cursor, err := r.coll.Find(ctx, ListFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// FindByIDAndUpdate applies patch with $set and returns the updated user, or
// nil when no user has that id. A unique index violation is reported the same
// way Create reports it.
func (r *UserRepository) FindByIDAndUpdate(ctx context.Context, id string, patch models.Patch) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(patch)}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, conflictError(err)
	}
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return &user, nil
}

// FindByIDAndDelete removes the user and returns what was stored, or nil
// when no user has that id.
func (r *UserRepository) FindByIDAndDelete(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user models.User
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete user %s: %w", id, err)
	}
	return &user, nil
}

// conflictError names the unique index a duplicate key error came from.
func conflictError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, usernameIndex):
		return fmt.Errorf("%w: %v", models.ErrUsernameTaken, err)
	case strings.Contains(msg, patientPhoneIndex):
		return fmt.Errorf("%w: %v", models.ErrPhoneTaken, err)
	}
	return fmt.Errorf("%w: %v", models.ErrConflict, err)
}
