package users

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	c *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed user repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{c: db.Collection(collectionName)}
}

// EnsureIndexes creates the uniqueness indexes the signup path relies on.
// Mobile is globally unique; email is unique only across documents that
// carry one. Idempotent, called once at startup. With these in place the
// insert itself, not the pre-check, is the authoritative duplicate detector.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_mobile"),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_users_email").
				SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true}}),
		},
	})
	return err
}

// Create inserts a new user and returns it with the store-assigned id.
func (r *MongoRepository) Create(ctx context.Context, user User) (User, error) {
	res, err := r.c.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrDuplicate
		}
		return User{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) FindByMobile(ctx context.Context, mobile string) (User, error) {
	return r.findOne(ctx, bson.M{"mobile": mobile})
}

func (r *MongoRepository) FindByIdentifier(ctx context.Context, identifier string) (User, error) {
	return r.findOne(ctx, bson.M{"$or": []bson.M{
		{"email": identifier},
		{"mobile": identifier},
	}})
}

func (r *MongoRepository) ExistsByEmailOrMobile(ctx context.Context, email *string, mobile string) (bool, error) {
	or := []bson.M{{"mobile": mobile}}
	if email != nil {
		or = append(or, bson.M{"email": *email})
	}
	err := r.c.FindOne(ctx, bson.M{"$or": or}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.c.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (User, error) {
	var u User
	if err := r.c.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
