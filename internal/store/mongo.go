package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velaris/seoforge/internal/models"
)

// MongoStore handles generated-content persistence in MongoDB.
type MongoStore struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db, col: db.Collection("seo_content")}
}

// Insert stores a new record, stamping CreatedAt, and returns its hex id.
func (s *MongoStore) Insert(ctx context.Context, doc *models.SEOContent) (string, error) {
	doc.CreatedAt = time.Now()
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("mongo insert: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	doc.ID = oid
	return oid.Hex(), nil
}

// List returns all records, newest first.
func (s *MongoStore) List(ctx context.Context) ([]models.SEOContent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.SEOContent
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteByID removes one record. A malformed or unknown id is a miss,
// not an error, so delete twice yields success then not-found.
func (s *MongoStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Ping reports database liveness for the health endpoint.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
