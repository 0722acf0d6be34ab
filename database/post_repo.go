package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openblog/backend/models"
)

// PostStore is the persistence surface the HTTP handlers depend on.
type PostStore interface {
	Add(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	FindPage(ctx context.Context, page, perPage int64) ([]models.Post, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PostRepo struct {
	collection *mongo.Collection
}

func NewPostRepo(collection *mongo.Collection) *PostRepo {
	return &PostRepo{collection}
}

// Add inserts a new post and fills in its server-assigned identifier.
func (r *PostRepo) Add(ctx context.Context, post *models.Post) error {
	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID returns the post with the given identifier, or
// mongo.ErrNoDocuments when absent.
func (r *PostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPage returns one 1-based page of posts ordered by descending _id.
func (r *PostRepo) FindPage(ctx context.Context, page, perPage int64) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Count returns the total number of posts in the collection.
func (r *PostRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Update applies a partial $set update and returns the merged document, or
// mongo.ErrNoDocuments when no post has the given identifier. An empty field
// set is a no-op read.
func (r *PostRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Post, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post with the given identifier. Deleting an absent post
// is not an error.
func (r *PostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
