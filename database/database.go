package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

type Database struct {
	client   *mongo.Client
	postRepo *PostRepo
}

// Connect dials MongoDB, verifies the connection with a ping and returns a
// Database with each repository bound to its collection.
func Connect(ctx context.Context, uri, dbName string) (Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return Database{}, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return Database{}, err
	}

	db := client.Database(dbName)
	return Database{
		client:   client,
		postRepo: NewPostRepo(db.Collection("posts")),
	}, nil
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

// Disconnect closes the underlying client connections.
func (d Database) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
