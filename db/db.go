package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used across the app
const (
	UsersCollection      = "users"
	QuizzesCollection    = "quizzes"
	ResultsCollection    = "results"
	UserStatsCollection  = "user_stats"
	GroupsCollection     = "groups"
	GroupStatsCollection = "group_stats"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "quizhub"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "quizhub"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "quizhub"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return ensureIndexes(ctx)
}

// ensureIndexes creates the indexes the hot paths rely on: unique emails,
// per-user stats rows, and result listings by user and quiz.
func ensureIndexes(ctx context.Context) error {
	users := MongoDatabase.Collection(UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	stats := MongoDatabase.Collection(UserStatsCollection)
	_, err = stats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user stats index: %w", err)
	}

	results := MongoDatabase.Collection(ResultsCollection)
	_, err = results.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}}},
		{Keys: bson.D{{Key: "quizId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create result indexes: %w", err)
	}
	return nil
}
