package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quizhub/config"
	"quizhub/db"

	"go.mongodb.org/mongo-driver/bson"
)

// Promotes an existing user to admin by email.
func main() {
	email := flag.String("email", "", "User email (required)")
	configPath := flag.String("config", "config/config.yml", "Path to config file")
	flag.Parse()

	if *email == "" {
		fmt.Println("Error: email is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.MongoClient.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.GetCollection(db.UsersCollection).UpdateOne(
		ctx,
		bson.M{"email": *email},
		bson.M{"$set": bson.M{"isAdmin": true, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}
	if res.MatchedCount == 0 {
		log.Fatalf("No user with email %s", *email)
	}

	fmt.Printf("User %s is now an admin\n", *email)
}
