package utils

import (
	"context"
	"log"
	"time"

	"quizhub/db"
	"quizhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedSampleData inserts a couple of demo users and a starter quiz when the
// database is empty. Safe to call on every startup.
func SeedSampleData() {
	users := db.GetCollection(db.UsersCollection)
	count, err := users.CountDocuments(context.Background(), bson.M{})
	if err != nil || count > 0 {
		return
	}

	password, err := HashPassword("changeme123")
	if err != nil {
		return
	}

	sampleUsers := []models.User{
		{
			Email:        "alice@example.com",
			DisplayName:  "Alice",
			Bio:          "Trivia night regular",
			PasswordHash: password,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
		{
			Email:        "bob@example.com",
			DisplayName:  "Bob",
			Bio:          "Here for the badges",
			PasswordHash: password,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}

	var documents []interface{}
	for _, user := range sampleUsers {
		documents = append(documents, user)
	}
	res, err := users.InsertMany(context.Background(), documents)
	if err != nil {
		log.Printf("Failed to seed users: %v", err)
		return
	}
	log.Printf("Seeded %d sample users", len(res.InsertedIDs))

	quiz := models.Quiz{
		Title:      "Capitals of the World",
		Topic:      "world capitals",
		Category:   "Geography",
		Difficulty: "easy",
		Theme:      "travel",
		TimeLimit:  120,
		CreatedAt:  time.Now(),
		Questions: []models.Question{
			{
				ID:            "seed-q1",
				Type:          models.QuestionTypeMultipleChoice,
				Question:      "What is the capital of France?",
				Options:       []string{"Paris", "Lyon", "Marseille", "Nice"},
				CorrectAnswer: "Paris",
				Points:        10,
			},
			{
				ID:            "seed-q2",
				Type:          models.QuestionTypeTrueFalse,
				Question:      "Canberra is the capital of Australia.",
				CorrectAnswer: "true",
				Points:        10,
			},
			{
				ID:           "seed-q3",
				Type:         models.QuestionTypeRanking,
				Question:     "Order these cities from north to south.",
				Options:      []string{"Oslo", "Berlin", "Rome"},
				CorrectOrder: []string{"Oslo", "Berlin", "Rome"},
				Points:       10,
			},
		},
	}
	if oid, ok := res.InsertedIDs[0].(primitive.ObjectID); ok {
		quiz.CreatorID = oid
	}

	if _, err := db.GetCollection(db.QuizzesCollection).InsertOne(context.Background(), quiz); err != nil {
		log.Printf("Failed to seed quiz: %v", err)
		return
	}
	log.Println("Seeded sample quiz")
}
