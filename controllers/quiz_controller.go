package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"quizhub/db"
	"quizhub/errs"
	"quizhub/models"
	"quizhub/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// generationTimeout bounds the LLM call so a hung provider can't pin the
// request handler.
const generationTimeout = 60 * time.Second

type CreateQuizRequest struct {
	Title      string            `json:"title" binding:"required"`
	Topic      string            `json:"topic"`
	Category   string            `json:"category" binding:"required"`
	Difficulty string            `json:"difficulty" binding:"required"`
	Theme      string            `json:"theme"`
	TimeLimit  int               `json:"timeLimit"`
	Questions  []models.Question `json:"questions" binding:"required"`
}

type GenerateQuizRequest struct {
	Title      string   `json:"title"`
	Topic      string   `json:"topic" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	Difficulty string   `json:"difficulty" binding:"required"`
	Theme      string   `json:"theme"`
	TimeLimit  int      `json:"timeLimit"`
	Count      int      `json:"numberOfQuestions" binding:"required"`
	Types      []string `json:"questionTypes" binding:"required"`
}

// validateQuestions checks the per-question schema once, at creation time,
// so scoring never has to re-check shapes.
func validateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return errs.Invalid("questions", "quiz needs at least one question")
	}
	for i, q := range questions {
		switch q.Type {
		case models.QuestionTypeRanking:
			if len(q.CorrectOrder) < 2 {
				return errs.Invalid("questions", "ranking question needs an ordered answer list")
			}
		case models.QuestionTypeMultipleChoice:
			if len(q.Options) < 2 {
				return errs.Invalid("questions", "multiple choice question needs at least two options")
			}
			if q.CorrectAnswer == "" {
				return errs.Invalid("questions", "question is missing its correct answer")
			}
		case models.QuestionTypeTrueFalse, models.QuestionTypeText:
			if q.CorrectAnswer == "" {
				return errs.Invalid("questions", "question is missing its correct answer")
			}
		default:
			return errs.Invalid("questions", "unknown question type "+q.Type)
		}
		if q.Question == "" {
			return errs.Invalid("questions", "question text must not be empty")
		}
		if q.Points <= 0 {
			questions[i].Points = 10
		}
		if q.ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}
	return nil
}

func insertQuiz(c *gin.Context, quiz *models.Quiz) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := db.GetCollection(db.QuizzesCollection).InsertOne(ctx, quiz)
	if err != nil {
		writeError(c, err)
		return false
	}
	quiz.ID = res.InsertedID.(primitive.ObjectID)

	if err := statsService.IncrementCreated(ctx, quiz.CreatorID); err != nil {
		// The quiz exists; a missed counter bump is not worth failing the request.
		log.Printf("failed to bump created-quiz counter: %v", err)
	}
	return true
}

// CreateQuiz stores a manually authored quiz
func CreateQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validateQuestions(req.Questions); err != nil {
		writeError(c, err)
		return
	}

	quiz := models.Quiz{
		CreatorID:  userID,
		Title:      req.Title,
		Topic:      req.Topic,
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Theme:      req.Theme,
		TimeLimit:  req.TimeLimit,
		Questions:  req.Questions,
		CreatedAt:  time.Now(),
	}
	if !insertQuiz(c, &quiz) {
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// GenerateQuiz builds a quiz from AI-generated questions. The quiz is only
// persisted after the full question list validated; a failed or partial
// generation never leaves a half-created quiz behind.
func GenerateQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI generation is not configured"})
		return
	}

	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	genReq := services.GenerationRequest{
		Topic:             req.Topic,
		NumberOfQuestions: req.Count,
		Difficulty:        req.Difficulty,
		QuestionTypes:     req.Types,
	}
	if err := genReq.Validate(); err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generationTimeout)
	defer cancel()

	questions, err := generator.Generate(ctx, genReq)
	if err != nil {
		writeError(c, err)
		return
	}

	title := req.Title
	if title == "" {
		title = req.Topic
	}
	quiz := models.Quiz{
		CreatorID:   userID,
		Title:       title,
		Topic:       req.Topic,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Theme:       req.Theme,
		TimeLimit:   req.TimeLimit,
		Questions:   questions,
		AIGenerated: true,
		CreatedAt:   time.Now(),
	}
	if !insertQuiz(c, &quiz) {
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// ListQuizzes returns quizzes, newest first, optionally filtered by category
// or creator.
func ListQuizzes(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if creator := c.Query("creatorId"); creator != "" {
		creatorID, err := primitive.ObjectIDFromHex(creator)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
			return
		}
		filter["creatorId"] = creatorID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := db.GetCollection(db.QuizzesCollection).
		Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(100))
	if err != nil {
		writeError(c, err)
		return
	}
	defer cursor.Close(ctx)

	quizzes := []models.Quiz{}
	if err := cursor.All(ctx, &quizzes); err != nil {
		writeError(c, err)
		return
	}

	// Answer keys stay server-side on listings.
	for i := range quizzes {
		stripAnswers(&quizzes[i])
	}
	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz returns one quiz. The answer key is included only for the creator.
func GetQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := db.GetCollection(db.QuizzesCollection).FindOne(ctx, bson.M{"_id": quizID}).Decode(&quiz); err != nil {
		writeError(c, err)
		return
	}

	isAdmin, _ := c.Get("isAdmin")
	if quiz.CreatorID != userID && isAdmin != true {
		stripAnswers(&quiz)
	}
	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz removes a quiz; only the creator or an admin may do it.
func DeleteQuiz(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var quiz models.Quiz
	if err := db.GetCollection(db.QuizzesCollection).FindOne(ctx, bson.M{"_id": quizID}).Decode(&quiz); err != nil {
		writeError(c, err)
		return
	}

	isAdmin, _ := c.Get("isAdmin")
	if quiz.CreatorID != userID && isAdmin != true {
		writeError(c, errs.ErrForbidden)
		return
	}

	if _, err := db.GetCollection(db.QuizzesCollection).DeleteOne(ctx, bson.M{"_id": quizID}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": quizID.Hex()})
}

func stripAnswers(quiz *models.Quiz) {
	for i := range quiz.Questions {
		quiz.Questions[i].CorrectAnswer = ""
		quiz.Questions[i].CorrectOrder = nil
		quiz.Questions[i].Explanation = ""
	}
}
