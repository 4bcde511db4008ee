package controllers

import (
	"errors"
	"log"
	"net/http"

	"quizhub/badges"
	"quizhub/errs"
	"quizhub/internal/rank"
	"quizhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shared handler dependencies, wired once at startup.
var (
	catalog      *badges.Catalog
	groupCatalog *badges.GroupCatalog
	statsService *services.StatsService
	groupService *services.GroupService
	generator    services.Generator
	leaderboard  *rank.Leaderboard
	limiter      *rank.SubmissionLimiter
)

// Init wires the controller package. leaderboard and limiter may be nil when
// Redis is not configured; handlers fall back to Mongo-only paths.
func Init(c *badges.Catalog, gc *badges.GroupCatalog, stats *services.StatsService, groups *services.GroupService, gen services.Generator, lb *rank.Leaderboard, rl *rank.SubmissionLimiter) {
	catalog = c
	groupCatalog = gc
	statsService = stats
	groupService = groups
	generator = gen
	leaderboard = lb
	limiter = rl
}

// currentUserID reads the authenticated user id set by AuthMiddleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// writeError translates domain errors into HTTP responses. Persistence
// failures are logged and reported as a generic 500 without internals.
func writeError(c *gin.Context, err error) {
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
		return
	}
	var ge *errs.GenerationError
	if errors.As(err, &ge) {
		c.JSON(http.StatusBadGateway, gin.H{"error": ge.Error(), "provider": ge.Provider})
		return
	}
	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if errors.Is(err, errs.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	if errors.Is(err, errs.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
