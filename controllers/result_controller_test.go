package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// A zero or negative timeSpent would satisfy every speed badge threshold,
// so the submission must be rejected before scoring or any write happens.
func TestSubmitQuizRejectsNonPositiveTimeSpent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, timeSpent := range []int{-5, 0} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := fmt.Sprintf(`{"answers":{"q1":{"value":"Paris"}},"timeSpent":%d}`, timeSpent)
		c.Request = httptest.NewRequest(http.MethodPost, "/quizzes/507f1f77bcf86cd799439011/submit", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: "507f1f77bcf86cd799439011"}}
		c.Set("userID", primitive.NewObjectID())

		SubmitQuiz(c)

		if w.Code != http.StatusBadRequest {
			t.Errorf("timeSpent %d: got status %d, want %d", timeSpent, w.Code, http.StatusBadRequest)
		}
		if !strings.Contains(w.Body.String(), "timeSpent") {
			t.Errorf("timeSpent %d: response should name the rejected field, got %s", timeSpent, w.Body.String())
		}
	}
}
