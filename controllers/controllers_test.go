package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhub/errs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWriteErrorTranslation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Invalid("timeSpent", "must be positive"), http.StatusBadRequest},
		{"generation", &errs.GenerationError{Provider: "gemini", Message: "bad json"}, http.StatusBadGateway},
		{"not found sentinel", errs.ErrNotFound, http.StatusNotFound},
		{"mongo no documents", mongo.ErrNoDocuments, http.StatusNotFound},
		{"forbidden", errs.ErrForbidden, http.StatusForbidden},
		{"duplicate email", errs.ErrDuplicateEmail, http.StatusConflict},
		{"wrapped forbidden", errors.Join(errs.ErrForbidden), http.StatusForbidden},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			writeError(c, tt.err)
			if w.Code != tt.want {
				t.Errorf("got status %d, want %d", w.Code, tt.want)
			}
		})
	}
}
