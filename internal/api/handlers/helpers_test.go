package handlers_test

import (
	"capstone-backend/internal/auth"
	"capstone-backend/internal/database/models"
	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// withActor stands in for the JWT middleware and authenticates every request as actor
func withActor(actor service.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetAuthClaims(c, &auth.AuthClaims{UserID: actor.ID, Role: actor.Role})
		c.Next()
	}
}

func newActor(role models.UserRole) service.Actor {
	return service.Actor{ID: uuid.New(), Role: role}
}

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Code  string `json:"code"`
	Field string `json:"field"`
}
