package handlers

import (
	"errors"
	"net/http"

	"capstone-backend/internal/auth"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"team not found"`
	Kind  string `json:"kind" example:"NotFound"`
	Code  string `json:"code" example:"NotFound"`
	Field string `json:"field,omitempty" example:"min_team_size"`
}

// DeletionResponse reports the rows removed by a cascading delete
type DeletionResponse struct {
	Root    string           `json:"root"`
	Total   int64            `json:"total"`
	Deleted map[string]int64 `json:"deleted"`
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindNotFound:       http.StatusNotFound,
	apperrors.KindForbidden:      http.StatusForbidden,
	apperrors.KindConflict:       http.StatusConflict,
	apperrors.KindEmptySelection: http.StatusConflict,
	apperrors.KindValidation:     http.StatusBadRequest,
	apperrors.KindInvalidState:   http.StatusUnprocessableEntity,
	apperrors.KindInternal:       http.StatusInternalServerError,
}

// respondError maps a service error onto its HTTP status. Internal failures
// are logged and never echoed to the client.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := ErrorResponse{Error: err.Error(), Kind: string(kind), Code: apperrors.CodeOf(err)}
	var validErr *apperrors.ValidationError
	if errors.As(err, &validErr) {
		resp.Field = validErr.Field
	}
	if kind == apperrors.KindInternal {
		logger.WithContext(c.Request.Context()).WithError(err).WithField("path", c.FullPath()).Error("request failed")
		_ = c.Error(err)
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

// badRequest reports a malformed path parameter or body
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Kind:  string(apperrors.KindValidation),
		Code:  string(apperrors.KindValidation),
	})
}

// actorFrom converts the verified token claims into the acting user
func actorFrom(c *gin.Context) (service.Actor, bool) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return service.Actor{}, false
	}
	return service.Actor{ID: claims.UserID, Role: claims.Role}, true
}

// uuidParam parses a UUID path parameter, answering 400 when it is malformed
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, answering 400 when it is malformed
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err.Error())
		return false
	}
	return true
}

func deletionResponse(root string, deleted map[string]int64) DeletionResponse {
	var total int64
	for _, n := range deleted {
		total += n
	}
	if deleted == nil {
		deleted = map[string]int64{}
	}
	return DeletionResponse{Root: root, Total: total, Deleted: deleted}
}
