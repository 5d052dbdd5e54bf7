package handlers

import (
	"context"
	"net/http"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeletionHandler exposes the cascading deletes of teams, events and users
type DeletionHandler struct {
	deletionService service.DeletionServiceInterface
}

// NewDeletionHandler creates a new deletion handler
func NewDeletionHandler(deletionService service.DeletionServiceInterface) *DeletionHandler {
	return &DeletionHandler{
		deletionService: deletionService,
	}
}

type deleteFunc func(ctx context.Context, actor service.Actor, id uuid.UUID) (*cascade.Result, error)

func (h *DeletionHandler) run(c *gin.Context, label string, del deleteFunc) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", label)
	if !ok {
		return
	}

	result, err := del(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse(string(result.Root), result.Deleted))
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team and everything it owns in one transaction
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *DeletionHandler) DeleteTeam(c *gin.Context) {
	h.run(c, "team", h.deletionService.DeleteTeam)
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Delete an event and all submissions made for it
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *DeletionHandler) DeleteEvent(c *gin.Context) {
	h.run(c, "event", h.deletionService.DeleteEvent)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Description Delete a user and everything referencing them. Teams left without members are deleted too.
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 403 {object} ErrorResponse "Admin only, and not on themselves"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 409 {object} ErrorResponse "Advisor still oversees approved projects"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *DeletionHandler) DeleteUser(c *gin.Context) {
	h.run(c, "user", h.deletionService.DeleteUser)
}
