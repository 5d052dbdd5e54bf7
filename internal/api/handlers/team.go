package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team membership
type TeamHandler struct {
	membershipService service.MembershipServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(membershipService service.MembershipServiceInterface) *TeamHandler {
	return &TeamHandler{
		membershipService: membershipService,
	}
}

// CreateTeam handles POST /sections/:id/teams
// @Summary Create a team in a section
// @Description Create a placeholder team whose only member is the given student (defaults to the caller)
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param team body service.CreateTeamRequest false "Initial member"
// @Success 201 {object} models.Team "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Student not enrolled"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Failure 409 {object} ErrorResponse "Student already has a team in the section"
// @Failure 422 {object} ErrorResponse "Team composition locked"
// @Security BearerAuth
// @Router /sections/{id}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	team, err := h.membershipService.CreateTeam(c.Request.Context(), actor, sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team with its members and project
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.membershipService.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddMember handles POST /teams/:id/members
// @Summary Add a member to a team
// @Description Add an enrolled student of the same section to the team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddMemberRequest true "Member to add"
// @Success 201 {object} models.TeamMember "Member added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member or the user is not enrolled"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "Already a member or team full"
// @Failure 422 {object} ErrorResponse "Project approved or team composition locked"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.membershipService.AddMember(c.Request.Context(), actor, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a member from a team
// @Description Remove a member. When the last member leaves, the team and everything it owns is deleted.
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 200 {object} service.RemoveMemberResult "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID"
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Failure 409 {object} ErrorResponse "Last member may only leave by themselves"
// @Failure 422 {object} ErrorResponse "Project approved or team composition locked"
// @Security BearerAuth
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}

	result, err := h.membershipService.RemoveMember(c.Request.Context(), actor, teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
