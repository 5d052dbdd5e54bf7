package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects and their advisors
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /teams/:id/project
// @Summary Create the team's project
// @Description Create the single project of a team in DRAFT status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team already has a project"
// @Security BearerAuth
// @Router /teams/{id}/project [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), actor, teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /projects/:id
// @Summary Get project by ID
// @Description Get a project with its team and advisors
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Successfully retrieved project"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:id
// @Summary Update a project
// @Description Update the name, description or type of a project that is not approved
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project "Successfully updated project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), actor, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete a project
// @Description Delete a project with its tasks, advisor links, submissions and grades. The team is kept.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	result, err := h.projectService.DeleteProject(c.Request.Context(), actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse(string(result.Root), result.Deleted))
}

// AssignAdvisor handles PUT /projects/:id/advisor
// @Summary Request an advisor
// @Description Put the project under an advisor. The project moves to PENDING and the advisor is notified.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param advisor body service.AssignAdvisorRequest true "Advisor"
// @Success 200 {object} models.Project "Advisor requested"
// @Failure 400 {object} ErrorResponse "Invalid request or user is not an advisor"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Project or advisor not found"
// @Failure 409 {object} ErrorResponse "Advisor already oversees the maximum number of approved projects"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /projects/{id}/advisor [put]
func (h *ProjectHandler) AssignAdvisor(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.AssignAdvisorRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.AssignAdvisor(c.Request.Context(), actor, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// RemoveAdvisor handles DELETE /projects/:id/advisor
// @Summary Withdraw the advisor request
// @Description Clear the advisor links and return the project to DRAFT
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.Project "Advisor removed"
// @Failure 400 {object} ErrorResponse "Invalid project ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /projects/{id}/advisor [delete]
func (h *ProjectHandler) RemoveAdvisor(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	project, err := h.projectService.RemoveAdvisor(c.Request.Context(), actor, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// SetProjectStatus handles PUT /projects/:id/status
// @Summary Approve or reject a project
// @Description The assigned advisor (or an admin) approves or rejects the project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param status body service.SetProjectStatusRequest true "Decision"
// @Success 200 {object} models.Project "Status changed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller does not advise this project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Advisor capacity reached"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) SetProjectStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.SetProjectStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.SetProjectStatus(c.Request.Context(), actor, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
