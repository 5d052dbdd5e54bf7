package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GradeHandler handles HTTP requests for grades
type GradeHandler struct {
	gradeService service.GradeServiceInterface
}

// NewGradeHandler creates a new grade handler
func NewGradeHandler(gradeService service.GradeServiceInterface) *GradeHandler {
	return &GradeHandler{
		gradeService: gradeService,
	}
}

// UpsertGrade handles PUT /grades
// @Summary Record a grade
// @Description Record or overwrite the grade of a student for a project in a term
// @Tags grades
// @Accept json
// @Produce json
// @Param grade body service.UpsertGradeRequest true "Grade"
// @Success 200 {object} models.Grade "Grade recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller does not advise this project"
// @Failure 404 {object} ErrorResponse "Project, student or term not found"
// @Security BearerAuth
// @Router /grades [put]
func (h *GradeHandler) UpsertGrade(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.UpsertGradeRequest
	if !bindJSON(c, &req) {
		return
	}

	grade, err := h.gradeService.UpsertGrade(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, grade)
}
