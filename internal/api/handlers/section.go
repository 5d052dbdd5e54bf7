package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SectionHandler handles HTTP requests for terms, sections and rollover
type SectionHandler struct {
	sectionService  service.SectionServiceInterface
	rolloverService service.RolloverServiceInterface
}

// NewSectionHandler creates a new section handler
func NewSectionHandler(sectionService service.SectionServiceInterface, rolloverService service.RolloverServiceInterface) *SectionHandler {
	return &SectionHandler{
		sectionService:  sectionService,
		rolloverService: rolloverService,
	}
}

// CreateTerm handles POST /terms
// @Summary Create an academic term
// @Tags sections
// @Accept json
// @Produce json
// @Param term body service.CreateTermRequest true "Term data"
// @Success 201 {object} models.Term "Successfully created term"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 409 {object} ErrorResponse "Term already exists"
// @Security BearerAuth
// @Router /terms [post]
func (h *SectionHandler) CreateTerm(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateTermRequest
	if !bindJSON(c, &req) {
		return
	}

	term, err := h.sectionService.CreateTerm(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, term)
}

// CreateSection handles POST /sections
// @Summary Create a course section
// @Tags sections
// @Accept json
// @Produce json
// @Param section body service.CreateSectionRequest true "Section data"
// @Success 201 {object} models.Section "Successfully created section"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Term not found"
// @Security BearerAuth
// @Router /sections [post]
func (h *SectionHandler) CreateSection(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	section, err := h.sectionService.CreateSection(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, section)
}

// UpdateSection handles PUT /sections/:id
// @Summary Update section settings
// @Description Change the team size bounds or lock team composition
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param settings body service.UpdateSectionSettingsRequest true "Settings to change"
// @Success 200 {object} models.Section "Successfully updated section"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BearerAuth
// @Router /sections/{id} [put]
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	var req service.UpdateSectionSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	section, err := h.sectionService.UpdateSectionSettings(c.Request.Context(), actor, sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

// DeleteSection handles DELETE /sections/:id
// @Summary Delete a section
// @Description Delete a section without teams, together with its events and enrollments
// @Tags sections
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid section ID"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Failure 409 {object} ErrorResponse "Section still has teams"
// @Security BearerAuth
// @Router /sections/{id} [delete]
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	result, err := h.sectionService.DeleteSection(c.Request.Context(), actor, sectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse(string(result.Root), result.Deleted))
}

// EnrollStudents handles POST /sections/:id/enrollments
// @Summary Enroll students in a section
// @Description Enroll a batch of users. Existing enrollments are left untouched.
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param enrollments body service.EnrollStudentsRequest true "Users to enroll"
// @Success 200 {object} service.EnrollStudentsResult "Enrollment summary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Section or user not found"
// @Security BearerAuth
// @Router /sections/{id}/enrollments [post]
func (h *SectionHandler) EnrollStudents(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	var req service.EnrollStudentsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.sectionService.EnrollStudents(c.Request.Context(), actor, sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportRoster handles GET /sections/:id/roster.xlsx
// @Summary Export the section roster
// @Description Download an Excel workbook listing every enrolled student with their team and project
// @Tags sections
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Section ID (UUID)"
// @Success 200 {file} file "Roster workbook"
// @Failure 400 {object} ErrorResponse "Invalid section ID"
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BearerAuth
// @Router /sections/{id}/roster.xlsx [get]
func (h *SectionHandler) ExportRoster(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	buf, filename, err := h.sectionService.ExportRoster(c.Request.Context(), actor, sectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Rollover handles POST /sections/:id/rollover
// @Summary Roll a PRE_PROJECT section over
// @Description Clone the section as a PROJECT section in the target term and move the selected teams (all when none are given)
// @Tags sections
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param rollover body service.RolloverRequest true "Target term and teams"
// @Success 201 {object} service.RolloverResult "Rollover summary"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin only"
// @Failure 404 {object} ErrorResponse "Section or term not found"
// @Failure 409 {object} ErrorResponse "No teams matched the selection"
// @Failure 422 {object} ErrorResponse "Section is not PRE_PROJECT"
// @Security BearerAuth
// @Router /sections/{id}/rollover [post]
func (h *SectionHandler) Rollover(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	var req service.RolloverRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.rolloverService.RolloverSection(c.Request.Context(), actor, sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
