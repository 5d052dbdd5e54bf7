package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles HTTP requests for events and submissions
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// CreateEvent handles POST /sections/:id/events
// @Summary Create an event
// @Description Create a deliverable event, optionally opening a PENDING submission for every team
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Section ID (UUID)"
// @Param event body service.CreateEventRequest true "Event data"
// @Success 201 {object} service.EventResponse "Successfully created event"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BearerAuth
// @Router /sections/{id}/events [post]
func (h *SubmissionHandler) CreateEvent(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	sectionID, ok := uuidParam(c, "id", "section")
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.submissionService.CreateEvent(c.Request.Context(), actor, sectionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Submit handles POST /submissions/:id/submit
// @Summary Submit a deliverable
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Param submission body service.SubmitRequest false "Delivered file"
// @Success 200 {object} models.Submission "Submitted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /submissions/{id}/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	submissionID, ok := uuidParam(c, "id", "submission")
	if !ok {
		return
	}

	var req service.SubmitRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	submission, err := h.submissionService.Submit(c.Request.Context(), actor, submissionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// Approve handles POST /submissions/:id/approve
// @Summary Approve a submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Success 200 {object} models.Submission "Approved"
// @Failure 400 {object} ErrorResponse "Invalid submission ID"
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /submissions/{id}/approve [post]
func (h *SubmissionHandler) Approve(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	submissionID, ok := uuidParam(c, "id", "submission")
	if !ok {
		return
	}

	submission, err := h.submissionService.Approve(c.Request.Context(), actor, submissionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// Reject handles POST /submissions/:id/reject
// @Summary Reject a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID (UUID)"
// @Param feedback body service.RejectSubmissionRequest true "Feedback for the team"
// @Success 200 {object} models.Submission "Rejected"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Staff only"
// @Failure 404 {object} ErrorResponse "Submission not found"
// @Failure 422 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /submissions/{id}/reject [post]
func (h *SubmissionHandler) Reject(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	submissionID, ok := uuidParam(c, "id", "submission")
	if !ok {
		return
	}

	var req service.RejectSubmissionRequest
	if !bindJSON(c, &req) {
		return
	}

	submission, err := h.submissionService.Reject(c.Request.Context(), actor, submissionID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
