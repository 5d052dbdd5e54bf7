package service

import (
	"context"
	"fmt"
	"time"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmissionService manages milestone events and the teams' submissions
type SubmissionService struct {
	store     *repository.Store
	validator *validator.Validate
	now       func() time.Time
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(store *repository.Store, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		store:     store,
		validator: validator,
		now:       time.Now,
	}
}

// CreateEventRequest represents the request to create a milestone event
type CreateEventRequest struct {
	Title             string     `json:"title" validate:"required,min=1,max=200"`
	Description       string     `json:"description"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	CreateForAllTeams bool       `json:"create_for_all_teams"`
}

// EventResponse is a created event and the number of submissions opened for it
type EventResponse struct {
	Event              *models.Event `json:"event"`
	SubmissionsCreated int           `json:"submissions_created"`
}

// SubmitRequest represents a team's delivery for an event
type SubmitRequest struct {
	FileURL string `json:"file_url" validate:"omitempty,url,max=500"`
}

// RejectSubmissionRequest carries the feedback that must accompany a rejection
type RejectSubmissionRequest struct {
	Feedback string `json:"feedback" validate:"required,min=1"`
}

// CreateEvent creates an event in a section, optionally opening a PENDING
// submission for every team of the section.
func (s *SubmissionService) CreateEvent(ctx context.Context, actor Actor, sectionID uuid.UUID, req *CreateEventRequest) (resp *EventResponse, err error) {
	defer track(ctx, "create_event", &err)

	if !actor.IsStaff() {
		return nil, apperrors.ErrForbidden
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Sections.GetByID(sectionID); err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		event := &models.Event{
			SectionID:   sectionID,
			Title:       req.Title,
			Description: req.Description,
			DueDate:     req.DueDate,
		}
		if err := r.Events.Create(event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		resp = &EventResponse{Event: event}
		if !req.CreateForAllTeams {
			return nil
		}

		teams, err := r.Teams.ListBySection(sectionID)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		submissions := make([]models.Submission, 0, len(teams))
		for _, team := range teams {
			submissions = append(submissions, models.Submission{
				EventID: event.ID,
				TeamID:  team.ID,
				Status:  models.SubmissionStatusPending,
			})
		}
		if err := r.Submissions.CreateBatch(submissions); err != nil {
			return fmt.Errorf("failed to open submissions: %w", err)
		}
		resp.SubmissionsCreated = len(submissions)
		return nil
	})
	if err != nil {
		return nil, storeError("create event", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":    resp.Event.ID,
		"section_id":  sectionID,
		"submissions": resp.SubmissionsCreated,
	}).Info("event created")
	return resp, nil
}

// Submit delivers or re-delivers a team's work for an event
func (s *SubmissionService) Submit(ctx context.Context, actor Actor, submissionID uuid.UUID, req *SubmitRequest) (submission *models.Submission, err error) {
	defer track(ctx, "submit", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		submission, err = r.Submissions.GetByID(submissionID)
		if err != nil {
			return storeError("get submission", err, apperrors.ErrSubmissionNotFound)
		}
		if err := requireTeamMember(r, actor, submission.TeamID); err != nil {
			return err
		}
		next, err := submission.Status.Transition(models.SubmissionEventSubmit)
		if err != nil {
			return err
		}

		now := s.now()
		submitter := actor.ID
		submission.Status = next
		submission.FileURL = req.FileURL
		submission.SubmittedAt = &now
		submission.SubmittedBy = &submitter
		if err := r.Submissions.Save(submission); err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("submit", err, nil)
	}
	return submission, nil
}

// Approve accepts a submitted delivery
func (s *SubmissionService) Approve(ctx context.Context, actor Actor, submissionID uuid.UUID) (submission *models.Submission, err error) {
	defer track(ctx, "approve_submission", &err)

	return s.review(ctx, actor, submissionID, models.SubmissionEventApprove, "")
}

// Reject sends a delivery back for revision. Feedback is required and any
// earlier approval is cleared.
func (s *SubmissionService) Reject(ctx context.Context, actor Actor, submissionID uuid.UUID, req *RejectSubmissionRequest) (submission *models.Submission, err error) {
	defer track(ctx, "reject_submission", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.review(ctx, actor, submissionID, models.SubmissionEventReject, req.Feedback)
}

func (s *SubmissionService) review(ctx context.Context, actor Actor, submissionID uuid.UUID, event models.SubmissionEvent, feedback string) (*models.Submission, error) {
	if !actor.IsStaff() {
		return nil, apperrors.ErrForbidden
	}

	var submission *models.Submission
	err := s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		var err error
		submission, err = r.Submissions.GetByID(submissionID)
		if err != nil {
			return storeError("get submission", err, apperrors.ErrSubmissionNotFound)
		}
		next, err := submission.Status.Transition(event)
		if err != nil {
			return err
		}

		submission.Status = next
		switch event {
		case models.SubmissionEventApprove:
			now := s.now()
			reviewer := actor.ID
			submission.ApprovedAt = &now
			submission.ApprovedBy = &reviewer
		case models.SubmissionEventReject:
			submission.Feedback = feedback
			submission.ApprovedAt = nil
			submission.ApprovedBy = nil
		}
		if err := r.Submissions.Save(submission); err != nil {
			return fmt.Errorf("failed to save submission: %w", err)
		}

		memberIDs, err := r.Members.ListUserIDs([]uuid.UUID{submission.TeamID})
		if err != nil {
			return fmt.Errorf("failed to list team members: %w", err)
		}
		title := "milestone"
		if submission.Event != nil {
			title = submission.Event.Title
		}
		teamID := submission.TeamID
		message := fmt.Sprintf("Your submission for %q is now %s", title, next)
		return notifyUsers(r, memberIDs, models.NotificationSubmissionReview, message, &teamID, nil)
	})
	if err != nil {
		return nil, storeError("review submission", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"submission_id": submissionID,
		"status":        submission.Status,
	}).Info("submission reviewed")
	return submission, nil
}
