package service_test

import (
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SubmissionServiceTestSuite tests milestone events and the review flow
type SubmissionServiceTestSuite struct {
	serviceSuite
	svc      *service.SubmissionService
	sect     *models.Section
	students []*models.User
	team     *models.Team
	advisor  service.Actor
}

func (s *SubmissionServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewSubmissionService(s.store, s.validator)

	s.sect = s.section()
	s.students = s.enrolledStudents(s.sect.ID, 3)
	s.team = s.fx.Team(s.sect.ID, s.students[0], s.students[1])
	s.advisor = actorOf(s.fx.Advisor())
}

func (s *SubmissionServiceTestSuite) TestCreateEvent() {
	s.fx.Team(s.sect.ID, s.students[2])

	resp, err := s.svc.CreateEvent(s.ctx, s.advisor, s.sect.ID, &service.CreateEventRequest{Title: "Proposal", CreateForAllTeams: true})
	s.Require().NoError(err)
	s.Equal("Proposal", resp.Event.Title)
	s.Equal(2, resp.SubmissionsCreated)
	s.Equal(int64(2), s.fx.Count(&models.Submission{}, "event_id = ? AND status = ?", resp.Event.ID, models.SubmissionStatusPending))

	bare, err := s.svc.CreateEvent(s.ctx, actorOf(s.fx.Admin()), s.sect.ID, &service.CreateEventRequest{Title: "Demo"})
	s.Require().NoError(err)
	s.Equal(0, bare.SubmissionsCreated)
	s.Equal(int64(0), s.fx.Count(&models.Submission{}, "event_id = ?", bare.Event.ID))
}

func (s *SubmissionServiceTestSuite) TestCreateEventRejected() {
	_, err := s.svc.CreateEvent(s.ctx, actorOf(s.students[0]), s.sect.ID, &service.CreateEventRequest{Title: "Proposal"})
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.CreateEvent(s.ctx, s.advisor, s.sect.ID, &service.CreateEventRequest{})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.CreateEvent(s.ctx, s.advisor, uuid.New(), &service.CreateEventRequest{Title: "Proposal"})
	s.ErrorIs(err, apperrors.ErrSectionNotFound)

	s.Equal(int64(0), s.fx.Count(&models.Event{}, "section_id = ?", s.sect.ID))
}

func (s *SubmissionServiceTestSuite) TestReviewFlow() {
	event := s.fx.Event(s.sect.ID)
	submission := s.fx.Submission(event.ID, s.team.ID, models.SubmissionStatusPending)

	_, err := s.svc.Approve(s.ctx, s.advisor, submission.ID)
	s.Equal(apperrors.KindInvalidState, apperrors.KindOf(err))

	submitted, err := s.svc.Submit(s.ctx, actorOf(s.students[1]), submission.ID, &service.SubmitRequest{FileURL: "https://files.example.edu/proposal.pdf"})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusSubmitted, submitted.Status)
	s.Require().NotNil(submitted.SubmittedBy)
	s.Equal(s.students[1].ID, *submitted.SubmittedBy)
	s.NotNil(submitted.SubmittedAt)

	approved, err := s.svc.Approve(s.ctx, s.advisor, submission.ID)
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusApproved, approved.Status)
	s.Require().NotNil(approved.ApprovedBy)
	s.Equal(s.advisor.ID, *approved.ApprovedBy)
	s.Equal(int64(2), s.fx.Count(&models.Notification{}, "team_id = ? AND type = ?", s.team.ID, models.NotificationSubmissionReview))

	rejected, err := s.svc.Reject(s.ctx, s.advisor, submission.ID, &service.RejectSubmissionRequest{Feedback: "Add a risk section"})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusNeedsRevision, rejected.Status)
	s.Equal("Add a risk section", rejected.Feedback)
	s.Nil(rejected.ApprovedAt)
	s.Nil(rejected.ApprovedBy)

	resubmitted, err := s.svc.Submit(s.ctx, actorOf(s.students[0]), submission.ID, &service.SubmitRequest{})
	s.Require().NoError(err)
	s.Equal(models.SubmissionStatusSubmitted, resubmitted.Status)
	s.Equal(s.students[0].ID, *resubmitted.SubmittedBy)

	var stored models.Submission
	s.Require().NoError(s.db.First(&stored, "id = ?", submission.ID).Error)
	s.Equal(models.SubmissionStatusSubmitted, stored.Status)
	s.Nil(stored.ApprovedAt)
}

func (s *SubmissionServiceTestSuite) TestSubmitRejected() {
	event := s.fx.Event(s.sect.ID)
	submission := s.fx.Submission(event.ID, s.team.ID, models.SubmissionStatusApproved)

	_, err := s.svc.Submit(s.ctx, actorOf(s.students[2]), submission.ID, &service.SubmitRequest{})
	s.ErrorIs(err, apperrors.ErrNotTeamMember)

	_, err = s.svc.Submit(s.ctx, actorOf(s.students[0]), submission.ID, &service.SubmitRequest{FileURL: "not a url"})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.Submit(s.ctx, actorOf(s.students[0]), submission.ID, &service.SubmitRequest{})
	s.Equal(apperrors.KindInvalidState, apperrors.KindOf(err))

	_, err = s.svc.Submit(s.ctx, actorOf(s.students[0]), uuid.New(), &service.SubmitRequest{})
	s.ErrorIs(err, apperrors.ErrSubmissionNotFound)
}

func (s *SubmissionServiceTestSuite) TestReviewRejected() {
	event := s.fx.Event(s.sect.ID)
	submission := s.fx.Submission(event.ID, s.team.ID, models.SubmissionStatusSubmitted)

	_, err := s.svc.Approve(s.ctx, actorOf(s.students[0]), submission.ID)
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Reject(s.ctx, s.advisor, submission.ID, &service.RejectSubmissionRequest{})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.Equal(int64(1), s.fx.Count(&models.Submission{}, "id = ? AND status = ?", submission.ID, models.SubmissionStatusSubmitted))
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
