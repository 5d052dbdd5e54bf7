package service_test

import (
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// GradeServiceTestSuite tests recording grades
type GradeServiceTestSuite struct {
	serviceSuite
	svc     *service.GradeService
	term    *models.Term
	student *models.User
	project *models.Project
	advisor *models.User
}

func (s *GradeServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewGradeService(s.store, s.validator)

	s.term = s.fx.Term(2024, 1)
	sect := s.fx.Section(s.term.ID, models.CourseTypeProject)
	s.student = s.enrolledStudents(sect.ID, 1)[0]
	team := s.fx.Team(sect.ID, s.student)
	s.project = s.fx.Project(team.ID, models.ProjectStatusApproved)
	s.advisor = s.fx.Advisor()
	s.fx.LinkAdvisor(s.project.ID, s.advisor.ID)
}

func (s *GradeServiceTestSuite) request(grade string) *service.UpsertGradeRequest {
	return &service.UpsertGradeRequest{
		StudentID: s.student.ID,
		ProjectID: s.project.ID,
		TermID:    s.term.ID,
		Grade:     grade,
	}
}

func (s *GradeServiceTestSuite) TestUpsertGrade() {
	grade, err := s.svc.UpsertGrade(s.ctx, actorOf(s.advisor), s.request("BB"))
	s.Require().NoError(err)
	s.Equal("BB", grade.Grade)
	s.Require().NotNil(grade.GradedBy)
	s.Equal(s.advisor.ID, *grade.GradedBy)

	admin := s.fx.Admin()
	grade, err = s.svc.UpsertGrade(s.ctx, actorOf(admin), s.request("AA"))
	s.Require().NoError(err)
	s.Equal("AA", grade.Grade)
	s.Equal(admin.ID, *grade.GradedBy)

	s.Equal(int64(1), s.fx.Count(&models.Grade{}, "student_id = ? AND project_id = ?", s.student.ID, s.project.ID))
}

func (s *GradeServiceTestSuite) TestUpsertGradeRejected() {
	outsider := s.fx.Student()

	testCases := []struct {
		name     string
		actor    service.Actor
		req      *service.UpsertGradeRequest
		wantErr  error
		wantKind apperrors.Kind
	}{
		{
			name:     "student",
			actor:    actorOf(s.student),
			req:      s.request("AA"),
			wantErr:  apperrors.ErrForbidden,
			wantKind: apperrors.KindForbidden,
		},
		{
			name:     "advisor of another project",
			actor:    actorOf(s.fx.Advisor()),
			req:      s.request("AA"),
			wantErr:  apperrors.ErrForbidden,
			wantKind: apperrors.KindForbidden,
		},
		{
			name:     "letter outside the scale",
			actor:    actorOf(s.advisor),
			req:      s.request("A+"),
			wantKind: apperrors.KindValidation,
		},
		{
			name:  "student outside the team",
			actor: actorOf(s.advisor),
			req: &service.UpsertGradeRequest{
				StudentID: outsider.ID,
				ProjectID: s.project.ID,
				TermID:    s.term.ID,
				Grade:     "CC",
			},
			wantKind: apperrors.KindValidation,
		},
		{
			name:  "unknown project",
			actor: actorOf(s.advisor),
			req: &service.UpsertGradeRequest{
				StudentID: s.student.ID,
				ProjectID: uuid.New(),
				TermID:    s.term.ID,
				Grade:     "CC",
			},
			wantErr:  apperrors.ErrProjectNotFound,
			wantKind: apperrors.KindNotFound,
		},
		{
			name:  "unknown term",
			actor: actorOf(s.advisor),
			req: &service.UpsertGradeRequest{
				StudentID: s.student.ID,
				ProjectID: s.project.ID,
				TermID:    uuid.New(),
				Grade:     "CC",
			},
			wantErr:  apperrors.ErrTermNotFound,
			wantKind: apperrors.KindNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.UpsertGrade(s.ctx, tc.actor, tc.req)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
			}
			s.Equal(tc.wantKind, apperrors.KindOf(err))
		})
	}
	s.Equal(int64(0), s.fx.Count(&models.Grade{}, "project_id = ?", s.project.ID))
}

func TestGradeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GradeServiceTestSuite))
}
