package service_test

import (
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ProjectServiceTestSuite tests the project lifecycle and advisor capacity
type ProjectServiceTestSuite struct {
	serviceSuite
	svc     *service.ProjectService
	section *models.Section
	student *models.User
	team    *models.Team
}

func (s *ProjectServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewProjectService(s.store, s.validator)

	s.section = s.serviceSuite.section()
	s.student = s.enrolledStudents(s.section.ID, 1)[0]
	s.team = s.fx.Team(s.section.ID, s.student)
}

// approvedTeamProject persists another team whose project the advisor oversees
func (s *ProjectServiceTestSuite) approvedTeamProject(advisor *models.User) *models.Project {
	member := s.enrolledStudents(s.section.ID, 1)[0]
	team := s.fx.Team(s.section.ID, member)
	project := s.fx.Project(team.ID, models.ProjectStatusApproved)
	s.fx.LinkAdvisor(project.ID, advisor.ID)
	return project
}

func (s *ProjectServiceTestSuite) TestCreateProject() {
	project, err := s.svc.CreateProject(s.ctx, actorOf(s.student), s.team.ID, &service.CreateProjectRequest{
		ProjectName: "Campus Navigator",
		ProjectType: models.ProjectTypeApplication,
	})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusDraft, project.Status)
	s.Equal(s.team.ID, project.TeamID)

	_, err = s.svc.CreateProject(s.ctx, actorOf(s.student), s.team.ID, &service.CreateProjectRequest{ProjectName: "Second"})
	s.ErrorIs(err, apperrors.ErrDuplicateProject)
}

func (s *ProjectServiceTestSuite) TestCreateProjectRejected() {
	testCases := []struct {
		name     string
		actor    service.Actor
		teamID   uuid.UUID
		req      *service.CreateProjectRequest
		wantKind apperrors.Kind
	}{
		{
			name:     "missing name",
			actor:    actorOf(s.student),
			teamID:   s.team.ID,
			req:      &service.CreateProjectRequest{},
			wantKind: apperrors.KindValidation,
		},
		{
			name:     "unknown type",
			actor:    actorOf(s.student),
			teamID:   s.team.ID,
			req:      &service.CreateProjectRequest{ProjectName: "X", ProjectType: "HOBBY"},
			wantKind: apperrors.KindValidation,
		},
		{
			name:     "outsider",
			actor:    actorOf(s.fx.Student()),
			teamID:   s.team.ID,
			req:      &service.CreateProjectRequest{ProjectName: "X"},
			wantKind: apperrors.KindForbidden,
		},
		{
			name:     "unknown team",
			actor:    actorOf(s.student),
			teamID:   uuid.New(),
			req:      &service.CreateProjectRequest{ProjectName: "X"},
			wantKind: apperrors.KindNotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.svc.CreateProject(s.ctx, tc.actor, tc.teamID, tc.req)
			s.Equal(tc.wantKind, apperrors.KindOf(err))
		})
	}
	s.Equal(int64(0), s.fx.Count(&models.Project{}, "team_id = ?", s.team.ID))
}

func (s *ProjectServiceTestSuite) TestUpdateProject() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusPending)
	name := "Renamed"
	research := models.ProjectTypeResearch

	updated, err := s.svc.UpdateProject(s.ctx, actorOf(s.student), project.ID, &service.UpdateProjectRequest{
		ProjectName: &name,
		ProjectType: &research,
	})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.ProjectName)
	s.Equal(models.ProjectTypeResearch, updated.ProjectType)
	s.Equal(models.ProjectStatusPending, updated.Status)
}

func (s *ProjectServiceTestSuite) TestApprovedProjectIsLocked() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusApproved)
	name := "Too late"
	admin := actorOf(s.fx.Admin())

	_, err := s.svc.UpdateProject(s.ctx, actorOf(s.student), project.ID, &service.UpdateProjectRequest{ProjectName: &name})
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.UpdateProject(s.ctx, admin, project.ID, &service.UpdateProjectRequest{ProjectName: &name})
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.DeleteProject(s.ctx, actorOf(s.student), project.ID)
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: s.fx.Advisor().ID})
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.RemoveAdvisor(s.ctx, actorOf(s.student), project.ID)
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	s.Equal(int64(1), s.fx.Count(&models.Project{}, "id = ? AND status = ?", project.ID, models.ProjectStatusApproved))
}

func (s *ProjectServiceTestSuite) TestDeleteProject() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)
	s.fx.Task(project.ID, s.student.ID, 0)
	s.fx.Task(project.ID, s.student.ID, 1)

	result, err := s.svc.DeleteProject(s.ctx, actorOf(s.student), project.ID)
	s.Require().NoError(err)
	s.Equal(int64(2), result.Deleted["tasks"])
	s.Equal(int64(1), result.Deleted["projects"])
	s.Equal(int64(0), s.fx.Count(&models.Task{}, "project_id = ?", project.ID))
	s.Equal(int64(1), s.fx.Count(&models.Team{}, "id = ?", s.team.ID))
}

func (s *ProjectServiceTestSuite) TestAssignAdvisor() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)
	advisor := s.fx.Advisor()

	got, err := s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: advisor.ID})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusPending, got.Status)
	s.Require().Len(got.Advisors, 1)
	s.Equal(advisor.ID, got.Advisors[0].AdvisorID)
	s.Equal(int64(1), s.fx.Count(&models.Notification{}, "user_id = ? AND type = ?", advisor.ID, models.NotificationAdvisorRequested))

	// a second request replaces the link
	other := s.fx.Advisor()
	got, err = s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: other.ID})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusPending, got.Status)
	s.Equal(int64(1), s.fx.Count(&models.ProjectAdvisor{}, "project_id = ?", project.ID))
	s.Equal(int64(1), s.fx.Count(&models.ProjectAdvisor{}, "project_id = ? AND advisor_id = ?", project.ID, other.ID))
}

func (s *ProjectServiceTestSuite) TestAssignAdvisorRequiresAdvisorRole() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)
	classmate := s.fx.Student()

	_, err := s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: classmate.ID})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: uuid.New()})
	s.ErrorIs(err, apperrors.ErrUserNotFound)

	s.Equal(int64(0), s.fx.Count(&models.ProjectAdvisor{}, "project_id = ?", project.ID))
	s.Equal(int64(1), s.fx.Count(&models.Project{}, "id = ? AND status = ?", project.ID, models.ProjectStatusDraft))
}

func (s *ProjectServiceTestSuite) TestAdvisorCapacity() {
	advisor := s.fx.Advisor()
	s.approvedTeamProject(advisor)
	s.approvedTeamProject(advisor)
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)

	_, err := s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: advisor.ID})
	s.ErrorIs(err, apperrors.ErrAdvisorFull)
	s.Equal(apperrors.KindConflict, apperrors.KindOf(err))

	s.Equal(int64(0), s.fx.Count(&models.ProjectAdvisor{}, "project_id = ?", project.ID))
	s.Equal(int64(1), s.fx.Count(&models.Project{}, "id = ? AND status = ?", project.ID, models.ProjectStatusDraft))
}

func (s *ProjectServiceTestSuite) TestApprovalRechecksCapacity() {
	advisor := s.fx.Advisor()
	s.approvedTeamProject(advisor)

	first := s.fx.Project(s.team.ID, models.ProjectStatusPending)
	s.fx.LinkAdvisor(first.ID, advisor.ID)

	otherMember := s.enrolledStudents(s.section.ID, 1)[0]
	otherTeam := s.fx.Team(s.section.ID, otherMember)
	second := s.fx.Project(otherTeam.ID, models.ProjectStatusPending)
	s.fx.LinkAdvisor(second.ID, advisor.ID)

	approve := &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved}
	got, err := s.svc.SetProjectStatus(s.ctx, actorOf(advisor), first.ID, approve)
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusApproved, got.Status)

	_, err = s.svc.SetProjectStatus(s.ctx, actorOf(advisor), second.ID, approve)
	s.ErrorIs(err, apperrors.ErrAdvisorFull)
	s.Equal(int64(1), s.fx.Count(&models.Project{}, "id = ? AND status = ?", second.ID, models.ProjectStatusPending))
	s.Equal(int64(models.MaxApprovedProjectsPerAdvisor), s.fx.Count(&models.ProjectAdvisor{},
		"advisor_id = ? AND project_id IN (SELECT id FROM projects WHERE status = ?)", advisor.ID, models.ProjectStatusApproved))
}

func (s *ProjectServiceTestSuite) TestSetProjectStatus() {
	advisor := s.fx.Advisor()
	project := s.fx.Project(s.team.ID, models.ProjectStatusPending)
	s.fx.LinkAdvisor(project.ID, advisor.ID)

	s.Run("student cannot decide", func() {
		_, err := s.svc.SetProjectStatus(s.ctx, actorOf(s.student), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("unlinked advisor cannot decide", func() {
		_, err := s.svc.SetProjectStatus(s.ctx, actorOf(s.fx.Advisor()), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
		s.ErrorIs(err, apperrors.ErrForbidden)
	})

	s.Run("only approve or reject", func() {
		_, err := s.svc.SetProjectStatus(s.ctx, actorOf(advisor), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusDraft})
		s.Equal(apperrors.KindValidation, apperrors.KindOf(err))
	})

	s.Run("linked advisor approves", func() {
		got, err := s.svc.SetProjectStatus(s.ctx, actorOf(advisor), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
		s.Require().NoError(err)
		s.Equal(models.ProjectStatusApproved, got.Status)
		s.Equal(int64(1), s.fx.Count(&models.Notification{}, "user_id = ? AND type = ?", s.student.ID, models.NotificationProjectApproved))
	})

	s.Run("approved project cannot be decided again", func() {
		_, err := s.svc.SetProjectStatus(s.ctx, actorOf(advisor), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusRejected})
		s.Equal(apperrors.KindInvalidState, apperrors.KindOf(err))
	})
}

func (s *ProjectServiceTestSuite) TestDraftCannotBeApproved() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)

	_, err := s.svc.SetProjectStatus(s.ctx, actorOf(s.fx.Admin()), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
	s.Equal(apperrors.KindInvalidState, apperrors.KindOf(err))
}

func (s *ProjectServiceTestSuite) TestRejectThenReassign() {
	advisor := s.fx.Advisor()
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)

	_, err := s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: advisor.ID})
	s.Require().NoError(err)

	rejected, err := s.svc.SetProjectStatus(s.ctx, actorOf(advisor), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusRejected})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusRejected, rejected.Status)
	s.Empty(rejected.Advisors)
	s.Equal(int64(1), s.fx.Count(&models.Notification{}, "user_id = ? AND type = ?", s.student.ID, models.NotificationProjectRejected))

	// the rejecting advisor lost the link and with it the right to decide
	_, err = s.svc.SetProjectStatus(s.ctx, actorOf(advisor), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
	s.ErrorIs(err, apperrors.ErrForbidden)

	other := s.fx.Advisor()
	pending, err := s.svc.AssignAdvisor(s.ctx, actorOf(s.student), project.ID, &service.AssignAdvisorRequest{AdvisorID: other.ID})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusPending, pending.Status)

	approved, err := s.svc.SetProjectStatus(s.ctx, actorOf(other), project.ID, &service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusApproved, approved.Status)
}

func (s *ProjectServiceTestSuite) TestRemoveAdvisor() {
	advisor := s.fx.Advisor()
	project := s.fx.Project(s.team.ID, models.ProjectStatusPending)
	s.fx.LinkAdvisor(project.ID, advisor.ID)

	got, err := s.svc.RemoveAdvisor(s.ctx, actorOf(s.student), project.ID)
	s.Require().NoError(err)
	s.Equal(models.ProjectStatusDraft, got.Status)
	s.Empty(got.Advisors)
	s.Equal(int64(0), s.fx.Count(&models.ProjectAdvisor{}, "project_id = ?", project.ID))
}

func (s *ProjectServiceTestSuite) TestGetProject() {
	project := s.fx.Project(s.team.ID, models.ProjectStatusDraft)

	got, err := s.svc.GetProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Equal(project.ProjectName, got.ProjectName)

	_, err = s.svc.GetProject(s.ctx, uuid.New())
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
