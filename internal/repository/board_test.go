//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
)

// BoardRepositoryTestSuite tests the project board, milestones, grades and
// the transactional store.
type BoardRepositoryTestSuite struct {
	repositorySuite
	store   *Store
	student *models.User
	team    *models.Team
	project *models.Project
	section *models.Section
	term    *models.Term
}

func (s *BoardRepositoryTestSuite) SetupTest() {
	s.repositorySuite.SetupTest()
	s.store = NewStore(s.baseTestSuite.DB)
	s.term = s.fx.Term(2024, 1)
	s.section = s.fx.Section(s.term.ID, models.CourseTypeProject)
	s.student = s.fx.Student()
	s.team = s.fx.Team(s.section.ID, s.student)
	s.project = s.fx.Project(s.team.ID, models.ProjectStatusApproved)
}

func (s *BoardRepositoryTestSuite) TestColumnOrdering() {
	r := s.store.Read(context.Background())
	third := s.fx.Task(s.project.ID, s.student.ID, 2)
	first := s.fx.Task(s.project.ID, s.student.ID, 0)
	second := s.fx.Task(s.project.ID, s.student.ID, 1)

	tasks, err := r.Tasks.ListColumn(s.project.ID, models.TaskStatusTodo)
	s.Require().NoError(err)
	s.Require().Len(tasks, 3)
	s.Equal([]uuid.UUID{first.ID, second.ID, third.ID}, []uuid.UUID{tasks[0].ID, tasks[1].ID, tasks[2].ID})

	s.Require().NoError(r.Tasks.SetPlacement(second.ID, models.TaskStatusDone, 0))

	todo, err := r.Tasks.CountColumn(s.project.ID, models.TaskStatusTodo)
	s.Require().NoError(err)
	s.Equal(int64(2), todo)
	done, err := r.Tasks.CountColumn(s.project.ID, models.TaskStatusDone)
	s.Require().NoError(err)
	s.Equal(int64(1), done)
}

func (s *BoardRepositoryTestSuite) TestReplaceAssignees() {
	r := s.store.Read(context.Background())
	task := s.fx.Task(s.project.ID, s.student.ID, 0)
	mate := s.fx.Student()

	s.Require().NoError(r.Tasks.ReplaceAssignees(task.ID, []uuid.UUID{s.student.ID, mate.ID}))
	got, err := r.Tasks.GetWithAssignees(task.ID)
	s.Require().NoError(err)
	s.Len(got.Assignees, 2)

	s.Require().NoError(r.Tasks.ReplaceAssignees(task.ID, []uuid.UUID{mate.ID}))
	got, err = r.Tasks.GetWithAssignees(task.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Assignees, 1)
	s.Equal(mate.ID, got.Assignees[0].UserID)

	s.Require().NoError(r.Tasks.ReplaceAssignees(task.ID, nil))
	s.Equal(int64(0), s.fx.Count(&models.TaskAssignment{}, "task_id = ?", task.ID))
}

func (s *BoardRepositoryTestSuite) TestComments() {
	r := s.store.Read(context.Background())
	task := s.fx.Task(s.project.ID, s.student.ID, 0)

	s.Require().NoError(r.Comments.Create(&models.Comment{TaskID: task.ID, AuthorID: s.student.ID, Body: "first"}))
	s.Require().NoError(r.Comments.Create(&models.Comment{TaskID: task.ID, AuthorID: s.student.ID, Body: "second"}))

	comments, err := r.Comments.ListByTask(task.ID)
	s.Require().NoError(err)
	s.Require().Len(comments, 2)
	s.Equal("first", comments[0].Body)
}

func (s *BoardRepositoryTestSuite) TestNotifications() {
	r := s.store.Read(context.Background())

	s.Require().NoError(r.Notifications.CreateBatch([]models.Notification{{
		UserID:  s.student.ID,
		Type:    models.NotificationTaskAssigned,
		Message: "You were assigned a task",
		TeamID:  &s.team.ID,
		Payload: datatypes.JSON(`{"position":0}`),
	}}))
	s.NoError(r.Notifications.CreateBatch(nil))

	got, err := r.Notifications.ListByUser(s.student.ID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.JSONEq(`{"position":0}`, string(got[0].Payload))
	s.Nil(got[0].ReadAt)
}

func (s *BoardRepositoryTestSuite) TestSubmissions() {
	r := s.store.Read(context.Background())
	event := s.fx.Event(s.section.ID)

	s.Require().NoError(r.Submissions.CreateBatch([]models.Submission{
		{EventID: event.ID, TeamID: s.team.ID, Status: models.SubmissionStatusPending},
	}))

	ids, err := r.Events.ListIDsBySection(s.section.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{event.ID}, ids)

	submissions, err := r.Submissions.ListByEvent(event.ID)
	s.Require().NoError(err)
	s.Require().Len(submissions, 1)

	submission, err := r.Submissions.GetByID(submissions[0].ID)
	s.Require().NoError(err)
	s.Require().NotNil(submission.Event)
	s.Equal(event.Title, submission.Event.Title)

	submission.Status = models.SubmissionStatusSubmitted
	s.Require().NoError(r.Submissions.Save(submission))
	s.Equal(int64(1), s.fx.Count(&models.Submission{}, "status = ?", models.SubmissionStatusSubmitted))
}

func (s *BoardRepositoryTestSuite) TestGradeUpsert() {
	r := s.store.Read(context.Background())
	advisor := s.fx.Advisor()
	admin := s.fx.Admin()

	s.Require().NoError(r.Grades.Upsert(&models.Grade{
		StudentID: s.student.ID, ProjectID: s.project.ID, TermID: s.term.ID, Grade: "BA", GradedBy: &advisor.ID,
	}))
	s.Require().NoError(r.Grades.Upsert(&models.Grade{
		StudentID: s.student.ID, ProjectID: s.project.ID, TermID: s.term.ID, Grade: "AA", GradedBy: &admin.ID,
	}))

	got, err := r.Grades.Get(s.student.ID, s.project.ID, s.term.ID)
	s.Require().NoError(err)
	s.Equal("AA", got.Grade)
	s.Equal(admin.ID, *got.GradedBy)
	s.Equal(int64(1), s.fx.Count(&models.Grade{}, "student_id = ?", s.student.ID))
}

func (s *BoardRepositoryTestSuite) TestWithTransactionRollsBack() {
	boom := errors.New("boom")

	err := s.store.WithTransaction(context.Background(), func(r *Registry) error {
		if err := r.Tasks.Create(&models.Task{
			ProjectID:   s.project.ID,
			Title:       "Rolled back",
			Status:      models.TaskStatusTodo,
			CreatedByID: s.student.ID,
		}); err != nil {
			return err
		}
		return boom
	})

	s.ErrorIs(err, boom)
	s.Equal(int64(0), s.fx.Count(&models.Task{}, "title = ?", "Rolled back"))
}

func TestBoardRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BoardRepositoryTestSuite))
}
