package service_test

import (
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TaskServiceTestSuite tests the kanban board of a project
type TaskServiceTestSuite struct {
	serviceSuite
	svc      *service.TaskService
	students []*models.User
	team     *models.Team
	project  *models.Project
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.svc = service.NewTaskService(s.store, s.validator)

	sect := s.section()
	s.students = s.enrolledStudents(sect.ID, 3)
	s.team = s.fx.Team(sect.ID, s.students[0], s.students[1])
	s.project = s.fx.Project(s.team.ID, models.ProjectStatusPending)
}

func (s *TaskServiceTestSuite) member() service.Actor {
	return actorOf(s.students[0])
}

// board returns the task ids of a column in position order
func (s *TaskServiceTestSuite) board(status models.TaskStatus) []uuid.UUID {
	var tasks []models.Task
	s.Require().NoError(s.db.Where("project_id = ? AND status = ?", s.project.ID, status).Order("position").Find(&tasks).Error)
	ids := make([]uuid.UUID, 0, len(tasks))
	for i, t := range tasks {
		s.Equal(i, t.Position, "column %s has a gap", status)
		ids = append(ids, t.ID)
	}
	return ids
}

func (s *TaskServiceTestSuite) createTasks(n int) []*models.Task {
	tasks := make([]*models.Task, 0, n)
	for i := 0; i < n; i++ {
		task, err := s.svc.CreateTask(s.ctx, s.member(), s.project.ID, &service.CreateTaskRequest{Title: "Task"})
		s.Require().NoError(err)
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *TaskServiceTestSuite) TestCreateTask() {
	tasks := s.createTasks(3)

	for i, task := range tasks {
		s.Equal(models.TaskStatusTodo, task.Status)
		s.Equal(i, task.Position)
		s.Equal(s.students[0].ID, task.CreatedByID)
	}
	s.Equal([]uuid.UUID{tasks[0].ID, tasks[1].ID, tasks[2].ID}, s.board(models.TaskStatusTodo))
}

func (s *TaskServiceTestSuite) TestCreateTaskRejected() {
	_, err := s.svc.CreateTask(s.ctx, actorOf(s.students[2]), s.project.ID, &service.CreateTaskRequest{Title: "Task"})
	s.ErrorIs(err, apperrors.ErrNotTeamMember)

	_, err = s.svc.CreateTask(s.ctx, s.member(), s.project.ID, &service.CreateTaskRequest{})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.CreateTask(s.ctx, s.member(), uuid.New(), &service.CreateTaskRequest{Title: "Task"})
	s.ErrorIs(err, apperrors.ErrProjectNotFound)
}

func (s *TaskServiceTestSuite) TestApprovedBoardIsLockedForStudents() {
	task := s.fx.Task(s.project.ID, s.students[0].ID, 0)
	s.Require().NoError(s.db.Model(s.project).Update("status", models.ProjectStatusApproved).Error)

	_, err := s.svc.CreateTask(s.ctx, s.member(), s.project.ID, &service.CreateTaskRequest{Title: "Late"})
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.MoveTask(s.ctx, s.member(), task.ID, &service.MoveTaskRequest{Status: models.TaskStatusDone})
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	_, err = s.svc.DeleteTask(s.ctx, s.member(), task.ID)
	s.ErrorIs(err, apperrors.ErrApprovedLocked)

	moved, err := s.svc.MoveTask(s.ctx, actorOf(s.fx.Admin()), task.ID, &service.MoveTaskRequest{Status: models.TaskStatusDone})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusDone, moved.Status)
}

func (s *TaskServiceTestSuite) TestMoveTaskToEndOfColumn() {
	tasks := s.createTasks(3)

	moved, err := s.svc.MoveTask(s.ctx, s.member(), tasks[0].ID, &service.MoveTaskRequest{Status: models.TaskStatusInProgress})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusInProgress, moved.Status)
	s.Equal(0, moved.Position)

	moved, err = s.svc.MoveTask(s.ctx, s.member(), tasks[2].ID, &service.MoveTaskRequest{Status: models.TaskStatusInProgress})
	s.Require().NoError(err)
	s.Equal(1, moved.Position)

	s.Equal([]uuid.UUID{tasks[1].ID}, s.board(models.TaskStatusTodo))
	s.Equal([]uuid.UUID{tasks[0].ID, tasks[2].ID}, s.board(models.TaskStatusInProgress))
}

func (s *TaskServiceTestSuite) TestMoveTaskToPosition() {
	tasks := s.createTasks(4)
	first := 0
	far := 99

	_, err := s.svc.MoveTask(s.ctx, s.member(), tasks[0].ID, &service.MoveTaskRequest{Status: models.TaskStatusInReview})
	s.Require().NoError(err)
	_, err = s.svc.MoveTask(s.ctx, s.member(), tasks[1].ID, &service.MoveTaskRequest{Status: models.TaskStatusInReview})
	s.Require().NoError(err)

	moved, err := s.svc.MoveTask(s.ctx, s.member(), tasks[3].ID, &service.MoveTaskRequest{Status: models.TaskStatusInReview, Position: &first})
	s.Require().NoError(err)
	s.Equal(0, moved.Position)
	s.Equal([]uuid.UUID{tasks[3].ID, tasks[0].ID, tasks[1].ID}, s.board(models.TaskStatusInReview))
	s.Equal([]uuid.UUID{tasks[2].ID}, s.board(models.TaskStatusTodo))

	// reordering inside a column clamps the index to the end
	moved, err = s.svc.MoveTask(s.ctx, s.member(), tasks[3].ID, &service.MoveTaskRequest{Status: models.TaskStatusInReview, Position: &far})
	s.Require().NoError(err)
	s.Equal(2, moved.Position)
	s.Equal([]uuid.UUID{tasks[0].ID, tasks[1].ID, tasks[3].ID}, s.board(models.TaskStatusInReview))
}

func (s *TaskServiceTestSuite) TestMoveTaskRejected() {
	task := s.createTasks(1)[0]
	negative := -1

	_, err := s.svc.MoveTask(s.ctx, s.member(), task.ID, &service.MoveTaskRequest{Status: "BLOCKED"})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.MoveTask(s.ctx, s.member(), task.ID, &service.MoveTaskRequest{Status: models.TaskStatusDone, Position: &negative})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	_, err = s.svc.MoveTask(s.ctx, actorOf(s.students[2]), task.ID, &service.MoveTaskRequest{Status: models.TaskStatusDone})
	s.ErrorIs(err, apperrors.ErrNotTeamMember)

	_, err = s.svc.MoveTask(s.ctx, s.member(), uuid.New(), &service.MoveTaskRequest{Status: models.TaskStatusDone})
	s.ErrorIs(err, apperrors.ErrTaskNotFound)
}

func (s *TaskServiceTestSuite) TestAssignTask() {
	task := s.createTasks(1)[0]
	teammate := s.students[1]

	got, err := s.svc.AssignTask(s.ctx, s.member(), task.ID, &service.AssignTaskRequest{
		UserIDs: []uuid.UUID{teammate.ID, teammate.ID, s.students[0].ID},
	})
	s.Require().NoError(err)
	s.Len(got.Assignees, 2)
	s.Equal(int64(1), s.fx.Count(&models.Notification{}, "user_id = ? AND type = ? AND task_id = ?", teammate.ID, models.NotificationTaskAssigned, task.ID))

	// only newly assigned users are notified
	got, err = s.svc.AssignTask(s.ctx, s.member(), task.ID, &service.AssignTaskRequest{UserIDs: []uuid.UUID{teammate.ID}})
	s.Require().NoError(err)
	s.Require().Len(got.Assignees, 1)
	s.Equal(teammate.ID, got.Assignees[0].UserID)
	s.Equal(int64(1), s.fx.Count(&models.Notification{}, "user_id = ?", teammate.ID))

	got, err = s.svc.AssignTask(s.ctx, s.member(), task.ID, &service.AssignTaskRequest{})
	s.Require().NoError(err)
	s.Empty(got.Assignees)
}

func (s *TaskServiceTestSuite) TestAssignTaskToOutsider() {
	task := s.createTasks(1)[0]

	_, err := s.svc.AssignTask(s.ctx, s.member(), task.ID, &service.AssignTaskRequest{UserIDs: []uuid.UUID{s.students[1].ID, s.students[2].ID}})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))
	s.Equal(int64(0), s.fx.Count(&models.TaskAssignment{}, "task_id = ?", task.ID))
	s.Equal(int64(0), s.fx.Count(&models.Notification{}, "task_id = ?", task.ID))
}

func (s *TaskServiceTestSuite) TestAddComment() {
	task := s.createTasks(1)[0]
	advisor := s.fx.Advisor()
	s.fx.LinkAdvisor(s.project.ID, advisor.ID)
	s.Require().NoError(s.db.Model(s.project).Update("status", models.ProjectStatusApproved).Error)

	comment, err := s.svc.AddComment(s.ctx, actorOf(advisor), task.ID, &service.AddCommentRequest{Body: "Nice progress"})
	s.Require().NoError(err)
	s.Equal(advisor.ID, comment.AuthorID)

	_, err = s.svc.AddComment(s.ctx, s.member(), task.ID, &service.AddCommentRequest{Body: "Thanks"})
	s.Require().NoError(err)

	_, err = s.svc.AddComment(s.ctx, actorOf(s.fx.Advisor()), task.ID, &service.AddCommentRequest{Body: "Drive-by"})
	s.ErrorIs(err, apperrors.ErrNotTeamMember)

	_, err = s.svc.AddComment(s.ctx, s.member(), task.ID, &service.AddCommentRequest{})
	s.Equal(apperrors.KindValidation, apperrors.KindOf(err))

	s.Equal(int64(2), s.fx.Count(&models.Comment{}, "task_id = ?", task.ID))
}

func (s *TaskServiceTestSuite) TestDeleteTask() {
	tasks := s.createTasks(3)
	_, err := s.svc.AssignTask(s.ctx, s.member(), tasks[1].ID, &service.AssignTaskRequest{UserIDs: []uuid.UUID{s.students[1].ID}})
	s.Require().NoError(err)
	_, err = s.svc.AddComment(s.ctx, s.member(), tasks[1].ID, &service.AddCommentRequest{Body: "Blocked"})
	s.Require().NoError(err)

	result, err := s.svc.DeleteTask(s.ctx, s.member(), tasks[1].ID)
	s.Require().NoError(err)
	s.Equal(int64(1), result.Deleted["tasks"])
	s.Equal(int64(1), result.Deleted["task_assignments"])
	s.Equal(int64(1), result.Deleted["comments"])
	s.Equal(int64(1), result.Deleted["notifications"])

	s.Equal([]uuid.UUID{tasks[0].ID, tasks[2].ID}, s.board(models.TaskStatusTodo))
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
