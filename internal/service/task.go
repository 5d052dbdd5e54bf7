package service

import (
	"context"
	"fmt"
	"time"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskService manages the kanban board of a project
type TaskService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(store *repository.Store, validator *validator.Validate) *TaskService {
	return &TaskService{
		store:     store,
		validator: validator,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// MoveTaskRequest moves a task to a column and, optionally, to an index in it
type MoveTaskRequest struct {
	Status   models.TaskStatus `json:"status" validate:"required,oneof=TODO IN_PROGRESS IN_REVIEW DONE"`
	Position *int              `json:"position,omitempty" validate:"omitempty,min=0"`
}

// AssignTaskRequest replaces the assignees of a task
type AssignTaskRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// AddCommentRequest represents the request to comment on a task
type AddCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

// taskScope loads a task with its project and checks the actor may change it
func taskScope(r *repository.Registry, actor Actor, taskID uuid.UUID) (*models.Task, *models.Project, error) {
	task, err := r.Tasks.GetByID(taskID)
	if err != nil {
		return nil, nil, storeError("get task", err, apperrors.ErrTaskNotFound)
	}
	project, err := r.Projects.GetByID(task.ProjectID)
	if err != nil {
		return nil, nil, storeError("get project", err, apperrors.ErrProjectNotFound)
	}
	if err := requireTeamMember(r, actor, project.TeamID); err != nil {
		return nil, nil, err
	}
	if !actor.IsAdmin() {
		if err := requireEditable(project); err != nil {
			return nil, nil, err
		}
	}
	return task, project, nil
}

// CreateTask appends a new task to the TODO column of the project
func (s *TaskService) CreateTask(ctx context.Context, actor Actor, projectID uuid.UUID, req *CreateTaskRequest) (task *models.Task, err error) {
	defer track(ctx, "create_task", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		project, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if err := requireTeamMember(r, actor, project.TeamID); err != nil {
			return err
		}
		if !actor.IsAdmin() {
			if err := requireEditable(project); err != nil {
				return err
			}
		}

		position, err := r.Tasks.CountColumn(projectID, models.TaskStatusTodo)
		if err != nil {
			return fmt.Errorf("failed to count column: %w", err)
		}
		task = &models.Task{
			ProjectID:   projectID,
			Title:       req.Title,
			Description: req.Description,
			Status:      models.TaskStatusTodo,
			Position:    int(position),
			DueDate:     req.DueDate,
			CreatedByID: actor.ID,
		}
		if err := r.Tasks.Create(task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create task", err, nil)
	}
	return task, nil
}

// MoveTask moves a task to a column. Without a position the task goes to the
// end of the column; otherwise it is inserted at the clamped index and the
// tasks below it shift down. The column the task left is renumbered without gaps.
func (s *TaskService) MoveTask(ctx context.Context, actor Actor, taskID uuid.UUID, req *MoveTaskRequest) (task *models.Task, err error) {
	defer track(ctx, "move_task", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, _, err := taskScope(r, actor, taskID)
		if err != nil {
			return err
		}
		next, err := current.Status.Transition(req.Status)
		if err != nil {
			return err
		}

		column, err := r.Tasks.ListColumn(current.ProjectID, next)
		if err != nil {
			return fmt.Errorf("failed to list column: %w", err)
		}
		ordered := withoutTask(column, taskID)
		index := len(ordered)
		if req.Position != nil && *req.Position < index {
			index = *req.Position
		}

		ids := make([]uuid.UUID, 0, len(ordered)+1)
		for _, t := range ordered[:index] {
			ids = append(ids, t.ID)
		}
		ids = append(ids, taskID)
		for _, t := range ordered[index:] {
			ids = append(ids, t.ID)
		}
		for i, id := range ids {
			if err := r.Tasks.SetPlacement(id, next, i); err != nil {
				return fmt.Errorf("failed to place task: %w", err)
			}
		}

		if current.Status != next {
			source, err := r.Tasks.ListColumn(current.ProjectID, current.Status)
			if err != nil {
				return fmt.Errorf("failed to list column: %w", err)
			}
			for i, t := range withoutTask(source, taskID) {
				if t.Position == i {
					continue
				}
				if err := r.Tasks.SetPlacement(t.ID, current.Status, i); err != nil {
					return fmt.Errorf("failed to compact column: %w", err)
				}
			}
		}

		task, err = r.Tasks.GetByID(taskID)
		return err
	})
	if err != nil {
		return nil, storeError("move task", err, apperrors.ErrTaskNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"task_id":  taskID,
		"status":   task.Status,
		"position": task.Position,
	}).Debug("task moved")
	return task, nil
}

func withoutTask(tasks []models.Task, id uuid.UUID) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// AssignTask replaces the assignees of a task. Every assignee must belong to
// the project's team; newly assigned users are notified.
func (s *TaskService) AssignTask(ctx context.Context, actor Actor, taskID uuid.UUID, req *AssignTaskRequest) (task *models.Task, err error) {
	defer track(ctx, "assign_task", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, project, err := taskScope(r, actor, taskID)
		if err != nil {
			return err
		}
		before, err := r.Tasks.GetWithAssignees(taskID)
		if err != nil {
			return fmt.Errorf("failed to load assignees: %w", err)
		}
		previous := make(map[uuid.UUID]struct{}, len(before.Assignees))
		for _, a := range before.Assignees {
			previous[a.UserID] = struct{}{}
		}

		unique := make([]uuid.UUID, 0, len(req.UserIDs))
		seen := make(map[uuid.UUID]struct{}, len(req.UserIDs))
		var added []uuid.UUID
		for _, userID := range req.UserIDs {
			if _, dup := seen[userID]; dup {
				continue
			}
			seen[userID] = struct{}{}
			member, err := r.Members.Exists(project.TeamID, userID)
			if err != nil {
				return fmt.Errorf("failed to check membership: %w", err)
			}
			if !member {
				return apperrors.NewValidationError("user_ids", fmt.Sprintf("user %s is not a member of the team", userID))
			}
			unique = append(unique, userID)
			if _, had := previous[userID]; !had {
				added = append(added, userID)
			}
		}

		if err := r.Tasks.ReplaceAssignees(taskID, unique); err != nil {
			return fmt.Errorf("failed to assign task: %w", err)
		}
		message := fmt.Sprintf("You were assigned to %q", current.Title)
		if err := notifyUsers(r, added, models.NotificationTaskAssigned, message, nil, &current.ID); err != nil {
			return err
		}

		task, err = r.Tasks.GetWithAssignees(taskID)
		return err
	})
	if err != nil {
		return nil, storeError("assign task", err, apperrors.ErrTaskNotFound)
	}
	return task, nil
}

// AddComment adds a comment to a task. Team members, the project's advisors
// and administrators may comment, including on approved projects.
func (s *TaskService) AddComment(ctx context.Context, actor Actor, taskID uuid.UUID, req *AddCommentRequest) (comment *models.Comment, err error) {
	defer track(ctx, "add_comment", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		task, err := r.Tasks.GetByID(taskID)
		if err != nil {
			return storeError("get task", err, apperrors.ErrTaskNotFound)
		}
		project, err := r.Projects.GetByID(task.ProjectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		advisor, err := r.ProjectAdvisors.Exists(project.ID, actor.ID)
		if err != nil {
			return fmt.Errorf("failed to check advisor link: %w", err)
		}
		if !advisor {
			if err := requireTeamMember(r, actor, project.TeamID); err != nil {
				return err
			}
		}

		comment = &models.Comment{TaskID: taskID, AuthorID: actor.ID, Body: req.Body}
		if err := r.Comments.Create(comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("add comment", err, nil)
	}
	return comment, nil
}

// DeleteTask removes a task with its assignments, comments, attachments and
// notifications.
func (s *TaskService) DeleteTask(ctx context.Context, actor Actor, taskID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_task", &err)

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		task, _, err := taskScope(r, actor, taskID)
		if err != nil {
			return err
		}
		result, err = cascade.NewExecutor(r.DB()).Run(cascade.ForTask(taskID))
		if err != nil {
			return err
		}

		rest, err := r.Tasks.ListColumn(task.ProjectID, task.Status)
		if err != nil {
			return fmt.Errorf("failed to list column: %w", err)
		}
		for i, t := range rest {
			if t.Position == i {
				continue
			}
			if err := r.Tasks.SetPlacement(t.ID, t.Status, i); err != nil {
				return fmt.Errorf("failed to compact column: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError("delete task", err, nil)
	}

	result.Record()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"task_id": taskID,
		"rows":    result.Total(),
	}).Info("task deleted")
	return result, nil
}
