package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks and their assignees
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetWithAssignees retrieves a task with its assignment rows
func (r *TaskRepository) GetWithAssignees(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Assignees").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListColumn retrieves the tasks of one board column ordered by position
func (r *TaskRepository) ListColumn(projectID uuid.UUID, status models.TaskStatus) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("project_id = ? AND status = ?", projectID, status).
		Order("position ASC, created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// CountColumn returns how many tasks sit in one board column
func (r *TaskRepository) CountColumn(projectID uuid.UUID, status models.TaskStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).
		Where("project_id = ? AND status = ?", projectID, status).
		Count(&count).Error
	return count, err
}

// SetPlacement writes the column and position of a task
func (r *TaskRepository) SetPlacement(id uuid.UUID, status models.TaskStatus, position int) error {
	return r.db.Model(&models.Task{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "position": position}).Error
}

// ReplaceAssignees swaps the assignment rows of a task for the given users
func (r *TaskRepository) ReplaceAssignees(taskID uuid.UUID, userIDs []uuid.UUID) error {
	if err := r.db.Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return nil
	}
	assignments := make([]models.TaskAssignment, 0, len(userIDs))
	for _, userID := range userIDs {
		assignments = append(assignments, models.TaskAssignment{TaskID: taskID, UserID: userID})
	}
	return r.db.Create(&assignments).Error
}

// CommentRepository handles database operations for task comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByTask retrieves the comments of a task oldest first
func (r *CommentRepository) ListByTask(taskID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("task_id = ?", taskID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}
