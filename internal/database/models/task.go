package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a kanban card on a project board
type Task struct {
	BaseModel
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'TODO';index"`
	Position    int        `json:"position" gorm:"not null;default:0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedByID uuid.UUID  `json:"created_by_id" gorm:"type:uuid"`

	// Relationships
	Project   *Project         `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT"`
	Assignees []TaskAssignment `json:"assignees,omitempty" gorm:"foreignKey:TaskID"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TaskAssignment links a team member to a task
type TaskAssignment struct {
	BaseModel
	TaskID uuid.UUID `json:"task_id" gorm:"type:uuid;not null;uniqueIndex:idx_task_assignments_task_user"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_task_assignments_task_user;index"`
}

// TableName returns the table name for TaskAssignment
func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// Comment is a discussion entry on a task
type Comment struct {
	BaseModel
	TaskID   uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Body     string    `json:"body" gorm:"type:text;not null"`

	// Relationships
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

// Attachment records a file kept in external storage for a task
type Attachment struct {
	BaseModel
	TaskID     uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	FileName   string    `json:"file_name" gorm:"not null;size:255"`
	URL        string    `json:"url" gorm:"not null;size:500"`
	UploadedBy uuid.UUID `json:"uploaded_by" gorm:"type:uuid"`

	// Relationships
	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Attachment
func (Attachment) TableName() string {
	return "attachments"
}
