package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType identifies what a notification is about
type NotificationType string

const (
	NotificationAdvisorRequested NotificationType = "ADVISOR_REQUESTED"
	NotificationProjectApproved  NotificationType = "PROJECT_APPROVED"
	NotificationProjectRejected  NotificationType = "PROJECT_REJECTED"
	NotificationTaskAssigned     NotificationType = "TASK_ASSIGNED"
	NotificationSubmissionReview NotificationType = "SUBMISSION_REVIEWED"
)

// Notification is an in-app message row; delivery happens elsewhere
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type    NotificationType `json:"type" gorm:"type:varchar(40);not null"`
	Message string           `json:"message" gorm:"size:500"`
	TaskID  *uuid.UUID       `json:"task_id,omitempty" gorm:"type:uuid;index"`
	TeamID  *uuid.UUID       `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Payload datatypes.JSON   `json:"payload,omitempty"`
	ReadAt  *time.Time       `json:"read_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
