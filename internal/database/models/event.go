package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a milestone deadline inside a section
type Event struct {
	BaseModel
	SectionID   uuid.UUID  `json:"section_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	DueDate     *time.Time `json:"due_date,omitempty"`

	// Relationships
	Section *Section `json:"section,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Submission is one team's deliverable for an event
type Submission struct {
	BaseModel
	EventID     uuid.UUID        `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_event_team"`
	TeamID      uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_submissions_event_team;index"`
	Status      SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	FileURL     string           `json:"file_url,omitempty" gorm:"size:500"`
	Feedback    string           `json:"feedback,omitempty" gorm:"type:text"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	SubmittedBy *uuid.UUID       `json:"submitted_by,omitempty" gorm:"type:uuid"`
	ApprovedAt  *time.Time       `json:"approved_at,omitempty"`
	ApprovedBy  *uuid.UUID       `json:"approved_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:RESTRICT"`
	Team  *Team  `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}
