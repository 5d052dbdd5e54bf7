package models

import (
	"github.com/google/uuid"
)

// Grade is a student's mark for a project in a term
type Grade struct {
	BaseModel
	StudentID uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_grades_student_project_term"`
	ProjectID uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_grades_student_project_term;index"`
	TermID    uuid.UUID  `json:"term_id" gorm:"type:uuid;not null;uniqueIndex:idx_grades_student_project_term"`
	Grade     string     `json:"grade" gorm:"size:4;not null"`
	GradedBy  *uuid.UUID `json:"graded_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Grade
func (Grade) TableName() string {
	return "grades"
}
