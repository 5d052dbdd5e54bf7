package models

import (
	"github.com/google/uuid"
)

// Section represents a course offering for one term
type Section struct {
	BaseModel
	Code        string     `json:"code" gorm:"not null;size:40;index"`
	CourseType  CourseType `json:"course_type" gorm:"type:varchar(20);not null"`
	StudyType   string     `json:"study_type" gorm:"size:40"`
	TermID      uuid.UUID  `json:"term_id" gorm:"type:uuid;not null;index"`
	MinTeamSize int        `json:"min_team_size" gorm:"not null;default:1"`
	MaxTeamSize int        `json:"max_team_size" gorm:"not null;default:3"`
	TeamLocked  bool       `json:"team_locked" gorm:"not null;default:false"`

	// Relationships
	Term *Term `json:"term,omitempty" gorm:"foreignKey:TermID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Section
func (Section) TableName() string {
	return "sections"
}

// Enrollment links a student to a section
type Enrollment struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_section"`
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_section;index"`

	// Relationships
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Section *Section `json:"section,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Enrollment
func (Enrollment) TableName() string {
	return "enrollments"
}
