package models

import (
	"github.com/google/uuid"
)

// PlaceholderTeamName is given to self-service teams until the students rename them
const PlaceholderTeamName = "Untitled Team"

// Team represents a student team inside a section
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100"`
	SectionID uuid.UUID `json:"section_id" gorm:"type:uuid;not null;index"`
	Semester  string    `json:"semester" gorm:"size:20"`

	// Relationships
	Section *Section     `json:"section,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:RESTRICT"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Project *Project     `json:"project,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user;index"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
