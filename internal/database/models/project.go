package models

import (
	"github.com/google/uuid"
)

// MaxApprovedProjectsPerAdvisor caps how many APPROVED projects one advisor oversees
const MaxApprovedProjectsPerAdvisor = 2

// ProjectType represents the kind of capstone project
type ProjectType string

const (
	ProjectTypeResearch    ProjectType = "RESEARCH"
	ProjectTypeApplication ProjectType = "APPLICATION"
	ProjectTypeIndustry    ProjectType = "INDUSTRY"
)

// IsValid checks if the ProjectType is valid
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeResearch, ProjectTypeApplication, ProjectTypeIndustry:
		return true
	}
	return false
}

// Project represents the single capstone project owned by a team
type Project struct {
	BaseModel
	TeamID      uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex"`
	ProjectName string        `json:"projectname" gorm:"column:project_name;not null;size:200"`
	Description string        `json:"description" gorm:"type:text"`
	ProjectType ProjectType   `json:"project_type" gorm:"type:varchar(20)"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`

	// Relationships
	Team     *Team            `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	Advisors []ProjectAdvisor `json:"advisors,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectAdvisor links an advisor to a project
type ProjectAdvisor struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_advisors_project_advisor"`
	AdvisorID uuid.UUID `json:"advisor_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_advisors_project_advisor;index"`

	// Relationships
	Advisor *User `json:"advisor,omitempty" gorm:"foreignKey:AdvisorID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for ProjectAdvisor
func (ProjectAdvisor) TableName() string {
	return "project_advisors"
}
