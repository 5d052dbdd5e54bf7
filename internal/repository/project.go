package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithDetails retrieves a project with its team and advisors
func (r *ProjectRepository) GetWithDetails(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Team").
		Preload("Advisors.Advisor").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTeamID retrieves the project owned by a team
func (r *ProjectRepository) GetByTeamID(teamID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ExistsForTeam reports whether a team already owns a project
func (r *ProjectRepository) ExistsForTeam(teamID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("team_id = ?", teamID).Count(&count).Error
	return count > 0, err
}

// UpdateFields applies a partial update to a project
func (r *ProjectRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// UpdateStatus sets the status of a project
func (r *ProjectRepository) UpdateStatus(id uuid.UUID, status models.ProjectStatus) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("status", status).Error
}

// CountApprovedByAdvisor returns how many APPROVED projects the advisor is linked to
func (r *ProjectRepository) CountApprovedByAdvisor(advisorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Joins("JOIN project_advisors ON project_advisors.project_id = projects.id").
		Where("project_advisors.advisor_id = ? AND projects.status = ?", advisorID, models.ProjectStatusApproved).
		Count(&count).Error
	return count, err
}

// ListByAdvisor retrieves the projects an advisor is linked to
func (r *ProjectRepository) ListByAdvisor(advisorID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Joins("JOIN project_advisors ON project_advisors.project_id = projects.id").
		Where("project_advisors.advisor_id = ?", advisorID).
		Find(&projects).Error
	return projects, err
}

// ResetStatus moves the given projects back to a status in one statement
func (r *ProjectRepository) ResetStatus(ids []uuid.UUID, status models.ProjectStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Project{}).Where("id IN ?", ids).Update("status", status)
	return result.RowsAffected, result.Error
}

// ProjectAdvisorRepository handles database operations for advisor links
type ProjectAdvisorRepository struct {
	db *gorm.DB
}

// NewProjectAdvisorRepository creates a new project advisor repository
func NewProjectAdvisorRepository(db *gorm.DB) *ProjectAdvisorRepository {
	return &ProjectAdvisorRepository{db: db}
}

// Create links an advisor to a project
func (r *ProjectAdvisorRepository) Create(link *models.ProjectAdvisor) error {
	return r.db.Create(link).Error
}

// Exists reports whether the advisor is linked to the project
func (r *ProjectAdvisorRepository) Exists(projectID, advisorID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectAdvisor{}).
		Where("project_id = ? AND advisor_id = ?", projectID, advisorID).
		Count(&count).Error
	return count > 0, err
}

// ListAdvisorIDs returns the advisors linked to a project
func (r *ProjectAdvisorRepository) ListAdvisorIDs(projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ProjectAdvisor{}).Where("project_id = ?", projectID).Pluck("advisor_id", &ids).Error
	return ids, err
}

// DeleteByProject removes every advisor link of a project
func (r *ProjectAdvisorRepository) DeleteByProject(projectID uuid.UUID) (int64, error) {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.ProjectAdvisor{})
	return result.RowsAffected, result.Error
}
