package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithDetails retrieves a team with its section, members and project
func (r *TeamRepository) GetWithDetails(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Section").
		Preload("Members.User").
		Preload("Project.Advisors").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByUserInSection retrieves the team a user belongs to in a section
func (r *TeamRepository) FindByUserInSection(userID, sectionID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND teams.section_id = ?", userID, sectionID).
		First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListBySection retrieves all teams in a section ordered by creation
func (r *TeamRepository) ListBySection(sectionID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("section_id = ?", sectionID).Order("created_at ASC").Find(&teams).Error
	return teams, err
}

// ListWithDetailsBySection retrieves the teams of a section with members and project
func (r *TeamRepository) ListWithDetailsBySection(sectionID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Members").
		Preload("Project").
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&teams).Error
	return teams, err
}

// ListByUser retrieves every team the user is a member of
func (r *TeamRepository) ListByUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error
	return teams, err
}

// MoveToSection reassigns teams to another section and relabels their semester
func (r *TeamRepository) MoveToSection(teamIDs []uuid.UUID, sectionID uuid.UUID, semester string) (int64, error) {
	if len(teamIDs) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Team{}).
		Where("id IN ?", teamIDs).
		Updates(map[string]interface{}{"section_id": sectionID, "semester": semester})
	return result.RowsAffected, result.Error
}

// TeamMemberRepository handles database operations for team membership
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create adds a member row
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// Exists reports whether the user is a member of the team
func (r *TeamMemberRepository) Exists(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByTeam returns the number of members of a team
func (r *TeamMemberRepository) CountByTeam(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// ListUserIDs returns the distinct member user IDs of the given teams
func (r *TeamMemberRepository) ListUserIDs(teamIDs []uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if len(teamIDs) == 0 {
		return ids, nil
	}
	err := r.db.Model(&models.TeamMember{}).
		Where("team_id IN ?", teamIDs).
		Distinct().
		Pluck("user_id", &ids).Error
	return ids, err
}

// Delete removes one membership row
func (r *TeamMemberRepository) Delete(teamID, userID uuid.UUID) (int64, error) {
	result := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{})
	return result.RowsAffected, result.Error
}

// MaxCountInSection returns the member count of the largest team in a section
func (r *TeamMemberRepository) MaxCountInSection(sectionID uuid.UUID) (int64, error) {
	var largest int64
	err := r.db.Raw(`SELECT COALESCE(MAX(member_count), 0) FROM (
		SELECT COUNT(*) AS member_count FROM team_members
		JOIN teams ON teams.id = team_members.team_id
		WHERE teams.section_id = ?
		GROUP BY team_members.team_id
	) AS sizes`, sectionID).Scan(&largest).Error
	return largest, err
}
