package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SectionRepository handles database operations for sections
type SectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// Create creates a new section
func (r *SectionRepository) Create(section *models.Section) error {
	return r.db.Create(section).Error
}

// GetByID retrieves a section by ID
func (r *SectionRepository) GetByID(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// GetWithTerm retrieves a section with its term loaded
func (r *SectionRepository) GetWithTerm(id uuid.UUID) (*models.Section, error) {
	var section models.Section
	err := r.db.Preload("Term").First(&section, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// UpdateFields applies a partial update to a section
func (r *SectionRepository) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.db.Model(&models.Section{}).Where("id = ?", id).Updates(fields).Error
}

// CountTeams returns how many teams reference the section
func (r *SectionRepository) CountTeams(sectionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("section_id = ?", sectionID).Count(&count).Error
	return count, err
}

// Delete removes a section row
func (r *SectionRepository) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Section{})
	return result.RowsAffected, result.Error
}

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create creates a new enrollment
func (r *EnrollmentRepository) Create(enrollment *models.Enrollment) error {
	return r.db.Create(enrollment).Error
}

// Exists reports whether the user is enrolled in the section
func (r *EnrollmentRepository) Exists(userID, sectionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND section_id = ?", userID, sectionID).
		Count(&count).Error
	return count > 0, err
}

// CreateIgnoringDuplicates inserts enrollments and skips rows that already
// exist. It returns the number of rows actually inserted.
func (r *EnrollmentRepository) CreateIgnoringDuplicates(enrollments []models.Enrollment) (int64, error) {
	if len(enrollments) == 0 {
		return 0, nil
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollments)
	return result.RowsAffected, result.Error
}

// ListBySection retrieves enrollments for a section with their users
func (r *EnrollmentRepository) ListBySection(sectionID uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.Preload("User").
		Where("section_id = ?", sectionID).
		Order("created_at ASC").
		Find(&enrollments).Error
	return enrollments, err
}

// ListBySectionAndUsers retrieves the enrollments of the given users in a section
func (r *EnrollmentRepository) ListBySectionAndUsers(sectionID uuid.UUID, userIDs []uuid.UUID) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if len(userIDs) == 0 {
		return enrollments, nil
	}
	err := r.db.Where("section_id = ? AND user_id IN ?", sectionID, userIDs).Find(&enrollments).Error
	return enrollments, err
}

// DeleteBySection removes every enrollment of a section
func (r *EnrollmentRepository) DeleteBySection(sectionID uuid.UUID) (int64, error) {
	result := r.db.Where("section_id = ?", sectionID).Delete(&models.Enrollment{})
	return result.RowsAffected, result.Error
}
