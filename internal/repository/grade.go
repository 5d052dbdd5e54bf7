package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// Upsert inserts a grade or overwrites the mark already recorded for the same
// student, project and term.
func (r *GradeRepository) Upsert(grade *models.Grade) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "project_id"}, {Name: "term_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"grade", "graded_by", "updated_at"}),
	}).Create(grade).Error
}

// Get retrieves the grade of a student for a project in a term
func (r *GradeRepository) Get(studentID, projectID, termID uuid.UUID) (*models.Grade, error) {
	var grade models.Grade
	err := r.db.First(&grade, "student_id = ? AND project_id = ? AND term_id = ?", studentID, projectID, termID).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}
