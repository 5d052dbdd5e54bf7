package repository

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TermRepository handles database operations for terms
type TermRepository struct {
	db *gorm.DB
}

// NewTermRepository creates a new term repository
func NewTermRepository(db *gorm.DB) *TermRepository {
	return &TermRepository{db: db}
}

// Create creates a new term
func (r *TermRepository) Create(term *models.Term) error {
	return r.db.Create(term).Error
}

// GetByID retrieves a term by ID
func (r *TermRepository) GetByID(id uuid.UUID) (*models.Term, error) {
	var term models.Term
	err := r.db.First(&term, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// GetByYearAndSemester retrieves the term for an academic year and semester
func (r *TermRepository) GetByYearAndSemester(year, semester int) (*models.Term, error) {
	var term models.Term
	err := r.db.First(&term, "academic_year = ? AND semester = ?", year, semester).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}
