package models

import (
	"fmt"
	"time"
)

// Term represents an academic year and semester window
type Term struct {
	BaseModel
	AcademicYear int       `json:"academic_year" gorm:"not null;uniqueIndex:idx_terms_year_semester" validate:"required,min=2000,max=3000"`
	Semester     int       `json:"semester" gorm:"not null;uniqueIndex:idx_terms_year_semester" validate:"required,min=1,max=3"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

// TableName returns the table name for Term
func (Term) TableName() string {
	return "terms"
}

// Label renders the semester label stored on teams, e.g. "2/2025"
func (t Term) Label() string {
	return fmt.Sprintf("%d/%d", t.Semester, t.AcademicYear)
}
