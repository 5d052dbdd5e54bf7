package service

import (
	"context"
	"fmt"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GradeService records students' project grades
type GradeService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewGradeService creates a new grade service
func NewGradeService(store *repository.Store, validator *validator.Validate) *GradeService {
	return &GradeService{
		store:     store,
		validator: validator,
	}
}

// UpsertGradeRequest sets the grade of a student for a project in a term
type UpsertGradeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	TermID    uuid.UUID `json:"term_id" validate:"required"`
	Grade     string    `json:"grade" validate:"required,oneof=AA BA BB CB CC DC DD FD FF"`
}

// UpsertGrade records a grade, overwriting an earlier grade for the same
// student, project and term. Advisors may only grade projects they advise.
func (s *GradeService) UpsertGrade(ctx context.Context, actor Actor, req *UpsertGradeRequest) (grade *models.Grade, err error) {
	defer track(ctx, "upsert_grade", &err)

	if !actor.IsStaff() {
		return nil, apperrors.ErrForbidden
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		project, err := r.Projects.GetByID(req.ProjectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if _, err := r.Terms.GetByID(req.TermID); err != nil {
			return storeError("get term", err, apperrors.ErrTermNotFound)
		}
		if !actor.IsAdmin() {
			linked, err := r.ProjectAdvisors.Exists(project.ID, actor.ID)
			if err != nil {
				return fmt.Errorf("failed to check advisor link: %w", err)
			}
			if !linked {
				return apperrors.ErrForbidden
			}
		}
		member, err := r.Members.Exists(project.TeamID, req.StudentID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !member {
			return apperrors.NewValidationError("student_id", "student is not a member of the project's team")
		}

		grader := actor.ID
		if err := r.Grades.Upsert(&models.Grade{
			StudentID: req.StudentID,
			ProjectID: req.ProjectID,
			TermID:    req.TermID,
			Grade:     req.Grade,
			GradedBy:  &grader,
		}); err != nil {
			return fmt.Errorf("failed to upsert grade: %w", err)
		}

		grade, err = r.Grades.Get(req.StudentID, req.ProjectID, req.TermID)
		return err
	})
	if err != nil {
		return nil, storeError("upsert grade", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"student_id": req.StudentID,
		"project_id": req.ProjectID,
		"grade":      grade.Grade,
	}).Info("grade recorded")
	return grade, nil
}
