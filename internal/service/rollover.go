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

// RolloverService promotes pre-project sections into project sections of a
// later term.
type RolloverService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewRolloverService creates a new rollover service
func NewRolloverService(store *repository.Store, validator *validator.Validate) *RolloverService {
	return &RolloverService{
		store:     store,
		validator: validator,
	}
}

// RolloverRequest selects the target term and, optionally, the teams to move
type RolloverRequest struct {
	TargetTermID uuid.UUID   `json:"target_term_id" validate:"required"`
	TeamIDs      []uuid.UUID `json:"team_ids,omitempty"`
}

// RolloverResult summarizes a completed rollover
type RolloverResult struct {
	NewSectionID      uuid.UUID `json:"new_section_id"`
	TeamsMoved        int       `json:"teams_moved"`
	TeamsTotal        int       `json:"teams_total"`
	EnrollmentsCopied int64     `json:"enrollments_copied"`
}

// RolloverSection clones a PRE_PROJECT section as a PROJECT section in the
// target term, copies the enrollments of the selected teams' members and moves
// those teams over. Everything happens in one transaction; when no team
// matches the selection the clone is rolled back too.
func (s *RolloverService) RolloverSection(ctx context.Context, actor Actor, sectionID uuid.UUID, req *RolloverRequest) (result *RolloverResult, err error) {
	defer track(ctx, "rollover_section", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	read := s.store.Read(ctx)
	source, err := read.Sections.GetByID(sectionID)
	if err != nil {
		return nil, storeError("get section", err, apperrors.ErrSectionNotFound)
	}
	target, err := read.Terms.GetByID(req.TargetTermID)
	if err != nil {
		return nil, storeError("get term", err, apperrors.ErrTermNotFound)
	}
	if source.CourseType != models.CourseTypePreProject {
		return nil, apperrors.ErrInvalidCourseType
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		clone := &models.Section{
			Code:        source.Code,
			CourseType:  models.CourseTypeProject,
			StudyType:   source.StudyType,
			TermID:      target.ID,
			MinTeamSize: source.MinTeamSize,
			MaxTeamSize: source.MaxTeamSize,
			TeamLocked:  source.TeamLocked,
		}
		if err := r.Sections.Create(clone); err != nil {
			return fmt.Errorf("failed to clone section: %w", err)
		}

		teams, err := r.Teams.ListBySection(source.ID)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		selected := selectTeams(teams, req.TeamIDs)
		if len(selected) == 0 {
			return apperrors.ErrEmptySelection
		}

		userIDs, err := r.Members.ListUserIDs(selected)
		if err != nil {
			return fmt.Errorf("failed to collect members: %w", err)
		}
		enrollments, err := r.Enrollments.ListBySectionAndUsers(source.ID, userIDs)
		if err != nil {
			return fmt.Errorf("failed to list enrollments: %w", err)
		}
		copies := make([]models.Enrollment, 0, len(enrollments))
		for _, e := range enrollments {
			copies = append(copies, models.Enrollment{UserID: e.UserID, SectionID: clone.ID})
		}
		copied, err := r.Enrollments.CreateIgnoringDuplicates(copies)
		if err != nil {
			return fmt.Errorf("failed to copy enrollments: %w", err)
		}

		if _, err := r.Teams.MoveToSection(selected, clone.ID, target.Label()); err != nil {
			return fmt.Errorf("failed to move teams: %w", err)
		}

		result = &RolloverResult{
			NewSectionID:      clone.ID,
			TeamsMoved:        len(selected),
			TeamsTotal:        len(teams),
			EnrollmentsCopied: copied,
		}
		return nil
	})
	if err != nil {
		return nil, storeError("rollover section", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"source_section_id":  sectionID,
		"new_section_id":     result.NewSectionID,
		"teams_moved":        result.TeamsMoved,
		"teams_total":        result.TeamsTotal,
		"enrollments_copied": result.EnrollmentsCopied,
	}).Info("section rolled over")
	return result, nil
}

// selectTeams returns the ids of the teams matching the requested ids, or of
// every team when no ids were requested.
func selectTeams(teams []models.Team, requested []uuid.UUID) []uuid.UUID {
	want := make(map[uuid.UUID]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
	}
	selected := make([]uuid.UUID, 0, len(teams))
	for _, team := range teams {
		if len(want) > 0 {
			if _, ok := want[team.ID]; !ok {
				continue
			}
		}
		selected = append(selected, team.ID)
	}
	return selected
}
