package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/metrics"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validateRequest runs struct validation and reports the first failing field
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(toSnake(fe.Field()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("request", err.Error())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// storeError translates a repository error. Typed errors pass through; a
// missing row becomes notFound; anything else is hidden behind an internal error.
func storeError(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	var transition *models.TransitionError
	switch {
	case apperrors.KindOf(err) != apperrors.KindInternal:
		return err
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConcurrentUpdate
	case errors.As(err, &transition):
		return apperrors.NewInvalidStateError(transition.Error())
	}
	var internal *apperrors.InternalError
	if errors.As(err, &internal) {
		return err
	}
	return apperrors.NewInternalError(op, fmt.Errorf("failed to %s: %w", op, err))
}

// track records the outcome of a lifecycle operation. It is deferred with a
// pointer to the named error result.
func track(ctx context.Context, op string, errp *error) {
	outcome := "ok"
	if errp != nil && *errp != nil {
		outcome = apperrors.CodeOf(*errp)
		log := logger.WithContext(ctx).WithField("operation", op).WithError(*errp)
		if apperrors.KindOf(*errp) == apperrors.KindInternal {
			log.Error("operation failed")
		} else {
			log.Warn("operation rejected")
		}
	}
	metrics.LifecycleOperations().WithLabelValues(op, outcome).Inc()
}

// requireAdmin rejects every actor but administrators
func requireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

// requireTeamMember lets administrators and members of the team through
func requireTeamMember(r *repository.Registry, actor Actor, teamID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	ok, err := r.Members.Exists(teamID, actor.ID)
	if err != nil {
		return fmt.Errorf("failed to check team membership: %w", err)
	}
	if !ok {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

// requireEditable rejects changes to approved projects
func requireEditable(project *models.Project) error {
	if project != nil && !project.Status.Editable() {
		return apperrors.ErrApprovedLocked
	}
	return nil
}

// findProjectForTeam returns the team's project or nil when it has none
func findProjectForTeam(r *repository.Registry, teamID uuid.UUID) (*models.Project, error) {
	project, err := r.Projects.GetByTeamID(teamID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project for team: %w", err)
	}
	return project, nil
}

// notifyUsers writes one notification row per user
func notifyUsers(r *repository.Registry, userIDs []uuid.UUID, kind models.NotificationType, message string, teamID, taskID *uuid.UUID) error {
	rows := make([]models.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, models.Notification{
			UserID:  userID,
			Type:    kind,
			Message: message,
			TeamID:  teamID,
			TaskID:  taskID,
		})
	}
	if err := r.Notifications.CreateBatch(rows); err != nil {
		return fmt.Errorf("failed to write notifications: %w", err)
	}
	return nil
}
