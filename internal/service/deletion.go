package service

import (
	"context"
	"fmt"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/google/uuid"
)

// DeletionService removes teams, events and users together with every row
// that depends on them. Each call is one transaction.
type DeletionService struct {
	store *repository.Store
}

// NewDeletionService creates a new deletion service
func NewDeletionService(store *repository.Store) *DeletionService {
	return &DeletionService{store: store}
}

// DeleteTeam removes a team, its members and its project. Administrators may
// delete any team; members may delete their own team while its project is not
// approved.
func (s *DeletionService) DeleteTeam(ctx context.Context, actor Actor, teamID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_team", &err)

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Teams.GetByID(teamID); err != nil {
			return storeError("get team", err, apperrors.ErrTeamNotFound)
		}
		if !actor.IsAdmin() {
			if err := requireTeamMember(r, actor, teamID); err != nil {
				return err
			}
			project, err := findProjectForTeam(r, teamID)
			if err != nil {
				return err
			}
			if err := requireEditable(project); err != nil {
				return err
			}
		}

		result, err = cascade.NewExecutor(r.DB()).Run(cascade.ForTeam(teamID))
		return err
	})
	if err != nil {
		return nil, storeError("delete team", err, nil)
	}

	s.finish(ctx, result, teamID)
	return result, nil
}

// DeleteEvent removes an event and all of its submissions
func (s *DeletionService) DeleteEvent(ctx context.Context, actor Actor, eventID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_event", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Events.GetByID(eventID); err != nil {
			return storeError("get event", err, apperrors.ErrEventNotFound)
		}
		result, err = cascade.NewExecutor(r.DB()).Run(cascade.ForEvent(eventID))
		return err
	})
	if err != nil {
		return nil, storeError("delete event", err, nil)
	}

	s.finish(ctx, result, eventID)
	return result, nil
}

// DeleteUser removes a user account. Teams the user is the last member of are
// deleted first, projects they advise (none of which may be approved) go back
// to DRAFT, and then the user's own rows are removed.
func (s *DeletionService) DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_user", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if actor.ID == userID {
		return nil, apperrors.ErrSelfDeleteForbidden
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Users.LockByID(userID); err != nil {
			return storeError("lock user", err, apperrors.ErrUserNotFound)
		}
		executor := cascade.NewExecutor(r.DB())
		result = &cascade.Result{Root: cascade.RootUser, Deleted: map[string]int64{}}

		advised, err := r.Projects.ListByAdvisor(userID)
		if err != nil {
			return fmt.Errorf("failed to list advised projects: %w", err)
		}
		reset := make([]uuid.UUID, 0, len(advised))
		for _, project := range advised {
			if project.Status == models.ProjectStatusApproved {
				return apperrors.ErrAdvisorHasApproved
			}
			if project.Status != models.ProjectStatusDraft {
				reset = append(reset, project.ID)
			}
		}
		if _, err := r.Projects.ResetStatus(reset, models.ProjectStatusDraft); err != nil {
			return fmt.Errorf("failed to reset advised projects: %w", err)
		}

		teams, err := r.Teams.ListByUser(userID)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		for _, team := range teams {
			count, err := r.Members.CountByTeam(team.ID)
			if err != nil {
				return fmt.Errorf("failed to count members: %w", err)
			}
			if count > 1 {
				continue
			}
			removed, err := executor.Run(cascade.ForTeam(team.ID))
			if err != nil {
				return err
			}
			result.Merge(removed)
		}

		removed, err := executor.Run(cascade.ForUser(userID))
		if err != nil {
			return err
		}
		result.Merge(removed)
		return nil
	})
	if err != nil {
		return nil, storeError("delete user", err, nil)
	}

	s.finish(ctx, result, userID)
	return result, nil
}

func (s *DeletionService) finish(ctx context.Context, result *cascade.Result, id uuid.UUID) {
	result.Record()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"root": result.Root,
		"id":   id,
		"rows": result.Total(),
	}).Info("cascade delete committed")
}
