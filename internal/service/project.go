package service

import (
	"context"
	"errors"
	"fmt"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService drives the project state machine and advisor assignment
type ProjectService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store *repository.Store, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		store:     store,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	ProjectName string             `json:"projectname" validate:"required,min=1,max=200"`
	Description string             `json:"description"`
	ProjectType models.ProjectType `json:"project_type" validate:"omitempty,oneof=RESEARCH APPLICATION INDUSTRY"`
}

// UpdateProjectRequest represents the request to update a project
type UpdateProjectRequest struct {
	ProjectName *string             `json:"projectname,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string             `json:"description,omitempty"`
	ProjectType *models.ProjectType `json:"project_type,omitempty" validate:"omitempty,oneof=RESEARCH APPLICATION INDUSTRY"`
}

// AssignAdvisorRequest represents the request to put a project under an advisor
type AssignAdvisorRequest struct {
	AdvisorID uuid.UUID `json:"advisor_id" validate:"required"`
}

// SetProjectStatusRequest represents an advisor's decision on a project
type SetProjectStatusRequest struct {
	Status models.ProjectStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// CreateProject creates the team's project in DRAFT
func (s *ProjectService) CreateProject(ctx context.Context, actor Actor, teamID uuid.UUID, req *CreateProjectRequest) (project *models.Project, err error) {
	defer track(ctx, "create_project", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Teams.GetByID(teamID); err != nil {
			return storeError("get team", err, apperrors.ErrTeamNotFound)
		}
		if err := requireTeamMember(r, actor, teamID); err != nil {
			return err
		}

		exists, err := r.Projects.ExistsForTeam(teamID)
		if err != nil {
			return fmt.Errorf("failed to check existing project: %w", err)
		}
		if exists {
			return apperrors.ErrDuplicateProject
		}

		project = &models.Project{
			TeamID:      teamID,
			ProjectName: req.ProjectName,
			Description: req.Description,
			ProjectType: req.ProjectType,
			Status:      models.ProjectStatusDraft,
		}
		if err := r.Projects.Create(project); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateProject
			}
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create project", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": project.ID,
		"team_id":    teamID,
	}).Info("project created")
	return project, nil
}

// UpdateProject edits the descriptive fields of a project that is not approved
func (s *ProjectService) UpdateProject(ctx context.Context, actor Actor, projectID uuid.UUID, req *UpdateProjectRequest) (project *models.Project, err error) {
	defer track(ctx, "update_project", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if err := requireTeamMember(r, actor, current.TeamID); err != nil {
			return err
		}
		if err := requireEditable(current); err != nil {
			return err
		}

		fields := map[string]interface{}{}
		if req.ProjectName != nil {
			fields["project_name"] = *req.ProjectName
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.ProjectType != nil {
			fields["project_type"] = *req.ProjectType
		}
		if len(fields) > 0 {
			if err := r.Projects.UpdateFields(projectID, fields); err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}
		}

		project, err = r.Projects.GetByID(projectID)
		return err
	})
	if err != nil {
		return nil, storeError("update project", err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

// DeleteProject removes a project that is not approved together with its
// tasks, advisor links, grades and the team's submissions.
func (s *ProjectService) DeleteProject(ctx context.Context, actor Actor, projectID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_project", &err)

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		project, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if err := requireTeamMember(r, actor, project.TeamID); err != nil {
			return err
		}
		if err := requireEditable(project); err != nil {
			return err
		}

		result, err = cascade.NewExecutor(r.DB()).Run(cascade.ForProject(project.ID, project.TeamID))
		return err
	})
	if err != nil {
		return nil, storeError("delete project", err, nil)
	}

	result.Record()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"rows":       result.Total(),
	}).Info("project deleted")
	return result, nil
}

// AssignAdvisor replaces the project's advisor links with a single link to the
// requested advisor and moves the project to PENDING. The advisor's row is
// locked while their approved projects are counted, so concurrent requests for
// the same advisor are serialized.
func (s *ProjectService) AssignAdvisor(ctx context.Context, actor Actor, projectID uuid.UUID, req *AssignAdvisorRequest) (project *models.Project, err error) {
	defer track(ctx, "assign_advisor", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if err := requireTeamMember(r, actor, current.TeamID); err != nil {
			return err
		}
		if err := requireEditable(current); err != nil {
			return err
		}

		advisor, err := r.Users.LockByID(req.AdvisorID)
		if err != nil {
			return storeError("lock advisor", err, apperrors.ErrUserNotFound)
		}
		if advisor.Role != models.UserRoleAdvisor {
			return apperrors.NewValidationError("advisor_id", "user is not an advisor")
		}
		if err := checkAdvisorCapacity(r, advisor.ID); err != nil {
			return err
		}

		next, err := current.Status.Transition(models.ProjectEventRequestAdvisor)
		if err != nil {
			return err
		}
		if _, err := r.ProjectAdvisors.DeleteByProject(projectID); err != nil {
			return fmt.Errorf("failed to clear advisor links: %w", err)
		}
		if err := r.ProjectAdvisors.Create(&models.ProjectAdvisor{ProjectID: projectID, AdvisorID: advisor.ID}); err != nil {
			return fmt.Errorf("failed to link advisor: %w", err)
		}
		if err := r.Projects.UpdateStatus(projectID, next); err != nil {
			return fmt.Errorf("failed to update project status: %w", err)
		}

		teamID := current.TeamID
		message := fmt.Sprintf("Advising requested for project %q", current.ProjectName)
		if err := notifyUsers(r, []uuid.UUID{advisor.ID}, models.NotificationAdvisorRequested, message, &teamID, nil); err != nil {
			return err
		}

		project, err = r.Projects.GetWithDetails(projectID)
		return err
	})
	if err != nil {
		return nil, storeError("assign advisor", err, apperrors.ErrProjectNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"advisor_id": req.AdvisorID,
	}).Info("advisor requested")
	return project, nil
}

// RemoveAdvisor clears every advisor link and returns the project to DRAFT
func (s *ProjectService) RemoveAdvisor(ctx context.Context, actor Actor, projectID uuid.UUID) (project *models.Project, err error) {
	defer track(ctx, "remove_advisor", &err)

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if err := requireTeamMember(r, actor, current.TeamID); err != nil {
			return err
		}
		if err := requireEditable(current); err != nil {
			return err
		}

		next, err := current.Status.Transition(models.ProjectEventRemoveAdvisor)
		if err != nil {
			return err
		}
		if _, err := r.ProjectAdvisors.DeleteByProject(projectID); err != nil {
			return fmt.Errorf("failed to clear advisor links: %w", err)
		}
		if err := r.Projects.UpdateStatus(projectID, next); err != nil {
			return fmt.Errorf("failed to update project status: %w", err)
		}

		project, err = r.Projects.GetWithDetails(projectID)
		return err
	})
	if err != nil {
		return nil, storeError("remove advisor", err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

// SetProjectStatus applies an advisor's decision. Approval re-checks the
// capacity of every linked advisor; rejection clears the advisor links.
func (s *ProjectService) SetProjectStatus(ctx context.Context, actor Actor, projectID uuid.UUID, req *SetProjectStatusRequest) (project *models.Project, err error) {
	defer track(ctx, "set_project_status", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	event, ok := models.ProjectEventFor(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", "must be APPROVED or REJECTED")
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, err := r.Projects.GetByID(projectID)
		if err != nil {
			return storeError("get project", err, apperrors.ErrProjectNotFound)
		}
		if !actor.IsAdmin() {
			linked, err := r.ProjectAdvisors.Exists(projectID, actor.ID)
			if err != nil {
				return fmt.Errorf("failed to check advisor link: %w", err)
			}
			if !linked {
				return apperrors.ErrForbidden
			}
		}

		next, err := current.Status.Transition(event)
		if err != nil {
			return err
		}

		notification := models.NotificationProjectRejected
		switch next {
		case models.ProjectStatusApproved:
			notification = models.NotificationProjectApproved
			advisorIDs, err := r.ProjectAdvisors.ListAdvisorIDs(projectID)
			if err != nil {
				return fmt.Errorf("failed to list advisors: %w", err)
			}
			for _, advisorID := range advisorIDs {
				if _, err := r.Users.LockByID(advisorID); err != nil {
					return storeError("lock advisor", err, apperrors.ErrUserNotFound)
				}
				if err := checkAdvisorCapacity(r, advisorID); err != nil {
					return err
				}
			}
		case models.ProjectStatusRejected:
			if _, err := r.ProjectAdvisors.DeleteByProject(projectID); err != nil {
				return fmt.Errorf("failed to clear advisor links: %w", err)
			}
		}

		if err := r.Projects.UpdateStatus(projectID, next); err != nil {
			return fmt.Errorf("failed to update project status: %w", err)
		}

		memberIDs, err := r.Members.ListUserIDs([]uuid.UUID{current.TeamID})
		if err != nil {
			return fmt.Errorf("failed to list team members: %w", err)
		}
		teamID := current.TeamID
		message := fmt.Sprintf("Project %q is now %s", current.ProjectName, next)
		if err := notifyUsers(r, memberIDs, notification, message, &teamID, nil); err != nil {
			return err
		}

		project, err = r.Projects.GetWithDetails(projectID)
		return err
	})
	if err != nil {
		return nil, storeError("set project status", err, apperrors.ErrProjectNotFound)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project_id": projectID,
		"status":     project.Status,
	}).Info("project status changed")
	return project, nil
}

// GetProject returns a project with its team and advisors
func (s *ProjectService) GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.store.Read(ctx).Projects.GetWithDetails(projectID)
	if err != nil {
		return nil, storeError("get project", err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

// checkAdvisorCapacity fails when the advisor already oversees the maximum
// number of approved projects. Callers must hold the advisor's row lock.
func checkAdvisorCapacity(r *repository.Registry, advisorID uuid.UUID) error {
	approved, err := r.Projects.CountApprovedByAdvisor(advisorID)
	if err != nil {
		return fmt.Errorf("failed to count approved projects: %w", err)
	}
	if approved >= models.MaxApprovedProjectsPerAdvisor {
		return apperrors.ErrAdvisorFull
	}
	return nil
}
