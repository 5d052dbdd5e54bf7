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

// MembershipService manages team creation and team composition
type MembershipService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(store *repository.Store, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		store:     store,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team in a section
type CreateTeamRequest struct {
	// StudentID is the sole initial member; students may only pass their own id
	StudentID *uuid.UUID `json:"student_id,omitempty"`
}

// AddMemberRequest represents the request to add a member to a team
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

// RemoveMemberResult describes what removing a member did
type RemoveMemberResult struct {
	TeamID      uuid.UUID        `json:"team_id"`
	UserID      uuid.UUID        `json:"user_id"`
	TeamDeleted bool             `json:"team_deleted"`
	Deleted     map[string]int64 `json:"deleted,omitempty"`
}

// CreateTeam creates a placeholder team in the section with one student as
// its only member.
func (s *MembershipService) CreateTeam(ctx context.Context, actor Actor, sectionID uuid.UUID, req *CreateTeamRequest) (team *models.Team, err error) {
	defer track(ctx, "create_team", &err)

	studentID := actor.ID
	if req != nil && req.StudentID != nil {
		studentID = *req.StudentID
	}
	if studentID != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		section, err := r.Sections.GetWithTerm(sectionID)
		if err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		if section.TeamLocked && !actor.IsAdmin() {
			return apperrors.ErrTeamLocked
		}

		// serializes membership changes of one student
		if _, err := r.Users.LockByID(studentID); err != nil {
			return storeError("lock student", err, apperrors.ErrUserNotFound)
		}

		enrolled, err := r.Enrollments.Exists(studentID, sectionID)
		if err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		if !enrolled {
			return apperrors.ErrNotEnrolled
		}

		if _, err := r.Teams.FindByUserInSection(studentID, sectionID); err == nil {
			return apperrors.ErrDuplicateTeam
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing team: %w", err)
		}

		semester := ""
		if section.Term != nil {
			semester = section.Term.Label()
		}
		team = &models.Team{
			Name:      models.PlaceholderTeamName,
			SectionID: sectionID,
			Semester:  semester,
		}
		if err := r.Teams.Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		if err := r.Members.Create(&models.TeamMember{TeamID: team.ID, UserID: studentID}); err != nil {
			return fmt.Errorf("failed to add creator to team: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create team", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":    team.ID,
		"section_id": sectionID,
		"student_id": studentID,
	}).Info("team created")
	return team, nil
}

// AddMember adds an enrolled student to a team
func (s *MembershipService) AddMember(ctx context.Context, actor Actor, teamID uuid.UUID, req *AddMemberRequest) (member *models.TeamMember, err error) {
	defer track(ctx, "add_member", &err)

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		team, err := r.Teams.GetByID(teamID)
		if err != nil {
			return storeError("get team", err, apperrors.ErrTeamNotFound)
		}
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

		section, err := r.Sections.GetByID(team.SectionID)
		if err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		if section.TeamLocked && !actor.IsAdmin() {
			return apperrors.ErrTeamLocked
		}

		if _, err := r.Users.LockByID(req.UserID); err != nil {
			return storeError("lock user", err, apperrors.ErrUserNotFound)
		}
		enrolled, err := r.Enrollments.Exists(req.UserID, section.ID)
		if err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		if !enrolled {
			return apperrors.ErrNotEnrolled
		}

		if _, err := r.Teams.FindByUserInSection(req.UserID, section.ID); err == nil {
			return apperrors.ErrAlreadyMember
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing team: %w", err)
		}

		count, err := r.Members.CountByTeam(teamID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if int(count) >= section.MaxTeamSize {
			return apperrors.ErrTeamFull
		}

		member = &models.TeamMember{TeamID: teamID, UserID: req.UserID}
		if err := r.Members.Create(member); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("add member", err, nil)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"user_id": req.UserID,
	}).Info("member added")
	return member, nil
}

// RemoveMember removes a member from a team. When the last member leaves, the
// team and everything it owns are deleted in the same transaction.
func (s *MembershipService) RemoveMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID) (result *RemoveMemberResult, err error) {
	defer track(ctx, "remove_member", &err)

	var removed *cascade.Result
	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		team, err := r.Teams.GetByID(teamID)
		if err != nil {
			return storeError("get team", err, apperrors.ErrTeamNotFound)
		}

		self := actor.ID == userID
		if !self {
			if err := requireTeamMember(r, actor, teamID); err != nil {
				return err
			}
		}

		project, err := findProjectForTeam(r, teamID)
		if err != nil {
			return err
		}
		if err := requireEditable(project); err != nil {
			return err
		}

		section, err := r.Sections.GetByID(team.SectionID)
		if err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		if section.TeamLocked && !actor.IsAdmin() {
			return apperrors.ErrTeamLocked
		}

		isMember, err := r.Members.Exists(teamID, userID)
		if err != nil {
			return fmt.Errorf("failed to check membership: %w", err)
		}
		if !isMember {
			return apperrors.ErrMemberNotFound
		}

		count, err := r.Members.CountByTeam(teamID)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}
		if count <= 1 {
			if !self && !actor.IsAdmin() {
				return apperrors.ErrLastMember
			}
			removed, err = cascade.NewExecutor(r.DB()).Run(cascade.ForTeam(teamID))
			return err
		}

		if _, err := r.Members.Delete(teamID, userID); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("remove member", err, nil)
	}

	result = &RemoveMemberResult{TeamID: teamID, UserID: userID}
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": teamID,
		"user_id": userID,
	})
	if removed != nil {
		removed.Record()
		result.TeamDeleted = true
		result.Deleted = removed.Deleted
		log.WithField("rows", removed.Total()).Info("last member left, team deleted")
	} else {
		log.Info("member removed")
	}
	return result, nil
}

// GetTeam returns a team with its section, members and project
func (s *MembershipService) GetTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.store.Read(ctx).Teams.GetWithDetails(teamID)
	if err != nil {
		return nil, storeError("get team", err, apperrors.ErrTeamNotFound)
	}
	return team, nil
}
