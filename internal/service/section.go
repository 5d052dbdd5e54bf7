package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/logger"
	"capstone-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// SectionService manages terms, sections and enrollments
type SectionService struct {
	store     *repository.Store
	validator *validator.Validate
}

// NewSectionService creates a new section service
func NewSectionService(store *repository.Store, validator *validator.Validate) *SectionService {
	return &SectionService{
		store:     store,
		validator: validator,
	}
}

// CreateTermRequest represents the request to create a term
type CreateTermRequest struct {
	AcademicYear int       `json:"academic_year" validate:"required,min=2000,max=3000"`
	Semester     int       `json:"semester" validate:"required,min=1,max=3"`
	StartDate    time.Time `json:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

// CreateSectionRequest represents the request to create a section
type CreateSectionRequest struct {
	Code        string            `json:"code" validate:"required,max=40"`
	CourseType  models.CourseType `json:"course_type" validate:"required,oneof=PRE_PROJECT PROJECT"`
	StudyType   string            `json:"study_type" validate:"max=40"`
	TermID      uuid.UUID         `json:"term_id" validate:"required"`
	MinTeamSize int               `json:"min_team_size" validate:"required,min=1"`
	MaxTeamSize int               `json:"max_team_size" validate:"required,min=1"`
}

// UpdateSectionSettingsRequest changes the mutable settings of a section
type UpdateSectionSettingsRequest struct {
	TeamLocked  *bool `json:"team_locked,omitempty"`
	MinTeamSize *int  `json:"min_team_size,omitempty" validate:"omitempty,min=1"`
	MaxTeamSize *int  `json:"max_team_size,omitempty" validate:"omitempty,min=1"`
}

// EnrollStudentsRequest enrolls a batch of students in a section
type EnrollStudentsRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

// EnrollStudentsResult reports how many enrollments were created
type EnrollStudentsResult struct {
	Requested int   `json:"requested"`
	Enrolled  int64 `json:"enrolled"`
}

// CreateTerm creates an academic term
func (s *SectionService) CreateTerm(ctx context.Context, actor Actor, req *CreateTermRequest) (term *models.Term, err error) {
	defer track(ctx, "create_term", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Terms.GetByYearAndSemester(req.AcademicYear, req.Semester); err == nil {
			return apperrors.ErrTermExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing term: %w", err)
		}

		term = &models.Term{
			AcademicYear: req.AcademicYear,
			Semester:     req.Semester,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
		}
		if err := r.Terms.Create(term); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrTermExists
			}
			return fmt.Errorf("failed to create term: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create term", err, nil)
	}
	return term, nil
}

// CreateSection creates a section in a term
func (s *SectionService) CreateSection(ctx context.Context, actor Actor, req *CreateSectionRequest) (section *models.Section, err error) {
	defer track(ctx, "create_section", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.MinTeamSize > req.MaxTeamSize {
		return nil, apperrors.NewValidationError("min_team_size", "must not exceed max_team_size")
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Terms.GetByID(req.TermID); err != nil {
			return storeError("get term", err, apperrors.ErrTermNotFound)
		}
		section = &models.Section{
			Code:        req.Code,
			CourseType:  req.CourseType,
			StudyType:   req.StudyType,
			TermID:      req.TermID,
			MinTeamSize: req.MinTeamSize,
			MaxTeamSize: req.MaxTeamSize,
		}
		if err := r.Sections.Create(section); err != nil {
			return fmt.Errorf("failed to create section: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create section", err, nil)
	}
	return section, nil
}

// UpdateSectionSettings changes the team lock and size bounds of a section
func (s *SectionService) UpdateSectionSettings(ctx context.Context, actor Actor, sectionID uuid.UUID, req *UpdateSectionSettingsRequest) (section *models.Section, err error) {
	defer track(ctx, "update_section_settings", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		current, err := r.Sections.GetByID(sectionID)
		if err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}

		minSize, maxSize := current.MinTeamSize, current.MaxTeamSize
		fields := map[string]interface{}{}
		if req.TeamLocked != nil {
			fields["team_locked"] = *req.TeamLocked
		}
		if req.MinTeamSize != nil {
			minSize = *req.MinTeamSize
			fields["min_team_size"] = minSize
		}
		if req.MaxTeamSize != nil {
			maxSize = *req.MaxTeamSize
			fields["max_team_size"] = maxSize
		}
		if minSize > maxSize {
			return apperrors.NewValidationError("min_team_size", "must not exceed max_team_size")
		}
		if maxSize < current.MaxTeamSize {
			largest, err := r.Members.MaxCountInSection(sectionID)
			if err != nil {
				return fmt.Errorf("failed to count team members: %w", err)
			}
			if largest > int64(maxSize) {
				return apperrors.ErrTeamOverCapacity
			}
		}
		if len(fields) > 0 {
			if err := r.Sections.UpdateFields(sectionID, fields); err != nil {
				return fmt.Errorf("failed to update section: %w", err)
			}
		}

		section, err = r.Sections.GetByID(sectionID)
		return err
	})
	if err != nil {
		return nil, storeError("update section settings", err, apperrors.ErrSectionNotFound)
	}
	return section, nil
}

// DeleteSection removes a section that no team references, along with its
// events, their submissions and its enrollments.
func (s *SectionService) DeleteSection(ctx context.Context, actor Actor, sectionID uuid.UUID) (result *cascade.Result, err error) {
	defer track(ctx, "delete_section", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Sections.GetByID(sectionID); err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		teams, err := r.Sections.CountTeams(sectionID)
		if err != nil {
			return fmt.Errorf("failed to count teams: %w", err)
		}
		if teams > 0 {
			return apperrors.ErrSectionInUse
		}
		result, err = cascade.NewExecutor(r.DB()).Run(cascade.ForSection(sectionID))
		return err
	})
	if err != nil {
		return nil, storeError("delete section", err, nil)
	}

	result.Record()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"section_id": sectionID,
		"rows":       result.Total(),
	}).Info("section deleted")
	return result, nil
}

// EnrollStudents enrolls existing users in a section. Users that are already
// enrolled are skipped.
func (s *SectionService) EnrollStudents(ctx context.Context, actor Actor, sectionID uuid.UUID, req *EnrollStudentsRequest) (result *EnrollStudentsResult, err error) {
	defer track(ctx, "enroll_students", &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	unique := make([]uuid.UUID, 0, len(req.UserIDs))
	seen := make(map[uuid.UUID]struct{}, len(req.UserIDs))
	for _, id := range req.UserIDs {
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}

	err = s.store.WithTransaction(ctx, func(r *repository.Registry) error {
		if _, err := r.Sections.GetByID(sectionID); err != nil {
			return storeError("get section", err, apperrors.ErrSectionNotFound)
		}
		users, err := r.Users.GetByIDs(unique)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		if len(users) != len(unique) {
			return apperrors.ErrUserNotFound
		}

		rows := make([]models.Enrollment, 0, len(users))
		for _, user := range users {
			rows = append(rows, models.Enrollment{UserID: user.ID, SectionID: sectionID})
		}
		enrolled, err := r.Enrollments.CreateIgnoringDuplicates(rows)
		if err != nil {
			return fmt.Errorf("failed to enroll students: %w", err)
		}
		result = &EnrollStudentsResult{Requested: len(req.UserIDs), Enrolled: enrolled}
		return nil
	})
	if err != nil {
		return nil, storeError("enroll students", err, nil)
	}
	return result, nil
}

var rosterHeader = []string{"Student No", "Full Name", "Email", "Team", "Project", "Project Status"}

// ExportRoster renders the section's enrollments with their team and project
// as an xlsx workbook. It returns the file content and a suggested file name.
func (s *SectionService) ExportRoster(ctx context.Context, actor Actor, sectionID uuid.UUID) (*bytes.Buffer, string, error) {
	if !actor.IsStaff() {
		return nil, "", apperrors.ErrForbidden
	}

	read := s.store.Read(ctx)
	section, err := read.Sections.GetWithTerm(sectionID)
	if err != nil {
		return nil, "", storeError("get section", err, apperrors.ErrSectionNotFound)
	}
	enrollments, err := read.Enrollments.ListBySection(sectionID)
	if err != nil {
		return nil, "", storeError("list enrollments", err, nil)
	}
	teams, err := read.Teams.ListWithDetailsBySection(sectionID)
	if err != nil {
		return nil, "", storeError("list teams", err, nil)
	}

	teamOf := make(map[uuid.UUID]*models.Team)
	for i := range teams {
		for _, member := range teams[i].Members {
			teamOf[member.UserID] = &teams[i]
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Roster"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", apperrors.NewInternalError("export roster", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "D", "E", 28)
	f.SetColWidth(sheet, "F", "F", 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	for i, title := range rosterHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	for i, enrollment := range enrollments {
		row := i + 2
		values := make([]interface{}, len(rosterHeader))
		for j := range values {
			values[j] = ""
		}
		if enrollment.User != nil {
			values[0] = enrollment.User.StudentNo
			values[1] = enrollment.User.FullName
			values[2] = enrollment.User.Email
		}
		if team, ok := teamOf[enrollment.UserID]; ok {
			values[3] = team.Name
			if team.Project != nil {
				values[4] = team.Project.ProjectName
				values[5] = string(team.Project.Status)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", apperrors.NewInternalError("export roster", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to write roster workbook")
		return nil, "", apperrors.NewInternalError("export roster", err)
	}

	label := ""
	if section.Term != nil {
		label = "_" + fmt.Sprintf("%d-%d", section.Term.AcademicYear, section.Term.Semester)
	}
	filename := fmt.Sprintf("roster_%s%s.xlsx", section.Code, label)
	return buf, filename, nil
}
