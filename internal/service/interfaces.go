package service

import (
	"bytes"
	"context"

	"capstone-backend/internal/cascade"
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	CreateTeam(ctx context.Context, actor Actor, sectionID uuid.UUID, req *CreateTeamRequest) (*models.Team, error)
	AddMember(ctx context.Context, actor Actor, teamID uuid.UUID, req *AddMemberRequest) (*models.TeamMember, error)
	RemoveMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID) (*RemoveMemberResult, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, actor Actor, teamID uuid.UUID, req *CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, actor Actor, projectID uuid.UUID, req *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, actor Actor, projectID uuid.UUID) (*cascade.Result, error)
	AssignAdvisor(ctx context.Context, actor Actor, projectID uuid.UUID, req *AssignAdvisorRequest) (*models.Project, error)
	RemoveAdvisor(ctx context.Context, actor Actor, projectID uuid.UUID) (*models.Project, error)
	SetProjectStatus(ctx context.Context, actor Actor, projectID uuid.UUID, req *SetProjectStatusRequest) (*models.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error)
}

// RolloverServiceInterface defines the interface for rollover service
type RolloverServiceInterface interface {
	RolloverSection(ctx context.Context, actor Actor, sectionID uuid.UUID, req *RolloverRequest) (*RolloverResult, error)
}

// DeletionServiceInterface defines the interface for deletion service
type DeletionServiceInterface interface {
	DeleteTeam(ctx context.Context, actor Actor, teamID uuid.UUID) (*cascade.Result, error)
	DeleteEvent(ctx context.Context, actor Actor, eventID uuid.UUID) (*cascade.Result, error)
	DeleteUser(ctx context.Context, actor Actor, userID uuid.UUID) (*cascade.Result, error)
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, actor Actor, projectID uuid.UUID, req *CreateTaskRequest) (*models.Task, error)
	MoveTask(ctx context.Context, actor Actor, taskID uuid.UUID, req *MoveTaskRequest) (*models.Task, error)
	AssignTask(ctx context.Context, actor Actor, taskID uuid.UUID, req *AssignTaskRequest) (*models.Task, error)
	AddComment(ctx context.Context, actor Actor, taskID uuid.UUID, req *AddCommentRequest) (*models.Comment, error)
	DeleteTask(ctx context.Context, actor Actor, taskID uuid.UUID) (*cascade.Result, error)
}

// SubmissionServiceInterface defines the interface for submission service
type SubmissionServiceInterface interface {
	CreateEvent(ctx context.Context, actor Actor, sectionID uuid.UUID, req *CreateEventRequest) (*EventResponse, error)
	Submit(ctx context.Context, actor Actor, submissionID uuid.UUID, req *SubmitRequest) (*models.Submission, error)
	Approve(ctx context.Context, actor Actor, submissionID uuid.UUID) (*models.Submission, error)
	Reject(ctx context.Context, actor Actor, submissionID uuid.UUID, req *RejectSubmissionRequest) (*models.Submission, error)
}

// SectionServiceInterface defines the interface for section service
type SectionServiceInterface interface {
	CreateTerm(ctx context.Context, actor Actor, req *CreateTermRequest) (*models.Term, error)
	CreateSection(ctx context.Context, actor Actor, req *CreateSectionRequest) (*models.Section, error)
	UpdateSectionSettings(ctx context.Context, actor Actor, sectionID uuid.UUID, req *UpdateSectionSettingsRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, actor Actor, sectionID uuid.UUID) (*cascade.Result, error)
	EnrollStudents(ctx context.Context, actor Actor, sectionID uuid.UUID, req *EnrollStudentsRequest) (*EnrollStudentsResult, error)
	ExportRoster(ctx context.Context, actor Actor, sectionID uuid.UUID) (*bytes.Buffer, string, error)
}

// GradeServiceInterface defines the interface for grade service
type GradeServiceInterface interface {
	UpsertGrade(ctx context.Context, actor Actor, req *UpsertGradeRequest) (*models.Grade, error)
}

var (
	_ MembershipServiceInterface = (*MembershipService)(nil)
	_ ProjectServiceInterface    = (*ProjectService)(nil)
	_ RolloverServiceInterface   = (*RolloverService)(nil)
	_ DeletionServiceInterface   = (*DeletionService)(nil)
	_ TaskServiceInterface       = (*TaskService)(nil)
	_ SubmissionServiceInterface = (*SubmissionService)(nil)
	_ SectionServiceInterface    = (*SectionService)(nil)
	_ GradeServiceInterface      = (*GradeService)(nil)
)
