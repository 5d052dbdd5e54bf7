package models

import "fmt"

// CourseType distinguishes preparatory sections from project sections
type CourseType string

const (
	CourseTypePreProject CourseType = "PRE_PROJECT"
	CourseTypeProject    CourseType = "PROJECT"
)

// IsValid checks if the CourseType is valid
func (c CourseType) IsValid() bool {
	switch c {
	case CourseTypePreProject, CourseTypeProject:
		return true
	}
	return false
}

// ProjectStatus represents the approval state of a project
type ProjectStatus string

const (
	ProjectStatusDraft    ProjectStatus = "DRAFT"
	ProjectStatusPending  ProjectStatus = "PENDING"
	ProjectStatusApproved ProjectStatus = "APPROVED"
	ProjectStatusRejected ProjectStatus = "REJECTED"
)

// ProjectEvent is something that moves a project between states
type ProjectEvent string

const (
	ProjectEventRequestAdvisor ProjectEvent = "request_advisor"
	ProjectEventRemoveAdvisor  ProjectEvent = "remove_advisor"
	ProjectEventApprove        ProjectEvent = "approve"
	ProjectEventReject         ProjectEvent = "reject"
)

type projectEdge struct {
	from  ProjectStatus
	event ProjectEvent
}

var projectTransitions = map[projectEdge]ProjectStatus{
	{ProjectStatusDraft, ProjectEventRequestAdvisor}:    ProjectStatusPending,
	{ProjectStatusPending, ProjectEventRequestAdvisor}:  ProjectStatusPending,
	{ProjectStatusRejected, ProjectEventRequestAdvisor}: ProjectStatusPending,
	{ProjectStatusDraft, ProjectEventRemoveAdvisor}:     ProjectStatusDraft,
	{ProjectStatusPending, ProjectEventRemoveAdvisor}:   ProjectStatusDraft,
	{ProjectStatusRejected, ProjectEventRemoveAdvisor}:  ProjectStatusDraft,
	{ProjectStatusPending, ProjectEventApprove}:         ProjectStatusApproved,
	{ProjectStatusPending, ProjectEventReject}:          ProjectStatusRejected,
}

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusPending, ProjectStatusApproved, ProjectStatusRejected:
		return true
	}
	return false
}

// Editable reports whether students may still change the project, its team or its tasks
func (s ProjectStatus) Editable() bool {
	return s != ProjectStatusApproved
}

// Transition returns the state reached by applying event, or an error when the
// event is not legal from s.
func (s ProjectStatus) Transition(event ProjectEvent) (ProjectStatus, error) {
	next, ok := projectTransitions[projectEdge{s, event}]
	if !ok {
		return s, &TransitionError{Entity: "project", From: string(s), Event: string(event)}
	}
	return next, nil
}

// ProjectEventFor maps a requested target status to the event an advisor triggers.
func ProjectEventFor(target ProjectStatus) (ProjectEvent, bool) {
	switch target {
	case ProjectStatusApproved:
		return ProjectEventApprove, true
	case ProjectStatusRejected:
		return ProjectEventReject, true
	}
	return "", false
}

// TaskStatus is the kanban column of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone:
		return true
	}
	return false
}

// Transition validates a column move. Any column is reachable from any other.
func (s TaskStatus) Transition(to TaskStatus) (TaskStatus, error) {
	if !to.IsValid() {
		return s, &TransitionError{Entity: "task", From: string(s), Event: "move to " + string(to)}
	}
	return to, nil
}

// SubmissionStatus represents the review state of a submission
type SubmissionStatus string

const (
	SubmissionStatusPending       SubmissionStatus = "PENDING"
	SubmissionStatusSubmitted     SubmissionStatus = "SUBMITTED"
	SubmissionStatusNeedsRevision SubmissionStatus = "NEEDS_REVISION"
	SubmissionStatusApproved      SubmissionStatus = "APPROVED"
)

// SubmissionEvent is something that moves a submission between states
type SubmissionEvent string

const (
	SubmissionEventSubmit  SubmissionEvent = "submit"
	SubmissionEventApprove SubmissionEvent = "approve"
	SubmissionEventReject  SubmissionEvent = "reject"
)

type submissionEdge struct {
	from  SubmissionStatus
	event SubmissionEvent
}

var submissionTransitions = map[submissionEdge]SubmissionStatus{
	{SubmissionStatusPending, SubmissionEventSubmit}:       SubmissionStatusSubmitted,
	{SubmissionStatusSubmitted, SubmissionEventSubmit}:     SubmissionStatusSubmitted,
	{SubmissionStatusNeedsRevision, SubmissionEventSubmit}: SubmissionStatusSubmitted,
	{SubmissionStatusSubmitted, SubmissionEventApprove}:    SubmissionStatusApproved,
	{SubmissionStatusSubmitted, SubmissionEventReject}:     SubmissionStatusNeedsRevision,
	{SubmissionStatusApproved, SubmissionEventReject}:      SubmissionStatusNeedsRevision,
}

// IsValid checks if the SubmissionStatus is valid
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusSubmitted, SubmissionStatusNeedsRevision, SubmissionStatusApproved:
		return true
	}
	return false
}

// Transition returns the state reached by applying event, or an error when the
// event is not legal from s.
func (s SubmissionStatus) Transition(event SubmissionEvent) (SubmissionStatus, error) {
	next, ok := submissionTransitions[submissionEdge{s, event}]
	if !ok {
		return s, &TransitionError{Entity: "submission", From: string(s), Event: string(event)}
	}
	return next, nil
}

// TransitionError reports an illegal state change
type TransitionError struct {
	Entity string
	From   string
	Event  string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot %s from status %s", e.Entity, e.Event, e.From)
}
