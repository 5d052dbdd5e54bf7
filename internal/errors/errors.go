package errors

import (
	"errors"
	"fmt"
)

// Kind is the discriminator callers switch on
type Kind string

const (
	KindNotFound       Kind = "NotFound"
	KindForbidden      Kind = "Forbidden"
	KindConflict       Kind = "Conflict"
	KindInvalidState   Kind = "InvalidState"
	KindValidation     Kind = "ValidationError"
	KindEmptySelection Kind = "EmptySelection"
	KindInternal       Kind = "Internal"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Code    string
	Entity  string
	Context string // Additional context like "in this section"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Code == t.Code
}

// ErrorCode returns the machine readable code
func (e *AlreadyExistsError) ErrorCode() string { return e.Code }

// ConflictError represents a violated capacity or membership constraint
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// ErrorCode returns the machine readable code
func (e *ConflictError) ErrorCode() string { return e.Code }

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents an actor lacking membership or role
type AuthorizationError struct {
	Code    string
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// ErrorCode returns the machine readable code
func (e *AuthorizationError) ErrorCode() string { return e.Code }

// InvalidStateError represents a transition that is not legal from the current status
type InvalidStateError struct {
	Code    string
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	t, ok := target.(*InvalidStateError)
	if !ok {
		return false
	}
	return t.Code == "" || e.Code == t.Code
}

// ErrorCode returns the machine readable code
func (e *InvalidStateError) ErrorCode() string { return e.Code }

// EmptySelectionError is returned when a rollover matches no teams
type EmptySelectionError struct {
	Message string
}

func (e *EmptySelectionError) Error() string {
	return e.Message
}

// InternalError hides store specific failures from callers
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: internal error", e.Op)
}

// Unwrap exposes the underlying failure for logging
func (e *InternalError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrTermNotFound       = &NotFoundError{Entity: "term"}
	ErrSectionNotFound    = &NotFoundError{Entity: "section"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrTaskNotFound       = &NotFoundError{Entity: "task"}
	ErrEventNotFound      = &NotFoundError{Entity: "event"}
	ErrSubmissionNotFound = &NotFoundError{Entity: "submission"}
)

// Already Exists Errors
var (
	ErrDuplicateTeam    = &AlreadyExistsError{Code: "DuplicateTeam", Entity: "team", Context: "for this student in the section"}
	ErrDuplicateProject = &AlreadyExistsError{Code: "DuplicateProject", Entity: "project", Context: "for this team"}
	ErrTermExists       = &AlreadyExistsError{Code: "DuplicateTerm", Entity: "term", Context: "for this academic year and semester"}
)

// Conflict Errors
var (
	ErrAlreadyMember      = &ConflictError{Code: "AlreadyMember", Message: "user already belongs to a team in this section"}
	ErrTeamFull           = &ConflictError{Code: "TeamFull", Message: "team has reached the section's maximum team size"}
	ErrLastMember         = &ConflictError{Code: "LastMember", Message: "a team must keep at least one member"}
	ErrAdvisorFull        = &ConflictError{Code: "AdvisorFull", Message: "advisor already oversees the maximum number of approved projects"}
	ErrSectionInUse       = &ConflictError{Code: "SectionInUse", Message: "section is still referenced by teams"}
	ErrTeamOverCapacity   = &ConflictError{Code: "TeamOverCapacity", Message: "a team in the section has more members than the new maximum"}
	ErrAdvisorHasApproved = &ConflictError{Code: "AdvisorHasApprovedProjects", Message: "advisor still oversees approved projects"}
	ErrConcurrentUpdate   = &ConflictError{Code: "ConcurrentUpdate", Message: "the record was changed by another request"}
)

// Authorization Errors
var (
	ErrForbidden           = &AuthorizationError{Code: "Forbidden", Message: "actor is not allowed to perform this action"}
	ErrNotEnrolled         = &AuthorizationError{Code: "NotEnrolled", Message: "student is not enrolled in this section"}
	ErrNotTeamMember       = &AuthorizationError{Code: "NotTeamMember", Message: "actor is not a member of this team"}
	ErrSelfDeleteForbidden = &AuthorizationError{Code: "SelfDeleteForbidden", Message: "administrators cannot delete their own account"}
)

// Invalid State Errors
var (
	ErrApprovedLocked    = &InvalidStateError{Code: "ApprovedLocked", Message: "project is approved and can no longer be changed"}
	ErrTeamLocked        = &InvalidStateError{Code: "TeamLocked", Message: "team composition is locked for this section"}
	ErrInvalidCourseType = &InvalidStateError{Code: "InvalidCourseType", Message: "only PRE_PROJECT sections can be rolled over"}
	ErrInvalidTransition = &InvalidStateError{Code: "InvalidTransition"}
)

// ErrEmptySelection is returned when no requested team belongs to the source section
var ErrEmptySelection = &EmptySelectionError{Message: "no teams matched the rollover selection"}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// KindOf classifies err. Unknown errors are Internal.
func KindOf(err error) Kind {
	var (
		notFound *NotFoundError
		exists   *AlreadyExistsError
		conflict *ConflictError
		validErr *ValidationError
		authzErr *AuthorizationError
		stateErr *InvalidStateError
		emptySel *EmptySelectionError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &authzErr):
		return KindForbidden
	case errors.As(err, &exists), errors.As(err, &conflict):
		return KindConflict
	case errors.As(err, &stateErr):
		return KindInvalidState
	case errors.As(err, &validErr):
		return KindValidation
	case errors.As(err, &emptySel):
		return KindEmptySelection
	}
	return KindInternal
}

// CodeOf returns the machine readable code carried by err, or its kind.
func CodeOf(err error) string {
	var coded interface{ ErrorCode() string }
	if errors.As(err, &coded) && coded.ErrorCode() != "" {
		return coded.ErrorCode()
	}
	return string(KindOf(err))
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Code: "Forbidden", Message: message}
}

// NewInvalidStateError creates an InvalidStateError for an illegal transition
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Code: "InvalidTransition", Message: message}
}

// NewInternalError wraps a store failure
func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
