package repository

import (
	"context"

	"gorm.io/gorm"
)

// Registry bundles every repository bound to the same handle, either the root
// connection or an open transaction.
type Registry struct {
	db *gorm.DB

	Users           *UserRepository
	Terms           *TermRepository
	Sections        *SectionRepository
	Enrollments     *EnrollmentRepository
	Teams           *TeamRepository
	Members         *TeamMemberRepository
	Projects        *ProjectRepository
	ProjectAdvisors *ProjectAdvisorRepository
	Tasks           *TaskRepository
	Comments        *CommentRepository
	Notifications   *NotificationRepository
	Events          *EventRepository
	Submissions     *SubmissionRepository
	Grades          *GradeRepository
}

// NewRegistry creates repositories sharing db
func NewRegistry(db *gorm.DB) *Registry {
	return &Registry{
		db:              db,
		Users:           NewUserRepository(db),
		Terms:           NewTermRepository(db),
		Sections:        NewSectionRepository(db),
		Enrollments:     NewEnrollmentRepository(db),
		Teams:           NewTeamRepository(db),
		Members:         NewTeamMemberRepository(db),
		Projects:        NewProjectRepository(db),
		ProjectAdvisors: NewProjectAdvisorRepository(db),
		Tasks:           NewTaskRepository(db),
		Comments:        NewCommentRepository(db),
		Notifications:   NewNotificationRepository(db),
		Events:          NewEventRepository(db),
		Submissions:     NewSubmissionRepository(db),
		Grades:          NewGradeRepository(db),
	}
}

// DB returns the handle the registry is bound to
func (r *Registry) DB() *gorm.DB {
	return r.db
}

// Store gives transactional access to the relational schema
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Read returns repositories bound to ctx outside of any transaction
func (s *Store) Read(ctx context.Context) *Registry {
	return NewRegistry(s.db.WithContext(ctx))
}

// WithTransaction runs fn in one database transaction. Any error returned by fn
// rolls back every statement it issued.
func (s *Store) WithTransaction(ctx context.Context, fn func(r *Registry) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRegistry(tx))
	})
}

// DB returns the root connection
func (s *Store) DB() *gorm.DB {
	return s.db
}
