package testutils

import (
	"fmt"
	"testing"
	"time"

	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Factories build unsaved models with sensible defaults.

// UserFactory provides methods to create test users
type UserFactory struct{}

// NewUserFactory creates a new user factory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a student with default values
func (f *UserFactory) Create() *models.User {
	n := uuid.NewString()[:8]
	return &models.User{
		Email:     fmt.Sprintf("student-%s@example.edu", n),
		FullName:  "Student " + n,
		StudentNo: n,
		Role:      models.UserRoleStudent,
	}
}

// WithRole creates a user with a specific role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	if role != models.UserRoleStudent {
		user.StudentNo = ""
		user.Email = fmt.Sprintf("%s-%s@example.edu", role, uuid.NewString()[:8])
	}
	return user
}

// TermFactory provides methods to create test terms
type TermFactory struct{}

// NewTermFactory creates a new term factory
func NewTermFactory() *TermFactory {
	return &TermFactory{}
}

// Create creates a first-semester term
func (f *TermFactory) Create() *models.Term {
	return f.WithSemester(2024, 1)
}

// WithSemester creates a term for the given academic year and semester
func (f *TermFactory) WithSemester(year, semester int) *models.Term {
	start := time.Date(year, time.Month(1+(semester-1)*5), 1, 0, 0, 0, 0, time.UTC)
	return &models.Term{
		AcademicYear: year,
		Semester:     semester,
		StartDate:    start,
		EndDate:      start.AddDate(0, 4, 0),
	}
}

// SectionFactory provides methods to create test sections
type SectionFactory struct{}

// NewSectionFactory creates a new section factory
func NewSectionFactory() *SectionFactory {
	return &SectionFactory{}
}

// Create creates a pre-project section in the given term
func (f *SectionFactory) Create(termID uuid.UUID) *models.Section {
	return &models.Section{
		Code:        "CP-" + uuid.NewString()[:4],
		CourseType:  models.CourseTypePreProject,
		StudyType:   "REGULAR",
		TermID:      termID,
		MinTeamSize: 1,
		MaxTeamSize: 3,
	}
}

// WithCourseType creates a section with a specific course type
func (f *SectionFactory) WithCourseType(termID uuid.UUID, courseType models.CourseType) *models.Section {
	section := f.Create(termID)
	section.CourseType = courseType
	return section
}

// Fixtures persists a consistent object graph for service and repository tests
type Fixtures struct {
	t  *testing.T
	db *gorm.DB

	Users    *UserFactory
	Terms    *TermFactory
	Sections *SectionFactory
}

// NewFixtures creates fixtures writing to db
func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{
		t:        t,
		db:       db,
		Users:    NewUserFactory(),
		Terms:    NewTermFactory(),
		Sections: NewSectionFactory(),
	}
}

func (f *Fixtures) save(value interface{}) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(value).Error)
}

// User persists a user with the given role
func (f *Fixtures) User(role models.UserRole) *models.User {
	user := f.Users.WithRole(role)
	f.save(user)
	return user
}

// Student persists a student
func (f *Fixtures) Student() *models.User {
	return f.User(models.UserRoleStudent)
}

// Advisor persists an advisor
func (f *Fixtures) Advisor() *models.User {
	return f.User(models.UserRoleAdvisor)
}

// Admin persists an administrator
func (f *Fixtures) Admin() *models.User {
	return f.User(models.UserRoleAdmin)
}

// Term persists a term
func (f *Fixtures) Term(year, semester int) *models.Term {
	term := f.Terms.WithSemester(year, semester)
	f.save(term)
	return term
}

// Section persists a section of the given course type
func (f *Fixtures) Section(termID uuid.UUID, courseType models.CourseType) *models.Section {
	section := f.Sections.WithCourseType(termID, courseType)
	f.save(section)
	return section
}

// Enroll persists enrollments of the users in the section
func (f *Fixtures) Enroll(sectionID uuid.UUID, users ...*models.User) {
	for _, user := range users {
		f.save(&models.Enrollment{UserID: user.ID, SectionID: sectionID})
	}
}

// Team persists a team in the section with the given members
func (f *Fixtures) Team(sectionID uuid.UUID, members ...*models.User) *models.Team {
	team := &models.Team{Name: "Team " + uuid.NewString()[:4], SectionID: sectionID, Semester: "1/2024"}
	f.save(team)
	for _, member := range members {
		f.save(&models.TeamMember{TeamID: team.ID, UserID: member.ID})
	}
	return team
}

// Project persists a project for the team in the given status
func (f *Fixtures) Project(teamID uuid.UUID, status models.ProjectStatus) *models.Project {
	project := &models.Project{
		TeamID:      teamID,
		ProjectName: "Project " + uuid.NewString()[:4],
		ProjectType: models.ProjectTypeApplication,
		Status:      status,
	}
	f.save(project)
	return project
}

// LinkAdvisor persists an advisor link for the project
func (f *Fixtures) LinkAdvisor(projectID, advisorID uuid.UUID) {
	f.save(&models.ProjectAdvisor{ProjectID: projectID, AdvisorID: advisorID})
}

// Task persists a task in the TODO column of the project
func (f *Fixtures) Task(projectID, createdBy uuid.UUID, position int) *models.Task {
	task := &models.Task{
		ProjectID:   projectID,
		Title:       "Task " + uuid.NewString()[:4],
		Status:      models.TaskStatusTodo,
		Position:    position,
		CreatedByID: createdBy,
	}
	f.save(task)
	return task
}

// Event persists an event in the section
func (f *Fixtures) Event(sectionID uuid.UUID) *models.Event {
	due := time.Now().Add(7 * 24 * time.Hour)
	event := &models.Event{SectionID: sectionID, Title: "Milestone " + uuid.NewString()[:4], DueDate: &due}
	f.save(event)
	return event
}

// Submission persists a submission of the team for the event
func (f *Fixtures) Submission(eventID, teamID uuid.UUID, status models.SubmissionStatus) *models.Submission {
	submission := &models.Submission{EventID: eventID, TeamID: teamID, Status: status}
	f.save(submission)
	return submission
}

// Count returns the number of rows of model matching the condition
func (f *Fixtures) Count(model interface{}, query string, args ...interface{}) int64 {
	f.t.Helper()
	var count int64
	require.NoError(f.t, f.db.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
