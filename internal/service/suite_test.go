package service_test

import (
	"context"

	"capstone-backend/internal/database/models"
	"capstone-backend/internal/repository"
	"capstone-backend/internal/service"
	"capstone-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// serviceSuite gives every test a fresh in-memory database
type serviceSuite struct {
	suite.Suite
	ctx       context.Context
	db        *gorm.DB
	store     *repository.Store
	fx        *testutils.Fixtures
	validator *validator.Validate
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutils.NewSQLiteDB(s.T())
	s.store = repository.NewStore(s.db)
	s.fx = testutils.NewFixtures(s.T(), s.db)
	s.validator = validator.New()
}

func actorOf(user *models.User) service.Actor {
	return service.Actor{ID: user.ID, Role: user.Role}
}

// section persists a term and a PRE_PROJECT section in it
func (s *serviceSuite) section() *models.Section {
	term := s.fx.Term(2024, 1)
	return s.fx.Section(term.ID, models.CourseTypePreProject)
}

// enrolledStudents persists n students enrolled in the section
func (s *serviceSuite) enrolledStudents(sectionID uuid.UUID, n int) []*models.User {
	students := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		students = append(students, s.fx.Student())
	}
	s.fx.Enroll(sectionID, students...)
	return students
}
