//go:build integration
// +build integration

package service_test

import (
	"context"
	"sync"
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"
	"capstone-backend/internal/repository"
	"capstone-backend/internal/service"
	"capstone-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// AdvisorCapacityTestSuite races approvals for one advisor on Postgres, where
// the advisor row lock is enforced.
type AdvisorCapacityTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	fx            *testutils.Fixtures
	svc           *service.ProjectService
}

func (s *AdvisorCapacityTestSuite) SetupSuite() {
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
}

func (s *AdvisorCapacityTestSuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
	testutils.CleanupSharedContainer()
}

func (s *AdvisorCapacityTestSuite) SetupTest() {
	s.baseTestSuite.SetupTest()
	s.fx = testutils.NewFixtures(s.T(), s.baseTestSuite.DB)
	s.svc = service.NewProjectService(repository.NewStore(s.baseTestSuite.DB), validator.New())
}

func (s *AdvisorCapacityTestSuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}

func (s *AdvisorCapacityTestSuite) TestConcurrentApprovals() {
	section := s.fx.Section(s.fx.Term(2024, 1).ID, models.CourseTypeProject)
	advisor := s.fx.Advisor()

	approved := s.fx.Project(s.fx.Team(section.ID, s.fx.Student()).ID, models.ProjectStatusApproved)
	s.fx.LinkAdvisor(approved.ID, advisor.ID)

	pending := make([]*models.Project, 4)
	for i := range pending {
		pending[i] = s.fx.Project(s.fx.Team(section.ID, s.fx.Student()).ID, models.ProjectStatusPending)
		s.fx.LinkAdvisor(pending[i].ID, advisor.ID)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	for i, project := range pending {
		wg.Add(1)
		go func(i int, project *models.Project) {
			defer wg.Done()
			_, errs[i] = s.svc.SetProjectStatus(context.Background(), actorOf(advisor), project.ID,
				&service.SetProjectStatusRequest{Status: models.ProjectStatusApproved})
		}(i, project)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrAdvisorFull)
	}
	s.Equal(1, succeeded)
	s.Equal(int64(models.MaxApprovedProjectsPerAdvisor), s.fx.Count(&models.Project{}, "status = ?", models.ProjectStatusApproved))
}

func TestAdvisorCapacityTestSuite(t *testing.T) {
	suite.Run(t, new(AdvisorCapacityTestSuite))
}
