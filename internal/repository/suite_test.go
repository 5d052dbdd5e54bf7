//go:build integration
// +build integration

package repository

import (
	"capstone-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// repositorySuite runs against the shared Postgres container and truncates
// every table around each test.
type repositorySuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	fx            *testutils.Fixtures
}

// SetupSuite runs before all tests in the suite
func (s *repositorySuite) SetupSuite() {
	s.baseTestSuite = testutils.SetupTestSuite(s.T())
}

// TearDownSuite runs after all tests in the suite
func (s *repositorySuite) TearDownSuite() {
	s.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (s *repositorySuite) SetupTest() {
	s.baseTestSuite.SetupTest()
	s.fx = testutils.NewFixtures(s.T(), s.baseTestSuite.DB)
}

// TearDownTest runs after each test
func (s *repositorySuite) TearDownTest() {
	s.baseTestSuite.TearDownTest()
}
