package service

import (
	"errors"
	"fmt"
	"testing"

	"capstone-backend/internal/database/models"
	apperrors "capstone-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToSnake(t *testing.T) {
	testCases := map[string]string{
		"MinTeamSize":  "min_team_size",
		"UserIDs":      "user_ids",
		"TargetTermID": "target_term_id",
		"Title":        "title",
		"":             "",
	}
	for in, want := range testCases {
		assert.Equal(t, want, toSnake(in), in)
	}
}

func TestValidateRequest(t *testing.T) {
	v := validator.New()

	assert.NoError(t, validateRequest(v, &AddCommentRequest{Body: "ok"}))

	err := validateRequest(v, &CreateSectionRequest{Code: "X", CourseType: models.CourseTypeProject, TermID: uuid.New(), MaxTeamSize: 2})
	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "min_team_size", validation.Field)
	assert.Contains(t, validation.Message, "required")
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")

	testCases := []struct {
		name     string
		err      error
		notFound error
		wantKind apperrors.Kind
		wantIs   error
	}{
		{name: "typed errors pass through", err: fmt.Errorf("tx: %w", apperrors.ErrTeamFull), wantKind: apperrors.KindConflict, wantIs: apperrors.ErrTeamFull},
		{name: "missing row", err: gorm.ErrRecordNotFound, notFound: apperrors.ErrTaskNotFound, wantKind: apperrors.KindNotFound, wantIs: apperrors.ErrTaskNotFound},
		{name: "missing row without mapping", err: gorm.ErrRecordNotFound, wantKind: apperrors.KindInternal},
		{name: "unique violation", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), wantKind: apperrors.KindConflict, wantIs: apperrors.ErrConcurrentUpdate},
		{name: "illegal transition", err: &models.TransitionError{Entity: "project", From: "DRAFT", Event: "approve"}, wantKind: apperrors.KindInvalidState},
		{name: "driver failure", err: cause, wantKind: apperrors.KindInternal, wantIs: cause},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := storeError("load", tc.err, tc.notFound)
			assert.Equal(t, tc.wantKind, apperrors.KindOf(got))
			if tc.wantIs != nil {
				assert.ErrorIs(t, got, tc.wantIs)
			}
		})
	}

	assert.NoError(t, storeError("load", nil, nil))

	internal := storeError("load", cause, nil)
	assert.NotContains(t, internal.Error(), "connection refused")
	assert.Same(t, internal, storeError("outer", internal, nil))
}

func TestActorRoles(t *testing.T) {
	admin := Actor{ID: uuid.New(), Role: models.UserRoleAdmin}
	advisor := Actor{ID: uuid.New(), Role: models.UserRoleAdvisor}
	student := Actor{ID: uuid.New(), Role: models.UserRoleStudent}

	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.IsStaff())
	assert.True(t, advisor.IsStaff())
	assert.False(t, advisor.IsAdmin())
	assert.False(t, student.IsStaff())

	assert.NoError(t, requireAdmin(admin))
	assert.ErrorIs(t, requireAdmin(student), apperrors.ErrForbidden)
}

func TestSelectTeams(t *testing.T) {
	a := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}
	b := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}
	teams := []models.Team{a, b}

	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, selectTeams(teams, nil))
	assert.Equal(t, []uuid.UUID{b.ID}, selectTeams(teams, []uuid.UUID{b.ID, uuid.New()}))
	assert.Empty(t, selectTeams(teams, []uuid.UUID{uuid.New()}))
	assert.Empty(t, selectTeams(nil, nil))
}
