package cascade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// parents lists the tables each table references through a foreign key
var parents = map[string][]string{
	"task_assignments": {"tasks"},
	"comments":         {"tasks"},
	"attachments":      {"tasks"},
	"tasks":            {"projects"},
	"project_advisors": {"projects", "users"},
	"grades":           {"projects"},
	"submissions":      {"teams", "events"},
	"projects":         {"teams"},
	"team_members":     {"teams", "users"},
	"enrollments":      {"users", "sections"},
	"events":           {"sections"},
}

func assertChildrenFirst(t *testing.T, plan Plan) {
	t.Helper()
	lastIndex := map[string]int{}
	for i, table := range plan.Tables() {
		lastIndex[table] = i
	}
	for i, table := range plan.Tables() {
		for _, parent := range parents[table] {
			if _, ok := lastIndex[parent]; !ok {
				continue
			}
			for j, other := range plan.Tables() {
				if other == parent {
					assert.Less(t, i, j, "%s must be deleted before %s in %s plan", table, parent, plan.Root)
				}
			}
		}
	}
}

func TestForTeam(t *testing.T) {
	teamID := uuid.New()
	plan := ForTeam(teamID)

	assert.Equal(t, RootTeam, plan.Root)
	assert.Equal(t, teamID, plan.ID)
	assert.Equal(t, []string{
		"task_assignments", "comments", "attachments", "notifications", "tasks",
		"project_advisors", "submissions", "grades", "projects",
		"submissions", "notifications", "team_members", "teams",
	}, plan.Tables())
	assertChildrenFirst(t, plan)

	last := plan.Steps[len(plan.Steps)-1]
	assert.Equal(t, "id = ?", last.Query)
	assert.Equal(t, []interface{}{teamID}, last.Args)
}

func TestForProject(t *testing.T) {
	projectID, teamID := uuid.New(), uuid.New()
	plan := ForProject(projectID, teamID)

	assert.Equal(t, []string{
		"task_assignments", "comments", "attachments", "notifications", "tasks",
		"project_advisors", "submissions", "grades", "projects",
	}, plan.Tables())
	assert.NotContains(t, plan.Tables(), "team_members")
	assert.NotContains(t, plan.Tables(), "teams")
	assertChildrenFirst(t, plan)

	for _, s := range plan.Steps {
		if s.Table == "submissions" {
			assert.Equal(t, []interface{}{teamID}, s.Args)
		} else {
			assert.Equal(t, []interface{}{projectID}, s.Args)
		}
	}
}

func TestForEventAndTask(t *testing.T) {
	assert.Equal(t, []string{"submissions", "events"}, ForEvent(uuid.New()).Tables())

	taskPlan := ForTask(uuid.New())
	assert.Equal(t, []string{"task_assignments", "comments", "attachments", "notifications", "tasks"}, taskPlan.Tables())
	assertChildrenFirst(t, taskPlan)
}

func TestForSection(t *testing.T) {
	plan := ForSection(uuid.New())

	assert.Equal(t, []string{"submissions", "events", "enrollments", "sections"}, plan.Tables())
	assertChildrenFirst(t, plan)
}

func TestForUser(t *testing.T) {
	plan := ForUser(uuid.New())

	assert.Equal(t, RootUser, plan.Root)
	assert.Equal(t, "users", plan.Tables()[len(plan.Steps)-1])
	assert.Contains(t, plan.Tables(), "enrollments")
	assert.Contains(t, plan.Tables(), "team_members")
	assertChildrenFirst(t, plan)
}

func TestResultTotalAndMerge(t *testing.T) {
	result := &Result{Root: RootUser, Deleted: map[string]int64{"users": 1, "enrollments": 2}}
	result.Merge(&Result{Root: RootTeam, Deleted: map[string]int64{"teams": 1, "enrollments": 1}})
	result.Merge(nil)

	assert.Equal(t, int64(5), result.Total())
	assert.Equal(t, int64(3), result.Deleted["enrollments"])
}
