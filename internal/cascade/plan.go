// Package cascade removes an entity together with every row that depends on it.
//
// The relational schema declares RESTRICT foreign keys only, so child rows must
// be deleted before their parents. Planners in this package are pure: they
// return the ordered list of DELETE statements for a root entity, expressed with
// sub-selects so that no row needs to be read up front. The Executor applies a
// plan inside a transaction owned by the caller.
package cascade

import (
	"capstone-backend/internal/database/models"

	"github.com/google/uuid"
)

// Root names the kind of entity a plan removes
type Root string

const (
	RootTeam    Root = "team"
	RootProject Root = "project"
	RootEvent   Root = "event"
	RootTask    Root = "task"
	RootUser    Root = "user"
	RootSection Root = "section"
)

// Step is a single DELETE statement of a plan
type Step struct {
	Table string
	Model interface{}
	Query string
	Args  []interface{}
}

// Plan is an ordered list of steps; children always precede their parents
type Plan struct {
	Root  Root
	ID    uuid.UUID
	Steps []Step
}

// Tables returns the table of every step in execution order
func (p Plan) Tables() []string {
	tables := make([]string, 0, len(p.Steps))
	for _, step := range p.Steps {
		tables = append(tables, step.Table)
	}
	return tables
}

const (
	projectsOfTeam = "SELECT id FROM projects WHERE team_id = ?"
	tasksOfProject = "SELECT id FROM tasks WHERE project_id = ?"
	tasksOfTeam    = "SELECT id FROM tasks WHERE project_id IN (" + projectsOfTeam + ")"
)

func step(model interface{ TableName() string }, query string, args ...interface{}) Step {
	return Step{Table: model.TableName(), Model: model, Query: query, Args: args}
}

// taskChildren lists the rows hanging off the selected tasks
func taskChildren(taskFilter string, args ...interface{}) []Step {
	return []Step{
		step(&models.TaskAssignment{}, "task_id IN ("+taskFilter+")", args...),
		step(&models.Comment{}, "task_id IN ("+taskFilter+")", args...),
		step(&models.Attachment{}, "task_id IN ("+taskFilter+")", args...),
		step(&models.Notification{}, "task_id IN ("+taskFilter+")", args...),
	}
}

// ForProject plans the removal of a project. Team rows are left untouched
// apart from the team's submissions.
func ForProject(projectID, teamID uuid.UUID) Plan {
	steps := taskChildren(tasksOfProject, projectID)
	steps = append(steps,
		step(&models.Task{}, "project_id = ?", projectID),
		step(&models.ProjectAdvisor{}, "project_id = ?", projectID),
		step(&models.Submission{}, "team_id = ?", teamID),
		step(&models.Grade{}, "project_id = ?", projectID),
		step(&models.Project{}, "id = ?", projectID),
	)
	return Plan{Root: RootProject, ID: projectID, Steps: steps}
}

// ForTeam plans the removal of a team, its project if any, and its members.
// Project-level steps match nothing when the team never created a project.
func ForTeam(teamID uuid.UUID) Plan {
	steps := taskChildren(tasksOfTeam, teamID)
	steps = append(steps,
		step(&models.Task{}, "project_id IN ("+projectsOfTeam+")", teamID),
		step(&models.ProjectAdvisor{}, "project_id IN ("+projectsOfTeam+")", teamID),
		step(&models.Submission{}, "team_id = ?", teamID),
		step(&models.Grade{}, "project_id IN ("+projectsOfTeam+")", teamID),
		step(&models.Project{}, "team_id = ?", teamID),
		// repeated for teams without a project
		step(&models.Submission{}, "team_id = ?", teamID),
		step(&models.Notification{}, "team_id = ?", teamID),
		step(&models.TeamMember{}, "team_id = ?", teamID),
		step(&models.Team{}, "id = ?", teamID),
	)
	return Plan{Root: RootTeam, ID: teamID, Steps: steps}
}

// ForEvent plans the removal of an event and its submissions
func ForEvent(eventID uuid.UUID) Plan {
	return Plan{Root: RootEvent, ID: eventID, Steps: []Step{
		step(&models.Submission{}, "event_id = ?", eventID),
		step(&models.Event{}, "id = ?", eventID),
	}}
}

// ForTask plans the removal of a single task
func ForTask(taskID uuid.UUID) Plan {
	steps := taskChildren("SELECT id FROM tasks WHERE id = ?", taskID)
	steps = append(steps, step(&models.Task{}, "id = ?", taskID))
	return Plan{Root: RootTask, ID: taskID, Steps: steps}
}

// ForUser plans the removal of a user account. Teams the user is the last
// member of must be removed with ForTeam first; the caller also decides what
// happens to projects the user advises.
func ForUser(userID uuid.UUID) Plan {
	return Plan{Root: RootUser, ID: userID, Steps: []Step{
		step(&models.Notification{}, "user_id = ?", userID),
		step(&models.TaskAssignment{}, "user_id = ?", userID),
		step(&models.Comment{}, "author_id = ?", userID),
		step(&models.Grade{}, "student_id = ?", userID),
		step(&models.ProjectAdvisor{}, "advisor_id = ?", userID),
		step(&models.Enrollment{}, "user_id = ?", userID),
		step(&models.TeamMember{}, "user_id = ?", userID),
		step(&models.User{}, "id = ?", userID),
	}}
}

// ForSection plans the removal of a section that no team references any more,
// together with its events, their submissions and its enrollments.
func ForSection(sectionID uuid.UUID) Plan {
	return Plan{Root: RootSection, ID: sectionID, Steps: []Step{
		step(&models.Submission{}, "event_id IN (SELECT id FROM events WHERE section_id = ?)", sectionID),
		step(&models.Event{}, "section_id = ?", sectionID),
		step(&models.Enrollment{}, "section_id = ?", sectionID),
		step(&models.Section{}, "id = ?", sectionID),
	}}
}
