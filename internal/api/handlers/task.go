package handlers

import (
	"net/http"

	"capstone-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for the project task board
type TaskHandler struct {
	taskService service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles POST /projects/:id/tasks
// @Summary Create a task
// @Description Create a task at the end of the project's TODO column
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} models.Task "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /projects/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	projectID, ok := uuidParam(c, "id", "project")
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), actor, projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// MoveTask handles PUT /tasks/:id/move
// @Summary Move a task on the board
// @Description Move a task to a column and position; positions in both columns stay contiguous
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param move body service.MoveTaskRequest true "Target column and position"
// @Success 200 {object} models.Task "Task moved"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /tasks/{id}/move [put]
func (h *TaskHandler) MoveTask(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	taskID, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.MoveTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), actor, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AssignTask handles PUT /tasks/:id/assignees
// @Summary Replace the assignees of a task
// @Description Assignees must be members of the owning team; newly assigned users are notified
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param assignees body service.AssignTaskRequest true "Assignees"
// @Success 200 {object} models.Task "Assignees replaced"
// @Failure 400 {object} ErrorResponse "Invalid request or assignee outside the team"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /tasks/{id}/assignees [put]
func (h *TaskHandler) AssignTask(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	taskID, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.AssignTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.AssignTask(c.Request.Context(), actor, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// AddComment handles POST /tasks/:id/comments
// @Summary Comment on a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param comment body service.AddCommentRequest true "Comment"
// @Success 201 {object} models.Comment "Comment added"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is neither a team member nor the advisor"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/comments [post]
func (h *TaskHandler) AddComment(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	taskID, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	var req service.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.taskService.AddComment(c.Request.Context(), actor, taskID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteTask handles DELETE /tasks/:id
// @Summary Delete a task
// @Description Delete a task with its assignments, comments, attachments and notifications
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} DeletionResponse "Rows removed per table"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 422 {object} ErrorResponse "Project approved"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	taskID, ok := uuidParam(c, "id", "task")
	if !ok {
		return
	}

	result, err := h.taskService.DeleteTask(c.Request.Context(), actor, taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, deletionResponse(string(result.Root), result.Deleted))
}
