package delivery

import (
	"net/http"

	"github.com/Real-Streeter/liberty-command/internal/httperr"
	"github.com/Real-Streeter/liberty-command/internal/task/domain"
	"github.com/Real-Streeter/liberty-command/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Content  string  `json:"content" binding:"required"`
	Owner    *string `json:"owner"`
	Tag      *string `json:"tag"`
	Priority string  `json:"priority"`
	Estimate *string `json:"est"`
	DueDate  *string `json:"dueDate"`
	ColumnID string  `json:"columnId"`
}

// MoveRequest is one entry of a reorder batch
type MoveRequest struct {
	TaskID    string `json:"taskId" binding:"required"`
	ColumnID  string `json:"columnId" binding:"required"`
	SortOrder *int   `json:"sortOrder" binding:"required,min=0"`
}

// ReorderRequest carries the final placement of every task the client knows about.
// A missing or null moves field is rejected; an empty array is accepted.
type ReorderRequest struct {
	Moves []MoveRequest `json:"moves" binding:"required,dive"`
}

// Register mounts the task routes on an authenticated group
func (h *TaskHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.CreateTask)
	rg.PUT("/reorder", h.Reorder)
	rg.PUT("/:id", h.UpdateTask)
	rg.DELETE("/:id", h.DeleteTask)
}

// CreateTask creates a new task at the end of its column
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), usecase.CreateTaskInput{
		ColumnID: req.ColumnID,
		Content:  req.Content,
		Owner:    req.Owner,
		Tag:      req.Tag,
		Priority: req.Priority,
		Estimate: req.Estimate,
		DueDate:  req.DueDate,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Reorder applies a batch of placements atomically
// PUT /api/tasks/reorder
func (h *TaskHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	moves := make([]domain.Move, len(req.Moves))
	for i, m := range req.Moves {
		moves[i] = domain.Move{TaskID: m.TaskID, ColumnID: m.ColumnID, SortOrder: *m.SortOrder}
	}

	if err := h.taskUsecase.Reorder(c.Request.Context(), moves); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateTask updates the content fields of a task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if _, err := h.taskUsecase.UpdateTask(c.Request.Context(), c.Param("id"), updates); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Updated"})
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskUsecase.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
