package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	columndomain "github.com/Real-Streeter/liberty-command/internal/column/domain"
	"github.com/Real-Streeter/liberty-command/internal/task/domain"
	"github.com/Real-Streeter/liberty-command/internal/task/repository"
	"github.com/Real-Streeter/liberty-command/pkg/apperr"
	"github.com/Real-Streeter/liberty-command/pkg/logger"
)

var log = logger.Component("TaskUsecase")

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	columns  ColumnLookup
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, columns ColumnLookup) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		columns:  columns,
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	content := strings.TrimSpace(input.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	priority := domain.PriorityStandard
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !priority.Valid() {
			return nil, invalidPriority()
		}
	}

	estimate, err := optionalField("est", input.Estimate, domain.MaxEstimateLength)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	columnID := input.ColumnID
	if columnID == "" {
		columnID = columndomain.BacklogColumnID
	}
	exists, err := u.columns.Exists(ctx, columnID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.MissingColumnError(columnID)
	}

	task := &domain.Task{
		ColumnID: columnID,
		Content:  content,
		Owner:    emptyToNil(input.Owner),
		Tag:      emptyToNil(input.Tag),
		Priority: priority,
		Estimate: estimate,
		DueDate:  dueDate,
	}
	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	log.WithField("task_id", task.ID).WithField("column_id", columnID).Debug("task created")
	return task, nil
}

func (u *taskUsecase) UpdateTask(ctx context.Context, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if updates.Content != nil {
		content := strings.TrimSpace(*updates.Content)
		if err := validateContent(content); err != nil {
			return nil, err
		}
		task.Content = content
	}
	if updates.Owner != nil {
		task.Owner = emptyToNil(updates.Owner)
	}
	if updates.Tag != nil {
		task.Tag = emptyToNil(updates.Tag)
	}
	if updates.Priority != nil {
		p := domain.Priority(*updates.Priority)
		if !p.Valid() {
			return nil, invalidPriority()
		}
		task.Priority = p
	}
	if updates.Estimate != nil {
		est, err := optionalField("est", updates.Estimate, domain.MaxEstimateLength)
		if err != nil {
			return nil, err
		}
		task.Estimate = est
	}
	if updates.DueDate != nil {
		due, err := parseDueDate(updates.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, taskID string) error {
	deleted, err := u.taskRepo.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	log.WithField("task_id", taskID).Debug("task deleted")
	return nil
}

func (u *taskUsecase) Reorder(ctx context.Context, moves []domain.Move) error {
	if err := domain.ValidateMoves(moves); err != nil {
		return err
	}
	if len(moves) == 0 {
		return nil
	}

	start := time.Now()
	if err := u.taskRepo.Reorder(ctx, moves); err != nil {
		log.WithError(err).WithField("moves", len(moves)).Warn("reorder rejected")
		return err
	}
	log.WithField("moves", len(moves)).WithField("took", time.Since(start)).Debug("reorder applied")
	return nil
}

func validateContent(content string) error {
	if content == "" {
		return apperr.Validation("content is required")
	}
	if utf8.RuneCountInString(content) > domain.MaxContentLength {
		return apperr.Validation(fmt.Sprintf("content must be at most %d characters", domain.MaxContentLength))
	}
	return nil
}

func invalidPriority() error {
	return apperr.Validation(fmt.Sprintf("priority must be one of %s, %s, %s",
		domain.PriorityCritical, domain.PriorityStandard, domain.PriorityLow))
}

// optionalField trims s and returns nil for an empty value.
func optionalField(name string, s *string, limit int) (*string, error) {
	v := emptyToNil(s)
	if v != nil && utf8.RuneCountInString(*v) > limit {
		return nil, apperr.Validation(fmt.Sprintf("%s must be at most %d characters", name, limit))
	}
	return v, nil
}

func parseDueDate(s *string) (*string, error) {
	v := emptyToNil(s)
	if v == nil {
		return nil, nil
	}
	if _, err := time.Parse(domain.DueDateLayout, *v); err != nil {
		return nil, apperr.Validation("dueDate must be a date in YYYY-MM-DD format")
	}
	return v, nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
