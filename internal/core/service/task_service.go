package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/ports"
)

// TaskService implements task CRUD with ownership scoping.
type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

func (s *TaskService) Create(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = domain.TaskPending
	}
	if !domain.ValidTaskStatus(in.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if !domain.ValidTaskPriority(in.Priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, in.Priority)
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      in.Status,
		Priority:    in.Priority,
		Category:    in.Category,
		Reminder:    in.Reminder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("task_id", created.ID).Str("user_id", in.UserID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id, userID string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.repo.List(ctx, userID)
}

func (s *TaskService) Update(ctx context.Context, id, userID string, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.Status != nil {
		if !domain.ValidTaskStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *in.Status)
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !domain.ValidTaskPriority(*in.Priority) {
			return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *in.Priority)
		}
		task.Priority = *in.Priority
	}
	if in.Category != nil {
		task.Category = *in.Category
	}
	if in.Reminder != nil {
		task.Reminder = *in.Reminder
	}
	task.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
