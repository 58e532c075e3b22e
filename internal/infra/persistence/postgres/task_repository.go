package postgres

import (
	"context"
	"encoding/json"
	"time"

	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new background task outbox repository
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (repo *taskRepository) Enqueue(ctx context.Context, task *entity.Task) error {
	m := &model.BackgroundTaskModel{
		ID:       task.ID,
		TaskType: string(task.Type),
		Payload:  datatypes.JSON(task.Payload),
		Status:   string(entity.TaskStatusPending),
		RunAt:    task.RunAt,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue task")
	}
	task.Status = entity.TaskStatusPending
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt

	return nil
}

// ClaimDue also reclaims processing rows whose lease ran out, so a crashed dispatcher loses no work.
func (repo *taskRepository) ClaimDue(ctx context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.Task, error) {
	var models []model.BackgroundTaskModel
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Options:  clause.LockingOptionsSkipLocked,
		}).
			Where("(status = ? AND run_at <= ?) OR (status = ? AND locked_until < ?)",
				entity.TaskStatusPending, now, entity.TaskStatusProcessing, now).
			Order("run_at ASC").
			Limit(limit).
			Find(&models).Error
		if err != nil {
			return errors.Wrap(err, "failed to select due tasks")
		}
		if len(models) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(models))
		for i := range models {
			ids[i] = models[i].ID
		}

		lockedUntil := now.Add(lease)
		if err := tx.Model(&model.BackgroundTaskModel{}).
			Where("id IN ?", ids).
			Updates(map[string]any{
				"status":       string(entity.TaskStatusProcessing),
				"locked_until": lockedUntil,
				"updated_at":   now,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to claim tasks")
		}

		for i := range models {
			models[i].Status = string(entity.TaskStatusProcessing)
			models[i].LockedUntil = &lockedUntil
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]*entity.Task, len(models))
	for i := range models {
		tasks[i] = toTaskDomain(&models[i])
	}

	return tasks, nil
}

func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var m model.BackgroundTaskModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return toTaskDomain(&m), nil
}

func (repo *taskRepository) MarkDone(ctx context.Context, id uuid.UUID) error {
	return repo.update(ctx, id, map[string]any{
		"status":       string(entity.TaskStatusDone),
		"locked_until": nil,
	})
}

func (repo *taskRepository) Reschedule(ctx context.Context, id uuid.UUID, attempts int, runAt time.Time, lastErr string) error {
	return repo.update(ctx, id, map[string]any{
		"status":       string(entity.TaskStatusPending),
		"attempts":     attempts,
		"run_at":       runAt,
		"last_error":   lastErr,
		"locked_until": nil,
	})
}

func (repo *taskRepository) MarkDead(ctx context.Context, id uuid.UUID, attempts int, lastErr string) error {
	return repo.update(ctx, id, map[string]any{
		"status":       string(entity.TaskStatusDead),
		"attempts":     attempts,
		"last_error":   lastErr,
		"locked_until": nil,
	})
}

func (repo *taskRepository) update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.BackgroundTaskModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toTaskDomain(m *model.BackgroundTaskModel) *entity.Task {
	return &entity.Task{
		ID:        m.ID,
		Type:      entity.TaskType(m.TaskType),
		Payload:   json.RawMessage(m.Payload),
		Status:    entity.TaskStatus(m.Status),
		Attempts:  m.Attempts,
		RunAt:     m.RunAt,
		LastError: m.LastError,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
