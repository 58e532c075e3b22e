package impl

import (
	"context"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/service"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskHandler adapts a function to service.TaskHandler.
type taskHandler struct {
	taskType entity.TaskType
	handle   func(ctx context.Context, task *entity.Task) error
}

func (h *taskHandler) TaskType() entity.TaskType {
	return h.taskType
}

func (h *taskHandler) Handle(ctx context.Context, task *entity.Task) error {
	return h.handle(ctx, task)
}

// TaskHandlersParams holds the usecases the outbox handlers delegate to.
type TaskHandlersParams struct {
	fx.In

	Referral     usecase.ReferralUsecase
	Stats        usecase.StatsUsecase
	Business     usecase.BusinessUsecase
	Notification usecase.NotificationUsecase
	Achievement  usecase.AchievementUsecase
}

// TaskHandlersResult contributes every handler to the dispatcher registry.
type TaskHandlersResult struct {
	fx.Out

	Handlers []service.TaskHandler `group:"taskHandlers,flatten"`
}

// NewTaskHandlers builds one handler per task type.
func NewTaskHandlers(params TaskHandlersParams) TaskHandlersResult {
	return TaskHandlersResult{Handlers: []service.TaskHandler{
		&taskHandler{taskType: entity.TaskProcessReferral, handle: func(ctx context.Context, task *entity.Task) error {
			var p entity.ReferralTaskPayload
			if err := decodeTask(task, &p); err != nil {
				return err
			}
			_, err := params.Referral.ProcessReferral(ctx, p.ReferrerID, p.ReferredUserID, p.ReferralCode)

			return permanentIf(err, domainerrors.ErrUserNotFound, domainerrors.ErrSelfReferral)
		}},
		&taskHandler{taskType: entity.TaskGrantInitialBusinessBonus, handle: func(ctx context.Context, task *entity.Task) error {
			userID, err := decodeUserTask(task)
			if err != nil {
				return err
			}
			_, err = params.Business.GrantInitialBonus(ctx, userID)

			return permanentIf(err, domainerrors.ErrNotBusinessUser, domainerrors.ErrSubscriptionNotFound)
		}},
		&taskHandler{taskType: entity.TaskRecalculateStats, handle: func(ctx context.Context, task *entity.Task) error {
			userID, err := decodeUserTask(task)
			if err != nil {
				return err
			}
			err = params.Stats.RefreshUserStats(ctx, userID)

			return permanentIf(err, domainerrors.ErrUserNotFound)
		}},
		&taskHandler{taskType: entity.TaskEvaluateAchievements, handle: func(ctx context.Context, task *entity.Task) error {
			userID, err := decodeUserTask(task)
			if err != nil {
				return err
			}
			_, err = params.Achievement.EvaluateAchievements(ctx, userID)

			return permanentIf(err, domainerrors.ErrUserNotFound)
		}},
		// Delivery is attempted once; the outcome lands in the ledger either way.
		&taskHandler{taskType: entity.TaskSendNotification, handle: func(ctx context.Context, task *entity.Task) error {
			var p entity.NotificationTaskPayload
			if err := decodeTask(task, &p); err != nil {
				return err
			}
			params.Notification.SendRewardNotification(ctx, &usecase.RewardNotification{
				UserID:      p.UserID,
				RewardType:  p.RewardType,
				Amount:      p.Amount,
				Description: p.Description,
				ExpiryDate:  p.ExpiryDate,
				Source:      p.Source,
			})

			return nil
		}},
	}}
}

func decodeTask(task *entity.Task, v any) error {
	if err := task.DecodePayload(v); err != nil {
		return errors.Wrap(service.ErrTaskPermanent, err.Error())
	}

	return nil
}

func decodeUserTask(task *entity.Task) (uuid.UUID, error) {
	var p entity.UserTaskPayload
	if err := decodeTask(task, &p); err != nil {
		return uuid.Nil, err
	}
	if p.UserID == uuid.Nil {
		return uuid.Nil, errors.Wrap(service.ErrTaskPermanent, "missing user_id")
	}

	return p.UserID, nil
}

// permanentIf marks err permanent when it matches one of the given errors.
func permanentIf(err error, permanent ...error) error {
	if err == nil {
		return nil
	}
	for _, target := range permanent {
		if errors.Is(err, target) {
			return errors.Wrap(service.ErrTaskPermanent, err.Error())
		}
	}

	return err
}
