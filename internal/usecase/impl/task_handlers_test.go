package impl

import (
	"context"
	"testing"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/service"
	mockUsecase "booknow/internal/mocks/usecase"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskHandlerFixtures struct {
	handlers     map[entity.TaskType]service.TaskHandler
	referral     *mockUsecase.MockReferralUsecase
	stats        *mockUsecase.MockStatsUsecase
	business     *mockUsecase.MockBusinessUsecase
	notification *mockUsecase.MockNotificationUsecase
	achievement  *mockUsecase.MockAchievementUsecase
}

func createTaskHandlers(t *testing.T) taskHandlerFixtures {
	f := taskHandlerFixtures{
		handlers:     make(map[entity.TaskType]service.TaskHandler),
		referral:     mockUsecase.NewMockReferralUsecase(t),
		stats:        mockUsecase.NewMockStatsUsecase(t),
		business:     mockUsecase.NewMockBusinessUsecase(t),
		notification: mockUsecase.NewMockNotificationUsecase(t),
		achievement:  mockUsecase.NewMockAchievementUsecase(t),
	}

	result := NewTaskHandlers(TaskHandlersParams{
		Referral:     f.referral,
		Stats:        f.stats,
		Business:     f.business,
		Notification: f.notification,
		Achievement:  f.achievement,
	})
	for _, h := range result.Handlers {
		f.handlers[h.TaskType()] = h
	}

	return f
}

func newTestTask(t *testing.T, taskType entity.TaskType, payload any) *entity.Task {
	task, err := entity.NewTask(taskType, payload, testNow)
	require.NoError(t, err)

	return task
}

func TestNewTaskHandlers_CoversEveryTaskType(t *testing.T) {
	f := createTaskHandlers(t)

	assert.Len(t, f.handlers, 5)
	for _, taskType := range []entity.TaskType{
		entity.TaskProcessReferral,
		entity.TaskGrantInitialBusinessBonus,
		entity.TaskRecalculateStats,
		entity.TaskEvaluateAchievements,
		entity.TaskSendNotification,
	} {
		assert.Contains(t, f.handlers, taskType)
	}
}

func TestTaskHandlers_ProcessReferral(t *testing.T) {
	referrerID, referredID := uuid.New(), uuid.New()
	payload := entity.ReferralTaskPayload{ReferrerID: referrerID, ReferredUserID: referredID, ReferralCode: "BNABC123"}

	tests := []struct {
		name          string
		err           error
		wantErr       bool
		wantPermanent bool
	}{
		{name: "applied"},
		{name: "transient failure", err: errors.New("deadlock detected"), wantErr: true},
		{name: "self referral", err: domainerrors.ErrSelfReferral, wantErr: true, wantPermanent: true},
		{name: "user gone", err: domainerrors.ErrUserNotFound.WithDetails("deleted"), wantErr: true, wantPermanent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTaskHandlers(t)

			var outcome *usecase.ReferralOutcome
			if tt.err == nil {
				outcome = &usecase.ReferralOutcome{ReferralCount: 1}
			}
			f.referral.EXPECT().ProcessReferral(mock.Anything, referrerID, referredID, "BNABC123").Return(outcome, tt.err).Once()

			err := f.handlers[entity.TaskProcessReferral].Handle(context.Background(), newTestTask(t, entity.TaskProcessReferral, payload))
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantPermanent, errors.Is(err, service.ErrTaskPermanent))
		})
	}
}

func TestTaskHandlers_MalformedPayloadIsPermanent(t *testing.T) {
	f := createTaskHandlers(t)

	task := newTestTask(t, entity.TaskRecalculateStats, entity.UserTaskPayload{})
	err := f.handlers[entity.TaskRecalculateStats].Handle(context.Background(), task)
	assert.ErrorIs(t, err, service.ErrTaskPermanent)

	task = &entity.Task{ID: uuid.New(), Type: entity.TaskProcessReferral, Payload: []byte("{not json")}
	err = f.handlers[entity.TaskProcessReferral].Handle(context.Background(), task)
	assert.ErrorIs(t, err, service.ErrTaskPermanent)
}

func TestTaskHandlers_UserTasks(t *testing.T) {
	userID := uuid.New()
	payload := entity.UserTaskPayload{UserID: userID}

	t.Run("stats busy is retried", func(t *testing.T) {
		f := createTaskHandlers(t)
		f.stats.EXPECT().RefreshUserStats(mock.Anything, userID).Return(domainerrors.ErrStatsBusy).Once()

		err := f.handlers[entity.TaskRecalculateStats].Handle(context.Background(), newTestTask(t, entity.TaskRecalculateStats, payload))
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrTaskPermanent)
	})

	t.Run("achievements for a missing user are dropped", func(t *testing.T) {
		f := createTaskHandlers(t)
		f.achievement.EXPECT().EvaluateAchievements(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound).Once()

		err := f.handlers[entity.TaskEvaluateAchievements].Handle(context.Background(), newTestTask(t, entity.TaskEvaluateAchievements, payload))
		assert.ErrorIs(t, err, service.ErrTaskPermanent)
	})

	t.Run("initial bonus for a customer is dropped", func(t *testing.T) {
		f := createTaskHandlers(t)
		f.business.EXPECT().GrantInitialBonus(mock.Anything, userID).Return(false, domainerrors.ErrNotBusinessUser).Once()

		err := f.handlers[entity.TaskGrantInitialBusinessBonus].Handle(context.Background(), newTestTask(t, entity.TaskGrantInitialBusinessBonus, payload))
		assert.ErrorIs(t, err, service.ErrTaskPermanent)
	})

	t.Run("initial bonus granted", func(t *testing.T) {
		f := createTaskHandlers(t)
		f.business.EXPECT().GrantInitialBonus(mock.Anything, userID).Return(true, nil).Once()

		err := f.handlers[entity.TaskGrantInitialBusinessBonus].Handle(context.Background(), newTestTask(t, entity.TaskGrantInitialBusinessBonus, payload))
		assert.NoError(t, err)
	})
}

func TestTaskHandlers_NotificationNeverFails(t *testing.T) {
	f := createTaskHandlers(t)
	userID := uuid.New()

	f.notification.EXPECT().SendRewardNotification(mock.Anything, mock.MatchedBy(func(n *usecase.RewardNotification) bool {
		return n.UserID == userID && n.RewardType == entity.RewardTypeCredits && *n.Amount == 50
	})).Return(false).Once()

	task := newTestTask(t, entity.TaskSendNotification, entity.NotificationTaskPayload{
		UserID:     userID,
		RewardType: entity.RewardTypeCredits,
		Amount:     intPtr(50),
	})
	assert.NoError(t, f.handlers[entity.TaskSendNotification].Handle(context.Background(), task))
}
