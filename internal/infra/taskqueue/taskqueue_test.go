package taskqueue

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booknow/internal/domain/constants"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/service"
	mockSvc "booknow/internal/mocks/service"
	"booknow/internal/testutil/memstore"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(t *testing.T, taskType entity.TaskType) *mockSvc.MockTaskHandler {
	h := mockSvc.NewMockTaskHandler(t)
	h.EXPECT().TaskType().Return(taskType).Maybe()

	return h
}

func enqueue(t *testing.T, store *memstore.Store, taskType entity.TaskType) *entity.Task {
	task, err := entity.NewTask(taskType, entity.UserTaskPayload{UserID: uuid.New()}, testNow)
	require.NoError(t, err)
	require.NoError(t, store.NewTaskRepository().Enqueue(context.Background(), task))

	return task
}

func newExecutor(t *testing.T, store *memstore.Store, handlers ...service.TaskHandler) *Executor {
	registry, err := NewRegistry(handlers...)
	require.NoError(t, err)

	e := NewExecutor(store.NewTaskRepository(), registry, RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Minute,
	}, newDiscardLogger())
	e.now = func() time.Time { return testNow }

	return e
}

func TestNewRegistry_RejectsDuplicateTypes(t *testing.T) {
	a := newHandler(t, entity.TaskRecalculateStats)
	b := newHandler(t, entity.TaskRecalculateStats)

	_, err := NewRegistry(a, b)
	assert.Error(t, err)
}

func TestRegistry_Lookup(t *testing.T) {
	h := newHandler(t, entity.TaskSendNotification)

	registry, err := NewRegistry(h, nil)
	require.NoError(t, err)

	got, ok := registry.Lookup(entity.TaskSendNotification)
	assert.True(t, ok)
	assert.Equal(t, h, got)

	_, ok = registry.Lookup(entity.TaskProcessReferral)
	assert.False(t, ok)
	assert.ElementsMatch(t, []entity.TaskType{entity.TaskSendNotification}, registry.Types())
}

func TestExecutor_Execute_Success(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskRecalculateStats)

	h := newHandler(t, entity.TaskRecalculateStats)
	h.EXPECT().Handle(mock.Anything, mock.AnythingOfType("*entity.Task")).Return(nil).Once()

	err := newExecutor(t, store, h).Execute(context.Background(), task)
	require.NoError(t, err)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, stored.Status)
}

func TestExecutor_Execute_TransientFailureReschedules(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskRecalculateStats)

	h := newHandler(t, entity.TaskRecalculateStats)
	h.EXPECT().Handle(mock.Anything, mock.Anything).Return(errors.New("db timeout")).Once()

	err := newExecutor(t, store, h).Execute(context.Background(), task)
	assert.EqualError(t, err, "db timeout")

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.Equal(t, testNow.Add(time.Second), stored.RunAt)
	assert.Equal(t, "db timeout", stored.LastError)
}

func TestExecutor_Execute_BackoffGrowsWithAttempts(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskRecalculateStats)
	task.Attempts = 1

	h := newHandler(t, entity.TaskRecalculateStats)
	h.EXPECT().Handle(mock.Anything, mock.Anything).Return(errors.New("busy")).Once()

	_ = newExecutor(t, store, h).Execute(context.Background(), task)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Attempts)
	assert.Equal(t, testNow.Add(2*time.Second), stored.RunAt)
}

func TestExecutor_Execute_PermanentFailureMarksDead(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskProcessReferral)

	h := newHandler(t, entity.TaskProcessReferral)
	h.EXPECT().Handle(mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrTaskPermanent, "bad payload")).Once()

	err := newExecutor(t, store, h).Execute(context.Background(), task)
	assert.ErrorIs(t, err, service.ErrTaskPermanent)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDead, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
}

func TestExecutor_Execute_LastAttemptMarksDead(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskRecalculateStats)
	task.Attempts = 2

	h := newHandler(t, entity.TaskRecalculateStats)
	h.EXPECT().Handle(mock.Anything, mock.Anything).Return(errors.New("still failing")).Once()

	_ = newExecutor(t, store, h).Execute(context.Background(), task)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDead, stored.Status)
	assert.Equal(t, 3, stored.Attempts)
}

func TestExecutor_Execute_UnknownTypeMarksDead(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskEvaluateAchievements)

	err := newExecutor(t, store).Execute(context.Background(), task)
	assert.Error(t, err)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDead, stored.Status)
}

func TestDispatcher_DispatchDue_Inline(t *testing.T) {
	store := memstore.New()
	for range 3 {
		enqueue(t, store, entity.TaskRecalculateStats)
	}
	future, err := entity.NewTask(entity.TaskRecalculateStats, entity.UserTaskPayload{UserID: uuid.New()}, testNow.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.NewTaskRepository().Enqueue(context.Background(), future))

	h := newHandler(t, entity.TaskRecalculateStats)
	h.EXPECT().Handle(mock.Anything, mock.Anything).Return(nil).Times(3)

	d := NewDispatcher(store.NewTaskRepository(), newExecutor(t, store, h), mockSvc.NewMockTaskPublisher(t),
		DispatcherConfig{Mode: constants.TaskModeInline, BatchSize: 10}, newDiscardLogger())
	d.now = func() time.Time { return testNow }

	n, err := d.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, task := range store.Tasks() {
		if task.ID == future.ID {
			assert.Equal(t, entity.TaskStatusPending, task.Status)

			continue
		}
		assert.Equal(t, entity.TaskStatusDone, task.Status)
	}
}

func TestDispatcher_DispatchDue_PubSubRelays(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskSendNotification)

	publisher := mockSvc.NewMockTaskPublisher(t)
	publisher.EXPECT().PublishTask(mock.Anything, mock.MatchedBy(func(e *service.TaskEvent) bool {
		return e.TaskID == task.ID.String() && e.TaskType == string(entity.TaskSendNotification)
	})).Return(nil).Once()

	d := NewDispatcher(store.NewTaskRepository(), newExecutor(t, store), publisher,
		DispatcherConfig{Mode: constants.TaskModePubSub}, newDiscardLogger())
	d.now = func() time.Time { return testNow }

	n, err := d.DispatchDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusProcessing, stored.Status)
}

func TestDispatcher_DispatchDue_PubSubFailureReschedules(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskSendNotification)

	publisher := mockSvc.NewMockTaskPublisher(t)
	publisher.EXPECT().PublishTask(mock.Anything, mock.Anything).Return(errors.New("topic unavailable")).Once()

	d := NewDispatcher(store.NewTaskRepository(), newExecutor(t, store), publisher,
		DispatcherConfig{Mode: constants.TaskModePubSub}, newDiscardLogger())
	d.now = func() time.Time { return testNow }

	_, err := d.DispatchDue(context.Background())
	require.NoError(t, err)

	stored, err := store.NewTaskRepository().FindByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.Equal(t, "topic unavailable", stored.LastError)
}

func TestDispatcher_ClaimReclaimsExpiredLease(t *testing.T) {
	store := memstore.New()
	task := enqueue(t, store, entity.TaskRecalculateStats)
	repo := store.NewTaskRepository()

	claimed, err := repo.ClaimDue(context.Background(), testNow, 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	claimed, err = repo.ClaimDue(context.Background(), testNow.Add(30*time.Second), 10, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	claimed, err = repo.ClaimDue(context.Background(), testNow.Add(2*time.Minute), 10, time.Minute)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, task.ID, claimed[0].ID)
}

func TestDispatcher_WakeDoesNotBlock(t *testing.T) {
	d := NewDispatcher(memstore.New().NewTaskRepository(), newExecutor(t, memstore.New()), nil,
		DispatcherConfig{}, newDiscardLogger())

	d.Wake()
	d.Wake()

	assert.Len(t, d.signal.ch, 1)
}
