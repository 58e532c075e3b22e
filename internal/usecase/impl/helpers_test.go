package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booknow/config"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/service"
	"booknow/internal/infra/cache"
	"booknow/internal/infra/lock"
	"booknow/internal/infra/taskqueue"
	mockSvc "booknow/internal/mocks/service"
	"booknow/internal/testutil/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Auth.BcryptCost = 4

	return cfg
}

// countingWaker records Wake calls.
type countingWaker struct {
	mu    sync.Mutex
	wakes int
}

func (w *countingWaker) Wake() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.wakes++
}

func (w *countingWaker) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.wakes
}

// fakeSender records reward emails instead of posting them.
type fakeSender struct {
	mu       sync.Mutex
	disabled bool
	err      error
	sent     []*service.RewardEmail
}

func (s *fakeSender) SendRewardEmail(_ context.Context, email *service.RewardEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, email)

	return nil
}

func (s *fakeSender) Enabled() bool {
	return !s.disabled
}

func (s *fakeSender) emails() []*service.RewardEmail {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*service.RewardEmail(nil), s.sent...)
}

// harness wires every service over one in-memory store, the real caches and the outbox executor.
type harness struct {
	t      *testing.T
	store  *memstore.Store
	cfg    *config.Config
	waker  *countingWaker
	sender *fakeSender
	qr     *mockSvc.MockQRCodeService

	userCache     *cache.Manager
	businessCache *cache.Manager
	searchCache   *cache.Manager
	statsCache    *cache.Manager
	locks         *lock.Registry

	registration *registrationService
	referral     *referralService
	stats        *statsService
	business     *businessService
	achievement  *achievementService
	notification *notificationService
	follow       *followService

	executor *taskqueue.Executor
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clock := func() time.Time { return testNow }
	logger := newDiscardLogger()
	cfg := newTestConfig()
	store := memstore.New(memstore.WithClock(clock))

	h := &harness{
		t:             t,
		store:         store,
		cfg:           cfg,
		waker:         &countingWaker{},
		sender:        &fakeSender{},
		qr:            mockSvc.NewMockQRCodeService(t),
		userCache:     cache.NewManager("user", time.Minute, 100, logger, cache.WithClock(clock)),
		businessCache: cache.NewManager("business", time.Minute, 100, logger, cache.WithClock(clock)),
		searchCache:   cache.NewManager("search", time.Minute, 100, logger, cache.WithClock(clock)),
		statsCache:    cache.NewManager("stats", time.Minute, 100, logger, cache.WithClock(clock)),
		locks:         lock.NewRegistry(),
	}

	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).RunAndReturn(func(p string) (string, error) { return "hashed:" + p, nil }).Maybe()
	hasher.EXPECT().Check(mock.Anything, mock.Anything).RunAndReturn(func(p, hash string) bool { return hash == "hashed:"+p }).Maybe()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().GenerateAccessToken(mock.Anything, mock.Anything).Return("access-token", testNow.Add(time.Hour), nil).Maybe()

	h.registration = newRegistrationService(RegistrationServiceParams{
		TxManager:      store,
		UserRepo:       store.NewUserRepository(),
		CredentialRepo: store.NewCredentialRepository(),
		Hasher:         hasher,
		TokenService:   tokens,
		UserCache:      h.userCache,
		Waker:          h.waker,
		Config:         cfg,
		Logger:         logger,
	}, clock)

	h.referral = newReferralService(ReferralServiceParams{
		TxManager:     store,
		UserRepo:      store.NewUserRepository(),
		ReferralRepo:  store.NewReferralRepository(),
		ActivityRepo:  store.NewActivityRepository(),
		QRService:     h.qr,
		BusinessCache: h.businessCache,
		Waker:         h.waker,
		Config:        cfg,
		Logger:        logger,
	}, clock)

	h.stats = newStatsService(StatsServiceParams{
		UserRepo:        store.NewUserRepository(),
		ReferralRepo:    store.NewReferralRepository(),
		ActivityRepo:    store.NewActivityRepository(),
		AchievementRepo: store.NewAchievementRepository(),
		StatsRepo:       store.NewStatsRepository(),
		StatsCache:      h.statsCache,
		Locks:           h.locks,
		Config:          cfg,
		Logger:          logger,
	}, clock)

	h.business = newBusinessService(BusinessServiceParams{
		TxManager:     store,
		BusinessRepo:  store.NewBusinessRepository(),
		BusinessCache: h.businessCache,
		Waker:         h.waker,
		Logger:        logger,
	}, clock)

	h.achievement = newAchievementService(AchievementServiceParams{
		TxManager:       store,
		AchievementRepo: store.NewAchievementRepository(),
		Waker:           h.waker,
		Logger:          logger,
	}, clock)

	h.notification = NewNotificationService(NotificationServiceParams{
		UserRepo:     store.NewUserRepository(),
		ActivityRepo: store.NewActivityRepository(),
		Sender:       h.sender,
		Config:       cfg,
		Logger:       logger,
	}).(*notificationService)

	h.follow = NewFollowService(FollowServiceParams{
		UserRepo:    store.NewUserRepository(),
		FollowRepo:  store.NewFollowRepository(),
		SearchCache: h.searchCache,
		Logger:      logger,
	}).(*followService)

	handlers := NewTaskHandlers(TaskHandlersParams{
		Referral:     h.referral,
		Stats:        h.stats,
		Business:     h.business,
		Notification: h.notification,
		Achievement:  h.achievement,
	})
	registry, err := taskqueue.NewRegistry(handlers.Handlers...)
	require.NoError(t, err)
	h.executor = taskqueue.NewExecutor(store.NewTaskRepository(), registry, taskqueue.RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    time.Minute,
	}, logger)

	return h
}

// drain executes due outbox tasks one at a time until none are left.
func (h *harness) drain() {
	h.t.Helper()

	tasks := h.store.NewTaskRepository()
	for range 500 {
		claimed, err := tasks.ClaimDue(context.Background(), testNow, 1, time.Minute)
		require.NoError(h.t, err)
		if len(claimed) == 0 {
			return
		}
		_ = h.executor.Execute(context.Background(), claimed[0])
	}
	h.t.Fatal("outbox did not drain")
}

// addUser inserts a user directly, without stats or tasks.
func (h *harness) addUser(userType entity.UserType) *entity.User {
	h.t.Helper()

	code, err := entity.NewReferralCode(h.cfg.Referral.CodePrefix)
	require.NoError(h.t, err)

	user := &entity.User{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@example.com",
		FullName:     "Test User",
		UserType:     userType,
		ReferralCode: code,
	}
	if userType == entity.UserTypeBusiness {
		user.BusinessProfile = &entity.BusinessProfile{BusinessName: "Salon " + code}
	}
	require.NoError(h.t, h.store.NewUserRepository().Create(context.Background(), user))

	if userType == entity.UserTypeBusiness {
		require.NoError(h.t, h.store.NewBusinessRepository().CreateDashboard(context.Background(), user.ID, testNow))
	}

	return user
}

func (h *harness) activities(userID uuid.UUID, activityType entity.ActivityType) []*entity.Activity {
	h.t.Helper()

	all, err := h.store.NewActivityRepository().ListByUser(context.Background(), userID)
	require.NoError(h.t, err)

	var out []*entity.Activity
	for _, a := range all {
		if a.Type == activityType {
			out = append(out, a)
		}
	}

	return out
}
