package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/repository"
	mockRepo "booknow/internal/mocks/repository"
	mockSvc "booknow/internal/mocks/service"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customerInput(email, code string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:        email,
		Password:     "correct-horse",
		FullName:     "Ada Lovelace",
		UserType:     entity.UserTypeCustomer,
		ReferralCode: code,
	}
}

func TestRegistrationService_Register_WithoutCode(t *testing.T) {
	h := newHarness(t)

	out, err := h.registration.Register(context.Background(), customerInput("  Ada@Example.com ", ""))
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.False(t, out.ReferralApplied)
	assert.Nil(t, out.User.ReferredBy)
	assert.True(t, strings.HasPrefix(out.User.ReferralCode, "BN"))
	assert.Len(t, out.User.ReferralCode, entity.ReferralCodeLength)

	stats, err := h.store.NewStatsRepository().FindByUserID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalPoints)

	assert.Len(t, h.store.TasksOfType(entity.TaskEvaluateAchievements), 1)
	assert.Len(t, h.store.TasksOfType(entity.TaskRecalculateStats), 1)
	assert.Empty(t, h.store.TasksOfType(entity.TaskProcessReferral))
	assert.Equal(t, 1, h.waker.count())

	cached, ok := h.userCache.Get(userCacheKey(out.User.ID))
	assert.True(t, ok)
	assert.Equal(t, out.User, cached)
}

func TestRegistrationService_Register_WithValidCode(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	referrer, err := h.registration.Register(ctx, customerInput("referrer@example.com", ""))
	require.NoError(t, err)

	out, err := h.registration.Register(ctx, customerInput("friend@example.com", strings.ToLower(referrer.User.ReferralCode)))
	require.NoError(t, err)

	assert.True(t, out.ReferralApplied)
	require.NotNil(t, out.User.ReferredBy)
	assert.Equal(t, referrer.User.ID, *out.User.ReferredBy)

	tasks := h.store.TasksOfType(entity.TaskProcessReferral)
	require.Len(t, tasks, 1)
	var payload entity.ReferralTaskPayload
	require.NoError(t, tasks[0].DecodePayload(&payload))
	assert.Equal(t, referrer.User.ID, payload.ReferrerID)
	assert.Equal(t, out.User.ID, payload.ReferredUserID)
	assert.Equal(t, referrer.User.ReferralCode, payload.ReferralCode)
}

func TestRegistrationService_Register_InvalidCodeStillRegisters(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "unknown code", code: "BNZZZZZZ"},
		{name: "malformed code", code: "not-a-code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			out, err := h.registration.Register(context.Background(), customerInput("ada@example.com", tt.code))
			require.NoError(t, err)

			assert.False(t, out.ReferralApplied)
			assert.Nil(t, out.User.ReferredBy)
			assert.Empty(t, h.store.Referrals())
			assert.Empty(t, h.store.TasksOfType(entity.TaskProcessReferral))

			notices := h.activities(out.User.ID, entity.ActivityNotification)
			require.Len(t, notices, 1)
			details, ok := notices[0].Details.(entity.InvalidReferralCodeDetails)
			require.True(t, ok)
			assert.Equal(t, entity.NormalizeReferralCode(tt.code), details.Code)
		})
	}
}

func TestRegistrationService_Register_Business(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	input := customerInput("owner@salon.com", "")
	input.UserType = entity.UserTypeBusiness
	input.Business = &entity.BusinessProfile{BusinessName: "Glow Salon", City: "Lisbon"}

	out, err := h.registration.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "Glow Salon", out.User.DisplayName())

	require.Len(t, h.store.TasksOfType(entity.TaskGrantInitialBusinessBonus), 1)

	h.drain()

	sub, err := h.business.GetSubscription(ctx, out.User.ID)
	require.NoError(t, err)
	assert.True(t, sub.IsLifetime())
	assert.True(t, sub.IsProActive)
	assert.Len(t, h.activities(out.User.ID, entity.ActivityProSubscription), 1)
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
	}{
		{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = " " }},
		{name: "short password", mutate: func(in *usecase.RegisterInput) { in.Password = "short" }},
		{name: "unknown user type", mutate: func(in *usecase.RegisterInput) { in.UserType = "admin" }},
		{name: "business without name", mutate: func(in *usecase.RegisterInput) { in.UserType = entity.UserTypeBusiness }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			input := customerInput("ada@example.com", "")
			tt.mutate(input)

			_, err := h.registration.Register(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Empty(t, h.store.Tasks())
		})
	}
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.registration.Register(ctx, customerInput("ada@example.com", ""))
	require.NoError(t, err)

	_, err = h.registration.Register(ctx, customerInput("ADA@example.com", ""))
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestRegistrationService_Register_TransactionFailure(t *testing.T) {
	h := newHarness(t)

	h.store.FailNextWrite(errors.New("disk full"))

	_, err := h.registration.Register(context.Background(), customerInput("ada@example.com", ""))
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationUnavailable)

	_, err = h.store.NewUserRepository().FindByEmail(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.Zero(t, h.waker.count())
}

// unavailableCodeLookup fails every referral code lookup.
type unavailableCodeLookup struct {
	repository.UserRepository
}

func (unavailableCodeLookup) FindByReferralCode(context.Context, string) (*entity.User, error) {
	return nil, errors.New("connection reset by peer")
}

func TestRegistrationService_Register_CodeLookupFailureIsNotReported(t *testing.T) {
	h := newHarness(t)
	h.registration.userRepo = unavailableCodeLookup{UserRepository: h.store.NewUserRepository()}

	out, err := h.registration.Register(context.Background(), customerInput("ada@example.com", "BNZZZZZZ"))
	require.NoError(t, err)

	assert.False(t, out.ReferralApplied)
	assert.Nil(t, out.User.ReferredBy)
	assert.Empty(t, h.store.TasksOfType(entity.TaskProcessReferral))
	assert.Empty(t, h.activities(out.User.ID, entity.ActivityNotification))
}

func TestRegistrationService_Register_RetriesReferralCodeCollision(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	waker := mockSvc.NewMockTaskWaker(t)
	userCache := mockSvc.NewMockCache(t)

	userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound).Once()
	hasher.EXPECT().Hash("correct-horse").Return("hash", nil).Once()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(repository.ErrReferralCodeTaken).Once()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil).Once()
	waker.EXPECT().Wake().Once()
	userCache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, "").Once()
	tokens.EXPECT().GenerateAccessToken(mock.Anything, []string{entity.RoleCustomer}).Return("token", testNow, nil).Once()

	srv := newRegistrationService(RegistrationServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		UserCache:    userCache,
		Waker:        waker,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}, func() time.Time { return testNow })

	out, err := srv.Register(context.Background(), customerInput("ada@example.com", ""))
	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
}

func TestRegistrationService_Register_EmailLookupFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(nil, errors.New("timeout")).Once()

	srv := newRegistrationService(RegistrationServiceParams{
		UserRepo: userRepo,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	}, func() time.Time { return testNow })

	_, err := srv.Register(context.Background(), customerInput("ada@example.com", ""))
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationUnavailable)
}

func TestRegistrationService_Login(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.registration.Register(ctx, customerInput("ada@example.com", ""))
	require.NoError(t, err)

	out, err := h.registration.Login(ctx, &usecase.LoginInput{Email: "Ada@Example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)

	_, err = h.registration.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = h.registration.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestRegistrationService_ValidateReferralCode(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.addUser(entity.UserTypeBusiness)

	info, err := h.registration.ValidateReferralCode(ctx, " "+strings.ToLower(owner.ReferralCode)+" ")
	require.NoError(t, err)
	assert.True(t, info.Valid)
	assert.Equal(t, owner.ReferralCode, info.Code)
	assert.Equal(t, owner.DisplayName(), info.ReferrerName)
	assert.Equal(t, entity.UserTypeBusiness, info.ReferrerType)

	info, err = h.registration.ValidateReferralCode(ctx, "BNZZZZZZ")
	require.NoError(t, err)
	assert.False(t, info.Valid)

	info, err = h.registration.ValidateReferralCode(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, info.Valid)
}

func TestRegistrationService_GetProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.addUser(entity.UserTypeCustomer)

	got, err := h.registration.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, ok := h.userCache.Get(userCacheKey(user.ID))
	assert.True(t, ok)

	_, err = h.registration.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
