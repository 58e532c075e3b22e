// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"booknow/config"
	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxReferralCodeAttempts bounds retries after a generated code collides.
const maxReferralCodeAttempts = 3

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	userCache      service.Cache
	waker          service.TaskWaker
	codePrefix     string
	minPassword    int
	now            func() time.Time
	logger         *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	UserCache      service.Cache `name:"userCache"`
	Waker          service.TaskWaker
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return newRegistrationService(params, time.Now)
}

func newRegistrationService(params RegistrationServiceParams, now func() time.Time) *registrationService {
	return &registrationService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		credentialRepo: params.CredentialRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		userCache:      params.UserCache,
		waker:          params.Waker,
		codePrefix:     params.Config.Referral.CodePrefix,
		minPassword:    params.Config.Auth.MinPasswordLength,
		now:            now,
		logger:         params.Logger,
	}
}

func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, its credential and zeroed stats in one transaction. The
// referral itself is applied by a background task, so reward failures never undo the account.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := srv.validate(input); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to check email during registration", slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationUnavailable
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	code := entity.NormalizeReferralCode(input.ReferralCode)
	referrer, lookupFailed := srv.resolveReferrer(ctx, code)

	var user *entity.User
	for attempt := 1; ; attempt++ {
		user, err = srv.register(ctx, input, email, hash, code, referrer, lookupFailed)
		if err == nil || !errors.Is(err, repository.ErrReferralCodeTaken) || attempt == maxReferralCodeAttempts {
			break
		}
		srv.log(ctx).Warn("Generated referral code collided, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrRegistrationUnavailable
	}

	srv.waker.Wake()
	srv.userCache.Set(userCacheKey(user.ID), user, 0, "")

	srv.log(ctx).Info("User registered",
		slog.String("userID", user.ID.String()),
		slog.String("userType", string(user.UserType)),
		slog.Bool("referred", referrer != nil))

	return srv.issueToken(ctx, user, referrer != nil)
}

func (srv *registrationService) validate(input *usecase.RegisterInput) error {
	switch {
	case strings.TrimSpace(input.Email) == "":
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	case len(input.Password) < srv.minPassword:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password must be at least %d characters", srv.minPassword))
	case !input.UserType.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("user_type must be customer or business")
	case input.UserType == entity.UserTypeBusiness && (input.Business == nil || strings.TrimSpace(input.Business.BusinessName) == ""):
		return domainerrors.ErrValidationFailed.WithDetails("business_name is required for business accounts")
	}

	return nil
}

// resolveReferrer returns the owner of code, or nil when the code is empty or unknown.
// lookupFailed reports a storage error; the code then stays unresolved without
// being reported as unrecognized.
func (srv *registrationService) resolveReferrer(ctx context.Context, code string) (referrer *entity.User, lookupFailed bool) {
	if code == "" || !entity.IsWellFormedReferralCode(code, srv.codePrefix) {
		return nil, false
	}

	referrer, err := srv.userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false
		}
		srv.log(ctx).Warn("Referral code lookup failed", slog.String("code", code), slog.Any("error", err))

		return nil, true
	}

	return referrer, false
}

func (srv *registrationService) register(
	ctx context.Context,
	input *usecase.RegisterInput,
	email, hash, code string,
	referrer *entity.User,
	lookupFailed bool,
) (*entity.User, error) {
	ownCode, err := entity.NewReferralCode(srv.codePrefix)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		UserType:     input.UserType,
		ReferralCode: ownCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.UserType == entity.UserTypeBusiness {
		user.BusinessProfile = input.Business
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		if err := f.NewCredentialRepository().Create(ctx, &entity.Credential{
			ID:           uuid.New(),
			UserID:       user.ID,
			PasswordHash: hash,
			CreatedAt:    now,
		}); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		if err := f.NewStatsRepository().Upsert(ctx, entity.NewEmptyUserStats(user.ID, now)); err != nil {
			return errors.Wrap(err, "failed to create user stats")
		}

		tasks := []pendingTask{achievementsTask(user.ID), statsTask(user.ID)}

		if user.IsBusiness() {
			if err := f.NewBusinessRepository().CreateDashboard(ctx, user.ID, now); err != nil {
				return errors.Wrap(err, "failed to create business dashboard")
			}
			tasks = append(tasks, pendingTask{
				taskType: entity.TaskGrantInitialBusinessBonus,
				payload:  entity.UserTaskPayload{UserID: user.ID},
			})
		}

		switch {
		case referrer != nil:
			tasks = append(tasks, pendingTask{
				taskType: entity.TaskProcessReferral,
				payload: entity.ReferralTaskPayload{
					ReferrerID:     referrer.ID,
					ReferredUserID: user.ID,
					ReferralCode:   code,
				},
			})
		case code != "" && !lookupFailed:
			invalid := entity.NewActivity(user.ID, entity.ActivityNotification,
				fmt.Sprintf("Referral code %s was not recognized", code),
				entity.InvalidReferralCodeDetails{Code: code})
			if err := f.NewActivityRepository().Create(ctx, invalid); err != nil {
				return errors.Wrap(err, "failed to record invalid referral code")
			}
		}

		return enqueueAll(ctx, f.NewTaskRepository(), now, tasks...)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password credential and issues an access token.
func (srv *registrationService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	cred, err := srv.credentialRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, cred.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(ctx, user, false)
}

func (srv *registrationService) issueToken(ctx context.Context, user *entity.User, referralApplied bool) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, entity.RolesFor(user))
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		User:            user,
		AccessToken:     token,
		ExpiresAt:       expiresAt,
		ReferralApplied: referralApplied,
	}, nil
}

// ValidateReferralCode looks a code up case-insensitively. Unknown codes are reported as invalid, not as errors.
func (srv *registrationService) ValidateReferralCode(ctx context.Context, code string) (*usecase.ReferralCodeInfo, error) {
	code = entity.NormalizeReferralCode(code)
	info := &usecase.ReferralCodeInfo{Code: code}

	if !entity.IsWellFormedReferralCode(code, srv.codePrefix) {
		return info, nil
	}

	owner, err := srv.userRepo.FindByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return info, nil
		}

		return nil, errors.Wrap(err, "failed to look up referral code")
	}

	info.Valid = true
	info.ReferrerName = owner.DisplayName()
	info.ReferrerType = owner.UserType

	return info, nil
}

// GetProfile reads through the user cache.
func (srv *registrationService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	if user, ok := service.CacheLoad(ctx, srv.userCache, userCacheKey(userID), 0, func(ctx context.Context) (*entity.User, error) {
		return srv.userRepo.FindByID(ctx, userID)
	}); ok && user != nil {
		return user, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	return user, nil
}
