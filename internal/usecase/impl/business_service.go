package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

const grantSourceInitialBonus = "initial_business_bonus"

func subscriptionCacheKey(id uuid.UUID) string {
	return "subscription:" + id.String()
}

type businessService struct {
	txManager     repository.TransactionManager
	businessRepo  repository.BusinessRepository
	businessCache service.Cache
	waker         service.TaskWaker
	now           func() time.Time
	logger        *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	BusinessRepo  repository.BusinessRepository
	BusinessCache service.Cache `name:"businessCache"`
	Waker         service.TaskWaker
	Logger        *slog.Logger
}

// NewBusinessService creates the business subscription service.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return newBusinessService(params, time.Now)
}

func newBusinessService(params BusinessServiceParams, now func() time.Time) *businessService {
	return &businessService{
		txManager:     params.TxManager,
		businessRepo:  params.BusinessRepo,
		businessCache: params.BusinessCache,
		waker:         params.Waker,
		now:           now,
		logger:        params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) view(sub *entity.BusinessSubscription) *usecase.SubscriptionView {
	now := srv.now()

	return &usecase.SubscriptionView{
		BusinessSubscription: sub,
		IsProActive:          sub.IsProActive(now),
		DaysRemaining:        sub.DaysRemaining(now),
	}
}

func (srv *businessService) requireBusiness(ctx context.Context, userID uuid.UUID) error {
	ok, err := srv.businessRepo.IsBusinessUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check business user")
	}
	if !ok {
		return domainerrors.ErrNotBusinessUser
	}

	return nil
}

// GetSubscription reads through the business cache. Derived fields are computed on every read.
func (srv *businessService) GetSubscription(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionView, error) {
	key := subscriptionCacheKey(userID)
	if sub, ok := service.CacheGet[*entity.BusinessSubscription](srv.businessCache, key); ok && sub != nil {
		return srv.view(sub), nil
	}

	if err := srv.requireBusiness(ctx, userID); err != nil {
		return nil, err
	}

	sub, err := srv.businessRepo.FindSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}
	srv.businessCache.Set(key, sub, 0, "")

	return srv.view(sub), nil
}

// GrantInitialBonus grants lifetime Pro the first time it runs for a business.
func (srv *businessService) GrantInitialBonus(ctx context.Context, userID uuid.UUID) (bool, error) {
	if err := srv.requireBusiness(ctx, userID); err != nil {
		return false, err
	}

	var granted bool
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		granted, err = f.NewBusinessRepository().GrantInitialBusinessBonus(ctx, userID, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to grant initial business bonus")
		}
		if !granted {
			return nil
		}

		entry := entity.NewActivity(userID, entity.ActivityProSubscription,
			"Welcome bonus: lifetime Pro unlocked",
			entity.ProGrantDetails{Source: grantSourceInitialBonus, Lifetime: true, Expiry: &entity.LifetimeProExpiry})
		if err := f.NewActivityRepository().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record initial business bonus")
		}

		return enqueueAll(ctx, f.NewTaskRepository(), srv.now(), notificationTask(entity.NotificationTaskPayload{
			UserID:      userID,
			RewardType:  entity.RewardTypeProSubscription,
			Description: entry.Description,
			ExpiryDate:  &entity.LifetimeProExpiry,
			Source:      grantSourceInitialBonus,
		}))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			return false, domainerrors.ErrSubscriptionNotFound
		}

		return false, err
	}

	srv.businessCache.Delete(subscriptionCacheKey(userID))
	if granted {
		srv.waker.Wake()
		srv.log(ctx).Info("Initial business bonus granted", slog.String("userID", userID.String()))
	}

	return granted, nil
}

// GrantProSubscription adds months of Pro from the later of now and the current expiry.
func (srv *businessService) GrantProSubscription(ctx context.Context, userID uuid.UUID, months int, source string) (*usecase.SubscriptionView, error) {
	if months <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("months must be positive")
	}
	if err := srv.requireBusiness(ctx, userID); err != nil {
		return nil, err
	}

	var sub *entity.BusinessSubscription
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		sub, err = f.NewBusinessRepository().GrantProSubscription(ctx, userID, months, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to grant pro subscription")
		}

		entry := entity.NewActivity(userID, entity.ActivityProSubscription,
			fmt.Sprintf("%d Pro month(s) added", months),
			entity.ProGrantDetails{Source: source, Months: months, Expiry: sub.ProExpiresAt})
		if err := f.NewActivityRepository().Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record pro grant")
		}

		return enqueueAll(ctx, f.NewTaskRepository(), srv.now(), notificationTask(entity.NotificationTaskPayload{
			UserID:      userID,
			RewardType:  entity.RewardTypeProSubscription,
			Amount:      intPtr(months),
			Description: entry.Description,
			ExpiryDate:  sub.ProExpiresAt,
			Source:      source,
		}))
	})
	if err != nil {
		if errors.Is(err, repository.ErrDashboardNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, err
	}

	srv.businessCache.Delete(subscriptionCacheKey(userID))
	srv.waker.Wake()

	return srv.view(sub), nil
}

func (srv *businessService) IsBusinessUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	ok, err := srv.businessRepo.IsBusinessUser(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check business user")
	}

	return ok, nil
}
