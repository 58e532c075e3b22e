package impl

import (
	"context"
	"log/slog"
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
	"golang.org/x/sync/errgroup"
)

func statsCacheKey(id uuid.UUID) string {
	return "stats:" + id.String()
}

type statsService struct {
	userRepo        repository.UserRepository
	referralRepo    repository.ReferralRepository
	activityRepo    repository.ActivityRepository
	achievementRepo repository.AchievementRepository
	statsRepo       repository.StatsRepository
	statsCache      service.Cache
	locks           service.LockRegistry
	readTTL         time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	ReferralRepo    repository.ReferralRepository
	ActivityRepo    repository.ActivityRepository
	AchievementRepo repository.AchievementRepository
	StatsRepo       repository.StatsRepository
	StatsCache      service.Cache `name:"statsCache"`
	Locks           service.LockRegistry
	Config          *config.Config
	Logger          *slog.Logger
}

// NewStatsService creates the stats aggregator.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return newStatsService(params, time.Now)
}

func newStatsService(params StatsServiceParams, now func() time.Time) *statsService {
	return &statsService{
		userRepo:        params.UserRepo,
		referralRepo:    params.ReferralRepo,
		activityRepo:    params.ActivityRepo,
		achievementRepo: params.AchievementRepo,
		statsRepo:       params.StatsRepo,
		statsCache:      params.StatsCache,
		locks:           params.Locks,
		readTTL:         params.Config.Cache.StatsReadTTL,
		now:             now,
		logger:          params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *statsService) RecalculateUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	release, ok := srv.locks.TryAcquire(statsCacheKey(userID))
	if !ok {
		srv.log(ctx).Debug("Stats recalculation already in flight", slog.String("userID", userID.String()))

		stats, err := srv.statsRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrStatsNotFound) {
				return nil, domainerrors.ErrStatsBusy
			}

			return nil, errors.Wrap(err, "failed to load persisted stats")
		}

		return stats, nil
	}
	defer release()

	return srv.recompute(ctx, userID)
}

// RefreshUserStats never settles for the persisted row: a held guard means the
// in-flight recompute may predate the caller's ledger write.
func (srv *statsService) RefreshUserStats(ctx context.Context, userID uuid.UUID) error {
	release, ok := srv.locks.TryAcquire(statsCacheKey(userID))
	if !ok {
		return domainerrors.ErrStatsBusy
	}
	defer release()

	_, err := srv.recompute(ctx, userID)

	return err
}

func (srv *statsService) recompute(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return nil, mapUserError(err)
	}

	var (
		referrals    []*entity.Referral
		activities   []*entity.Activity
		achievements int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		referrals, err = srv.referralRepo.ListByReferrer(gctx, userID)

		return errors.Wrap(err, "failed to list referrals")
	})
	g.Go(func() error {
		var err error
		activities, err = srv.activityRepo.ListByUser(gctx, userID)

		return errors.Wrap(err, "failed to list activities")
	})
	g.Go(func() error {
		var err error
		achievements, err = srv.achievementRepo.CountByUser(gctx, userID)

		return errors.Wrap(err, "failed to count achievements")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := entity.ComputeUserStats(userID, referrals, activities, achievements, srv.now())

	ahead, err := srv.statsRepo.CountWithMorePoints(ctx, stats.TotalPoints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank user")
	}
	stats.PositionRank = ahead + 1

	if err := srv.statsRepo.Upsert(ctx, stats); err != nil {
		return nil, errors.Wrap(err, "failed to save user stats")
	}
	srv.statsCache.Delete(statsCacheKey(userID))

	srv.log(ctx).Debug("Stats recalculated",
		slog.String("userID", userID.String()),
		slog.Int("totalPoints", stats.TotalPoints),
		slog.Int("positionRank", stats.PositionRank))

	return stats, nil
}

// GetUserStats serves from cache, then the persisted row, and only recomputes for users without one.
func (srv *statsService) GetUserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	key := statsCacheKey(userID)
	if stats, ok := service.CacheGet[*entity.UserStats](srv.statsCache, key); ok && stats != nil {
		return stats, nil
	}

	stats, err := srv.statsRepo.FindByUserID(ctx, userID)
	if err == nil {
		srv.statsCache.Set(key, stats, srv.readTTL, "")

		return stats, nil
	}
	if !errors.Is(err, repository.ErrStatsNotFound) {
		return nil, errors.Wrap(err, "failed to load user stats")
	}

	stats, err = srv.RecalculateUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	srv.statsCache.Set(key, stats, srv.readTTL, "")

	return stats, nil
}
