package impl

import (
	"context"
	"fmt"
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
)

// referralService is the referral and reward engine.
type referralService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	referralRepo  repository.ReferralRepository
	activityRepo  repository.ActivityRepository
	qrService     service.QRCodeService
	businessCache service.Cache
	waker         service.TaskWaker
	rules         config.ReferralConfig
	now           func() time.Time
	logger        *slog.Logger
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	ReferralRepo  repository.ReferralRepository
	ActivityRepo  repository.ActivityRepository
	QRService     service.QRCodeService
	BusinessCache service.Cache `name:"businessCache"`
	Waker         service.TaskWaker
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReferralService creates the referral engine.
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return newReferralService(params, time.Now)
}

func newReferralService(params ReferralServiceParams, now func() time.Time) *referralService {
	return &referralService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		referralRepo:  params.ReferralRepo,
		activityRepo:  params.ActivityRepo,
		qrService:     params.QRService,
		businessCache: params.BusinessCache,
		waker:         params.Waker,
		rules:         *params.Config.Referral,
		now:           now,
		logger:        params.Logger,
	}
}

func (srv *referralService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProcessReferral runs in a single transaction holding the referrer's row lock, so two
// referrals of the same referrer never observe the same count.
func (srv *referralService) ProcessReferral(ctx context.Context, referrerID, referredUserID uuid.UUID, code string) (*usecase.ReferralOutcome, error) {
	if referrerID == referredUserID {
		return nil, domainerrors.ErrSelfReferral
	}

	var outcome *usecase.ReferralOutcome
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		outcome, err = srv.processInTx(ctx, f, referrerID, referredUserID, entity.NormalizeReferralCode(code))

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(err.Error())
		}
		srv.log(ctx).Error("Failed to process referral",
			slog.String("referrerID", referrerID.String()),
			slog.String("referredUserID", referredUserID.String()),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to process referral")
	}

	if !outcome.Replayed {
		srv.waker.Wake()
	}
	if outcome.BusinessReferral {
		srv.businessCache.Delete(subscriptionCacheKey(referrerID))
		srv.businessCache.Delete(subscriptionCacheKey(referredUserID))
	}

	srv.log(ctx).Info("Referral processed",
		slog.String("referrerID", referrerID.String()),
		slog.Int("referralCount", outcome.ReferralCount),
		slog.Int("milestone", outcome.MilestoneNumber),
		slog.Bool("milestoneAwarded", outcome.MilestoneAwarded),
		slog.Bool("businessReferral", outcome.BusinessReferral),
		slog.Bool("replayed", outcome.Replayed))

	return outcome, nil
}

func (srv *referralService) processInTx(
	ctx context.Context,
	f repository.RepositoryFactory,
	referrerID, referredUserID uuid.UUID,
	code string,
) (*usecase.ReferralOutcome, error) {
	users := f.NewUserRepository()
	referrals := f.NewReferralRepository()

	referrer, err := users.LockByID(ctx, referrerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock referrer")
	}
	referred, err := users.FindByID(ctx, referredUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load referred user")
	}

	existing, err := referrals.FindByReferredUser(ctx, referredUserID)
	switch {
	case err == nil:
		count, err := referrals.CountCompletedByReferrer(ctx, existing.ReferrerID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count referrals")
		}

		return &usecase.ReferralOutcome{Referral: existing, Replayed: true, ReferralCount: count}, nil
	case !errors.Is(err, repository.ErrReferralNotFound):
		return nil, errors.Wrap(err, "failed to check existing referral")
	}

	if code == "" {
		code = referrer.ReferralCode
	}
	referral := &entity.Referral{
		ID:             uuid.New(),
		ReferrerID:     referrer.ID,
		ReferredUserID: referred.ID,
		ReferralCode:   code,
		Status:         entity.ReferralStatusCompleted,
		CreatedAt:      srv.now(),
	}
	if err := referrals.Create(ctx, referral); err != nil {
		return nil, errors.Wrap(err, "failed to create referral")
	}

	count, err := referrals.CountCompletedByReferrer(ctx, referrer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count referrals")
	}

	outcome := &usecase.ReferralOutcome{Referral: referral, ReferralCount: count}

	if referrer.IsBusiness() && referred.IsBusiness() {
		outcome.BusinessReferral = true

		return outcome, srv.applyBusinessReferral(ctx, f, referrer, referred)
	}

	if count%srv.rules.MilestoneSize != 0 {
		return outcome, srv.recordProgress(ctx, f, referrer, referred, count)
	}

	outcome.MilestoneNumber = count / srv.rules.MilestoneSize

	return outcome, srv.applyMilestone(ctx, f, referrer, outcome)
}

func (srv *referralService) recordProgress(ctx context.Context, f repository.RepositoryFactory, referrer, referred *entity.User, count int) error {
	details := entity.ReferralProgressDetails{
		ReferrerID:     referrer.ID,
		ReferredUserID: referred.ID,
		ReferralCount:  count,
		Progress:       count % srv.rules.MilestoneSize,
		Target:         srv.rules.MilestoneSize,
	}
	activities := f.NewActivityRepository()

	progress := entity.NewActivity(referrer.ID, entity.ActivityReferralProgress,
		fmt.Sprintf("%s joined with your code. %d of %d referrals toward your next reward",
			referred.DisplayName(), details.Progress, details.Target), details)
	if err := activities.Create(ctx, progress); err != nil {
		return errors.Wrap(err, "failed to record referral progress")
	}

	pending := entity.NewActivity(referred.ID, entity.ActivityReferralPending,
		fmt.Sprintf("Your referral reward unlocks when %s reaches %d referrals",
			referrer.DisplayName(), details.Target), details)
	if err := activities.Create(ctx, pending); err != nil {
		return errors.Wrap(err, "failed to record pending referral")
	}

	return enqueueAll(ctx, f.NewTaskRepository(), srv.now(),
		statsTask(referrer.ID),
		achievementsTask(referrer.ID),
	)
}

// applyMilestone credits the referrer and the referred users of the completed pair. A
// milestone already on the ledger is left untouched.
func (srv *referralService) applyMilestone(ctx context.Context, f repository.RepositoryFactory, referrer *entity.User, outcome *usecase.ReferralOutcome) error {
	activities := f.NewActivityRepository()
	milestone := outcome.MilestoneNumber

	exists, err := activities.MilestoneExists(ctx, referrer.ID, milestone)
	if err != nil {
		return errors.Wrap(err, "failed to check milestone")
	}
	if exists {
		srv.log(ctx).Warn("Milestone already awarded, skipping",
			slog.String("referrerID", referrer.ID.String()),
			slog.Int("milestone", milestone))

		return nil
	}

	recent, err := f.NewReferralRepository().ListRecentCompletedByReferrer(ctx, referrer.ID, srv.rules.MilestoneSize)
	if err != nil {
		return errors.Wrap(err, "failed to load milestone referrals")
	}

	rewarded := make([]uuid.UUID, 0, len(recent))
	for _, r := range recent {
		rewarded = append(rewarded, r.ReferredUserID)
	}

	entry := entity.NewActivity(referrer.ID, entity.ActivityReferralMilestone,
		fmt.Sprintf("Referral milestone %d reached: %d credits earned", milestone, srv.rules.MilestoneCredits),
		entity.MilestoneDetails{
			MilestoneNumber: milestone,
			ReferralCount:   outcome.ReferralCount,
			RewardedUserIDs: rewarded,
		})
	entry.RewardAmount = srv.rules.MilestoneCredits
	entry.MilestoneNumber = intPtr(milestone)
	if err := activities.Create(ctx, entry); err != nil {
		return errors.Wrap(err, "failed to record milestone")
	}

	tasks := []pendingTask{
		statsTask(referrer.ID),
		achievementsTask(referrer.ID),
		notificationTask(entity.NotificationTaskPayload{
			UserID:      referrer.ID,
			RewardType:  entity.RewardTypeCredits,
			Amount:      intPtr(srv.rules.MilestoneCredits),
			Description: entry.Description,
			Source:      string(entity.ActivityReferralMilestone),
		}),
	}

	for _, userID := range rewarded {
		reward := entity.NewActivity(userID, entity.ActivityReferralReward,
			fmt.Sprintf("You earned %d points because %s reached a referral milestone",
				srv.rules.ReferredRewardPoints, referrer.DisplayName()),
			entity.ReferralRewardDetails{ReferrerID: referrer.ID, MilestoneNumber: milestone})
		reward.RewardPoints = srv.rules.ReferredRewardPoints
		if err := activities.Create(ctx, reward); err != nil {
			return errors.Wrap(err, "failed to record referral reward")
		}

		tasks = append(tasks,
			statsTask(userID),
			notificationTask(entity.NotificationTaskPayload{
				UserID:      userID,
				RewardType:  entity.RewardTypePoints,
				Amount:      intPtr(srv.rules.ReferredRewardPoints),
				Description: reward.Description,
				Source:      string(entity.ActivityReferralReward),
			}))
	}

	outcome.MilestoneAwarded = true
	outcome.RewardedUserIDs = rewarded

	return enqueueAll(ctx, f.NewTaskRepository(), srv.now(), tasks...)
}

func (srv *referralService) applyBusinessReferral(ctx context.Context, f repository.RepositoryFactory, referrer, referred *entity.User) error {
	if err := f.NewBusinessRepository().ProcessBusinessReferral(ctx, referrer.ID, referred.ID, srv.now()); err != nil {
		return errors.Wrap(err, "failed to apply business referral")
	}

	activities := f.NewActivityRepository()

	earned := entity.NewActivity(referrer.ID, entity.ActivityBusinessReferral,
		fmt.Sprintf("%s joined with your code: 1 Pro month added", referred.DisplayName()),
		entity.BusinessReferralDetails{ReferrerID: referrer.ID, ReferredUserID: referred.ID, MonthsGranted: 1})
	if err := activities.Create(ctx, earned); err != nil {
		return errors.Wrap(err, "failed to record business referral")
	}

	joined := entity.NewActivity(referred.ID, entity.ActivityBusinessReferral,
		fmt.Sprintf("Referred by %s: lifetime Pro unlocked", referrer.DisplayName()),
		entity.BusinessReferralDetails{ReferrerID: referrer.ID, ReferredUserID: referred.ID, Lifetime: true})
	if err := activities.Create(ctx, joined); err != nil {
		return errors.Wrap(err, "failed to record business referral")
	}

	return enqueueAll(ctx, f.NewTaskRepository(), srv.now(),
		statsTask(referrer.ID),
		statsTask(referred.ID),
		achievementsTask(referrer.ID),
		notificationTask(entity.NotificationTaskPayload{
			UserID:      referrer.ID,
			RewardType:  entity.RewardTypeProSubscription,
			Amount:      intPtr(1),
			Description: earned.Description,
			Source:      string(entity.ActivityBusinessReferral),
		}),
		notificationTask(entity.NotificationTaskPayload{
			UserID:      referred.ID,
			RewardType:  entity.RewardTypeProSubscription,
			Description: joined.Description,
			ExpiryDate:  &entity.LifetimeProExpiry,
			Source:      string(entity.ActivityBusinessReferral),
		}),
	)
}

// GetDashboard returns the user's code, referrals and milestone progress.
func (srv *referralService) GetDashboard(ctx context.Context, userID uuid.UUID) (*usecase.ReferralDashboard, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	referrals, err := srv.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referrals")
	}

	completed := 0
	for _, r := range referrals {
		if r.IsCompleted() {
			completed++
		}
	}

	return &usecase.ReferralDashboard{
		ReferralCode:   user.ReferralCode,
		ShareLink:      shareLink(srv.rules.ProfileBaseURL, user.ReferralCode),
		Referrals:      referrals,
		CompletedCount: completed,
		Progress:       completed % srv.rules.MilestoneSize,
		Target:         srv.rules.MilestoneSize,
		NextMilestone:  completed/srv.rules.MilestoneSize + 1,
	}, nil
}

// GetReferralQR renders the user's share link as a PNG.
func (srv *referralService) GetReferralQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	png, err := srv.qrService.GenerateReferralQR(shareLink(srv.rules.ProfileBaseURL, user.ReferralCode))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral QR code")
	}

	return png, nil
}

func (srv *referralService) ListActivities(ctx context.Context, userID uuid.UUID, page usecase.Page) ([]*entity.Activity, error) {
	page = page.Normalize()

	activities, err := srv.activityRepo.ListRecentByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

func mapUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to load user")
}
