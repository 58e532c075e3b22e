package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// achievementFacts is what the rules are evaluated against.
type achievementFacts struct {
	completedReferrals int
	milestones         int
}

type achievementRule struct {
	achievementType entity.AchievementType
	title           string
	description     string
	points          int
	target          int
	progress        func(achievementFacts) int
}

var achievementRules = []achievementRule{
	{
		achievementType: entity.AchievementEarlyAdopter,
		title:           "Early Adopter",
		description:     "Joined the BookNow waitlist",
		points:          10,
		target:          1,
		progress:        func(achievementFacts) int { return 1 },
	},
	{
		achievementType: entity.AchievementFirstReferral,
		title:           "First Referral",
		description:     "Referred your first friend",
		points:          10,
		target:          1,
		progress:        func(f achievementFacts) int { return f.completedReferrals },
	},
	{
		achievementType: entity.AchievementFirstMilestone,
		title:           "Milestone Reached",
		description:     "Completed your first referral milestone",
		points:          25,
		target:          1,
		progress:        func(f achievementFacts) int { return f.milestones },
	},
	{
		achievementType: entity.AchievementSuperReferrer,
		title:           "Super Referrer",
		description:     "Referred 10 friends",
		points:          100,
		target:          10,
		progress:        func(f achievementFacts) int { return f.completedReferrals },
	},
}

type achievementService struct {
	txManager       repository.TransactionManager
	achievementRepo repository.AchievementRepository
	waker           service.TaskWaker
	now             func() time.Time
	logger          *slog.Logger
}

// AchievementServiceParams holds dependencies for AchievementService, injected by Fx.
type AchievementServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AchievementRepo repository.AchievementRepository
	Waker           service.TaskWaker
	Logger          *slog.Logger
}

// NewAchievementService creates the achievement evaluator.
func NewAchievementService(params AchievementServiceParams) usecase.AchievementUsecase {
	return newAchievementService(params, time.Now)
}

func newAchievementService(params AchievementServiceParams, now func() time.Time) *achievementService {
	return &achievementService{
		txManager:       params.TxManager,
		achievementRepo: params.AchievementRepo,
		waker:           params.Waker,
		now:             now,
		logger:          params.Logger,
	}
}

func (srv *achievementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EvaluateAchievements holds the user's row lock so concurrent evaluations never unlock the same type twice.
func (srv *achievementService) EvaluateAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	var unlocked []*entity.Achievement

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		unlocked = nil

		if _, err := f.NewUserRepository().LockByID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		facts, earned, err := srv.loadFacts(ctx, f, userID)
		if err != nil {
			return err
		}

		now := srv.now()
		var tasks []pendingTask
		for _, rule := range achievementRules {
			if _, ok := earned[rule.achievementType]; ok {
				continue
			}
			progress := rule.progress(facts)
			if progress < rule.target {
				continue
			}

			achievement := &entity.Achievement{
				ID:              uuid.New(),
				UserID:          userID,
				AchievementType: rule.achievementType,
				Title:           rule.title,
				Description:     rule.description,
				PointsAwarded:   rule.points,
				Progress:        progress,
				Target:          rule.target,
				EarnedAt:        now,
			}
			if err := f.NewAchievementRepository().Create(ctx, achievement); err != nil {
				return errors.Wrapf(err, "failed to unlock %s", rule.achievementType)
			}

			entry := entity.NewActivity(userID, entity.ActivityAchievement,
				"Achievement unlocked: "+rule.title,
				entity.AchievementDetails{AchievementType: rule.achievementType})
			entry.RewardPoints = rule.points
			if err := f.NewActivityRepository().Create(ctx, entry); err != nil {
				return errors.Wrap(err, "failed to record achievement")
			}

			unlocked = append(unlocked, achievement)
			tasks = append(tasks, notificationTask(entity.NotificationTaskPayload{
				UserID:      userID,
				RewardType:  entity.RewardTypeAchievement,
				Amount:      intPtr(rule.points),
				Description: entry.Description,
				Source:      string(rule.achievementType),
			}))
		}

		if len(unlocked) == 0 {
			return nil
		}

		return enqueueAll(ctx, f.NewTaskRepository(), now, append(tasks, statsTask(userID))...)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, mapUserError(err)
		}

		return nil, errors.Wrap(err, "failed to evaluate achievements")
	}

	if len(unlocked) > 0 {
		srv.waker.Wake()
		srv.log(ctx).Info("Achievements unlocked",
			slog.String("userID", userID.String()),
			slog.Int("count", len(unlocked)))
	}

	return unlocked, nil
}

func (srv *achievementService) loadFacts(
	ctx context.Context,
	f repository.RepositoryFactory,
	userID uuid.UUID,
) (achievementFacts, map[entity.AchievementType]struct{}, error) {
	var facts achievementFacts

	existing, err := f.NewAchievementRepository().ListByUser(ctx, userID)
	if err != nil {
		return facts, nil, errors.Wrap(err, "failed to list achievements")
	}
	earned := make(map[entity.AchievementType]struct{}, len(existing))
	for _, a := range existing {
		earned[a.AchievementType] = struct{}{}
	}

	facts.completedReferrals, err = f.NewReferralRepository().CountCompletedByReferrer(ctx, userID)
	if err != nil {
		return facts, nil, errors.Wrap(err, "failed to count referrals")
	}

	activities, err := f.NewActivityRepository().ListByUser(ctx, userID)
	if err != nil {
		return facts, nil, errors.Wrap(err, "failed to list activities")
	}
	for _, a := range activities {
		if a.Type == entity.ActivityReferralMilestone {
			facts.milestones++
		}
	}

	return facts, earned, nil
}

func (srv *achievementService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	achievements, err := srv.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list achievements")
	}

	return achievements, nil
}
