package impl

import (
	"context"
	"log/slog"
	"time"

	"booknow/config"
	deliverycontext "booknow/internal/delivery/context"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/domain/service"
	"booknow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reasonDisabled          = "dispatch disabled"
	reasonInvalidRewardType = "invalid reward type"
)

// notificationService sends reward emails and records each attempt in the ledger.
type notificationService struct {
	userRepo       repository.UserRepository
	activityRepo   repository.ActivityRepository
	sender         service.EmailSender
	profileBaseURL string
	logger         *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	ActivityRepo repository.ActivityRepository
	Sender       service.EmailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewNotificationService creates the reward notification dispatcher.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:       params.UserRepo,
		activityRepo:   params.ActivityRepo,
		sender:         params.Sender,
		profileBaseURL: params.Config.Referral.ProfileBaseURL,
		logger:         params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRewardNotification never returns an error. Every failure is logged and recorded as delayed.
func (srv *notificationService) SendRewardNotification(ctx context.Context, n *usecase.RewardNotification) bool {
	user, err := srv.userRepo.FindByID(ctx, n.UserID)
	if err != nil {
		srv.log(ctx).Warn("Reward notification skipped, user unavailable",
			slog.String("userID", n.UserID.String()),
			slog.Any("error", err))

		return false
	}

	if !n.RewardType.IsValid() {
		srv.record(ctx, n, false, reasonInvalidRewardType)

		return false
	}

	if !srv.sender.Enabled() {
		srv.record(ctx, n, false, reasonDisabled)

		return false
	}

	email := &service.RewardEmail{
		UserEmail:   user.Email,
		UserName:    user.DisplayName(),
		RewardType:  string(n.RewardType),
		Amount:      n.Amount,
		Description: n.Description,
		Source:      n.Source,
		ProfileLink: shareLink(srv.profileBaseURL, user.ReferralCode),
	}
	if n.ExpiryDate != nil {
		email.ExpiryDate = n.ExpiryDate.UTC().Format(time.RFC3339)
	}

	if err := srv.sender.SendRewardEmail(ctx, email); err != nil {
		srv.log(ctx).Warn("Reward email delayed",
			slog.String("userID", n.UserID.String()),
			slog.String("rewardType", string(n.RewardType)),
			slog.Any("error", err))
		srv.record(ctx, n, false, err.Error())

		return false
	}

	srv.record(ctx, n, true, "")

	return true
}

func (srv *notificationService) record(ctx context.Context, n *usecase.RewardNotification, delivered bool, reason string) {
	description := "Reward notification sent: " + n.Description
	if !delivered {
		description = "Reward notification delayed: " + n.Description
	}

	entry := entity.NewActivity(n.UserID, entity.ActivityNotification, description, entity.NotificationDetails{
		RewardType: n.RewardType,
		Delivered:  delivered,
		Reason:     reason,
	})
	if err := srv.activityRepo.Create(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to record notification outcome",
			slog.String("userID", n.UserID.String()),
			slog.Any("error", errors.WithStack(err)))
	}
}
