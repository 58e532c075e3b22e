package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ActivityType classifies ledger entries.
type ActivityType string

const (
	ActivityReferralProgress  ActivityType = "referral_progress"
	ActivityReferralPending   ActivityType = "referral_pending"
	ActivityReferralMilestone ActivityType = "referral_milestone"
	ActivityReferralReward    ActivityType = "referral_reward"
	ActivityBusinessReferral  ActivityType = "business_referral"
	ActivityProSubscription   ActivityType = "pro_subscription"
	ActivityAchievement       ActivityType = "achievement"
	ActivityNotification      ActivityType = "notification"
)

// Activity is an append-only ledger entry. The sum of RewardPoints and RewardAmount
// over a user's activities is the authority for their point and credit totals.
type Activity struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	Type         ActivityType `json:"activity_type"`
	Description  string       `json:"description"`
	RewardPoints int          `json:"reward_points"`
	RewardAmount int          `json:"reward_amount"`

	// MilestoneNumber is set only on referral_milestone entries and is unique per user.
	MilestoneNumber *int `json:"milestone_number,omitempty"`

	Details   ActivityDetails `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewActivity builds a ledger entry with a fresh id.
func NewActivity(userID uuid.UUID, activityType ActivityType, description string, details ActivityDetails) *Activity {
	return &Activity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        activityType,
		Description: description,
		Details:     details,
	}
}

// DetailsKind discriminates the ActivityDetails variants when serialized.
type DetailsKind string

const (
	DetailsReferralProgress    DetailsKind = "referral_progress"
	DetailsMilestone           DetailsKind = "milestone"
	DetailsReferralReward      DetailsKind = "referral_reward"
	DetailsBusinessReferral    DetailsKind = "business_referral"
	DetailsProGrant            DetailsKind = "pro_grant"
	DetailsAchievement         DetailsKind = "achievement"
	DetailsNotification        DetailsKind = "notification"
	DetailsInvalidReferralCode DetailsKind = "invalid_referral_code"
)

// ActivityDetails is the closed set of structured payloads an activity can carry.
type ActivityDetails interface {
	Kind() DetailsKind
}

// ReferralProgressDetails accompanies referral_progress and referral_pending entries.
type ReferralProgressDetails struct {
	ReferrerID     uuid.UUID `json:"referrer_id"`
	ReferredUserID uuid.UUID `json:"referred_user_id"`
	ReferralCount  int       `json:"referral_count"`
	Progress       int       `json:"progress"`
	Target         int       `json:"target"`
}

func (ReferralProgressDetails) Kind() DetailsKind { return DetailsReferralProgress }

// MilestoneDetails accompanies referral_milestone entries.
type MilestoneDetails struct {
	MilestoneNumber int         `json:"milestone_number"`
	ReferralCount   int         `json:"referral_count"`
	RewardedUserIDs []uuid.UUID `json:"rewarded_user_ids"`
}

func (MilestoneDetails) Kind() DetailsKind { return DetailsMilestone }

// ReferralRewardDetails accompanies referral_reward entries of referred users.
type ReferralRewardDetails struct {
	ReferrerID      uuid.UUID `json:"referrer_id"`
	MilestoneNumber int       `json:"milestone_number"`
}

func (ReferralRewardDetails) Kind() DetailsKind { return DetailsReferralReward }

// BusinessReferralDetails accompanies business_referral entries.
type BusinessReferralDetails struct {
	ReferrerID     uuid.UUID `json:"referrer_id"`
	ReferredUserID uuid.UUID `json:"referred_user_id"`
	MonthsGranted  int       `json:"months_granted,omitempty"`
	Lifetime       bool      `json:"lifetime,omitempty"`
}

func (BusinessReferralDetails) Kind() DetailsKind { return DetailsBusinessReferral }

// ProGrantDetails accompanies pro_subscription entries.
type ProGrantDetails struct {
	Source   string     `json:"source"`
	Months   int        `json:"months,omitempty"`
	Lifetime bool       `json:"lifetime,omitempty"`
	Expiry   *time.Time `json:"expiry,omitempty"`
}

func (ProGrantDetails) Kind() DetailsKind { return DetailsProGrant }

// AchievementDetails accompanies achievement entries.
type AchievementDetails struct {
	AchievementType AchievementType `json:"achievement_type"`
}

func (AchievementDetails) Kind() DetailsKind { return DetailsAchievement }

// NotificationDetails records the outcome of a reward email dispatch.
type NotificationDetails struct {
	RewardType RewardType `json:"reward_type"`
	Delivered  bool       `json:"delivered"`
	Reason     string     `json:"reason,omitempty"`
}

func (NotificationDetails) Kind() DetailsKind { return DetailsNotification }

// InvalidReferralCodeDetails records a registration whose referral code did not resolve.
type InvalidReferralCodeDetails struct {
	Code string `json:"code"`
}

func (InvalidReferralCodeDetails) Kind() DetailsKind { return DetailsInvalidReferralCode }

type detailsEnvelope struct {
	Kind DetailsKind     `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalActivityDetails encodes details with their discriminator. Nil encodes to nil.
func MarshalActivityDetails(details ActivityDetails) ([]byte, error) {
	if details == nil {
		return nil, nil
	}

	data, err := json.Marshal(details)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal activity details")
	}

	out, err := json.Marshal(detailsEnvelope{Kind: details.Kind(), Data: data})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal activity details envelope")
	}

	return out, nil
}

// UnmarshalActivityDetails decodes a payload produced by MarshalActivityDetails.
func UnmarshalActivityDetails(raw []byte) (ActivityDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var env detailsEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal activity details envelope")
	}

	var (
		details ActivityDetails
		err     error
	)
	switch env.Kind {
	case DetailsReferralProgress:
		details = decodeDetails[ReferralProgressDetails](env.Data, &err)
	case DetailsMilestone:
		details = decodeDetails[MilestoneDetails](env.Data, &err)
	case DetailsReferralReward:
		details = decodeDetails[ReferralRewardDetails](env.Data, &err)
	case DetailsBusinessReferral:
		details = decodeDetails[BusinessReferralDetails](env.Data, &err)
	case DetailsProGrant:
		details = decodeDetails[ProGrantDetails](env.Data, &err)
	case DetailsAchievement:
		details = decodeDetails[AchievementDetails](env.Data, &err)
	case DetailsNotification:
		details = decodeDetails[NotificationDetails](env.Data, &err)
	case DetailsInvalidReferralCode:
		details = decodeDetails[InvalidReferralCodeDetails](env.Data, &err)
	default:
		return nil, errors.Errorf("unknown activity details kind %q", env.Kind)
	}

	return details, err
}

func decodeDetails[T ActivityDetails](data json.RawMessage, errOut *error) ActivityDetails {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		*errOut = errors.Wrapf(err, "failed to unmarshal %s details", v.Kind())

		return nil
	}

	return v
}
