package entity

// RewardType is the kind of reward a notification email announces.
type RewardType string

const (
	RewardTypePoints          RewardType = "points"
	RewardTypeCredits         RewardType = "credits"
	RewardTypeProSubscription RewardType = "pro_subscription"
	RewardTypeReferralBonus   RewardType = "referral_bonus"
	RewardTypeAchievement     RewardType = "achievement"
	RewardTypeCashback        RewardType = "cashback"
	RewardTypeDiscount        RewardType = "discount"
)

// IsValid reports whether the reward type is accepted by the notification endpoint.
func (t RewardType) IsValid() bool {
	switch t {
	case RewardTypePoints, RewardTypeCredits, RewardTypeProSubscription, RewardTypeReferralBonus,
		RewardTypeAchievement, RewardTypeCashback, RewardTypeDiscount:
		return true
	default:
		return false
	}
}
