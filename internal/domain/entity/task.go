package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TaskType names a background effect handled by the task dispatcher.
type TaskType string

const (
	TaskProcessReferral           TaskType = "process_referral"
	TaskGrantInitialBusinessBonus TaskType = "grant_initial_business_bonus"
	TaskRecalculateStats          TaskType = "recalculate_stats"
	TaskSendNotification          TaskType = "send_notification"
	TaskEvaluateAchievements      TaskType = "evaluate_achievements"
)

// TaskStatus is the outbox row state.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusDead       TaskStatus = "dead"
)

// Task is a durable background effect written in the same transaction as the event that caused it.
type Task struct {
	ID        uuid.UUID       `json:"id"`
	Type      TaskType        `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Status    TaskStatus      `json:"status"`
	Attempts  int             `json:"attempts"`
	RunAt     time.Time       `json:"run_at"`
	LastError string          `json:"last_error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewTask builds a pending task whose payload is v encoded as JSON.
func NewTask(taskType TaskType, v any, runAt time.Time) (*Task, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s payload", taskType)
	}

	return &Task{
		ID:      uuid.New(),
		Type:    taskType,
		Payload: payload,
		Status:  TaskStatusPending,
		RunAt:   runAt,
	}, nil
}

// DecodePayload unmarshals the task payload into v.
func (t *Task) DecodePayload(v any) error {
	if err := json.Unmarshal(t.Payload, v); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s payload", t.Type)
	}

	return nil
}

// ReferralTaskPayload carries a redeemed referral from registration to the reward engine.
type ReferralTaskPayload struct {
	ReferrerID     uuid.UUID `json:"referrer_id"`
	ReferredUserID uuid.UUID `json:"referred_user_id"`
	ReferralCode   string    `json:"referral_code"`
}

// UserTaskPayload identifies the user a task applies to.
type UserTaskPayload struct {
	UserID uuid.UUID `json:"user_id"`
}

// NotificationTaskPayload describes one reward email.
type NotificationTaskPayload struct {
	UserID      uuid.UUID  `json:"user_id"`
	RewardType  RewardType `json:"reward_type"`
	Amount      *int       `json:"amount,omitempty"`
	Description string     `json:"description"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	Source      string     `json:"source,omitempty"`
}
