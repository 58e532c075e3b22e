package impl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pendingTask is an outbox row to write alongside the current transaction.
type pendingTask struct {
	taskType entity.TaskType
	payload  any
}

func statsTask(userID uuid.UUID) pendingTask {
	return pendingTask{taskType: entity.TaskRecalculateStats, payload: entity.UserTaskPayload{UserID: userID}}
}

func achievementsTask(userID uuid.UUID) pendingTask {
	return pendingTask{taskType: entity.TaskEvaluateAchievements, payload: entity.UserTaskPayload{UserID: userID}}
}

func notificationTask(payload entity.NotificationTaskPayload) pendingTask {
	return pendingTask{taskType: entity.TaskSendNotification, payload: payload}
}

func intPtr(v int) *int {
	return &v
}

// enqueueAll writes every task as due at now. Duplicate stats tasks for the same user are collapsed.
func enqueueAll(ctx context.Context, tasks repository.TaskRepository, now time.Time, pending ...pendingTask) error {
	seenStats := make(map[uuid.UUID]struct{})

	for _, p := range pending {
		if p.taskType == entity.TaskRecalculateStats {
			userID := p.payload.(entity.UserTaskPayload).UserID
			if _, dup := seenStats[userID]; dup {
				continue
			}
			seenStats[userID] = struct{}{}
		}

		task, err := entity.NewTask(p.taskType, p.payload, now)
		if err != nil {
			return err
		}
		if err := tasks.Enqueue(ctx, task); err != nil {
			return errors.Wrapf(err, "failed to enqueue %s task", p.taskType)
		}
	}

	return nil
}

// shareLink builds the public join link carrying a referral code.
func shareLink(baseURL, code string) string {
	u, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		return strings.TrimRight(baseURL, "?") + "?ref=" + url.QueryEscape(code)
	}

	q := u.Query()
	q.Set("ref", code)
	u.RawQuery = q.Encode()

	return u.String()
}
