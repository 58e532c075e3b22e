package service

import (
	"context"
)

// TaskEvent is the relay message telling the task worker to run an outbox task.
type TaskEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	TaskID    string `json:"task_id"`
	TaskType  string `json:"task_type"`
}

// TaskPublisher relays outbox tasks to the task worker through a message queue
type TaskPublisher interface {
	PublishTask(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
