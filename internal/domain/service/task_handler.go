package service

import (
	"context"
	"errors"

	"booknow/internal/domain/entity"
)

// ErrTaskPermanent marks a task failure that retrying cannot fix, such as an undecodable payload.
var ErrTaskPermanent = errors.New("task failed permanently")

// TaskHandler runs one type of outbox task. Handle must be safe to run more than once for the same task.
type TaskHandler interface {
	TaskType() entity.TaskType
	Handle(ctx context.Context, task *entity.Task) error
}

// TaskWaker nudges the outbox dispatcher after new tasks commit.
type TaskWaker interface {
	Wake()
}
