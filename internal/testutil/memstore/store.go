// Package memstore is an in-memory implementation of every repository port, for scenario tests.
// Transactions are serialized and roll back by restoring a snapshot.
package memstore

import (
	"context"
	"sync"
	"time"

	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"

	"github.com/google/uuid"
)

type taskRow struct {
	task        entity.Task
	lockedUntil *time.Time
}

type state struct {
	users        map[uuid.UUID]entity.User
	credentials  map[uuid.UUID]entity.Credential
	referrals    []entity.Referral
	activities   []entity.Activity
	achievements []entity.Achievement
	stats        map[uuid.UUID]entity.UserStats
	dashboards   map[uuid.UUID]entity.BusinessSubscription
	follows      []entity.Follow
	tasks        map[uuid.UUID]*taskRow
	taskOrder    []uuid.UUID
}

func newState() state {
	return state{
		users:       make(map[uuid.UUID]entity.User),
		credentials: make(map[uuid.UUID]entity.Credential),
		stats:       make(map[uuid.UUID]entity.UserStats),
		dashboards:  make(map[uuid.UUID]entity.BusinessSubscription),
		tasks:       make(map[uuid.UUID]*taskRow),
	}
}

func (s state) clone() state {
	c := state{
		users:        make(map[uuid.UUID]entity.User, len(s.users)),
		credentials:  make(map[uuid.UUID]entity.Credential, len(s.credentials)),
		referrals:    append([]entity.Referral(nil), s.referrals...),
		activities:   append([]entity.Activity(nil), s.activities...),
		achievements: append([]entity.Achievement(nil), s.achievements...),
		stats:        make(map[uuid.UUID]entity.UserStats, len(s.stats)),
		dashboards:   make(map[uuid.UUID]entity.BusinessSubscription, len(s.dashboards)),
		follows:      append([]entity.Follow(nil), s.follows...),
		tasks:        make(map[uuid.UUID]*taskRow, len(s.tasks)),
		taskOrder:    append([]uuid.UUID(nil), s.taskOrder...),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.credentials {
		c.credentials[k] = v
	}
	for k, v := range s.stats {
		c.stats[k] = v
	}
	for k, v := range s.dashboards {
		c.dashboards[k] = v
	}
	for k, v := range s.tasks {
		row := *v
		c.tasks[k] = &row
	}

	return c
}

// Store holds the data. Its repositories are safe for concurrent use.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data state

	now func() time.Time

	// FailNext makes the next repository write fail with the given error, once.
	failNext error
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{data: newState(), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FailNextWrite makes the next write through any repository return err.
func (s *Store) FailNextWrite(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

// write runs fn under the data lock unless an injected failure is pending.
func (s *Store) write(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failNext; err != nil {
		s.failNext = nil

		return err
	}

	return fn(&s.data)
}

func (s *Store) read(fn func(d *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Execute serializes transactions. A failed fn restores the state it started from.
func (s *Store) Execute(_ context.Context, fn func(f repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()

		return err
	}

	return nil
}

var (
	_ repository.TransactionManager = (*Store)(nil)
	_ repository.RepositoryFactory  = (*Store)(nil)
)

func (s *Store) NewUserRepository() repository.UserRepository {
	return &userRepository{s: s}
}

func (s *Store) NewCredentialRepository() repository.CredentialRepository {
	return &credentialRepository{s: s}
}

func (s *Store) NewReferralRepository() repository.ReferralRepository {
	return &referralRepository{s: s}
}

func (s *Store) NewActivityRepository() repository.ActivityRepository {
	return &activityRepository{s: s}
}

func (s *Store) NewAchievementRepository() repository.AchievementRepository {
	return &achievementRepository{s: s}
}

func (s *Store) NewStatsRepository() repository.StatsRepository {
	return &statsRepository{s: s}
}

func (s *Store) NewBusinessRepository() repository.BusinessRepository {
	return &businessRepository{s: s}
}

func (s *Store) NewTaskRepository() repository.TaskRepository {
	return &taskRepository{s: s}
}

func (s *Store) NewFollowRepository() repository.FollowRepository {
	return &followRepository{s: s}
}

// Tasks returns every outbox row in enqueue order.
func (s *Store) Tasks() []*entity.Task {
	var out []*entity.Task
	s.read(func(d *state) {
		for _, id := range d.taskOrder {
			t := d.tasks[id].task
			out = append(out, &t)
		}
	})

	return out
}

// TasksOfType returns the outbox rows of one type in enqueue order.
func (s *Store) TasksOfType(taskType entity.TaskType) []*entity.Task {
	var out []*entity.Task
	for _, t := range s.Tasks() {
		if t.Type == taskType {
			out = append(out, t)
		}
	}

	return out
}

// Referrals returns every referral row in insert order.
func (s *Store) Referrals() []entity.Referral {
	var out []entity.Referral
	s.read(func(d *state) {
		out = append(out, d.referrals...)
	})

	return out
}
