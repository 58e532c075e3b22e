package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"

	"github.com/google/uuid"
)

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

type userRepository struct{ s *Store }

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	return r.s.write(func(d *state) error {
		for _, u := range d.users {
			if u.Email == user.Email {
				return repository.ErrUserAlreadyExists
			}
			if u.ReferralCode == user.ReferralCode {
				return repository.ErrReferralCodeTaken
			}
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = r.s.now()
			user.UpdatedAt = user.CreatedAt
		}
		d.users[user.ID] = *user

		return nil
	})
}

func (r *userRepository) find(match func(u *entity.User) bool) (*entity.User, error) {
	var found *entity.User
	r.s.read(func(d *state) {
		for _, u := range d.users {
			if match(&u) {
				found = &u

				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrUserNotFound
	}

	return found, nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)

	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *userRepository) FindByReferralCode(_ context.Context, code string) (*entity.User, error) {
	code = entity.NormalizeReferralCode(code)

	return r.find(func(u *entity.User) bool { return u.ReferralCode == code })
}

// LockByID relies on Execute serializing transactions.
func (r *userRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.FindByID(ctx, id)
}

type credentialRepository struct{ s *Store }

func (r *credentialRepository) Create(_ context.Context, credential *entity.Credential) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.users[credential.UserID]; !ok {
			return repository.ErrUserNotFound
		}
		d.credentials[credential.UserID] = *credential

		return nil
	})
}

func (r *credentialRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var (
		c  entity.Credential
		ok bool
	)
	r.s.read(func(d *state) { c, ok = d.credentials[userID] })
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return &c, nil
}

type referralRepository struct{ s *Store }

func (r *referralRepository) Create(_ context.Context, referral *entity.Referral) error {
	return r.s.write(func(d *state) error {
		_, referrerOK := d.users[referral.ReferrerID]
		_, referredOK := d.users[referral.ReferredUserID]
		if !referrerOK || !referredOK {
			return repository.ErrUserNotFound
		}
		for _, existing := range d.referrals {
			if existing.ReferredUserID == referral.ReferredUserID {
				return repository.ErrDuplicateReferral
			}
		}
		if referral.CreatedAt.IsZero() {
			referral.CreatedAt = r.s.now()
		}
		d.referrals = append(d.referrals, *referral)

		return nil
	})
}

func (r *referralRepository) FindByReferredUser(_ context.Context, referredUserID uuid.UUID) (*entity.Referral, error) {
	var found *entity.Referral
	r.s.read(func(d *state) {
		for _, ref := range d.referrals {
			if ref.ReferredUserID == referredUserID {
				found = &ref

				return
			}
		}
	})
	if found == nil {
		return nil, repository.ErrReferralNotFound
	}

	return found, nil
}

func (r *referralRepository) CountCompletedByReferrer(_ context.Context, referrerID uuid.UUID) (int, error) {
	n := 0
	r.s.read(func(d *state) {
		for _, ref := range d.referrals {
			if ref.ReferrerID == referrerID && ref.IsCompleted() {
				n++
			}
		}
	})

	return n, nil
}

func (r *referralRepository) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]*entity.Referral, error) {
	var out []*entity.Referral
	r.s.read(func(d *state) {
		for _, ref := range d.referrals {
			if ref.ReferrerID == referrerID {
				out = append(out, &ref)
			}
		}
	})

	return out, nil
}

// ListRecentCompletedByReferrer treats insert order as creation order.
func (r *referralRepository) ListRecentCompletedByReferrer(_ context.Context, referrerID uuid.UUID, limit int) ([]*entity.Referral, error) {
	var out []*entity.Referral
	r.s.read(func(d *state) {
		for i := len(d.referrals) - 1; i >= 0 && len(out) < limit; i-- {
			ref := d.referrals[i]
			if ref.ReferrerID == referrerID && ref.IsCompleted() {
				out = append(out, &ref)
			}
		}
	})

	return out, nil
}

type activityRepository struct{ s *Store }

func (r *activityRepository) Create(_ context.Context, activity *entity.Activity) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.users[activity.UserID]; !ok {
			return repository.ErrUserNotFound
		}
		if activity.MilestoneNumber != nil {
			for _, a := range d.activities {
				if a.UserID == activity.UserID && a.Type == activity.Type &&
					a.MilestoneNumber != nil && *a.MilestoneNumber == *activity.MilestoneNumber {
					return repository.ErrDuplicateActivity
				}
			}
		}
		if activity.CreatedAt.IsZero() {
			activity.CreatedAt = r.s.now()
		}
		d.activities = append(d.activities, *activity)

		return nil
	})
}

func (r *activityRepository) MilestoneExists(_ context.Context, userID uuid.UUID, milestoneNumber int) (bool, error) {
	exists := false
	r.s.read(func(d *state) {
		for _, a := range d.activities {
			if a.UserID == userID && a.Type == entity.ActivityReferralMilestone &&
				a.MilestoneNumber != nil && *a.MilestoneNumber == milestoneNumber {
				exists = true

				return
			}
		}
	})

	return exists, nil
}

func (r *activityRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	var out []*entity.Activity
	r.s.read(func(d *state) {
		for _, a := range d.activities {
			if a.UserID == userID {
				out = append(out, &a)
			}
		}
	})

	return out, nil
}

func (r *activityRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	all, _ := r.ListByUser(ctx, userID)
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}

	return page(all, limit, offset), nil
}

type achievementRepository struct{ s *Store }

func (r *achievementRepository) Create(_ context.Context, achievement *entity.Achievement) error {
	return r.s.write(func(d *state) error {
		for _, a := range d.achievements {
			if a.UserID == achievement.UserID && a.AchievementType == achievement.AchievementType {
				return repository.ErrAchievementExists
			}
		}
		d.achievements = append(d.achievements, *achievement)

		return nil
	})
}

func (r *achievementRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	var out []*entity.Achievement
	r.s.read(func(d *state) {
		for _, a := range d.achievements {
			if a.UserID == userID {
				out = append(out, &a)
			}
		}
	})

	return out, nil
}

func (r *achievementRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	all, _ := r.ListByUser(ctx, userID)

	return len(all), nil
}

type statsRepository struct{ s *Store }

func (r *statsRepository) Upsert(_ context.Context, stats *entity.UserStats) error {
	return r.s.write(func(d *state) error {
		d.stats[stats.UserID] = *stats

		return nil
	})
}

func (r *statsRepository) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var (
		st entity.UserStats
		ok bool
	)
	r.s.read(func(d *state) { st, ok = d.stats[userID] })
	if !ok {
		return nil, repository.ErrStatsNotFound
	}

	return &st, nil
}

func (r *statsRepository) CountWithMorePoints(_ context.Context, points int) (int, error) {
	n := 0
	r.s.read(func(d *state) {
		for _, st := range d.stats {
			if st.TotalPoints > points {
				n++
			}
		}
	})

	return n, nil
}

type businessRepository struct{ s *Store }

func (r *businessRepository) CreateDashboard(_ context.Context, userID uuid.UUID, now time.Time) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.dashboards[userID]; ok {
			return nil
		}
		d.dashboards[userID] = entity.BusinessSubscription{
			UserID:           userID,
			SubscriptionPlan: entity.PlanFree,
			PlanStatus:       entity.PlanStatusActive,
			UpdatedAt:        now,
		}

		return nil
	})
}

func (r *businessRepository) FindSubscription(_ context.Context, userID uuid.UUID) (*entity.BusinessSubscription, error) {
	var (
		sub entity.BusinessSubscription
		ok  bool
	)
	r.s.read(func(d *state) { sub, ok = d.dashboards[userID] })
	if !ok {
		return nil, repository.ErrDashboardNotFound
	}

	return &sub, nil
}

func (r *businessRepository) IsBusinessUser(_ context.Context, userID uuid.UUID) (bool, error) {
	var u entity.User
	r.s.read(func(d *state) { u = d.users[userID] })

	return u.IsBusiness(), nil
}

func extendPro(d *state, userID uuid.UUID, months int, now time.Time) (*entity.BusinessSubscription, error) {
	sub, ok := d.dashboards[userID]
	if !ok {
		return nil, repository.ErrDashboardNotFound
	}

	expiry := entity.ExtendProExpiry(sub.ProExpiresAt, months, now)
	sub.SubscriptionPlan = entity.PlanPro
	sub.PlanStatus = entity.PlanStatusActive
	sub.ProFeaturesEnabled = true
	sub.ProExpiresAt = &expiry
	sub.ProSubscriptionMonths += months
	sub.UpdatedAt = now
	d.dashboards[userID] = sub

	return &sub, nil
}

func grantLifetime(d *state, userID uuid.UUID, now time.Time) (bool, error) {
	sub, ok := d.dashboards[userID]
	if !ok {
		return false, repository.ErrDashboardNotFound
	}
	if sub.InitialProMonthsGiven {
		return false, nil
	}

	expiry := entity.LifetimeProExpiry
	sub.SubscriptionPlan = entity.PlanPro
	sub.PlanStatus = entity.PlanStatusActive
	sub.ProFeaturesEnabled = true
	sub.ProExpiresAt = &expiry
	sub.InitialProMonthsGiven = true
	sub.UpdatedAt = now
	d.dashboards[userID] = sub

	return true, nil
}

func (r *businessRepository) GrantProSubscription(_ context.Context, userID uuid.UUID, months int, now time.Time) (*entity.BusinessSubscription, error) {
	var sub *entity.BusinessSubscription
	err := r.s.write(func(d *state) error {
		var err error
		sub, err = extendPro(d, userID, months, now)

		return err
	})

	return sub, err
}

func (r *businessRepository) GrantInitialBusinessBonus(_ context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	var granted bool
	err := r.s.write(func(d *state) error {
		var err error
		granted, err = grantLifetime(d, userID, now)

		return err
	})

	return granted, err
}

func (r *businessRepository) ProcessBusinessReferral(_ context.Context, referrerID, referredID uuid.UUID, now time.Time) error {
	return r.s.write(func(d *state) error {
		snapshot := d.clone()
		if _, err := extendPro(d, referrerID, 1, now); err != nil {
			return err
		}
		sub := d.dashboards[referrerID]
		sub.ReferralProMonthsEarned++
		d.dashboards[referrerID] = sub

		if _, err := grantLifetime(d, referredID, now); err != nil {
			*d = snapshot

			return err
		}

		return nil
	})
}

type followRepository struct{ s *Store }

func (r *followRepository) Follow(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	created := false
	err := r.s.write(func(d *state) error {
		for _, f := range d.follows {
			if f.FollowerID == followerID && f.FollowingID == followingID {
				return nil
			}
		}
		d.follows = append(d.follows, entity.Follow{FollowerID: followerID, FollowingID: followingID, CreatedAt: r.s.now()})
		created = true

		return nil
	})

	return created, err
}

func (r *followRepository) Unfollow(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	removed := false
	err := r.s.write(func(d *state) error {
		for i, f := range d.follows {
			if f.FollowerID == followerID && f.FollowingID == followingID {
				d.follows = append(d.follows[:i], d.follows[i+1:]...)
				removed = true

				return nil
			}
		}

		return nil
	})

	return removed, err
}

func (r *followRepository) IsFollowing(_ context.Context, followerID, followingID uuid.UUID) (bool, error) {
	found := false
	r.s.read(func(d *state) {
		for _, f := range d.follows {
			if f.FollowerID == followerID && f.FollowingID == followingID {
				found = true

				return
			}
		}
	})

	return found, nil
}

func (r *followRepository) listProfiles(limit, offset int, pick func(f entity.Follow) (uuid.UUID, bool)) []*entity.FollowProfile {
	var out []*entity.FollowProfile
	r.s.read(func(d *state) {
		for i := len(d.follows) - 1; i >= 0; i-- {
			f := d.follows[i]
			id, ok := pick(f)
			if !ok {
				continue
			}
			u := d.users[id]
			p := &entity.FollowProfile{UserID: u.ID, FullName: u.FullName, UserType: u.UserType, FollowedAt: f.CreatedAt}
			if u.BusinessProfile != nil {
				p.BusinessName = u.BusinessProfile.BusinessName
			}
			out = append(out, p)
		}
	})

	return page(out, limit, offset)
}

func (r *followRepository) ListFollowers(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error) {
	return r.listProfiles(limit, offset, func(f entity.Follow) (uuid.UUID, bool) {
		return f.FollowerID, f.FollowingID == userID
	}), nil
}

func (r *followRepository) ListFollowing(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.FollowProfile, error) {
	return r.listProfiles(limit, offset, func(f entity.Follow) (uuid.UUID, bool) {
		return f.FollowingID, f.FollowerID == userID
	}), nil
}

func (r *followRepository) SearchBusinesses(_ context.Context, query string, limit, offset int) ([]*entity.BusinessListing, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	now := r.s.now()

	var out []*entity.BusinessListing
	r.s.read(func(d *state) {
		for _, u := range d.users {
			if !u.IsBusiness() || u.BusinessProfile == nil {
				continue
			}
			p := u.BusinessProfile
			haystack := strings.ToLower(p.BusinessName + "\n" + p.Category + "\n" + p.City)
			if query != "" && !strings.Contains(haystack, query) {
				continue
			}

			listing := &entity.BusinessListing{UserID: u.ID, BusinessName: p.BusinessName, Category: p.Category, City: p.City}
			for _, f := range d.follows {
				if f.FollowingID == u.ID {
					listing.FollowersCount++
				}
			}
			if sub, ok := d.dashboards[u.ID]; ok {
				listing.IsPro = sub.IsProActive(now)
			}
			out = append(out, listing)
		}
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].FollowersCount != out[j].FollowersCount {
			return out[i].FollowersCount > out[j].FollowersCount
		}

		return out[i].BusinessName < out[j].BusinessName
	})

	return page(out, limit, offset), nil
}

type taskRepository struct{ s *Store }

func (r *taskRepository) Enqueue(_ context.Context, task *entity.Task) error {
	return r.s.write(func(d *state) error {
		now := r.s.now()
		task.Status = entity.TaskStatusPending
		task.CreatedAt = now
		task.UpdatedAt = now
		d.tasks[task.ID] = &taskRow{task: *task}
		d.taskOrder = append(d.taskOrder, task.ID)

		return nil
	})
}

func (r *taskRepository) ClaimDue(_ context.Context, now time.Time, limit int, lease time.Duration) ([]*entity.Task, error) {
	var out []*entity.Task
	err := r.s.write(func(d *state) error {
		for _, id := range d.taskOrder {
			if len(out) >= limit {
				break
			}
			row := d.tasks[id]
			due := row.task.Status == entity.TaskStatusPending && !row.task.RunAt.After(now)
			expired := row.task.Status == entity.TaskStatusProcessing && row.lockedUntil != nil && row.lockedUntil.Before(now)
			if !due && !expired {
				continue
			}

			lockedUntil := now.Add(lease)
			row.lockedUntil = &lockedUntil
			row.task.Status = entity.TaskStatusProcessing
			row.task.UpdatedAt = now
			t := row.task
			out = append(out, &t)
		}

		return nil
	})

	return out, err
}

func (r *taskRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	var (
		t  entity.Task
		ok bool
	)
	r.s.read(func(d *state) {
		var row *taskRow
		row, ok = d.tasks[id]
		if ok {
			t = row.task
		}
	})
	if !ok {
		return nil, repository.ErrTaskNotFound
	}

	return &t, nil
}

func (r *taskRepository) update(id uuid.UUID, fn func(t *entity.Task)) error {
	return r.s.write(func(d *state) error {
		row, ok := d.tasks[id]
		if !ok {
			return repository.ErrTaskNotFound
		}
		fn(&row.task)
		row.lockedUntil = nil
		row.task.UpdatedAt = r.s.now()

		return nil
	})
}

func (r *taskRepository) MarkDone(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(t *entity.Task) {
		t.Status = entity.TaskStatusDone
	})
}

func (r *taskRepository) Reschedule(_ context.Context, id uuid.UUID, attempts int, runAt time.Time, lastErr string) error {
	return r.update(id, func(t *entity.Task) {
		t.Status = entity.TaskStatusPending
		t.Attempts = attempts
		t.RunAt = runAt
		t.LastError = lastErr
	})
}

func (r *taskRepository) MarkDead(_ context.Context, id uuid.UUID, attempts int, lastErr string) error {
	return r.update(id, func(t *entity.Task) {
		t.Status = entity.TaskStatusDead
		t.Attempts = attempts
		t.LastError = lastErr
	})
}
