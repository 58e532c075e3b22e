// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"booknow/internal/domain/repository"
	"booknow/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReferralRepository() repository.ReferralRepository {
	return NewReferralRepository(f.tx)
}

func (f *gormRepositoryFactory) NewActivityRepository() repository.ActivityRepository {
	return NewActivityRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAchievementRepository() repository.AchievementRepository {
	return NewAchievementRepository(f.tx)
}

func (f *gormRepositoryFactory) NewStatsRepository() repository.StatsRepository {
	return NewStatsRepository(f.tx)
}

func (f *gormRepositoryFactory) NewBusinessRepository() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

func (f *gormRepositoryFactory) NewTaskRepository() repository.TaskRepository {
	return NewTaskRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic in fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
