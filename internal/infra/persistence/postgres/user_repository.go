package postgres

import (
	"context"

	domainerrors "booknow/internal/domain/errors"
	"booknow/internal/domain/entity"
	"booknow/internal/domain/repository"
	"booknow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const referralCodeIndex = "referral_code"

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	m := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isConstraintOn(err, referralCodeIndex) {
			return repository.ErrReferralCodeTaken
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)))
}

func (repo *userRepository) FindByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("referral_code = ?", entity.NormalizeReferralCode(code)))
}

func (repo *userRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id))
}

func (repo *userRepository) first(query *gorm.DB) (*entity.User, error) {
	var m model.UserModel
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&m), nil
}

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		FullName:     m.FullName,
		UserType:     entity.UserType(m.UserType),
		ReferralCode: m.ReferralCode,
		ReferredBy:   m.ReferredBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if user.IsBusiness() {
		user.BusinessProfile = &entity.BusinessProfile{
			BusinessName: m.BusinessName,
			Category:     m.BusinessCategory,
			City:         m.City,
		}
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	m := &model.UserModel{
		ID:           user.ID,
		Email:        entity.NormalizeEmail(user.Email),
		FullName:     user.FullName,
		UserType:     string(user.UserType),
		ReferralCode: user.ReferralCode,
		ReferredBy:   user.ReferredBy,
	}
	if user.BusinessProfile != nil {
		m.BusinessName = user.BusinessProfile.BusinessName
		m.BusinessCategory = user.BusinessProfile.Category
		m.City = user.BusinessProfile.City
	}

	return m
}

type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new credential repository
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

func (repo *credentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	m := &model.CredentialModel{
		ID:           credential.ID,
		UserID:       credential.UserID,
		PasswordHash: credential.PasswordHash,
	}
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}
	credential.CreatedAt = m.CreatedAt

	return nil
}

func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var m model.CredentialModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	return &entity.Credential{
		ID:           m.ID,
		UserID:       m.UserID,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}, nil
}
