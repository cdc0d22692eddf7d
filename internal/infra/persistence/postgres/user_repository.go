// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	"truefind/internal/domain/repository"
	"truefind/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUID retrieves a single profile by the identity provider's UID.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by uid")
	}

	return toUserProfileDomain(&profileM), nil
}

// Create persists a new user profile.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromUserProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("uid already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user profile")
	}

	// Update the entity with generated values
	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateEmail refreshes the stored email for the given provider UID.
func (repo *userRepository) UpdateEmail(ctx context.Context, uid string, email string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("uid = ?", uid).
		Update("email", email)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("email must not be empty")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user email")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	profile := &entity.UserProfile{
		ID:        data.ID,
		UID:       data.UID,
		Email:     data.Email,
		Username:  data.Username,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.ProfilePic != nil {
		profile.ProfilePic = *data.ProfilePic
	}

	return profile
}

// fromUserProfileDomain converts a domain UserProfile entity to a GORM UserProfileModel.
func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.UserProfileModel{
		ID:       data.ID,
		UID:      data.UID,
		Email:    data.Email,
		Username: data.Username,
	}
	if data.ProfilePic != "" {
		pic := data.ProfilePic
		profileM.ProfilePic = &pic
	}

	return profileM
}
