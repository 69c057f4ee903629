package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookceleb/internal/admins"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repository interface {
	Create(ctx context.Context, profile *admins.Profile) error
	GetByEmail(ctx context.Context, email string) (*admins.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*admins.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, profile *admins.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*admins.Profile, error) {
	var profile admins.Profile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*admins.Profile, error) {
	var profile admins.Profile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&admins.Profile{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}
