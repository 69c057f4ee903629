package celebrities

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCelebrityNotFound = errors.New("celebrity not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Celebrity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Celebrity, error)
	Search(ctx context.Context, query string) ([]Celebrity, error)
	Create(ctx context.Context, celebrity *Celebrity) error
	Update(ctx context.Context, celebrity *Celebrity) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Celebrity, error) {
	var celebs []Celebrity
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&celebs).Error
	return celebs, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Celebrity, error) {
	var celeb Celebrity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&celeb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCelebrityNotFound
		}
		return nil, err
	}
	return &celeb, nil
}

// Search runs a single case-insensitive OR match over name, category and
// description. No ranking or pagination; mirrors the public search box.
func (r *repository) Search(ctx context.Context, query string) ([]Celebrity, error) {
	var celebs []Celebrity
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", pattern, pattern, pattern).
		Order("name ASC").
		Find(&celebs).Error
	return celebs, err
}

func (r *repository) Create(ctx context.Context, celebrity *Celebrity) error {
	return r.db.WithContext(ctx).Create(celebrity).Error
}

func (r *repository) Update(ctx context.Context, celebrity *Celebrity) error {
	return r.db.WithContext(ctx).Save(celebrity).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Celebrity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCelebrityNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Celebrity{}).Count(&count).Error
	return count, err
}
