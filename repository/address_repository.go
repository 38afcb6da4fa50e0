package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{DB: db} }

// ListForUser returns the user's addresses in the order they were added.
func (r *AddressRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Address, error) {
	var addrs []entity.Address
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&addrs).Error
	return addrs, err
}

func (r *AddressRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	return r.DB.WithContext(ctx).Save(a).Error
}

func (r *AddressRepository) Delete(ctx context.Context, a *entity.Address) error {
	return r.DB.WithContext(ctx).Delete(a).Error
}

// ResetMain clears the main flag on every address of the user, so a new
// main address can be set.
func (r *AddressRepository) ResetMain(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).Model(&entity.Address{}).
		Where("user_id = ?", userID).
		Update("is_main", false).Error
}

func (r *AddressRepository) HasMain(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Address{}).
		Where("user_id = ? AND is_main = ?", userID, true).
		Count(&count).Error
	return count > 0, err
}

// PromoteFirstToMain marks the user's oldest address as main; used when
// the current main address was deleted.
func (r *AddressRepository) PromoteFirstToMain(ctx context.Context, userID uuid.UUID) error {
	var a entity.Address
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	a.IsMain = true
	return r.DB.WithContext(ctx).Save(&a).Error
}
