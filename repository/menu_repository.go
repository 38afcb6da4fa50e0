package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vasandree/hits-docker-practice/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetByName(ctx context.Context, name string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.WithContext(ctx).
		Where("name = ? AND is_deleted = ?", name, false).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns non-deleted items, optionally filtered by category and
// vegan flag.
func (r *MenuRepository) List(ctx context.Context, categories []entity.MenuItemCategory, vegan *bool) ([]entity.MenuItem, error) {
	q := r.DB.WithContext(ctx).Where("is_deleted = ?", false)
	if len(categories) > 0 {
		q = q.Where("category IN ?", categories)
	}
	if vegan != nil {
		q = q.Where("is_vegan = ?", *vegan)
	}
	var items []entity.MenuItem
	err := q.Order("name").Find(&items).Error
	return items, err
}

// CountActive counts items still on the menu.
func (r *MenuRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("is_deleted = ?", false).
		Count(&count).Error
	return count, err
}

func (r *MenuRepository) Create(ctx context.Context, m *entity.MenuItem) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

// SoftDelete hides the item from lookups; existing orders keep their
// frozen line items.
func (r *MenuRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Model(&entity.MenuItem{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
