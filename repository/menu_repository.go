package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type MenuFetchParam struct {
	CategoryID  *uint
	WithDeleted bool
}

type MenuFetchOneParam struct {
	ID          *uint
	CategoryID  *uint
	Name        *string
	WithDeleted bool
}

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{db: tx}
}

func (r *MenuRepository) Fetch(param MenuFetchParam) ([]models.Menu, error) {
	query := r.db.Model(&models.Menu{})
	if param.CategoryID != nil {
		query = query.Where("category_id = ?", *param.CategoryID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var menus []models.Menu
	if err := query.Order("display_order ASC, id ASC").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *MenuRepository) FetchOne(param MenuFetchOneParam) (*models.Menu, error) {
	query := r.db.Model(&models.Menu{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.CategoryID != nil {
		query = query.Where("category_id = ?", *param.CategoryID)
	}
	if param.Name != nil {
		query = query.Where("name = ?", *param.Name)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var menu models.Menu
	if err := query.First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Save(menu *models.Menu) error {
	return r.db.Save(menu).Error
}
