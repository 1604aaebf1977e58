package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type OptionGroupFetchParam struct {
	MenuID      *uint
	WithDeleted bool
}

type OptionGroupFetchOneParam struct {
	ID          *uint
	MenuID      *uint
	Name        *string
	WithDeleted bool
}

type OptionGroupRepository struct {
	db *gorm.DB
}

func NewOptionGroupRepository(db *gorm.DB) *OptionGroupRepository {
	return &OptionGroupRepository{db: db}
}

func (r *OptionGroupRepository) WithTx(tx *gorm.DB) *OptionGroupRepository {
	return &OptionGroupRepository{db: tx}
}

func (r *OptionGroupRepository) Fetch(param OptionGroupFetchParam) ([]models.OptionGroup, error) {
	query := r.db.Model(&models.OptionGroup{})
	if param.MenuID != nil {
		query = query.Where("menu_id = ?", *param.MenuID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var groups []models.OptionGroup
	if err := query.Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *OptionGroupRepository) FetchOne(param OptionGroupFetchOneParam) (*models.OptionGroup, error) {
	query := r.db.Model(&models.OptionGroup{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.MenuID != nil {
		query = query.Where("menu_id = ?", *param.MenuID)
	}
	if param.Name != nil {
		query = query.Where("name = ?", *param.Name)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var group models.OptionGroup
	if err := query.First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *OptionGroupRepository) Save(group *models.OptionGroup) error {
	return r.db.Save(group).Error
}
