package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type OptionFetchParam struct {
	OptionGroupID *uint
	WithDeleted   bool
}

type OptionFetchOneParam struct {
	ID            *uint
	OptionGroupID *uint
	Name          *string
	WithDeleted   bool
}

type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

func (r *OptionRepository) WithTx(tx *gorm.DB) *OptionRepository {
	return &OptionRepository{db: tx}
}

func (r *OptionRepository) Fetch(param OptionFetchParam) ([]models.Option, error) {
	query := r.db.Model(&models.Option{})
	if param.OptionGroupID != nil {
		query = query.Where("option_group_id = ?", *param.OptionGroupID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var options []models.Option
	if err := query.Order("display_order ASC, id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *OptionRepository) FetchOne(param OptionFetchOneParam) (*models.Option, error) {
	query := r.db.Model(&models.Option{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.OptionGroupID != nil {
		query = query.Where("option_group_id = ?", *param.OptionGroupID)
	}
	if param.Name != nil {
		query = query.Where("name = ?", *param.Name)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var option models.Option
	if err := query.First(&option).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

func (r *OptionRepository) Save(option *models.Option) error {
	return r.db.Save(option).Error
}
