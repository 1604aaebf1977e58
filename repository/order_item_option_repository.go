package repository

import (
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type OrderItemOptionFetchParam struct {
	OrderItemID *uint
}

type OrderItemOptionRepository struct {
	db *gorm.DB
}

func NewOrderItemOptionRepository(db *gorm.DB) *OrderItemOptionRepository {
	return &OrderItemOptionRepository{db: db}
}

func (r *OrderItemOptionRepository) WithTx(tx *gorm.DB) *OrderItemOptionRepository {
	return &OrderItemOptionRepository{db: tx}
}

func (r *OrderItemOptionRepository) Fetch(param OrderItemOptionFetchParam) ([]models.OrderItemOption, error) {
	query := r.db.Model(&models.OrderItemOption{})
	if param.OrderItemID != nil {
		query = query.Where("order_item_id = ?", *param.OrderItemID)
	}

	var options []models.OrderItemOption
	if err := query.Order("id ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *OrderItemOptionRepository) Save(option *models.OrderItemOption) error {
	return r.db.Save(option).Error
}
