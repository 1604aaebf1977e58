package repository

import (
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type OrderItemFetchParam struct {
	OrderID *uint
}

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) WithTx(tx *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: tx}
}

func (r *OrderItemRepository) Fetch(param OrderItemFetchParam) ([]models.OrderItem, error) {
	query := r.db.Model(&models.OrderItem{})
	if param.OrderID != nil {
		query = query.Where("order_id = ?", *param.OrderID)
	}

	var items []models.OrderItem
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderItemRepository) Save(item *models.OrderItem) error {
	return r.db.Save(item).Error
}
