package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type OrderFetchParam struct {
	PartyID *uint
	GuestID *uint
	Status  *models.OrderStatus
}

type OrderFetchOneParam struct {
	ID      *uint
	PartyID *uint
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

func (r *OrderRepository) Fetch(param OrderFetchParam) ([]models.Order, error) {
	query := r.db.Model(&models.Order{})
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.GuestID != nil {
		query = query.Where("guest_id = ?", *param.GuestID)
	}
	if param.Status != nil {
		query = query.Where("status = ?", *param.Status)
	}

	var orders []models.Order
	if err := query.Order("id ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FetchOne(param OrderFetchOneParam) (*models.Order, error) {
	query := r.db.Model(&models.Order{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}
