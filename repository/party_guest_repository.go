package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type PartyGuestFetchParam struct {
	PartyID     *uint
	IsBlocked   *bool
	WithDeleted bool
}

type PartyGuestFetchOneParam struct {
	ID          *uint
	PartyID     *uint
	Nickname    *string
	WithDeleted bool
}

type PartyGuestRepository struct {
	db *gorm.DB
}

func NewPartyGuestRepository(db *gorm.DB) *PartyGuestRepository {
	return &PartyGuestRepository{db: db}
}

func (r *PartyGuestRepository) WithTx(tx *gorm.DB) *PartyGuestRepository {
	return &PartyGuestRepository{db: tx}
}

func (r *PartyGuestRepository) Fetch(param PartyGuestFetchParam) ([]models.PartyGuest, error) {
	query := r.db.Model(&models.PartyGuest{})
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.IsBlocked != nil {
		query = query.Where("is_blocked = ?", *param.IsBlocked)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var guests []models.PartyGuest
	if err := query.Order("id ASC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *PartyGuestRepository) FetchOne(param PartyGuestFetchOneParam) (*models.PartyGuest, error) {
	query := r.db.Model(&models.PartyGuest{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.Nickname != nil {
		query = query.Where("nickname = ?", *param.Nickname)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var guest models.PartyGuest
	if err := query.First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *PartyGuestRepository) Save(guest *models.PartyGuest) error {
	return r.db.Save(guest).Error
}
