package repository

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type PartyFetchParam struct {
	HostID      *uint
	Name        *string // case-insensitive substring match
	Status      *models.PartyStatus
	DateFrom    *time.Time
	DateTo      *time.Time
	WithDeleted bool
}

type PartyFetchOneParam struct {
	ID          *uint
	HostID      *uint
	Name        *string // exact match
	Date        *time.Time
	StatusNot   *models.PartyStatus
	ExcludeID   *uint
	WithDeleted bool
}

type PartyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

func (r *PartyRepository) WithTx(tx *gorm.DB) *PartyRepository {
	return &PartyRepository{db: tx}
}

func (r *PartyRepository) Fetch(param PartyFetchParam) ([]models.Party, error) {
	query := r.db.Model(&models.Party{})
	if param.HostID != nil {
		query = query.Where("host_id = ?", *param.HostID)
	}
	if param.Name != nil {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*param.Name)+"%")
	}
	if param.Status != nil {
		query = query.Where("status = ?", *param.Status)
	}
	if param.DateFrom != nil {
		query = query.Where("date >= ?", *param.DateFrom)
	}
	if param.DateTo != nil {
		query = query.Where("date <= ?", *param.DateTo)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var parties []models.Party
	if err := query.Order("id ASC").Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *PartyRepository) FetchOne(param PartyFetchOneParam) (*models.Party, error) {
	query := r.db.Model(&models.Party{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.HostID != nil {
		query = query.Where("host_id = ?", *param.HostID)
	}
	if param.Name != nil {
		query = query.Where("name = ?", *param.Name)
	}
	if param.Date != nil {
		query = query.Where("date = ?", *param.Date)
	}
	if param.StatusNot != nil {
		query = query.Where("status <> ?", *param.StatusNot)
	}
	if param.ExcludeID != nil {
		query = query.Where("id <> ?", *param.ExcludeID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var party models.Party
	if err := query.First(&party).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &party, nil
}

func (r *PartyRepository) Save(party *models.Party) error {
	return r.db.Save(party).Error
}
