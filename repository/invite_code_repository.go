package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type InviteCodeFetchParam struct {
	PartyID     *uint
	IsActive    *bool
	WithDeleted bool
}

type InviteCodeFetchOneParam struct {
	ID          *uint
	PartyID     *uint
	Code        *string // case-insensitive exact match
	IsActive    *bool
	WithDeleted bool
}

type InviteCodeRepository struct {
	db *gorm.DB
}

func NewInviteCodeRepository(db *gorm.DB) *InviteCodeRepository {
	return &InviteCodeRepository{db: db}
}

func (r *InviteCodeRepository) WithTx(tx *gorm.DB) *InviteCodeRepository {
	return &InviteCodeRepository{db: tx}
}

func (r *InviteCodeRepository) Fetch(param InviteCodeFetchParam) ([]models.InviteCode, error) {
	query := r.db.Model(&models.InviteCode{})
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.IsActive != nil {
		query = query.Where("is_active = ?", *param.IsActive)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var codes []models.InviteCode
	if err := query.Order("id ASC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *InviteCodeRepository) FetchOne(param InviteCodeFetchOneParam) (*models.InviteCode, error) {
	query := r.db.Model(&models.InviteCode{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.Code != nil {
		query = query.Where("UPPER(code) = ?", strings.ToUpper(*param.Code))
	}
	if param.IsActive != nil {
		query = query.Where("is_active = ?", *param.IsActive)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var code models.InviteCode
	if err := query.First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *InviteCodeRepository) Save(code *models.InviteCode) error {
	return r.db.Save(code).Error
}
