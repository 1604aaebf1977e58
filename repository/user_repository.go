package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type UserFetchOneParam struct {
	ID          *uint
	LoginID     *string
	WithDeleted bool
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) FetchOne(param UserFetchOneParam) (*models.User, error) {
	query := r.db.Model(&models.User{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.LoginID != nil {
		query = query.Where("login_id = ?", *param.LoginID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}
