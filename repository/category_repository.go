package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
)

type CategoryFetchParam struct {
	PartyID     *uint
	WithDeleted bool
}

type CategoryFetchOneParam struct {
	ID          *uint
	PartyID     *uint
	Name        *string // case-insensitive exact match
	WithDeleted bool
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) WithTx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) Fetch(param CategoryFetchParam) ([]models.Category, error) {
	query := r.db.Model(&models.Category{})
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var categories []models.Category
	if err := query.Order("display_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FetchOne(param CategoryFetchOneParam) (*models.Category, error) {
	query := r.db.Model(&models.Category{})
	if param.ID != nil {
		query = query.Where("id = ?", *param.ID)
	}
	if param.PartyID != nil {
		query = query.Where("party_id = ?", *param.PartyID)
	}
	if param.Name != nil {
		query = query.Where("LOWER(name) = ?", strings.ToLower(*param.Name))
	}
	if !param.WithDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var category models.Category
	if err := query.First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}
