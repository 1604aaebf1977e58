package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type CategoryListParam struct {
	PartyID uint
	HostID  uint
}

type CategoryGetParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type CategoryCreateParam struct {
	PartyID uint
	HostID  uint
	Name    string
}

type CategoryUpdateParam struct {
	ID      uint
	PartyID uint
	HostID  uint
	Name    *string
}

type CategoryDeleteParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type CategoryReorderParam struct {
	PartyID     uint
	HostID      uint
	CategoryIDs []uint
}

type CategoryService struct {
	db           *gorm.DB
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		db:           db,
		categoryRepo: repository.NewCategoryRepository(db),
	}
}

func (s *CategoryService) List(param CategoryListParam) ([]models.Category, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}
	return s.categoryRepo.Fetch(repository.CategoryFetchParam{
		PartyID: &param.PartyID,
	})
}

func (s *CategoryService) Get(param CategoryGetParam) (*models.Category, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FetchOne(repository.CategoryFetchOneParam{
		ID:      &param.ID,
		PartyID: &param.PartyID,
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFound("카테고리를 찾을 수 없습니다")
	}
	return category, nil
}

func (s *CategoryService) Create(param CategoryCreateParam) (*models.Category, error) {
	var category *models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}
		if err := s.validateNameUnique(tx, param.PartyID, param.Name); err != nil {
			return err
		}

		displayOrder, err := s.nextDisplayOrder(tx, param.PartyID)
		if err != nil {
			return err
		}

		now := time.Now()
		category = &models.Category{
			PartyID:      param.PartyID,
			Name:         param.Name,
			DisplayOrder: displayOrder,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return s.categoryRepo.WithTx(tx).Save(category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(param CategoryUpdateParam) (*models.Category, error) {
	var category *models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		categoryRepo := s.categoryRepo.WithTx(tx)

		var err error
		category, err = categoryRepo.FetchOne(repository.CategoryFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if category == nil {
			return utils.NotFound("카테고리를 찾을 수 없습니다")
		}

		if param.Name != nil && category.Name != *param.Name {
			if err := s.validateNameUnique(tx, param.PartyID, *param.Name); err != nil {
				return err
			}
			category.Name = *param.Name
			category.UpdatedAt = time.Now()
			return categoryRepo.Save(category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(param CategoryDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		categoryRepo := s.categoryRepo.WithTx(tx)

		category, err := categoryRepo.FetchOne(repository.CategoryFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if category == nil {
			return utils.NotFound("카테고리를 찾을 수 없습니다")
		}

		now := time.Now()
		category.DeletedAt = &now
		return categoryRepo.Save(category)
	})
}

// Reorder assigns 0-based display orders following the given id list.
// Categories left out of the list keep their relative order and are appended
// after the listed ones. An unknown id rolls the whole operation back.
func (s *CategoryService) Reorder(param CategoryReorderParam) ([]models.Category, error) {
	var result []models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		categoryRepo := s.categoryRepo.WithTx(tx)

		categories, err := categoryRepo.Fetch(repository.CategoryFetchParam{
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}

		if len(param.CategoryIDs) == 0 {
			result = categories
			return nil
		}

		byID := make(map[uint]*models.Category, len(categories))
		for i := range categories {
			byID[categories[i].ID] = &categories[i]
		}

		now := time.Now()
		listed := make(map[uint]bool, len(param.CategoryIDs))
		for index, categoryID := range param.CategoryIDs {
			category, ok := byID[categoryID]
			if !ok {
				return utils.NotFound(fmt.Sprintf("카테고리를 찾을 수 없습니다: %d", categoryID))
			}
			category.DisplayOrder = index
			category.UpdatedAt = now
			listed[categoryID] = true
		}

		// categories already sorted by current display order
		position := len(param.CategoryIDs)
		for i := range categories {
			if listed[categories[i].ID] {
				continue
			}
			categories[i].DisplayOrder = position
			categories[i].UpdatedAt = now
			position++
		}

		for i := range categories {
			if err := categoryRepo.Save(&categories[i]); err != nil {
				return err
			}
		}

		result, err = categoryRepo.Fetch(repository.CategoryFetchParam{
			PartyID: &param.PartyID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *CategoryService) validateNameUnique(tx *gorm.DB, partyID uint, name string) error {
	existing, err := s.categoryRepo.WithTx(tx).FetchOne(repository.CategoryFetchOneParam{
		PartyID: &partyID,
		Name:    &name,
	})
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.Conflict("같은 이름의 카테고리가 이미 존재합니다")
	}
	return nil
}

func (s *CategoryService) nextDisplayOrder(tx *gorm.DB, partyID uint) (int, error) {
	categories, err := s.categoryRepo.WithTx(tx).Fetch(repository.CategoryFetchParam{
		PartyID: &partyID,
	})
	if err != nil {
		return 0, err
	}

	next := 0
	for _, category := range categories {
		if category.DisplayOrder >= next {
			next = category.DisplayOrder + 1
		}
	}
	return next, nil
}
