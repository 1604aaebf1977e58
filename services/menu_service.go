package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type MenuListParam struct {
	CategoryID uint
	HostID     uint
}

type MenuGetParam struct {
	ID         uint
	CategoryID uint
	HostID     uint
}

type MenuCreateParam struct {
	CategoryID    uint
	HostID        uint
	Name          string
	Description   *string
	IsRecommended bool
	IsSoldOut     bool
}

type MenuUpdateParam struct {
	ID            uint
	CategoryID    uint
	HostID        uint
	Name          *string
	Description   *string
	IsRecommended *bool
	IsSoldOut     *bool
}

type MenuDeleteParam struct {
	ID         uint
	CategoryID uint
	HostID     uint
}

type MenuReorderParam struct {
	CategoryID uint
	HostID     uint
	MenuIDs    []uint
}

type MenuService struct {
	db       *gorm.DB
	menuRepo *repository.MenuRepository
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{
		db:       db,
		menuRepo: repository.NewMenuRepository(db),
	}
}

func (s *MenuService) List(param MenuListParam) ([]models.Menu, error) {
	if _, err := resolveCategoryOwnership(s.db, param.CategoryID, param.HostID); err != nil {
		return nil, err
	}
	return s.menuRepo.Fetch(repository.MenuFetchParam{
		CategoryID: &param.CategoryID,
	})
}

func (s *MenuService) Get(param MenuGetParam) (*models.Menu, error) {
	if _, err := resolveCategoryOwnership(s.db, param.CategoryID, param.HostID); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.FetchOne(repository.MenuFetchOneParam{
		ID:         &param.ID,
		CategoryID: &param.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, utils.NotFound("메뉴를 찾을 수 없습니다")
	}
	return menu, nil
}

func (s *MenuService) Create(param MenuCreateParam) (*models.Menu, error) {
	var menu *models.Menu
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategoryOwnership(tx, param.CategoryID, param.HostID); err != nil {
			return err
		}
		if err := s.validateNameUnique(tx, param.CategoryID, param.Name); err != nil {
			return err
		}

		displayOrder, err := s.nextDisplayOrder(tx, param.CategoryID)
		if err != nil {
			return err
		}

		now := time.Now()
		menu = &models.Menu{
			CategoryID:    param.CategoryID,
			Name:          param.Name,
			Description:   param.Description,
			IsRecommended: param.IsRecommended,
			IsSoldOut:     param.IsSoldOut,
			DisplayOrder:  displayOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return s.menuRepo.WithTx(tx).Save(menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Update(param MenuUpdateParam) (*models.Menu, error) {
	var menu *models.Menu
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategoryOwnership(tx, param.CategoryID, param.HostID); err != nil {
			return err
		}

		menuRepo := s.menuRepo.WithTx(tx)

		var err error
		menu, err = menuRepo.FetchOne(repository.MenuFetchOneParam{
			ID:         &param.ID,
			CategoryID: &param.CategoryID,
		})
		if err != nil {
			return err
		}
		if menu == nil {
			return utils.NotFound("메뉴를 찾을 수 없습니다")
		}

		if param.Name != nil && menu.Name != *param.Name {
			if err := s.validateNameUnique(tx, param.CategoryID, *param.Name); err != nil {
				return err
			}
			menu.Name = *param.Name
		}
		if param.Description != nil {
			menu.Description = param.Description
		}
		if param.IsRecommended != nil {
			menu.IsRecommended = *param.IsRecommended
		}
		if param.IsSoldOut != nil {
			menu.IsSoldOut = *param.IsSoldOut
		}
		menu.UpdatedAt = time.Now()

		return menuRepo.Save(menu)
	})
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) Delete(param MenuDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategoryOwnership(tx, param.CategoryID, param.HostID); err != nil {
			return err
		}

		menuRepo := s.menuRepo.WithTx(tx)

		menu, err := menuRepo.FetchOne(repository.MenuFetchOneParam{
			ID:         &param.ID,
			CategoryID: &param.CategoryID,
		})
		if err != nil {
			return err
		}
		if menu == nil {
			return utils.NotFound("메뉴를 찾을 수 없습니다")
		}

		now := time.Now()
		menu.DeletedAt = &now
		return menuRepo.Save(menu)
	})
}

func (s *MenuService) Reorder(param MenuReorderParam) ([]models.Menu, error) {
	var result []models.Menu
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveCategoryOwnership(tx, param.CategoryID, param.HostID); err != nil {
			return err
		}

		menuRepo := s.menuRepo.WithTx(tx)

		menus, err := menuRepo.Fetch(repository.MenuFetchParam{
			CategoryID: &param.CategoryID,
		})
		if err != nil {
			return err
		}

		if len(param.MenuIDs) == 0 {
			result = menus
			return nil
		}

		byID := make(map[uint]*models.Menu, len(menus))
		for i := range menus {
			byID[menus[i].ID] = &menus[i]
		}

		now := time.Now()
		listed := make(map[uint]bool, len(param.MenuIDs))
		for index, menuID := range param.MenuIDs {
			menu, ok := byID[menuID]
			if !ok {
				return utils.NotFound(fmt.Sprintf("메뉴를 찾을 수 없습니다: %d", menuID))
			}
			menu.DisplayOrder = index
			menu.UpdatedAt = now
			listed[menuID] = true
		}

		position := len(param.MenuIDs)
		for i := range menus {
			if listed[menus[i].ID] {
				continue
			}
			menus[i].DisplayOrder = position
			menus[i].UpdatedAt = now
			position++
		}

		for i := range menus {
			if err := menuRepo.Save(&menus[i]); err != nil {
				return err
			}
		}

		result, err = menuRepo.Fetch(repository.MenuFetchParam{
			CategoryID: &param.CategoryID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *MenuService) validateNameUnique(tx *gorm.DB, categoryID uint, name string) error {
	existing, err := s.menuRepo.WithTx(tx).FetchOne(repository.MenuFetchOneParam{
		CategoryID: &categoryID,
		Name:       &name,
	})
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.Conflict("같은 이름의 메뉴가 이미 존재합니다")
	}
	return nil
}

func (s *MenuService) nextDisplayOrder(tx *gorm.DB, categoryID uint) (int, error) {
	menus, err := s.menuRepo.WithTx(tx).Fetch(repository.MenuFetchParam{
		CategoryID: &categoryID,
	})
	if err != nil {
		return 0, err
	}

	next := 0
	for _, menu := range menus {
		if menu.DisplayOrder >= next {
			next = menu.DisplayOrder + 1
		}
	}
	return next, nil
}
