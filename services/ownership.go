package services

import (
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

// Ownership resolution walks the menu tree upward to the owning party. A
// missing node at any level is NotFound; only a party that exists but belongs
// to another host is Forbidden. Party-level resolution stays NotFound so a
// host cannot tell a foreign party apart from an absent one.

func resolvePartyOwnership(db *gorm.DB, partyID, hostID uint) (*models.Party, error) {
	party, err := repository.NewPartyRepository(db).FetchOne(repository.PartyFetchOneParam{
		ID:     &partyID,
		HostID: &hostID,
	})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, utils.NotFound("파티를 찾을 수 없습니다")
	}
	return party, nil
}

func resolveCategoryOwnership(db *gorm.DB, categoryID, hostID uint) (*models.Category, error) {
	category, err := repository.NewCategoryRepository(db).FetchOne(repository.CategoryFetchOneParam{
		ID: &categoryID,
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFound("카테고리를 찾을 수 없습니다")
	}

	party, err := repository.NewPartyRepository(db).FetchOne(repository.PartyFetchOneParam{
		ID:     &category.PartyID,
		HostID: &hostID,
	})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, utils.Forbidden("해당 카테고리에 대한 권한이 없습니다")
	}
	return category, nil
}

func resolveMenuOwnership(db *gorm.DB, menuID, hostID uint) (*models.Menu, error) {
	menu, err := repository.NewMenuRepository(db).FetchOne(repository.MenuFetchOneParam{
		ID: &menuID,
	})
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, utils.NotFound("메뉴를 찾을 수 없습니다")
	}

	category, err := repository.NewCategoryRepository(db).FetchOne(repository.CategoryFetchOneParam{
		ID: &menu.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFound("카테고리를 찾을 수 없습니다")
	}

	party, err := repository.NewPartyRepository(db).FetchOne(repository.PartyFetchOneParam{
		ID:     &category.PartyID,
		HostID: &hostID,
	})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, utils.Forbidden("해당 메뉴에 대한 권한이 없습니다")
	}
	return menu, nil
}

func resolveOptionGroupOwnership(db *gorm.DB, optionGroupID, hostID uint) (*models.OptionGroup, error) {
	group, err := repository.NewOptionGroupRepository(db).FetchOne(repository.OptionGroupFetchOneParam{
		ID: &optionGroupID,
	})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, utils.NotFound("옵션 그룹을 찾을 수 없습니다")
	}

	menu, err := repository.NewMenuRepository(db).FetchOne(repository.MenuFetchOneParam{
		ID: &group.MenuID,
	})
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, utils.NotFound("메뉴를 찾을 수 없습니다")
	}

	category, err := repository.NewCategoryRepository(db).FetchOne(repository.CategoryFetchOneParam{
		ID: &menu.CategoryID,
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.NotFound("카테고리를 찾을 수 없습니다")
	}

	party, err := repository.NewPartyRepository(db).FetchOne(repository.PartyFetchOneParam{
		ID:     &category.PartyID,
		HostID: &hostID,
	})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, utils.Forbidden("해당 옵션 그룹에 대한 권한이 없습니다")
	}
	return group, nil
}
