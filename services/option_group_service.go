package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type OptionGroupListParam struct {
	MenuID uint
	HostID uint
}

type OptionGroupGetParam struct {
	ID     uint
	MenuID uint
	HostID uint
}

type OptionGroupCreateParam struct {
	MenuID     uint
	HostID     uint
	Name       string
	IsRequired bool
}

type OptionGroupUpdateParam struct {
	ID         uint
	MenuID     uint
	HostID     uint
	Name       *string
	IsRequired *bool
}

type OptionGroupDeleteParam struct {
	ID     uint
	MenuID uint
	HostID uint
}

type OptionGroupService struct {
	db        *gorm.DB
	groupRepo *repository.OptionGroupRepository
}

func NewOptionGroupService(db *gorm.DB) *OptionGroupService {
	return &OptionGroupService{
		db:        db,
		groupRepo: repository.NewOptionGroupRepository(db),
	}
}

func (s *OptionGroupService) List(param OptionGroupListParam) ([]models.OptionGroup, error) {
	if _, err := resolveMenuOwnership(s.db, param.MenuID, param.HostID); err != nil {
		return nil, err
	}
	return s.groupRepo.Fetch(repository.OptionGroupFetchParam{
		MenuID: &param.MenuID,
	})
}

func (s *OptionGroupService) Get(param OptionGroupGetParam) (*models.OptionGroup, error) {
	if _, err := resolveMenuOwnership(s.db, param.MenuID, param.HostID); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.FetchOne(repository.OptionGroupFetchOneParam{
		ID:     &param.ID,
		MenuID: &param.MenuID,
	})
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, utils.NotFound("옵션 그룹을 찾을 수 없습니다")
	}
	return group, nil
}

func (s *OptionGroupService) Create(param OptionGroupCreateParam) (*models.OptionGroup, error) {
	var group *models.OptionGroup
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveMenuOwnership(tx, param.MenuID, param.HostID); err != nil {
			return err
		}
		if err := s.validateNameUnique(tx, param.MenuID, param.Name); err != nil {
			return err
		}

		now := time.Now()
		group = &models.OptionGroup{
			MenuID:     param.MenuID,
			Name:       param.Name,
			IsRequired: param.IsRequired,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		return s.groupRepo.WithTx(tx).Save(group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *OptionGroupService) Update(param OptionGroupUpdateParam) (*models.OptionGroup, error) {
	var group *models.OptionGroup
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveMenuOwnership(tx, param.MenuID, param.HostID); err != nil {
			return err
		}

		groupRepo := s.groupRepo.WithTx(tx)

		var err error
		group, err = groupRepo.FetchOne(repository.OptionGroupFetchOneParam{
			ID:     &param.ID,
			MenuID: &param.MenuID,
		})
		if err != nil {
			return err
		}
		if group == nil {
			return utils.NotFound("옵션 그룹을 찾을 수 없습니다")
		}

		if param.Name != nil && group.Name != *param.Name {
			if err := s.validateNameUnique(tx, param.MenuID, *param.Name); err != nil {
				return err
			}
			group.Name = *param.Name
		}
		if param.IsRequired != nil {
			group.IsRequired = *param.IsRequired
		}
		group.UpdatedAt = time.Now()

		return groupRepo.Save(group)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *OptionGroupService) Delete(param OptionGroupDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveMenuOwnership(tx, param.MenuID, param.HostID); err != nil {
			return err
		}

		groupRepo := s.groupRepo.WithTx(tx)

		group, err := groupRepo.FetchOne(repository.OptionGroupFetchOneParam{
			ID:     &param.ID,
			MenuID: &param.MenuID,
		})
		if err != nil {
			return err
		}
		if group == nil {
			return utils.NotFound("옵션 그룹을 찾을 수 없습니다")
		}

		now := time.Now()
		group.DeletedAt = &now
		return groupRepo.Save(group)
	})
}

func (s *OptionGroupService) validateNameUnique(tx *gorm.DB, menuID uint, name string) error {
	existing, err := s.groupRepo.WithTx(tx).FetchOne(repository.OptionGroupFetchOneParam{
		MenuID: &menuID,
		Name:   &name,
	})
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.Conflict("같은 이름의 옵션 그룹이 이미 존재합니다")
	}
	return nil
}
