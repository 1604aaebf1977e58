package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type OptionListParam struct {
	OptionGroupID uint
	HostID        uint
}

type OptionGetParam struct {
	ID            uint
	OptionGroupID uint
	HostID        uint
}

type OptionCreateParam struct {
	OptionGroupID uint
	HostID        uint
	Name          string
}

type OptionUpdateParam struct {
	ID            uint
	OptionGroupID uint
	HostID        uint
	Name          *string
}

type OptionDeleteParam struct {
	ID            uint
	OptionGroupID uint
	HostID        uint
}

type OptionReorderParam struct {
	OptionGroupID uint
	HostID        uint
	OptionIDs     []uint
}

type OptionService struct {
	db         *gorm.DB
	optionRepo *repository.OptionRepository
}

func NewOptionService(db *gorm.DB) *OptionService {
	return &OptionService{
		db:         db,
		optionRepo: repository.NewOptionRepository(db),
	}
}

func (s *OptionService) List(param OptionListParam) ([]models.Option, error) {
	if _, err := resolveOptionGroupOwnership(s.db, param.OptionGroupID, param.HostID); err != nil {
		return nil, err
	}
	return s.optionRepo.Fetch(repository.OptionFetchParam{
		OptionGroupID: &param.OptionGroupID,
	})
}

func (s *OptionService) Get(param OptionGetParam) (*models.Option, error) {
	if _, err := resolveOptionGroupOwnership(s.db, param.OptionGroupID, param.HostID); err != nil {
		return nil, err
	}

	option, err := s.optionRepo.FetchOne(repository.OptionFetchOneParam{
		ID:            &param.ID,
		OptionGroupID: &param.OptionGroupID,
	})
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, utils.NotFound("옵션을 찾을 수 없습니다")
	}
	return option, nil
}

func (s *OptionService) Create(param OptionCreateParam) (*models.Option, error) {
	var option *models.Option
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveOptionGroupOwnership(tx, param.OptionGroupID, param.HostID); err != nil {
			return err
		}
		if err := s.validateNameUnique(tx, param.OptionGroupID, param.Name); err != nil {
			return err
		}

		displayOrder, err := s.nextDisplayOrder(tx, param.OptionGroupID)
		if err != nil {
			return err
		}

		now := time.Now()
		option = &models.Option{
			OptionGroupID: param.OptionGroupID,
			Name:          param.Name,
			DisplayOrder:  displayOrder,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return s.optionRepo.WithTx(tx).Save(option)
	})
	if err != nil {
		return nil, err
	}
	return option, nil
}

func (s *OptionService) Update(param OptionUpdateParam) (*models.Option, error) {
	var option *models.Option
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveOptionGroupOwnership(tx, param.OptionGroupID, param.HostID); err != nil {
			return err
		}

		optionRepo := s.optionRepo.WithTx(tx)

		var err error
		option, err = optionRepo.FetchOne(repository.OptionFetchOneParam{
			ID:            &param.ID,
			OptionGroupID: &param.OptionGroupID,
		})
		if err != nil {
			return err
		}
		if option == nil {
			return utils.NotFound("옵션을 찾을 수 없습니다")
		}

		if param.Name != nil && option.Name != *param.Name {
			if err := s.validateNameUnique(tx, param.OptionGroupID, *param.Name); err != nil {
				return err
			}
			option.Name = *param.Name
		}
		option.UpdatedAt = time.Now()

		return optionRepo.Save(option)
	})
	if err != nil {
		return nil, err
	}
	return option, nil
}

func (s *OptionService) Delete(param OptionDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveOptionGroupOwnership(tx, param.OptionGroupID, param.HostID); err != nil {
			return err
		}

		optionRepo := s.optionRepo.WithTx(tx)

		option, err := optionRepo.FetchOne(repository.OptionFetchOneParam{
			ID:            &param.ID,
			OptionGroupID: &param.OptionGroupID,
		})
		if err != nil {
			return err
		}
		if option == nil {
			return utils.NotFound("옵션을 찾을 수 없습니다")
		}

		now := time.Now()
		option.DeletedAt = &now
		return optionRepo.Save(option)
	})
}

func (s *OptionService) Reorder(param OptionReorderParam) ([]models.Option, error) {
	var result []models.Option
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolveOptionGroupOwnership(tx, param.OptionGroupID, param.HostID); err != nil {
			return err
		}

		optionRepo := s.optionRepo.WithTx(tx)

		options, err := optionRepo.Fetch(repository.OptionFetchParam{
			OptionGroupID: &param.OptionGroupID,
		})
		if err != nil {
			return err
		}

		if len(param.OptionIDs) == 0 {
			result = options
			return nil
		}

		byID := make(map[uint]*models.Option, len(options))
		for i := range options {
			byID[options[i].ID] = &options[i]
		}

		now := time.Now()
		listed := make(map[uint]bool, len(param.OptionIDs))
		for index, optionID := range param.OptionIDs {
			option, ok := byID[optionID]
			if !ok {
				return utils.NotFound(fmt.Sprintf("옵션을 찾을 수 없습니다: %d", optionID))
			}
			option.DisplayOrder = index
			option.UpdatedAt = now
			listed[optionID] = true
		}

		position := len(param.OptionIDs)
		for i := range options {
			if listed[options[i].ID] {
				continue
			}
			options[i].DisplayOrder = position
			options[i].UpdatedAt = now
			position++
		}

		for i := range options {
			if err := optionRepo.Save(&options[i]); err != nil {
				return err
			}
		}

		result, err = optionRepo.Fetch(repository.OptionFetchParam{
			OptionGroupID: &param.OptionGroupID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *OptionService) validateNameUnique(tx *gorm.DB, optionGroupID uint, name string) error {
	existing, err := s.optionRepo.WithTx(tx).FetchOne(repository.OptionFetchOneParam{
		OptionGroupID: &optionGroupID,
		Name:          &name,
	})
	if err != nil {
		return err
	}
	if existing != nil {
		return utils.Conflict("같은 이름의 옵션이 이미 존재합니다")
	}
	return nil
}

func (s *OptionService) nextDisplayOrder(tx *gorm.DB, optionGroupID uint) (int, error) {
	options, err := s.optionRepo.WithTx(tx).Fetch(repository.OptionFetchParam{
		OptionGroupID: &optionGroupID,
	})
	if err != nil {
		return 0, err
	}

	next := 0
	for _, option := range options {
		if option.DisplayOrder >= next {
			next = option.DisplayOrder + 1
		}
	}
	return next, nil
}
