package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type ListPartyParam struct {
	HostID   uint
	Name     *string
	Status   *models.PartyStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

type GetPartyParam struct {
	ID     uint
	HostID uint
}

type CreatePartyParam struct {
	HostID      uint
	Name        string
	Description *string
	Date        *time.Time
	Location    *string
}

type UpdatePartyParam struct {
	ID          uint
	HostID      uint
	Name        *string
	Description *string
	Date        *time.Time
	Location    *string
	Status      *models.PartyStatus
}

type DeletePartyParam struct {
	ID     uint
	HostID uint
}

type PartyService struct {
	db        *gorm.DB
	partyRepo *repository.PartyRepository
	guestRepo *repository.PartyGuestRepository
}

func NewPartyService(db *gorm.DB) *PartyService {
	return &PartyService{
		db:        db,
		partyRepo: repository.NewPartyRepository(db),
		guestRepo: repository.NewPartyGuestRepository(db),
	}
}

func (s *PartyService) List(param ListPartyParam) ([]models.Party, error) {
	return s.partyRepo.Fetch(repository.PartyFetchParam{
		HostID:   &param.HostID,
		Name:     param.Name,
		Status:   param.Status,
		DateFrom: param.DateFrom,
		DateTo:   param.DateTo,
	})
}

func (s *PartyService) Get(param GetPartyParam) (*models.Party, error) {
	party, err := s.partyRepo.FetchOne(repository.PartyFetchOneParam{
		ID:     &param.ID,
		HostID: &param.HostID,
	})
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, utils.NotFound("파티를 찾을 수 없습니다")
	}
	return party, nil
}

func (s *PartyService) Create(param CreatePartyParam) (*models.Party, error) {
	var party *models.Party
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if param.Date != nil {
			if err := validateDateIsFuture(*param.Date); err != nil {
				return err
			}
			if err := s.validateNoDuplicate(tx, param.HostID, param.Name, *param.Date, nil); err != nil {
				return err
			}
		}

		now := time.Now()
		party = &models.Party{
			HostID:      param.HostID,
			Name:        param.Name,
			Description: param.Description,
			Date:        param.Date,
			Location:    param.Location,
			Status:      models.PartyStatusPlanning,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return s.partyRepo.WithTx(tx).Save(party)
	})
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (s *PartyService) Update(param UpdatePartyParam) (*models.Party, error) {
	var party *models.Party
	err := s.db.Transaction(func(tx *gorm.DB) error {
		partyRepo := s.partyRepo.WithTx(tx)

		var err error
		party, err = partyRepo.FetchOne(repository.PartyFetchOneParam{
			ID:     &param.ID,
			HostID: &param.HostID,
		})
		if err != nil {
			return err
		}
		if party == nil {
			return utils.NotFound("파티를 찾을 수 없습니다")
		}

		if param.Status != nil {
			if err := validateStatusTransition(party.Status, *param.Status); err != nil {
				return err
			}
		}

		if param.Date != nil {
			if party.Date == nil || !party.Date.Equal(*param.Date) {
				if err := validateDateIsFuture(*param.Date); err != nil {
					return err
				}
			}
		}

		newName := party.Name
		if param.Name != nil {
			newName = *param.Name
		}
		newDate := party.Date
		if param.Date != nil {
			newDate = param.Date
		}
		if newDate != nil && (param.Name != nil || param.Date != nil) {
			if err := s.validateNoDuplicate(tx, param.HostID, newName, *newDate, &party.ID); err != nil {
				return err
			}
		}

		if param.Name != nil {
			party.Name = *param.Name
		}
		if param.Description != nil {
			party.Description = param.Description
		}
		if param.Date != nil {
			party.Date = param.Date
		}
		if param.Location != nil {
			party.Location = param.Location
		}
		if param.Status != nil {
			party.Status = *param.Status
		}
		party.UpdatedAt = time.Now()

		return partyRepo.Save(party)
	})
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (s *PartyService) Delete(param DeletePartyParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		partyRepo := s.partyRepo.WithTx(tx)

		party, err := partyRepo.FetchOne(repository.PartyFetchOneParam{
			ID:     &param.ID,
			HostID: &param.HostID,
		})
		if err != nil {
			return err
		}
		if party == nil {
			return utils.NotFound("파티를 찾을 수 없습니다")
		}

		if err := s.validateCanDelete(tx, party); err != nil {
			return err
		}

		now := time.Now()
		party.DeletedAt = &now
		return partyRepo.Save(party)
	})
}

func validateDateIsFuture(date time.Time) error {
	if date.Before(time.Now()) {
		return utils.BadRequest("파티 날짜는 현재 시간 이후여야 합니다")
	}
	return nil
}

func (s *PartyService) validateNoDuplicate(tx *gorm.DB, hostID uint, name string, date time.Time, excludeID *uint) error {
	statusNot := models.PartyStatusCancelled
	duplicate, err := s.partyRepo.WithTx(tx).FetchOne(repository.PartyFetchOneParam{
		HostID:    &hostID,
		Name:      &name,
		Date:      &date,
		StatusNot: &statusNot,
		ExcludeID: excludeID,
	})
	if err != nil {
		return err
	}
	if duplicate != nil {
		return utils.Conflict("같은 날짜에 동일한 이름의 파티가 이미 존재합니다")
	}
	return nil
}

// validateStatusTransition enforces the party lifecycle. A same-state update is
// accepted as a no-op; CANCELLED is terminal.
func validateStatusTransition(current, next models.PartyStatus) error {
	if current == next {
		return nil
	}

	var allowed []models.PartyStatus
	switch current {
	case models.PartyStatusPlanning:
		allowed = []models.PartyStatus{models.PartyStatusOpen, models.PartyStatusCancelled}
	case models.PartyStatusOpen:
		allowed = []models.PartyStatus{models.PartyStatusClosed, models.PartyStatusCancelled}
	case models.PartyStatusClosed:
		allowed = []models.PartyStatus{models.PartyStatusOpen, models.PartyStatusCancelled}
	case models.PartyStatusCancelled:
		allowed = nil
	}

	for _, status := range allowed {
		if status == next {
			return nil
		}
	}
	return utils.BadRequest(fmt.Sprintf("%s에서 %s로 변경할 수 없습니다", current, next))
}

// Deletion is allowed for a CANCELLED party, or a PLANNING party that has no
// remaining guests. Everything else must be cancelled first.
func (s *PartyService) validateCanDelete(tx *gorm.DB, party *models.Party) error {
	if party.Status == models.PartyStatusCancelled {
		return nil
	}

	if party.Status == models.PartyStatusPlanning {
		guests, err := s.guestRepo.WithTx(tx).Fetch(repository.PartyGuestFetchParam{
			PartyID: &party.ID,
		})
		if err != nil {
			return err
		}
		if len(guests) == 0 {
			return nil
		}
	}

	return utils.BadRequest("파티를 삭제할 수 없습니다. 먼저 취소해주세요")
}
