package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type PartyGuestJoinParam struct {
	Code     string
	Nickname string
}

type PartyGuestJoinResult struct {
	GuestID   uint   `json:"guest_id"`
	PartyID   uint   `json:"party_id"`
	PartyName string `json:"party_name"`
	Nickname  string `json:"nickname"`
}

type PartyGuestListParam struct {
	PartyID uint
	HostID  uint
}

type PartyGuestGetParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type PartyGuestUpdateParam struct {
	ID        uint
	PartyID   uint
	HostID    uint
	Nickname  *string
	IsBlocked *bool
}

type PartyGuestDeleteParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type PartyGuestService struct {
	db        *gorm.DB
	guestRepo *repository.PartyGuestRepository
	codeRepo  *repository.InviteCodeRepository
	partyRepo *repository.PartyRepository
}

func NewPartyGuestService(db *gorm.DB) *PartyGuestService {
	return &PartyGuestService{
		db:        db,
		guestRepo: repository.NewPartyGuestRepository(db),
		codeRepo:  repository.NewInviteCodeRepository(db),
		partyRepo: repository.NewPartyRepository(db),
	}
}

// Join admits a guest into a party through an invite code. An absent code is
// NotFound; a code that exists but is inactive, expired or deleted fails
// validation instead, so a guest can tell a typo from a dead invite.
func (s *PartyGuestService) Join(param PartyGuestJoinParam) (*PartyGuestJoinResult, error) {
	var result *PartyGuestJoinResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		inviteCode, err := s.codeRepo.WithTx(tx).FetchOne(repository.InviteCodeFetchOneParam{
			Code: &param.Code,
		})
		if err != nil {
			return err
		}
		if inviteCode == nil {
			return utils.NotFound("유효하지 않은 초대 코드입니다")
		}

		if !inviteCode.IsValid() {
			return utils.BadRequest("만료되었거나 비활성화된 초대 코드입니다")
		}

		party, err := s.partyRepo.WithTx(tx).FetchOne(repository.PartyFetchOneParam{
			ID: &inviteCode.PartyID,
		})
		if err != nil {
			return err
		}
		if party == nil {
			return utils.NotFound("파티를 찾을 수 없습니다")
		}

		if party.Status != models.PartyStatusOpen {
			return utils.BadRequest("현재 참여할 수 없는 파티입니다")
		}

		guestRepo := s.guestRepo.WithTx(tx)

		existing, err := guestRepo.FetchOne(repository.PartyGuestFetchOneParam{
			PartyID:  &party.ID,
			Nickname: &param.Nickname,
		})
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.Conflict("이미 사용 중인 닉네임입니다")
		}

		guest := &models.PartyGuest{
			PartyID:   party.ID,
			Nickname:  param.Nickname,
			IsBlocked: false,
			JoinedAt:  time.Now(),
		}
		if err := guestRepo.Save(guest); err != nil {
			return err
		}

		result = &PartyGuestJoinResult{
			GuestID:   guest.ID,
			PartyID:   party.ID,
			PartyName: party.Name,
			Nickname:  guest.Nickname,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PartyGuestService) List(param PartyGuestListParam) ([]models.PartyGuest, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}
	return s.guestRepo.Fetch(repository.PartyGuestFetchParam{
		PartyID: &param.PartyID,
	})
}

func (s *PartyGuestService) Get(param PartyGuestGetParam) (*models.PartyGuest, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.FetchOne(repository.PartyGuestFetchOneParam{
		ID:      &param.ID,
		PartyID: &param.PartyID,
	})
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, utils.NotFound("게스트를 찾을 수 없습니다")
	}
	return guest, nil
}

func (s *PartyGuestService) Update(param PartyGuestUpdateParam) (*models.PartyGuest, error) {
	var guest *models.PartyGuest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		guestRepo := s.guestRepo.WithTx(tx)

		var err error
		guest, err = guestRepo.FetchOne(repository.PartyGuestFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if guest == nil {
			return utils.NotFound("게스트를 찾을 수 없습니다")
		}

		if param.Nickname != nil {
			if guest.Nickname != *param.Nickname {
				existing, err := guestRepo.FetchOne(repository.PartyGuestFetchOneParam{
					PartyID:  &param.PartyID,
					Nickname: param.Nickname,
				})
				if err != nil {
					return err
				}
				if existing != nil {
					return utils.Conflict("이미 사용 중인 닉네임입니다")
				}
			}
			guest.Nickname = *param.Nickname
		}
		if param.IsBlocked != nil {
			guest.IsBlocked = *param.IsBlocked
		}

		return guestRepo.Save(guest)
	})
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (s *PartyGuestService) Delete(param PartyGuestDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		guestRepo := s.guestRepo.WithTx(tx)

		guest, err := guestRepo.FetchOne(repository.PartyGuestFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if guest == nil {
			return utils.NotFound("게스트를 찾을 수 없습니다")
		}

		now := time.Now()
		guest.DeletedAt = &now
		return guestRepo.Save(guest)
	})
}
