package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type InviteCodeListParam struct {
	PartyID uint
	HostID  uint
}

type InviteCodeGetParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type InviteCodeCreateParam struct {
	PartyID   uint
	HostID    uint
	ExpiresAt *time.Time
}

type InviteCodeUpdateParam struct {
	ID        uint
	PartyID   uint
	HostID    uint
	IsActive  *bool
	ExpiresAt *time.Time
}

type InviteCodeDeleteParam struct {
	ID      uint
	PartyID uint
	HostID  uint
}

type InviteCodeService struct {
	db       *gorm.DB
	codeRepo *repository.InviteCodeRepository
}

func NewInviteCodeService(db *gorm.DB) *InviteCodeService {
	return &InviteCodeService{
		db:       db,
		codeRepo: repository.NewInviteCodeRepository(db),
	}
}

func (s *InviteCodeService) List(param InviteCodeListParam) ([]models.InviteCode, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}
	return s.codeRepo.Fetch(repository.InviteCodeFetchParam{
		PartyID: &param.PartyID,
	})
}

func (s *InviteCodeService) Get(param InviteCodeGetParam) (*models.InviteCode, error) {
	if _, err := resolvePartyOwnership(s.db, param.PartyID, param.HostID); err != nil {
		return nil, err
	}

	code, err := s.codeRepo.FetchOne(repository.InviteCodeFetchOneParam{
		ID:      &param.ID,
		PartyID: &param.PartyID,
	})
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, utils.NotFound("초대 코드를 찾을 수 없습니다")
	}
	return code, nil
}

func (s *InviteCodeService) Create(param InviteCodeCreateParam) (*models.InviteCode, error) {
	var code *models.InviteCode
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		if param.ExpiresAt != nil {
			if err := validateExpiresAtIsFuture(*param.ExpiresAt); err != nil {
				return err
			}
		}

		code = &models.InviteCode{
			PartyID:   param.PartyID,
			Code:      generateInviteCode(),
			IsActive:  true,
			CreatedAt: time.Now(),
			ExpiresAt: param.ExpiresAt,
		}
		return s.codeRepo.WithTx(tx).Save(code)
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (s *InviteCodeService) Update(param InviteCodeUpdateParam) (*models.InviteCode, error) {
	var code *models.InviteCode
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		codeRepo := s.codeRepo.WithTx(tx)

		var err error
		code, err = codeRepo.FetchOne(repository.InviteCodeFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if code == nil {
			return utils.NotFound("초대 코드를 찾을 수 없습니다")
		}

		if param.ExpiresAt != nil {
			if code.ExpiresAt == nil || !code.ExpiresAt.Equal(*param.ExpiresAt) {
				if err := validateExpiresAtIsFuture(*param.ExpiresAt); err != nil {
					return err
				}
			}
			code.ExpiresAt = param.ExpiresAt
		}
		if param.IsActive != nil {
			code.IsActive = *param.IsActive
		}

		return codeRepo.Save(code)
	})
	if err != nil {
		return nil, err
	}
	return code, nil
}

func (s *InviteCodeService) Delete(param InviteCodeDeleteParam) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := resolvePartyOwnership(tx, param.PartyID, param.HostID); err != nil {
			return err
		}

		codeRepo := s.codeRepo.WithTx(tx)

		code, err := codeRepo.FetchOne(repository.InviteCodeFetchOneParam{
			ID:      &param.ID,
			PartyID: &param.PartyID,
		})
		if err != nil {
			return err
		}
		if code == nil {
			return utils.NotFound("초대 코드를 찾을 수 없습니다")
		}

		now := time.Now()
		code.IsActive = false
		code.DeletedAt = &now
		return codeRepo.Save(code)
	})
}

func validateExpiresAtIsFuture(expiresAt time.Time) error {
	if expiresAt.Before(time.Now()) {
		return utils.BadRequest("만료 시간은 현재 시간 이후여야 합니다")
	}
	return nil
}

func generateInviteCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}
