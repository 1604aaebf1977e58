package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/repository"
	"github.com/wonjiyap/homeorder/utils"
)

type SignupParam struct {
	LoginID  string
	Password string
	Nickname string
}

type LoginParam struct {
	LoginID  string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
}

type AuthService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: repository.NewUserRepository(db),
	}
}

func (s *AuthService) Signup(param SignupParam) (*models.User, error) {
	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := s.userRepo.WithTx(tx)

		existing, err := userRepo.FetchOne(repository.UserFetchOneParam{
			LoginID: &param.LoginID,
		})
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.Conflict("이미 사용중인 아이디입니다")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now()
		user = &models.User{
			LoginID:   param.LoginID,
			Password:  string(hashed),
			Nickname:  param.Nickname,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return userRepo.Save(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(param LoginParam) (*LoginResult, error) {
	user, err := s.userRepo.FetchOne(repository.UserFetchOneParam{
		LoginID: &param.LoginID,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFound("사용자를 찾을 수 없습니다")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password)); err != nil {
		return nil, utils.BadRequest("비밀번호가 일치하지 않습니다")
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{AccessToken: token}, nil
}
