package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (ac *AuthController) Signup(c *gin.Context) {
	var body struct {
		LoginID  string `json:"login_id" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Nickname string `json:"nickname" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	user, err := ac.authService.Signup(services.SignupParam{
		LoginID:  body.LoginID,
		Password: body.Password,
		Nickname: body.Nickname,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "회원가입이 완료되었습니다", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		LoginID  string `json:"login_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	result, err := ac.authService.Login(services.LoginParam{
		LoginID:  body.LoginID,
		Password: body.Password,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "로그인되었습니다", result)
}
