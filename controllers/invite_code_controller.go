package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type InviteCodeController struct {
	codeService *services.InviteCodeService
}

func NewInviteCodeController(codeService *services.InviteCodeService) *InviteCodeController {
	return &InviteCodeController{codeService: codeService}
}

func (ic *InviteCodeController) List(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	codes, err := ic.codeService.List(services.InviteCodeListParam{
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "초대 코드 목록", codes)
}

func (ic *InviteCodeController) Get(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "code_id")
	if !ok {
		return
	}

	code, err := ic.codeService.Get(services.InviteCodeGetParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "초대 코드 상세", code)
}

func (ic *InviteCodeController) Create(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	var body struct {
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	code, err := ic.codeService.Create(services.InviteCodeCreateParam{
		PartyID:   partyID,
		HostID:    middlewares.HostID(c),
		ExpiresAt: body.ExpiresAt,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "초대 코드가 생성되었습니다", code)
}

func (ic *InviteCodeController) Update(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "code_id")
	if !ok {
		return
	}

	var body struct {
		IsActive  *bool      `json:"is_active"`
		ExpiresAt *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	code, err := ic.codeService.Update(services.InviteCodeUpdateParam{
		ID:        id,
		PartyID:   partyID,
		HostID:    middlewares.HostID(c),
		IsActive:  body.IsActive,
		ExpiresAt: body.ExpiresAt,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "초대 코드가 수정되었습니다", code)
}

func (ic *InviteCodeController) Delete(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "code_id")
	if !ok {
		return
	}

	if err := ic.codeService.Delete(services.InviteCodeDeleteParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "초대 코드가 삭제되었습니다", gin.H{"code_id": id})
}
