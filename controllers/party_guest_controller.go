package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type PartyGuestController struct {
	guestService *services.PartyGuestService
}

func NewPartyGuestController(guestService *services.PartyGuestService) *PartyGuestController {
	return &PartyGuestController{guestService: guestService}
}

// Join is the only unauthenticated entry point for guests: an invite code
// plus a nickname, no account needed.
func (pg *PartyGuestController) Join(c *gin.Context) {
	var body struct {
		Code     string `json:"code" binding:"required"`
		Nickname string `json:"nickname" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	result, err := pg.guestService.Join(services.PartyGuestJoinParam{
		Code:     body.Code,
		Nickname: body.Nickname,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "파티에 참여했습니다", result)
}

func (pg *PartyGuestController) List(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	guests, err := pg.guestService.List(services.PartyGuestListParam{
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "게스트 목록", guests)
}

func (pg *PartyGuestController) Get(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "guest_id")
	if !ok {
		return
	}

	guest, err := pg.guestService.Get(services.PartyGuestGetParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "게스트 상세", guest)
}

func (pg *PartyGuestController) Update(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "guest_id")
	if !ok {
		return
	}

	var body struct {
		Nickname  *string `json:"nickname"`
		IsBlocked *bool   `json:"is_blocked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	guest, err := pg.guestService.Update(services.PartyGuestUpdateParam{
		ID:        id,
		PartyID:   partyID,
		HostID:    middlewares.HostID(c),
		Nickname:  body.Nickname,
		IsBlocked: body.IsBlocked,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "게스트 정보가 수정되었습니다", guest)
}

func (pg *PartyGuestController) Delete(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "guest_id")
	if !ok {
		return
	}

	if err := pg.guestService.Delete(services.PartyGuestDeleteParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "게스트가 삭제되었습니다", gin.H{"guest_id": id})
}
