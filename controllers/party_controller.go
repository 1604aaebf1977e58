package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/models"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type PartyController struct {
	partyService *services.PartyService
}

func NewPartyController(partyService *services.PartyService) *PartyController {
	return &PartyController{partyService: partyService}
}

func (pc *PartyController) List(c *gin.Context) {
	param := services.ListPartyParam{HostID: middlewares.HostID(c)}
	if name := c.Query("name"); name != "" {
		param.Name = &name
	}
	if statusStr := c.Query("status"); statusStr != "" {
		status := models.PartyStatus(statusStr)
		if !status.Valid() {
			utils.RespondError(c, utils.BadRequest("잘못된 요청입니다"))
			return
		}
		param.Status = &status
	}
	if fromStr := c.Query("date_from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			utils.RespondError(c, utils.BadRequest("잘못된 요청입니다"))
			return
		}
		param.DateFrom = &from
	}
	if toStr := c.Query("date_to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			utils.RespondError(c, utils.BadRequest("잘못된 요청입니다"))
			return
		}
		param.DateTo = &to
	}

	parties, err := pc.partyService.List(param)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "파티 목록", parties)
}

func (pc *PartyController) Get(c *gin.Context) {
	id, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	party, err := pc.partyService.Get(services.GetPartyParam{
		ID:     id,
		HostID: middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "파티 상세", party)
}

func (pc *PartyController) Create(c *gin.Context) {
	var body struct {
		Name        string     `json:"name" binding:"required"`
		Description *string    `json:"description"`
		Date        *time.Time `json:"date"`
		Location    *string    `json:"location"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	party, err := pc.partyService.Create(services.CreatePartyParam{
		HostID:      middlewares.HostID(c),
		Name:        body.Name,
		Description: body.Description,
		Date:        body.Date,
		Location:    body.Location,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "파티가 생성되었습니다", party)
}

func (pc *PartyController) Update(c *gin.Context) {
	id, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	var body struct {
		Name        *string             `json:"name"`
		Description *string             `json:"description"`
		Date        *time.Time          `json:"date"`
		Location    *string             `json:"location"`
		Status      *models.PartyStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}
	if body.Status != nil && !body.Status.Valid() {
		utils.RespondError(c, utils.BadRequest("잘못된 요청입니다"))
		return
	}

	party, err := pc.partyService.Update(services.UpdatePartyParam{
		ID:          id,
		HostID:      middlewares.HostID(c),
		Name:        body.Name,
		Description: body.Description,
		Date:        body.Date,
		Location:    body.Location,
		Status:      body.Status,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "파티가 수정되었습니다", party)
}

func (pc *PartyController) Delete(c *gin.Context) {
	id, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	if err := pc.partyService.Delete(services.DeletePartyParam{
		ID:     id,
		HostID: middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "파티가 삭제되었습니다", gin.H{"party_id": id})
}
