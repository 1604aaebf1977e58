package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type OptionController struct {
	optionService *services.OptionService
}

func NewOptionController(optionService *services.OptionService) *OptionController {
	return &OptionController{optionService: optionService}
}

func (oc *OptionController) List(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	options, err := oc.optionService.List(services.OptionListParam{
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 목록", options)
}

func (oc *OptionController) Get(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "option_id")
	if !ok {
		return
	}

	option, err := oc.optionService.Get(services.OptionGetParam{
		ID:            id,
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 상세", option)
}

func (oc *OptionController) Create(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	option, err := oc.optionService.Create(services.OptionCreateParam{
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
		Name:          body.Name,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "옵션이 생성되었습니다", option)
}

func (oc *OptionController) Update(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "option_id")
	if !ok {
		return
	}

	var body struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	option, err := oc.optionService.Update(services.OptionUpdateParam{
		ID:            id,
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
		Name:          body.Name,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션이 수정되었습니다", option)
}

func (oc *OptionController) Delete(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "option_id")
	if !ok {
		return
	}

	if err := oc.optionService.Delete(services.OptionDeleteParam{
		ID:            id,
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션이 삭제되었습니다", gin.H{"option_id": id})
}

func (oc *OptionController) Reorder(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	var body struct {
		OptionIDs []uint `json:"option_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	options, err := oc.optionService.Reorder(services.OptionReorderParam{
		OptionGroupID: groupID,
		HostID:        middlewares.HostID(c),
		OptionIDs:     body.OptionIDs,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 순서가 변경되었습니다", options)
}
