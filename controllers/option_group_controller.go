package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type OptionGroupController struct {
	groupService *services.OptionGroupService
}

func NewOptionGroupController(groupService *services.OptionGroupService) *OptionGroupController {
	return &OptionGroupController{groupService: groupService}
}

func (oc *OptionGroupController) List(c *gin.Context) {
	menuID, ok := pathID(c, "menu_id")
	if !ok {
		return
	}

	groups, err := oc.groupService.List(services.OptionGroupListParam{
		MenuID: menuID,
		HostID: middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 그룹 목록", groups)
}

func (oc *OptionGroupController) Get(c *gin.Context) {
	menuID, ok := pathID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	group, err := oc.groupService.Get(services.OptionGroupGetParam{
		ID:     id,
		MenuID: menuID,
		HostID: middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 그룹 상세", group)
}

func (oc *OptionGroupController) Create(c *gin.Context) {
	menuID, ok := pathID(c, "menu_id")
	if !ok {
		return
	}

	var body struct {
		Name       string `json:"name" binding:"required"`
		IsRequired bool   `json:"is_required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	group, err := oc.groupService.Create(services.OptionGroupCreateParam{
		MenuID:     menuID,
		HostID:     middlewares.HostID(c),
		Name:       body.Name,
		IsRequired: body.IsRequired,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "옵션 그룹이 생성되었습니다", group)
}

func (oc *OptionGroupController) Update(c *gin.Context) {
	menuID, ok := pathID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	var body struct {
		Name       *string `json:"name"`
		IsRequired *bool   `json:"is_required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	group, err := oc.groupService.Update(services.OptionGroupUpdateParam{
		ID:         id,
		MenuID:     menuID,
		HostID:     middlewares.HostID(c),
		Name:       body.Name,
		IsRequired: body.IsRequired,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 그룹이 수정되었습니다", group)
}

func (oc *OptionGroupController) Delete(c *gin.Context) {
	menuID, ok := pathID(c, "menu_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	if err := oc.groupService.Delete(services.OptionGroupDeleteParam{
		ID:     id,
		MenuID: menuID,
		HostID: middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "옵션 그룹이 삭제되었습니다", gin.H{"group_id": id})
}
