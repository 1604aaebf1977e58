package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type MenuController struct {
	menuService *services.MenuService
}

func NewMenuController(menuService *services.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

func (mc *MenuController) List(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	menus, err := mc.menuService.List(services.MenuListParam{
		CategoryID: categoryID,
		HostID:     middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "메뉴 목록", menus)
}

func (mc *MenuController) Get(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "menu_id")
	if !ok {
		return
	}

	menu, err := mc.menuService.Get(services.MenuGetParam{
		ID:         id,
		CategoryID: categoryID,
		HostID:     middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "메뉴 상세", menu)
}

func (mc *MenuController) Create(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	var body struct {
		Name          string  `json:"name" binding:"required"`
		Description   *string `json:"description"`
		IsRecommended bool    `json:"is_recommended"`
		IsSoldOut     bool    `json:"is_sold_out"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	menu, err := mc.menuService.Create(services.MenuCreateParam{
		CategoryID:    categoryID,
		HostID:        middlewares.HostID(c),
		Name:          body.Name,
		Description:   body.Description,
		IsRecommended: body.IsRecommended,
		IsSoldOut:     body.IsSoldOut,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "메뉴가 생성되었습니다", menu)
}

func (mc *MenuController) Update(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "menu_id")
	if !ok {
		return
	}

	var body struct {
		Name          *string `json:"name"`
		Description   *string `json:"description"`
		IsRecommended *bool   `json:"is_recommended"`
		IsSoldOut     *bool   `json:"is_sold_out"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	menu, err := mc.menuService.Update(services.MenuUpdateParam{
		ID:            id,
		CategoryID:    categoryID,
		HostID:        middlewares.HostID(c),
		Name:          body.Name,
		Description:   body.Description,
		IsRecommended: body.IsRecommended,
		IsSoldOut:     body.IsSoldOut,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "메뉴가 수정되었습니다", menu)
}

func (mc *MenuController) Delete(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "menu_id")
	if !ok {
		return
	}

	if err := mc.menuService.Delete(services.MenuDeleteParam{
		ID:         id,
		CategoryID: categoryID,
		HostID:     middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "메뉴가 삭제되었습니다", gin.H{"menu_id": id})
}

func (mc *MenuController) Reorder(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	var body struct {
		MenuIDs []uint `json:"menu_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	menus, err := mc.menuService.Reorder(services.MenuReorderParam{
		CategoryID: categoryID,
		HostID:     middlewares.HostID(c),
		MenuIDs:    body.MenuIDs,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "메뉴 순서가 변경되었습니다", menus)
}
