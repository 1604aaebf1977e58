package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/middlewares"
	"github.com/wonjiyap/homeorder/services"
	"github.com/wonjiyap/homeorder/utils"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (cc *CategoryController) List(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	categories, err := cc.categoryService.List(services.CategoryListParam{
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "카테고리 목록", categories)
}

func (cc *CategoryController) Get(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	category, err := cc.categoryService.Get(services.CategoryGetParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "카테고리 상세", category)
}

func (cc *CategoryController) Create(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
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

	category, err := cc.categoryService.Create(services.CategoryCreateParam{
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
		Name:    body.Name,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "카테고리가 생성되었습니다", category)
}

func (cc *CategoryController) Update(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "category_id")
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

	category, err := cc.categoryService.Update(services.CategoryUpdateParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
		Name:    body.Name,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "카테고리가 수정되었습니다", category)
}

func (cc *CategoryController) Delete(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	if err := cc.categoryService.Delete(services.CategoryDeleteParam{
		ID:      id,
		PartyID: partyID,
		HostID:  middlewares.HostID(c),
	}); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "카테고리가 삭제되었습니다", gin.H{"category_id": id})
}

func (cc *CategoryController) Reorder(c *gin.Context) {
	partyID, ok := pathID(c, "party_id")
	if !ok {
		return
	}

	var body struct {
		CategoryIDs []uint `json:"category_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondBadRequest(c, err)
		return
	}

	categories, err := cc.categoryService.Reorder(services.CategoryReorderParam{
		PartyID:     partyID,
		HostID:      middlewares.HostID(c),
		CategoryIDs: body.CategoryIDs,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "카테고리 순서가 변경되었습니다", categories)
}
