package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wonjiyap/homeorder/utils"
)

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondError(c, utils.BadRequest("잘못된 요청입니다"))
		return 0, false
	}
	return uint(id), true
}
