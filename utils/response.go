package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError maps service errors to an HTTP status. AppError carries its own
// status; anything else is treated as an internal error.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), JSONResponse{
			Status:  false,
			Message: appErr.Message,
		})
		return
	}

	if ErrorLogger != nil {
		ErrorLogger.Printf("unexpected error: %v", err)
	}
	c.JSON(http.StatusInternalServerError, JSONResponse{
		Status:  false,
		Message: "서버 오류가 발생했습니다",
	})
}

func RespondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, JSONResponse{
		Status:  false,
		Message: err.Error(),
	})
}
