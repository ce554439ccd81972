package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BaseResponse is the envelope every endpoint answers with.
type BaseResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type DataResponse struct {
	BaseResponse
	Data any `json:"data"`
}

type PagedResponse struct {
	BaseResponse
	Data         any   `json:"data"`
	CurrentPage  int   `json:"current_page"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

func RespondError(c *gin.Context, status int, err error) {
	msg := "an error occurred"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, BaseResponse{Success: false, Error: msg})
}

func RespondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, DataResponse{
		BaseResponse: BaseResponse{Success: true},
		Data:         payload,
	})
}
