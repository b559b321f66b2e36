package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/dto/common"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewMessageResponse("Health check OK"))
}
