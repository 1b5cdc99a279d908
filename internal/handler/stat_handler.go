package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcampus-id/campus-backend/internal/service"
	"github.com/smartcampus-id/campus-backend/pkg/response"
)

type StatHandler struct {
	statService service.StatService
}

func NewStatHandler(statService service.StatService) *StatHandler {
	return &StatHandler{statService: statService}
}

func (h *StatHandler) GetTotalUsers(c *gin.Context) {
	total, err := h.statService.GetTotalUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_users": total})
}

func (h *StatHandler) GetTotalUsersByRole(c *gin.Context) {
	role, ok := parseRole(c)
	if !ok {
		return
	}

	total, err := h.statService.GetTotalUsersByRole(c.Request.Context(), role)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": role, "total_users": total})
}

func (h *StatHandler) GetTotalCourses(c *gin.Context) {
	total, err := h.statService.GetTotalCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_courses": total})
}
