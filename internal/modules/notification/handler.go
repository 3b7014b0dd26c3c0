package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gustavoml12/GrupoUnion/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.GET("/notifications/stats", h.Stats)
	rg.PATCH("/notifications/:id/read", h.MarkRead)
	rg.POST("/notifications/read-all", h.MarkAllRead)
	rg.DELETE("/notifications/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	unreadOnly := c.Query("unread_only") == "true"
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, unread, err := h.service.GetUserNotifications(c.Request.Context(), userID, unreadOnly, offset, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) MarkRead(c *gin.Context) {
	n, err := h.service.MarkAsRead(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark as read")
		return
	}
	response.Success(c, http.StatusOK, n)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	count, err := h.service.MarkAllAsRead(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark all as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marked_read": count})
}

func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
