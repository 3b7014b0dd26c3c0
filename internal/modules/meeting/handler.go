package meeting

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/pkg/response"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, hubOnly gin.HandlerFunc) {
	meetings := protected.Group("/meetings")
	{
		meetings.POST("", h.Create)
		meetings.GET("/available-slots", h.AvailableSlots)
		meetings.GET("/member/:memberId", h.ListByMember)
		meetings.GET("/:id", h.Get)
		meetings.PUT("/:id", h.Update)
		meetings.POST("/:id/cancel", h.Cancel)

		meetings.GET("", hubOnly, h.List)
		meetings.GET("/stats", hubOnly, h.Stats)
		meetings.POST("/:id/confirm", hubOnly, h.Confirm)
		meetings.POST("/:id/complete", hubOnly, h.Complete)
		meetings.DELETE("/:id", hubOnly, h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	meeting, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch err {
		case ErrMemberNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Membro não encontrado")
		case ErrPendingExists:
			response.Error(c, http.StatusConflict, "PENDING_EXISTS", "Você já possui uma reunião pendente. Aguarde a confirmação ou cancele a anterior.")
		case ErrInvalidDuration:
			response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "Duração inválida")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create meeting")
		}
		return
	}

	response.Success(c, http.StatusCreated, meeting)
}

func (h *Handler) Get(c *gin.Context) {
	meeting, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.MeetingFilter
	f.Status = domain.MeetingStatus(c.Query("status"))
	f.MeetingType = domain.MeetingType(c.Query("meeting_type"))
	if v := c.Query("date_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.DateFrom = &t
		}
	}
	if v := c.Query("date_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.DateTo = &t
		}
	}
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))

	meetings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list meetings")
		return
	}
	response.Success(c, http.StatusOK, meetings)
}

func (h *Handler) ListByMember(c *gin.Context) {
	includeCancelled := c.Query("include_cancelled") == "true"
	meetings, err := h.service.ListByMember(c.Request.Context(), c.Param("memberId"), includeCancelled)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list meetings")
		return
	}
	response.Success(c, http.StatusOK, meetings)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	meeting, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Confirm(c *gin.Context) {
	var req ConfirmMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	meeting, err := h.service.Confirm(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	meeting, err := h.service.Cancel(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Complete(c *gin.Context) {
	var req CompleteMeetingRequest
	_ = c.ShouldBindJSON(&req)

	meeting, err := h.service.Complete(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date must be YYYY-MM-DD")
		return
	}
	duration, _ := strconv.Atoi(c.DefaultQuery("duration_minutes", "60"))

	slots, err := h.service.AvailableSlots(c.Request.Context(), date, duration)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute available slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":             dateStr,
		"duration_minutes": duration,
		"available_slots":  slots,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrMeetingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reunião não encontrada")
	case ErrNotPending:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Apenas reuniões pendentes podem ser confirmadas")
	case ErrNotConfirmed:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Apenas reuniões confirmadas podem ser concluídas")
	case ErrTerminalState:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Reunião já concluída ou cancelada")
	case ErrInvalidDuration:
		response.Error(c, http.StatusBadRequest, "INVALID_DURATION", "Duração inválida")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
	}
}
