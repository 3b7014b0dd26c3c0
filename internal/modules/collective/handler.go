package collective

import (
	"net/http"
	"strconv"

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
	meetings := protected.Group("/collective-meetings")
	{
		meetings.GET("", h.List)
		meetings.GET("/member/:memberId", h.ListByMember)
		meetings.GET("/:id", h.Get)
		meetings.GET("/:id/attendees", h.Attendees)
		meetings.POST("/:id/confirm", h.ConfirmAttendance)

		meetings.POST("", hubOnly, h.Create)
		meetings.PUT("/:id", hubOnly, h.Update)
		meetings.POST("/:id/attendance", hubOnly, h.MarkAttendance)
		meetings.POST("/:id/complete", hubOnly, h.Complete)
		meetings.POST("/:id/cancel", hubOnly, h.Cancel)
		meetings.DELETE("/:id", hubOnly, h.Delete)
		meetings.GET("/stats", hubOnly, h.Stats)
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
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create meeting")
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
	f := h.parseFilter(c)
	meetings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list meetings")
		return
	}
	response.Success(c, http.StatusOK, meetings)
}

func (h *Handler) ListByMember(c *gin.Context) {
	f := h.parseFilter(c)
	meetings, err := h.service.ListByMember(c.Request.Context(), c.Param("memberId"), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list meetings")
		return
	}
	response.Success(c, http.StatusOK, meetings)
}

func (h *Handler) Attendees(c *gin.Context) {
	attendees, err := h.service.Attendees(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, attendees)
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

func (h *Handler) ConfirmAttendance(c *gin.Context) {
	var req ConfirmAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Confirmed == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	memberID := c.Query("member_id")
	if memberID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "member_id is required")
		return
	}

	if err := h.service.ConfirmAttendance(c.Request.Context(), c.Param("id"), memberID, *req.Confirmed); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"confirmed": *req.Confirmed})
}

func (h *Handler) MarkAttendance(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	meeting, err := h.service.MarkAttendance(c.Request.Context(), c.Param("id"), req.MemberIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Complete(c *gin.Context) {
	var req CompleteMeetingRequest
	_ = c.ShouldBindJSON(&req)

	meeting, err := h.service.Complete(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, meeting)
}

func (h *Handler) Cancel(c *gin.Context) {
	meeting, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
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

func (h *Handler) parseFilter(c *gin.Context) repository.CollectiveMeetingFilter {
	var f repository.CollectiveMeetingFilter
	f.Status = domain.CollectiveMeetingStatus(c.Query("status"))
	f.UpcomingOnly = c.Query("upcoming_only") == "true"
	f.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	return f
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrMeetingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reunião não encontrada")
	case ErrAttendeeNotFound:
		response.Error(c, http.StatusNotFound, "NOT_INVITED", "Membro não está na lista de convidados")
	case ErrAlreadyHeld:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Reunião já foi realizada")
	case ErrCancelled:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Reunião cancelada não pode ser alterada")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
	}
}
