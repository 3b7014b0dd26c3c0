package visit

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
	visits := protected.Group("/visits")
	{
		visits.POST("", h.Create)
		visits.GET("/member/:memberId", h.ListByMember)
		visits.GET("/stats", h.Stats)
		visits.GET("/:id", h.Get)
		visits.PUT("/:id", h.Update)
		visits.POST("/:id/complete", h.Complete)
		visits.POST("/:id/cancel", h.Cancel)

		visits.GET("", hubOnly, h.List)
		visits.DELETE("/:id", hubOnly, h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// The caller passes their own member id explicitly; the hub can also
	// register visits on behalf of members.
	visitorID := c.Query("visitor_id")
	if visitorID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "visitor_id is required")
		return
	}

	visit, err := h.service.Create(c.Request.Context(), visitorID, req)
	if err != nil {
		switch err {
		case ErrSelfVisit:
			response.Error(c, http.StatusBadRequest, "SELF_VISIT", "Você não pode registrar uma visita a si mesmo")
		case ErrVisitorNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visitante não encontrado")
		case ErrVisitedNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Membro visitado não encontrado")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create visit")
		}
		return
	}

	response.Success(c, http.StatusCreated, visit)
}

func (h *Handler) Get(c *gin.Context) {
	visit, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.VisitFilter
	f.Status = domain.VisitStatus(c.Query("status"))
	f.Purpose = domain.VisitPurpose(c.Query("purpose"))
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

	visits, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list visits")
		return
	}
	response.Success(c, http.StatusOK, visits)
}

func (h *Handler) ListByMember(c *gin.Context) {
	asVisitor := c.DefaultQuery("as_visitor", "true") == "true"
	status := domain.VisitStatus(c.Query("status"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	visits, err := h.service.ListByMember(c.Request.Context(), c.Param("memberId"), asVisitor, status, offset, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list visits")
		return
	}
	response.Success(c, http.StatusOK, visits)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	visit, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

func (h *Handler) Complete(c *gin.Context) {
	var req CompleteVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	visit, err := h.service.Complete(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

func (h *Handler) Cancel(c *gin.Context) {
	visit, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, visit)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Query("member_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrVisitNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Visita não encontrada")
	case ErrAlreadyHeld:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Esta visita já foi marcada como realizada")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
	}
}
