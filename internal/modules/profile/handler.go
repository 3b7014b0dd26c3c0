package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gustavoml12/GrupoUnion/internal/pkg/response"
	"github.com/gustavoml12/GrupoUnion/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, hubOnly gin.HandlerFunc) {
	profile := protected.Group("/profile")
	{
		profile.GET("/completion", h.Completion)
		profile.PATCH("/update", h.Update)
	}

	protected.GET("/members/:userId/statistics", hubOnly, h.Statistics)
}

func (h *Handler) Completion(c *gin.Context) {
	completion, err := h.service.MyCompletion(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, completion)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Dados inválidos", errs)
		return
	}

	member, err := h.service.UpdateMyProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrMemberNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Membro não encontrado")
	case ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error")
	}
}
