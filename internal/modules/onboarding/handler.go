package onboarding

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the onboarding and member-administration endpoints.
// hubOnly guards the verification and listing surface, adminOnly the direct
// promote/reject bypass.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, hubOnly, adminOnly gin.HandlerFunc) {
	onb := protected.Group("/onboarding")
	{
		onb.POST("/apply", h.SubmitApplication)
		onb.POST("/payment/proof", h.UploadPaymentProof)
		onb.GET("/payment/me", h.MyPayment)
		onb.GET("/pix-info", h.PixInfo)

		onb.GET("/payments/pending", hubOnly, h.PendingPayments)
		onb.POST("/payments/:id/verify", hubOnly, h.VerifyPayment)

		onb.GET("/visitors/pending", hubOnly, h.PendingVisitors)
		onb.POST("/visitors/:id/approve", adminOnly, h.ApproveVisitor)
		onb.POST("/visitors/:id/reject", adminOnly, h.RejectVisitor)
	}

	members := protected.Group("/members")
	{
		members.POST("/profile", h.CreateMemberProfile)

		members.GET("", hubOnly, h.AllMembers)
		members.GET("/all", hubOnly, h.AllUsers)
		members.PATCH("/:userId/status", hubOnly, h.UpdateUserStatus)
	}
}

func (h *Handler) SubmitApplication(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.SubmitApplication(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
		case ErrNotVisitor:
			response.Error(c, http.StatusForbidden, "NOT_VISITOR", "Apenas visitantes podem se candidatar")
		case ErrApplicationExists:
			response.Error(c, http.StatusConflict, "APPLICATION_EXISTS", "Candidatura já existe")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit application")
		}
		return
	}

	response.Success(c, http.StatusCreated, member)
}

func (h *Handler) UploadPaymentProof(c *gin.Context) {
	var req PaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	payment, err := h.service.UploadPaymentProof(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if err == ErrNoPendingPayment {
			response.Error(c, http.StatusNotFound, "NO_PENDING_PAYMENT", "Pagamento pendente não encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to upload payment proof")
		return
	}

	response.Success(c, http.StatusOK, payment)
}

func (h *Handler) MyPayment(c *gin.Context) {
	payment, err := h.service.MyPayment(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if err == ErrPaymentNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Nenhum pagamento encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		return
	}
	response.Success(c, http.StatusOK, payment)
}

func (h *Handler) PixInfo(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.PaymentInstructions())
}

func (h *Handler) PendingPayments(c *gin.Context) {
	payments, err := h.service.PendingPayments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list pending payments")
		return
	}
	response.Success(c, http.StatusOK, payments)
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	payment, err := h.service.VerifyPayment(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		switch err {
		case ErrPaymentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pagamento não encontrado")
		case ErrPaymentNotVerifiable:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Pagamento já foi verificado")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify payment")
		}
		return
	}

	response.Success(c, http.StatusOK, payment)
}

func (h *Handler) CreateMemberProfile(c *gin.Context) {
	var req MemberProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.CreateMemberProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
		case ErrNotMember:
			response.Error(c, http.StatusForbidden, "NOT_MEMBER", "Apenas membros aprovados podem criar perfil")
		case ErrProfileExists:
			response.Error(c, http.StatusBadRequest, "PROFILE_EXISTS", "Perfil de membro já existe")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create member profile")
		}
		return
	}

	response.Success(c, http.StatusCreated, member)
}

func (h *Handler) AllMembers(c *gin.Context) {
	users, err := h.service.AllMembers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list members")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) AllUsers(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := h.service.AllUsers(c.Request.Context(), offset, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) UpdateUserStatus(c *gin.Context) {
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateUserStatus(c.Request.Context(), c.Param("userId"), domain.UserStatus(req.Status))
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user status")
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) PendingVisitors(c *gin.Context) {
	visitors, err := h.service.PendingVisitors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list pending visitors")
		return
	}
	response.Success(c, http.StatusOK, visitors)
}

func (h *Handler) ApproveVisitor(c *gin.Context) {
	user, err := h.service.ApproveVisitorToMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
		case ErrNotVisitor:
			response.Error(c, http.StatusBadRequest, "NOT_VISITOR", "Usuário não é um visitante")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to approve visitor")
		}
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) RejectVisitor(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	user, err := h.service.RejectVisitor(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Usuário não encontrado")
		case ErrNotVisitor:
			response.Error(c, http.StatusBadRequest, "NOT_VISITOR", "Usuário não é um visitante")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reject visitor")
		}
		return
	}
	response.Success(c, http.StatusOK, user)
}
