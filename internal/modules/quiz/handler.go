package quiz

import (
	"errors"
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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, hubOnly gin.HandlerFunc) {
	videos := protected.Group("/videos")
	{
		videos.GET("", h.ListVideos)
		videos.GET("/progress", h.VideosWithProgress)
		videos.GET("/stats", h.CompletionStats)
		videos.GET("/:id", h.GetVideo)
		videos.POST("/:id/start", h.MarkStarted)
		videos.POST("/:id/complete", h.MarkCompleted)
		videos.GET("/:id/questions", h.ListQuestions)
		videos.GET("/:id/quiz-results", h.Results)

		videos.POST("", hubOnly, h.CreateVideo)
		videos.POST("/reorder", hubOnly, h.Reorder)
		videos.PUT("/:id", hubOnly, h.UpdateVideo)
		videos.DELETE("/:id", hubOnly, h.DeleteVideo)
		videos.POST("/:id/questions", hubOnly, h.CreateQuestion)
	}

	quiz := protected.Group("/quiz")
	{
		quiz.POST("/answers", h.SubmitAnswer)

		quiz.PUT("/questions/:id", hubOnly, h.UpdateQuestion)
		quiz.DELETE("/questions/:id", hubOnly, h.DeleteQuestion)
		quiz.POST("/questions/:id/options", hubOnly, h.AddOption)
		quiz.PUT("/options/:id", hubOnly, h.UpdateOption)
		quiz.DELETE("/options/:id", hubOnly, h.DeleteOption)
	}
}

// Videos

func (h *Handler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	video, err := h.service.CreateVideo(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create video")
		return
	}
	response.Success(c, http.StatusCreated, video)
}

func (h *Handler) GetVideo(c *gin.Context) {
	video, err := h.service.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, video)
}

func (h *Handler) ListVideos(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	videos, err := h.service.ListVideos(c.Request.Context(), includeInactive)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	video, err := h.service.UpdateVideo(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, video)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	if err := h.service.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Vídeo removido com sucesso"})
}

func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	videos, err := h.service.Reorder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reorder videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

// Progress

func (h *Handler) MarkStarted(c *gin.Context) {
	progress, err := h.service.MarkStarted(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, progress)
}

func (h *Handler) MarkCompleted(c *gin.Context) {
	progress, err := h.service.MarkCompleted(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, progress)
}

func (h *Handler) VideosWithProgress(c *gin.Context) {
	videos, err := h.service.VideosWithProgress(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

func (h *Handler) CompletionStats(c *gin.Context) {
	stats, err := h.service.CompletionStats(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Questions

func (h *Handler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	question, err := h.service.CreateQuestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, question)
}

func (h *Handler) ListQuestions(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	questions, err := h.service.ListQuestions(c.Request.Context(), c.Param("id"), includeInactive)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list questions")
		return
	}
	response.Success(c, http.StatusOK, questions)
}

func (h *Handler) UpdateQuestion(c *gin.Context) {
	var req UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	question, err := h.service.UpdateQuestion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, question)
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	if err := h.service.DeleteQuestion(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Pergunta removida com sucesso"})
}

// Options

func (h *Handler) AddOption(c *gin.Context) {
	var req CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	option, err := h.service.AddOption(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, option)
}

func (h *Handler) UpdateOption(c *gin.Context) {
	var req UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	option, err := h.service.UpdateOption(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, option)
}

func (h *Handler) DeleteOption(c *gin.Context) {
	if err := h.service.DeleteOption(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Opção removida com sucesso"})
}

// Answers

func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	answer, err := h.service.SubmitAnswer(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, answer)
}

func (h *Handler) Results(c *gin.Context) {
	result, err := h.service.Results(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute results")
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrVideoNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Vídeo não encontrado")
	case errors.Is(err, ErrQuestionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pergunta não encontrada")
	case errors.Is(err, ErrOptionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Opção não encontrada")
	case errors.Is(err, ErrOptionMismatch):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Opção inválida para esta pergunta")
	case errors.Is(err, ErrNoCorrectOption):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Pelo menos uma opção deve ser marcada como correta")
	case errors.Is(err, ErrMultipleCorrect):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Apenas uma opção pode ser marcada como correta")
	case errors.Is(err, ErrTooFewOptions):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A pergunta deve ter pelo menos 2 opções")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
