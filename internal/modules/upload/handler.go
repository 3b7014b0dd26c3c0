package upload

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/pkg/response"
)

type MemberReader interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Member, error)
}

type PhotoSetter interface {
	SetProfilePhoto(ctx context.Context, userID, photoURL string) (*domain.Member, error)
}

type Handler struct {
	store   BlobStore
	members MemberReader
	photos  PhotoSetter
}

func NewHandler(store BlobStore, members MemberReader, photos PhotoSetter) *Handler {
	return &Handler{store: store, members: members, photos: photos}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/upload/payment-proof", h.PaymentProof)
	protected.POST("/profile/photo", h.ProfilePhoto)
	protected.DELETE("/profile/photo", h.DeleteProfilePhoto)
}

// PaymentProof stores a receipt and returns its URL. The caller attaches
// the URL to their payment in a separate request.
func (h *Handler) PaymentProof(c *gin.Context) {
	data, name, ok := h.readFile(c)
	if !ok {
		return
	}

	url, err := h.store.Store(data, name, PaymentProofPolicy)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"url":      url,
		"filename": name,
		"size":     len(data),
	})
}

// ProfilePhoto replaces the caller's photo. The previous blob is removed
// after the new URL is persisted.
func (h *Handler) ProfilePhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	member, err := h.members.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusBadRequest, "NO_MEMBER_PROFILE", "Você precisa completar seu cadastro de membro primeiro")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	oldURL := member.ProfilePhotoURL

	data, name, ok := h.readFile(c)
	if !ok {
		return
	}

	url, err := h.store.Store(data, name, ProfilePhotoPolicy)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}

	updated, err := h.photos.SetProfilePhoto(c.Request.Context(), userID, url)
	if err != nil {
		_ = h.store.Delete(url)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		return
	}

	if oldURL != "" {
		_ = h.store.Delete(oldURL)
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile_photo_url": url,
		"profile_completed": updated.ProfileCompleted,
	})
}

func (h *Handler) DeleteProfilePhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	member, err := h.members.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Error(c, http.StatusBadRequest, "NO_MEMBER_PROFILE", "Você precisa completar seu cadastro de membro primeiro")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}

	if _, err := h.photos.SetProfilePhoto(c.Request.Context(), userID, ""); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		return
	}
	if member.ProfilePhotoURL != "" {
		_ = h.store.Delete(member.ProfilePhotoURL)
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Foto de perfil removida com sucesso"})
}

func (h *Handler) readFile(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Arquivo não enviado")
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Arquivo inválido")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Arquivo inválido")
		return nil, "", false
	}
	return data, fileHeader.Filename, true
}

func (h *Handler) writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Arquivo vazio")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Arquivo muito grande. Tamanho máximo: 5MB")
	case errors.Is(err, ErrInvalidExtension):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tipo de arquivo não permitido")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Falha ao salvar arquivo")
	}
}
