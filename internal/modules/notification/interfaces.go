package notification

import (
	"context"
	"time"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

// NotificationRepository is the persistence surface the service needs.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBulk(ctx context.Context, ns []domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool, offset, limit int) ([]domain.Notification, error)
	Update(ctx context.Context, n *domain.Notification) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error)
	CountByType(ctx context.Context, userID string) ([]repository.TypeCount, error)
}
