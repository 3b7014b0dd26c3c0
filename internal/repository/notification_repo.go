package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) CreateBulk(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ns).Error
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var n domain.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// ListByUser skips expired notifications.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("expires_at IS NULL OR expires_at > ?", time.Now().UTC())
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var ns []domain.Notification
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) Update(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]any{"is_read": true, "read_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Notification{}, "id = ?", id).Error
}

func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.Notification{})
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

type TypeCount struct {
	Type  domain.NotificationType
	Count int64
}

func (r *NotificationRepository) CountByType(ctx context.Context, userID string) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Select("type, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&rows).Error
	return rows, err
}
