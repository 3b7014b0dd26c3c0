package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *domain.OnboardingVideo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.OnboardingVideo, error) {
	var v domain.OnboardingVideo
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) Update(ctx context.Context, v *domain.OnboardingVideo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.OnboardingVideo{}, "id = ?", id).Error
}

func (r *VideoRepository) List(ctx context.Context, includeInactive bool) ([]domain.OnboardingVideo, error) {
	q := r.db.WithContext(ctx)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var videos []domain.OnboardingVideo
	err := q.Order("display_order ASC").Find(&videos).Error
	return videos, err
}

// Progress

func (r *VideoRepository) GetProgress(ctx context.Context, userID, videoID string) (*domain.VideoProgress, error) {
	var p domain.VideoProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *VideoRepository) ListProgress(ctx context.Context, userID string) ([]domain.VideoProgress, error) {
	var ps []domain.VideoProgress
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&ps).Error
	return ps, err
}

func (r *VideoRepository) CreateProgress(ctx context.Context, p *domain.VideoProgress) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *VideoRepository) UpdateProgress(ctx context.Context, p *domain.VideoProgress) error {
	return r.db.WithContext(ctx).Save(p).Error
}
