package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.WithContext(ctx).Preload("User").First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) GetByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// Delete removes the member row; meetings, visits and attendee rows go with
// it via FK cascade.
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Member{}, "id = ?", id).Error
}

func (r *MemberRepository) List(ctx context.Context, offset, limit int) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	return members, err
}

// ListActiveProfiles returns the member profiles of every ACTIVE user with
// the MEMBER role. Used to snapshot collective-meeting invitees.
func (r *MemberRepository) ListActiveProfiles(ctx context.Context) ([]domain.Member, error) {
	var members []domain.Member
	err := r.db.WithContext(ctx).
		Joins("JOIN users u ON u.id = members.user_id").
		Where("u.role = ? AND u.status = ?", domain.RoleMember, domain.UserActive).
		Find(&members).Error
	return members, err
}
