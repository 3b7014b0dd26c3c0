package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MeetingRepository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	var m domain.Meeting
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Member.User").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MeetingRepository) Update(ctx context.Context, m *domain.Meeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Meeting{}, "id = ?", id).Error
}

// HasPendingForMember reports whether the member already holds a PENDING
// meeting.
func (r *MeetingRepository) HasPendingForMember(ctx context.Context, memberID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("member_id = ? AND status = ?", memberID, domain.MeetingPending).
		Count(&count).Error
	return count > 0, err
}

func (r *MeetingRepository) ListByMember(ctx context.Context, memberID string, includeCancelled bool) ([]domain.Meeting, error) {
	q := r.db.WithContext(ctx).Where("member_id = ?", memberID)
	if !includeCancelled {
		q = q.Where("status <> ?", domain.MeetingCancelled)
	}

	var meetings []domain.Meeting
	err := q.Order("scheduled_date DESC").Find(&meetings).Error
	return meetings, err
}

type MeetingFilter struct {
	Status      domain.MeetingStatus
	MeetingType domain.MeetingType
	DateFrom    *time.Time
	DateTo      *time.Time
	Offset      int
	Limit       int
}

func (r *MeetingRepository) List(ctx context.Context, f MeetingFilter) ([]domain.Meeting, error) {
	q := r.db.WithContext(ctx).Preload("Member").Preload("Member.User")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MeetingType != "" {
		q = q.Where("meeting_type = ?", f.MeetingType)
	}
	if f.DateFrom != nil {
		q = q.Where("scheduled_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("scheduled_date <= ?", *f.DateTo)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}

	var meetings []domain.Meeting
	err := q.Order("scheduled_date ASC").Offset(f.Offset).Limit(f.Limit).Find(&meetings).Error
	return meetings, err
}

// ListActiveOnDay returns the PENDING and CONFIRMED meetings scheduled
// within [dayStart, dayEnd). Feeds the slot-availability grid.
func (r *MeetingRepository) ListActiveOnDay(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	err := r.db.WithContext(ctx).
		Where("scheduled_date >= ? AND scheduled_date < ?", dayStart, dayEnd).
		Where("status IN ?", []domain.MeetingStatus{domain.MeetingPending, domain.MeetingConfirmed}).
		Find(&meetings).Error
	return meetings, err
}

func (r *MeetingRepository) CountByStatus(ctx context.Context, status domain.MeetingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *MeetingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Meeting{}).Count(&count).Error
	return count, err
}

// CountUpcoming counts PENDING/CONFIRMED meetings scheduled in [from, to].
func (r *MeetingRepository) CountUpcoming(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Meeting{}).
		Where("scheduled_date >= ? AND scheduled_date <= ?", from, to).
		Where("status IN ?", []domain.MeetingStatus{domain.MeetingPending, domain.MeetingConfirmed}).
		Count(&count).Error
	return count, err
}
