package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type CollectiveMeetingRepository struct {
	db *gorm.DB
}

func NewCollectiveMeetingRepository(db *gorm.DB) *CollectiveMeetingRepository {
	return &CollectiveMeetingRepository{db: db}
}

// CreateWithAttendees inserts the meeting together with its invitee snapshot
// in one transaction; total_invited is fixed to the snapshot size.
func (r *CollectiveMeetingRepository) CreateWithAttendees(ctx context.Context, m *domain.CollectiveMeeting, memberIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m.TotalInvited = len(memberIDs)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if len(memberIDs) == 0 {
			return nil
		}

		rows := make([]domain.CollectiveMeetingAttendee, 0, len(memberIDs))
		for _, id := range memberIDs {
			rows = append(rows, domain.CollectiveMeetingAttendee{
				MeetingID: m.ID,
				MemberID:  id,
			})
		}
		return tx.Create(&rows).Error
	})
}

func (r *CollectiveMeetingRepository) GetByID(ctx context.Context, id string) (*domain.CollectiveMeeting, error) {
	var m domain.CollectiveMeeting
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CollectiveMeetingRepository) Update(ctx context.Context, m *domain.CollectiveMeeting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CollectiveMeetingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.CollectiveMeeting{}, "id = ?", id).Error
}

type CollectiveMeetingFilter struct {
	Status       domain.CollectiveMeetingStatus
	UpcomingOnly bool
	Offset       int
	Limit        int
}

func (r *CollectiveMeetingRepository) List(ctx context.Context, f CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	q := r.db.WithContext(ctx).Model(&domain.CollectiveMeeting{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UpcomingOnly {
		q = q.Where("scheduled_date >= ? AND status <> ?", time.Now().UTC(), domain.CollectiveCancelada)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}

	var meetings []domain.CollectiveMeeting
	err := q.Order("scheduled_date DESC").Offset(f.Offset).Limit(f.Limit).Find(&meetings).Error
	return meetings, err
}

func (r *CollectiveMeetingRepository) ListByMember(ctx context.Context, memberID string, f CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.CollectiveMeeting{}).
		Joins("JOIN meeting_attendees ma ON ma.meeting_id = collective_meetings.id").
		Where("ma.member_id = ?", memberID)

	if f.UpcomingOnly {
		q = q.Where("scheduled_date >= ? AND status <> ?", time.Now().UTC(), domain.CollectiveCancelada)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}

	var meetings []domain.CollectiveMeeting
	err := q.Order("scheduled_date DESC").Offset(f.Offset).Limit(f.Limit).Find(&meetings).Error
	return meetings, err
}

func (r *CollectiveMeetingRepository) ListAttendees(ctx context.Context, meetingID string) ([]domain.CollectiveMeetingAttendee, error) {
	var rows []domain.CollectiveMeetingAttendee
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("meeting_id = ?", meetingID).
		Find(&rows).Error
	return rows, err
}

// SetConfirmation updates one attendee row and recounts total_confirmed from
// the rows inside the same transaction, so concurrent confirmations cannot
// drift the cache.
func (r *CollectiveMeetingRepository) SetConfirmation(ctx context.Context, meetingID, memberID string, confirmed bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		values := map[string]any{"confirmed": confirmed, "confirmed_at": nil}
		if confirmed {
			now := time.Now().UTC()
			values["confirmed_at"] = &now
		}

		res := tx.Model(&domain.CollectiveMeetingAttendee{}).
			Where("meeting_id = ? AND member_id = ?", meetingID, memberID).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var confirmedCount int64
		if err := tx.Model(&domain.CollectiveMeetingAttendee{}).
			Where("meeting_id = ? AND confirmed = ?", meetingID, true).
			Count(&confirmedCount).Error; err != nil {
			return err
		}

		return tx.Model(&domain.CollectiveMeeting{}).
			Where("id = ?", meetingID).
			Update("total_confirmed", confirmedCount).Error
	})
}

// MarkAttendance resets every attendee row to attended=false, marks exactly
// the given member ids and stores the recounted total. Ids outside the
// invitee snapshot simply match no row.
func (r *CollectiveMeetingRepository) MarkAttendance(ctx context.Context, meetingID string, memberIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.CollectiveMeetingAttendee{}).
			Where("meeting_id = ?", meetingID).
			Update("attended", false).Error; err != nil {
			return err
		}

		if len(memberIDs) > 0 {
			if err := tx.Model(&domain.CollectiveMeetingAttendee{}).
				Where("meeting_id = ? AND member_id IN ?", meetingID, memberIDs).
				Update("attended", true).Error; err != nil {
				return err
			}
		}

		var attendedCount int64
		if err := tx.Model(&domain.CollectiveMeetingAttendee{}).
			Where("meeting_id = ? AND attended = ?", meetingID, true).
			Count(&attendedCount).Error; err != nil {
			return err
		}

		return tx.Model(&domain.CollectiveMeeting{}).
			Where("id = ?", meetingID).
			Update("total_attended", attendedCount).Error
	})
}

// ListCompleted returns REALIZADA meetings with at least one invitee, the
// population for the average attendance rate.
func (r *CollectiveMeetingRepository) ListCompleted(ctx context.Context) ([]domain.CollectiveMeeting, error) {
	var meetings []domain.CollectiveMeeting
	err := r.db.WithContext(ctx).
		Where("status = ? AND total_invited > 0", domain.CollectiveRealizada).
		Find(&meetings).Error
	return meetings, err
}

func (r *CollectiveMeetingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CollectiveMeeting{}).Count(&count).Error
	return count, err
}

func (r *CollectiveMeetingRepository) CountUpcoming(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CollectiveMeeting{}).
		Where("scheduled_date >= ? AND status <> ?", time.Now().UTC(), domain.CollectiveCancelada).
		Count(&count).Error
	return count, err
}

func (r *CollectiveMeetingRepository) CountPast(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CollectiveMeeting{}).
		Where("scheduled_date < ?", time.Now().UTC()).
		Count(&count).Error
	return count, err
}

func (r *CollectiveMeetingRepository) CountByStatus(ctx context.Context, status domain.CollectiveMeetingStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CollectiveMeeting{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
