package meeting

import (
	"context"
	"time"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) error
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
	Update(ctx context.Context, m *domain.Meeting) error
	Delete(ctx context.Context, id string) error
	HasPendingForMember(ctx context.Context, memberID string) (bool, error)
	ListByMember(ctx context.Context, memberID string, includeCancelled bool) ([]domain.Meeting, error)
	List(ctx context.Context, f repository.MeetingFilter) ([]domain.Meeting, error)
	ListActiveOnDay(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Meeting, error)
	CountByStatus(ctx context.Context, status domain.MeetingStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context, from, to time.Time) (int64, error)
}

type MemberReader interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}

type NotificationSender interface {
	NotifyMeetingConfirmed(ctx context.Context, userID, meetingID, when, link, location string) error
	NotifyMeetingCancelled(ctx context.Context, userID, meetingID, reason string) error
}
