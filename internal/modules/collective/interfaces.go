package collective

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type CollectiveMeetingRepository interface {
	CreateWithAttendees(ctx context.Context, m *domain.CollectiveMeeting, memberIDs []string) error
	GetByID(ctx context.Context, id string) (*domain.CollectiveMeeting, error)
	Update(ctx context.Context, m *domain.CollectiveMeeting) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error)
	ListByMember(ctx context.Context, memberID string, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error)
	ListAttendees(ctx context.Context, meetingID string) ([]domain.CollectiveMeetingAttendee, error)
	SetConfirmation(ctx context.Context, meetingID, memberID string, confirmed bool) error
	MarkAttendance(ctx context.Context, meetingID string, memberIDs []string) error
	ListCompleted(ctx context.Context) ([]domain.CollectiveMeeting, error)
	CountAll(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context) (int64, error)
	CountPast(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.CollectiveMeetingStatus) (int64, error)
}

type MemberLister interface {
	ListActiveProfiles(ctx context.Context) ([]domain.Member, error)
}
