package onboarding

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	ListPendingVisitors(ctx context.Context) ([]domain.User, error)
}

type MemberRepository interface {
	Create(ctx context.Context, m *domain.Member) error
	GetByUserID(ctx context.Context, userID string) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
}

type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetLatestByUser(ctx context.Context, userID string) (*domain.Payment, error)
	GetLatestPendingByUser(ctx context.Context, userID string) (*domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	CreateWithMember(ctx context.Context, m *domain.Member, p *domain.Payment) error
	SaveOutcome(ctx context.Context, p *domain.Payment, u *domain.User, m *domain.Member) error
}

// NotificationSender is the part of the notification service this module
// fires. All calls are best-effort.
type NotificationSender interface {
	NotifyMemberApproved(ctx context.Context, userID, memberName string) error
	NotifyMemberRejected(ctx context.Context, userID, memberName, reason string) error
	NotifyPaymentConfirmed(ctx context.Context, userID string, amount float64) error
	NotifyPaymentRejected(ctx context.Context, userID, reason string) error
}
