package visit

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type VisitRepository interface {
	Create(ctx context.Context, v *domain.Visit) error
	GetByID(ctx context.Context, id string) (*domain.Visit, error)
	Update(ctx context.Context, v *domain.Visit) error
	Delete(ctx context.Context, id string) error
	ListByMember(ctx context.Context, memberID string, asVisitor bool, status domain.VisitStatus, offset, limit int) ([]domain.Visit, error)
	List(ctx context.Context, f repository.VisitFilter) ([]domain.Visit, error)
	CountMade(ctx context.Context, memberID string) (int64, error)
	CountReceived(ctx context.Context, memberID string) (int64, error)
	CountInvolvingByStatus(ctx context.Context, memberID string, status domain.VisitStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.VisitStatus) (int64, error)
	AverageQuality(ctx context.Context, memberID string) (*float64, error)
	CountWithPotentialReferrals(ctx context.Context, memberID string) (int64, error)
}

type MemberReader interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
}
