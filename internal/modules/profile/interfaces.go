package profile

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type MemberRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListReferredBy(ctx context.Context, userID string) ([]domain.User, error)
}
