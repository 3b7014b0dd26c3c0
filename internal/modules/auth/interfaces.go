package auth

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	pkgjwt "github.com/gustavoml12/GrupoUnion/internal/pkg/jwt"
)

// UserRepository covers the persistence methods the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type TokenIssuer interface {
	GenerateTokenPair(userID, role string) (access, refresh string, err error)
	ValidateToken(token string) (*pkgjwt.Claims, error)
}
