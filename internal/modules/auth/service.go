package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

// Service contains all business logic for authentication.
type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

type AuthResult struct {
	User   *domain.User
	Tokens TokenPair
}

// Register creates a VISITOR account in PENDING status. When a referral
// code is supplied it must resolve to an existing user.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var referredByID *string
	if code := strings.TrimSpace(req.ReferralCode); code != "" {
		referrer, err := s.users.GetByReferralCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidReferralCode
			}
			return nil, err
		}
		referredByID = &referrer.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         domain.RoleVisitor,
		Status:       domain.UserPending,
		ReferredByID: referredByID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == domain.UserSuspended {
		return nil, ErrAccountSuspended
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The
// user's current role and status are re-read so a promotion or a
// suspension takes effect on the next refresh.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	if user.Status == domain.UserSuspended {
		return nil, ErrAccountSuspended
	}

	return s.issueTokens(user)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) issueTokens(user *domain.User) (*AuthResult, error) {
	access, refresh, err := s.tokens.GenerateTokenPair(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User: user,
		Tokens: TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
			TokenType:    "bearer",
		},
	}, nil
}

// isUniqueViolation covers both the postgres driver (typed error) and
// the sqlite driver used in tests (message match only).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

func PublicUser(u *domain.User) UserPublic {
	return UserPublic{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Phone:        u.Phone,
		Role:         string(u.Role),
		Status:       string(u.Status),
		ReferralCode: u.ReferralCode,
	}
}
