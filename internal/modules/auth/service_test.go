package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	pkgjwt "github.com/gustavoml12/GrupoUnion/internal/pkg/jwt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == "" {
		u.ID = "user-1"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func testTokens() *pkgjwt.Service {
	return pkgjwt.New("test_secret_key_32_characters_min", time.Hour, 24*time.Hour)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_Register_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Novo@Exemplo.com",
		Password: "secret123",
		FullName: "Novo Visitante",
	})

	assert.NoError(t, err)
	assert.Equal(t, "novo@exemplo.com", result.User.Email)
	assert.Equal(t, domain.RoleVisitor, result.User.Role)
	assert.Equal(t, domain.UserPending, result.User.Status)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
	mockUsers.AssertExpectations(t)
}

func TestService_Register_WithReferralCode(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	referrer := &domain.User{ID: "ref-1", ReferralCode: "abc123"}
	mockUsers.On("GetByReferralCode", mock.Anything, "abc123").Return(referrer, nil)
	mockUsers.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ReferredByID != nil && *u.ReferredByID == "ref-1"
	})).Return(nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:        "indicado@exemplo.com",
		Password:     "secret123",
		FullName:     "Indicado",
		ReferralCode: "abc123",
	})

	assert.NoError(t, err)
	mockUsers.AssertExpectations(t)
}

func TestService_Register_InvalidReferralCode(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	mockUsers.On("GetByReferralCode", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:        "x@exemplo.com",
		Password:     "secret123",
		FullName:     "X",
		ReferralCode: "nope",
	})

	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(&pgconnError{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "dup@exemplo.com",
		Password: "secret123",
		FullName: "Dup",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

// pgconnError mimics the driver message without a live database.
type pgconnError struct{}

func (pgconnError) Error() string {
	return "ERROR: duplicate key value violates unique constraint \"idx_users_email\" (SQLSTATE 23505)"
}

func TestService_Login_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	user := &domain.User{
		ID:           "user-1",
		Email:        "membro@exemplo.com",
		PasswordHash: hashFor(t, "secret123"),
		Role:         domain.RoleMember,
		Status:       domain.UserActive,
	}
	mockUsers.On("GetByEmail", mock.Anything, "membro@exemplo.com").Return(user, nil)
	mockUsers.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.LastLogin != nil
	})).Return(nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "membro@exemplo.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	mockUsers.AssertExpectations(t)
}

func TestService_Login_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	user := &domain.User{
		ID:           "user-1",
		Email:        "membro@exemplo.com",
		PasswordHash: hashFor(t, "secret123"),
		Status:       domain.UserActive,
	}
	mockUsers.On("GetByEmail", mock.Anything, "membro@exemplo.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "membro@exemplo.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	mockUsers.On("GetByEmail", mock.Anything, "ghost@exemplo.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@exemplo.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Suspended(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	user := &domain.User{
		ID:           "user-1",
		Email:        "suspenso@exemplo.com",
		PasswordHash: hashFor(t, "secret123"),
		Status:       domain.UserSuspended,
	}
	mockUsers.On("GetByEmail", mock.Anything, "suspenso@exemplo.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "suspenso@exemplo.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrAccountSuspended)
	mockUsers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Refresh_ReReadsRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	tokens := testTokens()
	svc := NewService(mockUsers, tokens)

	_, refresh, err := tokens.GenerateTokenPair("user-1", string(domain.RoleVisitor))
	assert.NoError(t, err)

	// Promoted to MEMBER since the token was issued.
	user := &domain.User{ID: "user-1", Role: domain.RoleMember, Status: domain.UserActive}
	mockUsers.On("GetByID", mock.Anything, "user-1").Return(user, nil)

	result, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(result.Tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.RoleMember), claims.Role)
}

func TestService_Refresh_InvalidToken(t *testing.T) {
	mockUsers := new(MockUserRepository)
	svc := NewService(mockUsers, testTokens())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
