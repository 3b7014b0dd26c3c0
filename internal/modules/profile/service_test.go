package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) GetByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, mb *domain.Member) error {
	args := m.Called(ctx, mb)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListReferredBy(ctx context.Context, userID string) ([]domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.User), args.Error(1)
}

func TestCalculateCompletion_RequiredOnly(t *testing.T) {
	member := &domain.Member{
		CompanyName:      "Empresa X",
		BusinessCategory: domain.CategoryTecnologia,
	}
	user := &domain.User{
		FullName: "Fulano",
		Email:    "fulano@exemplo.com",
	}

	// 4 of 19.5 total weight → truncates to 20.
	assert.Equal(t, 20, CalculateCompletion(member, user))
}

func TestCalculateCompletion_FullProfile(t *testing.T) {
	member := &domain.Member{
		CompanyName:        "Empresa X",
		BusinessCategory:   domain.CategoryTecnologia,
		CompanyDescription: "desc",
		Website:            "https://x.com",
		BusinessPhone:      "11999990000",
		BusinessEmail:      "contato@x.com",
		City:               "São Paulo",
		State:              "SP",
		LinkedinURL:        "https://linkedin.com/in/x",
		InstagramURL:       "https://instagram.com/x",
		FacebookURL:        "https://facebook.com/x",
		TwitterURL:         "https://twitter.com/x",
		ProfilePhotoURL:    "/uploads/photo.png",
		Bio:                "uma bio completa",
		Interests:          "networking",
		Skills:             "vendas",
	}
	user := &domain.User{FullName: "Fulano", Email: "fulano@exemplo.com"}

	assert.Equal(t, 100, CalculateCompletion(member, user))
}

func TestCalculateCompletion_BlankCountsAsMissing(t *testing.T) {
	member := &domain.Member{
		CompanyName:      "Empresa X",
		BusinessCategory: domain.CategoryTecnologia,
		Bio:              "   ",
	}
	user := &domain.User{FullName: "Fulano", Email: "fulano@exemplo.com"}

	withBlank := CalculateCompletion(member, user)
	member.Bio = ""
	withEmpty := CalculateCompletion(member, user)
	assert.Equal(t, withEmpty, withBlank)
}

func TestSuggestions_ShortBioStillSuggested(t *testing.T) {
	member := &domain.Member{Bio: "curta demais"}

	fields := make(map[string]bool)
	for _, s := range Suggestions(member) {
		fields[s.Field] = true
	}
	assert.True(t, fields["bio"])
}

func TestSuggestions_DeterministicOrder(t *testing.T) {
	member := &domain.Member{}

	got := Suggestions(member)
	order := make([]string, 0, len(got))
	for _, s := range got {
		order = append(order, s.Field)
	}
	assert.Equal(t, []string{
		"profile_photo_url", "bio", "company_description", "linkedin_url",
		"website", "interests", "skills", "location",
	}, order)
}

func TestSuggestions_CompleteProfileEmpty(t *testing.T) {
	member := &domain.Member{
		ProfilePhotoURL:    "/uploads/photo.png",
		Bio:                "uma biografia suficientemente longa para passar da regra dos 50",
		CompanyDescription: "desc",
		LinkedinURL:        "https://linkedin.com/in/x",
		Website:            "https://x.com",
		Interests:          "networking",
		Skills:             "vendas",
		City:               "São Paulo",
		State:              "SP",
	}
	assert.Empty(t, Suggestions(member))
}

func TestService_UpdateMyProfile_PersistsRecalculatedScore(t *testing.T) {
	members := new(MockMemberRepository)
	users := new(MockUserRepository)
	svc := NewService(members, users)

	member := &domain.Member{
		ID:               "member-1",
		UserID:           "user-1",
		CompanyName:      "Empresa X",
		BusinessCategory: domain.CategoryTecnologia,
	}
	user := &domain.User{ID: "user-1", FullName: "Fulano", Email: "fulano@exemplo.com"}

	members.On("GetByUserID", mock.Anything, "user-1").Return(member, nil)
	users.On("GetByID", mock.Anything, "user-1").Return(user, nil)
	members.On("Update", mock.Anything, mock.MatchedBy(func(m *domain.Member) bool {
		return m.ProfileCompleted > 20
	})).Return(nil)

	bio := "uma biografia suficientemente longa para elevar o score do perfil"
	got, err := svc.UpdateMyProfile(context.Background(), "user-1", UpdateProfileRequest{Bio: &bio})

	assert.NoError(t, err)
	assert.Equal(t, bio, got.Bio)
	assert.Equal(t, CalculateCompletion(got, user), got.ProfileCompleted)
	members.AssertExpectations(t)
}

func TestService_Statistics(t *testing.T) {
	members := new(MockMemberRepository)
	users := new(MockUserRepository)
	svc := NewService(members, users)

	user := &domain.User{ID: "user-1", FullName: "Fulano", Email: "f@exemplo.com", Role: domain.RoleMember, Status: domain.UserActive, ReferralCode: "abc"}
	users.On("GetByID", mock.Anything, "user-1").Return(user, nil)
	users.On("ListReferredBy", mock.Anything, "user-1").Return([]domain.User{
		{ID: "a", Role: domain.RoleMember, Status: domain.UserActive},
		{ID: "b", Role: domain.RoleVisitor, Status: domain.UserPending},
		{ID: "c", Role: domain.RoleVisitor, Status: domain.UserInactive},
	}, nil)

	stats, err := svc.Statistics(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, stats.TotalVisitorsReferred)
	assert.Equal(t, 1, stats.ActiveMembersReferred)
	assert.Equal(t, 1, stats.PendingVisitorsReferred)
	assert.Len(t, stats.VisitorsReferred, 3)
}
