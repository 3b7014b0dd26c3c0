package visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	args := m.Called(ctx, v)
	if v != nil && v.ID == "" {
		v.ID = "visit-1"
	}
	return args.Error(0)
}

func (m *MockVisitRepository) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) Update(ctx context.Context, v *domain.Visit) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVisitRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVisitRepository) ListByMember(ctx context.Context, memberID string, asVisitor bool, status domain.VisitStatus, offset, limit int) ([]domain.Visit, error) {
	args := m.Called(ctx, memberID, asVisitor, status, offset, limit)
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) List(ctx context.Context, f repository.VisitFilter) ([]domain.Visit, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) CountMade(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) CountReceived(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) CountInvolvingByStatus(ctx context.Context, memberID string, status domain.VisitStatus) (int64, error) {
	args := m.Called(ctx, memberID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) CountByStatus(ctx context.Context, status domain.VisitStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitRepository) AverageQuality(ctx context.Context, memberID string) (*float64, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockVisitRepository) CountWithPotentialReferrals(ctx context.Context, memberID string) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

type MockMemberReader struct {
	mock.Mock
}

func (m *MockMemberReader) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func newTestService() (*Service, *MockVisitRepository, *MockMemberReader) {
	visits := new(MockVisitRepository)
	members := new(MockMemberReader)
	return NewService(visits, members), visits, members
}

func TestService_Create_Success(t *testing.T) {
	svc, visits, members := newTestService()

	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1"}, nil)
	members.On("GetByID", mock.Anything, "member-2").Return(&domain.Member{ID: "member-2"}, nil)
	visits.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Visit) bool {
		return v.Status == domain.VisitAgendada && v.DurationMinutes == 60
	})).Return(nil)

	visit, err := svc.Create(context.Background(), "member-1", CreateVisitRequest{
		VisitedID: "member-2",
		Purpose:   "NETWORKING",
		VisitDate: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, "member-1", visit.VisitorID)
	assert.Equal(t, "member-2", visit.VisitedID)
	visits.AssertExpectations(t)
}

func TestService_Create_SelfVisitRejected(t *testing.T) {
	svc, visits, members := newTestService()

	_, err := svc.Create(context.Background(), "member-1", CreateVisitRequest{
		VisitedID: "member-1",
		Purpose:   "NETWORKING",
		VisitDate: time.Now(),
	})

	assert.ErrorIs(t, err, ErrSelfVisit)
	members.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	visits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_VisitedNotFound(t *testing.T) {
	svc, _, members := newTestService()

	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1"}, nil)
	members.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "member-1", CreateVisitRequest{
		VisitedID: "ghost",
		Purpose:   "NETWORKING",
		VisitDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrVisitedNotFound)
}

func TestService_Complete_Success(t *testing.T) {
	svc, visits, _ := newTestService()

	visit := &domain.Visit{ID: "visit-1", Status: domain.VisitAgendada}
	visits.On("GetByID", mock.Anything, "visit-1").Return(visit, nil)
	visits.On("Update", mock.Anything, visit).Return(nil)

	quality := 4
	got, err := svc.Complete(context.Background(), "visit-1", CompleteVisitRequest{
		VisitSummary:       "ótima conversa",
		PotentialReferrals: "dois contatos",
		NetworkingQuality:  &quality,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.VisitRealizada, got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.Equal(t, 4, *got.NetworkingQuality)
}

func TestService_Complete_AlreadyHeld(t *testing.T) {
	svc, visits, _ := newTestService()

	visits.On("GetByID", mock.Anything, "visit-1").
		Return(&domain.Visit{ID: "visit-1", Status: domain.VisitRealizada}, nil)

	_, err := svc.Complete(context.Background(), "visit-1", CompleteVisitRequest{})
	assert.ErrorIs(t, err, ErrAlreadyHeld)
}

func TestService_Cancel_HeldVisitRejected(t *testing.T) {
	svc, visits, _ := newTestService()

	visits.On("GetByID", mock.Anything, "visit-1").
		Return(&domain.Visit{ID: "visit-1", Status: domain.VisitRealizada}, nil)

	_, err := svc.Cancel(context.Background(), "visit-1")
	assert.ErrorIs(t, err, ErrAlreadyHeld)
	visits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Stats_PerMember(t *testing.T) {
	svc, visits, _ := newTestService()

	avg := 4.5
	visits.On("CountMade", mock.Anything, "member-1").Return(int64(5), nil)
	visits.On("CountReceived", mock.Anything, "member-1").Return(int64(3), nil)
	visits.On("CountInvolvingByStatus", mock.Anything, "member-1", domain.VisitRealizada).Return(int64(6), nil)
	visits.On("CountInvolvingByStatus", mock.Anything, "member-1", domain.VisitAgendada).Return(int64(2), nil)
	visits.On("AverageQuality", mock.Anything, "member-1").Return(&avg, nil)
	visits.On("CountWithPotentialReferrals", mock.Anything, "member-1").Return(int64(2), nil)

	stats, err := svc.Stats(context.Background(), "member-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalVisits)
	assert.Equal(t, int64(5), stats.VisitsMade)
	assert.InDelta(t, 4.5, *stats.AverageNetworkingQuality, 0.001)
}

func TestService_Stats_GlobalNoRatings(t *testing.T) {
	svc, visits, _ := newTestService()

	visits.On("CountAll", mock.Anything).Return(int64(10), nil)
	visits.On("CountByStatus", mock.Anything, domain.VisitRealizada).Return(int64(7), nil)
	visits.On("CountByStatus", mock.Anything, domain.VisitAgendada).Return(int64(2), nil)
	visits.On("AverageQuality", mock.Anything, "").Return(nil, nil)
	visits.On("CountWithPotentialReferrals", mock.Anything, "").Return(int64(4), nil)

	stats, err := svc.Stats(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalVisits)
	assert.Nil(t, stats.AverageNetworkingQuality)
}
