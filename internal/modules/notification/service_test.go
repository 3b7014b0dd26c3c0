package notification

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

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) CreateBulk(ctx context.Context, ns []domain.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, offset, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, offset, limit)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountByUser(ctx context.Context, userID string, unreadOnly bool) (int64, error) {
	args := m.Called(ctx, userID, unreadOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) CountByType(ctx context.Context, userID string) ([]repository.TypeCount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]repository.TypeCount), args.Error(1)
}

func TestMarkAsRead_StampsReadAt(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	n := &domain.Notification{ID: "n-1", UserID: "user-1"}
	repo.On("GetByID", mock.Anything, "n-1").Return(n, nil)
	repo.On("Update", mock.Anything, n).Return(nil)

	read, err := svc.MarkAsRead(context.Background(), "n-1", "user-1")

	assert.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.NotNil(t, read.ReadAt)
}

func TestMarkAsRead_OtherUsersNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "n-1").
		Return(&domain.Notification{ID: "n-1", UserID: "someone-else"}, nil)

	_, err := svc.MarkAsRead(context.Background(), "n-1", "user-1")

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkAsRead_Missing(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "n-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.MarkAsRead(context.Background(), "n-1", "user-1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_OtherUsersNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "n-1").
		Return(&domain.Notification{ID: "n-1", UserID: "someone-else"}, nil)

	err := svc.Delete(context.Background(), "n-1", "user-1")

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetStats_ReadIsDerived(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("CountByUser", mock.Anything, "user-1", false).Return(int64(10), nil)
	repo.On("CountByUser", mock.Anything, "user-1", true).Return(int64(3), nil)
	repo.On("CountByType", mock.Anything, "user-1").Return([]repository.TypeCount{
		{Type: domain.NotifPaymentConfirmed, Count: 4},
		{Type: domain.NotifMeetingConfirmed, Count: 6},
	}, nil)

	stats, err := svc.GetStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(3), stats.Unread)
	assert.Equal(t, int64(7), stats.Read)
	assert.Equal(t, int64(4), stats.ByType["PAYMENT_CONFIRMED"])
}

func TestNotifySystemAnnouncement_OneRowPerUser(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewService(repo)

	repo.On("CreateBulk", mock.Anything, mock.MatchedBy(func(ns []domain.Notification) bool {
		return len(ns) == 3 && ns[0].Type == domain.NotifSystemAnnouncement
	})).Return(nil)

	err := svc.NotifySystemAnnouncement(context.Background(), []string{"u1", "u2", "u3"}, "Aviso", "Nova regra de visitas")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
