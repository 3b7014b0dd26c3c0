package collective

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

type MockCollectiveRepository struct {
	mock.Mock
}

func (m *MockCollectiveRepository) CreateWithAttendees(ctx context.Context, cm *domain.CollectiveMeeting, memberIDs []string) error {
	args := m.Called(ctx, cm, memberIDs)
	if cm != nil {
		cm.TotalInvited = len(memberIDs)
	}
	return args.Error(0)
}

func (m *MockCollectiveRepository) GetByID(ctx context.Context, id string) (*domain.CollectiveMeeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectiveMeeting), args.Error(1)
}

func (m *MockCollectiveRepository) Update(ctx context.Context, cm *domain.CollectiveMeeting) error {
	args := m.Called(ctx, cm)
	return args.Error(0)
}

func (m *MockCollectiveRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectiveRepository) List(ctx context.Context, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.CollectiveMeeting), args.Error(1)
}

func (m *MockCollectiveRepository) ListByMember(ctx context.Context, memberID string, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	args := m.Called(ctx, memberID, f)
	return args.Get(0).([]domain.CollectiveMeeting), args.Error(1)
}

func (m *MockCollectiveRepository) ListAttendees(ctx context.Context, meetingID string) ([]domain.CollectiveMeetingAttendee, error) {
	args := m.Called(ctx, meetingID)
	return args.Get(0).([]domain.CollectiveMeetingAttendee), args.Error(1)
}

func (m *MockCollectiveRepository) SetConfirmation(ctx context.Context, meetingID, memberID string, confirmed bool) error {
	args := m.Called(ctx, meetingID, memberID, confirmed)
	return args.Error(0)
}

func (m *MockCollectiveRepository) MarkAttendance(ctx context.Context, meetingID string, memberIDs []string) error {
	args := m.Called(ctx, meetingID, memberIDs)
	return args.Error(0)
}

func (m *MockCollectiveRepository) ListCompleted(ctx context.Context) ([]domain.CollectiveMeeting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CollectiveMeeting), args.Error(1)
}

func (m *MockCollectiveRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectiveRepository) CountUpcoming(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectiveRepository) CountPast(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectiveRepository) CountByStatus(ctx context.Context, status domain.CollectiveMeetingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockMemberLister struct {
	mock.Mock
}

func (m *MockMemberLister) ListActiveProfiles(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member), args.Error(1)
}

func newTestService() (*Service, *MockCollectiveRepository, *MockMemberLister) {
	meetings := new(MockCollectiveRepository)
	members := new(MockMemberLister)
	return NewService(meetings, members), meetings, members
}

func TestService_Create_SnapshotsActiveMembers(t *testing.T) {
	svc, meetings, members := newTestService()

	members.On("ListActiveProfiles", mock.Anything).Return([]domain.Member{
		{ID: "member-1"}, {ID: "member-2"}, {ID: "member-3"},
	}, nil)
	meetings.On("CreateWithAttendees", mock.Anything, mock.Anything, []string{"member-1", "member-2", "member-3"}).
		Return(nil)

	meeting, err := svc.Create(context.Background(), "hub-1", CreateMeetingRequest{
		Title:         "Encontro mensal",
		MeetingType:   "PRESENCIAL",
		ScheduledDate: time.Date(2026, 9, 15, 19, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, meeting.TotalInvited)
	assert.Equal(t, domain.CollectiveAgendada, meeting.Status)
	meetings.AssertExpectations(t)
}

func TestService_ConfirmAttendance_NotInvited(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "cm-1").
		Return(&domain.CollectiveMeeting{ID: "cm-1"}, nil)
	meetings.On("SetConfirmation", mock.Anything, "cm-1", "member-9", true).
		Return(gorm.ErrRecordNotFound)

	err := svc.ConfirmAttendance(context.Background(), "cm-1", "member-9", true)
	assert.ErrorIs(t, err, ErrAttendeeNotFound)
}

func TestService_ConfirmAttendance_Success(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "cm-1").
		Return(&domain.CollectiveMeeting{ID: "cm-1"}, nil)
	meetings.On("SetConfirmation", mock.Anything, "cm-1", "member-1", true).Return(nil)

	err := svc.ConfirmAttendance(context.Background(), "cm-1", "member-1", true)
	assert.NoError(t, err)
	meetings.AssertExpectations(t)
}

func TestService_MarkAttendance_EmptyListZeroes(t *testing.T) {
	svc, meetings, _ := newTestService()

	before := &domain.CollectiveMeeting{ID: "cm-1", TotalInvited: 5, TotalAttended: 4}
	after := &domain.CollectiveMeeting{ID: "cm-1", TotalInvited: 5, TotalAttended: 0}

	meetings.On("GetByID", mock.Anything, "cm-1").Return(before, nil).Once()
	meetings.On("MarkAttendance", mock.Anything, "cm-1", []string{}).Return(nil)
	meetings.On("GetByID", mock.Anything, "cm-1").Return(after, nil).Once()

	got, err := svc.MarkAttendance(context.Background(), "cm-1", []string{})
	assert.NoError(t, err)
	assert.Equal(t, 0, got.TotalAttended)
}

func TestService_Complete_AlreadyHeld(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "cm-1").
		Return(&domain.CollectiveMeeting{ID: "cm-1", Status: domain.CollectiveRealizada}, nil)

	_, err := svc.Complete(context.Background(), "cm-1", "")
	assert.ErrorIs(t, err, ErrAlreadyHeld)
}

func TestService_Cancel_HeldMeetingRejected(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "cm-1").
		Return(&domain.CollectiveMeeting{ID: "cm-1", Status: domain.CollectiveRealizada}, nil)

	_, err := svc.Cancel(context.Background(), "cm-1")
	assert.ErrorIs(t, err, ErrAlreadyHeld)
}

func TestService_Update_CancelledFrozen(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "cm-1").
		Return(&domain.CollectiveMeeting{ID: "cm-1", Status: domain.CollectiveCancelada}, nil)

	title := "novo título"
	_, err := svc.Update(context.Background(), "cm-1", UpdateMeetingRequest{Title: &title})
	assert.ErrorIs(t, err, ErrCancelled)
	meetings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Stats_AverageAttendance(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("CountAll", mock.Anything).Return(int64(4), nil)
	meetings.On("CountUpcoming", mock.Anything).Return(int64(1), nil)
	meetings.On("CountPast", mock.Anything).Return(int64(3), nil)
	meetings.On("CountByStatus", mock.Anything, domain.CollectiveCancelada).Return(int64(1), nil)
	meetings.On("ListCompleted", mock.Anything).Return([]domain.CollectiveMeeting{
		{TotalInvited: 10, TotalAttended: 8},
		{TotalInvited: 10, TotalAttended: 6},
	}, nil)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, stats.AverageAttendanceRate)
	assert.InDelta(t, 70.0, *stats.AverageAttendanceRate, 0.001)
}

func TestService_Stats_NoCompletedMeetings(t *testing.T) {
	svc, meetings, _ := newTestService()

	meetings.On("CountAll", mock.Anything).Return(int64(2), nil)
	meetings.On("CountUpcoming", mock.Anything).Return(int64(2), nil)
	meetings.On("CountPast", mock.Anything).Return(int64(0), nil)
	meetings.On("CountByStatus", mock.Anything, domain.CollectiveCancelada).Return(int64(0), nil)
	meetings.On("ListCompleted", mock.Anything).Return([]domain.CollectiveMeeting{}, nil)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, stats.AverageAttendanceRate)
}
