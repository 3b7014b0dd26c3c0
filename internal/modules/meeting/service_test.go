package meeting

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, mt *domain.Meeting) error {
	args := m.Called(ctx, mt)
	if mt != nil && mt.ID == "" {
		mt.ID = "meeting-1"
	}
	return args.Error(0)
}

func (m *MockMeetingRepository) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Update(ctx context.Context, mt *domain.Meeting) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMeetingRepository) HasPendingForMember(ctx context.Context, memberID string) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMeetingRepository) ListByMember(ctx context.Context, memberID string, includeCancelled bool) ([]domain.Meeting, error) {
	args := m.Called(ctx, memberID, includeCancelled)
	return args.Get(0).([]domain.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) List(ctx context.Context, f repository.MeetingFilter) ([]domain.Meeting, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) ListActiveOnDay(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Meeting, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	return args.Get(0).([]domain.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) CountByStatus(ctx context.Context, status domain.MeetingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeetingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeetingRepository) CountUpcoming(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
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

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyMeetingConfirmed(ctx context.Context, userID, meetingID, when, link, location string) error {
	args := m.Called(ctx, userID, meetingID, when, link, location)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyMeetingCancelled(ctx context.Context, userID, meetingID, reason string) error {
	args := m.Called(ctx, userID, meetingID, reason)
	return args.Error(0)
}

func newTestService() (*Service, *MockMeetingRepository, *MockMemberReader, *MockNotificationSender) {
	meetings := new(MockMeetingRepository)
	members := new(MockMemberReader)
	notifs := new(MockNotificationSender)
	return NewService(meetings, members, notifs), meetings, members, notifs
}

func TestService_Create_Success(t *testing.T) {
	svc, meetings, members, _ := newTestService()

	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1"}, nil)
	meetings.On("HasPendingForMember", mock.Anything, "member-1").Return(false, nil)
	meetings.On("Create", mock.Anything, mock.MatchedBy(func(mt *domain.Meeting) bool {
		return mt.Status == domain.MeetingPending && mt.DurationMinutes == 60
	})).Return(nil)

	meeting, err := svc.Create(context.Background(), "user-1", CreateMeetingRequest{
		MemberID:      "member-1",
		MeetingType:   "ONLINE",
		ScheduledDate: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.MeetingPending, meeting.Status)
	meetings.AssertExpectations(t)
}

func TestService_Create_PendingConflict(t *testing.T) {
	svc, meetings, members, _ := newTestService()

	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1"}, nil)
	meetings.On("HasPendingForMember", mock.Anything, "member-1").Return(true, nil)

	_, err := svc.Create(context.Background(), "user-1", CreateMeetingRequest{
		MemberID:      "member-1",
		MeetingType:   "ONLINE",
		ScheduledDate: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrPendingExists)
	meetings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_MemberNotFound(t *testing.T) {
	svc, _, members, _ := newTestService()

	members.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), "user-1", CreateMeetingRequest{
		MemberID:      "ghost",
		MeetingType:   "ONLINE",
		ScheduledDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestService_Confirm_Success(t *testing.T) {
	svc, meetings, members, notifs := newTestService()

	meeting := &domain.Meeting{
		ID:            "meeting-1",
		MemberID:      "member-1",
		Status:        domain.MeetingPending,
		ScheduledDate: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	meetings.On("GetByID", mock.Anything, "meeting-1").Return(meeting, nil)
	meetings.On("Update", mock.Anything, meeting).Return(nil)
	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1", UserID: "user-1"}, nil)
	notifs.On("NotifyMeetingConfirmed", mock.Anything, "user-1", "meeting-1", "01/09/2026 às 10:00", "https://meet.example/abc", "").Return(nil)

	got, err := svc.Confirm(context.Background(), "meeting-1", "hub-1", ConfirmMeetingRequest{
		MeetingLink: "https://meet.example/abc",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.MeetingConfirmed, got.Status)
	assert.Equal(t, "hub-1", *got.ConfirmedByID)
	assert.NotNil(t, got.ConfirmedAt)
	notifs.AssertExpectations(t)
}

func TestService_Confirm_NotPending(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "meeting-1").
		Return(&domain.Meeting{ID: "meeting-1", Status: domain.MeetingConfirmed}, nil)

	_, err := svc.Confirm(context.Background(), "meeting-1", "hub-1", ConfirmMeetingRequest{})
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestService_Cancel_TerminalStateRejected(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	for _, status := range []domain.MeetingStatus{domain.MeetingCompleted, domain.MeetingCancelled} {
		meetings.ExpectedCalls = nil
		meetings.On("GetByID", mock.Anything, "meeting-1").
			Return(&domain.Meeting{ID: "meeting-1", Status: status}, nil)

		_, err := svc.Cancel(context.Background(), "meeting-1", CancelMeetingRequest{CancellationReason: "x"})
		assert.ErrorIs(t, err, ErrTerminalState)
	}
}

func TestService_Cancel_Success(t *testing.T) {
	svc, meetings, members, notifs := newTestService()

	meeting := &domain.Meeting{ID: "meeting-1", MemberID: "member-1", Status: domain.MeetingConfirmed}
	meetings.On("GetByID", mock.Anything, "meeting-1").Return(meeting, nil)
	meetings.On("Update", mock.Anything, meeting).Return(nil)
	members.On("GetByID", mock.Anything, "member-1").Return(&domain.Member{ID: "member-1", UserID: "user-1"}, nil)
	notifs.On("NotifyMeetingCancelled", mock.Anything, "user-1", "meeting-1", "imprevisto").Return(nil)

	got, err := svc.Cancel(context.Background(), "meeting-1", CancelMeetingRequest{CancellationReason: "imprevisto"})

	assert.NoError(t, err)
	assert.Equal(t, domain.MeetingCancelled, got.Status)
	assert.Equal(t, "imprevisto", got.CancellationReason)
	assert.NotNil(t, got.CancelledAt)
}

func TestService_Complete_RequiresConfirmed(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "meeting-1").
		Return(&domain.Meeting{ID: "meeting-1", Status: domain.MeetingPending}, nil)

	_, err := svc.Complete(context.Background(), "meeting-1", CompleteMeetingRequest{})
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestService_Update_TerminalStateRejected(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("GetByID", mock.Anything, "meeting-1").
		Return(&domain.Meeting{ID: "meeting-1", Status: domain.MeetingCompleted}, nil)

	notes := "late edit"
	_, err := svc.Update(context.Background(), "meeting-1", UpdateMeetingRequest{HubNotes: &notes})
	assert.ErrorIs(t, err, ErrTerminalState)
}

func day(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

func TestService_AvailableSlots_OverlapExclusion(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	// One existing meeting occupying [10:00, 11:00).
	existing := []domain.Meeting{
		{ID: "m1", ScheduledDate: day(10, 0), DurationMinutes: 60, Status: domain.MeetingConfirmed},
	}
	meetings.On("ListActiveOnDay", mock.Anything, day(0, 0), day(0, 0).AddDate(0, 0, 1)).
		Return(existing, nil)

	slots, err := svc.AvailableSlots(context.Background(), day(0, 0), 60)
	assert.NoError(t, err)

	byTime := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		byTime[s] = true
	}

	// A 60-minute slot at 09:30 would run into the meeting.
	assert.False(t, byTime[day(9, 30)])
	assert.False(t, byTime[day(10, 0)])
	assert.False(t, byTime[day(10, 30)])
	// Half-open intervals: the meeting ends exactly at 11:00.
	assert.True(t, byTime[day(11, 0)])
	assert.True(t, byTime[day(9, 0)])
}

func TestService_AvailableSlots_FitBeforeClosing(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("ListActiveOnDay", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Meeting{}, nil)

	slots, err := svc.AvailableSlots(context.Background(), day(0, 0), 90)
	assert.NoError(t, err)
	assert.NotEmpty(t, slots)

	closing := day(18, 0)
	for _, s := range slots {
		assert.False(t, s.Add(90*time.Minute).After(closing), "slot %v does not fit before closing", s)
	}
	// Last viable 90-minute start on the half-hour grid is 16:30.
	assert.Equal(t, day(16, 30), slots[len(slots)-1])
}

func TestService_AvailableSlots_Sorted(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("ListActiveOnDay", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.Meeting{}, nil)

	slots, err := svc.AvailableSlots(context.Background(), day(0, 0), 30)
	assert.NoError(t, err)
	// Empty calendar: full grid 09:00..17:30.
	assert.Len(t, slots, 18)
	assert.True(t, sort.SliceIsSorted(slots, func(i, j int) bool {
		return slots[i].Before(slots[j])
	}))
}

func TestService_Stats(t *testing.T) {
	svc, meetings, _, _ := newTestService()

	meetings.On("CountAll", mock.Anything).Return(int64(10), nil)
	meetings.On("CountByStatus", mock.Anything, domain.MeetingPending).Return(int64(2), nil)
	meetings.On("CountByStatus", mock.Anything, domain.MeetingConfirmed).Return(int64(3), nil)
	meetings.On("CountByStatus", mock.Anything, domain.MeetingCompleted).Return(int64(4), nil)
	meetings.On("CountByStatus", mock.Anything, domain.MeetingCancelled).Return(int64(1), nil)
	meetings.On("CountUpcoming", mock.Anything, mock.Anything, mock.Anything).Return(int64(5), nil)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalMeetings)
	assert.Equal(t, int64(5), stats.UpcomingMeetings)
}
