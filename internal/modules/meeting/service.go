package meeting

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

const (
	businessHoursStart = 9
	businessHoursEnd   = 18
	slotStepMinutes    = 30
	defaultDuration    = 60
)

// Service manages the one-on-one meeting lifecycle and the hub's shared
// scheduling calendar.
type Service struct {
	meetings MeetingRepository
	members  MemberReader
	notifs   NotificationSender
}

func NewService(meetings MeetingRepository, members MemberReader, notifs NotificationSender) *Service {
	return &Service{meetings: meetings, members: members, notifs: notifs}
}

// Create schedules a new meeting. A member can hold at most one PENDING
// meeting at a time.
func (s *Service) Create(ctx context.Context, userID string, req CreateMeetingRequest) (*domain.Meeting, error) {
	if _, err := s.members.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	hasPending, err := s.meetings.HasPendingForMember(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, ErrPendingExists
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultDuration
	}
	if duration < 0 {
		return nil, ErrInvalidDuration
	}

	meeting := &domain.Meeting{
		MemberID:        req.MemberID,
		ScheduledByID:   &userID,
		MeetingType:     domain.MeetingType(req.MeetingType),
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: duration,
		Location:        req.Location,
		MeetingLink:     req.MeetingLink,
		MemberNotes:     req.MemberNotes,
		Status:          domain.MeetingPending,
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Meeting, error) {
	meeting, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID string, includeCancelled bool) ([]domain.Meeting, error) {
	return s.meetings.ListByMember(ctx, memberID, includeCancelled)
}

func (s *Service) List(ctx context.Context, f repository.MeetingFilter) ([]domain.Meeting, error) {
	if f.Limit <= 0 {
		f.Limit = 100
	}
	return s.meetings.List(ctx, f)
}

// Update edits a meeting that has not reached a terminal status.
func (s *Service) Update(ctx context.Context, id string, req UpdateMeetingRequest) (*domain.Meeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status == domain.MeetingCompleted || meeting.Status == domain.MeetingCancelled {
		return nil, ErrTerminalState
	}

	if req.MeetingType != nil {
		meeting.MeetingType = domain.MeetingType(*req.MeetingType)
	}
	if req.ScheduledDate != nil {
		meeting.ScheduledDate = *req.ScheduledDate
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
		meeting.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		meeting.Location = *req.Location
	}
	if req.MeetingLink != nil {
		meeting.MeetingLink = *req.MeetingLink
	}
	if req.MemberNotes != nil {
		meeting.MemberNotes = *req.MemberNotes
	}
	if req.HubNotes != nil {
		meeting.HubNotes = *req.HubNotes
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Confirm moves a PENDING meeting to CONFIRMED and notifies the member.
func (s *Service) Confirm(ctx context.Context, id, confirmedByID string, req ConfirmMeetingRequest) (*domain.Meeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status != domain.MeetingPending {
		return nil, ErrNotPending
	}

	now := time.Now()
	meeting.Status = domain.MeetingConfirmed
	meeting.ConfirmedByID = &confirmedByID
	meeting.ConfirmedAt = &now
	if req.MeetingLink != "" {
		meeting.MeetingLink = req.MeetingLink
	}
	if req.Location != "" {
		meeting.Location = req.Location
	}
	if req.HubNotes != "" {
		meeting.HubNotes = req.HubNotes
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	if member, merr := s.members.GetByID(ctx, meeting.MemberID); merr == nil {
		when := meeting.ScheduledDate.Format("02/01/2006 às 15:04")
		_ = s.notifs.NotifyMeetingConfirmed(ctx, member.UserID, meeting.ID, when, meeting.MeetingLink, meeting.Location)
	}

	return meeting, nil
}

// Cancel moves a non-terminal meeting to CANCELLED with a reason.
func (s *Service) Cancel(ctx context.Context, id string, req CancelMeetingRequest) (*domain.Meeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status == domain.MeetingCompleted || meeting.Status == domain.MeetingCancelled {
		return nil, ErrTerminalState
	}

	now := time.Now()
	meeting.Status = domain.MeetingCancelled
	meeting.CancellationReason = req.CancellationReason
	meeting.CancelledAt = &now

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}

	if member, merr := s.members.GetByID(ctx, meeting.MemberID); merr == nil {
		_ = s.notifs.NotifyMeetingCancelled(ctx, member.UserID, meeting.ID, req.CancellationReason)
	}

	return meeting, nil
}

// Complete marks a CONFIRMED meeting as held.
func (s *Service) Complete(ctx context.Context, id string, req CompleteMeetingRequest) (*domain.Meeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status != domain.MeetingConfirmed {
		return nil, ErrNotConfirmed
	}

	now := time.Now()
	meeting.Status = domain.MeetingCompleted
	meeting.CompletedAt = &now
	if req.HubNotes != "" {
		meeting.HubNotes = req.HubNotes
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.meetings.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.meetings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.meetings.CountByStatus(ctx, domain.MeetingPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.meetings.CountByStatus(ctx, domain.MeetingConfirmed)
	if err != nil {
		return nil, err
	}
	completed, err := s.meetings.CountByStatus(ctx, domain.MeetingCompleted)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.meetings.CountByStatus(ctx, domain.MeetingCancelled)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	upcoming, err := s.meetings.CountUpcoming(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalMeetings:     total,
		PendingMeetings:   pending,
		ConfirmedMeetings: confirmed,
		CompletedMeetings: completed,
		CancelledMeetings: cancelled,
		UpcomingMeetings:  upcoming,
	}, nil
}

// AvailableSlots walks the 30-minute grid inside business hours
// [09:00, 18:00) on the given day and keeps every start where a meeting
// of the requested duration both fits before closing time and does not
// overlap any PENDING or CONFIRMED meeting. Overlap is half-open:
// a meeting ending at 11:00 does not block a slot starting at 11:00.
func (s *Service) AvailableSlots(ctx context.Context, date time.Time, durationMinutes int) ([]time.Time, error) {
	if durationMinutes <= 0 {
		durationMinutes = defaultDuration
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := s.meetings.ListActiveOnDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	open := dayStart.Add(businessHoursStart * time.Hour)
	close := dayStart.Add(businessHoursEnd * time.Hour)

	slots := make([]time.Time, 0)
	for t := open; t.Before(close); t = t.Add(slotStepMinutes * time.Minute) {
		slotEnd := t.Add(duration)
		if slotEnd.After(close) {
			continue
		}

		free := true
		for _, m := range existing {
			meetingEnd := m.ScheduledDate.Add(time.Duration(m.DurationMinutes) * time.Minute)
			if t.Before(meetingEnd) && m.ScheduledDate.Before(slotEnd) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, t)
		}
	}

	return slots, nil
}
