package collective

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

// Service manages collective meetings: hub-wide events with an invitee
// snapshot taken at creation time.
type Service struct {
	meetings CollectiveMeetingRepository
	members  MemberLister
}

func NewService(meetings CollectiveMeetingRepository, members MemberLister) *Service {
	return &Service{meetings: meetings, members: members}
}

// Create schedules a new collective meeting and invites every currently
// active member. Members activated afterwards are not added to the list.
func (s *Service) Create(ctx context.Context, creatorID string, req CreateMeetingRequest) (*domain.CollectiveMeeting, error) {
	active, err := s.members.ListActiveProfiles(ctx)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, 0, len(active))
	for _, m := range active {
		memberIDs = append(memberIDs, m.ID)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 60
	}

	meeting := &domain.CollectiveMeeting{
		Title:           req.Title,
		Description:     req.Description,
		MeetingType:     domain.MeetingType(req.MeetingType),
		ScheduledDate:   req.ScheduledDate,
		DurationMinutes: duration,
		Location:        req.Location,
		MeetingLink:     req.MeetingLink,
		Status:          domain.CollectiveAgendada,
		CreatedByID:     creatorID,
		Agenda:          req.Agenda,
	}

	if err := s.meetings.CreateWithAttendees(ctx, meeting, memberIDs); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.CollectiveMeeting, error) {
	meeting, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return meeting, nil
}

func (s *Service) List(ctx context.Context, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	return s.meetings.List(ctx, f)
}

func (s *Service) ListByMember(ctx context.Context, memberID string, f repository.CollectiveMeetingFilter) ([]domain.CollectiveMeeting, error) {
	return s.meetings.ListByMember(ctx, memberID, f)
}

func (s *Service) Attendees(ctx context.Context, meetingID string) ([]domain.CollectiveMeetingAttendee, error) {
	if _, err := s.Get(ctx, meetingID); err != nil {
		return nil, err
	}
	return s.meetings.ListAttendees(ctx, meetingID)
}

// Update edits meeting details. A cancelled meeting is frozen.
func (s *Service) Update(ctx context.Context, id string, req UpdateMeetingRequest) (*domain.CollectiveMeeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status == domain.CollectiveCancelada {
		return nil, ErrCancelled
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.MeetingType != nil {
		meeting.MeetingType = domain.MeetingType(*req.MeetingType)
	}
	if req.ScheduledDate != nil {
		meeting.ScheduledDate = *req.ScheduledDate
	}
	if req.DurationMinutes != nil {
		meeting.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		meeting.Location = *req.Location
	}
	if req.MeetingLink != nil {
		meeting.MeetingLink = *req.MeetingLink
	}
	if req.Agenda != nil {
		meeting.Agenda = *req.Agenda
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// ConfirmAttendance records a member's RSVP. The confirmed counter is
// recounted from the attendee rows inside the repository transaction.
func (s *Service) ConfirmAttendance(ctx context.Context, meetingID, memberID string, confirmed bool) error {
	if _, err := s.Get(ctx, meetingID); err != nil {
		return err
	}

	if err := s.meetings.SetConfirmation(ctx, meetingID, memberID, confirmed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendeeNotFound
		}
		return err
	}
	return nil
}

// MarkAttendance replaces the attendance record wholesale: everyone is
// reset to absent, then the given members are marked present. An empty
// list therefore zeroes attendance.
func (s *Service) MarkAttendance(ctx context.Context, meetingID string, memberIDs []string) (*domain.CollectiveMeeting, error) {
	if _, err := s.Get(ctx, meetingID); err != nil {
		return nil, err
	}

	if err := s.meetings.MarkAttendance(ctx, meetingID, memberIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, meetingID)
}

// Complete marks the meeting as held. REALIZADA is terminal.
func (s *Service) Complete(ctx context.Context, id, notes string) (*domain.CollectiveMeeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status == domain.CollectiveRealizada {
		return nil, ErrAlreadyHeld
	}

	now := time.Now()
	meeting.Status = domain.CollectiveRealizada
	meeting.CompletedAt = &now
	if notes != "" {
		meeting.Notes = notes
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Cancel marks the meeting as cancelled. A held meeting cannot be
// cancelled after the fact.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.CollectiveMeeting, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if meeting.Status == domain.CollectiveRealizada {
		return nil, ErrAlreadyHeld
	}

	now := time.Now()
	meeting.Status = domain.CollectiveCancelada
	meeting.CancelledAt = &now

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

// Stats aggregates counters plus the average attendance rate over held
// meetings that had at least one invitee. The rate is nil when no such
// meeting exists; zero would wrongly read as "nobody ever shows up".
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.meetings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.meetings.CountUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	past, err := s.meetings.CountPast(ctx)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.meetings.CountByStatus(ctx, domain.CollectiveCancelada)
	if err != nil {
		return nil, err
	}

	completed, err := s.meetings.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	var avg *float64
	if len(completed) > 0 {
		var sum float64
		for _, m := range completed {
			sum += float64(m.TotalAttended) / float64(m.TotalInvited) * 100
		}
		rate := sum / float64(len(completed))
		avg = &rate
	}

	return &Stats{
		TotalMeetings:         total,
		UpcomingMeetings:      upcoming,
		PastMeetings:          past,
		CancelledMeetings:     cancelled,
		AverageAttendanceRate: avg,
	}, nil
}
