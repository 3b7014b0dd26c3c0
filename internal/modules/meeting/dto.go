package meeting

import "time"

type CreateMeetingRequest struct {
	MemberID        string    `json:"member_id" binding:"required"`
	MeetingType     string    `json:"meeting_type" binding:"required,oneof=ONLINE PRESENCIAL"`
	ScheduledDate   time.Time `json:"scheduled_date" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meeting_link"`
	MemberNotes     string    `json:"member_notes"`
}

type UpdateMeetingRequest struct {
	MeetingType     *string    `json:"meeting_type" binding:"omitempty,oneof=ONLINE PRESENCIAL"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Location        *string    `json:"location"`
	MeetingLink     *string    `json:"meeting_link"`
	MemberNotes     *string    `json:"member_notes"`
	HubNotes        *string    `json:"hub_notes"`
}

type ConfirmMeetingRequest struct {
	MeetingLink string `json:"meeting_link"`
	Location    string `json:"location"`
	HubNotes    string `json:"hub_notes"`
}

type CancelMeetingRequest struct {
	CancellationReason string `json:"cancellation_reason" binding:"required"`
}

type CompleteMeetingRequest struct {
	HubNotes string `json:"hub_notes"`
}

type Stats struct {
	TotalMeetings     int64 `json:"total_meetings"`
	PendingMeetings   int64 `json:"pending_meetings"`
	ConfirmedMeetings int64 `json:"confirmed_meetings"`
	CompletedMeetings int64 `json:"completed_meetings"`
	CancelledMeetings int64 `json:"cancelled_meetings"`
	UpcomingMeetings  int64 `json:"upcoming_meetings"`
}
