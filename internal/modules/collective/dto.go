package collective

import "time"

type CreateMeetingRequest struct {
	Title           string    `json:"title" binding:"required,min=3"`
	Description     string    `json:"description"`
	MeetingType     string    `json:"meeting_type" binding:"required,oneof=ONLINE PRESENCIAL"`
	ScheduledDate   time.Time `json:"scheduled_date" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	MeetingLink     string    `json:"meeting_link"`
	Agenda          string    `json:"agenda"`
}

type UpdateMeetingRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=3"`
	Description     *string    `json:"description"`
	MeetingType     *string    `json:"meeting_type" binding:"omitempty,oneof=ONLINE PRESENCIAL"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Location        *string    `json:"location"`
	MeetingLink     *string    `json:"meeting_link"`
	Agenda          *string    `json:"agenda"`
	Notes           *string    `json:"notes"`
}

type ConfirmAttendanceRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}

type MarkAttendanceRequest struct {
	MemberIDs []string `json:"member_ids"`
}

type CompleteMeetingRequest struct {
	Notes string `json:"notes"`
}

type Stats struct {
	TotalMeetings         int64    `json:"total_meetings"`
	UpcomingMeetings      int64    `json:"upcoming_meetings"`
	PastMeetings          int64    `json:"past_meetings"`
	CancelledMeetings     int64    `json:"cancelled_meetings"`
	AverageAttendanceRate *float64 `json:"average_attendance_rate"`
}
