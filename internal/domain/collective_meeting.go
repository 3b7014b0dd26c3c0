package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectiveMeetingStatus string

const (
	CollectiveAgendada   CollectiveMeetingStatus = "AGENDADA"
	CollectiveConfirmada CollectiveMeetingStatus = "CONFIRMADA"
	CollectiveCancelada  CollectiveMeetingStatus = "CANCELADA"
	CollectiveRealizada  CollectiveMeetingStatus = "REALIZADA"
)

// CollectiveMeeting is an event every active member is invited to. The
// invitee set is snapshotted at creation time; members activated later are
// not added retroactively. The total_* columns are denormalized caches and
// must always equal the counts over the attendee rows.
type CollectiveMeeting struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	Title       string      `gorm:"not null" json:"title" validate:"required"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	MeetingType MeetingType `gorm:"type:varchar(20);not null" json:"meeting_type"`

	ScheduledDate   time.Time `gorm:"not null;index" json:"scheduled_date"`
	DurationMinutes int       `gorm:"default:60" json:"duration_minutes"`

	Location    string `json:"location,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`

	Status      CollectiveMeetingStatus `gorm:"type:varchar(20);default:'AGENDADA';not null;index" json:"status"`
	CreatedByID string                  `gorm:"type:varchar(36);not null" json:"created_by_id"`

	Agenda string `gorm:"type:text" json:"agenda,omitempty"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"`

	TotalInvited   int `gorm:"default:0" json:"total_invited"`
	TotalConfirmed int `gorm:"default:0" json:"total_confirmed"`
	TotalAttended  int `gorm:"default:0" json:"total_attended"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (CollectiveMeeting) TableName() string { return "collective_meetings" }

func (m *CollectiveMeeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CollectiveMeetingAttendee is one invite row per (meeting, member) pair.
type CollectiveMeetingAttendee struct {
	MeetingID   string     `gorm:"primaryKey;type:varchar(36)" json:"meeting_id"`
	MemberID    string     `gorm:"primaryKey;type:varchar(36)" json:"member_id"`
	Confirmed   bool       `gorm:"default:false" json:"confirmed"`
	Attended    bool       `gorm:"default:false" json:"attended"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	Meeting *CollectiveMeeting `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE" json:"-"`
	Member  *Member            `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

func (CollectiveMeetingAttendee) TableName() string { return "meeting_attendees" }
