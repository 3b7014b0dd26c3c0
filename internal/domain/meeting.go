package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingType string

const (
	MeetingOnline     MeetingType = "ONLINE"
	MeetingPresencial MeetingType = "PRESENCIAL"
)

type MeetingStatus string

const (
	MeetingPending   MeetingStatus = "PENDING"
	MeetingConfirmed MeetingStatus = "CONFIRMED"
	MeetingCancelled MeetingStatus = "CANCELLED"
	MeetingCompleted MeetingStatus = "COMPLETED"
)

// Meeting is a one-on-one between a member and the hub.
// A member holds at most one PENDING meeting at a time.
type Meeting struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	MemberID      string  `gorm:"index;type:varchar(36);not null" json:"member_id"`
	ScheduledByID *string `gorm:"type:varchar(36)" json:"scheduled_by_id,omitempty"`
	ConfirmedByID *string `gorm:"type:varchar(36)" json:"confirmed_by_id,omitempty"`

	MeetingType     MeetingType `gorm:"type:varchar(20);default:'ONLINE';not null" json:"meeting_type"`
	ScheduledDate   time.Time   `gorm:"not null;index" json:"scheduled_date"`
	DurationMinutes int         `gorm:"default:60" json:"duration_minutes"`

	Location    string `json:"location,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`

	Status             MeetingStatus `gorm:"type:varchar(20);default:'PENDING';not null;index" json:"status"`
	MemberNotes        string        `gorm:"type:text" json:"member_notes,omitempty"`
	HubNotes           string        `gorm:"type:text" json:"hub_notes,omitempty"`
	CancellationReason string        `gorm:"type:text" json:"cancellation_reason,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}

func (Meeting) TableName() string { return "meetings" }

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
