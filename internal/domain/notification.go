package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotifMemberApproved     NotificationType = "MEMBER_APPROVED"
	NotifMemberRejected     NotificationType = "MEMBER_REJECTED"
	NotifMeetingConfirmed   NotificationType = "MEETING_CONFIRMED"
	NotifMeetingCancelled   NotificationType = "MEETING_CANCELLED"
	NotifMeetingReminder    NotificationType = "MEETING_REMINDER"
	NotifNewVideo           NotificationType = "NEW_VIDEO"
	NotifReferralApproved   NotificationType = "REFERRAL_APPROVED"
	NotifSystemAnnouncement NotificationType = "SYSTEM_ANNOUNCEMENT"
	NotifPaymentConfirmed   NotificationType = "PAYMENT_CONFIRMED"
	NotifPaymentRejected    NotificationType = "PAYMENT_REJECTED"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityNormal NotificationPriority = "NORMAL"
	PriorityHigh   NotificationPriority = "HIGH"
	PriorityUrgent NotificationPriority = "URGENT"
)

// Notification rows are append-only except for the read flag; expired rows
// are removed by the TTL cleanup job.
type Notification struct {
	ID     string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID string `gorm:"index;type:varchar(36);not null" json:"user_id"`

	Type     NotificationType     `gorm:"type:varchar(30);not null" json:"type"`
	Priority NotificationPriority `gorm:"type:varchar(10);default:'NORMAL';not null" json:"priority"`

	Title   string `gorm:"not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`

	ActionURL   string `json:"action_url,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`

	RelatedEntityType string `json:"related_entity_type,omitempty"`
	RelatedEntityID   string `json:"related_entity_id,omitempty"`

	IsRead bool       `gorm:"default:false;not null" json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
