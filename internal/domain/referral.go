package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Qualification string

const (
	QualificationHot  Qualification = "HOT"
	QualificationWarm Qualification = "WARM"
	QualificationCold Qualification = "COLD"
)

type ReferralStatus string

const (
	ReferralPending     ReferralStatus = "PENDING"
	ReferralContacted   ReferralStatus = "CONTACTED"
	ReferralNegotiating ReferralStatus = "NEGOTIATING"
	ReferralWon         ReferralStatus = "WON"
	ReferralLost        ReferralStatus = "LOST"
	ReferralCancelled   ReferralStatus = "CANCELLED"
)

// Referral is a business lead one member hands to another. This is distinct
// from the user-level referral_code growth mechanism on User.
type Referral struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	FromMemberID string `gorm:"index;type:varchar(36);not null" json:"from_member_id"`
	ToMemberID   string `gorm:"index;type:varchar(36);not null" json:"to_member_id"`

	ClientName    string `gorm:"not null" json:"client_name" validate:"required"`
	ClientCompany string `json:"client_company,omitempty"`
	ClientPhone   string `gorm:"not null" json:"client_phone" validate:"required"`
	ClientEmail   string `json:"client_email,omitempty"`

	Qualification Qualification `gorm:"type:varchar(10);not null" json:"qualification"`
	Context       string        `gorm:"type:text;not null" json:"context" validate:"required"`
	ClientNeed    string        `gorm:"type:text" json:"client_need,omitempty"`

	Status ReferralStatus `gorm:"type:varchar(20);default:'PENDING';not null" json:"status"`

	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FromMember *Member `gorm:"foreignKey:FromMemberID" json:"from_member,omitempty"`
	ToMember   *Member `gorm:"foreignKey:ToMemberID" json:"to_member,omitempty"`
}

func (Referral) TableName() string { return "referrals" }

func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
