package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "PENDING"
	PaymentProofUploaded PaymentStatus = "PROOF_UPLOADED"
	PaymentVerified      PaymentStatus = "VERIFIED"
	PaymentRejected      PaymentStatus = "REJECTED"
	PaymentExpired       PaymentStatus = "EXPIRED"
)

type PaymentType string

const (
	PaymentOnboarding PaymentType = "ONBOARDING"
	PaymentMonthly    PaymentType = "MONTHLY"
	PaymentAnnual     PaymentType = "ANNUAL"
)

// Payment is one payment attempt/cycle. A user accumulates one record per
// cycle over time; the "current" payment is the most recently created one.
// Rows are never mutated after VERIFIED/REJECTED - a new cycle gets a new row.
type Payment struct {
	ID     string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID string `gorm:"index;type:varchar(36);not null" json:"user_id"`

	PaymentType PaymentType   `gorm:"type:varchar(20);not null" json:"payment_type"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Status      PaymentStatus `gorm:"type:varchar(20);default:'PENDING';not null;index" json:"status"`

	PixKey    string `json:"pix_key,omitempty"`
	PixQRCode string `gorm:"type:text" json:"pix_qr_code,omitempty"`

	PaymentProofURL string     `json:"payment_proof_url,omitempty"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`

	VerifiedBy      *string    `gorm:"type:varchar(36)" json:"verified_by,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`

	ReferenceMonth string     `json:"reference_month,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
