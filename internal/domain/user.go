package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleVisitor UserRole = "VISITOR"
	RoleMember  UserRole = "MEMBER"
	RoleHub     UserRole = "HUB"
	RoleAdmin   UserRole = "ADMIN"
)

type UserStatus string

const (
	UserPending   UserStatus = "PENDING"
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserInactive  UserStatus = "INACTIVE"
)

type User struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);default:'VISITOR';not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'PENDING';not null" json:"status"`
	FullName     string     `json:"full_name,omitempty"`
	Phone        string     `json:"phone,omitempty"`

	// ReferralCode is assigned once at creation and never changes.
	ReferralCode string  `gorm:"uniqueIndex;not null" json:"referral_code"`
	ReferredByID *string `gorm:"type:varchar(36)" json:"referred_by_id,omitempty"`

	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ReferredBy *User `gorm:"foreignKey:ReferredByID" json:"referred_by,omitempty"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.ReferralCode == "" {
		code, err := NewReferralCode()
		if err != nil {
			return err
		}
		u.ReferralCode = code
	}
	return nil
}
