package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberStatus tracks the onboarding lifecycle of a business profile.
// It is independent from UserStatus: the account and the application
// move through different state machines.
type MemberStatus string

const (
	MemberLead                 MemberStatus = "LEAD"
	MemberPaymentPending       MemberStatus = "PAYMENT_PENDING"
	MemberPaymentProofUploaded MemberStatus = "PAYMENT_PROOF_UPLOADED"
	MemberPendingApproval      MemberStatus = "PENDING_APPROVAL"
	MemberApproved             MemberStatus = "APPROVED"
	MemberRejected             MemberStatus = "REJECTED"
	MemberActive               MemberStatus = "ACTIVE"
	MemberSuspended            MemberStatus = "SUSPENDED"
	MemberInactive             MemberStatus = "INACTIVE"
)

type BusinessCategory string

const (
	CategoryTecnologia  BusinessCategory = "TECNOLOGIA"
	CategorySaude       BusinessCategory = "SAUDE"
	CategoryEducacao    BusinessCategory = "EDUCACAO"
	CategoryFinancas    BusinessCategory = "FINANCAS"
	CategoryMarketing   BusinessCategory = "MARKETING"
	CategoryConsultoria BusinessCategory = "CONSULTORIA"
	CategoryConstrucao  BusinessCategory = "CONSTRUCAO"
	CategoryAlimentacao BusinessCategory = "ALIMENTACAO"
	CategoryVarejo      BusinessCategory = "VAREJO"
	CategoryServicos    BusinessCategory = "SERVICOS"
	CategoryIndustria   BusinessCategory = "INDUSTRIA"
	CategoryOutros      BusinessCategory = "OUTROS"
)

type Member struct {
	ID     string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID string `gorm:"uniqueIndex;type:varchar(36);not null" json:"user_id"`

	CompanyName        string           `gorm:"not null" json:"company_name" validate:"required"`
	BusinessCategory   BusinessCategory `gorm:"type:varchar(20);not null" json:"business_category" validate:"required"`
	CompanyDescription string           `gorm:"type:text" json:"company_description,omitempty"`
	Website            string           `json:"website,omitempty"`

	BusinessPhone string `json:"business_phone,omitempty"`
	BusinessEmail string `json:"business_email,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`

	Status                 MemberStatus `gorm:"type:varchar(30);default:'LEAD';not null" json:"status"`
	ApplicationReason      string       `gorm:"type:text" json:"application_reason,omitempty"`
	VideosWatched          int          `gorm:"default:0" json:"videos_watched"`
	QuestionnaireCompleted *time.Time   `json:"questionnaire_completed,omitempty"`
	MeetingScheduled       *time.Time   `json:"meeting_scheduled,omitempty"`
	ApprovedAt             *time.Time   `json:"approved_at,omitempty"`
	ApprovedBy             *string      `gorm:"type:varchar(36)" json:"approved_by,omitempty"`

	LinkedinURL  string `json:"linkedin_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	TwitterURL   string `json:"twitter_url,omitempty"`

	ProfilePhotoURL  string `json:"profile_photo_url,omitempty"`
	Bio              string `gorm:"type:text" json:"bio,omitempty"`
	Interests        string `gorm:"type:text" json:"interests,omitempty"`
	Skills           string `gorm:"type:text" json:"skills,omitempty"`
	ProfileCompleted int    `gorm:"default:0" json:"profile_completed"`

	ReputationScore        float64 `gorm:"default:0" json:"reputation_score"`
	TotalReferralsGiven    int     `gorm:"default:0" json:"total_referrals_given"`
	TotalReferralsReceived int     `gorm:"default:0" json:"total_referrals_received"`
	TotalDealsClosed       int     `gorm:"default:0" json:"total_deals_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Member) TableName() string { return "members" }

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
