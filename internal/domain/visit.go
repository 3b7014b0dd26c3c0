package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitPurpose string

const (
	VisitConhecerServicos VisitPurpose = "CONHECER_SERVICOS"
	VisitNetworking       VisitPurpose = "NETWORKING"
	VisitParceria         VisitPurpose = "PARCERIA"
	VisitIndicacao        VisitPurpose = "INDICACAO"
	VisitFollowUp         VisitPurpose = "FOLLOW_UP"
	VisitOutro            VisitPurpose = "OUTRO"
)

type VisitStatus string

const (
	VisitAgendada     VisitStatus = "AGENDADA"
	VisitRealizada    VisitStatus = "REALIZADA"
	VisitCancelada    VisitStatus = "CANCELADA"
	VisitNaoRealizada VisitStatus = "NAO_REALIZADA"
)

// Visit is a directed member-to-member networking visit. visitor != visited.
type Visit struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	VisitorID string `gorm:"index;type:varchar(36);not null" json:"visitor_id"`
	VisitedID string `gorm:"index;type:varchar(36);not null" json:"visited_id"`

	Purpose         VisitPurpose `gorm:"type:varchar(20);not null" json:"purpose"`
	VisitDate       time.Time    `gorm:"not null" json:"visit_date"`
	DurationMinutes int          `gorm:"default:60" json:"duration_minutes"`
	Location        string       `json:"location,omitempty"`

	Status VisitStatus `gorm:"type:varchar(20);default:'AGENDADA';not null" json:"status"`

	VisitorNotes       string `gorm:"type:text" json:"visitor_notes,omitempty"`
	VisitSummary       string `gorm:"type:text" json:"visit_summary,omitempty"`
	ServicesLearned    string `gorm:"type:text" json:"services_learned,omitempty"`
	PotentialReferrals string `gorm:"type:text" json:"potential_referrals,omitempty"`

	NetworkingQuality *int `json:"networking_quality,omitempty" validate:"omitempty,min=1,max=5"`

	FollowUpNeeded string     `json:"follow_up_needed,omitempty"`
	FollowUpDate   *time.Time `json:"follow_up_date,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Visitor *Member `gorm:"foreignKey:VisitorID;constraint:OnDelete:CASCADE" json:"visitor,omitempty"`
	Visited *Member `gorm:"foreignKey:VisitedID;constraint:OnDelete:CASCADE" json:"visited,omitempty"`
}

func (Visit) TableName() string { return "visits" }

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
