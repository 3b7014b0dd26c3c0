package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoProvider string

const (
	ProviderYoutube VideoProvider = "YOUTUBE"
	ProviderPanda   VideoProvider = "PANDA"
	ProviderVimeo   VideoProvider = "VIMEO"
)

type OnboardingVideo struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`

	Title        string        `gorm:"not null" json:"title" validate:"required"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
	VideoURL     string        `gorm:"not null" json:"video_url" validate:"required,url"`
	Provider     VideoProvider `gorm:"type:varchar(10);not null" json:"provider"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty"`

	Order           int  `gorm:"column:display_order;not null;default:0" json:"order"`
	IsActive        bool `gorm:"default:true;not null" json:"is_active"`
	DurationMinutes *int `json:"duration_minutes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OnboardingVideo) TableName() string { return "onboarding_videos" }

func (v *OnboardingVideo) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VideoProgress tracks one user's progress on one video.
type VideoProgress struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID  string `gorm:"index:idx_video_progress_user_video;type:varchar(36);not null" json:"user_id"`
	VideoID string `gorm:"index:idx_video_progress_user_video;type:varchar(36);not null" json:"video_id"`

	Completed   bool       `gorm:"default:false;not null" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Video *OnboardingVideo `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoProgress) TableName() string { return "video_progress" }

func (p *VideoProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = time.Now().UTC()
	}
	return nil
}

type QuizQuestion struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	VideoID string `gorm:"index;type:varchar(36);not null" json:"video_id"`

	QuestionText string `gorm:"type:text;not null" json:"question_text" validate:"required"`
	Order        int    `gorm:"column:display_order;not null;default:0" json:"order"`
	IsActive     bool   `gorm:"default:true;not null" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Video   *OnboardingVideo `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE" json:"-"`
	Options []QuizOption     `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

func (q *QuizQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

type QuizOption struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"question_id"`

	OptionText string `gorm:"type:text;not null" json:"option_text" validate:"required"`
	IsCorrect  bool   `gorm:"default:false;not null" json:"is_correct"`
	Order      int    `gorm:"column:display_order;not null;default:0" json:"order"`

	CreatedAt time.Time `json:"created_at"`
}

func (QuizOption) TableName() string { return "quiz_options" }

func (o *QuizOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// QuizAnswer is upserted per (user, question); re-answering replaces the
// previous choice.
type QuizAnswer struct {
	ID               string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID           string `gorm:"index:idx_quiz_answers_user_question;type:varchar(36);not null" json:"user_id"`
	QuestionID       string `gorm:"index:idx_quiz_answers_user_question;type:varchar(36);not null" json:"question_id"`
	SelectedOptionID string `gorm:"type:varchar(36);not null" json:"selected_option_id"`

	IsCorrect bool `gorm:"not null" json:"is_correct"`

	AnsweredAt time.Time `json:"answered_at"`

	Question *QuizQuestion `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizAnswer) TableName() string { return "quiz_answers" }

func (a *QuizAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = time.Now().UTC()
	}
	return nil
}
