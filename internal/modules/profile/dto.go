package profile

import "time"

type UpdateProfileRequest struct {
	CompanyName        *string `json:"company_name" binding:"omitempty,min=2"`
	BusinessCategory   *string `json:"business_category"`
	CompanyDescription *string `json:"company_description"`
	Website            *string `json:"website" validate:"omitempty,url"`
	BusinessPhone      *string `json:"business_phone"`
	BusinessEmail      *string `json:"business_email" binding:"omitempty,email"`
	City               *string `json:"city"`
	State              *string `json:"state"`
	LinkedinURL        *string `json:"linkedin_url" validate:"omitempty,url"`
	InstagramURL       *string `json:"instagram_url" validate:"omitempty,url"`
	FacebookURL        *string `json:"facebook_url" validate:"omitempty,url"`
	TwitterURL         *string `json:"twitter_url" validate:"omitempty,url"`
	ProfilePhotoURL    *string `json:"profile_photo_url"`
	Bio                *string `json:"bio" validate:"omitempty,max=2000"`
	Interests          *string `json:"interests"`
	Skills             *string `json:"skills"`
}

type Suggestion struct {
	Field       string `json:"field"`
	Label       string `json:"label"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type Completion struct {
	Percentage  int          `json:"percentage"`
	Suggestions []Suggestion `json:"suggestions"`
}

type ReferredVisitor struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberStatistics struct {
	UserID                  string            `json:"user_id"`
	FullName                string            `json:"full_name"`
	Email                   string            `json:"email"`
	Role                    string            `json:"role"`
	Status                  string            `json:"status"`
	ReferralCode            string            `json:"referral_code"`
	TotalVisitorsReferred   int               `json:"total_visitors_referred"`
	ActiveMembersReferred   int               `json:"active_members_referred"`
	PendingVisitorsReferred int               `json:"pending_visitors_referred"`
	VisitorsReferred        []ReferredVisitor `json:"visitors_referred"`
}
