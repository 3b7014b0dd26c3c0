package onboarding

import "time"

type ApplicationRequest struct {
	CompanyName        string `json:"company_name" binding:"required,min=2"`
	BusinessCategory   string `json:"business_category" binding:"required"`
	CompanyDescription string `json:"company_description"`
	Website            string `json:"website"`
	BusinessPhone      string `json:"business_phone"`
	BusinessEmail      string `json:"business_email" binding:"omitempty,email"`
	City               string `json:"city"`
	State              string `json:"state"`
	LinkedinURL        string `json:"linkedin_url"`
	InstagramURL       string `json:"instagram_url"`
	ApplicationReason  string `json:"application_reason"`
}

type MemberProfileRequest struct {
	CompanyName        string `json:"company_name" binding:"required,min=2"`
	BusinessCategory   string `json:"business_category" binding:"required"`
	CompanyDescription string `json:"company_description"`
	Website            string `json:"website"`
	BusinessPhone      string `json:"business_phone"`
	BusinessEmail      string `json:"business_email" binding:"omitempty,email"`
	City               string `json:"city"`
	State              string `json:"state"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACTIVE SUSPENDED INACTIVE"`
}

type PaymentProofRequest struct {
	PaymentProofURL string     `json:"payment_proof_url" binding:"required"`
	PaymentDate     *time.Time `json:"payment_date"`
}

type VerifyPaymentRequest struct {
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejection_reason"`
}

type PixInfo struct {
	PixKey       string   `json:"pix_key"`
	Amount       float64  `json:"amount"`
	Description  string   `json:"description"`
	Instructions []string `json:"instructions"`
}
