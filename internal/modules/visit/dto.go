package visit

import "time"

type CreateVisitRequest struct {
	VisitedID       string    `json:"visited_id" binding:"required"`
	Purpose         string    `json:"purpose" binding:"required,oneof=CONHECER_SERVICOS NETWORKING PARCERIA INDICACAO FOLLOW_UP OUTRO"`
	VisitDate       time.Time `json:"visit_date" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	VisitorNotes    string    `json:"visitor_notes"`
}

type UpdateVisitRequest struct {
	Purpose         *string    `json:"purpose" binding:"omitempty,oneof=CONHECER_SERVICOS NETWORKING PARCERIA INDICACAO FOLLOW_UP OUTRO"`
	VisitDate       *time.Time `json:"visit_date"`
	DurationMinutes *int       `json:"duration_minutes"`
	Location        *string    `json:"location"`
	VisitorNotes    *string    `json:"visitor_notes"`
}

type CompleteVisitRequest struct {
	VisitSummary       string     `json:"visit_summary"`
	ServicesLearned    string     `json:"services_learned"`
	PotentialReferrals string     `json:"potential_referrals"`
	NetworkingQuality  *int       `json:"networking_quality" binding:"omitempty,min=1,max=5"`
	FollowUpNeeded     string     `json:"follow_up_needed"`
	FollowUpDate       *time.Time `json:"follow_up_date"`
}

type Stats struct {
	TotalVisits              int64    `json:"total_visits"`
	VisitsMade               int64    `json:"visits_made"`
	VisitsReceived           int64    `json:"visits_received"`
	CompletedVisits          int64    `json:"completed_visits"`
	PendingVisits            int64    `json:"pending_visits"`
	AverageNetworkingQuality *float64 `json:"average_networking_quality"`
	TotalPotentialReferrals  int64    `json:"total_potential_referrals"`
}
