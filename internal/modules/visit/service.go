package visit

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
	"github.com/gustavoml12/GrupoUnion/internal/repository"
)

// Service manages member-to-member networking visits.
type Service struct {
	visits  VisitRepository
	members MemberReader
}

func NewService(visits VisitRepository, members MemberReader) *Service {
	return &Service{visits: visits, members: members}
}

// Create registers a visit from one member to another. Both ends must
// exist and a member cannot visit themselves.
func (s *Service) Create(ctx context.Context, visitorID string, req CreateVisitRequest) (*domain.Visit, error) {
	if visitorID == req.VisitedID {
		return nil, ErrSelfVisit
	}

	if _, err := s.members.GetByID(ctx, visitorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}
	if _, err := s.members.GetByID(ctx, req.VisitedID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitedNotFound
		}
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = 60
	}

	visit := &domain.Visit{
		VisitorID:       visitorID,
		VisitedID:       req.VisitedID,
		Purpose:         domain.VisitPurpose(req.Purpose),
		VisitDate:       req.VisitDate,
		DurationMinutes: duration,
		Location:        req.Location,
		VisitorNotes:    req.VisitorNotes,
		Status:          domain.VisitAgendada,
	}

	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Visit, error) {
	visit, err := s.visits.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, err
	}
	return visit, nil
}

func (s *Service) ListByMember(ctx context.Context, memberID string, asVisitor bool, status domain.VisitStatus, offset, limit int) ([]domain.Visit, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.visits.ListByMember(ctx, memberID, asVisitor, status, offset, limit)
}

func (s *Service) List(ctx context.Context, f repository.VisitFilter) ([]domain.Visit, error) {
	if f.Limit <= 0 {
		f.Limit = 100
	}
	return s.visits.List(ctx, f)
}

// Update edits a visit that has not been held yet.
func (s *Service) Update(ctx context.Context, id string, req UpdateVisitRequest) (*domain.Visit, error) {
	visit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if visit.Status == domain.VisitRealizada {
		return nil, ErrAlreadyHeld
	}

	if req.Purpose != nil {
		visit.Purpose = domain.VisitPurpose(*req.Purpose)
	}
	if req.VisitDate != nil {
		visit.VisitDate = *req.VisitDate
	}
	if req.DurationMinutes != nil {
		visit.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		visit.Location = *req.Location
	}
	if req.VisitorNotes != nil {
		visit.VisitorNotes = *req.VisitorNotes
	}

	if err := s.visits.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// Complete marks a visit as held and records the outcome. REALIZADA is
// terminal.
func (s *Service) Complete(ctx context.Context, id string, req CompleteVisitRequest) (*domain.Visit, error) {
	visit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if visit.Status == domain.VisitRealizada {
		return nil, ErrAlreadyHeld
	}

	now := time.Now()
	visit.Status = domain.VisitRealizada
	visit.CompletedAt = &now
	if req.VisitSummary != "" {
		visit.VisitSummary = req.VisitSummary
	}
	if req.ServicesLearned != "" {
		visit.ServicesLearned = req.ServicesLearned
	}
	if req.PotentialReferrals != "" {
		visit.PotentialReferrals = req.PotentialReferrals
	}
	if req.NetworkingQuality != nil {
		visit.NetworkingQuality = req.NetworkingQuality
	}
	if req.FollowUpNeeded != "" {
		visit.FollowUpNeeded = req.FollowUpNeeded
	}
	if req.FollowUpDate != nil {
		visit.FollowUpDate = req.FollowUpDate
	}

	if err := s.visits.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// Cancel cancels a visit that has not been held.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Visit, error) {
	visit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if visit.Status == domain.VisitRealizada {
		return nil, ErrAlreadyHeld
	}

	visit.Status = domain.VisitCancelada
	if err := s.visits.Update(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.visits.Delete(ctx, id)
}

// Stats aggregates visit counters. With a memberID it reports that
// member's activity; with an empty one it reports the whole hub.
func (s *Service) Stats(ctx context.Context, memberID string) (*Stats, error) {
	stats := &Stats{}
	var err error

	if memberID != "" {
		if stats.VisitsMade, err = s.visits.CountMade(ctx, memberID); err != nil {
			return nil, err
		}
		if stats.VisitsReceived, err = s.visits.CountReceived(ctx, memberID); err != nil {
			return nil, err
		}
		stats.TotalVisits = stats.VisitsMade + stats.VisitsReceived
		if stats.CompletedVisits, err = s.visits.CountInvolvingByStatus(ctx, memberID, domain.VisitRealizada); err != nil {
			return nil, err
		}
		if stats.PendingVisits, err = s.visits.CountInvolvingByStatus(ctx, memberID, domain.VisitAgendada); err != nil {
			return nil, err
		}
	} else {
		if stats.TotalVisits, err = s.visits.CountAll(ctx); err != nil {
			return nil, err
		}
		stats.VisitsMade = stats.TotalVisits
		stats.VisitsReceived = stats.TotalVisits
		if stats.CompletedVisits, err = s.visits.CountByStatus(ctx, domain.VisitRealizada); err != nil {
			return nil, err
		}
		if stats.PendingVisits, err = s.visits.CountByStatus(ctx, domain.VisitAgendada); err != nil {
			return nil, err
		}
	}

	if stats.AverageNetworkingQuality, err = s.visits.AverageQuality(ctx, memberID); err != nil {
		return nil, err
	}
	if stats.TotalPotentialReferrals, err = s.visits.CountWithPotentialReferrals(ctx, memberID); err != nil {
		return nil, err
	}

	return stats, nil
}
