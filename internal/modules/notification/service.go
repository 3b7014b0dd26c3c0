package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

// Service persists notifications. Callers in other modules treat it as a
// best-effort sink: delivery failures never roll back the business
// operation that triggered them.
type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, n *domain.Notification) error {
	return s.repo.Create(ctx, n)
}

func (s *Service) GetUserNotifications(ctx context.Context, userID string, unreadOnly bool, offset, limit int) ([]domain.Notification, int64, error) {
	list, err := s.repo.ListByUser(ctx, userID, unreadOnly, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountByUser(ctx, userID, true)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	n.IsRead = true
	n.ReadAt = &now
	if err := s.repo.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, notificationID, userID string) error {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if n.UserID != userID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, notificationID)
}

// DeleteOlderThan prunes notifications past their useful life. Run from a
// periodic admin call, not a background worker.
func (s *Service) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

type Stats struct {
	Total  int64            `json:"total_notifications"`
	Unread int64            `json:"unread_notifications"`
	Read   int64            `json:"read_notifications"`
	ByType map[string]int64 `json:"notifications_by_type"`
}

func (s *Service) GetStats(ctx context.Context, userID string) (*Stats, error) {
	total, err := s.repo.CountByUser(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	byType, err := s.repo.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	m := make(map[string]int64, len(byType))
	for _, tc := range byType {
		m[string(tc.Type)] = tc.Count
	}

	return &Stats{Total: total, Unread: unread, Read: total - unread, ByType: m}, nil
}

// Typed helpers used by the other modules.

func (s *Service) NotifyMemberApproved(ctx context.Context, userID, memberName string) error {
	return s.Create(ctx, &domain.Notification{
		UserID:      userID,
		Type:        domain.NotifMemberApproved,
		Priority:    domain.PriorityHigh,
		Title:       "Cadastro Aprovado!",
		Message:     fmt.Sprintf("Parabéns %s! Seu cadastro foi aprovado. Agora você é um membro oficial do Grupo Union!", memberName),
		ActionURL:   "/dashboard",
		ActionLabel: "Ir para Dashboard",
	})
}

func (s *Service) NotifyMemberRejected(ctx context.Context, userID, memberName, reason string) error {
	msg := fmt.Sprintf("Olá %s, infelizmente seu cadastro não foi aprovado.", memberName)
	if reason != "" {
		msg += " Motivo: " + reason
	}
	return s.Create(ctx, &domain.Notification{
		UserID:   userID,
		Type:     domain.NotifMemberRejected,
		Priority: domain.PriorityHigh,
		Title:    "Cadastro Não Aprovado",
		Message:  msg,
	})
}

func (s *Service) NotifyMeetingConfirmed(ctx context.Context, userID, meetingID, when, link, location string) error {
	msg := fmt.Sprintf("Sua reunião foi confirmada para %s.", when)
	if link != "" {
		msg += " Link: " + link
	} else if location != "" {
		msg += " Local: " + location
	}
	return s.Create(ctx, &domain.Notification{
		UserID:            userID,
		Type:              domain.NotifMeetingConfirmed,
		Priority:          domain.PriorityHigh,
		Title:             "Reunião Confirmada",
		Message:           msg,
		ActionURL:         "/meetings/schedule",
		ActionLabel:       "Ver Reunião",
		RelatedEntityType: "meeting",
		RelatedEntityID:   meetingID,
	})
}

func (s *Service) NotifyMeetingCancelled(ctx context.Context, userID, meetingID, reason string) error {
	return s.Create(ctx, &domain.Notification{
		UserID:            userID,
		Type:              domain.NotifMeetingCancelled,
		Priority:          domain.PriorityHigh,
		Title:             "Reunião Cancelada",
		Message:           fmt.Sprintf("Sua reunião foi cancelada. Motivo: %s", reason),
		ActionURL:         "/meetings/schedule",
		ActionLabel:       "Agendar Nova Reunião",
		RelatedEntityType: "meeting",
		RelatedEntityID:   meetingID,
	})
}

func (s *Service) NotifyPaymentConfirmed(ctx context.Context, userID string, amount float64) error {
	return s.Create(ctx, &domain.Notification{
		UserID:      userID,
		Type:        domain.NotifPaymentConfirmed,
		Priority:    domain.PriorityHigh,
		Title:       "Pagamento Confirmado",
		Message:     fmt.Sprintf("Seu pagamento de R$ %.2f foi confirmado!", amount),
		ActionURL:   "/dashboard",
		ActionLabel: "Ver Dashboard",
	})
}

func (s *Service) NotifyPaymentRejected(ctx context.Context, userID, reason string) error {
	msg := "Seu comprovante de pagamento não foi aceito."
	if reason != "" {
		msg += " Motivo: " + reason
	}
	return s.Create(ctx, &domain.Notification{
		UserID:   userID,
		Type:     domain.NotifPaymentRejected,
		Priority: domain.PriorityHigh,
		Title:    "Pagamento Rejeitado",
		Message:  msg,
	})
}

func (s *Service) NotifyReferralApproved(ctx context.Context, userID, referredName string) error {
	return s.Create(ctx, &domain.Notification{
		UserID:      userID,
		Type:        domain.NotifReferralApproved,
		Priority:    domain.PriorityNormal,
		Title:       "Indicação Aprovada!",
		Message:     fmt.Sprintf("Sua indicação %s foi aprovada e agora é um membro!", referredName),
		ActionURL:   "/dashboard",
		ActionLabel: "Ver Dashboard",
	})
}

func (s *Service) NotifyNewVideo(ctx context.Context, userIDs []string, videoID, videoTitle string) error {
	ns := make([]domain.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		ns = append(ns, domain.Notification{
			UserID:            uid,
			Type:              domain.NotifNewVideo,
			Priority:          domain.PriorityNormal,
			Title:             "Novo Vídeo Disponível",
			Message:           fmt.Sprintf("Um novo vídeo foi adicionado: %s", videoTitle),
			ActionURL:         "/onboarding/videos",
			ActionLabel:       "Assistir Agora",
			RelatedEntityType: "video",
			RelatedEntityID:   videoID,
		})
	}
	return s.repo.CreateBulk(ctx, ns)
}

func (s *Service) NotifySystemAnnouncement(ctx context.Context, userIDs []string, title, message string) error {
	ns := make([]domain.Notification, 0, len(userIDs))
	for _, uid := range userIDs {
		ns = append(ns, domain.Notification{
			UserID:   uid,
			Type:     domain.NotifSystemAnnouncement,
			Priority: domain.PriorityNormal,
			Title:    title,
			Message:  message,
		})
	}
	return s.repo.CreateBulk(ctx, ns)
}
