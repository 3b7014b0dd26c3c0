package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// GetLatestByUser returns the user's most recently created payment,
// whatever its status.
func (r *PaymentRepository) GetLatestByUser(ctx context.Context, userID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetLatestPendingByUser returns the most recent payment still waiting for a
// proof upload.
func (r *PaymentRepository) GetLatestPendingByUser(ctx context.Context, userID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.PaymentPending).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

// CreateWithMember persists a new business profile together with its
// onboarding payment cycle in one transaction.
func (r *PaymentRepository) CreateWithMember(ctx context.Context, m *domain.Member, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(p).Error
	})
}

// SaveOutcome writes a payment verification outcome and its side effects
// atomically. user and member may be nil when the outcome does not touch
// them (a rejection leaves the account untouched).
func (r *PaymentRepository) SaveOutcome(ctx context.Context, p *domain.Payment, u *domain.User, m *domain.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if u != nil {
			if err := tx.Save(u).Error; err != nil {
				return err
			}
		}
		if m != nil {
			if err := tx.Save(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
