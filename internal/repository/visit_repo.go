package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitRepository) GetByID(ctx context.Context, id string) (*domain.Visit, error) {
	var v domain.Visit
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitRepository) Update(ctx context.Context, v *domain.Visit) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VisitRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Visit{}, "id = ?", id).Error
}

func (r *VisitRepository) ListByMember(ctx context.Context, memberID string, asVisitor bool, status domain.VisitStatus, offset, limit int) ([]domain.Visit, error) {
	q := r.db.WithContext(ctx)
	if asVisitor {
		q = q.Where("visitor_id = ?", memberID)
	} else {
		q = q.Where("visited_id = ?", memberID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	var visits []domain.Visit
	err := q.Order("visit_date DESC").Offset(offset).Limit(limit).Find(&visits).Error
	return visits, err
}

type VisitFilter struct {
	Status   domain.VisitStatus
	Purpose  domain.VisitPurpose
	DateFrom *time.Time
	DateTo   *time.Time
	Offset   int
	Limit    int
}

func (r *VisitRepository) List(ctx context.Context, f VisitFilter) ([]domain.Visit, error) {
	q := r.db.WithContext(ctx).Preload("Visitor").Preload("Visited")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Purpose != "" {
		q = q.Where("purpose = ?", f.Purpose)
	}
	if f.DateFrom != nil {
		q = q.Where("visit_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("visit_date <= ?", *f.DateTo)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 100
	}

	var visits []domain.Visit
	err := q.Order("visit_date DESC").Offset(f.Offset).Limit(f.Limit).Find(&visits).Error
	return visits, err
}

func (r *VisitRepository) CountMade(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("visitor_id = ?", memberID).Count(&count).Error
	return count, err
}

func (r *VisitRepository) CountReceived(ctx context.Context, memberID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("visited_id = ?", memberID).Count(&count).Error
	return count, err
}

// CountInvolvingByStatus counts visits where the member is on either side.
func (r *VisitRepository) CountInvolvingByStatus(ctx context.Context, memberID string, status domain.VisitStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("(visitor_id = ? OR visited_id = ?) AND status = ?", memberID, memberID, status).
		Count(&count).Error
	return count, err
}

func (r *VisitRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).Count(&count).Error
	return count, err
}

func (r *VisitRepository) CountByStatus(ctx context.Context, status domain.VisitStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// AverageQuality averages networking_quality over rated visits; memberID
// narrows to visits the member made, empty means global.
func (r *VisitRepository) AverageQuality(ctx context.Context, memberID string) (*float64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("networking_quality IS NOT NULL")
	if memberID != "" {
		q = q.Where("visitor_id = ?", memberID)
	}

	var avg *float64
	err := q.Select("AVG(networking_quality)").Scan(&avg).Error
	return avg, err
}

func (r *VisitRepository) CountWithPotentialReferrals(ctx context.Context, memberID string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Where("potential_referrals IS NOT NULL AND potential_referrals <> ''")
	if memberID != "" {
		q = q.Where("visitor_id = ?", memberID)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}
