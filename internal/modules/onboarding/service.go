package onboarding

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

const (
	// PixKey is the hub's receiving PIX key for onboarding payments.
	PixKey = "64981211030"

	// OnboardingFee is the membership fee in BRL.
	OnboardingFee = 197.00

	paymentDueDays = 7
)

// Service drives the visitor-to-member state machine: application,
// payment proof, manual verification and promotion.
type Service struct {
	users    UserRepository
	members  MemberRepository
	payments PaymentRepository
	notifs   NotificationSender
}

func NewService(users UserRepository, members MemberRepository, payments PaymentRepository, notifs NotificationSender) *Service {
	return &Service{users: users, members: members, payments: payments, notifs: notifs}
}

// SubmitApplication creates the business profile and opens the onboarding
// payment cycle. Only visitors without an existing application may apply.
func (s *Service) SubmitApplication(ctx context.Context, userID string, req ApplicationRequest) (*domain.Member, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != domain.RoleVisitor {
		return nil, ErrNotVisitor
	}

	if _, err := s.members.GetByUserID(ctx, userID); err == nil {
		return nil, ErrApplicationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &domain.Member{
		UserID:             userID,
		CompanyName:        req.CompanyName,
		BusinessCategory:   domain.BusinessCategory(req.BusinessCategory),
		CompanyDescription: req.CompanyDescription,
		Website:            req.Website,
		BusinessPhone:      req.BusinessPhone,
		BusinessEmail:      req.BusinessEmail,
		City:               req.City,
		State:              req.State,
		LinkedinURL:        req.LinkedinURL,
		InstagramURL:       req.InstagramURL,
		ApplicationReason:  req.ApplicationReason,
		Status:             domain.MemberPaymentPending,
		ReputationScore:    100.0,
	}

	due := time.Now().AddDate(0, 0, paymentDueDays)
	payment := &domain.Payment{
		UserID:      userID,
		PaymentType: domain.PaymentOnboarding,
		Amount:      OnboardingFee,
		Status:      domain.PaymentPending,
		PixKey:      PixKey,
		DueDate:     &due,
	}

	if err := s.payments.CreateWithMember(ctx, member, payment); err != nil {
		return nil, err
	}
	return member, nil
}

// UploadPaymentProof attaches the transfer receipt to the user's open
// payment and moves both payment and profile one step forward.
func (s *Service) UploadPaymentProof(ctx context.Context, userID string, req PaymentProofRequest) (*domain.Payment, error) {
	payment, err := s.payments.GetLatestPendingByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingPayment
		}
		return nil, err
	}

	paidAt := time.Now()
	if req.PaymentDate != nil {
		paidAt = *req.PaymentDate
	}
	payment.PaymentProofURL = req.PaymentProofURL
	payment.PaymentDate = &paidAt
	payment.Status = domain.PaymentProofUploaded

	var member *domain.Member
	if m, err := s.members.GetByUserID(ctx, userID); err == nil {
		m.Status = domain.MemberPaymentProofUploaded
		member = m
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.payments.SaveOutcome(ctx, payment, nil, member); err != nil {
		return nil, err
	}
	return payment, nil
}

// VerifyPayment records the hub's manual decision on an uploaded proof.
// Approval promotes the applicant to an active member in the same write;
// a payment that already reached a terminal status cannot be verified
// again, so a member is never promoted twice for one cycle.
func (s *Service) VerifyPayment(ctx context.Context, paymentID, verifierID string, req VerifyPaymentRequest) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if payment.Status != domain.PaymentProofUploaded && payment.Status != domain.PaymentPending {
		return nil, ErrPaymentNotVerifiable
	}

	now := time.Now()
	payment.VerifiedBy = &verifierID
	payment.VerifiedAt = &now

	if !req.Approved {
		payment.Status = domain.PaymentRejected
		payment.RejectionReason = req.RejectionReason

		var member *domain.Member
		if m, err := s.members.GetByUserID(ctx, payment.UserID); err == nil {
			m.Status = domain.MemberPaymentPending
			member = m
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if err := s.payments.SaveOutcome(ctx, payment, nil, member); err != nil {
			return nil, err
		}

		_ = s.notifs.NotifyPaymentRejected(ctx, payment.UserID, req.RejectionReason)
		return payment, nil
	}

	payment.Status = domain.PaymentVerified

	user, err := s.users.GetByID(ctx, payment.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	var member *domain.Member
	if m, merr := s.members.GetByUserID(ctx, payment.UserID); merr == nil {
		member = m
	} else if !errors.Is(merr, gorm.ErrRecordNotFound) {
		return nil, merr
	}

	// Promotion only happens when both the account and the application
	// exist, mirroring the payment-first onboarding path.
	if user != nil && member != nil {
		user.Role = domain.RoleMember
		user.Status = domain.UserActive
		member.Status = domain.MemberApproved
		member.ApprovedAt = &now
		member.ApprovedBy = &verifierID
	} else {
		user = nil
		member = nil
	}

	if err := s.payments.SaveOutcome(ctx, payment, user, member); err != nil {
		return nil, err
	}

	_ = s.notifs.NotifyPaymentConfirmed(ctx, payment.UserID, payment.Amount)
	if user != nil {
		name := user.FullName
		if name == "" {
			name = user.Email
		}
		_ = s.notifs.NotifyMemberApproved(ctx, user.ID, name)
	}

	return payment, nil
}

// PendingPayments lists every proof waiting for hub review.
func (s *Service) PendingPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.ListByStatus(ctx, domain.PaymentProofUploaded)
}

// MyPayment returns the user's most recent payment cycle.
func (s *Service) MyPayment(ctx context.Context, userID string) (*domain.Payment, error) {
	payment, err := s.payments.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// ApproveVisitorToMember promotes a visitor directly, without a payment
// cycle. Kept as an explicit admin bypass of the payment path.
func (s *Service) ApproveVisitorToMember(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != domain.RoleVisitor {
		return nil, ErrNotVisitor
	}

	user.Role = domain.RoleMember
	user.Status = domain.UserActive
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	_ = s.notifs.NotifyMemberApproved(ctx, user.ID, name)

	return user, nil
}

// RejectVisitor deactivates a visitor's account.
func (s *Service) RejectVisitor(ctx context.Context, userID, reason string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != domain.RoleVisitor {
		return nil, ErrNotVisitor
	}

	user.Status = domain.UserInactive
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	name := user.FullName
	if name == "" {
		name = user.Email
	}
	_ = s.notifs.NotifyMemberRejected(ctx, user.ID, name, reason)

	return user, nil
}

// PendingVisitors lists accounts still waiting for an onboarding decision.
func (s *Service) PendingVisitors(ctx context.Context) ([]domain.User, error) {
	return s.users.ListPendingVisitors(ctx)
}

// CreateMemberProfile creates the business profile for a user who was
// promoted without going through the payment application, so the profile
// starts ACTIVE straight away.
func (s *Service) CreateMemberProfile(ctx context.Context, userID string, req MemberProfileRequest) (*domain.Member, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Role != domain.RoleMember {
		return nil, ErrNotMember
	}

	if _, err := s.members.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	member := &domain.Member{
		UserID:             userID,
		CompanyName:        req.CompanyName,
		BusinessCategory:   domain.BusinessCategory(req.BusinessCategory),
		CompanyDescription: req.CompanyDescription,
		Website:            req.Website,
		BusinessPhone:      req.BusinessPhone,
		BusinessEmail:      req.BusinessEmail,
		City:               req.City,
		State:              req.State,
		Status:             domain.MemberActive,
		ReputationScore:    100.0,
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// AllUsers lists every account regardless of role, paginated.
func (s *Service) AllUsers(ctx context.Context, offset, limit int) ([]domain.User, error) {
	return s.users.List(ctx, offset, limit)
}

// AllMembers lists the accounts holding the MEMBER role.
func (s *Service) AllMembers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleMember)
}

// UpdateUserStatus sets an account's status directly. Used by the hub to
// suspend or reactivate accounts outside the onboarding flow.
func (s *Service) UpdateUserStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PaymentInstructions returns the static PIX payment information shown to
// applicants.
func (s *Service) PaymentInstructions() PixInfo {
	return PixInfo{
		PixKey:      PixKey,
		Amount:      OnboardingFee,
		Description: "Taxa de inscrição - Ecosistema Union",
		Instructions: []string{
			"1. Abra o app do seu banco",
			"2. Escolha PIX",
			"3. Copie a chave PIX abaixo",
			"4. Cole no app do banco",
			"5. Confirme o valor de R$ 197,00",
			"6. Faça o pagamento",
			"7. Tire print do comprovante",
			"8. Faça upload aqui na plataforma",
		},
	}
}
