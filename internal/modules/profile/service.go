package profile

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

// Service scores profile completion and keeps the persisted percentage in
// sync with every profile mutation.
type Service struct {
	members MemberRepository
	users   UserRepository
}

func NewService(members MemberRepository, users UserRepository) *Service {
	return &Service{members: members, users: users}
}

type weightedField struct {
	value  string
	weight float64
}

// CalculateCompletion returns the profile completion percentage, 0-100.
// Four required fields count with weight 1 each; optional fields carry
// their networking value as weight. Blank-after-trim strings count as
// missing. The ratio is truncated, not rounded.
func CalculateCompletion(member *domain.Member, user *domain.User) int {
	required := []string{
		member.CompanyName,
		string(member.BusinessCategory),
		user.FullName,
		user.Email,
	}

	optional := []weightedField{
		{member.ProfilePhotoURL, 2},
		{member.Bio, 2},
		{member.CompanyDescription, 1.5},
		{member.Website, 1},
		{member.BusinessPhone, 1},
		{member.BusinessEmail, 1},
		{member.City, 1},
		{member.State, 1},
		{member.LinkedinURL, 1.5},
		{member.InstagramURL, 0.5},
		{member.FacebookURL, 0.5},
		{member.TwitterURL, 0.5},
		{member.Interests, 1},
		{member.Skills, 1},
	}

	var total, completed float64
	for _, v := range required {
		total++
		if strings.TrimSpace(v) != "" {
			completed++
		}
	}
	for _, f := range optional {
		total += f.weight
		if strings.TrimSpace(f.value) != "" {
			completed += f.weight
		}
	}

	if total == 0 {
		return 0
	}
	pct := int(completed / total * 100)
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// Suggestions lists the profile gaps in a fixed order. The bio rule also
// fires on a bio shorter than 50 characters, not only on a missing one.
func Suggestions(member *domain.Member) []Suggestion {
	suggestions := make([]Suggestion, 0)

	if member.ProfilePhotoURL == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "profile_photo_url",
			Label:       "Foto de Perfil",
			Priority:    "high",
			Description: "Adicione uma foto profissional para aumentar sua credibilidade",
		})
	}
	if len(member.Bio) < 50 {
		suggestions = append(suggestions, Suggestion{
			Field:       "bio",
			Label:       "Biografia",
			Priority:    "high",
			Description: "Conte um pouco sobre você e sua trajetória profissional",
		})
	}
	if member.CompanyDescription == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "company_description",
			Label:       "Descrição da Empresa",
			Priority:    "medium",
			Description: "Descreva sua empresa e o que ela faz",
		})
	}
	if member.LinkedinURL == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "linkedin_url",
			Label:       "LinkedIn",
			Priority:    "high",
			Description: "Conecte seu perfil do LinkedIn para facilitar o networking",
		})
	}
	if member.Website == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "website",
			Label:       "Website",
			Priority:    "medium",
			Description: "Adicione o site da sua empresa",
		})
	}
	if member.Interests == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "interests",
			Label:       "Áreas de Interesse",
			Priority:    "medium",
			Description: "Compartilhe suas áreas de interesse para encontrar conexões relevantes",
		})
	}
	if member.Skills == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "skills",
			Label:       "Habilidades",
			Priority:    "medium",
			Description: "Liste suas principais habilidades profissionais",
		})
	}
	if member.City == "" || member.State == "" {
		suggestions = append(suggestions, Suggestion{
			Field:       "location",
			Label:       "Localização",
			Priority:    "low",
			Description: "Adicione sua cidade e estado",
		})
	}

	return suggestions
}

// MyCompletion returns the caller's current score and suggestions.
func (s *Service) MyCompletion(ctx context.Context, userID string) (*Completion, error) {
	member, user, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Completion{
		Percentage:  CalculateCompletion(member, user),
		Suggestions: Suggestions(member),
	}, nil
}

// UpdateMyProfile applies partial edits and persists the recalculated
// completion score in the same write.
func (s *Service) UpdateMyProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.Member, error) {
	member, user, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(member, req)
	member.ProfileCompleted = CalculateCompletion(member, user)

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// SetProfilePhoto stores (or clears) the photo URL and refreshes the score.
func (s *Service) SetProfilePhoto(ctx context.Context, userID, photoURL string) (*domain.Member, error) {
	member, user, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	member.ProfilePhotoURL = photoURL
	member.ProfileCompleted = CalculateCompletion(member, user)

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Statistics aggregates a user's referral outcomes: everyone who signed
// up with their code, broken down by where they landed in the funnel.
func (s *Service) Statistics(ctx context.Context, userID string) (*MemberStatistics, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	referred, err := s.users.ListReferredBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &MemberStatistics{
		UserID:           user.ID,
		FullName:         user.FullName,
		Email:            user.Email,
		Role:             string(user.Role),
		Status:           string(user.Status),
		ReferralCode:     user.ReferralCode,
		VisitorsReferred: make([]ReferredVisitor, 0, len(referred)),
	}

	for _, v := range referred {
		stats.TotalVisitorsReferred++
		if v.Role == domain.RoleMember && v.Status == domain.UserActive {
			stats.ActiveMembersReferred++
		}
		if v.Role == domain.RoleVisitor && v.Status == domain.UserPending {
			stats.PendingVisitorsReferred++
		}
		stats.VisitorsReferred = append(stats.VisitorsReferred, ReferredVisitor{
			ID:        v.ID,
			FullName:  v.FullName,
			Email:     v.Email,
			Status:    string(v.Status),
			Role:      string(v.Role),
			CreatedAt: v.CreatedAt,
		})
	}

	return stats, nil
}

func (s *Service) loadProfile(ctx context.Context, userID string) (*domain.Member, *domain.User, error) {
	member, err := s.members.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMemberNotFound
		}
		return nil, nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}
	return member, user, nil
}

func applyUpdate(member *domain.Member, req UpdateProfileRequest) {
	if req.CompanyName != nil {
		member.CompanyName = *req.CompanyName
	}
	if req.BusinessCategory != nil {
		member.BusinessCategory = domain.BusinessCategory(*req.BusinessCategory)
	}
	if req.CompanyDescription != nil {
		member.CompanyDescription = *req.CompanyDescription
	}
	if req.Website != nil {
		member.Website = *req.Website
	}
	if req.BusinessPhone != nil {
		member.BusinessPhone = *req.BusinessPhone
	}
	if req.BusinessEmail != nil {
		member.BusinessEmail = *req.BusinessEmail
	}
	if req.City != nil {
		member.City = *req.City
	}
	if req.State != nil {
		member.State = *req.State
	}
	if req.LinkedinURL != nil {
		member.LinkedinURL = *req.LinkedinURL
	}
	if req.InstagramURL != nil {
		member.InstagramURL = *req.InstagramURL
	}
	if req.FacebookURL != nil {
		member.FacebookURL = *req.FacebookURL
	}
	if req.TwitterURL != nil {
		member.TwitterURL = *req.TwitterURL
	}
	if req.ProfilePhotoURL != nil {
		member.ProfilePhotoURL = *req.ProfilePhotoURL
	}
	if req.Bio != nil {
		member.Bio = *req.Bio
	}
	if req.Interests != nil {
		member.Interests = *req.Interests
	}
	if req.Skills != nil {
		member.Skills = *req.Skills
	}
}
