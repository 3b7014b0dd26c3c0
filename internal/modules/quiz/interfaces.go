package quiz

import (
	"context"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type VideoRepository interface {
	Create(ctx context.Context, v *domain.OnboardingVideo) error
	GetByID(ctx context.Context, id string) (*domain.OnboardingVideo, error)
	Update(ctx context.Context, v *domain.OnboardingVideo) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, includeInactive bool) ([]domain.OnboardingVideo, error)

	GetProgress(ctx context.Context, userID, videoID string) (*domain.VideoProgress, error)
	ListProgress(ctx context.Context, userID string) ([]domain.VideoProgress, error)
	CreateProgress(ctx context.Context, p *domain.VideoProgress) error
	UpdateProgress(ctx context.Context, p *domain.VideoProgress) error
}

type QuizRepository interface {
	CreateQuestionWithOptions(ctx context.Context, q *domain.QuizQuestion, options []domain.QuizOption) error
	GetQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error)
	ListQuestionsByVideo(ctx context.Context, videoID string, includeInactive bool) ([]domain.QuizQuestion, error)
	UpdateQuestion(ctx context.Context, q *domain.QuizQuestion) error
	DeleteQuestion(ctx context.Context, id string) error

	GetOption(ctx context.Context, id string) (*domain.QuizOption, error)
	GetOptionForQuestion(ctx context.Context, optionID, questionID string) (*domain.QuizOption, error)
	CreateOption(ctx context.Context, o *domain.QuizOption) error
	UpdateOption(ctx context.Context, o *domain.QuizOption) error
	DeleteOption(ctx context.Context, id string) error
	UnmarkCorrectOptions(ctx context.Context, questionID, exceptOptionID string) error
	CountOptions(ctx context.Context, questionID string) (int64, error)

	GetAnswer(ctx context.Context, userID, questionID string) (*domain.QuizAnswer, error)
	CreateAnswer(ctx context.Context, a *domain.QuizAnswer) error
	UpdateAnswer(ctx context.Context, a *domain.QuizAnswer) error
	ListAnswersByQuestions(ctx context.Context, userID string, questionIDs []string) ([]domain.QuizAnswer, error)
}
