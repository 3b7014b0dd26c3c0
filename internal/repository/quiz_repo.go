package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

type QuizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateQuestionWithOptions inserts the question and its options atomically.
func (r *QuizRepository) CreateQuestionWithOptions(ctx context.Context, q *domain.QuizQuestion, options []domain.QuizOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = q.ID
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		q.Options = options
		return nil
	})
}

func (r *QuizRepository) GetQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	var q domain.QuizQuestion
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		First(&q, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuizRepository) ListQuestionsByVideo(ctx context.Context, videoID string, includeInactive bool) ([]domain.QuizQuestion, error) {
	q := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Where("video_id = ?", videoID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var questions []domain.QuizQuestion
	err := q.Order("display_order ASC").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) UpdateQuestion(ctx context.Context, q *domain.QuizQuestion) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QuizRepository) DeleteQuestion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.QuizQuestion{}, "id = ?", id).Error
}

// Options

func (r *QuizRepository) GetOption(ctx context.Context, id string) (*domain.QuizOption, error) {
	var o domain.QuizOption
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *QuizRepository) GetOptionForQuestion(ctx context.Context, optionID, questionID string) (*domain.QuizOption, error) {
	var o domain.QuizOption
	err := r.db.WithContext(ctx).
		Where("id = ? AND question_id = ?", optionID, questionID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *QuizRepository) CreateOption(ctx context.Context, o *domain.QuizOption) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *QuizRepository) UpdateOption(ctx context.Context, o *domain.QuizOption) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *QuizRepository) DeleteOption(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.QuizOption{}, "id = ?", id).Error
}

// UnmarkCorrectOptions clears is_correct on every option of the question
// except the one being promoted.
func (r *QuizRepository) UnmarkCorrectOptions(ctx context.Context, questionID, exceptOptionID string) error {
	q := r.db.WithContext(ctx).
		Model(&domain.QuizOption{}).
		Where("question_id = ?", questionID)
	if exceptOptionID != "" {
		q = q.Where("id <> ?", exceptOptionID)
	}
	return q.Update("is_correct", false).Error
}

func (r *QuizRepository) CountOptions(ctx context.Context, questionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.QuizOption{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// Answers

func (r *QuizRepository) GetAnswer(ctx context.Context, userID, questionID string) (*domain.QuizAnswer, error) {
	var a domain.QuizAnswer
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", userID, questionID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *QuizRepository) CreateAnswer(ctx context.Context, a *domain.QuizAnswer) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *QuizRepository) UpdateAnswer(ctx context.Context, a *domain.QuizAnswer) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *QuizRepository) ListAnswersByQuestions(ctx context.Context, userID string, questionIDs []string) ([]domain.QuizAnswer, error) {
	if len(questionIDs) == 0 {
		return nil, nil
	}

	var answers []domain.QuizAnswer
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND question_id IN ?", userID, questionIDs).
		Find(&answers).Error
	return answers, err
}
