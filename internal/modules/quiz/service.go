package quiz

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/gustavoml12/GrupoUnion/internal/domain"
)

// passThreshold is the minimum quiz score, in percent, to pass a video.
const passThreshold = 70.0

type Service struct {
	videos VideoRepository
	quiz   QuizRepository
}

func NewService(videos VideoRepository, quiz QuizRepository) *Service {
	return &Service{videos: videos, quiz: quiz}
}

// Videos

func (s *Service) CreateVideo(ctx context.Context, req CreateVideoRequest) (*domain.OnboardingVideo, error) {
	video := &domain.OnboardingVideo{
		Title:           req.Title,
		Description:     req.Description,
		VideoURL:        req.VideoURL,
		Provider:        domain.VideoProvider(req.Provider),
		ThumbnailURL:    req.ThumbnailURL,
		Order:           req.Order,
		IsActive:        true,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Service) GetVideo(ctx context.Context, id string) (*domain.OnboardingVideo, error) {
	video, err := s.videos.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	return video, err
}

func (s *Service) ListVideos(ctx context.Context, includeInactive bool) ([]domain.OnboardingVideo, error) {
	return s.videos.List(ctx, includeInactive)
}

func (s *Service) UpdateVideo(ctx context.Context, id string, req UpdateVideoRequest) (*domain.OnboardingVideo, error) {
	video, err := s.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.VideoURL != nil {
		video.VideoURL = *req.VideoURL
	}
	if req.Provider != nil {
		video.Provider = domain.VideoProvider(*req.Provider)
	}
	if req.ThumbnailURL != nil {
		video.ThumbnailURL = *req.ThumbnailURL
	}
	if req.Order != nil {
		video.Order = *req.Order
	}
	if req.IsActive != nil {
		video.IsActive = *req.IsActive
	}
	if req.DurationMinutes != nil {
		video.DurationMinutes = req.DurationMinutes
	}

	if err := s.videos.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	if _, err := s.GetVideo(ctx, id); err != nil {
		return err
	}
	return s.videos.Delete(ctx, id)
}

// Reorder rewrites display positions in bulk. Unknown IDs are skipped so a
// stale admin screen does not fail the whole batch.
func (s *Service) Reorder(ctx context.Context, req ReorderRequest) ([]domain.OnboardingVideo, error) {
	updated := make([]domain.OnboardingVideo, 0, len(req.Items))
	for _, item := range req.Items {
		video, err := s.videos.GetByID(ctx, item.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		video.Order = item.Order
		if err := s.videos.Update(ctx, video); err != nil {
			return nil, err
		}
		updated = append(updated, *video)
	}
	return updated, nil
}

// Progress

// MarkStarted is idempotent: re-opening a video keeps the original progress
// row untouched.
func (s *Service) MarkStarted(ctx context.Context, userID, videoID string) (*domain.VideoProgress, error) {
	if _, err := s.GetVideo(ctx, videoID); err != nil {
		return nil, err
	}

	progress, err := s.videos.GetProgress(ctx, userID, videoID)
	if err == nil {
		return progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = &domain.VideoProgress{UserID: userID, VideoID: videoID}
	if err := s.videos.CreateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *Service) MarkCompleted(ctx context.Context, userID, videoID string) (*domain.VideoProgress, error) {
	if _, err := s.GetVideo(ctx, videoID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	progress, err := s.videos.GetProgress(ctx, userID, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = &domain.VideoProgress{
			UserID:      userID,
			VideoID:     videoID,
			Completed:   true,
			CompletedAt: &now,
		}
		if err := s.videos.CreateProgress(ctx, progress); err != nil {
			return nil, err
		}
		return progress, nil
	}
	if err != nil {
		return nil, err
	}

	progress.Completed = true
	progress.CompletedAt = &now
	if err := s.videos.UpdateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *Service) VideosWithProgress(ctx context.Context, userID string) ([]VideoWithProgress, error) {
	videos, err := s.videos.List(ctx, false)
	if err != nil {
		return nil, err
	}
	progress, err := s.videos.ListProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	byVideo := make(map[string]*domain.VideoProgress, len(progress))
	for i := range progress {
		byVideo[progress[i].VideoID] = &progress[i]
	}

	result := make([]VideoWithProgress, 0, len(videos))
	for _, v := range videos {
		result = append(result, VideoWithProgress{
			OnboardingVideo: v,
			UserProgress:    byVideo[v.ID],
		})
	}
	return result, nil
}

func (s *Service) CompletionStats(ctx context.Context, userID string) (*CompletionStats, error) {
	videos, err := s.videos.List(ctx, false)
	if err != nil {
		return nil, err
	}
	progress, err := s.videos.ListProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, p := range progress {
		if p.Completed {
			completed++
		}
	}

	stats := &CompletionStats{
		TotalVideos:     len(videos),
		CompletedVideos: completed,
		PendingVideos:   len(videos) - completed,
	}
	if stats.TotalVideos > 0 {
		pct := float64(completed) / float64(stats.TotalVideos) * 100
		stats.CompletionPercentage = math.Round(pct*100) / 100
	}
	return stats, nil
}

// Questions

func (s *Service) CreateQuestion(ctx context.Context, videoID string, req CreateQuestionRequest) (*domain.QuizQuestion, error) {
	if _, err := s.GetVideo(ctx, videoID); err != nil {
		return nil, err
	}

	correct := 0
	for _, opt := range req.Options {
		if opt.IsCorrect {
			correct++
		}
	}
	if correct == 0 {
		return nil, ErrNoCorrectOption
	}
	if correct > 1 {
		return nil, ErrMultipleCorrect
	}

	question := &domain.QuizQuestion{
		VideoID:      videoID,
		QuestionText: req.QuestionText,
		Order:        req.Order,
		IsActive:     true,
	}
	options := make([]domain.QuizOption, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, domain.QuizOption{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			Order:      opt.Order,
		})
	}

	if err := s.quiz.CreateQuestionWithOptions(ctx, question, options); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *Service) GetQuestion(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	question, err := s.quiz.GetQuestion(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	return question, err
}

func (s *Service) ListQuestions(ctx context.Context, videoID string, includeInactive bool) ([]domain.QuizQuestion, error) {
	return s.quiz.ListQuestionsByVideo(ctx, videoID, includeInactive)
}

func (s *Service) UpdateQuestion(ctx context.Context, id string, req UpdateQuestionRequest) (*domain.QuizQuestion, error) {
	question, err := s.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.Order != nil {
		question.Order = *req.Order
	}
	if req.IsActive != nil {
		question.IsActive = *req.IsActive
	}

	if err := s.quiz.UpdateQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.GetQuestion(ctx, id); err != nil {
		return err
	}
	return s.quiz.DeleteQuestion(ctx, id)
}

// Options

func (s *Service) AddOption(ctx context.Context, questionID string, req CreateOptionRequest) (*domain.QuizOption, error) {
	if _, err := s.GetQuestion(ctx, questionID); err != nil {
		return nil, err
	}

	option := &domain.QuizOption{
		QuestionID: questionID,
		OptionText: req.OptionText,
		IsCorrect:  req.IsCorrect,
		Order:      req.Order,
	}
	if err := s.quiz.CreateOption(ctx, option); err != nil {
		return nil, err
	}
	if option.IsCorrect {
		if err := s.quiz.UnmarkCorrectOptions(ctx, questionID, option.ID); err != nil {
			return nil, err
		}
	}
	return option, nil
}

// UpdateOption patches an option; promoting one to correct demotes its
// siblings so the single-correct-answer rule holds.
func (s *Service) UpdateOption(ctx context.Context, id string, req UpdateOptionRequest) (*domain.QuizOption, error) {
	option, err := s.quiz.GetOption(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOptionNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.IsCorrect != nil && *req.IsCorrect {
		if err := s.quiz.UnmarkCorrectOptions(ctx, option.QuestionID, option.ID); err != nil {
			return nil, err
		}
	}

	if req.OptionText != nil {
		option.OptionText = *req.OptionText
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}
	if req.Order != nil {
		option.Order = *req.Order
	}

	if err := s.quiz.UpdateOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *Service) DeleteOption(ctx context.Context, id string) error {
	option, err := s.quiz.GetOption(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOptionNotFound
	}
	if err != nil {
		return err
	}

	count, err := s.quiz.CountOptions(ctx, option.QuestionID)
	if err != nil {
		return err
	}
	if count-1 < 2 {
		return ErrTooFewOptions
	}

	return s.quiz.DeleteOption(ctx, id)
}

// Answers

func (s *Service) SubmitAnswer(ctx context.Context, userID string, req SubmitAnswerRequest) (*domain.QuizAnswer, error) {
	if _, err := s.GetQuestion(ctx, req.QuestionID); err != nil {
		return nil, err
	}

	option, err := s.quiz.GetOptionForQuestion(ctx, req.SelectedOptionID, req.QuestionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOptionMismatch
	}
	if err != nil {
		return nil, err
	}

	answer, err := s.quiz.GetAnswer(ctx, userID, req.QuestionID)
	if err == nil {
		answer.SelectedOptionID = option.ID
		answer.IsCorrect = option.IsCorrect
		answer.AnsweredAt = time.Now().UTC()
		if err := s.quiz.UpdateAnswer(ctx, answer); err != nil {
			return nil, err
		}
		return answer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	answer = &domain.QuizAnswer{
		UserID:           userID,
		QuestionID:       req.QuestionID,
		SelectedOptionID: option.ID,
		IsCorrect:        option.IsCorrect,
	}
	if err := s.quiz.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *Service) Results(ctx context.Context, userID, videoID string) (*QuizResult, error) {
	questions, err := s.quiz.ListQuestionsByVideo(ctx, videoID, false)
	if err != nil {
		return nil, err
	}

	questionIDs := make([]string, 0, len(questions))
	for _, q := range questions {
		questionIDs = append(questionIDs, q.ID)
	}

	answers, err := s.quiz.ListAnswersByQuestions(ctx, userID, questionIDs)
	if err != nil {
		return nil, err
	}

	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	result := &QuizResult{
		VideoID:           videoID,
		TotalQuestions:    len(questions),
		AnsweredQuestions: len(answers),
		CorrectAnswers:    correct,
	}
	if result.TotalQuestions > 0 {
		pct := float64(correct) / float64(result.TotalQuestions) * 100
		result.ScorePercentage = math.Round(pct*100) / 100
	}
	result.Passed = result.ScorePercentage >= passThreshold
	return result, nil
}
