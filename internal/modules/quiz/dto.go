package quiz

import "github.com/gustavoml12/GrupoUnion/internal/domain"

type CreateVideoRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url" binding:"required,url"`
	Provider        string `json:"provider" binding:"required,oneof=YOUTUBE PANDA VIMEO"`
	ThumbnailURL    string `json:"thumbnail_url"`
	Order           int    `json:"order"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty,min=1"`
}

type UpdateVideoRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	VideoURL        *string `json:"video_url" binding:"omitempty,url"`
	Provider        *string `json:"provider" binding:"omitempty,oneof=YOUTUBE PANDA VIMEO"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	Order           *int    `json:"order"`
	IsActive        *bool   `json:"is_active"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=1"`
}

type ReorderItem struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" binding:"required,min=1,dive"`
}

type OptionInput struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

type CreateQuestionRequest struct {
	QuestionText string        `json:"question_text" binding:"required"`
	Order        int           `json:"order"`
	Options      []OptionInput `json:"options" binding:"required,min=2,dive"`
}

type UpdateQuestionRequest struct {
	QuestionText *string `json:"question_text"`
	Order        *int    `json:"order"`
	IsActive     *bool   `json:"is_active"`
}

type CreateOptionRequest struct {
	OptionText string `json:"option_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	Order      int    `json:"order"`
}

type UpdateOptionRequest struct {
	OptionText *string `json:"option_text"`
	IsCorrect  *bool   `json:"is_correct"`
	Order      *int    `json:"order"`
}

type SubmitAnswerRequest struct {
	QuestionID       string `json:"question_id" binding:"required"`
	SelectedOptionID string `json:"selected_option_id" binding:"required"`
}

// VideoWithProgress pairs a video with the caller's progress, nil when the
// caller never opened it.
type VideoWithProgress struct {
	domain.OnboardingVideo
	UserProgress *domain.VideoProgress `json:"user_progress"`
}

type CompletionStats struct {
	TotalVideos          int     `json:"total_videos"`
	CompletedVideos      int     `json:"completed_videos"`
	PendingVideos        int     `json:"pending_videos"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type QuizResult struct {
	VideoID           string  `json:"video_id"`
	TotalQuestions    int     `json:"total_questions"`
	AnsweredQuestions int     `json:"answered_questions"`
	CorrectAnswers    int     `json:"correct_answers"`
	ScorePercentage   float64 `json:"score_percentage"`
	Passed            bool    `json:"passed"`
}
