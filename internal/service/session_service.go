package service

import (
	"context"
	"errors"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/logger"
	"studyspace_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// SessionService 组合核心组件与外部协作方，编排一次 (用户, 视频) 学习交互。
// 协作方的输出原样透传给展示层，这里不做二次加工。
type SessionService struct {
	Progress  *ProgressService
	Tasks     *TaskService
	Reminders *ReminderService
	Quiz      *QuizService

	Metadata    VideoMetadataFetcher
	Sentiment   SentimentAnalyzer
	Summarizer  Summarizer
	Transcriber Transcriber
}

func NewSessionService(
	progress *ProgressService,
	tasks *TaskService,
	reminders *ReminderService,
	quiz *QuizService,
	metadata VideoMetadataFetcher,
	sentiment SentimentAnalyzer,
	summarizer Summarizer,
	transcriber Transcriber,
) *SessionService {
	return &SessionService{
		Progress:    progress,
		Tasks:       tasks,
		Reminders:   reminders,
		Quiz:        quiz,
		Metadata:    metadata,
		Sentiment:   sentiment,
		Summarizer:  summarizer,
		Transcriber: transcriber,
	}
}

// StudySession 一次学习交互打开时的完整视图
// swagger:model StudySession
type StudySession struct {
	VideoID       string             `json:"videoId"`
	UserID        string             `json:"userId"`
	Title         string             `json:"title"`
	Duration      int                `json:"duration"` // 秒，0 表示未知
	Progress      int                `json:"progress"` // 续播起点（秒）
	Notes         string             `json:"notes"`
	Tasks         []model.StudyTask  `json:"tasks"`
	Reminders     []model.Reminder   `json:"reminders"`
	QuizSessionID string             `json:"quizSessionId"`
	QuizQuestions []QuizQuestionView `json:"quizQuestions"`
}

// Open 打开一次学习会话：取元数据（失败则降级为占位值）、续播进度、
// 任务与提醒列表，并发放一个新的测验会话。
func (s *SessionService) Open(ctx context.Context, videoURL, userID string) (*StudySession, error) {
	title, duration, err := s.Metadata.Fetch(ctx, videoURL)
	if err != nil {
		if !errors.Is(err, util.ErrMetadataUnavailable) {
			logger.Log.Warn("unexpected metadata error", zap.Error(err))
		}
		monitoring.CollaboratorFailures.WithLabelValues("metadata").Inc()
		logger.Log.Warn("video metadata unavailable, using placeholders",
			zap.String("url", videoURL), zap.Error(err))
		title = "Unknown Title"
		duration = 0
	}

	progress, notes, err := s.Progress.Resume(videoURL, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.Tasks.List(userID)
	if err != nil {
		return nil, err
	}

	reminders, err := s.Reminders.List(userID)
	if err != nil {
		return nil, err
	}

	quizSession := s.Quiz.NewSession()

	return &StudySession{
		VideoID:       videoURL,
		UserID:        userID,
		Title:         title,
		Duration:      duration,
		Progress:      progress,
		Notes:         notes,
		Tasks:         tasks,
		Reminders:     reminders,
		QuizSessionID: quizSession.ID,
		QuizQuestions: quizSession.Questions(),
	}, nil
}

// SaveProgress 保存进度与笔记，videoLength 来自打开会话时取到的时长
func (s *SessionService) SaveProgress(videoID, userID string, progress int, notes string, videoLength int) error {
	return s.Progress.Save(videoID, userID, progress, notes, videoLength)
}

// AnalyzeNotes 笔记情感分析，结果原样透传
func (s *SessionService) AnalyzeNotes(ctx context.Context, notes string) (string, float64, error) {
	label, score, err := s.Sentiment.Analyze(ctx, notes)
	if err != nil {
		monitoring.CollaboratorFailures.WithLabelValues("sentiment").Inc()
	}
	return label, score, err
}

// SummarizeNotes 笔记摘要，结果原样透传
func (s *SessionService) SummarizeNotes(ctx context.Context, notes string) (string, error) {
	summary, err := s.Summarizer.Summarize(ctx, notes)
	if err != nil {
		monitoring.CollaboratorFailures.WithLabelValues("summarize").Inc()
	}
	return summary, err
}

// TranscribeAudio 音频转文字，结果原样透传
func (s *SessionService) TranscribeAudio(ctx context.Context, audioPath string) (string, error) {
	text, err := s.Transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		monitoring.CollaboratorFailures.WithLabelValues("transcribe").Inc()
	}
	return text, err
}
