package service

import (
	"context"
	"os"
	"testing"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/repository"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type fakeMetadata struct {
	title    string
	duration int
	err      error
}

func (f *fakeMetadata) Fetch(ctx context.Context, url string) (string, int, error) {
	return f.title, f.duration, f.err
}

type fakeAnalyzer struct {
	label string
	score float64
	err   error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text string) (string, float64, error) {
	return f.label, f.score, f.err
}

func (f *fakeAnalyzer) Summarize(ctx context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "summary of: " + text, nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return f.text, f.err
}

func newTestSessionService(metadata *fakeMetadata) *SessionService {
	analyzer := &fakeAnalyzer{label: "POSITIVE", score: 0.9}
	return NewSessionService(
		NewProgressService(repository.NewMemoryProgressStore()),
		NewTaskService(repository.NewMemoryTaskStore()),
		NewReminderService(repository.NewMemoryReminderStore()),
		NewQuizService(model.QuizBank{Questions: testQuestions()}),
		metadata,
		analyzer,
		analyzer,
		&fakeTranscriber{text: "hello world"},
	)
}

func TestSessionOpen(t *testing.T) {
	svc := newTestSessionService(&fakeMetadata{title: "Go Tutorial", duration: 600})

	require.NoError(t, svc.Tasks.Add("alice", "watch chapter 1"))
	require.NoError(t, svc.Reminders.Add("alice", "09:05", "morning review"))
	require.NoError(t, svc.SaveProgress("https://youtu.be/abc", "alice", 120, "notes", 600))

	session, err := svc.Open(context.Background(), "https://youtu.be/abc", "alice")
	require.NoError(t, err)

	assert.Equal(t, "Go Tutorial", session.Title)
	assert.Equal(t, 600, session.Duration)
	assert.Equal(t, 120, session.Progress)
	assert.Equal(t, "notes", session.Notes)
	require.Len(t, session.Tasks, 1)
	require.Len(t, session.Reminders, 1)
	assert.NotEmpty(t, session.QuizSessionID)
	assert.Len(t, session.QuizQuestions, 2)
}

func TestSessionOpenMetadataFallback(t *testing.T) {
	svc := newTestSessionService(&fakeMetadata{err: util.ErrMetadataUnavailable})

	session, err := svc.Open(context.Background(), "https://youtu.be/abc", "alice")
	require.NoError(t, err)

	// 协作方失败时降级为占位值，不影响会话打开
	assert.Equal(t, "Unknown Title", session.Title)
	assert.Equal(t, 0, session.Duration)
	assert.Equal(t, 0, session.Progress)
}

func TestSessionOpenFreshUser(t *testing.T) {
	svc := newTestSessionService(&fakeMetadata{title: "Go Tutorial", duration: 600})

	session, err := svc.Open(context.Background(), "https://youtu.be/abc", "newcomer")
	require.NoError(t, err)

	assert.Equal(t, 0, session.Progress)
	assert.Equal(t, "", session.Notes)
	assert.Empty(t, session.Tasks)
	assert.Empty(t, session.Reminders)
}

func TestSessionEachOpenGetsNewQuiz(t *testing.T) {
	svc := newTestSessionService(&fakeMetadata{title: "Go Tutorial", duration: 600})

	first, err := svc.Open(context.Background(), "https://youtu.be/abc", "alice")
	require.NoError(t, err)
	second, err := svc.Open(context.Background(), "https://youtu.be/abc", "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.QuizSessionID, second.QuizSessionID)
}

func TestSessionCollaboratorPassthrough(t *testing.T) {
	svc := newTestSessionService(&fakeMetadata{title: "t", duration: 1})

	label, score, err := svc.AnalyzeNotes(context.Background(), "great lecture")
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", label)
	assert.Equal(t, 0.9, score)

	summary, err := svc.SummarizeNotes(context.Background(), "long notes")
	require.NoError(t, err)
	assert.Equal(t, "summary of: long notes", summary)

	text, err := svc.TranscribeAudio(context.Background(), "/tmp/a.wav")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}
