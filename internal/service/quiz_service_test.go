package service

import (
	"os"
	"path/filepath"
	"testing"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBankFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz_bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadQuizBank(t *testing.T) {
	path := writeBankFile(t, `{
		"title": "Video Study Quiz",
		"questions": [
			{"text": "Q1", "options": ["a", "b"], "correct": 1},
			{"text": "Q2", "options": ["x", "y", "z"], "correct": 0}
		]
	}`)

	bank, err := LoadQuizBank(path)
	require.NoError(t, err)
	assert.Equal(t, "Video Study Quiz", bank.Title)
	assert.Len(t, bank.Questions, 2)
}

func TestLoadQuizBankInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty questions", `{"title": "t", "questions": []}`},
		{"missing text", `{"questions": [{"text": "", "options": ["a", "b"], "correct": 0}]}`},
		{"one option", `{"questions": [{"text": "Q", "options": ["a"], "correct": 0}]}`},
		{"correct out of range", `{"questions": [{"text": "Q", "options": ["a", "b"], "correct": 2}]}`},
		{"not json", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadQuizBank(writeBankFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadQuizBankMissingFile(t *testing.T) {
	_, err := LoadQuizBank(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestQuizServiceSessions(t *testing.T) {
	svc := NewQuizService(model.QuizBank{Questions: testQuestions()})

	first := svc.NewSession()
	second := svc.NewSession()
	assert.NotEqual(t, first.ID, second.ID)

	found, err := svc.GetSession(first.ID)
	require.NoError(t, err)
	assert.Same(t, first, found)

	_, err = svc.GetSession("unknown")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestQuizServiceSubmitAndFinalize(t *testing.T) {
	svc := NewQuizService(model.QuizBank{Questions: testQuestions()})
	session := svc.NewSession()

	require.NoError(t, svc.SubmitAnswer(session.ID, 0, 2))
	require.NoError(t, svc.SubmitAnswer(session.ID, 1, 2))

	result, err := svc.Finalize(session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuizResult{CorrectCount: 2, Total: 2}, result)

	// 会话不存在时直接报错
	assert.ErrorIs(t, svc.SubmitAnswer("unknown", 0, 0), util.ErrSessionNotFound)
	_, err = svc.Finalize("unknown")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
