package service

import (
	"testing"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{Text: "What is the main topic of this video?", Options: []string{"Option 1", "Option 2", "Option 3", "Option 4"}, Correct: 2},
		{Text: "What year was the YouTube platform created?", Options: []string{"2002", "2004", "2005", "2006"}, Correct: 2},
	}
}

func TestQuizSessionScoring(t *testing.T) {
	session := newQuizSession("s1", testQuestions())

	require.NoError(t, session.SubmitAnswer(0, 2)) // 正确
	require.NoError(t, session.SubmitAnswer(1, 0)) // 错误

	result := session.Finalize()
	assert.Equal(t, 1, result.CorrectCount)
	assert.Equal(t, 2, result.Total)
}

func TestQuizSessionResubmissionOverwrites(t *testing.T) {
	session := newQuizSession("s1", testQuestions())

	require.NoError(t, session.SubmitAnswer(0, 0))
	require.NoError(t, session.SubmitAnswer(0, 2)) // 改答案，最后一次生效

	result := session.Finalize()
	assert.Equal(t, 1, result.CorrectCount)
}

func TestQuizSessionFinalizeIdempotent(t *testing.T) {
	session := newQuizSession("s1", testQuestions())
	require.NoError(t, session.SubmitAnswer(0, 2))

	first := session.Finalize()
	second := session.Finalize()
	assert.Equal(t, first, second)
}

func TestQuizSessionFinalizeWithoutAnswers(t *testing.T) {
	session := newQuizSession("s1", testQuestions())

	result := session.Finalize()
	assert.Equal(t, 0, result.CorrectCount)
	assert.Equal(t, 2, result.Total)
}

func TestQuizSessionRejectsAfterFinalize(t *testing.T) {
	session := newQuizSession("s1", testQuestions())
	session.Finalize()

	err := session.SubmitAnswer(0, 1)
	assert.ErrorIs(t, err, util.ErrQuizFinalized)
}

func TestQuizSessionInvalidIndices(t *testing.T) {
	session := newQuizSession("s1", testQuestions())

	assert.ErrorIs(t, session.SubmitAnswer(-1, 0), util.ErrInvalidQuestionIndex)
	assert.ErrorIs(t, session.SubmitAnswer(2, 0), util.ErrInvalidQuestionIndex)
	assert.ErrorIs(t, session.SubmitAnswer(0, -1), util.ErrInvalidOptionIndex)
	assert.ErrorIs(t, session.SubmitAnswer(0, 4), util.ErrInvalidOptionIndex)

	// 失败的提交不影响后续结算
	result := session.Finalize()
	assert.Equal(t, 0, result.CorrectCount)
}

func TestQuizSessionQuestionsHideAnswers(t *testing.T) {
	session := newQuizSession("s1", testQuestions())

	views := session.Questions()
	require.Len(t, views, 2)
	assert.Equal(t, "What is the main topic of this video?", views[0].Text)
	assert.Equal(t, []string{"2002", "2004", "2005", "2006"}, views[1].Options)
}
