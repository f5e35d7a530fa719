package service

import (
	"sync"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"
)

type quizState int

const (
	quizInitialized quizState = iota // 尚未提交任何答案
	quizAnswering                    // 已提交部分答案，未结算
	quizFinalized                    // 已结算，成绩不可变
)

// QuizSession 一次测验的状态机，进行中的答案与最终成绩都只存在内存里，
// 不落库；新的一轮测验需要新建实例。
type QuizSession struct {
	ID        string
	questions []model.QuizQuestion

	mu      sync.Mutex
	state   quizState
	answers map[int]int // 题目下标 -> 已提交选项下标
	result  model.QuizResult
}

func newQuizSession(id string, questions []model.QuizQuestion) *QuizSession {
	return &QuizSession{
		ID:        id,
		questions: questions,
		answers:   make(map[int]int),
	}
}

// SubmitAnswer 记录某题的答案；同一题重复提交时以最后一次为准。
// 结算之后不再接受提交。
func (s *QuizSession) SubmitAnswer(questionIndex, optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == quizFinalized {
		return util.ErrQuizFinalized
	}
	if questionIndex < 0 || questionIndex >= len(s.questions) {
		return util.ErrInvalidQuestionIndex
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[questionIndex].Options) {
		return util.ErrInvalidOptionIndex
	}

	s.answers[questionIndex] = optionIndex
	s.state = quizAnswering
	return nil
}

// Finalize 结算成绩：逐题比对已提交答案与正确选项，未作答按错误计。
// 幂等：重复调用返回缓存的成绩，不重新计算。零提交也能正常结算。
func (s *QuizSession) Finalize() model.QuizResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == quizFinalized {
		return s.result
	}

	correct := 0
	for i, q := range s.questions {
		if answer, ok := s.answers[i]; ok && answer == q.Correct {
			correct++
		}
	}

	s.result = model.QuizResult{
		CorrectCount: correct,
		Total:        len(s.questions),
	}
	s.state = quizFinalized
	return s.result
}

// Questions 返回去掉正确答案的题目视图，供展示层渲染
func (s *QuizSession) Questions() []QuizQuestionView {
	views := make([]QuizQuestionView, len(s.questions))
	for i, q := range s.questions {
		views[i] = QuizQuestionView{Text: q.Text, Options: q.Options}
	}
	return views
}

// QuizQuestionView 不含正确选项下标的题目视图
// swagger:model QuizQuestionView
type QuizQuestionView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}
