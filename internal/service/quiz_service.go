package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/monitoring"

	"github.com/google/uuid"
)

// QuizService 管理测验会话：持有静态题库，按 UUID 发放会话。
// 会话只存在内存里，进程退出即销毁。
type QuizService struct {
	bank model.QuizBank

	mu       sync.RWMutex
	sessions map[string]*QuizSession
}

func NewQuizService(bank model.QuizBank) *QuizService {
	return &QuizService{
		bank:     bank,
		sessions: make(map[string]*QuizSession),
	}
}

// LoadQuizBank 从 JSON 文件加载题库并校验
func LoadQuizBank(path string) (model.QuizBank, error) {
	var bank model.QuizBank

	data, err := os.ReadFile(path)
	if err != nil {
		return bank, fmt.Errorf("读取题库失败: %v", err)
	}

	if err := json.Unmarshal(data, &bank); err != nil {
		return bank, fmt.Errorf("解析题库失败: %v", err)
	}

	if err := validateBank(&bank); err != nil {
		return bank, fmt.Errorf("题库不合法: %w", err)
	}

	return bank, nil
}

func validateBank(bank *model.QuizBank) error {
	if len(bank.Questions) == 0 {
		return fmt.Errorf("need at least one question")
	}

	for i, question := range bank.Questions {
		if question.Text == "" {
			return fmt.Errorf("missing field text of %d question", i)
		}

		if len(question.Options) < 2 {
			return fmt.Errorf("amount of options must be at least two in %d question", i)
		}

		if question.Correct < 0 || question.Correct >= len(question.Options) {
			return fmt.Errorf("index of correct answer in %d question is out of range", i)
		}
	}

	return nil
}

// NewSession 为一次测验创建新的会话实例
func (s *QuizService) NewSession() *QuizSession {
	session := newQuizSession(uuid.NewString(), s.bank.Questions)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	monitoring.QuizSessionsStarted.Inc()
	return session
}

func (s *QuizService) GetSession(id string) (*QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

// SubmitAnswer 向指定会话提交答案
func (s *QuizService) SubmitAnswer(sessionID string, questionIndex, optionIndex int) error {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return err
	}
	return session.SubmitAnswer(questionIndex, optionIndex)
}

// Finalize 结算指定会话并返回成绩；重复结算返回相同的缓存结果
func (s *QuizService) Finalize(sessionID string) (model.QuizResult, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return model.QuizResult{}, err
	}

	return session.Finalize(), nil
}
