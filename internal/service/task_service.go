package service

import (
	"strings"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/repository"
	"studyspace_backend/internal/util"
)

// TaskService 处理待办任务的业务逻辑
type TaskService struct {
	Store repository.TaskStore
}

func NewTaskService(store repository.TaskStore) *TaskService {
	return &TaskService{Store: store}
}

// Add 追加一条待办任务，初始状态为 Pending。
// 空白内容直接拒绝，不落库。
func (s *TaskService) Add(userID, text string) error {
	if strings.TrimSpace(text) == "" {
		return util.ErrInvalidTask
	}
	return s.Store.Append(userID, text, model.TaskPending)
}

// List 按插入顺序返回该用户的全部任务
func (s *TaskService) List(userID string) ([]model.StudyTask, error) {
	return s.Store.List(userID)
}

// Complete 将指定任务标记为 Done
func (s *TaskService) Complete(userID string, taskID uint) error {
	return s.Store.MarkDone(userID, taskID)
}
