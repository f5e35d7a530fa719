package repository

import (
	"sync"
	"time"

	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"
)

// 内存版存储实现，用于 memory 驱动模式与测试。
// 互斥锁保证并发写入时 "最后一次写入生效、无部分覆盖" 的约定依然成立；
// 调用方只拿到副本，不持有内部记录的引用。

type progressKey struct {
	videoID string
	userID  string
}

type MemoryProgressStore struct {
	mu      sync.RWMutex
	records map[progressKey]model.StudyMaterial
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{records: make(map[progressKey]model.StudyMaterial)}
}

func (s *MemoryProgressStore) Upsert(videoID, userID string, progress int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[progressKey{videoID, userID}] = model.StudyMaterial{
		VideoID:   videoID,
		UserID:    userID,
		Progress:  progress,
		Notes:     notes,
		UpdatedAt: time.Now(),
	}
	return nil
}

func (s *MemoryProgressStore) Get(videoID, userID string) (int, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[progressKey{videoID, userID}]
	if !ok {
		return 0, "", nil
	}
	return record.Progress, record.Notes, nil
}

type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  map[string][]model.StudyTask
	nextID uint
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string][]model.StudyTask), nextID: 1}
}

func (s *MemoryTaskStore) Append(userID, task string, status model.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[userID] = append(s.tasks[userID], model.StudyTask{
		ID:        s.nextID,
		UserID:    userID,
		Task:      task,
		Status:    status,
		CreatedAt: time.Now(),
	})
	s.nextID++
	return nil
}

func (s *MemoryTaskStore) List(userID string) ([]model.StudyTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]model.StudyTask, len(s.tasks[userID]))
	copy(tasks, s.tasks[userID])
	return tasks, nil
}

func (s *MemoryTaskStore) MarkDone(userID string, taskID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks[userID] {
		if s.tasks[userID][i].ID == taskID {
			s.tasks[userID][i].Status = model.TaskDone
			return nil
		}
	}
	return util.ErrTaskNotFound
}

type MemoryReminderStore struct {
	mu        sync.RWMutex
	reminders map[string][]model.Reminder
	nextID    uint
}

func NewMemoryReminderStore() *MemoryReminderStore {
	return &MemoryReminderStore{reminders: make(map[string][]model.Reminder), nextID: 1}
}

func (s *MemoryReminderStore) Append(userID, reminderTime, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reminders[userID] = append(s.reminders[userID], model.Reminder{
		ID:           s.nextID,
		UserID:       userID,
		ReminderTime: reminderTime,
		Message:      message,
		CreatedAt:    time.Now(),
	})
	s.nextID++
	return nil
}

func (s *MemoryReminderStore) List(userID string) ([]model.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]model.Reminder, len(s.reminders[userID]))
	copy(reminders, s.reminders[userID])
	return reminders, nil
}
