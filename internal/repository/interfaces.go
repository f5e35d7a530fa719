package repository

import "studyspace_backend/internal/model"

// 持久存储的三个接口面。调用方只拿到查询返回的副本，
// 存储实现独占持久记录的所有权。

type ProgressStore interface {
	// Upsert 按 (videoID, userID) 整条覆盖，最后一次写入生效
	Upsert(videoID, userID string, progress int, notes string) error

	// Get 返回已保存的进度与笔记；记录不存在时返回 (0, "")，不报错
	Get(videoID, userID string) (progress int, notes string, err error)
}

type TaskStore interface {
	// Append 追加一条任务，状态由调用方给定
	Append(userID, task string, status model.TaskStatus) error

	// List 按插入顺序返回该用户的全部任务
	List(userID string) ([]model.StudyTask, error)

	// MarkDone 将指定任务标记为已完成
	MarkDone(userID string, taskID uint) error
}

type ReminderStore interface {
	// Append 追加一条提醒，不去重
	Append(userID, reminderTime, message string) error

	// List 按插入顺序返回该用户的全部提醒
	List(userID string) ([]model.Reminder, error)
}
