package repository

import (
	"fmt"
	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Append(userID, task string, status model.TaskStatus) error {
	record := model.StudyTask{
		UserID: userID,
		Task:   task,
		Status: status,
	}
	if err := r.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *TaskRepository) List(userID string) ([]model.StudyTask, error) {
	var tasks []model.StudyTask
	err := r.DB.Where("user_id = ?", userID).Order("id ASC").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return tasks, nil
}

func (r *TaskRepository) MarkDone(userID string, taskID uint) error {
	result := r.DB.Model(&model.StudyTask{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Update("status", model.TaskDone)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return util.ErrTaskNotFound
	}
	return nil
}
