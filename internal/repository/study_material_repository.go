package repository

import (
	"errors"
	"fmt"
	"studyspace_backend/internal/model"
	"studyspace_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyMaterialRepository struct {
	DB *gorm.DB
}

func NewStudyMaterialRepository(db *gorm.DB) *StudyMaterialRepository {
	return &StudyMaterialRepository{DB: db}
}

func (r *StudyMaterialRepository) Upsert(videoID, userID string, progress int, notes string) error {
	record := model.StudyMaterial{
		VideoID:  videoID,
		UserID:   userID,
		Progress: progress,
		Notes:    notes,
	}

	// INSERT ... ON DUPLICATE KEY UPDATE，整条覆盖
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "video_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "notes", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *StudyMaterialRepository) Get(videoID, userID string) (int, string, error) {
	var record model.StudyMaterial
	err := r.DB.Where("video_id = ? AND user_id = ?", videoID, userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", nil
	}
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	return record.Progress, record.Notes, nil
}
