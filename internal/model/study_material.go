package model

import "time"

// StudyMaterial 一个用户对一个视频的观看进度与笔记
// 主键为 (video_id, user_id)，写入总是整条覆盖（upsert），不做字段合并
// swagger:model StudyMaterial
type StudyMaterial struct {
	VideoID   string    `gorm:"primaryKey;size:255" json:"videoId"`
	UserID    string    `gorm:"primaryKey;size:128" json:"userId"`
	Progress  int       `gorm:"not null;default:0" json:"progress"` // 已观看秒数
	Notes     string    `gorm:"type:text" json:"notes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StudyMaterial) TableName() string {
	return "study_material"
}
