package service

import (
	"studyspace_backend/internal/repository"
)

// ProgressService 处理观看进度的续播与保存
type ProgressService struct {
	Store repository.ProgressStore
}

func NewProgressService(store repository.ProgressStore) *ProgressService {
	return &ProgressService{Store: store}
}

// Resume 返回最近一次保存的 (进度秒数, 笔记)；没有记录时返回 (0, "")
func (s *ProgressService) Resume(videoID, userID string) (int, string, error) {
	return s.Store.Get(videoID, userID)
}

// Save 保存进度与笔记。重复保存是幂等的整条覆盖，不累积历史。
// videoLength 由调用方提供（秒），0 表示未知时长。
// 越界的进度值做钳制而不是报错：用户把进度条拖过结尾属于良性输入。
func (s *ProgressService) Save(videoID, userID string, progress int, notes string, videoLength int) error {
	if progress < 0 {
		progress = 0
	}
	if videoLength > 0 && progress > videoLength {
		progress = videoLength
	}
	return s.Store.Upsert(videoID, userID, progress, notes)
}
