package util

import "errors"

var (
	ErrStorageUnavailable   = errors.New("durable store unavailable")
	ErrInvalidTask          = errors.New("任务内容不能为空")
	ErrInvalidTime          = errors.New("提醒时间必须是 24 小时制 HH:MM 格式")
	ErrInvalidQuestionIndex = errors.New("invalid question index")
	ErrInvalidOptionIndex   = errors.New("invalid option index")
	ErrQuizFinalized        = errors.New("quiz session already finalized")
	ErrSessionNotFound      = errors.New("quiz session not found")
	ErrMetadataUnavailable  = errors.New("video metadata unavailable")
	ErrTaskNotFound         = errors.New("task not found")
)
