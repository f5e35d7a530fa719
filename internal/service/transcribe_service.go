package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studyspace_backend/internal/config"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/logger"

	"go.uber.org/zap"
)

// TranscribeService 把音频转成文字：视频文件先用 ffmpeg 抽出音轨，
// 再调用 Whisper 风格的转写接口。识别失败不报错，返回哨兵文本。
type TranscribeService struct {
	config config.MediaConfig
	client *http.Client
}

func NewTranscribeService(cfg config.MediaConfig) *TranscribeService {
	return &TranscribeService{
		config: cfg,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".avi": true, ".mov": true, ".m4v": true,
}

func (s *TranscribeService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	path := audioPath

	// 视频文件先抽音轨
	if videoExtensions[strings.ToLower(filepath.Ext(audioPath))] {
		extracted := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".wav"
		if err := util.ExtractAudio(audioPath, extracted); err != nil {
			return "", fmt.Errorf("抽取音轨失败: %v", err)
		}
		defer os.Remove(extracted)
		path = extracted
	}

	text, err := s.recognize(ctx, path)
	if err != nil {
		// 接口不可用是错误；识别不出内容不是
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		logger.Log.Info("transcription produced no text", zap.String("file", audioPath))
		return TranscriptNotUnderstood, nil
	}

	return text, nil
}

func (s *TranscribeService) recognize(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}

	model := s.config.TranscribeModel
	if model == "" {
		model = "whisper-1"
	}
	writer.WriteField("model", model)
	writer.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", s.config.TranscribeURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.config.TranscribeKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	return result.Text, nil
}
