package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// MediaInfo 存储媒体文件信息
type MediaInfo struct {
	Duration float64 `json:"duration"` // 时长（秒）
	Format   string  `json:"format"`
	Size     int64   `json:"size"`
	HasAudio bool    `json:"hasAudio"`
}

// ProbeMedia 使用ffmpeg-go库探测媒体文件的时长等信息
func ProbeMedia(path string) (*MediaInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("媒体文件不存在: %v", err)
	}

	jsonOutput, err := ffmpeg.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("获取媒体信息失败: %v", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}

	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("解析媒体信息失败: %v", err)
	}

	hasAudio := false
	for _, stream := range result.Streams {
		if stream.CodecType == "audio" {
			hasAudio = true
			break
		}
	}

	duration, err := strconv.ParseFloat(result.Format.Duration, 64)
	if err != nil {
		duration = 0
	}

	size, err := strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		size = fileInfo.Size()
	}

	return &MediaInfo{
		Duration: duration,
		Format:   result.Format.Format,
		Size:     size,
		HasAudio: hasAudio,
	}, nil
}

// ExtractAudio 从视频文件中抽取单声道16kHz WAV音轨，供语音转写使用
func ExtractAudio(videoPath, audioPath string) error {
	dir := filepath.Dir(audioPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建音频目录失败: %v", err)
	}

	return ffmpeg.Input(videoPath).
		Output(audioPath, ffmpeg.KwArgs{
			"vn": "",      // 去掉视频流
			"ac": "1",     // 单声道
			"ar": "16000", // 采样率16kHz
			"f":  "wav",
			"y":  "",
		}).
		OverWriteOutput().
		Run()
}
