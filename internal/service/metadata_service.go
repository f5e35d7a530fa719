package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studyspace_backend/internal/config"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// MetadataService 获取视频标题与时长。
// 远程地址走 oEmbed 接口，本地文件用 ffmpeg 探测；结果写入 Redis 缓存。
type MetadataService struct {
	config config.MediaConfig
	rdb    *redis.Client
	client *http.Client
}

func NewMetadataService(cfg config.MediaConfig, rdb *redis.Client) *MetadataService {
	return &MetadataService{
		config: cfg,
		rdb:    rdb,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type videoMetadata struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

func (s *MetadataService) cacheKey(videoURL string) string {
	return "video:meta:" + videoURL
}

func (s *MetadataService) Fetch(ctx context.Context, videoURL string) (string, int, error) {
	// 1. 缓存命中直接返回
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, s.cacheKey(videoURL)).Result(); err == nil {
			var meta videoMetadata
			if json.Unmarshal([]byte(cached), &meta) == nil {
				return meta.Title, meta.Duration, nil
			}
		}
	}

	meta, err := s.resolve(ctx, videoURL)
	if err != nil {
		return "", 0, err
	}

	// 2. 回写缓存，失败只记日志
	if s.rdb != nil {
		ttl := time.Duration(s.config.MetadataCacheTTL) * time.Minute
		if ttl <= 0 {
			ttl = time.Hour
		}
		data, _ := json.Marshal(meta)
		if err := s.rdb.Set(ctx, s.cacheKey(videoURL), data, ttl).Err(); err != nil {
			logger.Log.Warn("metadata cache write failed", zap.Error(err))
		}
	}

	return meta.Title, meta.Duration, nil
}

func (s *MetadataService) resolve(ctx context.Context, videoURL string) (*videoMetadata, error) {
	parsed, err := url.Parse(videoURL)
	if err != nil || parsed.Scheme == "" {
		// 无 scheme 视为本地媒体文件
		return s.probeLocal(videoURL)
	}

	endpoint := s.config.OEmbedEndpoint
	if endpoint == "" {
		endpoint = "https://www.youtube.com/oembed"
	}

	req, err := http.NewRequestWithContext(ctx, "GET",
		fmt.Sprintf("%s?url=%s&format=json", endpoint, url.QueryEscape(videoURL)), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMetadataUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: oembed status %d", util.ErrMetadataUnavailable, resp.StatusCode)
	}

	var oembed struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&oembed); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMetadataUnavailable, err)
	}

	// oEmbed 不带时长，远程视频时长未知记 0
	return &videoMetadata{Title: oembed.Title, Duration: 0}, nil
}

func (s *MetadataService) probeLocal(path string) (*videoMetadata, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMetadataUnavailable, err)
	}

	info, err := util.ProbeMedia(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMetadataUnavailable, err)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &videoMetadata{Title: title, Duration: int(info.Duration)}, nil
}
