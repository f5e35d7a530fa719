package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studyspace_backend/internal/middleware"
	"studyspace_backend/internal/service"
	"studyspace_backend/internal/util"
	"studyspace_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StudyController 处理学习会话相关的API请求
type StudyController struct {
	SessionService *service.SessionService
	Storage        service.StorageProvider
}

func NewStudyController(sessionService *service.SessionService, storage service.StorageProvider) *StudyController {
	return &StudyController{
		SessionService: sessionService,
		Storage:        storage,
	}
}

// OpenSessionRequest 打开学习会话请求
// swagger:model OpenSessionRequest
type OpenSessionRequest struct {
	VideoURL string `json:"videoUrl" binding:"required"`
}

// OpenSession godoc
// @Summary 打开学习会话
// @Description 获取视频元数据、续播进度、笔记、任务、提醒，并创建新的测验会话
// @Tags 学习会话
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body OpenSessionRequest true "打开会话请求"
// @Success 200 {object} util.Response{data=service.StudySession} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /study/session [post]
func (c *StudyController) OpenSession(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	var request OpenSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.Open(ctx.Request.Context(), request.VideoURL, userID)
	if err != nil {
		if errors.Is(err, util.ErrStorageUnavailable) {
			util.ServiceUnavailable(ctx, "storage unavailable")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// SaveProgressRequest 保存进度请求
// swagger:model SaveProgressRequest
type SaveProgressRequest struct {
	VideoID     string `json:"videoId" binding:"required"`
	Progress    int    `json:"progress"`
	Notes       string `json:"notes"`
	VideoLength int    `json:"videoLength"` // 秒，0 表示未知
}

// SaveProgress godoc
// @Summary 保存观看进度与笔记
// @Description 按 (视频, 用户) 整条覆盖保存；越界进度会被钳制到 [0, videoLength]
// @Tags 学习会话
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body SaveProgressRequest true "保存进度请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /study/progress [put]
func (c *StudyController) SaveProgress(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	var request SaveProgressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.SessionService.SaveProgress(request.VideoID, userID, request.Progress, request.Notes, request.VideoLength)
	if err != nil {
		if errors.Is(err, util.ErrStorageUnavailable) {
			util.ServiceUnavailable(ctx, "storage unavailable")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"saved": true})
}

// GetProgress godoc
// @Summary 查询观看进度
// @Description 返回最近保存的进度与笔记；没有记录时返回 0 与空笔记
// @Tags 学习会话
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param videoId query string true "视频标识"
// @Success 200 {object} util.Response "成功"
// @Router /study/progress [get]
func (c *StudyController) GetProgress(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	videoID := ctx.Query("videoId")
	if videoID == "" {
		util.BadRequest(ctx, "videoId is required")
		return
	}

	progress, notes, err := c.SessionService.Progress.Resume(videoID, userID)
	if err != nil {
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"progress": progress,
		"notes":    notes,
	})
}

// NotesRequest 笔记文本请求
// swagger:model NotesRequest
type NotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// AnalyzeSentiment godoc
// @Summary 笔记情感分析
// @Description 调用情感分析协作方，结果原样透传
// @Tags 学习会话
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body NotesRequest true "笔记文本"
// @Success 200 {object} util.Response "成功"
// @Failure 502 {object} util.Response "协作方失败"
// @Router /study/notes/sentiment [post]
func (c *StudyController) AnalyzeSentiment(ctx *gin.Context) {
	var request NotesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	label, score, err := c.SessionService.AnalyzeNotes(ctx.Request.Context(), request.Notes)
	if err != nil {
		util.Error(ctx, 502, fmt.Sprintf("sentiment analysis failed: %v", err))
		return
	}

	util.Success(ctx, gin.H{
		"label": label,
		"score": score,
	})
}

// SummarizeNotes godoc
// @Summary 笔记摘要
// @Description 调用摘要协作方，结果原样透传
// @Tags 学习会话
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body NotesRequest true "笔记文本"
// @Success 200 {object} util.Response "成功"
// @Failure 502 {object} util.Response "协作方失败"
// @Router /study/notes/summary [post]
func (c *StudyController) SummarizeNotes(ctx *gin.Context) {
	var request NotesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.SessionService.SummarizeNotes(ctx.Request.Context(), request.Notes)
	if err != nil {
		util.Error(ctx, 502, fmt.Sprintf("summarization failed: %v", err))
		return
	}

	util.Success(ctx, gin.H{"summary": summary})
}

// TranscribeAudio godoc
// @Summary 音频转文字
// @Description 上传音频（或视频）文件并转写；原始文件会归档到对象存储
// @Tags 学习会话
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param file formData file true "音频文件"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /study/transcribe [post]
func (c *StudyController) TranscribeAudio(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	// 先落到临时目录，转写需要本地路径
	tmpPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("transcribe-%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename)))
	if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	text, err := c.SessionService.TranscribeAudio(ctx.Request.Context(), tmpPath)
	if err != nil {
		util.Error(ctx, 502, fmt.Sprintf("transcription failed: %v", err))
		return
	}

	// 归档原始音频，失败不影响转写结果
	archiveName := fmt.Sprintf("audio/%s/%s-%s", userID,
		time.Now().Format("20060102T150405"), filepath.Base(fileHeader.Filename))
	if file, openErr := os.Open(tmpPath); openErr == nil {
		defer file.Close()
		if _, upErr := c.Storage.Upload(ctx.Request.Context(), archiveName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type")); upErr != nil {
			logger.Log.Warn("audio archive upload failed", zap.Error(upErr))
		}
	}

	util.Success(ctx, gin.H{"text": text})
}
