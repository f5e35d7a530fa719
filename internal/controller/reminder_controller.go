package controller

import (
	"errors"

	"studyspace_backend/internal/middleware"
	"studyspace_backend/internal/service"
	"studyspace_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ReminderController 处理学习提醒相关的API请求
type ReminderController struct {
	ReminderService *service.ReminderService
}

func NewReminderController(reminderService *service.ReminderService) *ReminderController {
	return &ReminderController{ReminderService: reminderService}
}

// AddReminderRequest 设置提醒请求
// swagger:model AddReminderRequest
type AddReminderRequest struct {
	ReminderTime string `json:"reminderTime" binding:"required"` // 24小时制 HH:MM
	Message      string `json:"message"`                         // 允许为空
}

// AddReminder godoc
// @Summary 设置学习提醒
// @Description 存储时间与消息；只做存储，不负责提醒触达
// @Tags 提醒管理
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body AddReminderRequest true "设置提醒请求"
// @Success 201 {object} util.Response "成功"
// @Failure 400 {object} util.Response "时间格式不合法"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /reminders [post]
func (c *ReminderController) AddReminder(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	var request AddReminderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ReminderService.Add(userID, request.ReminderTime, request.Message); err != nil {
		if errors.Is(err, util.ErrInvalidTime) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Created(ctx, gin.H{"added": true})
}

// ListReminders godoc
// @Summary 获取提醒列表
// @Description 按插入顺序返回当前用户的全部提醒；需要按时间排序的调用方自行排序
// @Tags 提醒管理
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Success 200 {object} util.Response{data=[]model.Reminder} "成功"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /reminders [get]
func (c *ReminderController) ListReminders(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	reminders, err := c.ReminderService.List(userID)
	if err != nil {
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Success(ctx, gin.H{"reminders": reminders})
}
