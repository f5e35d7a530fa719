package controller

import (
	"errors"
	"strconv"

	"studyspace_backend/internal/middleware"
	"studyspace_backend/internal/service"
	"studyspace_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// TaskController 处理待办任务相关的API请求
type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// AddTaskRequest 添加任务请求
// swagger:model AddTaskRequest
type AddTaskRequest struct {
	Task string `json:"task" binding:"required"`
}

// AddTask godoc
// @Summary 添加待办任务
// @Description 追加一条状态为 Pending 的任务；空白内容会被拒绝
// @Tags 任务管理
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param request body AddTaskRequest true "添加任务请求"
// @Success 201 {object} util.Response "成功"
// @Failure 400 {object} util.Response "任务内容不合法"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /tasks [post]
func (c *TaskController) AddTask(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	var request AddTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TaskService.Add(userID, request.Task); err != nil {
		if errors.Is(err, util.ErrInvalidTask) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Created(ctx, gin.H{"added": true})
}

// ListTasks godoc
// @Summary 获取任务列表
// @Description 按插入顺序返回当前用户的全部任务
// @Tags 任务管理
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Success 200 {object} util.Response{data=[]model.StudyTask} "成功"
// @Failure 503 {object} util.Response "存储不可用"
// @Router /tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	tasks, err := c.TaskService.List(userID)
	if err != nil {
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Success(ctx, gin.H{"tasks": tasks})
}

// CompleteTask godoc
// @Summary 完成任务
// @Description 把指定任务标记为 Done
// @Tags 任务管理
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param taskId path int true "任务ID"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "任务ID无效"
// @Failure 404 {object} util.Response "任务不存在"
// @Router /tasks/{taskId}/complete [post]
func (c *TaskController) CompleteTask(ctx *gin.Context) {
	userID := middleware.UserIDFromContext(ctx)

	taskID, err := strconv.ParseUint(ctx.Param("taskId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "任务ID无效")
		return
	}

	if err := c.TaskService.Complete(userID, uint(taskID)); err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.ServiceUnavailable(ctx, "storage unavailable")
		return
	}

	util.Success(ctx, gin.H{"completed": true})
}
