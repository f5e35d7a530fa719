package controller

import (
	"errors"

	"studyspace_backend/internal/service"
	"studyspace_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController 处理测验会话相关的API请求
type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// StartQuiz godoc
// @Summary 开始一次测验
// @Description 创建新的测验会话并返回题目（不含答案）
// @Tags 测验
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Success 201 {object} util.Response "成功"
// @Router /quiz/sessions [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	session := c.QuizService.NewSession()

	util.Created(ctx, gin.H{
		"sessionId": session.ID,
		"questions": session.Questions(),
	})
}

// SubmitAnswerRequest 提交答案请求
// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	QuestionIndex *int `json:"questionIndex" binding:"required"`
	OptionIndex   *int `json:"optionIndex" binding:"required"`
}

// SubmitAnswer godoc
// @Summary 提交答案
// @Description 记录某题的答案，同一题重复提交以最后一次为准
// @Tags 测验
// @Accept json
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param sessionId path string true "测验会话ID"
// @Param request body SubmitAnswerRequest true "提交答案请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "题目下标越界"
// @Failure 404 {object} util.Response "会话不存在"
// @Failure 409 {object} util.Response "会话已结算"
// @Router /quiz/sessions/{sessionId}/answers [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	var request SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.QuizService.SubmitAnswer(sessionID, *request.QuestionIndex, *request.OptionIndex)
	switch {
	case err == nil:
		util.Success(ctx, gin.H{"submitted": true})
	case errors.Is(err, util.ErrSessionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrQuizFinalized):
		util.Error(ctx, 409, err.Error())
	case errors.Is(err, util.ErrInvalidQuestionIndex), errors.Is(err, util.ErrInvalidOptionIndex):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// FinalizeQuiz godoc
// @Summary 结算测验
// @Description 计算并返回成绩；重复调用返回相同的缓存结果
// @Tags 测验
// @Produce json
// @Param X-User-ID header string true "用户标识"
// @Param sessionId path string true "测验会话ID"
// @Success 200 {object} util.Response{data=model.QuizResult} "成功"
// @Failure 404 {object} util.Response "会话不存在"
// @Router /quiz/sessions/{sessionId}/finalize [post]
func (c *QuizController) FinalizeQuiz(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	result, err := c.QuizService.Finalize(sessionID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
