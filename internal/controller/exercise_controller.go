package controller

import (
	"codelearn_backend/internal/catalog"
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// LeaderboardCache 积分变动后需要失效的缓存，由 service.StatsService 实现
type LeaderboardCache interface {
	InvalidateLeaderboard(ctx context.Context)
}

type ExerciseController struct {
	Progression *service.ProgressionService
	Feedback    *service.FeedbackService
	Autosave    *service.AutosaveService
	Leaderboard LeaderboardCache
}

func NewExerciseController(
	progression *service.ProgressionService,
	feedback *service.FeedbackService,
	autosave *service.AutosaveService,
	leaderboard LeaderboardCache,
) *ExerciseController {
	return &ExerciseController{
		Progression: progression,
		Feedback:    feedback,
		Autosave:    autosave,
		Leaderboard: leaderboard,
	}
}

// @Summary 支持的语言与难度
// @Tags 练习
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/exercises/languages [get]
func (c *ExerciseController) Languages(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"languages": catalog.Languages(),
		"levels":    catalog.Levels(),
	})
}

// @Summary 练习列表
// @Description 某 (语言, 难度) 下的练习列表，带完成与解锁状态及当前游标
// @Tags 练习
// @Produce json
// @Security BearerAuth
// @Param language path string true "语言" Enums(html, css, javascript, php, python)
// @Param level path string true "难度" Enums(beginner, intermediate, advanced)
// @Success 200 {object} util.Response{data=service.LevelView}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{language}/{level} [get]
func (c *ExerciseController) ListLevel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	view, err := c.Progression.ListLevel(claims.UserID, ctx.Param("language"), ctx.Param("level"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 恢复进度
// @Description 返回恢复会话应落在的练习下标
// @Tags 练习
// @Produce json
// @Security BearerAuth
// @Param language path string true "语言"
// @Param level path string true "难度"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercises/{language}/{level}/resume [get]
func (c *ExerciseController) Resume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	index, err := c.Progression.Resume(claims.UserID, ctx.Param("language"), ctx.Param("level"))
	if err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"currentIndex": index})
}

// @Summary 提交练习
// @Description 判题；通过则推进游标并（首次）发放积分，未通过附带提示语
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param language path string true "语言"
// @Param level path string true "难度"
// @Param index path int true "练习下标"
// @Param submission body object{code=string} true "提交代码"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response "空提交"
// @Failure 403 {object} util.Response "练习未解锁"
// @Failure 404 {object} util.Response
// @Router /api/exercises/{language}/{level}/{index}/submit [post]
func (c *ExerciseController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "index must be an integer")
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language, level := ctx.Param("language"), ctx.Param("level")
	result, err := c.Progression.Submit(claims.UserID, language, level, index, req.Code)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	if result.AwardedPoints > 0 {
		// 积分入账后排行榜缓存作废
		c.Leaderboard.InvalidateLeaderboard(ctx.Request.Context())
	}

	payload := gin.H{
		"passed":         result.Passed,
		"awardedPoints":  result.AwardedPoints,
		"nextIndex":      result.NextIndex,
		"levelCompleted": result.LevelCompleted,
	}
	if !result.Passed {
		payload["feedback"] = c.Feedback.FailureMessage(language, level)
	}
	util.Success(ctx, payload)
}

// @Summary 切换练习
// @Description 把游标移到目标练习；目标必须已解锁
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param language path string true "语言"
// @Param level path string true "难度"
// @Param target body object{index=int} true "目标下标"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response "目标未解锁"
// @Failure 404 {object} util.Response
// @Router /api/exercises/{language}/{level}/navigate [post]
func (c *ExerciseController) Navigate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Progression.Navigate(claims.UserID, ctx.Param("language"), ctx.Param("level"), *req.Index); err != nil {
		c.renderError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"currentIndex": *req.Index})
}

// @Summary 保存草稿
// @Description 保存练习草稿；写入做了防抖合并，不判题不推进
// @Tags 练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param language path string true "语言"
// @Param level path string true "难度"
// @Param index path int true "练习下标"
// @Param draft body object{code=string} true "草稿代码"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercises/{language}/{level}/{index}/draft [put]
func (c *ExerciseController) SaveDraft(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		util.BadRequest(ctx, "index must be an integer")
		return
	}
	var req struct {
		Code string `json:"code"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	language, level := ctx.Param("language"), ctx.Param("level")
	set, ok := catalog.Lookup(language, level)
	if !ok || index < 0 || index >= set.Len() {
		util.NotFound(ctx)
		return
	}
	c.Autosave.Save(claims.UserID, language, level, index, req.Code)
	util.Success(ctx, gin.H{"saved": true})
}

// @Summary 反馈模板
// @Description 某 (语言, 难度) 的提示语模板，按类别分组
// @Tags 练习
// @Produce json
// @Param language path string true "语言"
// @Param level path string true "难度"
// @Success 200 {object} util.Response{data=service.LevelFeedback}
// @Router /api/feedback/{language}/{level} [get]
func (c *ExerciseController) FeedbackTemplates(ctx *gin.Context) {
	view, err := c.Feedback.ListByLevel(ctx.Param("language"), ctx.Param("level"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

func (c *ExerciseController) renderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrExerciseLocked):
		util.Locked(ctx)
	case errors.Is(err, util.ErrEmptySubmission):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrLanguageNotFound),
		errors.Is(err, util.ErrLevelNotFound),
		errors.Is(err, util.ErrExerciseNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
