package controller

import (
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Stats *service.StatsService
}

func NewStatsController(stats *service.StatsService) *StatsController {
	return &StatsController{Stats: stats}
}

// @Summary 练习完成度
// @Description 当前用户在各语言各难度的完成情况
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.LanguageCompletion}
// @Router /api/stats/completion [get]
func (c *StatsController) Completion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	stats, err := c.Stats.Completion(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 积分排行榜
// @Description 积分榜前 20 名，带 60 秒缓存
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/stats/leaderboard [get]
func (c *StatsController) Leaderboard(ctx *gin.Context) {
	entries, err := c.Stats.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 我的名次
// @Description 按积分计算当前用户名次，同分并列
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.UserRank}
// @Router /api/stats/rank [get]
func (c *StatsController) Rank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	rank, err := c.Stats.Rank(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rank)
}
