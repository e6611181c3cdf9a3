package controller

import (
	"codelearn_backend/internal/service"
	"codelearn_backend/internal/util"
	"codelearn_backend/pkg/monitoring"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *service.AIReviewService
	Logs    service.ReviewLogStore
}

func NewReviewController(review *service.AIReviewService, logs service.ReviewLogStore) *ReviewController {
	return &ReviewController{Service: review, Logs: logs}
}

// @Summary AI 代码点评
// @Description 把代码交给模型评审，返回分级建议。出入参保持历史前端兼容，不走统一响应包装。
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{code=string,language=string,task=string} true "待点评代码"
// @Success 200 {object} service.ReviewResult
// @Failure 400 {object} map[string]string "code 或 language 缺失"
// @Failure 500 {object} map[string]string
// @Router /api/ai-review [post]
func (c *ReviewController) Review(ctx *gin.Context) {
	var req struct {
		Code     string `json:"code"`
		Language string `json:"language"`
		Task     string `json:"task"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Code == "" || req.Language == "" {
		monitoring.RecordReviewRequest("bad_request")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": util.ErrReviewFieldsMissing.Error()})
		return
	}

	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	result, err := c.Service.Review(ctx.Request.Context(), userID, req.Code, req.Language, req.Task)
	if err != nil {
		monitoring.RecordReviewRequest("error")
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "AI review failed",
			"details": err.Error(),
		})
		return
	}
	monitoring.RecordReviewRequest("ok")
	ctx.JSON(http.StatusOK, result)
}

// @Summary 用户的点评调用记录
// @Description 某用户最近的 AI 点评调用留痕，倒序
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Param limit query int false "条数上限，默认 20"
// @Success 200 {object} util.Response{data=[]model.ReviewRequestLog}
// @Failure 403 {object} util.Response
// @Router /api/admin/users/{id}/review-logs [get]
func (c *ReviewController) UserLogs(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || userID < 0 {
		util.BadRequest(ctx, "id must be a non-negative integer")
		return
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, err := c.Logs.ListByUser(uint(userID), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
