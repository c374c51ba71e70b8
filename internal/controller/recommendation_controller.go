package controller

import (
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary 获取个性化课程推荐
// @Description 基于学习历史画像对目录打分，返回最多6门课程及推荐理由；无历史时返回热门课程
// @Tags 推荐
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.ScoredCourse} "成功"
// @Failure 401 {object} util.Response "未认证"
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	recommendations, err := c.RecommendationService.GetRecommendations(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, recommendations)
}
