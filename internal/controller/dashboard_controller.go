package controller

import (
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary 获取用户仪表盘
// @Description 聚合学习统计、个性化推荐、学习路径、成就和每日挑战
// @Tags 仪表盘
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Dashboard} "成功"
// @Failure 401 {object} util.Response "未认证"
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
