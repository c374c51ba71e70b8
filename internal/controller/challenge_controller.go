package controller

import (
	"errors"
	"strconv"

	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// GetToday godoc
// @Summary 获取今日挑战
// @Description 当日无挑战时自动创建默认挑战
// @Tags 挑战
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ChallengeWithStatus} "成功"
// @Router /api/challenges/today [get]
func (c *ChallengeController) GetToday(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	challenge, err := c.ChallengeService.GetTodayChallenge(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, challenge)
}

// Complete godoc
// @Summary 完成挑战
// @Description 发放奖励积分并增加连胜，重复完成返回409
// @Tags 挑战
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "挑战ID"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 404 {object} util.Response "挑战不存在"
// @Failure 409 {object} util.Response "已完成"
// @Router /api/challenges/{id}/complete [post]
func (c *ChallengeController) Complete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid challenge id")
		return
	}

	user, err := c.ChallengeService.CompleteChallenge(claims.UserID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrChallengeNotFound):
			util.NotFound(ctx, "挑战不存在")
		case errors.Is(err, util.ErrChallengeCompleted):
			util.Error(ctx, 409, "今日挑战已完成")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}
