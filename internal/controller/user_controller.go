package controller

import (
	"errors"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetStats godoc
// @Summary 获取用户学习统计
// @Description 积分、等级、连胜、完成课程数、升级进度
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.UserStats} "成功"
// @Failure 401 {object} util.Response "未认证"
// @Router /api/user/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.GetStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetProfile godoc
// @Summary 获取用户资料
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "用户不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// UpdateProfileRequest 用户资料更新请求
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UpdateProfile godoc
// @Summary 更新用户资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.Avatar)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// GetAchievements godoc
// @Summary 获取用户成就列表
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Achievement} "成功"
// @Router /api/user/achievements [get]
func (c *UserController) GetAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.UserService.GetAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// FeedbackRequest 用户反馈请求
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
	Page    string `json:"page"`
}

// SubmitFeedback godoc
// @Summary 提交反馈
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body FeedbackRequest true "反馈内容"
// @Success 201 {object} util.Response "提交成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/feedback [post]
func (c *UserController) SubmitFeedback(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback := &model.Feedback{
		UserID:  claims.UserID,
		Rating:  req.Rating,
		Message: req.Message,
		Page:    req.Page,
	}
	if err := c.UserService.SubmitFeedback(feedback); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"id": feedback.ID})
}

// ListFeedback godoc
// @Summary 反馈列表
// @Description 管理员查看最近的用户反馈
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "数量上限"
// @Success 200 {object} util.Response{data=[]model.Feedback} "成功"
// @Router /api/admin/feedback [get]
func (c *UserController) ListFeedback(ctx *gin.Context) {
	feedback, err := c.UserService.ListFeedback(util.ParseIntDefault(ctx.Query("limit"), 50))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, feedback)
}
