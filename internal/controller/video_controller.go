package controller

import (
	"errors"
	"strconv"

	"github.com/logicshrey/Learnopolis-v2/internal/model"
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *service.VideoService
}

func NewVideoController(videoService *service.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

// ListVideos godoc
// @Summary 视频列表
// @Tags 视频
// @Produce  json
// @Param   subject query string false "学科"
// @Param   difficulty query string false "难度"
// @Success 200 {object} util.Response{data=[]model.Video} "成功"
// @Router /api/videos [get]
func (c *VideoController) ListVideos(ctx *gin.Context) {
	videos, err := c.VideoService.ListVideos(ctx.Query("subject"), ctx.Query("difficulty"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}

// UploadVideo godoc
// @Summary 上传教学视频
// @Description 管理员上传视频，自动探测时长并生成封面
// @Tags 视频
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "视频文件"
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   subject formData string false "学科"
// @Param   difficulty formData string false "难度"
// @Success 201 {object} util.Response{data=model.Video} "上传成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Router /api/admin/videos [post]
func (c *VideoController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	video := &model.Video{
		Title:       title,
		Description: ctx.PostForm("description"),
		Subject:     ctx.PostForm("subject"),
		Difficulty:  model.CourseDifficulty(ctx.PostForm("difficulty")),
	}

	uploaded, err := c.VideoService.UploadVideo(ctx.Request.Context(), file, video)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, uploaded)
}

// DeleteVideo godoc
// @Summary 删除教学视频
// @Description 管理员删除视频，连同存储对象与观看记录
// @Tags 视频
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "视频ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 404 {object} util.Response "视频不存在"
// @Router /api/admin/videos/{id} [delete]
func (c *VideoController) DeleteVideo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid video id")
		return
	}

	if err := c.VideoService.DeleteVideo(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx, "视频不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// MarkCompleted godoc
// @Summary 标记视频已观看
// @Description 幂等，重复标记不报错
// @Tags 视频
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "视频ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "视频不存在"
// @Router /api/videos/{id}/complete [post]
func (c *VideoController) MarkCompleted(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid video id")
		return
	}

	if err := c.VideoService.MarkCompleted(claims.UserID, uint(id)); err != nil {
		if errors.Is(err, util.ErrVideoNotFound) {
			util.NotFound(ctx, "视频不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"completed": true})
}

// GetCompleted godoc
// @Summary 获取已观看视频ID列表
// @Tags 视频
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]int} "成功"
// @Router /api/videos/completed [get]
func (c *VideoController) GetCompleted(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	ids, err := c.VideoService.GetCompletedIDs(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ids)
}
