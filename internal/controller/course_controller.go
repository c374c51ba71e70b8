package controller

import (
	"errors"
	"strconv"

	"github.com/logicshrey/Learnopolis-v2/internal/repository"
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// Search godoc
// @Summary 课程检索
// @Description 按关键词、难度、学科过滤，支持 popular/newest/rating 排序和分页
// @Tags 课程
// @Produce  json
// @Param   q query string false "关键词"
// @Param   difficulty query string false "难度" Enums(beginner, intermediate, advanced)
// @Param   subject query string false "学科"
// @Param   sort query string false "排序" Enums(popular, newest, rating)
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.PageResponse{data=[]model.Course} "成功"
// @Router /api/courses [get]
func (c *CourseController) Search(ctx *gin.Context) {
	filter := repository.CourseFilter{
		Query:      ctx.Query("q"),
		Difficulty: ctx.Query("difficulty"),
		Subject:    ctx.Query("subject"),
		Sort:       ctx.Query("sort"),
		Page:       util.ParseIntDefault(ctx.Query("page"), 1),
		Limit:      util.ParseIntDefault(ctx.Query("limit"), 12),
	}

	courses, total, err := c.CourseService.Search(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessPage(ctx, courses, total, filter.Page, filter.Limit)
}

// GetFeatured godoc
// @Summary 精选课程
// @Description 按报名人数取热门课程
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Course} "成功"
// @Router /api/courses/featured [get]
func (c *CourseController) GetFeatured(ctx *gin.Context) {
	courses, err := c.CourseService.GetFeatured()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetByID godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "课程不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, course)
}

// Enroll godoc
// @Summary 报名课程
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Success 201 {object} util.Response "报名成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "已报名"
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.CourseService.Enroll(ctx.Request.Context(), claims.UserID, uint(id)); err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "课程不存在")
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Error(ctx, 409, "已报名该课程")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"enrolled": true})
}

// GetProgress godoc
// @Summary 获取课程学习进度
// @Tags 课程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.UserProgress} "成功"
// @Failure 404 {object} util.Response "未报名"
// @Router /api/courses/{id}/progress [get]
func (c *CourseController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	progress, err := c.CourseService.GetProgress(claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx, "尚未报名该课程")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// UpdateProgressRequest 模块完成上报
type UpdateProgressRequest struct {
	ModuleIndex int     `json:"moduleIndex" binding:"min=0"`
	QuizScore   float64 `json:"quizScore" binding:"min=0,max=100"`
}

// UpdateProgress godoc
// @Summary 上报模块完成与测验得分
// @Description 模块全部完成时课程记为完成并奖励积分
// @Tags 课程
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "课程ID"
// @Param   body body UpdateProgressRequest true "进度"
// @Success 200 {object} util.Response{data=model.UserProgress} "成功"
// @Failure 404 {object} util.Response "未报名"
// @Router /api/courses/{id}/progress [post]
func (c *CourseController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.CourseService.UpdateProgress(ctx.Request.Context(), claims.UserID, uint(id), req.ModuleIndex, req.QuizScore)
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx, "尚未报名该课程")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}
