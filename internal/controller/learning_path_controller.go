package controller

import (
	"github.com/logicshrey/Learnopolis-v2/internal/service"
	"github.com/logicshrey/Learnopolis-v2/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	LearningPathService *service.LearningPathService
}

func NewLearningPathController(learningPathService *service.LearningPathService) *LearningPathController {
	return &LearningPathController{LearningPathService: learningPathService}
}

// GetLearningPaths godoc
// @Summary 获取学习路径
// @Description 按主题模板从课程目录组装由浅入深的课程序列，少于3门的路径不返回
// @Tags 学习路径
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.LearningPath} "成功"
// @Router /api/learning-paths [get]
func (c *LearningPathController) GetLearningPaths(ctx *gin.Context) {
	paths, err := c.LearningPathService.GetLearningPaths()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}
