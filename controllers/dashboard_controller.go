package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"TimeflowGo/services"
)

// DashboardController 仪表盘派生视图接口
type DashboardController struct {
	service *services.TaskService
}

func NewDashboardController(service *services.TaskService) *DashboardController {
	return &DashboardController{service: service}
}

// GetStats 获取仪表盘统计
func (dc *DashboardController) GetStats(c *gin.Context) {
	stats, err := dc.service.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRecentTasks 获取最近创建的任务
func (dc *DashboardController) GetRecentTasks(c *gin.Context) {
	tasks, err := dc.service.RecentTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "获取最近任务失败")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetUpcomingTasks 获取即将到期的任务
func (dc *DashboardController) GetUpcomingTasks(c *gin.Context) {
	tasks, err := dc.service.UpcomingTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "获取即将到期任务失败")
		return
	}
	c.JSON(http.StatusOK, tasks)
}
