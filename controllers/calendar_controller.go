package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"TimeflowGo/services"
)

// CalendarController 日历视图接口
type CalendarController struct {
	service *services.TaskService
}

func NewCalendarController(service *services.TaskService) *CalendarController {
	return &CalendarController{service: service}
}

// GetCalendarTasks 获取指定月份内到期的任务，month/year缺省时取当前月份和年份
func (cc *CalendarController) GetCalendarTasks(c *gin.Context) {
	month, ok := parseIntQuery(c, "month")
	if !ok {
		return
	}
	year, ok := parseIntQuery(c, "year")
	if !ok {
		return
	}

	tasks, err := cc.service.CalendarTasks(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err, "获取日历任务失败")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// parseIntQuery 解析可选的整数查询参数，解析失败时直接写入400响应
func parseIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的参数 " + name + ": " + raw})
		return nil, false
	}
	return &value, true
}
