package routes

import (
	"github.com/gin-gonic/gin"

	"TimeflowGo/controllers"
	"TimeflowGo/services"
)

func RegisterRoutes(r *gin.Engine, taskService *services.TaskService) {
	taskController := controllers.NewTaskController(taskService)
	dashboardController := controllers.NewDashboardController(taskService)
	calendarController := controllers.NewCalendarController(taskService)

	api := r.Group("/api")
	{
		// 健康检查
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Time Management API"})
		})

		// 任务CRUD
		api.POST("/tasks", taskController.CreateTask)
		api.GET("/tasks", taskController.GetTasks)
		api.GET("/tasks/:id", taskController.GetTask)
		api.PUT("/tasks/:id", taskController.UpdateTask)
		api.DELETE("/tasks/:id", taskController.DeleteTask)

		// 仪表盘派生视图
		api.GET("/dashboard/stats", dashboardController.GetStats)
		api.GET("/dashboard/recent-tasks", dashboardController.GetRecentTasks)
		api.GET("/dashboard/upcoming-tasks", dashboardController.GetUpcomingTasks)

		// 日历视图
		api.GET("/calendar/tasks", calendarController.GetCalendarTasks)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
