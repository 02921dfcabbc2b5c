package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"TimeflowGo/config"
	"TimeflowGo/models"
	"TimeflowGo/services"
	"TimeflowGo/store"
)

// TaskController 任务CRUD接口
type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// CreateTask 创建任务
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.service.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "创建任务失败")
		return
	}
	c.JSON(http.StatusOK, task)
}

// GetTasks 获取全部任务
func (tc *TaskController) GetTasks(c *gin.Context) {
	tasks, err := tc.service.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, err, "获取任务列表失败")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask 按ID获取单个任务
func (tc *TaskController) GetTask(c *gin.Context) {
	task, err := tc.service.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "获取任务失败")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask 部分更新任务
func (tc *TaskController) UpdateTask(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.service.UpdateTask(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "更新任务失败")
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask 删除任务
func (tc *TaskController) DeleteTask(c *gin.Context) {
	if err := tc.service.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "删除任务失败")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Task deleted successfully"})
}

// respondError 按错误类型映射HTTP状态码
func respondError(c *gin.Context, err error, logMessage string) {
	if errors.Is(err, store.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}
	config.Logger.Errorw(logMessage, "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": logMessage})
}
