package services

import (
	"context"
	"fmt"
	"time"

	"TimeflowGo/models"
	"TimeflowGo/store"
	"TimeflowGo/utils"
)

const (
	// maxListTasks 列表和统计查询的最大条数
	maxListTasks = 1000
	// dashboardListLimit 最近/即将到期列表的最大条数
	dashboardListLimit = 5
)

// ValidationError 请求参数校验失败
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TaskService 任务服务，封装CRUD和各派生视图的计算
type TaskService struct {
	store store.TaskStore
}

func NewTaskService(s store.TaskStore) *TaskService {
	return &TaskService{store: s}
}

// CreateTask 创建任务，服务端生成ID和时间戳，状态固定为todo
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	priority := models.PriorityMedium
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return models.Task{}, newValidationError("无效的优先级: %s", *req.Priority)
		}
		priority = *req.Priority
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.StatusTodo,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// GetTask 按ID查询单个任务
func (s *TaskService) GetTask(ctx context.Context, id string) (models.Task, error) {
	return s.store.FindByID(ctx, id)
}

// ListTasks 返回全部任务，按存储原生顺序，最多1000条
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.Find(ctx, store.TaskQuery{Limit: maxListTasks})
}

// UpdateTask 部分更新任务，仅修改请求中提供的字段，updated_at总是刷新
func (s *TaskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (models.Task, error) {
	if req.Status != nil && !req.Status.Valid() {
		return models.Task{}, newValidationError("无效的状态: %s", *req.Status)
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return models.Task{}, newValidationError("无效的优先级: %s", *req.Priority)
	}
	if req.Title != nil && *req.Title == "" {
		return models.Task{}, newValidationError("标题不能为空")
	}

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Priority:    req.Priority,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		return models.Task{}, err
	}

	// 重新读取，返回更新后的完整记录
	return s.store.FindByID(ctx, id)
}

// DeleteTask 按ID删除任务
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.store.DeleteByID(ctx, id)
}

// DashboardStats 计算仪表盘统计
// 注意today_tasks不排除已完成任务，而overdue_tasks排除，两者条件互相独立
func (s *TaskService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	tasks, err := s.store.Find(ctx, store.TaskQuery{Limit: maxListTasks})
	if err != nil {
		return models.DashboardStats{}, err
	}

	today := models.Today()
	stats := models.DashboardStats{TotalTasks: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusCompleted:
			stats.CompletedTasks++
		case models.StatusTodo, models.StatusInProgress:
			stats.PendingTasks++
		}
		if task.DueDate == nil {
			continue
		}
		if task.DueDate.Before(today) && task.Status != models.StatusCompleted {
			stats.OverdueTasks++
		}
		if task.DueDate.Equal(today) {
			stats.TodayTasks++
		}
	}
	return stats, nil
}

// RecentTasks 返回最近创建的任务，按created_at倒序，最多5条
func (s *TaskService) RecentTasks(ctx context.Context) ([]models.Task, error) {
	return s.store.Find(ctx, store.TaskQuery{
		SortBy:   store.SortByCreatedAt,
		SortDesc: true,
		Limit:    dashboardListLimit,
	})
}

// UpcomingTasks 返回即将到期的未完成任务，按due_date升序，最多5条
func (s *TaskService) UpcomingTasks(ctx context.Context) ([]models.Task, error) {
	today := models.Today()
	return s.store.Find(ctx, store.TaskQuery{
		DueFrom:   &today,
		StatusNot: models.StatusCompleted,
		SortBy:    store.SortByDueDate,
		Limit:     dashboardListLimit,
	})
}

// CalendarTasks 返回指定月份内到期的任务，month/year缺省时各自取当前值
func (s *TaskService) CalendarTasks(ctx context.Context, month, year *int) ([]models.Task, error) {
	now := time.Now()
	targetMonth := int(now.Month())
	if month != nil {
		targetMonth = *month
	}
	targetYear := now.Year()
	if year != nil {
		targetYear = *year
	}

	// 月份越界直接拒绝，而不是按日期算术归一化
	if targetMonth < 1 || targetMonth > 12 {
		return nil, newValidationError("无效的月份: %d", targetMonth)
	}

	start := models.NewDateOnly(time.Date(targetYear, time.Month(targetMonth), 1, 0, 0, 0, 0, time.UTC))
	// 12月自动滚动到次年1月
	end := models.NewDateOnly(start.AddDate(0, 1, 0))

	return s.store.Find(ctx, store.TaskQuery{
		DueFrom: &start,
		DueTo:   &end,
		Limit:   maxListTasks,
	})
}
