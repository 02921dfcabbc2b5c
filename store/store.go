package store

import (
	"context"
	"errors"
	"time"

	"TimeflowGo/models"
)

// ErrTaskNotFound 指定ID的任务不存在
var ErrTaskNotFound = errors.New("task not found")

// 排序字段
const (
	SortByCreatedAt = "created_at"
	SortByDueDate   = "due_date"
)

// TaskQuery 查询条件，零值表示返回全部记录
type TaskQuery struct {
	// DueFrom 截止日期下界（含）。设置后没有截止日期的任务会被过滤掉
	DueFrom *models.DateOnly
	// DueTo 截止日期上界（不含）
	DueTo *models.DateOnly
	// StatusNot 排除的状态，空值表示不过滤
	StatusNot models.TaskStatus
	// SortBy 排序字段，空值表示保持存储原生顺序
	SortBy   string
	SortDesc bool
	// Limit 最大返回条数，0表示不限制
	Limit int64
}

// TaskPatch 部分更新内容，nil字段不修改；UpdatedAt总是会写入
type TaskPatch struct {
	Title       *string
	Description *string
	DueDate     *models.DateOnly
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	UpdatedAt   time.Time
}

// TaskStore 任务存储接口
type TaskStore interface {
	Insert(ctx context.Context, task models.Task) error
	FindByID(ctx context.Context, id string) (models.Task, error)
	Find(ctx context.Context, query TaskQuery) ([]models.Task, error)
	UpdateByID(ctx context.Context, id string, patch TaskPatch) error
	DeleteByID(ctx context.Context, id string) error
}
