package models

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description *string       `json:"description"`
	DueDate     *DateOnly     `json:"due_date"`
	Priority    *TaskPriority `json:"priority"`
}

// UpdateTaskRequest 部分更新任务请求结构体
// 字段使用指针以区分“未提供”和“提供了某个值”，未提供的字段不会被修改
type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	DueDate     *DateOnly     `json:"due_date"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
}
