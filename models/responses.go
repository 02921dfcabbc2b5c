package models

// DashboardStats 仪表盘统计响应结构体
type DashboardStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
	TodayTasks     int `json:"today_tasks"`
}

// MessageResponse 通用消息响应结构体
type MessageResponse struct {
	Message string `json:"message"`
}
