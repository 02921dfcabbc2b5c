package store

import (
	"context"
	"sort"
	"sync"

	"TimeflowGo/models"
)

// MemoryTaskStore 基于内存的任务存储，按插入顺序保存记录，测试中替代MongoDB
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

func (s *MemoryTaskStore) Insert(ctx context.Context, task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	return nil
}

func (s *MemoryTaskStore) FindByID(ctx context.Context, id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return models.Task{}, ErrTaskNotFound
}

func (s *MemoryTaskStore) Find(ctx context.Context, query TaskQuery) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Task, 0)
	for _, task := range s.tasks {
		if query.DueFrom != nil || query.DueTo != nil {
			if task.DueDate == nil {
				continue
			}
			if query.DueFrom != nil && task.DueDate.Before(*query.DueFrom) {
				continue
			}
			if query.DueTo != nil && !task.DueDate.Before(*query.DueTo) {
				continue
			}
		}
		if query.StatusNot != "" && task.Status == query.StatusNot {
			continue
		}
		matched = append(matched, task)
	}

	// 稳定排序，created_at相同的记录保持插入顺序
	switch query.SortBy {
	case SortByCreatedAt:
		sort.SliceStable(matched, func(i, j int) bool {
			if query.SortDesc {
				return matched[j].CreatedAt.Before(matched[i].CreatedAt)
			}
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		})
	case SortByDueDate:
		sort.SliceStable(matched, func(i, j int) bool {
			if query.SortDesc {
				return matched[j].DueDate.Before(*matched[i].DueDate)
			}
			return matched[i].DueDate.Before(*matched[j].DueDate)
		})
	}

	if query.Limit > 0 && int64(len(matched)) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func (s *MemoryTaskStore) UpdateByID(ctx context.Context, id string, patch TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		task := &s.tasks[i]
		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = patch.Description
		}
		if patch.DueDate != nil {
			task.DueDate = patch.DueDate
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		task.UpdatedAt = patch.UpdatedAt
		return nil
	}
	return ErrTaskNotFound
}

func (s *MemoryTaskStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}
