package store

import (
	"testing"
	"time"

	"TimeflowGo/models"
)

func TestTaskDocumentRoundTrip(t *testing.T) {
	description := "写周报"
	due, _ := models.ParseDateOnly("2025-09-04")
	task := models.Task{
		ID:          "5f6c2a9e-1111-2222-3333-444455556666",
		Title:       "周报",
		Description: &description,
		DueDate:     &due,
		Status:      models.StatusInProgress,
		Priority:    models.PriorityHigh,
		CreatedAt:   time.Date(2025, 8, 28, 10, 30, 0, 123456000, time.UTC),
		UpdatedAt:   time.Date(2025, 8, 28, 11, 0, 0, 0, time.UTC),
	}

	doc := taskToDocument(task)
	if doc.DueDate == nil || *doc.DueDate != "2025-09-04" {
		t.Errorf("due_date should encode as date-only text, got %v", doc.DueDate)
	}
	if doc.CreatedAt != "2025-08-28T10:30:00.123456Z" {
		t.Errorf("unexpected created_at text: %s", doc.CreatedAt)
	}

	decoded, err := documentToTask(doc)
	if err != nil {
		t.Fatalf("documentToTask() error = %v", err)
	}
	if decoded.ID != task.ID || decoded.Title != task.Title {
		t.Error("id/title mismatch after round trip")
	}
	if decoded.Description == nil || *decoded.Description != description {
		t.Error("description mismatch after round trip")
	}
	if decoded.DueDate == nil || !decoded.DueDate.Equal(due) {
		t.Error("due_date mismatch after round trip")
	}
	if decoded.Status != task.Status || decoded.Priority != task.Priority {
		t.Error("status/priority mismatch after round trip")
	}
	if !decoded.CreatedAt.Equal(task.CreatedAt) || !decoded.UpdatedAt.Equal(task.UpdatedAt) {
		t.Error("timestamp mismatch after round trip")
	}
}

func TestTaskDocumentOptionalFieldsAbsent(t *testing.T) {
	now := time.Now().UTC()
	task := models.Task{
		ID:        "id-1",
		Title:     "最小任务",
		Status:    models.StatusTodo,
		Priority:  models.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc := taskToDocument(task)
	if doc.Description != nil {
		t.Error("absent description should stay nil")
	}
	if doc.DueDate != nil {
		t.Error("absent due_date should stay nil")
	}

	decoded, err := documentToTask(doc)
	if err != nil {
		t.Fatalf("documentToTask() error = %v", err)
	}
	if decoded.Description != nil || decoded.DueDate != nil {
		t.Error("absent optional fields should decode to nil")
	}
}

func TestTaskDocumentBadTimestamp(t *testing.T) {
	doc := taskDocument{
		ID:        "id-1",
		Title:     "坏数据",
		Status:    "todo",
		Priority:  "medium",
		CreatedAt: "yesterday",
		UpdatedAt: "yesterday",
	}
	if _, err := documentToTask(doc); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

// 时间戳文本的字典序必须与时间序一致，recent-tasks的排序依赖这一点
func TestTimestampLayoutLexicalOrder(t *testing.T) {
	times := []time.Time{
		time.Date(2025, 8, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 28, 9, 0, 0, 5000, time.UTC),
		time.Date(2025, 8, 28, 9, 0, 1, 0, time.UTC),
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for i := 1; i < len(times); i++ {
		prev := times[i-1].Format(TimestampLayout)
		curr := times[i].Format(TimestampLayout)
		if !(prev < curr) {
			t.Errorf("lexical order broken: %s >= %s", prev, curr)
		}
	}
}
