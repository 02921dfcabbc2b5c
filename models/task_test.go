package models

import "testing"

func TestTaskStatusValid(t *testing.T) {
	valid := []TaskStatus{StatusTodo, StatusInProgress, StatusCompleted}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}

	invalid := []TaskStatus{"", "done", "TODO", "pending"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestTaskPriorityValid(t *testing.T) {
	valid := []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}
	for _, p := range valid {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}

	invalid := []TaskPriority{"", "urgent", "Low"}
	for _, p := range invalid {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}
