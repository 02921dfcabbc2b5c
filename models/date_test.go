package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDateOnly() error = %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("expected 2024-02-29, got %s", d.String())
	}

	if _, err := ParseDateOnly("2024-2-29"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := ParseDateOnly("not-a-date"); err == nil {
		t.Error("expected error for non-date text")
	}
}

func TestNewDateOnlyDropsTime(t *testing.T) {
	d := NewDateOnly(time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local))
	if d.String() != "2024-03-15" {
		t.Errorf("expected 2024-03-15, got %s", d.String())
	}

	other := NewDateOnly(time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC))
	if !d.Equal(other) {
		t.Error("same calendar day should compare equal")
	}
}

func TestDateOnlyOrdering(t *testing.T) {
	earlier, _ := ParseDateOnly("2024-01-31")
	later, _ := ParseDateOnly("2024-02-01")

	if !earlier.Before(later) {
		t.Error("2024-01-31 should be before 2024-02-01")
	}
	if later.Before(earlier) {
		t.Error("2024-02-01 should not be before 2024-01-31")
	}
	if earlier.Before(earlier) {
		t.Error("a date should not be before itself")
	}
}

func TestDateOnlyJSON(t *testing.T) {
	d, _ := ParseDateOnly("2024-06-01")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-06-01"` {
		t.Errorf(`expected "2024-06-01", got %s`, data)
	}

	var decoded DateOnly
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !decoded.Equal(d) {
		t.Errorf("round trip mismatch: %s != %s", decoded, d)
	}

	if err := json.Unmarshal([]byte(`"31-01-2024"`), &decoded); err == nil {
		t.Error("expected error for wrong date layout")
	}
}

func TestDateOnlyJSONInStruct(t *testing.T) {
	type payload struct {
		DueDate *DateOnly `json:"due_date"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"due_date":"2024-06-01"}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.DueDate == nil || p.DueDate.String() != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %v", p.DueDate)
	}

	p = payload{}
	if err := json.Unmarshal([]byte(`{"due_date":null}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.DueDate != nil {
		t.Errorf("null due_date should decode to nil, got %v", p.DueDate)
	}
}
