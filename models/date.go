package models

import (
	"fmt"
	"time"
)

// DateLayout 日历日期的文本格式
const DateLayout = "2006-01-02"

// DateOnly 表示不含时间部分的日历日期，比较均按日历日进行
type DateOnly struct {
	time.Time
}

// NewDateOnly 截掉时间部分，保留日历日
func NewDateOnly(t time.Time) DateOnly {
	return DateOnly{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDateOnly 解析 2006-01-02 形式的日期文本
func ParseDateOnly(s string) (DateOnly, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return DateOnly{}, err
	}
	return NewDateOnly(t), nil
}

// Today 返回当前日历日
func Today() DateOnly {
	return NewDateOnly(time.Now())
}

func (d DateOnly) String() string {
	return d.Format(DateLayout)
}

// Before 日历日早于
func (d DateOnly) Before(o DateOnly) bool {
	return d.Time.Before(o.Time)
}

// Equal 日历日相同
func (d DateOnly) Equal(o DateOnly) bool {
	return d.Time.Equal(o.Time)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("无效的日期格式: %s", s)
	}
	parsed, err := ParseDateOnly(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
