package cycle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout 是日志与接口统一使用的日期格式。
const DateLayout = "2006-01-02"

// ErrInvalidDate 在日期字符串无法解析时返回
var ErrInvalidDate = errors.New("invalid date")

// Date 表示一个不带时区与时刻的日历日。
// 内部固定为 UTC 零点，所有运算都返回新值，不修改原值。
type Date struct {
	t time.Time
}

// NewDate 根据年月日构造日期，越界的日/月会按 time.Date 规则归一化。
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf 截取 t 在其自身时区下的日历日，丢弃时刻部分。
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate 解析 YYYY-MM-DD 格式的日期。
func ParseDate(value string) (Date, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Date{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	t, err := time.ParseInLocation(DateLayout, trimmed, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, trimmed)
	}
	return Date{t: t}, nil
}

// MustParseDate 仅用于常量与测试数据。
func MustParseDate(value string) Date {
	d, err := ParseDate(value)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// AddDays 返回向后偏移 n 天的日期，n 可为负数。
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare 返回 -1/0/1，便于 slices.SortFunc 使用。
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// Time 返回 UTC 零点的 time.Time。
func (d Date) Time() time.Time {
	return d.t
}

// MonthLabel 返回英文月份缩写，例如 Jan、Feb。
func (d Date) MonthLabel() string {
	return d.t.Format("Jan")
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON 输出 "YYYY-MM-DD"，零值输出 null。
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 接受 "YYYY-MM-DD" 或 null。
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == `""` {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(strings.Trim(raw, `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween 返回 newer 减去 older 的整天数，newer 更早时为负数。
func DaysBetween(newer, older Date) int {
	return int(newer.t.Sub(older.t).Hours() / 24)
}
