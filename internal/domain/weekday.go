package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidWeekday возвращается для неизвестного дня недели
var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday день недели, индексы совпадают с time.Weekday (воскресенье = 0)
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	Sunday:    "sunday",
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
}

// AllWeekdays дни недели в порядке индексов
var AllWeekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf возвращает день недели для даты
func WeekdayOf(date time.Time) Weekday {
	return Weekday(date.Weekday())
}

// WeekdayFromIndex проверяет индекс 0..6
func WeekdayFromIndex(idx int) (Weekday, error) {
	if idx < int(Sunday) || idx > int(Saturday) {
		return 0, fmt.Errorf("%w: index %d", ErrInvalidWeekday, idx)
	}
	return Weekday(idx), nil
}

// ParseWeekday парсит имя дня ("monday", "Monday")
func ParseWeekday(name string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == normalized {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
}

// IsValid возвращает true для значений 0..6
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// Index целочисленный индекс дня
func (w Weekday) Index() int {
	return int(w)
}

func (w Weekday) String() string {
	if !w.IsValid() {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}
