package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// TimeString время суток в формате "HH:MM" (без даты и таймзоны)
// Используется для времени начала/окончания посадки и слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
// Значение нормализуется к виду с ведущим нулём ("9:30" -> "09:30"):
// сравнения порядка лексикографические и требуют одинаковой ширины часа
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM: %v", s, err)
	}
	return NewTimeString(parsed), nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM: %v", string(t), err)
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Сдвиг за полночь возвращает ошибку - слоты не пересекают границу суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: %v", string(t), err)
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %q + %d minutes crosses midnight", string(t), minutes)
	}

	return TimeString(shifted.Format(TimeFormat)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case string:
		*t = normalizeScanned(v)
	case []byte:
		*t = normalizeScanned(string(v))
	case time.Time:
		*t = NewTimeString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
	return nil
}

// normalizeScanned обрезает секунды из значений вида "10:30:00"
func normalizeScanned(s string) TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return TimeString(s)
}
