package utils

import "time"

const (
	DayKeyLayout = "2006-01-02"
	TimeLayout   = "15:04:05"
)

// DayKey returns today's date as "YYYY-MM-DD" in server local time.
// Every per-day record (menu, cutoff, status, order) is scoped by this key.
func DayKey() string {
	return time.Now().Format(DayKeyLayout)
}

// DayKeyAt is DayKey for an arbitrary instant, used by the retention sweeper.
func DayKeyAt(t time.Time) string {
	return t.Format(DayKeyLayout)
}
