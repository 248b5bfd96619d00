package scheduler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/limbo/wakeup/pkg/entity"
)

// clockParts normalizes the wall clock into the same 12-hour shape alarms are
// stored in: zero-padded hour and minute strings, AM/PM period and the local
// calendar date.
func clockParts(now time.Time) (hour, minute, period, date string) {
	h := now.Hour()
	period = "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d", display), fmt.Sprintf("%02d", now.Minute()), period, now.Format("2006-01-02")
}

// minuteKey identifies a wall-clock minute for the refire guard.
func minuteKey(now time.Time) string {
	hour, minute, period, date := clockParts(now)
	return hour + ":" + minute + "-" + period + "-" + date
}

// weekdayIndex shifts Go's Sunday=0 convention to the stored Monday=0 one.
func weekdayIndex(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}

// parseClock reads a stored "HH:MM" string, tolerating missing zero padding.
func parseClock(value string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(value, ":")
	if !found {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(mm)
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// Matches reports whether an alarm should fire at the given instant. A
// malformed trigger time is a non-match, never an error. One-shot alarms
// match only their exact date; recurring ones match by weekday set, with an
// empty set meaning every day.
func Matches(a *entity.Alarm, now time.Time) bool {
	if !a.Active {
		return false
	}
	hour, minute, ok := parseClock(a.Time)
	if !ok {
		return false
	}
	curHour, curMinute, curPeriod, curDate := clockParts(now)
	if fmt.Sprintf("%02d:%02d", hour, minute) != curHour+":"+curMinute || a.Period != curPeriod {
		return false
	}
	if a.Date != "" {
		return a.Date == curDate
	}
	if len(a.Days) == 0 {
		return true
	}
	return slices.Contains(a.Days, weekdayIndex(now))
}
