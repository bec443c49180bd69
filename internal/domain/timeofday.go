package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned by ParseTimeStrict for input that is not a
// recognizable time of day.
var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time in 24-hour form.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// ParseTime converts "HH:MM" or "HH:MM AM/PM" into a 24-hour TimeOfDay.
// A space selects the 12-hour branch. Empty or unparseable parts read as zero,
// so an unset field parses to midnight; callers check IsTimeSet first.
func ParseTime(s string) TimeOfDay {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}
	}

	clock, meridiem, twelveHour := strings.Cut(s, " ")
	h, m := splitClock(clock)

	if twelveHour {
		switch strings.ToUpper(strings.TrimSpace(meridiem)) {
		case "AM":
			if h == 12 {
				h = 0
			}
		case "PM":
			if h < 12 {
				h += 12
			}
		}
	}
	return TimeOfDay{Hours: h, Minutes: m}
}

// ParseTimeStrict is ParseTime with range and format checks, used when
// accepting settings input.
func ParseTimeStrict(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return TimeOfDay{}, fmt.Errorf("%w: empty", ErrInvalidTime)
	}

	clock, meridiem, twelveHour := strings.Cut(trimmed, " ")
	hStr, mStr, ok := strings.Cut(clock, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q (expected HH:MM)", ErrInvalidTime, s)
	}
	h, errH := strconv.Atoi(hStr)
	m, errM := strconv.Atoi(mStr)
	if errH != nil || errM != nil || m < 0 || m > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if twelveHour {
		mer := strings.ToUpper(strings.TrimSpace(meridiem))
		if mer != "AM" && mer != "PM" {
			return TimeOfDay{}, fmt.Errorf("%w: %q (meridiem must be AM or PM)", ErrInvalidTime, s)
		}
		if h < 1 || h > 12 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
	} else if h < 0 || h > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return ParseTime(trimmed), nil
}

// IsTimeSet reports whether a stored time field holds a value.
func IsTimeSet(s string) bool {
	return strings.TrimSpace(s) != ""
}

// On anchors the time of day to the calendar day of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	y, mo, d := ref.Date()
	return time.Date(y, mo, d, t.Hours, t.Minutes, 0, 0, ref.Location())
}

// MinuteOfDay returns minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hours*60 + t.Minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

func splitClock(clock string) (int, int) {
	hStr, mStr, _ := strings.Cut(clock, ":")
	h, _ := strconv.Atoi(strings.TrimSpace(hStr))
	m, _ := strconv.Atoi(strings.TrimSpace(mStr))
	return h, m
}
