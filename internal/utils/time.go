package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	LayoutDate     = "2006-01-02"
	LayoutClock    = "15:04"
	layoutDateTime = "2006-01-02 15:04"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, strings.TrimSpace(s), time.Local)
}

// ValidClock reports whether s is a 24-hour HH:MM (leading zero optional).
func ValidClock(s string) bool {
	return clockPattern.MatchString(strings.TrimSpace(s))
}

// ClockMinutes converts "H:MM"/"HH:MM" into minutes since midnight.
func ClockMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !ValidClock(s) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, m, _ := strings.Cut(s, ":")
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	return hh*60 + mm, nil
}

// NormalizeClock pads "8:00" to "08:00".
func NormalizeClock(s string) (string, error) {
	total, err := ClockMinutes(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// CombineDateClock joins a YYYY-MM-DD date and HH:MM time in loc.
func CombineDateClock(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	c, err := NormalizeClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(date)+" "+c, loc)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
