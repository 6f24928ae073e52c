package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"zambus/internal/domain"
)

type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "Active"
	ScheduleSuspended ScheduleStatus = "Suspended"
	ScheduleCancelled ScheduleStatus = "Cancelled"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleActive, ScheduleSuspended, ScheduleCancelled:
		return true
	}
	return false
}

// Days is a set of operating weekdays, bit i set for time.Weekday(i).
type Days uint8

const AllDays Days = 0x7f

var dayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (d Days) Has(w time.Weekday) bool {
	return d&(1<<uint(w)) != 0
}

func (d Days) Overlaps(o Days) bool {
	return d&o != 0
}

func (d Days) With(w time.Weekday) Days {
	return d | 1<<uint(w)
}

// String renders the set the way operators type it: "Daily", "Weekdays", "Mon, Wed, Fri".
func (d Days) String() string {
	switch d {
	case AllDays:
		return "Daily"
	case 0x3e:
		return "Weekdays"
	case 0x41:
		return "Weekends"
	}
	parts := []string{}
	for _, w := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		if d.Has(w) {
			parts = append(parts, dayNames[w])
		}
	}
	return strings.Join(parts, ", ")
}

func (d Days) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Days) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDays(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDays accepts "Daily", "Weekdays", "Weekends", ranges like "Mon-Fri" and
// comma separated lists like "Mon, Wed, Fri". Full day names are accepted too.
func ParseDays(raw string) (Days, error) {
	s := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	switch s {
	case "":
		return 0, fmt.Errorf("operating days are required")
	case "daily", "everyday", "every day":
		return AllDays, nil
	case "weekdays":
		return 0x3e, nil
	case "weekends":
		return 0x41, nil
	}

	var out Days
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if from, to, ok := strings.Cut(part, "-"); ok {
			a, errA := parseWeekday(from)
			b, errB := parseWeekday(to)
			if errA != nil || errB != nil {
				return 0, fmt.Errorf("invalid operating day range %q", part)
			}
			for w := a; ; w = (w + 1) % 7 {
				out = out.With(w)
				if w == b {
					break
				}
			}
			continue
		}
		w, err := parseWeekday(part)
		if err != nil {
			return 0, err
		}
		out = out.With(w)
	}
	if out == 0 {
		return 0, fmt.Errorf("operating days are required")
	}
	return out, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 3 {
		prefix := s[:3]
		for i, name := range dayNames {
			if strings.EqualFold(prefix, name) && strings.HasPrefix(strings.ToLower(time.Weekday(i).String()), s) {
				return time.Weekday(i), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid operating day %q", s)
}

// Schedule is a recurring assignment of a bus to a route.
type Schedule struct {
	ID        domain.ID      `json:"id"`
	CompanyID domain.ID      `json:"companyId"`
	RouteID   domain.ID      `json:"routeId"`
	BusID     domain.ID      `json:"busId"`
	Route     string         `json:"route"`
	Bus       string         `json:"bus"`
	Departure string         `json:"departure"` // HH:MM
	Arrival   string         `json:"arrival"`   // HH:MM
	Days      Days           `json:"days"`
	Status    ScheduleStatus `json:"status"`
}

type ScheduleInput struct {
	RouteID   domain.ID `json:"routeId"`
	BusID     domain.ID `json:"busId"`
	Departure string    `json:"departure"`
	Arrival   string    `json:"arrival"`
	Days      string    `json:"days"`
}
