// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"fmt"
	"strings"
)

// Mode selects how the value is displayed in the center of the dial.
type Mode uint8

const (
	// Numeric displays the integer value.
	Numeric Mode = iota
	// HoursMinutes displays the value as minutes in the form "HHh MMm".
	HoursMinutes
	// TimeOfDay displays the value as minutes in the form "HH:MM".
	TimeOfDay
	// Percent displays the value relative to the maximum.
	Percent
)

// ParseMode maps an attribute string to a Mode. Matching is case
// insensitive: "hours" selects HoursMinutes, "minutes" selects
// TimeOfDay and "numeric" selects Numeric. The empty string means the
// attribute is absent and selects Numeric; anything else selects
// Percent.
func ParseMode(s string) Mode {
	switch {
	case s == "":
		return Numeric
	case strings.EqualFold(s, "hours"):
		return HoursMinutes
	case strings.EqualFold(s, "minutes"):
		return TimeOfDay
	case strings.EqualFold(s, "numeric"):
		return Numeric
	default:
		return Percent
	}
}

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case HoursMinutes:
		return "hours"
	case TimeOfDay:
		return "minutes"
	case Percent:
		return "percent"
	default:
		panic(fmt.Sprintf("invalid mode %d", m))
	}
}

// Label formats value for display according to m.
func (m Mode) Label(value, max float32) string {
	switch m {
	case TimeOfDay:
		h, mins := hoursMinutes(value)
		return fmt.Sprintf("%02d:%02d", h, mins)
	case HoursMinutes:
		h, mins := hoursMinutes(value)
		return fmt.Sprintf("%02dh %02dm", h, mins)
	case Percent:
		if max <= 0 {
			return "0%"
		}
		return fmt.Sprintf("%d%%", int((value/max)*100))
	default:
		return fmt.Sprintf("%d", int(value))
	}
}

func hoursMinutes(value float32) (int, int) {
	h := int(value / minutesPerHour)
	return h, int(value - float32(h*minutesPerHour))
}

const minutesPerHour = 60
