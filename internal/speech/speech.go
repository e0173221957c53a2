// Package speech renders numbers and clock times the way an arena
// announcer would say them.
package speech

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockMode selects how ClockPhrase renders a time with both minutes and seconds.
type ClockMode string

const (
	// ModeRaw returns the MM:SS string unchanged when both parts are non-zero.
	ModeRaw ClockMode = "raw"
	// ModeHuman spells the time out, e.g. "1 oh 7" for 01:07.
	ModeHuman ClockMode = "human"
)

// Ordinal returns the English ordinal suffix for n: "st", "nd", "rd" or "th".
// 11, 12 and 13 (and 111, 112, ...) always take "th".
func Ordinal(n int) string {
	switch {
	case n%10 == 1 && n%100 != 11:
		return "st"
	case n%10 == 2 && n%100 != 12:
		return "nd"
	case n%10 == 3 && n%100 != 13:
		return "rd"
	default:
		return "th"
	}
}

// OrdinalNumber renders n with its suffix attached, e.g. 2 -> "2nd".
func OrdinalNumber(n int) string {
	return fmt.Sprintf("%d%s", n, Ordinal(n))
}

// ClockPhrase renders a MM:SS period clock as speech. Whole minutes become
// "N minutes", sub-minute times "N seconds". Mixed times stay raw in ModeRaw
// and are spelled out in ModeHuman, with single-digit seconds spoken with a
// leading "oh" ("01:07" -> "1 oh 7"). Malformed input is returned unchanged.
func ClockPhrase(raw string, mode ClockMode) string {
	minutes, seconds, ok := splitClock(raw)
	if !ok {
		return raw
	}

	switch {
	case seconds == 0:
		return pluralize(minutes, "minute")
	case minutes == 0:
		return pluralize(seconds, "second")
	case mode == ModeHuman:
		if seconds < 10 {
			return fmt.Sprintf("%d oh %d", minutes, seconds)
		}
		return fmt.Sprintf("%d %d", minutes, seconds)
	default:
		return raw
	}
}

func splitClock(raw string) (minutes, seconds int, ok bool) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil || minutes < 0 {
		return 0, 0, false
	}
	seconds, err = strconv.Atoi(parts[1])
	if err != nil || seconds < 0 {
		return 0, 0, false
	}
	return minutes, seconds, true
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
