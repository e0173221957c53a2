package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidZone reports whether name resolves against the system tz database.
func ValidZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ResolveZone returns the location for an IANA zone name, or UTC when the
// name is empty or unknown.
func ResolveZone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LocalDate returns now's wall-clock calendar date in loc as YYYY-MM-DD.
// Callers re-evaluate this per request; it is the cache invalidation key.
func LocalDate(now time.Time, loc *time.Location) string {
	return FormatDate(now.In(loc))
}

// EndOfDay returns the first instant of the next calendar day in loc.
func EndOfDay(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
}
