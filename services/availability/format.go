package availability

import (
	"strconv"
	"strings"
)

// To12Hour formats "HH:MM" as "H:MMAM" or "H:MMPM". Minutes are kept as given.
// Input without a parsable hour is returned unchanged.
func To12Hour(hhmm string) string {
	hourPart, minutes, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return hhmm
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return hhmm
	}

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return strconv.Itoa(display) + ":" + minutes + suffix
}

// FormatDisplayDate reorders "YYYY-MM-DD" into "DD/MM/YYYY". Nothing is
// validated; strings that don't have three segments are returned as is.
func FormatDisplayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DisplayDates formats each "YYYY-MM-DD" date with FormatDisplayDate.
func DisplayDates(dates []string) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, FormatDisplayDate(d))
	}
	return out
}

// FormatDisplayDateTime renders "YYYY-MM-DDTHH:MM" or "YYYY-MM-DD HH:MM" as
// "DD/MM/YYYY H:MMAM". Seconds and zone suffixes are dropped.
func FormatDisplayDateTime(value string) string {
	cut := strings.IndexAny(value, "T ")
	if cut < 0 {
		return FormatDisplayDate(value)
	}
	date, clock := value[:cut], value[cut+1:]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	return FormatDisplayDate(date) + " " + To12Hour(clock)
}

// FormatTimeRange renders "HH:MM" or "HH:MM-HH:MM" for display.
func FormatTimeRange(timeRange string) string {
	start, end, hasEnd := strings.Cut(timeRange, "-")
	if !hasEnd || end == "" {
		return To12Hour(start)
	}
	return To12Hour(start) + " - " + To12Hour(end)
}
