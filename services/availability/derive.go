// File: services/availability/derive.go
package availability

import (
	"strings"
	"time"

	"mindbloom/models"
)

// BlockedWindowDays is how far ahead blocked dates are computed, starting today.
const BlockedWindowDays = 90

const dateLayout = "2006-01-02"

// ConsultantSlots is one consultant's flattened slot strings,
// "YYYY-MM-DD HH:MM" or "YYYY-MM-DD HH:MM-HH:MM".
type ConsultantSlots struct {
	ConsultantID int64    `json:"consultant_id"`
	Slots        []string `json:"slots"`
}

// BookingOptions is everything a service form needs to offer a booking date and time.
type BookingOptions struct {
	AvailableDates        []string `json:"available_dates"`
	BlockedDates          []string `json:"blocked_dates"`
	TimeOptions           []string `json:"time_options"`
	AvailableDatesDisplay []string `json:"available_dates_display"`
	BlockedDatesDisplay   []string `json:"blocked_dates_display"`
}

// Flatten turns persisted slots into the slot string form.
func Flatten(slots []models.AvailabilitySlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		entry := s.Date + " " + s.StartTime
		if s.EndTime != "" {
			entry += "-" + s.EndTime
		}
		out = append(out, entry)
	}
	return out
}

// AvailableDates returns the distinct date tokens across the selected consultants,
// in consultant then slot order.
func AvailableDates(consultants []ConsultantSlots, selected []int64) []string {
	seen := map[string]struct{}{}
	dates := []string{}
	for _, c := range pick(consultants, selected) {
		for _, slot := range c.Slots {
			date, _, _ := strings.Cut(slot, " ")
			if date == "" {
				continue
			}
			if _, ok := seen[date]; !ok {
				seen[date] = struct{}{}
				dates = append(dates, date)
			}
		}
	}
	return dates
}

// BlockedDates lists every date in [today, today+days) that is not available.
func BlockedDates(available []string, today time.Time, days int) []string {
	open := make(map[string]struct{}, len(available))
	for _, d := range available {
		open[d] = struct{}{}
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	blocked := []string{}
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i).Format(dateLayout)
		if _, ok := open[d]; !ok {
			blocked = append(blocked, d)
		}
	}
	return blocked
}

// TimeOptions formats the slots of the selected consultants that fall on date.
func TimeOptions(consultants []ConsultantSlots, selected []int64, date string) []string {
	options := []string{}
	if date == "" {
		return options
	}
	prefix := date + " "
	for _, c := range pick(consultants, selected) {
		for _, slot := range c.Slots {
			if !strings.HasPrefix(slot, prefix) {
				continue
			}
			options = append(options, FormatTimeRange(strings.TrimPrefix(slot, prefix)))
		}
	}
	return options
}

// Deriver computes booking options against an injectable clock.
type Deriver struct {
	Now  func() time.Time
	Days int
}

func NewDeriver() *Deriver {
	return &Deriver{Now: time.Now, Days: BlockedWindowDays}
}

// Options derives available dates, blocked dates and the time options for date.
// Nothing is cached between calls.
func (d *Deriver) Options(consultants []ConsultantSlots, selected []int64, date string) BookingOptions {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	days := d.Days
	if days <= 0 {
		days = BlockedWindowDays
	}

	available := AvailableDates(consultants, selected)
	blocked := BlockedDates(available, now(), days)
	return BookingOptions{
		AvailableDates:        available,
		BlockedDates:          blocked,
		TimeOptions:           TimeOptions(consultants, selected, date),
		AvailableDatesDisplay: DisplayDates(available),
		BlockedDatesDisplay:   DisplayDates(blocked),
	}
}

// pick keeps the consultants whose ID is selected, in consultants order.
func pick(consultants []ConsultantSlots, selected []int64) []ConsultantSlots {
	want := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		want[id] = struct{}{}
	}
	out := make([]ConsultantSlots, 0, len(consultants))
	for _, c := range consultants {
		if _, ok := want[c.ConsultantID]; ok {
			out = append(out, c)
		}
	}
	return out
}
