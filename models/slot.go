package models

// AvailabilitySlot is a persisted bookable window owned by a consultant.
type AvailabilitySlot struct {
	ID        int64  `json:"id,omitempty"`
	Date      string `json:"date"`               // YYYY-MM-DD
	StartTime string `json:"start_time"`         // HH:MM
	EndTime   string `json:"end_time,omitempty"` // HH:MM
}

// SlotDraft is a slot being edited before it is saved.
type SlotDraft struct {
	Date    string `json:"date" bson:"date"`
	Time    string `json:"time" bson:"time"`
	EndTime string `json:"endTime,omitempty" bson:"endTime,omitempty"`
}

// Complete reports whether the draft has both a date and a start time.
// Incomplete drafts are never persisted.
func (d SlotDraft) Complete() bool {
	return d.Date != "" && d.Time != ""
}

func (d SlotDraft) Slot() AvailabilitySlot {
	return AvailabilitySlot{Date: d.Date, StartTime: d.Time, EndTime: d.EndTime}
}

// SlotsToDrafts maps persisted slots into the editable shape.
func SlotsToDrafts(slots []AvailabilitySlot) []SlotDraft {
	drafts := make([]SlotDraft, 0, len(slots))
	for _, s := range slots {
		drafts = append(drafts, SlotDraft{Date: s.Date, Time: s.StartTime, EndTime: s.EndTime})
	}
	return drafts
}
