package domain

import "time"

// Appointment is a scheduled club event. Time is the start time as "HH:MM";
// Date carries only the calendar date part.
type Appointment struct {
	ID       int32     `json:"id"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	Holiday  bool      `json:"holiday"`
}

// Upcoming reports whether the appointment is today or later.
func (a Appointment) Upcoming(today time.Time) bool {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !a.Date.Before(midnight)
}
