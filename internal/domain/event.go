package domain

import "time"

// CalendarEvent is a scheduled entry on the admin calendar.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	AllDay      bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
