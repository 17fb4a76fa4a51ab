package schedule

import (
	"fmt"
	"time"
)

// Profile holds the business-hours configuration for a single calendar.
// Hours are local clock hours in the profile's timezone; the lunch interval
// [LunchStart, LunchEnd) is non-working.
type Profile struct {
	WorkStart  int
	LunchStart int
	LunchEnd   int
	WorkEnd    int
	Timezone   string
}

// DefaultProfile returns the Monday-Friday 08:00-17:00 Bogota calendar with
// lunch from 12:00 to 13:00.
func DefaultProfile() Profile {
	return Profile{
		WorkStart:  8,
		LunchStart: 12,
		LunchEnd:   13,
		WorkEnd:    17,
		Timezone:   "America/Bogota",
	}
}

// Validate validates the profile
func (p Profile) Validate() error {
	if p.WorkStart < 0 || p.WorkEnd > 24 {
		return fmt.Errorf("working hours must be within a single day")
	}
	if !(p.WorkStart < p.LunchStart && p.LunchStart < p.LunchEnd && p.LunchEnd < p.WorkEnd) {
		return fmt.Errorf("working hours must satisfy workStart < lunchStart < lunchEnd < workEnd")
	}
	if _, err := time.LoadLocation(p.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", p.Timezone, err)
	}
	return nil
}

// Location returns the business timezone.
func (p Profile) Location() (*time.Location, error) {
	return time.LoadLocation(p.Timezone)
}
