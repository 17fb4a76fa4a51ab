// Package schedule implements the working-calendar arithmetic: classifying
// instants, normalizing them into working hours, and advancing them by whole
// working days or hours.
package schedule

import (
	"time"

	"github.com/username/working-days-api/internal/holiday"
	"github.com/username/working-days-api/pkg/dateutil"
)

// Schedule evaluates working-time rules for one profile and one holiday
// snapshot. All instants passed in must already be expressed in the
// profile's timezone.
type Schedule struct {
	profile  Profile
	holidays holiday.Set
}

// New creates a Schedule over the given profile and holiday snapshot.
func New(profile Profile, holidays holiday.Set) *Schedule {
	return &Schedule{
		profile:  profile,
		holidays: holidays,
	}
}

// TimeOfDay is a local clock time at minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayOf captures the local clock time of the given instant.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// IsWeekend returns true if the local weekday is Saturday or Sunday.
func (s *Schedule) IsWeekend(t time.Time) bool {
	return dateutil.IsWeekend(t)
}

// IsHoliday returns true if the local calendar date is a holiday.
func (s *Schedule) IsHoliday(t time.Time) bool {
	return s.holidays.Contains(t)
}

// IsWorkingHour returns true if the local hour is inside a working window.
func (s *Schedule) IsWorkingHour(t time.Time) bool {
	h := t.Hour()
	if h < s.profile.WorkStart || h >= s.profile.WorkEnd {
		return false
	}
	if h >= s.profile.LunchStart && h < s.profile.LunchEnd {
		return false
	}
	return true
}

// NextWorkTime moves t forward to the nearest instant that falls on a
// working day inside a working window. Instants already inside a window are
// returned unchanged.
func (s *Schedule) NextWorkTime(t time.Time) time.Time {
	adjusted := t

	for {
		for s.IsWeekend(adjusted) || s.IsHoliday(adjusted) {
			adjusted = dateutil.AtTime(adjusted.AddDate(0, 0, 1), s.profile.WorkStart, 0)
		}

		if adjusted.Hour() >= s.profile.WorkEnd {
			adjusted = dateutil.AtTime(adjusted.AddDate(0, 0, 1), s.profile.WorkStart, 0)
			// the following day may itself be a weekend or holiday
			continue
		}

		break
	}

	if adjusted.Hour() < s.profile.WorkStart {
		adjusted = dateutil.AtTime(adjusted, s.profile.WorkStart, 0)
	}

	if adjusted.Hour() >= s.profile.LunchStart && adjusted.Hour() < s.profile.LunchEnd {
		adjusted = dateutil.AtTime(adjusted, s.profile.LunchEnd, 0)
	}

	return adjusted
}

// Clamp snaps a captured clock time into the nearest valid working slot:
// hours before workStart clamp to workStart, hours at or after workEnd clamp
// to workEnd, hours inside lunch clamp to lunchStart. A clock time whose
// hour needs no clamping keeps its minute.
func (s *Schedule) Clamp(tod TimeOfDay) TimeOfDay {
	switch {
	case tod.Hour < s.profile.WorkStart:
		return TimeOfDay{Hour: s.profile.WorkStart}
	case tod.Hour >= s.profile.WorkEnd:
		return TimeOfDay{Hour: s.profile.WorkEnd}
	case tod.Hour >= s.profile.LunchStart && tod.Hour < s.profile.LunchEnd:
		return TimeOfDay{Hour: s.profile.LunchStart}
	}
	return tod
}

// AddWorkingDays advances t by exactly days working days. The count
// increments only on days that are neither weekend nor holiday; the landing
// day is re-checked and pushed past any further non-working days. The
// captured time-of-day is re-applied on the landing day, clamped into a
// valid slot.
func (s *Schedule) AddWorkingDays(t time.Time, days int, tod TimeOfDay) time.Time {
	current := t
	added := 0

	for added < days {
		current = current.AddDate(0, 0, 1)
		if !s.IsWeekend(current) && !s.IsHoliday(current) {
			added++
		}
	}

	for s.IsWeekend(current) || s.IsHoliday(current) {
		current = current.AddDate(0, 0, 1)
	}

	clamped := s.Clamp(tod)
	return dateutil.AtTime(current, clamped.Hour, clamped.Minute)
}

// AddWorkingHours consumes hours*60 working minutes from t, splitting the
// addition at the lunch boundary and the end-of-day boundary. Time spent
// inside lunch or outside the working day is never counted, so working
// minutes are conserved exactly across boundaries.
func (s *Schedule) AddWorkingHours(t time.Time, hours int) time.Time {
	current := t
	remaining := hours * 60 // working minutes left to consume

	for remaining > 0 {
		if !s.IsWorkingHour(current) {
			current = s.NextWorkTime(current)
			continue
		}

		if current.Hour() < s.profile.LunchStart {
			untilLunch := s.profile.LunchStart*60 - (current.Hour()*60 + current.Minute())
			if remaining <= untilLunch {
				return current.Add(time.Duration(remaining) * time.Minute)
			}

			remaining -= untilLunch
			current = dateutil.AtTime(current, s.profile.LunchEnd, 0)
			continue
		}

		untilEndOfDay := s.profile.WorkEnd*60 - (current.Hour()*60 + current.Minute())
		if remaining <= untilEndOfDay {
			return current.Add(time.Duration(remaining) * time.Minute)
		}

		remaining -= untilEndOfDay
		current = s.NextWorkTime(dateutil.AtTime(current.AddDate(0, 0, 1), s.profile.WorkStart, 0))
	}

	return current
}
