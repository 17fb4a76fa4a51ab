// Package engine validates calculation requests, obtains the holiday
// snapshot, and sequences the calendar arithmetic that answers them.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/username/working-days-api/internal/holiday"
	"github.com/username/working-days-api/internal/schedule"
	"github.com/username/working-days-api/pkg/dateutil"
	"go.uber.org/zap"
)

// Params is one calculation request. Zero values for Days and Hours mean the
// parameter was not supplied; negative values are rejected.
type Params struct {
	Days  int
	Hours int
	Date  string
}

// Result carries the resulting instant in UTC at second precision.
type Result struct {
	Date string `json:"date"`
}

// Engine performs working-days calculations against one business profile
// and one holiday supplier.
type Engine struct {
	profile  schedule.Profile
	location *time.Location
	source   holiday.Source
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a new Engine
func New(profile schedule.Profile, source holiday.Source, logger *zap.Logger) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid business profile: %w", err)
	}

	loc, err := profile.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load business timezone: %w", err)
	}

	return &Engine{
		profile:  profile,
		location: loc,
		source:   source,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// Calculate resolves the base instant, normalizes it into working hours,
// applies the day and hour advancers as requested, and returns the result in
// UTC. The holiday snapshot is obtained once, before any arithmetic.
func (e *Engine) Calculate(ctx context.Context, params Params) (Result, error) {
	if params.Days < 0 || params.Hours < 0 {
		return Result{}, fmt.Errorf("%w: days and hours must be non-negative", ErrInvalidParameters)
	}
	if params.Days == 0 && params.Hours == 0 {
		return Result{}, fmt.Errorf("%w: at least one of days or hours must be positive", ErrInvalidParameters)
	}

	holidays, err := e.source.Holidays(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrHolidaySourceUnavailable, err)
	}

	base, err := e.baseInstant(params.Date)
	if err != nil {
		return Result{}, err
	}

	sched := schedule.New(e.profile, holidays)
	originalTime := schedule.TimeOfDayOf(base)

	current := sched.NextWorkTime(base)
	if params.Days > 0 {
		current = sched.AddWorkingDays(current, params.Days, originalTime)
	}
	if params.Hours > 0 {
		current = sched.AddWorkingHours(current, params.Hours)
	}

	if current.IsZero() || sched.IsWeekend(current) || sched.IsHoliday(current) {
		return Result{}, fmt.Errorf("%w: calculation landed outside the working calendar", ErrInternal)
	}

	result := Result{Date: dateutil.FormatUTCInstant(current)}

	e.logger.Debug("Calculation finished",
		zap.Int("days", params.Days),
		zap.Int("hours", params.Hours),
		zap.String("base", dateutil.FormatUTCInstant(base)),
		zap.String("result", result.Date))

	return result, nil
}

// baseInstant resolves the base of the calculation: the given UTC instant
// converted to the business timezone, or the current instant when absent.
func (e *Engine) baseInstant(date string) (time.Time, error) {
	if date == "" {
		return e.now().In(e.location), nil
	}

	t, err := dateutil.ParseUTCInstant(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid UTC instant", ErrInvalidParameters, date)
	}

	return t.In(e.location), nil
}
