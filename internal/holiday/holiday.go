// Package holiday supplies the set of non-working calendar dates that the
// engine consumes in addition to weekends.
package holiday

import (
	"context"
	"time"

	"github.com/username/working-days-api/pkg/dateutil"
)

// Set is a read-only snapshot of holiday dates keyed by YYYY-MM-DD.
type Set map[string]struct{}

// NewSet builds a Set from ISO calendar date strings. Entries that are not
// valid dates are dropped.
func NewSet(dates []string) Set {
	set := make(Set, len(dates))
	for _, d := range dates {
		if _, err := dateutil.ParseDateKey(d); err != nil {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// Contains reports whether the local calendar date of t is a holiday.
func (s Set) Contains(t time.Time) bool {
	_, ok := s[dateutil.DateKey(t)]
	return ok
}

// Len returns the number of holiday dates in the set.
func (s Set) Len() int {
	return len(s)
}

// Source yields the holiday snapshot for one calculation. Implementations
// may cache between calls; callers treat the returned Set as immutable.
type Source interface {
	Holidays(ctx context.Context) (Set, error)
}
