package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/username/working-days-api/internal/engine"
	"go.uber.org/zap"
)

// utcInstantPattern matches ISO-8601 instants with an explicit offset.
// Example: 2025-04-11T22:00:00Z
var utcInstantPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:\d{2})$`)

// WorkingDaysHandler answers GET /working-days?days=&hours=&date=.
func (s *Server) WorkingDaysHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	days, ok := parseCount(query.Get("days"))
	if !ok {
		s.writeError(w, http.StatusBadRequest, "InvalidParameters", "days must be a non-negative integer")
		return
	}

	hours, ok := parseCount(query.Get("hours"))
	if !ok {
		s.writeError(w, http.StatusBadRequest, "InvalidParameters", "hours must be a non-negative integer")
		return
	}

	date := query.Get("date")
	if date != "" && !utcInstantPattern.MatchString(date) {
		s.writeError(w, http.StatusBadRequest, "InvalidParameters",
			fmt.Sprintf("%s is an invalid date format; it must be an ISO-8601 UTC instant", date))
		return
	}

	result, err := s.engine.Calculate(r.Context(), engine.Params{
		Days:  days,
		Hours: hours,
		Date:  date,
	})
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

// parseCount parses an optional non-negative integer query value. An absent
// value parses as zero.
func parseCount(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidParameters):
		s.writeError(w, http.StatusBadRequest, "InvalidParameters", err.Error())
	case errors.Is(err, engine.ErrHolidaySourceUnavailable):
		s.logger.Error("Holiday source unavailable", zap.Error(err))
		s.writeError(w, http.StatusServiceUnavailable, "HolidaySourceUnavailable", err.Error())
	default:
		s.logger.Error("Calculation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "InternalError", "calculation failed")
	}
}
