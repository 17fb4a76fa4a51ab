package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/username/working-days-api/internal/engine"
	"github.com/username/working-days-api/internal/holiday"
	"github.com/username/working-days-api/internal/schedule"
	"go.uber.org/zap"
)

type staticSource struct {
	set holiday.Set
	err error
}

func (s staticSource) Holidays(ctx context.Context) (holiday.Set, error) {
	return s.set, s.err
}

func newTestServer(t *testing.T, source holiday.Source) *Server {
	t.Helper()

	eng, err := engine.New(schedule.DefaultProfile(), source, zap.NewNop())
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	return NewServer(eng, "test", zap.NewNop())
}

func doRequest(t *testing.T, server *Server, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestWorkingDaysHandler(t *testing.T) {
	server := newTestServer(t, staticSource{set: holiday.NewSet([]string{"2025-04-17", "2025-04-18"})})

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantDate   string
		wantError  string
	}{
		{
			name:       "hours only",
			target:     "/working-days?hours=1&date=2025-04-11T22:00:00Z",
			wantStatus: http.StatusOK,
			wantDate:   "2025-04-14T14:00:00Z",
		},
		{
			name:       "days and hours",
			target:     "/working-days?days=1&hours=4&date=2025-04-08T20:00:00Z",
			wantStatus: http.StatusOK,
			wantDate:   "2025-04-10T15:00:00Z",
		},
		{
			name:       "no parameters",
			target:     "/working-days",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
		{
			name:       "zero values count as absent",
			target:     "/working-days?days=0&hours=0",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
		{
			name:       "non-numeric days",
			target:     "/working-days?days=two",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
		{
			name:       "negative hours",
			target:     "/working-days?hours=-3",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
		{
			name:       "malformed date rejected before the engine",
			target:     "/working-days?hours=1&date=11-04-2025",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
		{
			name:       "date without offset rejected",
			target:     "/working-days?hours=1&date=2025-04-11T22:00:00",
			wantStatus: http.StatusBadRequest,
			wantError:  "InvalidParameters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, server, tt.target)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantDate != "" {
				var result engine.Result
				if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if result.Date != tt.wantDate {
					t.Errorf("date = %s, want %s", result.Date, tt.wantDate)
				}
			}

			if tt.wantError != "" {
				var apiErr Error
				if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if apiErr.Error != tt.wantError {
					t.Errorf("error = %s, want %s", apiErr.Error, tt.wantError)
				}
			}
		})
	}
}

func TestWorkingDaysHandler_SourceUnavailable(t *testing.T) {
	server := newTestServer(t, staticSource{err: errors.New("endpoint unreachable")})

	rec := doRequest(t, server, "/working-days?hours=1&date=2025-04-11T22:00:00Z")

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var apiErr Error
	if err := json.Unmarshal(rec.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if apiErr.Error != "HolidaySourceUnavailable" {
		t.Errorf("error = %s, want HolidaySourceUnavailable", apiErr.Error)
	}
}

func TestServiceRoutes(t *testing.T) {
	server := newTestServer(t, staticSource{set: holiday.NewSet(nil)})

	if rec := doRequest(t, server, "/health"); rec.Code != http.StatusOK {
		t.Errorf("/health status = %d, want 200", rec.Code)
	}

	rec := doRequest(t, server, "/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("/version status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["version"] != "test" {
		t.Errorf("version = %s, want test", body["version"])
	}

	if rec := doRequest(t, server, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", rec.Code)
	}
}
