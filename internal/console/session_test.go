package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
}

func newAcceptingBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeEnvelope(w, http.StatusCreated, envelope{
				Success: true,
				Message: "Checked in successfully",
				Data:    mustMarshal(t, TimesheetData{ID: "ts-1", CheckIn: "08:30", Status: "InProgress"}),
			})
		case http.MethodPut:
			checkOut := "17:00"
			writeEnvelope(w, http.StatusOK, envelope{
				Success: true,
				Message: "Checked out successfully",
				Data:    mustMarshal(t, TimesheetData{ID: "ts-1", CheckIn: "08:30", CheckOut: &checkOut, Status: "Completed"}),
			})
		}
	}))
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func newTestTracker(t *testing.T, server *httptest.Server) *Tracker {
	t.Helper()
	cachePath := filepath.Join(t.TempDir(), "attendance.json")
	tracker := NewTracker(NewClient(server.URL, "test-token"), cachePath, "emp-1")
	tracker.now = fixedClock
	return tracker
}

func TestTrackerCheckInThenRestoreSameDay(t *testing.T) {
	server := newAcceptingBackend(t)
	defer server.Close()

	tracker := newTestTracker(t, server)
	require.NoError(t, tracker.Restore())
	assert.Equal(t, StateNotCheckedIn, tracker.State())

	require.NoError(t, tracker.CheckIn(context.Background(), "ws-1"))
	assert.Equal(t, StateCheckedIn, tracker.State())
	require.NotNil(t, tracker.Session())
	assert.Equal(t, "ts-1", tracker.Session().TimesheetID)
	assert.Equal(t, "08:30", tracker.Session().CheckIn)

	// A fresh tracker over the same cache resumes the open session.
	resumed := NewTracker(NewClient(server.URL, "test-token"), tracker.cachePath, "emp-1")
	resumed.now = fixedClock
	require.NoError(t, resumed.Restore())
	assert.Equal(t, StateCheckedIn, resumed.State())
	require.NotNil(t, resumed.Session())
	assert.Equal(t, "ts-1", resumed.Session().TimesheetID)
}

func TestTrackerRestoreDiscardsStaleDay(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "attendance.json")
	require.NoError(t, SaveCache(cachePath, CacheEntry{
		EmployeeID:  "emp-1",
		Day:         "2026-03-01",
		CheckIn:     "09:00",
		TimesheetID: "ts-old",
	}))

	tracker := NewTracker(NewClient("http://localhost:0", "test-token"), cachePath, "emp-1")
	tracker.now = fixedClock
	require.NoError(t, tracker.Restore())

	assert.Equal(t, StateNotCheckedIn, tracker.State())
	assert.Nil(t, tracker.Session())
	_, err := os.Stat(cachePath)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTrackerRestoreDiscardsOtherEmployee(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "attendance.json")
	require.NoError(t, SaveCache(cachePath, CacheEntry{
		EmployeeID:  "emp-2",
		Day:         "2026-03-02",
		CheckIn:     "08:00",
		TimesheetID: "ts-other",
	}))

	tracker := NewTracker(NewClient("http://localhost:0", "test-token"), cachePath, "emp-1")
	tracker.now = fixedClock
	require.NoError(t, tracker.Restore())

	assert.Equal(t, StateNotCheckedIn, tracker.State())
	assert.Nil(t, tracker.Session())
}

func TestTrackerCheckInRequiresSchedule(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	tracker := newTestTracker(t, server)

	err := tracker.CheckIn(context.Background(), "")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "work_schedule_id")
	assert.Equal(t, StateNotCheckedIn, tracker.State())
}

func TestTrackerCheckOutWithoutOpenSession(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	tracker := newTestTracker(t, server)

	err := tracker.CheckOut(context.Background())
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, StateNotCheckedIn, tracker.State())
}

func TestTrackerRejectedCheckInLeavesStateUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, envelope{
			Success: false,
			Error: &envelopeError{
				Code:    "CONFLICT",
				Message: "You have already checked in today",
			},
		})
	}))
	defer server.Close()

	tracker := newTestTracker(t, server)

	err := tracker.CheckIn(context.Background(), "ws-1")
	var rejection *BackendRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusConflict, rejection.StatusCode)
	assert.Equal(t, "CONFLICT", rejection.Code)

	assert.Equal(t, StateNotCheckedIn, tracker.State())
	_, statErr := os.Stat(tracker.cachePath)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestTrackerValidationErrorCarriesFieldDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnprocessableEntity, envelope{
			Success: false,
			Error: &envelopeError{
				Code:    "VALIDATION_ERROR",
				Message: "Validation failed",
				Details: map[string]string{"check_in": "Check in must be in HH:mm format"},
			},
		})
	}))
	defer server.Close()

	tracker := newTestTracker(t, server)

	err := tracker.CheckIn(context.Background(), "ws-1")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Check in must be in HH:mm format", validation.Fields["check_in"])
}

func TestTrackerFullDay(t *testing.T) {
	server := newAcceptingBackend(t)
	defer server.Close()

	tracker := newTestTracker(t, server)
	require.NoError(t, tracker.CheckIn(context.Background(), "ws-1"))
	require.NoError(t, tracker.CheckOut(context.Background()))

	assert.Equal(t, StateCheckedOut, tracker.State())
	assert.Nil(t, tracker.Session())
	_, err := os.Stat(tracker.cachePath)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// A second check-out is refused locally.
	err = tracker.CheckOut(context.Background())
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTrackerUnreachableBackend(t *testing.T) {
	server := newAcceptingBackend(t)
	server.Close()

	tracker := newTestTracker(t, server)

	err := tracker.CheckIn(context.Background(), "ws-1")
	var transport *TransportFailure
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, StateNotCheckedIn, tracker.State())
}
