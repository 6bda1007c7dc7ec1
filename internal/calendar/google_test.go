package calendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func newTestGoogleSource(t *testing.T, h http.Handler) *GoogleSource {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	svc, err := gcal.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return &GoogleSource{svc: svc, calendarID: "primary", loc: paris(t)}
}

func TestTokenSourceFromJSON(t *testing.T) {
	_, err := TokenSourceFromJSON(context.Background(), "")
	assert.ErrorIs(t, err, ErrCredentialsUnavailable)

	_, err = TokenSourceFromJSON(context.Background(), "{not json")
	assert.Error(t, err)

	_, err = TokenSourceFromJSON(context.Background(), `{"client_id":"x"}`)
	assert.ErrorIs(t, err, ErrCredentialsUnavailable)

	ts, err := TokenSourceFromJSON(context.Background(), `{
		"token": "access",
		"refresh_token": "refresh",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_id": "id",
		"client_secret": "secret",
		"expiry": "2999-01-01T00:00:00Z"
	}`)
	require.NoError(t, err)

	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "access", tok.AccessToken)
}

func TestGoogleSource_ListEvents(t *testing.T) {
	src := newTestGoogleSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"id": "a", "start": map[string]string{"date": "2026-02-10"}, "end": map[string]string{"date": "2026-02-11"}},
				{"id": "b", "start": map[string]string{"dateTime": "2026-02-12T10:00:00+01:00"}, "end": map[string]string{"dateTime": "2026-02-12T11:00:00+01:00"}},
				{"id": "gone", "status": "cancelled", "start": map[string]string{"dateTime": "2026-02-12T12:00:00+01:00"}, "end": map[string]string{"dateTime": "2026-02-12T13:00:00+01:00"}},
			},
		})
	}))

	loc := paris(t)
	events, err := src.ListEvents(context.Background(),
		time.Date(2026, 2, 1, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 1, 0, 0, 0, 0, loc),
	)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.True(t, events[0].AllDay)
	assert.Equal(t, "2026-02-10", events[0].Date)

	assert.False(t, events[1].AllDay)
	assert.Equal(t, "10:00", events[1].Start.Format("15:04"))
	assert.Equal(t, "Europe/Paris", events[1].Start.Location().String())
}

func TestGoogleSource_InsertEvent(t *testing.T) {
	var body gcal.Event
	var sendUpdates string

	src := newTestGoogleSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		sendUpdates = r.URL.Query().Get("sendUpdates")

		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		_ = json.NewEncoder(w).Encode(map[string]any{"id": "evt-42"})
	}))

	loc := paris(t)
	id, err := src.InsertEvent(context.Background(), EventInput{
		Title:         "Massage - Ana",
		Start:         time.Date(2026, 2, 12, 10, 0, 0, 0, loc),
		End:           time.Date(2026, 2, 12, 11, 0, 0, 0, loc),
		AttendeeEmail: "ana@example.com",
		AttendeeName:  "Ana",
		Description:   "Booking Details:",
	})
	require.NoError(t, err)

	assert.Equal(t, "evt-42", id)
	assert.Equal(t, "all", sendUpdates)
	assert.Equal(t, "Massage - Ana", body.Summary)
	assert.Equal(t, "Client: Ana\n\nBooking Details:", body.Description)
	assert.Equal(t, "2026-02-12T10:00:00+01:00", body.Start.DateTime)
	assert.Equal(t, "Europe/Paris", body.Start.TimeZone)
	require.Len(t, body.Attendees, 1)
	assert.Equal(t, "ana@example.com", body.Attendees[0].Email)
	require.NotNil(t, body.Reminders)
	require.Len(t, body.Reminders.Overrides, 2)
	assert.Equal(t, int64(1440), body.Reminders.Overrides[0].Minutes)
}

func TestGoogleSource_DeleteEvent(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
		isErr   bool
	}{
		{"deleted", http.StatusNoContent, nil, false},
		{"not found", http.StatusNotFound, ErrEventNotFound, true},
		{"gone", http.StatusGone, ErrEventNotFound, true},
		{"forbidden", http.StatusForbidden, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := newTestGoogleSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/calendars/primary/events/evt-1", r.URL.Path)
				w.WriteHeader(tc.status)
			}))

			err := src.DeleteEvent(context.Background(), "evt-1")

			if !tc.isErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NotErrorIs(t, err, ErrEventNotFound)
			}
		})
	}
}
