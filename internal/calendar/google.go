package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

// storedToken mirrors the authorized-user JSON kept in GOOGLE_OAUTH_TOKEN_JSON.
type storedToken struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	TokenURI     string    `json:"token_uri"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	Scopes       []string  `json:"scopes"`
	Expiry       time.Time `json:"expiry"`
}

type GoogleSource struct {
	svc        *gcal.Service
	calendarID string
	loc        *time.Location
}

// TokenSourceFromJSON builds a refreshing token source from the stored
// credentials. An empty payload yields ErrCredentialsUnavailable.
func TokenSourceFromJSON(ctx context.Context, raw string) (oauth2.TokenSource, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrCredentialsUnavailable
	}

	var st storedToken
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("invalid google oauth token: %w", err)
	}
	if st.Token == "" && st.RefreshToken == "" {
		return nil, ErrCredentialsUnavailable
	}

	scopes := st.Scopes
	if len(scopes) == 0 {
		scopes = []string{calendarScope}
	}

	cfg := &oauth2.Config{
		ClientID:     st.ClientID,
		ClientSecret: st.ClientSecret,
		Scopes:       scopes,
		Endpoint:     oauth2.Endpoint{TokenURL: st.TokenURI},
	}

	return cfg.TokenSource(ctx, &oauth2.Token{
		AccessToken:  st.Token,
		RefreshToken: st.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       st.Expiry,
	}), nil
}

func NewGoogleSource(ctx context.Context, tokenJSON, calendarID string, loc *time.Location) (*GoogleSource, error) {
	ts, err := TokenSourceFromJSON(ctx, tokenJSON)
	if err != nil {
		return nil, err
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("build calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	return &GoogleSource{svc: svc, calendarID: calendarID, loc: loc}, nil
}

var _ EventSource = (*GoogleSource)(nil)

func (g *GoogleSource) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	var out []Event

	call := g.svc.Events.List(g.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, item := range page.Items {
			ev, ok := g.toEvent(item)
			if ok {
				out = append(out, ev)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (g *GoogleSource) toEvent(item *gcal.Event) (Event, bool) {
	if item == nil || item.Start == nil || item.Status == "cancelled" {
		return Event{}, false
	}

	if item.Start.Date != "" {
		return Event{ID: item.Id, AllDay: true, Date: item.Start.Date}, true
	}

	if item.Start.DateTime == "" || item.End == nil || item.End.DateTime == "" {
		return Event{}, false
	}

	start, err := time.Parse(time.RFC3339, item.Start.DateTime)
	if err != nil {
		return Event{}, false
	}
	end, err := time.Parse(time.RFC3339, item.End.DateTime)
	if err != nil {
		return Event{}, false
	}

	return Event{ID: item.Id, Start: start.In(g.loc), End: end.In(g.loc)}, true
}

func (g *GoogleSource) InsertEvent(ctx context.Context, in EventInput) (string, error) {
	event := &gcal.Event{
		Summary:     in.Title,
		Description: fmt.Sprintf("Client: %s\n\n%s", in.AttendeeName, in.Description),
		Start: &gcal.EventDateTime{
			DateTime: in.Start.In(g.loc).Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		End: &gcal.EventDateTime{
			DateTime: in.End.In(g.loc).Format(time.RFC3339),
			TimeZone: g.loc.String(),
		},
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
		},
	}

	if in.AttendeeEmail != "" {
		event.Attendees = []*gcal.EventAttendee{
			{Email: in.AttendeeEmail, DisplayName: in.AttendeeName},
		}
	}

	created, err := g.svc.Events.Insert(g.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return created.Id, nil
}

func (g *GoogleSource) DeleteEvent(ctx context.Context, eventID string) error {
	err := g.svc.Events.Delete(g.calendarID, eventID).
		SendUpdates("all").
		Context(ctx).
		Do()

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) &&
		(apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return ErrEventNotFound
	}

	return err
}
