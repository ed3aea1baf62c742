package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// DesktopFlow runs the one-time OAuth desktop authorization that produces
// TokenFile for NewClientFromCredentialsJSON.
type DesktopFlow struct {
	config *oauth2.Config
}

// NewDesktopFlow parses OAuth desktop app credentials.
func NewDesktopFlow(credentialsJSON []byte) (*DesktopFlow, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse OAuth desktop credentials: %w", err)
	}
	return &DesktopFlow{config: cfg}, nil
}

// AuthURL is the page where the user grants access and copies the code.
func (f *DesktopFlow) AuthURL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token and writes it to path.
func (f *DesktopFlow) Exchange(ctx context.Context, code, path string) error {
	tok, err := f.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	return SaveToken(path, tok)
}

// SaveToken writes tok as JSON, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
