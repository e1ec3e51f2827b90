package source

import (
	"fmt"
	"strings"

	"github.com/uvaheesara/archery-tools/internal/xtime"
)

// Type selects where participant records are fetched from.
type Type string

const (
	// TypeAppsScript fetches the JSON array published by the registration
	// sheet's Apps Script web app.
	TypeAppsScript Type = "appsscript"
	// TypeSheets reads the registration sheet directly through the Google
	// Sheets API with a service account.
	TypeSheets Type = "sheets"
)

type Config struct {
	Type Type `toml:"type"`

	URL     string         `toml:"url"`
	APIKey  string         `toml:"api_key"`
	Timeout xtime.Duration `toml:"timeout"`

	Every      xtime.Duration `toml:"every"`
	Burst      int            `toml:"burst"`
	MaxRetries int            `toml:"max_retries"`

	SpreadsheetID   string `toml:"spreadsheet_id"`
	CredentialsFile string `toml:"credentials_file"`
	SheetName       string `toml:"sheet_name"`

	// Refresh is how often the background refresher pulls a new snapshot.
	Refresh xtime.Duration `toml:"refresh"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Type: %s\n URL: %s\n APIKey: %s\n Timeout: %s\n Every: %s\n Burst: %d\n MaxRetries: %d\n SpreadsheetID: %s\n CredentialsFile: %s\n SheetName: %s\n Refresh: %s",
		c.Type,
		c.URL,
		strings.Repeat("*", len(c.APIKey)),
		c.Timeout,
		c.Every,
		c.Burst,
		c.MaxRetries,
		c.SpreadsheetID,
		c.CredentialsFile,
		c.SheetName,
		c.Refresh,
	)
}
