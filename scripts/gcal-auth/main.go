// Command gcal-auth authorizes Google Calendar access once for an OAuth
// Desktop App credentials file and stores the resulting token, which the API
// server reads from google_calendar.token_path.
//
// Usage:
//
//	go run ./scripts/gcal-auth -credentials google-credentials.json -token token.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"golang.org/x/oauth2"

	"quick-task-management/pkg/gcalendar"
	"quick-task-management/pkg/log"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "OAuth Desktop App credentials file")
	tokenPath := flag.String("token", gcalendar.DefaultTokenPath, "where to write the OAuth token")
	flag.Parse()

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Encoding: log.EncodingConsole, ColorEnabled: true})

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", *credsPath, err)
	}

	config, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v. Make sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", *tokenPath, err)
	}

	logger.Infof(ctx, "Token saved to %s. Restart the API server to enable calendar reminders.", *tokenPath)
}
