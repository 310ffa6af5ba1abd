package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	tunnelDiscoveryAttempts = 10
	tunnelDiscoveryInterval = 3 * time.Second
)

type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// discoverTunnelURL polls the local ngrok API until a tunnel is up and returns
// its public URL, preferring HTTPS.
func discoverTunnelURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= tunnelDiscoveryAttempts; attempt++ {
		url, err := fetchTunnelURL(ctx, client, ngrokAPIBase+"/api/tunnels")
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err

		if attempt == tunnelDiscoveryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tunnelDiscoveryInterval):
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not usable after %d attempts: %w", tunnelDiscoveryAttempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", tunnelDiscoveryAttempts)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
