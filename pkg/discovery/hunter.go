package discovery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Lookup is an external email-finding API.
type Lookup interface {
	Find(name, domain string) ([]Candidate, error)
	Name() string
}

type HunterClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewHunterClient(apiKey string) *HunterClient {
	return &HunterClient{
		apiKey:     apiKey,
		baseURL:    "https://api.hunter.io/v2",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HunterClient) Name() string {
	return "hunter_api"
}

func (c *HunterClient) Find(name, domain string) ([]Candidate, error) {
	parts := strings.Fields(name)
	firstName := ""
	lastName := ""
	if len(parts) > 0 {
		firstName = parts[0]
	}
	if len(parts) > 1 {
		lastName = parts[len(parts)-1]
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("domain", domain)
	params.Set("first_name", firstName)
	params.Set("last_name", lastName)

	resp, err := c.httpClient.Get(c.baseURL + "/email-finder?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("hunter fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hunter fetch: unexpected status %d", resp.StatusCode)
	}

	var raw hunterResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("hunter decode: %w", err)
	}

	if raw.Data.Email == "" {
		return nil, nil
	}

	score := raw.Data.Score
	if score == 0 {
		score = 50
	}
	verification := "unverified"
	if raw.Data.Verified {
		verification = "verified"
	}

	return []Candidate{{
		Email:        raw.Data.Email,
		Confidence:   score,
		Source:       c.Name(),
		Verification: verification,
	}}, nil
}

type hunterResponse struct {
	Data struct {
		Email    string `json:"email"`
		Score    int    `json:"score"`
		Verified bool   `json:"verified"`
	} `json:"data"`
}
