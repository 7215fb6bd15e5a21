package discovery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type ClearbitClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClearbitClient(apiKey string) *ClearbitClient {
	return &ClearbitClient{
		apiKey:     apiKey,
		baseURL:    "https://person.clearbit.com/v2",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ClearbitClient) Name() string {
	return "clearbit_api"
}

func (c *ClearbitClient) Find(name, domain string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("domain", domain)
	params.Set("name", name)

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/combined/find?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("clearbit request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clearbit fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clearbit fetch: unexpected status %d", resp.StatusCode)
	}

	var raw clearbitResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("clearbit decode: %w", err)
	}

	if raw.Email == "" {
		return nil, nil
	}

	// Clearbit only returns addresses it has already confirmed.
	return []Candidate{{
		Email:        raw.Email,
		Confidence:   80,
		Source:       c.Name(),
		Verification: "verified",
	}}, nil
}

type clearbitResponse struct {
	Email string `json:"email"`
}
