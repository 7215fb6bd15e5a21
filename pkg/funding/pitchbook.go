package funding

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type PitchBookClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPitchBookClient(apiKey string) *PitchBookClient {
	return &PitchBookClient{
		apiKey:     apiKey,
		baseURL:    "https://api.pitchbook.com/v1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *PitchBookClient) Name() string {
	return "PitchBook"
}

func (c *PitchBookClient) Fetch(q Query) ([]Record, error) {
	q = q.withDefaults()
	from, to := queryDateRange(q.TimeframeDays)

	params := url.Values{}
	params.Set("sector", q.Sector)
	params.Set("funding_date_from", from)
	params.Set("funding_date_to", to)
	params.Set("min_funding_amount", fmt.Sprintf("%.0f", q.MinFundingAmount))
	params.Set("limit", "100")

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/companies?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("pitchbook request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pitchbook fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pitchbook fetch: unexpected status %d", resp.StatusCode)
	}

	var raw pitchbookResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("pitchbook decode: %w", err)
	}

	records := make([]Record, 0, len(raw.Companies))
	for _, company := range raw.Companies {
		latest, ok := latestPitchBookRound(company.FundingRounds)
		if !ok {
			continue
		}

		records = append(records, Record{
			CompanyName:   company.Name,
			FundingAmount: latest.AmountUSD,
			FundingRound:  latest.RoundType,
			FundingDate:   latest.Date,
			Investors:     latest.Investors,
			Sector:        q.Sector,
			Location:      company.Location,
			CompanySize:   company.EmployeeCount,
			Description:   company.Description,
			KeyPeople:     company.Founders,
			Website:       company.Website,
			LinkedIn:      company.LinkedInURL,
		})
	}

	return records, nil
}

type pitchbookResponse struct {
	Companies []pitchbookCompany `json:"companies"`
}

type pitchbookCompany struct {
	Name          string           `json:"name"`
	Location      string           `json:"location"`
	EmployeeCount string           `json:"employee_count"`
	Description   string           `json:"description"`
	Founders      []string         `json:"founders"`
	Website       string           `json:"website"`
	LinkedInURL   string           `json:"linkedin_url"`
	FundingRounds []pitchbookRound `json:"funding_rounds"`
}

type pitchbookRound struct {
	AmountUSD float64  `json:"amount_usd"`
	RoundType string   `json:"round_type"`
	Date      string   `json:"date"`
	Investors []string `json:"investors"`
}

func latestPitchBookRound(rounds []pitchbookRound) (pitchbookRound, bool) {
	if len(rounds) == 0 {
		return pitchbookRound{}, false
	}
	latest := rounds[0]
	for _, r := range rounds[1:] {
		if r.Date > latest.Date {
			latest = r
		}
	}
	return latest, true
}
