package funding

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// CrunchbaseClient authenticates with a query-string user key rather than a
// bearer token, and filters sector/min-amount client side because the
// organizations endpoint cannot do either server side.
type CrunchbaseClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCrunchbaseClient(apiKey string) *CrunchbaseClient {
	return &CrunchbaseClient{
		apiKey:     apiKey,
		baseURL:    "https://api.crunchbase.com/v3.1",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *CrunchbaseClient) Name() string {
	return "Crunchbase"
}

func (c *CrunchbaseClient) Fetch(q Query) ([]Record, error) {
	q = q.withDefaults()
	from, _ := queryDateRange(q.TimeframeDays)

	params := url.Values{}
	params.Set("user_key", c.apiKey)
	params.Set("organization_types", "company")
	params.Set("updated_since", from)
	params.Set("order", "updated_at DESC")
	params.Set("limit", "100")

	resp, err := c.httpClient.Get(c.baseURL + "/organizations?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("crunchbase fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crunchbase fetch: unexpected status %d", resp.StatusCode)
	}

	var raw crunchbaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("crunchbase decode: %w", err)
	}

	records := make([]Record, 0, len(raw.Data.Items))
	for _, org := range raw.Data.Items {
		latest, ok := latestCrunchbaseRound(org.FundingRounds)
		if !ok {
			continue
		}
		if q.MinFundingAmount > 0 && latest.RaisedAmountUSD < q.MinFundingAmount {
			continue
		}
		if !inCategory(org.CategoryGroups, q.Sector) {
			continue
		}

		investors := make([]string, 0, len(latest.Investors))
		for _, inv := range latest.Investors {
			investors = append(investors, inv.Name)
		}
		founders := make([]string, 0, len(org.Founders))
		for _, f := range org.Founders {
			founders = append(founders, f.Name)
		}

		records = append(records, Record{
			CompanyName:   org.Name,
			FundingAmount: latest.RaisedAmountUSD,
			FundingRound:  latest.RoundCode,
			FundingDate:   latest.AnnouncedOn,
			Investors:     investors,
			Sector:        q.Sector,
			Location:      org.HomepageURL,
			CompanySize:   org.EmployeeCount,
			Description:   org.ShortDescription,
			KeyPeople:     founders,
			Website:       org.HomepageURL,
			LinkedIn:      org.LinkedInURL,
		})
	}

	return records, nil
}

type crunchbaseResponse struct {
	Data struct {
		Items []crunchbaseOrg `json:"items"`
	} `json:"data"`
}

type crunchbaseOrg struct {
	Name             string            `json:"name"`
	HomepageURL      string            `json:"homepage_url"`
	LinkedInURL      string            `json:"linkedin_url"`
	EmployeeCount    string            `json:"employee_count"`
	ShortDescription string            `json:"short_description"`
	CategoryGroups   []string          `json:"category_groups"`
	Founders         []crunchbasePerson `json:"founders"`
	FundingRounds    []crunchbaseRound  `json:"funding_rounds"`
}

type crunchbasePerson struct {
	Name string `json:"name"`
}

type crunchbaseRound struct {
	RaisedAmountUSD float64            `json:"raised_amount_usd"`
	RoundCode       string             `json:"round_code"`
	AnnouncedOn     string             `json:"announced_on"`
	Investors       []crunchbasePerson `json:"investors"`
}

func latestCrunchbaseRound(rounds []crunchbaseRound) (crunchbaseRound, bool) {
	if len(rounds) == 0 {
		return crunchbaseRound{}, false
	}
	latest := rounds[0]
	for _, r := range rounds[1:] {
		if r.AnnouncedOn > latest.AnnouncedOn {
			latest = r
		}
	}
	return latest, true
}

func inCategory(categories []string, sector string) bool {
	for _, cat := range categories {
		if strings.EqualFold(cat, sector) {
			return true
		}
	}
	return false
}
