package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
)

type fakeFundingSource struct {
	records []funding.Record
	gotQ    funding.Query
	gotStg  string
}

func (f *fakeFundingSource) FetchRecentFundingRounds(q funding.Query, stage string) []funding.Record {
	f.gotQ = q
	f.gotStg = stage
	return f.records
}

func newFundingRouter(source FundingSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFundingHandler(source)
	r.GET("/funding/rounds", h.GetFundingRounds)
	r.POST("/outreach", h.CreateOutreach)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetFundingRounds_ReturnsCompanies(t *testing.T) {
	source := &fakeFundingSource{records: []funding.Record{
		{CompanyName: "Acme Chain", FundingAmount: 25000000, FundingRound: "Series A"},
	}}
	r := newFundingRouter(source)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/funding/rounds?sector=blockchain&min_amount=10000000&days=30&stage=Series+A", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FundingRoundsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Acme Chain", res.Companies[0].CompanyName)
	assert.Equal(t, "blockchain", res.Sector)

	assert.Equal(t, "blockchain", source.gotQ.Sector)
	assert.Equal(t, float64(10000000), source.gotQ.MinFundingAmount)
	assert.Equal(t, 30, source.gotQ.TimeframeDays)
	assert.Equal(t, "Series A", source.gotStg)
}

func TestGetFundingRounds_InvalidMinAmount(t *testing.T) {
	r := newFundingRouter(&fakeFundingSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/funding/rounds?min_amount=lots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFundingRounds_DefaultSectorReported(t *testing.T) {
	r := newFundingRouter(&fakeFundingSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/funding/rounds", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FundingRoundsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "blockchain", res.Sector)
}

func TestCreateOutreach_BuildsStrategies(t *testing.T) {
	r := newFundingRouter(&fakeFundingSource{})

	body := `{"companies":[{"company_name":"Acme Chain","funding_amount":25000000,"funding_round":"Series A"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/outreach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res OutreachResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "Acme Chain", res.Strategies[0].CompanyName)
	assert.Equal(t, "Recently raised $25,000,000 in Series A", res.Strategies[0].FundingInfo)
}

func TestCreateOutreach_MissingCompanies(t *testing.T) {
	r := newFundingRouter(&fakeFundingSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/outreach", strings.NewReader(`{"companies":[]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newFundingRouter(&fakeFundingSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
