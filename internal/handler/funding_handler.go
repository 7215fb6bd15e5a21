package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/outreach"
)

type FundingSource interface {
	FetchRecentFundingRounds(q funding.Query, stage string) []funding.Record
}

type FundingHandler struct {
	source FundingSource
}

func NewFundingHandler(source FundingSource) *FundingHandler {
	return &FundingHandler{source: source}
}

func (h *FundingHandler) GetFundingRounds(c *gin.Context) {
	query := funding.Query{Sector: c.Query("sector")}

	if raw := c.Query("min_amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_amount"})
			return
		}
		query.MinFundingAmount = amount
	}

	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		query.TimeframeDays = days
	}

	stage := c.Query("stage")
	records := h.source.FetchRecentFundingRounds(query, stage)

	sector := query.Sector
	if sector == "" {
		sector = funding.DefaultSector
	}

	c.JSON(http.StatusOK, FundingRoundsResponse{
		Companies: records,
		Total:     len(records),
		Sector:    sector,
		Stage:     stage,
	})
}

func (h *FundingHandler) CreateOutreach(c *gin.Context) {
	var req OutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Companies) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companies is required"})
		return
	}

	strategies := outreach.BuildStrategies(req.Companies, req.Kinds)

	c.JSON(http.StatusOK, OutreachResponse{
		Strategies: strategies,
		Total:      len(strategies),
	})
}

func (h *FundingHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
