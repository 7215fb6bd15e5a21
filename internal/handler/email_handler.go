package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jashanpratapsingh/recruitment-agency/pkg/discovery"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
)

type EmailFinder interface {
	FindPersonEmail(q discovery.PersonQuery) discovery.PersonResult
	FindCompanyAdminEmails(company, domain string, includeGeneral, includeDepartments bool) discovery.AdminResult
}

type EmailVerifier interface {
	Verify(email string) discovery.VerifyResult
}

type EmailSender interface {
	Send(email mailer.Email) mailer.Result
	RunCampaign(name string, recipients []mailer.Recipient, templates mailer.Templates, opts mailer.BulkOptions) mailer.CampaignResult
}

type EmailHandler struct {
	finder   EmailFinder
	verifier EmailVerifier
	sender   EmailSender
}

func NewEmailHandler(finder EmailFinder, verifier EmailVerifier, sender EmailSender) *EmailHandler {
	return &EmailHandler{finder: finder, verifier: verifier, sender: sender}
}

func (h *EmailHandler) FindEmail(c *gin.Context) {
	var req FindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := h.finder.FindPersonEmail(discovery.PersonQuery{
		Name:    req.Name,
		Company: req.Company,
		Domain:  req.Domain,
	})
	if result.Error != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EmailHandler) FindAdminEmails(c *gin.Context) {
	var req AdminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Company == "" && req.Domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company or domain is required"})
		return
	}

	general, departments := true, true
	if req.IncludeGeneral != nil {
		general = *req.IncludeGeneral
	}
	if req.IncludeDepartments != nil {
		departments = *req.IncludeDepartments
	}

	result := h.finder.FindCompanyAdminEmails(req.Company, req.Domain, general, departments)
	c.JSON(http.StatusOK, result)
}

func (h *EmailHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	c.JSON(http.StatusOK, h.verifier.Verify(req.Email))
}

// SendEmail defaults to a dry run; a live send needs dry_run explicitly false.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to is required"})
		return
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}

	result := h.sender.Send(mailer.Email{
		To:       req.To,
		Subject:  req.Subject,
		Body:     req.Body,
		HTMLBody: req.HTMLBody,
		DryRun:   dryRun,
	})
	if result.Status == mailer.StatusError {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *EmailHandler) RunCampaign(c *gin.Context) {
	var req CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.Recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipients is required"})
		return
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}

	result := h.sender.RunCampaign(req.Name, req.Recipients, mailer.Templates{
		Subject: req.Subject,
		Body:    req.Body,
		HTML:    req.HTML,
	}, mailer.BulkOptions{DryRun: dryRun})

	c.JSON(http.StatusOK, result)
}
