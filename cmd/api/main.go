package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jashanpratapsingh/recruitment-agency/internal/agent"
	"github.com/jashanpratapsingh/recruitment-agency/internal/handler"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/discovery"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/funding"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/llm"
	"github.com/jashanpratapsingh/recruitment-agency/pkg/mailer"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	aggregator := funding.NewAggregator(funding.ProvidersFromEnv()...)
	finder := discovery.NewFinderFromEnv()
	verifier := discovery.NewVerifier()
	sender := mailer.NewSenderFromEnv()

	agents := agent.NewAllAgents(agent.Options{Deps: agent.Deps{
		Funding:  aggregator,
		Finder:   finder,
		Verifier: verifier,
		Sender:   sender,
	}})

	chat := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	runner := agent.NewRunner(chat)

	fundingHandler := handler.NewFundingHandler(aggregator)
	emailHandler := handler.NewEmailHandler(finder, verifier, sender)
	chatHandler := handler.NewChatHandler(runner, agents)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/funding/rounds", fundingHandler.GetFundingRounds)
	r.POST("/outreach", fundingHandler.CreateOutreach)
	r.POST("/emails/find", emailHandler.FindEmail)
	r.POST("/emails/admin", emailHandler.FindAdminEmails)
	r.POST("/emails/verify", emailHandler.VerifyEmail)
	r.POST("/emails/send", emailHandler.SendEmail)
	r.POST("/emails/campaign", emailHandler.RunCampaign)
	r.POST("/chat", chatHandler.Chat)
	r.GET("/health", fundingHandler.GetHealth)

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
