package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jashanpratapsingh/recruitment-agency/internal/agent"
)

type AgentRunner interface {
	Run(ctx context.Context, cfg agent.Config, input string) (string, error)
}

type ChatHandler struct {
	runner AgentRunner
	agents map[string]agent.Config
}

func NewChatHandler(runner AgentRunner, agents map[string]agent.Config) *ChatHandler {
	return &ChatHandler{runner: runner, agents: agents}
}

// Chat routes a message to the coordinator, or to a named agent from the
// registry when the request asks for one.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	name := req.Agent
	if name == "" {
		name = "recruiting_coordinator"
	}
	cfg, ok := h.agents[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown agent"})
		return
	}

	interaction := agent.DetectInteraction(agent.SelectionInput{
		Headers:   c.Request.Header,
		URL:       c.Request.URL.String(),
		UserAgent: c.Request.UserAgent(),
		Input:     []byte(req.Message),
	})

	reply, err := h.runner.Run(c.Request.Context(), cfg, req.Message)
	if err != nil {
		slog.Error("agent run failed", "agent", cfg.Name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "agent error"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Agent:       cfg.Name,
		Model:       cfg.Model,
		Interaction: string(interaction),
		Reply:       reply,
	})
}
