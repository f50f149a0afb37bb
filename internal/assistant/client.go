package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/unrot/unrot/internal/config"
	"github.com/unrot/unrot/internal/models"
)

// Client is the HTTP implementation of Adapter. Requests are plain JSON
// against a single generation endpoint; the response carries free-form
// text, which the schedule path additionally parses as a JSON array.
type Client struct {
	endpoint string
	model    string
	apiKey   string
	http     *http.Client
	log      zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		endpoint: cfg.AssistantEndpoint,
		model:    cfg.AssistantModel,
		apiKey:   cfg.AssistantAPIKey,
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		log:      log,
	}
}

type generateRequest struct {
	Model             string `json:"model"`
	Contents          string `json:"contents"`
	SystemInstruction string `json:"system_instruction,omitempty"`
	ResponseMimeType  string `json:"response_mime_type,omitempty"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// generate performs one request and returns the response text.
func (c *Client) generate(ctx context.Context, req generateRequest) (string, error) {
	if c.endpoint == "" {
		return "", errors.New("assistant endpoint not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("malformed response: %w", err)
	}
	return out.Text, nil
}

func (c *Client) Advice(ctx context.Context, stats WorkspaceStats) string {
	prompt := fmt.Sprintf(
		"You are a minimalist, calm productivity assistant for a Notion-style app called Unrot. "+
			"Current Workspace Status: %d points earned, %d tasks pending, %d habits tracked. "+
			"Focus on encouraging consistency. Keep it to 1 sentence, professional, minimalist.",
		stats.Points, stats.PendingTasks, stats.Habits,
	)

	text, err := c.generate(ctx, generateRequest{Model: c.model, Contents: prompt})
	if err != nil {
		c.log.Warn().Err(err).Msg("advice request failed, using fallback")
		return adviceFallback
	}
	if strings.TrimSpace(text) == "" {
		return adviceFallback
	}
	return text
}

func (c *Client) Chat(ctx context.Context, message string, history []models.ChatMessage) string {
	var transcript strings.Builder
	for _, msg := range history {
		fmt.Fprintf(&transcript, "%s: %s\n", msg.Role, msg.Content)
	}
	fmt.Fprintf(&transcript, "user: %s", message)

	text, err := c.generate(ctx, generateRequest{
		Model:    c.model,
		Contents: transcript.String(),
		SystemInstruction: "You are the Unrot Assistant, a minimalist, professional, and helpful " +
			"productivity expert. You live inside a Notion-style workspace. Keep your answers " +
			"concise, high-value, and formatted in clean text. Use a calm and neutral tone.",
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("chat request failed, using fallback")
		return chatFallback
	}
	if strings.TrimSpace(text) == "" {
		return chatFallback
	}
	return text
}

func (c *Client) ProposeSchedule(ctx context.Context, tasks []PendingTask, intent string) ([]models.SlotProposal, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	summary, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode task summary: %w", err)
	}

	if intent == "" {
		intent = "normal day"
	}
	prompt := fmt.Sprintf(
		`User Intent: %q. Available Tasks: %s. `+
			`Requirement: Create a schedule between 07:00 and 21:00. `+
			`Rule 1: Use the EXACT "id" provided for each task. `+
			`Rule 2: Map tasks to reasonable "startTime" slots (format HH:00). `+
			`Rule 3: Return ONLY a JSON array. Do not include any text outside the JSON. `+
			`Example: [{"taskId": "id123", "startTime": "09:00"}]`,
		intent, summary,
	)

	text, err := c.generate(ctx, generateRequest{
		Model:            c.model,
		Contents:         prompt,
		ResponseMimeType: "application/json",
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("schedule request failed")
		return nil, err
	}

	var proposals []models.SlotProposal
	if err := json.Unmarshal([]byte(stripFences(text)), &proposals); err != nil {
		return nil, fmt.Errorf("malformed schedule response: %w", err)
	}
	return proposals, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one despite the instructions.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
