package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
)

// transportErrorReply is returned verbatim when the generation call cannot
// reach the provider at all. The chat UI renders it as the assistant's reply.
const transportErrorReply = "Error in API request."

// Client issues synchronous generation calls against the configured
// text-generation endpoint. It never fails its caller: provider and transport
// errors degrade to human-readable reply strings so a chat turn always
// completes.
type Client struct {
	cfg        config.ModelConfig
	httpClient *http.Client
}

// NewClient builds a generation client from the model configuration.
func NewClient(cfg config.ModelConfig) *Client {
	httpClient := &http.Client{}
	if cfg.Timeout > 0 {
		httpClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &Client{cfg: cfg, httpClient: httpClient}
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// Generate sends the prompt to the provider and extracts the assistant reply
// from the response envelope. Providers that echo the instruction block have
// everything through the close marker stripped.
func (c *Client) Generate(ctx context.Context, prompt, conversationID string) string {
	payload := generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens: c.cfg.MaxTokens,
			Temperature:  c.cfg.Temperature,
			TopP:         c.cfg.TopP,
			DoSample:     c.cfg.Sampling,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[ai] failed to encode generation request: %v", err)
		return transportErrorReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("[ai] failed to build generation request: %v", err)
		return transportErrorReply
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}

	log.Printf("[ai] requesting generation for conversation=%s", conversationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ai] generation request failed: %v", err)
		return transportErrorReply
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[ai] failed to read generation response: %v", err)
		return transportErrorReply
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error %d: %s", resp.StatusCode, string(raw))
	}

	var generations []generation
	if err := json.Unmarshal(raw, &generations); err != nil || len(generations) == 0 {
		// Unexpected envelope shape; surface it as-is rather than failing the turn.
		return string(raw)
	}

	return c.extractReply(generations[0].GeneratedText)
}

func (c *Client) extractReply(text string) string {
	marker := c.cfg.Instruction.ResponseMarker()
	if marker != "" {
		if _, after, found := strings.Cut(text, marker); found {
			return strings.TrimSpace(after)
		}
	}
	return strings.TrimSpace(text)
}
