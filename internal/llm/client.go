/**
* Name:        client.go
* Description: Matcher backed by a self-hosted LLM gateway over HTTP
* Workflow:    credential check -> build prompt -> POST /generate -> strict decode
 */

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/models"
)

const DefaultGatewayURL = "http://localhost:8000"

// maxGatewayBody caps how much of a gateway reply is read.
const maxGatewayBody = 1 << 20

type GenerateRequest struct {
	Model            string          `json:"model,omitempty"`
	Prompt           string          `json:"prompt"`
	ResponseSchema   json.RawMessage `json:"response_schema"`
	ResponseMIMEType string          `json:"response_mime_type"`
	Temperature      float64         `json:"temperature"`
}

type GenerateResponse struct {
	Text string `json:"text"`
}

type GatewayConfig struct {
	BaseURL     string
	Model       string
	Temperature float64
	APIKeyEnv   string
}

// GatewayMatcher talks to an internal gateway that fronts the model.
// Timeouts come from the caller's context, the HTTP client has none.
type GatewayMatcher struct {
	config     GatewayConfig
	httpClient *http.Client
	logger     *zap.Logger
	lookupEnv  func(string) (string, bool)
}

func NewGatewayMatcher(cfg GatewayConfig, log *zap.Logger) *GatewayMatcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGatewayURL
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &GatewayMatcher{
		config:     cfg,
		httpClient: &http.Client{},
		logger:     log.With(zap.String("matcher", "gateway"), zap.String("baseURL", cfg.BaseURL)),
		lookupEnv:  os.LookupEnv,
	}
}

func (g *GatewayMatcher) Match(ctx context.Context, student models.StudentProfile, seniors []models.SeniorProfile) ([]models.MatchResult, error) {
	apiKey, ok := g.lookupEnv(g.config.APIKeyEnv)
	if !ok || strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: %s environment variable is not set", ErrConfiguration, g.config.APIKeyEnv)
	}

	prompt, err := BuildPrompt(student, seniors)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(GenerateRequest{
		Model:            g.config.Model,
		Prompt:           prompt,
		ResponseSchema:   MatchResponseSchema(),
		ResponseMIMEType: responseMIMEType,
		Temperature:      g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/generate", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrConfiguration, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway generate failed with status: %s", ErrUpstream, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: gateway returned no body", ErrEmptyResponse)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	var genResp GenerateResponse
	if err := dec.Decode(&genResp); err != nil {
		return nil, fmt.Errorf("%w: decode gateway envelope: %v", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after gateway envelope", ErrParse)
	}

	g.logger.Debug("gateway generate returned", zap.Int("bytes", len(body)))
	return DecodeMatches(genResp.Text)
}
