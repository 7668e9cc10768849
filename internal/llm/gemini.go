package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"MBAConnect_SeniorMatching/internal/models"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultTemperature = 0.2
	DefaultAPIKeyEnv   = "API_KEY"
)

// generator is the slice of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiConfig struct {
	Model       string
	Temperature float32
	// APIKeyEnv names the environment variable holding the credential.
	// It is read on every call, never at startup.
	APIKeyEnv string
}

// GeminiMatcher ranks seniors with a single GenerateContent call.
type GeminiMatcher struct {
	config       GeminiConfig
	logger       *zap.Logger
	lookupEnv    func(string) (string, bool)
	newGenerator func(ctx context.Context, apiKey string) (generator, error)

	mu        sync.Mutex
	cachedKey string
	cachedGen generator
}

func NewGeminiMatcher(cfg GeminiConfig, log *zap.Logger) *GeminiMatcher {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = DefaultAPIKeyEnv
	}
	return &GeminiMatcher{
		config:       cfg,
		logger:       log.With(zap.String("matcher", "gemini"), zap.String("model", cfg.Model)),
		lookupEnv:    os.LookupEnv,
		newGenerator: newGenAIGenerator,
	}
}

func newGenAIGenerator(ctx context.Context, apiKey string) (generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

func (m *GeminiMatcher) Match(ctx context.Context, student models.StudentProfile, seniors []models.SeniorProfile) ([]models.MatchResult, error) {
	apiKey, ok := m.lookupEnv(m.config.APIKeyEnv)
	if !ok || strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: %s environment variable is not set", ErrConfiguration, m.config.APIKeyEnv)
	}

	prompt, err := BuildPrompt(student, seniors)
	if err != nil {
		return nil, err
	}

	gen, err := m.generatorFor(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", ErrConfiguration, err)
	}

	start := time.Now()
	resp, err := gen.GenerateContent(ctx, m.config.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(m.config.Temperature),
		ResponseMIMEType: responseMIMEType,
		ResponseSchema:   genaiResponseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", ErrUpstream, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: no response from model", ErrEmptyResponse)
	}

	m.logger.Debug("GenerateContent returned",
		zap.Int("seniors", len(seniors)),
		zap.Duration("latency", time.Since(start)),
	)
	return DecodeMatches(resp.Text())
}

// generatorFor reuses the client while the credential stays the same.
func (m *GeminiMatcher) generatorFor(ctx context.Context, apiKey string) (generator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cachedGen != nil && m.cachedKey == apiKey {
		return m.cachedGen, nil
	}
	gen, err := m.newGenerator(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	m.cachedKey, m.cachedGen = apiKey, gen
	return gen, nil
}
