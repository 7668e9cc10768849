package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type stubGenerator struct {
	calls  int
	model  string
	prompt string
	config *genai.GenerateContentConfig
	resp   *genai.GenerateContentResponse
	err    error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	s.calls++
	s.model = model
	s.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		s.prompt = contents[0].Parts[0].Text
	}
	return s.resp, s.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func newTestGemini(env map[string]string, gen *stubGenerator) (*GeminiMatcher, *int) {
	m := NewGeminiMatcher(GeminiConfig{Temperature: DefaultTemperature}, zap.NewNop())
	m.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	factoryCalls := 0
	m.newGenerator = func(ctx context.Context, apiKey string) (generator, error) {
		factoryCalls++
		return gen, nil
	}
	return m, &factoryCalls
}

func TestGeminiMatcherSuccess(t *testing.T) {
	gen := &stubGenerator{resp: textResponse(`[
		{"seniorId":"s1","matchScore":55,"reason":"Different field."},
		{"seniorId":"s4","matchScore":93,"reason":"Same pivot."}
	]`)}
	m, _ := newTestGemini(map[string]string{"API_KEY": "k"}, gen)

	got, err := m.Match(context.Background(), testStudent(), testSeniors())
	require.NoError(t, err)
	assert.Equal(t, []string{"s4", "s1"}, ids(got))

	assert.Equal(t, DefaultGeminiModel, gen.model)
	require.NotNil(t, gen.config)
	require.NotNil(t, gen.config.Temperature)
	assert.InDelta(t, 0.2, *gen.config.Temperature, 1e-6)
	assert.Equal(t, "application/json", gen.config.ResponseMIMEType)
	require.NotNil(t, gen.config.ResponseSchema)
	assert.Equal(t, genai.TypeArray, gen.config.ResponseSchema.Type)
	assert.ElementsMatch(t, []string{"seniorId", "matchScore", "reason"}, gen.config.ResponseSchema.Items.Required)
	assert.Contains(t, gen.prompt, "Rahul Sharma")
}

func TestGeminiMatcherMissingCredentialFailsBeforeNetwork(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"unset": {},
		"blank": {"API_KEY": "  "},
	} {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{}
			m, factoryCalls := newTestGemini(env, gen)

			got, err := m.Match(context.Background(), testStudent(), testSeniors())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Zero(t, *factoryCalls)
			assert.Zero(t, gen.calls)
		})
	}
}

func TestGeminiMatcherFailureKinds(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubGenerator
		want error
	}{
		{name: "transport error", gen: &stubGenerator{err: errors.New("connection reset")}, want: ErrUpstream},
		{name: "nil response", gen: &stubGenerator{}, want: ErrEmptyResponse},
		{name: "no candidates", gen: &stubGenerator{resp: &genai.GenerateContentResponse{}}, want: ErrEmptyResponse},
		{name: "empty text", gen: &stubGenerator{resp: textResponse("")}, want: ErrEmptyResponse},
		{name: "non json text", gen: &stubGenerator{resp: textResponse("I could not decide.")}, want: ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestGemini(map[string]string{"API_KEY": "k"}, tt.gen)
			_, err := m.Match(context.Background(), testStudent(), testSeniors())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGeminiMatcherClientCreationFailure(t *testing.T) {
	m, _ := newTestGemini(map[string]string{"API_KEY": "k"}, nil)
	m.newGenerator = func(ctx context.Context, apiKey string) (generator, error) {
		return nil, errors.New("bad backend")
	}
	_, err := m.Match(context.Background(), testStudent(), testSeniors())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestGeminiMatcherReusesClientPerCredential(t *testing.T) {
	env := map[string]string{"API_KEY": "first"}
	gen := &stubGenerator{resp: textResponse(`[]`)}
	m, factoryCalls := newTestGemini(env, gen)

	for i := 0; i < 3; i++ {
		_, err := m.Match(context.Background(), testStudent(), testSeniors())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, *factoryCalls)

	env["API_KEY"] = "rotated"
	_, err := m.Match(context.Background(), testStudent(), testSeniors())
	require.NoError(t, err)
	assert.Equal(t, 2, *factoryCalls)
}
