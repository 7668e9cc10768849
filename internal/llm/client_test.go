package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc, env map[string]string) *GatewayMatcher {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewGatewayMatcher(GatewayConfig{BaseURL: srv.URL + "/", Model: "test-model", Temperature: 0.2}, zap.NewNop())
	g.lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	return g
}

func TestGatewayMatcherSuccess(t *testing.T) {
	var got GenerateRequest
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GenerateResponse{
			Text: `[{"seniorId":"s1","matchScore":40,"reason":"r1"},{"seniorId":"s4","matchScore":90,"reason":"r4"}]`,
		})
	}, map[string]string{"API_KEY": "secret"})

	matches, err := g.Match(context.Background(), testStudent(), testSeniors())
	require.NoError(t, err)
	assert.Equal(t, []string{"s4", "s1"}, ids(matches))

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, "application/json", got.ResponseMIMEType)
	assert.InDelta(t, 0.2, got.Temperature, 1e-9)
	assert.Contains(t, got.Prompt, "Rahul Sharma")
	assert.JSONEq(t, matchResponseSchema, string(got.ResponseSchema))
}

func TestGatewayMatcherMissingCredentialMakesNoRequest(t *testing.T) {
	called := false
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, map[string]string{})

	_, err := g.Match(context.Background(), testStudent(), testSeniors())
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.False(t, called)
}

func TestGatewayMatcherFailureKinds(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "non 200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
			want: ErrUpstream,
		},
		{
			name:    "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			want:    ErrEmptyResponse,
		},
		{
			name: "empty text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"text":""}`))
			},
			want: ErrEmptyResponse,
		},
		{
			name: "envelope not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>bad gateway</html>`))
			},
			want: ErrParse,
		},
		{
			name: "unknown envelope field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"text":"[]","usage":{}}`))
			},
			want: ErrParse,
		},
		{
			name: "text not a match array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"text":"{\"matches\":[]}"}`))
			},
			want: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGateway(t, tt.handler, map[string]string{"API_KEY": "secret"})
			matches, err := g.Match(context.Background(), testStudent(), testSeniors())
			assert.Nil(t, matches)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGatewayMatcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := NewGatewayMatcher(GatewayConfig{BaseURL: url, APIKeyEnv: "GATEWAY_KEY"}, zap.NewNop())
	g.lookupEnv = func(k string) (string, bool) { return "k", k == "GATEWAY_KEY" }

	_, err := g.Match(context.Background(), testStudent(), testSeniors())
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGatewayMatcherHonoursContextCancellation(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, map[string]string{"API_KEY": "secret"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Match(ctx, testStudent(), testSeniors())
	assert.ErrorIs(t, err, ErrUpstream)
}
