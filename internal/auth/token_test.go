package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	s := NewSigner([]byte("test-key"), time.Hour)

	token, err := s.GenerateSessionToken("session-1")
	require.NoError(t, err)

	claims, err := s.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "mbaconnect-api", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateSessionTokenRejects(t *testing.T) {
	s := NewSigner([]byte("test-key"), time.Hour)
	good, err := s.GenerateSessionToken("session-1")
	require.NoError(t, err)

	other, err := NewSigner([]byte("other-key"), time.Hour).GenerateSessionToken("session-1")
	require.NoError(t, err)

	expiredSigner := NewSigner([]byte("test-key"), time.Hour)
	expiredSigner.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSigner.GenerateSessionToken("session-1")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{SessionID: "session-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	for name, token := range map[string]string{
		"empty":     "",
		"garbage":   "not-a-jwt",
		"wrong key": other,
		"expired":   expired,
		"alg none":  none,
		"tampered":  tampered,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.ValidateSessionToken(token)
			assert.ErrorIs(t, err, ErrInvalidSessionToken)
		})
	}
}

func TestSecretFromEnv(t *testing.T) {
	t.Setenv("TEST_SESSION_SECRET", "from-env")
	key, err := SecretFromEnv("TEST_SESSION_SECRET", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []byte("from-env"), key)

	t.Setenv("TEST_SESSION_SECRET", "")
	a, err := SecretFromEnv("TEST_SESSION_SECRET", zap.NewNop())
	require.NoError(t, err)
	b, err := SecretFromEnv("TEST_SESSION_SECRET", zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
