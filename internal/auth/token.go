/* 세션 쿠키에 담을 JWT 생성 및 검증. 사용자 인증이 아니라 세션 ID 위변조 방지용 */

package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const (
	issuer  = "mbaconnect-api"
	subject = "browser_session"

	// DefaultTokenTTL is how long a session cookie stays valid without being re-issued.
	DefaultTokenTTL = 24 * time.Hour
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims는 JWT 페이로드, 세션 ID만 포함
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewSigner(key []byte, ttl time.Duration) *Signer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Signer{key: key, ttl: ttl, now: time.Now}
}

// SecretFromEnv reads the signing key from the named variable. When it is
// unset a random key is generated, so cookies do not survive a restart.
func SecretFromEnv(name string, log *zap.Logger) ([]byte, error) {
	if v := os.Getenv(name); v != "" {
		return []byte(v), nil
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("SecretFromEnv(): generate session key: %w", err)
	}
	log.Warn("session secret is not set, using a random per-process key", zap.String("env", name))
	return key, nil
}

func (s *Signer) TTL() time.Duration { return s.ttl }

// GenerateSessionToken signs a token for sessionID.
func (s *Signer) GenerateSessionToken(sessionID string) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// ValidateSessionToken checks signature, algorithm and expiry and returns the claims.
func (s *Signer) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if !token.Valid || claims.SessionID == "" || claims.Issuer != issuer {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
