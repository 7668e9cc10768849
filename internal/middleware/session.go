package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/auth"
	"MBAConnect_SeniorMatching/internal/session"
)

const sessionContextKey = "session"

type CookieConfig struct {
	Name   string
	Secure bool
}

// SessionMiddleware binds every request to a browser session. The session ID
// travels in a signed cookie; a missing, invalid or expired cookie (or one
// whose session was evicted) starts a fresh session in Intake.
func SessionMiddleware(store *session.Store, signer *auth.Signer, cookie CookieConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID string
		var issuedAt time.Time
		if raw, err := c.Cookie(cookie.Name); err == nil && raw != "" {
			claims, err := signer.ValidateSessionToken(raw)
			if err != nil {
				log.Debug("SessionMiddleware(): discarding session cookie", zap.Error(err))
			} else {
				sessionID = claims.SessionID
				if claims.IssuedAt != nil {
					issuedAt = claims.IssuedAt.Time
				}
			}
		}

		s, created := store.GetOrCreate(sessionID)

		// 새 세션이거나 토큰 수명이 절반 이상 지났으면 재발급
		if created || time.Since(issuedAt) > signer.TTL()/2 {
			token, err := signer.GenerateSessionToken(s.ID())
			if err != nil {
				log.Error("SessionMiddleware(): failed to sign session token", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookie.Name, token, int(signer.TTL().Seconds()), "/", "", cookie.Secure, true)
		}
		if created {
			log.Debug("SessionMiddleware(): new session", zap.String("session", s.ID()))
		}

		c.Set(sessionContextKey, s)
		c.Next()
	}
}

// CurrentSession returns the session bound by SessionMiddleware.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
