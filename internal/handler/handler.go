/**
* Name:        handler.go
* Description: Gin HTTP 핸들러 묶음과 라우트 등록
* Workflow:    페이지(/, /matches, /reset), JSON API(/api/*), 세션 스트림(/ws/session)
 */

package handler

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/middleware"
	"MBAConnect_SeniorMatching/internal/roster"
	"MBAConnect_SeniorMatching/internal/session"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// ValidationErrorResponse is returned with 422 when the profile is rejected.
type ValidationErrorResponse struct {
	Error  string            `json:"error" example:"invalid student profile: name: This field is required"`
	Fields map[string]string `json:"fields"`
}

type Options struct {
	// AllowedOrigins for the websocket upgrade. "*" allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	controller *session.Controller
	roster     *roster.Roster
	logger     *zap.Logger
	pages      *template.Template
	upgrader   websocket.Upgrader
}

func New(controller *session.Controller, r *roster.Roster, opts Options, log *zap.Logger) *Handler {
	h := &Handler{
		controller: controller,
		roster:     r,
		logger:     log.Named("handler"),
		pages:      template.Must(template.New("pages").ParseFS(templateFS, "templates/*.tmpl")),
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: originChecker(opts.AllowedOrigins),
	}
	return h
}

// Middlewares wired around the session routes. Nil entries are skipped.
type Middlewares struct {
	Session     gin.HandlerFunc
	SubmitLimit gin.HandlerFunc
}

func (h *Handler) Register(r *gin.Engine, mw Middlewares) {
	r.SetHTMLTemplate(h.pages)
	r.GET("/healthz", h.Health)

	g := r.Group("/", chain(mw.Session)...)
	{
		g.GET("/", h.Index)
		g.POST("/matches", chain(h.admitForm, mw.SubmitLimit, h.SubmitMatchForm)...)
		g.POST("/reset", h.ResetForm)
		g.GET("/ws/session", h.HandleSessionStream)
	}

	api := g.Group("/api")
	{
		api.GET("/session", h.GetSession)
		api.POST("/matches", chain(h.admitJSON, mw.SubmitLimit, h.SubmitMatch)...)
		api.POST("/reset", h.Reset)
		api.GET("/roster", h.GetRoster)
		api.GET("/target-fields", h.GetTargetFields)
	}
}

func chain(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(handlers))
	for _, hf := range handlers {
		if hf != nil {
			out = append(out, hf)
		}
	}
	return out
}

// currentSession aborts with 500 when the session middleware is missing.
func (h *Handler) currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		h.logger.Error("currentSession(): no session bound to request", zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return nil, false
	}
	return s, true
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(r *http.Request) bool { return true }
		}
		set[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set[origin]; ok {
			return true
		}
		// same-origin page
		u, err := url.Parse(origin)
		return err == nil && strings.EqualFold(u.Host, r.Host)
	}
}
