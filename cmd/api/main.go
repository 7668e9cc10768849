package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "MBAConnect_SeniorMatching/docs"
	"MBAConnect_SeniorMatching/internal/auth"
	"MBAConnect_SeniorMatching/internal/config"
	"MBAConnect_SeniorMatching/internal/handler"
	"MBAConnect_SeniorMatching/internal/llm"
	"MBAConnect_SeniorMatching/internal/logger"
	"MBAConnect_SeniorMatching/internal/metrics"
	"MBAConnect_SeniorMatching/internal/middleware"
	"MBAConnect_SeniorMatching/internal/roster"
	"MBAConnect_SeniorMatching/internal/session"
)

// @title        MBA Connect Senior Matching API
// @version      1.0
// @description  MBA 신입생 프로필을 받아 LLM 으로 선배 멘토 상위 5명을 매칭하는 API
// @host         localhost:8080
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	seniors, err := roster.Load()
	if err != nil {
		log.Fatal("roster load failed", zap.Error(err))
	}
	log.Info("roster loaded", zap.Int("seniors", seniors.Len()))

	matcher := newMatcher(cfg.LLM, log)

	secret, err := auth.SecretFromEnv(cfg.Session.SecretEnv, log)
	if err != nil {
		log.Fatal("session secret unavailable", zap.Error(err))
	}
	signer := auth.NewSigner(secret, auth.DefaultTokenTTL)

	store := session.NewStore(cfg.Session.IdleTTL)
	metrics.RegisterSessionGauge(store.Len)

	controller := session.NewController(matcher, seniors, session.ControllerOptions{
		RequestTimeout: cfg.LLM.RequestTimeout,
		Observer:       metrics.MatchObserver{Provider: cfg.LLM.Provider},
	}, log)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))

	handler.New(controller, seniors, handler.Options{AllowedOrigins: cfg.Server.AllowedOrigins}, log).
		Register(router, handler.Middlewares{
			Session: middleware.SessionMiddleware(store, signer, middleware.CookieConfig{
				Name:   cfg.Session.CookieName,
				Secure: cfg.Session.Secure,
			}, log),
			SubmitLimit: middleware.SubmitRateLimit(cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.Burst, log),
		})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Info("server listening",
			zap.String("address", cfg.Server.Address),
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown failed", zap.Error(err))
	}
	// 진행 중인 매칭 요청은 끝까지 기다리되 종료 타임아웃을 넘기지 않음
	if err := controller.WaitContext(ctx); err != nil {
		log.Warn("match requests still in flight at shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func newMatcher(cfg config.LLMConfig, log *zap.Logger) llm.Matcher {
	switch cfg.Provider {
	case config.ProviderGateway:
		return llm.NewGatewayMatcher(llm.GatewayConfig{
			BaseURL:     cfg.GatewayURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			APIKeyEnv:   cfg.APIKeyEnv,
		}, log)
	default:
		return llm.NewGeminiMatcher(llm.GeminiConfig{
			Model:       cfg.Model,
			Temperature: float32(cfg.Temperature),
			APIKeyEnv:   cfg.APIKeyEnv,
		}, log)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			break
		}
	}
	if !c.AllowAllOrigins {
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}
	return c
}
