/**
* Name:        controller.go
* Description: 제출된 프로필로 매칭 요청을 비동기로 실행하고 세션 상태를 전환
* Workflow:    Submit(validate -> Begin) -> goroutine(Match -> Resolve | Fail)
 */

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/llm"
	"MBAConnect_SeniorMatching/internal/models"
	"MBAConnect_SeniorMatching/internal/roster"
)

// GenericFailureMessage is shown for every kind of match failure.
const GenericFailureMessage = "Failed to generate matches. Please check your API Key and try again."

// Observer receives match request lifecycle events (metrics).
type Observer interface {
	MatchStarted()
	MatchFinished(code string, results int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) MatchStarted()                            {}
func (nopObserver) MatchFinished(string, int, time.Duration) {}

type ControllerOptions struct {
	// RequestTimeout bounds one remote call. Zero waits forever.
	RequestTimeout time.Duration
	Observer       Observer
}

type Controller struct {
	matcher  llm.Matcher
	roster   *roster.Roster
	timeout  time.Duration
	observer Observer
	logger   *zap.Logger

	wg sync.WaitGroup
}

func NewController(matcher llm.Matcher, r *roster.Roster, opts ControllerOptions, log *zap.Logger) *Controller {
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &Controller{
		matcher:  matcher,
		roster:   r,
		timeout:  opts.RequestTimeout,
		observer: observer,
		logger:   log.Named("session"),
	}
}

// Submit validates the profile and, if the session is in Intake, starts the
// match request in the background. Validation failures return
// models.FieldErrors and leave the session untouched. A session that is not in
// Intake returns ErrInvalidTransition.
func (c *Controller) Submit(s *Session, profile models.StudentProfile) error {
	profile = profile.Normalized()
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := s.Begin(); err != nil {
		return err
	}

	c.logger.Info("Submit(): match request started",
		zap.String("session", s.ID()),
		zap.String("targetField", profile.TargetField),
		zap.Int("roster", c.roster.Len()),
	)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(s, profile)
	}()
	return nil
}

func (c *Controller) run(s *Session, profile models.StudentProfile) {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.observer.MatchStarted()
	start := time.Now()
	results, err := c.match(ctx, profile)
	elapsed := time.Since(start)
	c.observer.MatchFinished(llm.Code(err), len(results), elapsed)

	log := c.logger.With(zap.String("session", s.ID()), zap.Duration("latency", elapsed))
	if err != nil {
		log.Warn("run(): match request failed", zap.String("code", llm.Code(err)), zap.Error(err))
		if ferr := s.Fail(GenericFailureMessage, &profile); ferr != nil {
			log.Error("run(): failed to record failure", zap.Error(ferr))
		}
		return
	}

	log.Info("run(): match request finished", zap.Int("results", len(results)))
	if rerr := s.Resolve(results); rerr != nil {
		log.Error("run(): failed to record results", zap.Error(rerr))
	}
}

// match calls the matcher and normalises whatever it returns.
func (c *Controller) match(ctx context.Context, profile models.StudentProfile) (results []models.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			results, err = nil, fmt.Errorf("%w: matcher panic: %v", llm.ErrUpstream, r)
		}
	}()

	results, err = c.matcher.Match(ctx, profile, c.roster.All())
	if err != nil {
		if llm.Code(err) == "UNKNOWN_ERROR" {
			err = fmt.Errorf("%w: %v", llm.ErrUpstream, err)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: request timed out after %s: %v", llm.ErrUpstream, c.timeout, err)
		}
		return nil, err
	}

	// 모델이 준 순서는 신뢰하지 않음
	llm.SortByScore(results)
	return results, nil
}

// Reset returns a finished session to an empty Intake.
func (c *Controller) Reset(s *Session) error {
	if err := s.Reset(); err != nil {
		return err
	}
	c.logger.Debug("Reset(): session reset", zap.String("session", s.ID()))
	return nil
}

// Wait blocks until every in-flight match request has resolved.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// WaitContext is Wait bounded by ctx, used on shutdown.
func (c *Controller) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
