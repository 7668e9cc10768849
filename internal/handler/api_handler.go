package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/models"
	"MBAConnect_SeniorMatching/internal/presenter"
	"MBAConnect_SeniorMatching/internal/session"
)

type RosterResponse struct {
	Count   int                    `json:"count" example:"12"`
	Seniors []models.SeniorProfile `json:"seniors"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Roster int    `json:"roster" example:"12"`
}

// GetSession godoc
// @Summary      현재 세션 상태 조회
// @Description  브라우저 세션의 상태(intake, awaiting_response, showing_results)와 결과 카드를 반환합니다.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  presenter.SessionView
// @Failure      500  {object}  handler.ErrorResponse
// @Router       /api/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, presenter.Present(s.Snapshot(), h.roster))
}

// admitJSON is the JSON counterpart of admitForm. The limiter's default JSON
// rejection is kept.
func (h *Handler) admitJSON(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	var profile models.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if ferrs := checkProfile(profile); ferrs != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Error: ferrs.Error(), Fields: ferrs})
		return
	}
	if phase := s.Phase(); phase != session.PhaseIntake {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": submitConflictMessage(phase)})
		return
	}

	c.Set(admittedProfileKey, profile)
	c.Next()
}

// SubmitMatch godoc
// @Summary      매칭 요청 제출
// @Description  학생 프로필을 제출하고 비동기 매칭을 시작합니다. 결과는 /api/session 또는 /ws/session 으로 확인합니다.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body models.StudentProfile true "학생 프로필"
// @Success      202  {object}  presenter.SessionView "awaiting_response 상태"
// @Failure      400  {object}  handler.ErrorResponse "JSON 파싱 실패"
// @Failure      409  {object}  handler.ErrorResponse "이미 진행 중인 요청이 있거나 결과 화면 상태"
// @Failure      422  {object}  handler.ValidationErrorResponse "필수 항목 누락 등"
// @Failure      429  {object}  handler.ErrorResponse "요청 한도 초과"
// @Router       /api/matches [post]
func (h *Handler) SubmitMatch(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	profile, ok := admittedProfile(c)
	if !ok {
		if err := c.ShouldBindJSON(&profile); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	err := h.controller.Submit(s, profile)
	var ferrs models.FieldErrors
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, presenter.Present(s.Snapshot(), h.roster))
	case errors.As(err, &ferrs):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{Error: ferrs.Error(), Fields: ferrs})
	case errors.Is(err, session.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": submitConflictMessage(s.Phase())})
	default:
		h.logger.Error("SubmitMatch(): submit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start match request"})
	}
}

// Reset godoc
// @Summary      결과 초기화 (Refine Search)
// @Description  결과를 지우고 세션을 intake 상태로 되돌립니다. 매칭 요청 진행 중에는 불가합니다.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  presenter.SessionView
// @Failure      409  {object}  handler.ErrorResponse "매칭 요청 진행 중"
// @Router       /api/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	if err := h.controller.Reset(s); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Match request is still in progress"})
		return
	}
	c.JSON(http.StatusOK, presenter.Present(s.Snapshot(), h.roster))
}

// GetRoster godoc
// @Summary      선배 로스터 조회
// @Tags         Roster
// @Produce      json
// @Success      200  {object}  handler.RosterResponse
// @Router       /api/roster [get]
func (h *Handler) GetRoster(c *gin.Context) {
	c.JSON(http.StatusOK, RosterResponse{Count: h.roster.Len(), Seniors: h.roster.All()})
}

// GetTargetFields godoc
// @Summary      희망 분야 목록
// @Tags         Roster
// @Produce      json
// @Success      200  {array}  models.TargetFieldOption
// @Router       /api/target-fields [get]
func (h *Handler) GetTargetFields(c *gin.Context) {
	c.JSON(http.StatusOK, models.TargetFields())
}

// Health godoc
// @Summary      헬스 체크
// @Tags         System
// @Produce      json
// @Success      200  {object}  handler.HealthResponse
// @Router       /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Roster: h.roster.Len()})
}
