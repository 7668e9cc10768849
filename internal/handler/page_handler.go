package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"MBAConnect_SeniorMatching/internal/middleware"
	"MBAConnect_SeniorMatching/internal/models"
	"MBAConnect_SeniorMatching/internal/presenter"
	"MBAConnect_SeniorMatching/internal/session"
)

const pageTemplate = "index.tmpl"

type pageData struct {
	Phase        string
	View         presenter.SessionView
	Form         models.StudentProfile
	FieldErrors  models.FieldErrors
	TargetFields []models.TargetFieldOption
	RosterSize   int
	Notice       string
	EmptyNotice  string
}

func (h *Handler) pageFor(s *session.Session) pageData {
	view := presenter.Present(s.Snapshot(), h.roster)

	form := models.DefaultStudentProfile()
	if view.Draft != nil {
		form = *view.Draft
	}
	return pageData{
		Phase:        string(view.State),
		View:         view,
		Form:         form,
		TargetFields: models.TargetFields(),
		RosterSize:   h.roster.Len(),
		EmptyNotice:  presenter.EmptyNotice,
	}
}

// Index renders the page for the current session state.
func (h *Handler) Index(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, pageTemplate, h.pageFor(s))
}

// admitForm rejects invalid forms (422) and submissions outside Intake (409)
// before the submit limiter runs, so only accepted submissions spend quota.
func (h *Handler) admitForm(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	profile, ferrs := bindProfileForm(c)
	if ferrs == nil {
		ferrs = checkProfile(profile)
	}
	if ferrs != nil {
		h.renderIntakeErrors(c, s, profile, ferrs)
		c.Abort()
		return
	}
	if phase := s.Phase(); phase != session.PhaseIntake {
		h.renderNotice(c, s, http.StatusConflict, submitConflictMessage(phase))
		c.Abort()
		return
	}

	middleware.OnRateLimited(c, func(c *gin.Context) {
		h.renderNotice(c, s, http.StatusTooManyRequests, middleware.TooManySubmissionsMessage)
	})
	c.Set(admittedProfileKey, profile)
	c.Next()
}

// SubmitMatchForm handles the intake form post. Validation errors re-render
// the form with 422 and leave the session in Intake.
func (h *Handler) SubmitMatchForm(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}

	profile, ok := admittedProfile(c)
	if !ok {
		var ferrs models.FieldErrors
		if profile, ferrs = bindProfileForm(c); ferrs != nil {
			h.renderIntakeErrors(c, s, profile, ferrs)
			return
		}
	}

	err := h.controller.Submit(s, profile)
	var ferrs models.FieldErrors
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/")
	case errors.As(err, &ferrs):
		h.renderIntakeErrors(c, s, profile, ferrs)
	case errors.Is(err, session.ErrInvalidTransition):
		h.renderNotice(c, s, http.StatusConflict, submitConflictMessage(s.Phase()))
	default:
		h.logger.Error("SubmitMatchForm(): submit failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, pageTemplate, h.pageFor(s))
	}
}

// ResetForm handles the "Refine Search" button.
func (h *Handler) ResetForm(c *gin.Context) {
	s, ok := h.currentSession(c)
	if !ok {
		return
	}
	if err := h.controller.Reset(s); err != nil {
		h.renderNotice(c, s, http.StatusConflict, "Your match request is still being processed.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) renderIntakeErrors(c *gin.Context, s *session.Session, profile models.StudentProfile, ferrs models.FieldErrors) {
	page := h.pageFor(s)
	page.Form = profile
	page.FieldErrors = ferrs
	c.HTML(http.StatusUnprocessableEntity, pageTemplate, page)
}

func (h *Handler) renderNotice(c *gin.Context, s *session.Session, status int, notice string) {
	page := h.pageFor(s)
	page.Notice = notice
	c.HTML(status, pageTemplate, page)
}

// bindProfileForm binds the posted form. A non-numeric experience value is
// reported as a field error and the text inputs are kept for redisplay.
func bindProfileForm(c *gin.Context) (models.StudentProfile, models.FieldErrors) {
	var p models.StudentProfile
	if err := c.ShouldBindWith(&p, binding.Form); err != nil {
		p = models.StudentProfile{
			Name:            c.PostForm("name"),
			UndergradDegree: c.PostForm("undergradDegree"),
			PrevCompany:     c.PostForm("prevCompany"),
			PrevRole:        c.PostForm("prevRole"),
			TargetField:     c.PostForm("targetField"),
			Skills:          c.PostForm("skills"),
			Hobbies:         c.PostForm("hobbies"),
		}
		return p, models.FieldErrors{"workExperienceYears": "Must be a number"}
	}
	return p, nil
}

const admittedProfileKey = "admittedProfile"

func admittedProfile(c *gin.Context) (models.StudentProfile, bool) {
	v, ok := c.Get(admittedProfileKey)
	if !ok {
		return models.StudentProfile{}, false
	}
	p, ok := v.(models.StudentProfile)
	return p, ok
}

// checkProfile applies the same rules Controller.Submit does.
func checkProfile(p models.StudentProfile) models.FieldErrors {
	var ferrs models.FieldErrors
	if err := p.Normalized().Validate(); errors.As(err, &ferrs) {
		return ferrs
	}
	return nil
}

func submitConflictMessage(phase session.Phase) string {
	if phase == session.PhaseAwaitingResponse {
		return "A match request is already in progress."
	}
	return "Refine your search before submitting a new profile."
}
