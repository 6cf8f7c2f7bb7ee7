package handler

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/fadilmartias/casting-intake/internal/dto"
	"github.com/fadilmartias/casting-intake/internal/middleware"
	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/fadilmartias/casting-intake/internal/usecase"
	"github.com/fadilmartias/casting-intake/internal/util"
	"github.com/gofiber/fiber/v2"
)

type IntakeHandler struct {
	uc         *usecase.IntakeUsecase
	cookieName string
}

func NewIntakeHandler(uc *usecase.IntakeUsecase, cookieName string) *IntakeHandler {
	return &IntakeHandler{uc: uc, cookieName: cookieName}
}

func (h *IntakeHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/intake", middleware.Session(h.uc, h.cookieName))
	api.Get("/", h.View)
	api.Post("/login", h.Login)
	api.Patch("/dossier", h.UpdateDossier)
	api.Post("/analyze", h.Analyze)
	api.Post("/submit", h.Submit)
	api.Post("/reset", h.Reset)
}

func (h *IntakeHandler) View(c *fiber.Ctx) error {
	s := middleware.CurrentSession(c)
	return h.respond(c, "Success get intake", s.View())
}

func (h *IntakeHandler) Login(c *fiber.Ctx) error {
	view, err := h.uc.Login(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return h.fail(c, "cannot open dossier", err)
	}
	return h.respond(c, "Success login", view)
}

func (h *IntakeHandler) UpdateDossier(c *fiber.Ctx) error {
	fields := map[string]string{}
	if err := c.BodyParser(&fields); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid dossier payload",
		}, err)
	}

	view, err := h.uc.UpdateDossier(middleware.CurrentSession(c), fields)
	if err != nil {
		return h.fail(c, "cannot update dossier", err)
	}
	return h.respond(c, "Success update dossier", view)
}

func (h *IntakeHandler) Analyze(c *fiber.Ctx) error {
	view, err := h.uc.AnalyzeMotivation(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return h.fail(c, "cannot analyze motivation", err)
	}
	return h.respond(c, "Success analyze motivation", view)
}

// Submit reads the dashboard form. Photo files are only checked for
// presence; their content is never read or kept.
func (h *IntakeHandler) Submit(c *fiber.Ctx) error {
	sub := model.Submission{Fields: map[string]string{}}

	if form, err := c.MultipartForm(); err == nil {
		for _, name := range model.EditableFields {
			if values, ok := form.Value[name]; ok && len(values) > 0 {
				sub.Fields[name] = values[0]
			}
		}
		sub.PhotoFront = hasFile(form, "photo_front")
		sub.PhotoProfile = hasFile(form, "photo_profile")
	}
	sub.Consent = isChecked(c.FormValue("consent"))

	view, err := h.uc.Submit(middleware.CurrentSession(c), sub)
	if err != nil {
		return h.fail(c, "cannot submit dossier", err)
	}
	return h.respond(c, "Dossier transmis", view)
}

func (h *IntakeHandler) Reset(c *fiber.Ctx) error {
	next := h.uc.Reset(middleware.CurrentSession(c))
	middleware.SetSessionCookie(c, h.cookieName, next)
	return h.respond(c, "Success reset intake", next.View())
}

func (h *IntakeHandler) respond(c *fiber.Ctx, message string, view model.SessionView) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    dto.NewIntakeViewDTO(view, usecase.HostName),
	})
}

func (h *IntakeHandler) fail(c *fiber.Ctx, message string, err error) error {
	var fieldErrs model.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnprocessableEntity,
			Message: message,
		}, util.NewFormError("Veuillez compléter les champs obligatoires", fieldErrs))
	case errors.Is(err, model.ErrAnalysisInProgress):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "Analyse en cours...",
		}, err)
	case errors.Is(err, model.ErrInvalidTransition):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: message,
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: message}, err)
}

func hasFile(form *multipart.Form, field string) bool {
	for _, fh := range form.File[field] {
		if fh.Filename != "" && fh.Size > 0 {
			return true
		}
	}
	return false
}

func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
