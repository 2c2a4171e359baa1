package handler

import (
	"errors"

	"connectus/internal/delivery/http/middleware"
	"connectus/internal/pkg/response"
	"connectus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Apply)
	r.Get("/mine", h.Mine)
	r.Get("/received", h.Received)
	r.Get("/job/:job_id", h.ForJob)
}

// Apply accepts a multipart form: job_id, contact_email, contact_phone and the
// resume file. The resume is mandatory.
func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.FormValue("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	in := usecase.ApplyInput{
		JobID:        jobID,
		ContactEmail: c.FormValue("contact_email"),
		ContactPhone: c.FormValue("contact_phone"),
	}

	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable resume upload", nil, err)
		}
		defer f.Close()
		in.ResumeName = fh.Filename
		in.Resume = f
	}

	a, err := h.uc.Apply(c.Context(), userID, in)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", a)
}

func (h *ApplicationHandler) Mine(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.MyApplications(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) Received(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.ApplicationsReceived(c.Context(), userID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) ForJob(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	apps, err := h.uc.ApplicationsForJob(c.Context(), userID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrJobDeadlinePassed):
		return middleware.NewAppError(fiber.StatusBadRequest, "Job deadline has passed", nil, err)
	case errors.Is(err, usecase.ErrOwnJobApplication):
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot apply to your own job", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrResumeRequired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedResume):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported resume file type", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
