package handler

import (
	"errors"

	"connectus/internal/delivery/http/dto"
	"connectus/internal/delivery/http/middleware"
	"connectus/internal/pkg/response"
	"connectus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AIHandler groups the intelligence endpoints: match scoring and skill
// extraction.
type AIHandler struct {
	matching usecase.MatchingUsecase
	users    usecase.UserUsecase
}

type matchJobRequest struct {
	JobID  string `json:"job_id"`
	UserID string `json:"user_id"`
}

type extractSkillsRequest struct {
	Text string `json:"text"`
}

func NewAIHandler(matching usecase.MatchingUsecase, users usecase.UserUsecase) *AIHandler {
	return &AIHandler{matching: matching, users: users}
}

// RegisterRoutes mounts the endpoints that act on the caller's identity.
func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/match-job", h.MatchJob)
}

// RegisterPublicRoutes mounts skill extraction, which needs no account.
func (h *AIHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/extract-skills", h.ExtractSkills)
}

// MatchJob scores a user against a job. The body may name any user_id; it
// defaults to the caller.
func (h *AIHandler) MatchJob(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req matchJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	if req.UserID != "" {
		userID, err = uuid.Parse(req.UserID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
		}
	}

	return h.respondMatch(c, userID, jobID)
}

// MatchJobByPath is the convenience variant mounted under the jobs group,
// always scoring the caller.
func (h *AIHandler) MatchJobByPath(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	return h.respondMatch(c, userID, jobID)
}

func (h *AIHandler) respondMatch(c fiber.Ctx, userID, jobID uuid.UUID) error {
	res, err := h.matching.CalculateMatch(c.Context(), userID, jobID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		case errors.Is(err, usecase.ErrJobNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(res))
}

// ExtractSkills pulls known skill terms out of free text. It is open to
// anonymous callers so the signup form can suggest skills before an account
// exists.
func (h *AIHandler) ExtractSkills(c fiber.Ctx) error {
	var req extractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills, err := h.users.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Text is required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"skills": skills})
}
