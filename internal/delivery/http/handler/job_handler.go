package handler

import (
	"errors"
	"time"

	"connectus/internal/delivery/http/middleware"
	"connectus/internal/pkg/response"
	"connectus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Budget      string   `json:"budget"`
	Salary      string   `json:"salary"`
	Deadline    string   `json:"deadline"`
	TxSignature string   `json:"tx_signature"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/mine", h.Mine)
	r.Get("/:id", h.Get)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid deadline", nil, err)
	}

	j, err := h.uc.Create(c.Context(), userID, usecase.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		Budget:      req.Budget,
		Salary:      req.Salary,
		Deadline:    deadline,
		TxSignature: req.TxSignature,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job posted", j)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) Mine(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	jobs, err := h.uc.ListMine(c.Context(), userID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

// parseDeadline accepts RFC 3339 timestamps and bare dates. A bare date means
// end of that day UTC.
func parseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("deadline required")
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Second), nil
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrDeadlineNotFuture):
		return middleware.NewAppError(fiber.StatusBadRequest, "Deadline must be in the future", nil, err)
	case errors.Is(err, usecase.ErrWalletMissing):
		return middleware.NewAppError(fiber.StatusBadRequest, "Connect a wallet on your profile before posting", nil, err)
	case errors.Is(err, usecase.ErrDuplicateTransaction):
		return middleware.NewAppError(fiber.StatusConflict, "Transaction already used for a job posting", nil, err)
	case errors.Is(err, usecase.ErrPaymentUnverified):
		return middleware.NewAppError(fiber.StatusPaymentRequired, "Payment could not be verified", nil, err)
	case errors.Is(err, usecase.ErrPaymentUnreachable):
		return middleware.NewAppError(fiber.StatusBadGateway, response.MessageBadGateway, nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
