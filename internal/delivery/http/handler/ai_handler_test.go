package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"connectus/internal/delivery/http/middleware"
	"connectus/internal/domain/matching"
	"connectus/internal/domain/payment"
	"connectus/internal/domain/user"
	"connectus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubMatchingUsecase struct {
	res matching.Result
	err error
}

func (s stubMatchingUsecase) CalculateMatch(_ context.Context, _, _ uuid.UUID) (matching.Result, error) {
	return s.res, s.err
}

type stubUserUsecase struct {
	skills []string
	err    error
}

func (s stubUserUsecase) GetProfile(_ context.Context, _ uuid.UUID) (user.User, error) {
	return user.User{}, nil
}

func (s stubUserUsecase) UpdateProfile(_ context.Context, _ uuid.UUID, _ usecase.UpdateProfileInput) (user.User, error) {
	return user.User{}, nil
}

func (s stubUserUsecase) PaymentHistory(_ context.Context, _ uuid.UUID) ([]payment.Payment, error) {
	return nil, nil
}

func (s stubUserUsecase) ExtractSkills(_ context.Context, _ string) ([]string, error) {
	return s.skills, s.err
}

func newExtractSkillsApp(users usecase.UserUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewAIHandler(stubMatchingUsecase{}, users)
	h.RegisterPublicRoutes(app.Group("/ai"))

	return app
}

func TestExtractSkillsOpenToAnonymous(t *testing.T) {
	app := newExtractSkillsApp(stubUserUsecase{skills: []string{"react", "solana"}})

	req := httptest.NewRequest(fiber.MethodPost, "/ai/extract-skills", strings.NewReader(`{"text":"Built React dapps on Solana"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d for request without credentials", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		Data struct {
			Skills []string `json:"skills"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Skills) != 2 {
		t.Errorf("skills = %v, want two entries", body.Data.Skills)
	}
}

func TestExtractSkillsRejectsEmptyText(t *testing.T) {
	app := newExtractSkillsApp(stubUserUsecase{err: usecase.ErrInvalidInput})

	req := httptest.NewRequest(fiber.MethodPost, "/ai/extract-skills", strings.NewReader(`{"text":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
}
