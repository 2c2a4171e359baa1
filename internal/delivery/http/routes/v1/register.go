package v1

import (
	"connectus/internal/config"
	"connectus/internal/database"
	"connectus/internal/delivery/http/handler"
	"connectus/internal/delivery/http/middleware"
	"connectus/internal/domain/payment"
	"connectus/internal/infrastructure/assistant"
	"connectus/internal/infrastructure/nlp"
	"connectus/internal/pkg/jwt"
	"connectus/internal/repository"
	"connectus/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Deps carries everything the v1 API needs. The container assembles it once
// at startup.
type Deps struct {
	Config    config.Config
	DB        database.DB
	JWT       jwt.Service
	Verifier  payment.Verifier
	Responder assistant.Responder
	Extractor nlp.TermExtractor
	Resumes   usecase.ResumeSaver
	Cache     usecase.MatchScoreCache
	Notifier  EventNotifier
	Logger    *zap.Logger
}

// EventNotifier is the websocket fanout seen from the API wiring.
type EventNotifier interface {
	usecase.JobNotifier
	usecase.ApplicationNotifier
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(deps.DB)
	paymentRepo := repository.NewPostgresPaymentRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, deps.JWT)
	userUC := usecase.NewUserUsecase(userRepo, paymentRepo, deps.Extractor, deps.Cache, deps.Logger)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, paymentRepo, deps.Verifier, deps.Config.Solana.AdminWallet, deps.Notifier, deps.Logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo, deps.Resumes, deps.Notifier, deps.Logger)
	matchingUC := usecase.NewMatchingUsecase(userRepo, jobRepo, deps.Cache, deps.Logger)
	chatUC := usecase.NewChatUsecase(deps.Responder)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	aiHandler := handler.NewAIHandler(matchingUC, userUC)
	chatHandler := handler.NewChatHandler(chatUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	chatHandler.RegisterRoutes(r.Group("/chat"))
	aiHandler.RegisterPublicRoutes(r.Group("/ai"))

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/profile"))

	jobsGroup := protected.Group("/jobs")
	jobHandler.RegisterRoutes(jobsGroup)
	jobsGroup.Get("/:id/match", aiHandler.MatchJobByPath)

	applicationHandler.RegisterRoutes(protected.Group("/applications"))
	aiHandler.RegisterRoutes(protected.Group("/ai"))
}
