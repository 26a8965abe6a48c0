package wire

import (
	"net/http"

	"clothing-shop/internal/adaptor"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/middleware"
	"clothing-shop/pkg/rabbitmq"
	"clothing-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the fully wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, events *rabbitmq.Publisher) *App {
	service := usecase.NewService(repo, config, logger, events)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// One authentication middleware shared by every protected route.
	jwts := utils.NewJWTManager(config.JWT)
	auth := middleware.Authenticate(repo.User, jwts, logger)

	wireAuth(r, handler.Auth, auth)
	wireClient(r, handler.Client, auth)
	wireProduct(r, handler.Product, auth)
	wireOrder(r, handler.Order, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
