package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/internal/usecase"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, deps usecase.Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Feature routes
	wireAuth(r, handler.Auth)
	wireCatalog(r, handler.Catalog)
	wireCart(r, handler.Cart)
	wireOrder(r, handler.Order)
	wireWishlist(r, handler.Wishlist)
	wirePayment(r, handler.Payment)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
