package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/signup", authHandler.Signup)
	r.Post("/api/login", authHandler.Login)
}
