package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /api/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing required fields", validationErrors)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "signup")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", user)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Email and password are required", validationErrors)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", user)
}
