package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/storepro/storefront/internal/api/middleware"
	"github.com/storepro/storefront/internal/errors"
	"github.com/storepro/storefront/internal/models"
	service "github.com/storepro/storefront/internal/services"
	"github.com/storepro/storefront/internal/utils"
	"github.com/storepro/storefront/internal/utils/response"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		session, err := h.authService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			logger.Warn("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Login succeeded", slog.String("username", req.Username))
		response.Success(w, http.StatusOK, session)

	}
}

func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session := h.authService.Logout(r.Context())

		middleware.LoggerFromContext(r.Context()).Info("Logged out")
		response.Success(w, http.StatusOK, session)

	}
}

func (h *AuthHandler) ClearError() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.authService.ClearError(r.Context()))
	}
}

func (h *AuthHandler) Session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.authService.Session())
	}
}
