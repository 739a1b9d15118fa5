package adaptor

import (
	"net/http"

	"media-review/internal/dto/request"
	"media-review/internal/usecase"
	"media-review/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /auth/email
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		h.log.Warn("Registration failed", zap.Error(err), zap.String("email", req.Email))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Confirmation code sent", map[string]string{"email": req.Email})
}

// ObtainToken handles POST /auth/token
func (h *AuthHandler) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var req request.ObtainTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tokenResp, err := h.service.ObtainToken(r.Context(), &req)
	if err != nil {
		h.log.Warn("Token request failed", zap.Error(err), zap.String("email", req.Email))
		handleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Token issued", tokenResp)
}
