package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hoangvt/caulong/pkg/middleware"
	"github.com/hoangvt/caulong/pkg/response"
)

var validate = validator.New()

// Handler handles admin authentication
type Handler struct {
	auth          *middleware.Auth
	adminPassword string
}

// NewHandler creates a new auth handler
func NewHandler(auth *middleware.Auth, adminPassword string) *Handler {
	return &Handler{auth: auth, adminPassword: adminPassword}
}

// Routes returns the router for auth endpoints. Login is public; verify
// sits behind RequireAuth in the main router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	return r
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login
// @Summary      Admin login
// @Description  Exchange the admin password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} response.APIResponse{data=LoginResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		response.Unauthorized(w, "Invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(req.Username, "admin")
	if err != nil {
		response.InternalError(w, "Failed to issue token")
		return
	}

	response.JSON(w, http.StatusOK, &LoginResponse{Token: token})
}

// Verify handles GET /auth/verify
// @Summary      Verify the current token
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Security     BearerAuth
// @Router       /auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"username": claims.Username,
		"role":     claims.Role,
	})
}
