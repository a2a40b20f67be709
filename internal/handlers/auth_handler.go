package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"theark/internal/logger"
	"theark/internal/middleware"
	"theark/internal/services"
	"theark/internal/session"
)

// AuthHandler handles login and logout requests.
type AuthHandler struct {
	authService  services.AuthServicer
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie forces the Secure
// cookie attribute; it is also set for requests that arrive over TLS.
func NewAuthHandler(authService services.AuthServicer, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginPageResponse describes the public login surface.
type LoginPageResponse struct {
	LoginRequired bool              `json:"login_required"`
	LoginURL      string            `json:"login_url"`
	RedirectTo    string            `json:"redirect_to"`
	Fields        map[string]string `json:"fields"`
	Submit        string            `json:"submit"`
}

// LoginPage describes the login form
// @Summary     Login surface
// @Description Describe the public login form and where to go after signing in
// @Tags        auth
// @Produce     json
// @Success     200 {object} LoginPageResponse
// @Router      / [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, LoginPageResponse{
		LoginRequired: true,
		LoginURL:      "/api/login",
		RedirectTo:    middleware.ProtectedPrefix,
		Fields: map[string]string{
			"login":    "Введите логин",
			"password": "Введите пароль",
		},
		Submit: "Войти",
	})
}

// Login handles user login
// @Summary     Login
// @Description Check the configured credentials and set the session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Login credentials"
// @Success     200 {object} MessageResponse "Session cookie set"
// @Failure     400 {object} ErrorResponse "Empty login or password"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	// A missing or malformed body counts as empty credentials.
	var req LoginRequest
	_ = c.ShouldBindJSON(&req)

	token, err := h.authService.Login(c.Request.Context(), req.Login, req.Password, c.ClientIP())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token.Value, token.MaxAge(), "/", "", h.secure(c), true)
	c.JSON(http.StatusOK, MessageResponse{Message: "OK"})
}

// Logout handles user logout
// @Summary     Logout
// @Description Clear the session cookie and revoke the session token
// @Tags        auth
// @Produce     json
// @Success     200 {object} MessageResponse "Session cookie cleared"
// @Router      /api/logout [post]
// @Router      /api/login/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(session.CookieName)
	if err := h.authService.Logout(c.Request.Context(), token, c.ClientIP()); err != nil {
		logger.Get().Warnw("failed to revoke session token", "error", err)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", h.secure(c), true)
	c.JSON(http.StatusOK, MessageResponse{Message: "OK"})
}

func (h *AuthHandler) secure(c *gin.Context) bool {
	return h.secureCookie || c.Request.TLS != nil
}
