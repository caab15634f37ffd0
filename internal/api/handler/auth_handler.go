package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/storefront/internal/api/metrics"
	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and the current-user view.
// It composes the credential service with the session store: the service
// verifies identity, the store owns the token lifecycle.
type AuthHandler struct {
	auth       ports.AuthService
	sessions   ports.SessionStore
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, sessions ports.SessionStore, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, sessionTTL: sessionTTL}
}

// Register creates a new customer account and signs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID, user.Role)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, token)

	metrics.RegistrationsTotal.Inc()

	return c.JSON(http.StatusCreated, authResponse{Message: "user registered successfully", User: user})
}

// Login verifies credentials and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.sessions.Create(c.Request().Context(), user.ID, user.Role)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, token)

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Message: "login successful", User: user})
}

// Logout destroys the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get("session_token").(string)

	if err := h.sessions.Destroy(c.Request().Context(), token); err != nil {
		// A concurrent logout already removed it; the outcome is the same.
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}
	}
	h.clearSessionCookie(c)

	return c.JSON(http.StatusOK, messageResponse{Message: "logged out successfully"})
}

// Me returns the signed-in user without the password hash.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
