package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// AuthHandler owns the session endpoints: login, register, explicit token
// refresh, logout, and the "who am I" read.
type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	secure      bool
	sessionTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, cookieName string, secure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		secure:      secure,
		sessionTTL:  sessionTTL,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registerRequest mirrors the backend's required register field set; the
// profile fields are mandatory there, so rejecting them here keeps the
// failure on this side of the round-trip. Role accepts either casing.
type registerRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Role        string `json:"role" validate:"required"`
	GSTNumber   string `json:"gst_number" validate:"required"`
	KYCDocument string `json:"kyc_document" validate:"required"`
	Location    string `json:"location" validate:"required"`
	ContactInfo string `json:"contact_info" validate:"required"`
}

type sessionResponse struct {
	Role       domain.Role       `json:"role"`
	Navigation []domain.NavEntry `json:"navigation"`
}

// Login exchanges credentials with the backend and starts a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(result.SessionID, h.sessionTTL))
	return c.JSON(http.StatusOK, sessionResponse{
		Role:       result.Role,
		Navigation: result.Navigation,
	})
}

// Register forwards a new-account request to the backend. No session is
// started; the user logs in afterwards.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.ParseRole(req.Role)
	if role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of: buyer, seller, transporter, admin")
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        role,
		GSTNumber:   req.GSTNumber,
		KYCDocument: req.KYCDocument,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"status": "registered"})
}

// Refresh explicitly renews the access token from the stored refresh token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	if err := h.authService.Refresh(c.Request().Context(), ctxSession(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Logout destroys the session and expires the cookie.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ctxSession(c)); err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current role and its navigation entries.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess := ctxSession(c)
	if sess == nil {
		return domain.ErrNoSession
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Role:       sess.Role,
		Navigation: domain.NavigationFor(sess.Role),
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
