package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/account"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

type AuthHandler struct {
	svc account.Service
}

func NewAuthHandler(svc account.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/v1/auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		Role      string `json:"role"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		LicenseNo string `json:"license_no"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" || body.Name == "" {
		return badRequest(c, "email, password and name are required")
	}

	lab, err := h.svc.Register(c.Context(), account.RegisterRequest{
		Email:     body.Email,
		Password:  body.Password,
		Name:      body.Name,
		Role:      body.Role,
		Phone:     body.Phone,
		Address:   body.Address,
		LicenseNo: body.LicenseNo,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return created(c, accountView(lab))
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.svc.Login(c.Context(), account.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

// POST /api/v1/auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAccountError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, account.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, account.ErrInvalidEmail),
		errors.Is(err, account.ErrInvalidPhone),
		errors.Is(err, account.ErrInvalidLicense),
		errors.Is(err, account.ErrInvalidRole),
		errors.Is(err, account.ErrPasswordTooShort),
		errors.Is(err, account.ErrWrongPassword):
		return badRequest(c, err.Error())
	case errors.Is(err, account.ErrAccountNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, account.ErrInvalidCredentials),
		errors.Is(err, account.ErrSessionNotFound),
		errors.Is(err, account.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}
