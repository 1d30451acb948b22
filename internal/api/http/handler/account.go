package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/repo"
	"github.com/reportcare/reportcare_backend/internal/service/account"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// accountView is the JSON shape for the authenticated profile. The password
// hash is schema-sensitive and never serializes, this just keys the fields
// the frontend actually uses.
func accountView(lab *repo.Lab) fiber.Map {
	return fiber.Map{
		"id":            lab.ID,
		"role":          lab.Role,
		"email":         lab.Email,
		"name":          lab.Name,
		"phone":         lab.Phone,
		"address":       lab.Address,
		"license_no":    lab.LicenseNo,
		"profile_pic":   lab.ProfilePic,
		"signature_img": lab.SignatureImg,
		"created_at":    lab.CreatedAt,
	}
}

// GET /api/v1/me
func (h *AccountHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	lab, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, accountView(lab))
}

// PATCH /api/v1/me
func (h *AccountHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name      *string `json:"name"`
		Phone     *string `json:"phone"`
		Address   *string `json:"address"`
		LicenseNo *string `json:"license_no"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	lab, err := h.svc.UpdateProfile(c.Context(), claims.UserID, account.UpdateProfileRequest{
		Name:      body.Name,
		Phone:     body.Phone,
		Address:   body.Address,
		LicenseNo: body.LicenseNo,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, accountView(lab))
}

// POST /api/v1/me/change-password
func (h *AccountHandler) ChangePassword(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		return badRequest(c, "current_password and new_password are required")
	}

	if err := h.svc.ChangePassword(c.Context(), claims.UserID, body.CurrentPassword, body.NewPassword); err != nil {
		return mapAccountError(c, err)
	}

	return noContent(c)
}
