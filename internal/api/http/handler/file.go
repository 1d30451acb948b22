package handler

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"

	"github.com/reportcare/reportcare_backend/internal/service/file"
	pasetotoken "github.com/reportcare/reportcare_backend/pkg/paseto"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

// POST /api/v1/me/avatar  (multipart field "file")
func (h *FileHandler) UploadAvatar(c fiber.Ctx) error {
	return h.upload(c, h.svc.UploadAvatar)
}

// POST /api/v1/me/signature  (multipart field "file")
func (h *FileHandler) UploadSignature(c fiber.Ctx) error {
	return h.upload(c, h.svc.UploadSignature)
}

func (h *FileHandler) upload(c fiber.Ctx, store func(context.Context, int, *multipart.FileHeader) (*file.UploadResult, error)) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := store(c.Context(), claims.UserID, fh)
	if err != nil {
		switch {
		case errors.Is(err, file.ErrUnsupportedType):
			return badRequest(c, err.Error())
		case errors.Is(err, file.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
		default:
			return internalError(c)
		}
	}

	return created(c, fiber.Map{
		"key":       res.Key,
		"file_name": res.FileName,
		"size":      res.Size,
		"mime_type": res.MimeType,
	})
}
