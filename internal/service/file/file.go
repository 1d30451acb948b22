// Package file handles lab image uploads (profile pictures and report
// signature images). Objects live in S3 under {entity}/{lab_id}/{uuid}.{ext}
// and only the key is stored on the lab row.
package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/reportcare/reportcare_backend/internal/service/account"
	s3pkg "github.com/reportcare/reportcare_backend/pkg/s3"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrFileTooLarge    = errors.New("file too large")
)

// maxImageSize caps uploads at 5 MiB. Signature images are small PNGs in
// practice, the cap just keeps abuse out.
const maxImageSize = 5 << 20

var allowedImageExts = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

type Service interface {
	// UploadAvatar stores a profile picture and points the lab record at it.
	UploadAvatar(ctx context.Context, labID int, fh *multipart.FileHeader) (*UploadResult, error)
	// UploadSignature stores the signature image rendered onto report PDFs.
	UploadSignature(ctx context.Context, labID int, fh *multipart.FileHeader) (*UploadResult, error)
	// GetDownloadURL presigns a read for a stored object key.
	GetDownloadURL(ctx context.Context, key string) (string, error)
}

type fileService struct {
	s3       *s3pkg.Client
	accounts account.Service
}

func New(s3Client *s3pkg.Client, accounts account.Service) Service {
	return &fileService{s3: s3Client, accounts: accounts}
}

func (s *fileService) UploadAvatar(ctx context.Context, labID int, fh *multipart.FileHeader) (*UploadResult, error) {
	res, err := s.store(ctx, "avatar", labID, fh)
	if err != nil {
		return nil, err
	}
	if _, err := s.accounts.SetProfilePic(ctx, labID, res.Key); err != nil {
		_ = s.s3.Delete(ctx, res.Key)
		return nil, fmt.Errorf("save avatar key: %w", err)
	}
	return res, nil
}

func (s *fileService) UploadSignature(ctx context.Context, labID int, fh *multipart.FileHeader) (*UploadResult, error) {
	res, err := s.store(ctx, "signature", labID, fh)
	if err != nil {
		return nil, err
	}
	if _, err := s.accounts.SetSignatureImg(ctx, labID, res.Key); err != nil {
		_ = s.s3.Delete(ctx, res.Key)
		return nil, fmt.Errorf("save signature key: %w", err)
	}
	return res, nil
}

func (s *fileService) store(ctx context.Context, entity string, labID int, fh *multipart.FileHeader) (*UploadResult, error) {
	if fh.Size > maxImageSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime, ok := allowedImageExts[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%d/%s%s", entity, labID, uuid.New(), ext)
	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *fileService) GetDownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}
