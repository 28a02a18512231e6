package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"roadguard/internal/config"
	"roadguard/internal/domain"
	"roadguard/internal/service"
	"roadguard/pkg/e"
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// validate rejects anything that is not an allowed image type within
// the configured size limit. A rejected file fails the whole intake.
func validate(file domain.EvidenceFile, maxSize int64) error {
	if _, ok := allowedMimeTypes[file.MimeType]; !ok {
		return fmt.Errorf("file %q has unsupported type %q (only JPEG and PNG accepted): %w",
			file.Name, file.MimeType, e.ErrValidation)
	}
	if file.Size > maxSize {
		return fmt.Errorf("file %q is %d bytes, limit is %d: %w",
			file.Name, file.Size, maxSize, e.ErrValidation)
	}
	if len(file.Data) == 0 {
		return fmt.Errorf("file %q is empty: %w", file.Name, e.ErrValidation)
	}
	return nil
}

// randomName gives every stored object an unguessable name; the
// original filename is kept only in the upload result.
func randomName(mimeType string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf) + allowedMimeTypes[mimeType], nil
}

// NewStore picks the evidence backend from configuration.
func NewStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EvidenceStore, error) {
	switch cfg.Upload.Backend {
	case "s3":
		return NewS3Store(ctx, cfg.Upload, logger)
	case "disk":
		return NewDiskStore(cfg.Upload, logger)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}
