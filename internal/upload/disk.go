package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"roadguard/internal/config"
	"roadguard/internal/domain"
	"roadguard/pkg/e"
)

// DiskStore keeps evidence files on the local filesystem, served back
// through the configured base URL.
type DiskStore struct {
	dir     string
	baseURL string
	maxSize int64
	logger  *slog.Logger
}

func NewDiskStore(cfg config.UploadConfig, logger *slog.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: cfg.BaseURL,
		maxSize: cfg.MaxFileSize,
		logger:  logger,
	}, nil
}

func (s *DiskStore) ValidateAndUpload(ctx context.Context, file domain.EvidenceFile) (domain.UploadResult, error) {
	const op = "upload.Disk.ValidateAndUpload"

	if err := validate(file, s.maxSize); err != nil {
		return domain.UploadResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.UploadResult{}, e.Wrap(op, err)
	}

	name, err := randomName(file.MimeType)
	if err != nil {
		return domain.UploadResult{}, e.Wrap(op, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), file.Data, 0o644); err != nil {
		return domain.UploadResult{}, e.Wrap(op, err)
	}

	s.logger.Debug("evidence stored on disk",
		slog.String("file", file.Name),
		slog.String("stored_as", name))

	return domain.UploadResult{
		FileURL:  s.baseURL + "/" + name,
		FileName: file.Name,
		FileSize: file.Size,
		MimeType: file.MimeType,
	}, nil
}
