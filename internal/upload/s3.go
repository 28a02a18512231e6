package upload

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"roadguard/internal/config"
	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store keeps evidence files in an S3 bucket under evidence/<name>.
type S3Store struct {
	uploader *manager.Uploader
	bucket   string
	maxSize  int64
	logger   *slog.Logger
}

func NewS3Store(ctx context.Context, cfg config.UploadConfig, logger *slog.Logger) (*S3Store, error) {
	awsConf, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsConf)
	return &S3Store{
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		maxSize:  cfg.MaxFileSize,
		logger:   logger,
	}, nil
}

func (s *S3Store) ValidateAndUpload(ctx context.Context, file domain.EvidenceFile) (domain.UploadResult, error) {
	const op = "upload.S3.ValidateAndUpload"

	if err := validate(file, s.maxSize); err != nil {
		return domain.UploadResult{}, err
	}

	name, err := randomName(file.MimeType)
	if err != nil {
		return domain.UploadResult{}, e.Wrap(op, err)
	}
	key := "evidence/" + name

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Data),
		ContentType: aws.String(file.MimeType),
	})
	if err != nil {
		return domain.UploadResult{}, e.Wrap(op, err)
	}

	s.logger.Debug("evidence stored in s3",
		slog.String("file", file.Name),
		slog.String("key", key))

	return domain.UploadResult{
		FileURL:  out.Location,
		FileName: file.Name,
		FileSize: file.Size,
		MimeType: file.MimeType,
	}, nil
}
