package media

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bragboard/bragboard-service/internal/config"
)

// Service hands out presigned URLs for shoutout images. The service never
// proxies file bytes, clients talk to object storage directly.
type Service struct {
	client     *minio.Client
	bucketName string
	config     *config.Media
}

type UploadInfo struct {
	ObjectKey   string `json:"object_key"`
	UploadURL   string `json:"upload_url"`
	ExpiresAt   int64  `json:"expires_at"`
	MaxFileSize int64  `json:"max_file_size"`
	ContentType string `json:"content_type"`
}

// NewService connects to MinIO and makes sure the bucket exists.
func NewService(cfg *config.Config) (*Service, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKeyID, cfg.MinIO.SecretAccessKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	service := &Service{
		client:     client,
		bucketName: cfg.MinIO.BucketName,
		config:     &cfg.Media,
	}

	if err := service.ensureBucket(); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return service, nil
}

func (s *Service) ensureBucket() error {
	ctx := context.Background()

	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ValidateContentType reports whether the content type is an allowed image type.
func (s *Service) ValidateContentType(contentType string) bool {
	for _, allowed := range s.config.AllowedMimeTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// GenerateObjectKey builds a unique key under the uploading user's prefix.
func (s *Service) GenerateObjectKey(userID string, contentType string) string {
	extensions, err := mime.ExtensionsByType(contentType)
	var ext string
	if err == nil && len(extensions) > 0 {
		ext = extensions[0]
	} else {
		switch contentType {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		default:
			ext = ""
		}
	}

	filename := uuid.New().String() + ext
	return fmt.Sprintf("users/%s/images/%s", userID, filename)
}

// GeneratePresignedUploadURL returns a short-lived PUT URL for an image upload.
func (s *Service) GeneratePresignedUploadURL(userID string, contentType string) (*UploadInfo, error) {
	if !s.ValidateContentType(contentType) {
		return nil, fmt.Errorf("content type %s is not allowed", contentType)
	}

	objectKey := s.GenerateObjectKey(userID, contentType)
	expiry := time.Duration(s.config.PresignedURLTTL) * time.Second

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucketName,
		objectKey,
		expiry,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &UploadInfo{
		ObjectKey:   objectKey,
		UploadURL:   presignedURL.String(),
		ExpiresAt:   time.Now().Add(expiry).Unix(),
		MaxFileSize: s.config.MaxFileSize,
		ContentType: contentType,
	}, nil
}

// GeneratePresignedDownloadURL returns a short-lived GET URL for an object.
func (s *Service) GeneratePresignedDownloadURL(objectKey string, expiry time.Duration) (*url.URL, error) {
	return s.client.PresignedGetObject(
		context.Background(),
		s.bucketName,
		objectKey,
		expiry,
		nil,
	)
}

// ObjectExists checks that an uploaded object is actually present, used before
// attaching an image key to a shoutout.
func (s *Service) ObjectExists(objectKey string) (bool, error) {
	_, err := s.client.StatObject(
		context.Background(),
		s.bucketName,
		objectKey,
		minio.StatObjectOptions{},
	)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteObject removes an object from storage.
func (s *Service) DeleteObject(objectKey string) error {
	return s.client.RemoveObject(
		context.Background(),
		s.bucketName,
		objectKey,
		minio.RemoveObjectOptions{},
	)
}
