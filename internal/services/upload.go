package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"humspot-backend/internal/apperror"
	"humspot-backend/internal/config"
)

// UploadRequest describes the object a client wants to upload
type UploadRequest struct {
	PhotoType    string `json:"photoType" validate:"required,photo_type"`
	ActivityName string `json:"activityName" validate:"required"`
	FolderName   string `json:"folderName" validate:"required"`
	BucketName   string `json:"bucketName"`
	IsUnique     bool   `json:"isUnique"`
}

// UploadResponse carries the pre-signed URL and the key it writes to
type UploadResponse struct {
	UploadURL string `json:"uploadURL"`
	Key       string `json:"key"`
}

// UploadService hands out pre-signed S3 PUT URLs
type UploadService struct {
	presigner *s3.PresignClient
	bucket    string
	ttl       time.Duration

	now     func() time.Time
	newSalt func() string
}

// NewS3Client builds an S3 client from config. A custom endpoint (MinIO, localstack)
// switches the client to path-style addressing.
func NewS3Client(ctx context.Context, cfg config.AWSConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewUploadService creates a new upload service
func NewUploadService(client *s3.Client, cfg config.AWSConfig) *UploadService {
	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &UploadService{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.S3Bucket,
		ttl:       ttl,
		now:       time.Now,
		newSalt:   func() string { return uuid.New().String() },
	}
}

// ObjectKey returns the storage key for req: folder/name.type, salted with a random
// UUID and the current time in milliseconds when IsUnique is set.
func (s *UploadService) ObjectKey(req UploadRequest) string {
	if req.IsUnique {
		return fmt.Sprintf("%s/%s-%s-%d.%s",
			req.FolderName, req.ActivityName, s.newSalt(), s.now().UnixMilli(), req.PhotoType)
	}
	return fmt.Sprintf("%s/%s.%s", req.FolderName, req.ActivityName, req.PhotoType)
}

// ContentType returns the MIME type for an image subtype
func ContentType(photoType string) string {
	if photoType == "jpg" {
		return "image/jpeg"
	}
	return "image/" + photoType
}

// PresignUpload generates a pre-signed PUT URL for req
func (s *UploadService) PresignUpload(ctx context.Context, req UploadRequest) (*UploadResponse, error) {
	bucket := req.BucketName
	if bucket == "" {
		bucket = s.bucket
	}
	if bucket == "" {
		return nil, apperror.ValidationFailed("bucketName", "bucketName is required")
	}

	key := s.ObjectKey(req)
	request, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(ContentType(req.PhotoType)),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}

	return &UploadResponse{
		UploadURL: request.URL,
		Key:       key,
	}, nil
}
