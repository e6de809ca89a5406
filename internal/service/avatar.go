package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strconv"
	"strings"
	"time"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const MaxAvatarSize = 5 << 20

var avatarExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectUploader is satisfied by *manager.Uploader.
type ObjectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

func NewS3Uploader(ctx context.Context, opts S3Options) (*manager.Uploader, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Opts := []func(*s3.Options){}
	if opts.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true // Обязательно для MinIO
		})
	}

	log.Printf("S3 avatar storage initialized: bucket=%s endpoint=%s", opts.Bucket, opts.Endpoint)
	return manager.NewUploader(s3.NewFromConfig(awsCfg, s3Opts...)), nil
}

type avatarService struct {
	uploader  ObjectUploader
	userRepo  repository.UserRepository
	bucket    string
	publicURL string
}

// NewAvatarService returns a service that refuses uploads with
// ErrStorageDisabled when uploader is nil.
func NewAvatarService(uploader ObjectUploader, userRepo repository.UserRepository, bucket, publicURL string) AvatarService {
	return &avatarService{
		uploader:  uploader,
		userRepo:  userRepo,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload stores the image and returns its URL. The user row is not changed;
// clients pass the URL on through complete_profile or update_profile.
func (s *avatarService) Upload(ctx context.Context, input AvatarInput) (*model.AvatarUpload, error) {
	if s.uploader == nil {
		return nil, ErrStorageDisabled
	}
	if input.UserID == 0 {
		return nil, required("user_id")
	}
	ext, ok := avatarExtensions[input.ContentType]
	if !ok {
		return nil, &FieldError{Field: "content_type", Reason: "must be one of image/png, image/jpeg, image/gif, image/webp"}
	}
	if len(input.Data) == 0 {
		return nil, required("data")
	}
	if len(input.Data) > MaxAvatarSize {
		return nil, &FieldError{Field: "data", Reason: "exceeds " + strconv.Itoa(MaxAvatarSize) + " bytes"}
	}

	if _, err := s.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	key := path.Join("avatars", strconv.FormatUint(uint64(input.UserID), 10), uuid.New().String()+ext)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(input.Data),
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := result.Location
	if s.publicURL != "" {
		url = s.publicURL + "/" + key
	}

	return &model.AvatarUpload{
		URL:         url,
		Key:         key,
		Bucket:      s.bucket,
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
		UserID:      input.UserID,
		CreatedAt:   time.Now(),
	}, nil
}
