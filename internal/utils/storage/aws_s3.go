package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"TrackFit-Backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/heic"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrStorageDisabled    = errors.New("image storage is not configured")
)

type (
	AwsS3 interface {
		UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error)
		DeleteFile(objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 builds the S3 client from AWS_S3_* settings. Without a bucket it
// returns a storage that rejects every upload.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" {
		log.Warn("AWS_S3_BUCKET not set, image uploads are disabled")
		return disabledStorage{}
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Errorf("unable to load AWS config for S3: %v", err)
		return disabledStorage{}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedTypes ...string) (string, error) {
	mtype, err := detectType(file, allowedTypes)
	if err != nil {
		return "", err
	}
	objectKey := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), fileName, mtype.Extension())
	return objectKey, a.put(objectKey, file, mtype.String())
}

func (a *awsS3) put(objectKey string, file *multipart.FileHeader, contentType string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (a *awsS3) DeleteFile(objectKey string) error {
	_, err := a.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func detectType(file *multipart.FileHeader, allowedTypes []string) (*mimetype.MIME, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, err
	}
	if len(allowedTypes) > 0 && !mimetype.EqualsAny(mtype.String(), allowedTypes...) {
		return nil, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
	}
	return mtype, nil
}

type disabledStorage struct{}

func (disabledStorage) UploadFile(string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", ErrStorageDisabled
}

func (disabledStorage) DeleteFile(string) error { return nil }

func (disabledStorage) GetPublicLinkKey(string) string { return "" }

func (disabledStorage) GetObjectKeyFromLink(string) string { return "" }
