package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"yatube/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName,
			minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// UploadImage кладет картинку поста в бакет и возвращает имя объекта и URL.
func (m *MinIOClient) UploadImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("posts/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	scheme := "http"
	if m.config.MinIO.UseSSL {
		scheme = "https"
	}
	imageURL := fmt.Sprintf("%s://%s/%s/%s",
		scheme, m.config.MinIO.Endpoint, m.config.MinIO.BucketName, objectName)

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
