package minio

import (
	"Snapfeed/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store 基于 MinIO 的对象存储客户端
type Store struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

// New 初始化客户端并校验 Bucket 可达
func New(cfg config.MinIOConfig) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info("Bucket created", "bucket", cfg.Bucket)
	}

	return &Store{client: client, cfg: cfg}, nil
}

// UploadFromFile 从本地暂存路径上传对象，返回远端存储名。
// 底层客户端需要文件路径而非网络流，调用方负责先行落盘。
func (s *Store) UploadFromFile(ctx context.Context, objectName, filePath, contentType string) (string, error) {
	uploadInfo, err := s.client.FPutObject(ctx, s.cfg.Bucket, objectName, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// Remove 删除远端对象
func (s *Store) Remove(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// PublicURL 获取对象的公共访问URL
func (s *Store) PublicURL(objectName string) string {
	if s.cfg.PublicBaseURL != "" {
		return s.cfg.PublicBaseURL + "/" + objectName
	}

	protocol := "http"
	if s.cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.cfg.Endpoint, s.cfg.Bucket, objectName)
}
