package service

import (
	"context"
	"fmt"
	"io"
	"mindscreen_backend/internal/config"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider persists generated artifacts (CSV exports) and returns a
// URL the caller can hand out.
type StorageProvider interface {
	Save(ctx context.Context, name string, contentType string, r io.Reader, size int64) (string, error)
}

func NewStorageProvider(cfg *config.Config) (StorageProvider, error) {
	switch cfg.Storage.Type {
	case "minio":
		return newMinioStorage(cfg)
	case "local", "":
		return &LocalStorage{BasePath: cfg.Storage.LocalPath}, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

type LocalStorage struct {
	BasePath string
}

func (s *LocalStorage) Save(ctx context.Context, name string, contentType string, r io.Reader, size int64) (string, error) {
	path := filepath.Join(s.BasePath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/files/" + name, nil
}

type MinioStorage struct {
	Client *minio.Client
	Bucket string
}

func newMinioStorage(cfg *config.Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
		Creds: credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
	})
	if err != nil {
		return nil, err
	}

	s := &MinioStorage{Client: client, Bucket: cfg.Storage.MinioBucket}

	exists, err := client.BucketExists(context.Background(), s.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), s.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *MinioStorage) Save(ctx context.Context, name string, contentType string, r io.Reader, size int64) (string, error) {
	_, err := s.Client.PutObject(ctx, s.Bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.Client.EndpointURL(), s.Bucket, name), nil
}
