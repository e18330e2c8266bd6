package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrMediaNotFound = errors.New("media object not found")

// MediaObject is an open object from the media bucket. Callers close Body.
type MediaObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	ModTime     time.Time
}

// MediaStore is the object storage consulted for static files missing on disk.
type MediaStore interface {
	Open(ctx context.Context, name string) (*MediaObject, error)
	Ping(ctx context.Context) error
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

type minioMediaStore struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinioMediaStore(cfg MinioConfig) (MediaStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("media bucket is required")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioMediaStore{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (m *minioMediaStore) objectKey(name string) string {
	return path.Join(m.prefix, CleanRelative(name))
}

func (m *minioMediaStore) Open(ctx context.Context, name string) (*MediaObject, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, m.objectKey(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; Stat is the first call that reaches the server.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrMediaNotFound
		}
		return nil, err
	}

	return &MediaObject{
		Body:        obj,
		ContentType: info.ContentType,
		Size:        info.Size,
		ModTime:     info.LastModified,
	}, nil
}

func (m *minioMediaStore) Ping(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}
