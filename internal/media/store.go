package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
)

const (
	BucketCMS        = "cms-images"
	BucketSiteAssets = "site-assets"
	BucketProducts   = "product-images"
	BucketSections   = "section-images"
)

var buckets = map[string]bool{
	BucketCMS:        true,
	BucketSiteAssets: true,
	BucketProducts:   true,
	BucketSections:   true,
}

func KnownBucket(name string) bool {
	return buckets[name]
}

// Store keeps uploaded objects and serves them under a public URL.
type Store interface {
	Put(ctx context.Context, bucket, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, bucket, name string) error
}

// DiskStore writes objects to <Root>/<bucket>/<name>.
type DiskStore struct {
	Root         string
	PublicPrefix string
}

var _ Store = (*DiskStore)(nil)

func (s *DiskStore) path(bucket, name string) (string, error) {
	if !KnownBucket(bucket) {
		return "", appErrors.NewValidation("bucket", fmt.Errorf("unknown bucket %q", bucket))
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", appErrors.NewValidation("name", fmt.Errorf("invalid object name %q", name))
	}
	return filepath.Join(s.Root, bucket, name), nil
}

func (s *DiskStore) URL(bucket, name string) string {
	return s.PublicPrefix + "/" + bucket + "/" + name
}

// Put overwrites any existing object with the same name.
func (s *DiskStore) Put(ctx context.Context, bucket, name string, r io.Reader) (string, error) {
	dst, err := s.path(bucket, name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create bucket dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return s.URL(bucket, name), nil
}

// Delete ignores objects that are already gone.
func (s *DiskStore) Delete(ctx context.Context, bucket, name string) error {
	p, err := s.path(bucket, name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
