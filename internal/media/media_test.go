package media

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

// 1x1 transparent PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	w.Close()

	req := httptest.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatal(err)
	}
	return req.MultipartForm.File["file"][0]
}

func newUploader(t *testing.T) (*Uploader, string) {
	root := t.TempDir()
	return &Uploader{
		Store:    &DiskStore{Root: root, PublicPrefix: "/media"},
		MaxBytes: 1 << 20,
		Now:      func() time.Time { return time.Unix(1700000000, 0) },
	}, root
}

func TestUploadImage(t *testing.T) {
	u, root := newUploader(t)
	got, err := u.Upload(context.Background(), BucketProducts, "product-0", fileHeader(t, "Cloth.PNG", pngBytes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "product-0-1700000000.png" {
		t.Errorf("unexpected name %q", got.Name)
	}
	if got.URL != "/media/product-images/product-0-1700000000.png" {
		t.Errorf("unexpected url %q", got.URL)
	}
	if got.Kind != model.MediaImage {
		t.Errorf("expected image kind, got %q", got.Kind)
	}
	if _, err := os.Stat(filepath.Join(root, BucketProducts, got.Name)); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}

// smallest QuickTime ftyp box
var movBytes = []byte("\x00\x00\x00\x14ftypqt  \x00\x00\x00\x00qt  ")

func TestUploadVideo(t *testing.T) {
	u, _ := newUploader(t)
	cases := []struct {
		filename string
		wantName string
	}{
		{"clip.mov", "marketing-1700000000.mov"},
		{"clip.mp4", "marketing-1700000000.mov"},
		{"clip", "marketing-1700000000.mov"},
	}
	for _, tc := range cases {
		got, err := u.Upload(context.Background(), BucketSections, "marketing", fileHeader(t, tc.filename, movBytes))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filename, err)
		}
		if got.Kind != model.MediaVideo || got.MIME != "video/quicktime" {
			t.Errorf("%s: expected quicktime video, got %+v", tc.filename, got)
		}
		if got.Name != tc.wantName {
			t.Errorf("%s: expected %q, got %q", tc.filename, tc.wantName, got.Name)
		}
	}
}

func TestUploadRejectsTextNamedAsVideo(t *testing.T) {
	u, _ := newUploader(t)
	_, err := u.Upload(context.Background(), BucketSections, "marketing", fileHeader(t, "notes.mov", []byte("not really a movie")))
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadStoresSniffedExtension(t *testing.T) {
	u, root := newUploader(t)
	content := append(append([]byte{}, pngBytes...), []byte("<script>alert(1)</script>")...)
	got, err := u.Upload(context.Background(), BucketCMS, "x", fileHeader(t, "evil.html", content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "x-1700000000.png" {
		t.Errorf("expected sniffed png extension, got %q", got.Name)
	}
	if _, err := os.Stat(filepath.Join(root, BucketCMS, "x-1700000000.html")); !os.IsNotExist(err) {
		t.Errorf("expected no .html file on disk, stat err=%v", err)
	}
}

func TestUploadRejectsSVG(t *testing.T) {
	u, _ := newUploader(t)
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	_, err := u.Upload(context.Background(), BucketCMS, "x", fileHeader(t, "icon.svg", svg))
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadRejectsText(t *testing.T) {
	u, _ := newUploader(t)
	_, err := u.Upload(context.Background(), BucketCMS, "x", fileHeader(t, "notes.txt", []byte("hello world")))
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadRejectsUnknownBucket(t *testing.T) {
	u, _ := newUploader(t)
	_, err := u.Upload(context.Background(), "../etc", "x", fileHeader(t, "a.png", pngBytes))
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadLogoReplacesPrevious(t *testing.T) {
	u, root := newUploader(t)
	old := filepath.Join(root, BucketSiteAssets, "logo.jpg")
	os.MkdirAll(filepath.Dir(old), 0o755)
	os.WriteFile(old, []byte("old"), 0o644)

	got, err := u.UploadLogo(context.Background(), fileHeader(t, "brand.png", pngBytes), "/media/site-assets/logo.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "logo.png" {
		t.Errorf("expected logo.png, got %q", got.Name)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Errorf("expected previous logo to be removed, stat err=%v", err)
	}
}

func TestDeleteByURL(t *testing.T) {
	u, root := newUploader(t)
	p := filepath.Join(root, BucketCMS, "hero-1.png")
	os.MkdirAll(filepath.Dir(p), 0o755)
	os.WriteFile(p, pngBytes, 0o644)

	if err := u.DeleteByURL(context.Background(), BucketCMS, "http://localhost:8080/media/cms-images/hero-1.png?v=2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("expected file to be removed")
	}
	if err := u.DeleteByURL(context.Background(), BucketCMS, ""); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for empty url, got %v", err)
	}
}
