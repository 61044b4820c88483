package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	appErrors "github.com/unclebandit/sparkles-site/internal/errors"
	"github.com/unclebandit/sparkles-site/internal/model"
)

// videoExts maps the file extensions a client may keep to the video type
// they must sniff as.
var videoExts = map[string]string{
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"ogg":  "video/ogg",
	"mov":  "video/quicktime",
}

type Uploaded struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	MIME string `json:"mime"`
}

type Uploader struct {
	Store    Store
	MaxBytes int64
	Now      func() time.Time
}

func (u *Uploader) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// sniff detects the content type of f and rewinds it.
func sniff(f multipart.File) (*mimetype.MIME, error) {
	m, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return m, nil
}

// extension picks the stored file extension from the sniffed type. The
// client's extension is only kept for a video it agrees with.
func extension(filename string, m *mimetype.MIME) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if want, ok := videoExts[ext]; ok && m.Is(want) {
		return ext
	}
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.TrimPrefix(m.Extension(), "."))
	if clean == "" {
		return "bin"
	}
	return clean
}

// kind classifies by sniffed type only. SVG is refused since it is served
// from the site's own origin and can carry script.
func kind(m *mimetype.MIME) string {
	switch {
	case strings.HasPrefix(m.String(), "video/"):
		return model.MediaVideo
	case m.Is("image/svg+xml"):
		return ""
	case strings.HasPrefix(m.String(), "image/"):
		return model.MediaImage
	}
	return ""
}

func (u *Uploader) open(fh *multipart.FileHeader) (multipart.File, *mimetype.MIME, error) {
	if fh == nil {
		return nil, nil, appErrors.NewValidation("file", errors.New("is required"))
	}
	if u.MaxBytes > 0 && fh.Size > u.MaxBytes {
		return nil, nil, appErrors.NewValidation("file", fmt.Errorf("exceeds %d bytes", u.MaxBytes))
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	m, err := sniff(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, m, nil
}

// Upload stores an image or video as <prefix>-<unix>.<ext> in bucket.
func (u *Uploader) Upload(ctx context.Context, bucket, prefix string, fh *multipart.FileHeader) (*Uploaded, error) {
	if !KnownBucket(bucket) {
		return nil, appErrors.NewValidation("bucket", fmt.Errorf("unknown bucket %q", bucket))
	}
	f, m, err := u.open(fh)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k := kind(m)
	if k == "" {
		return nil, appErrors.NewValidation("file", fmt.Errorf("unsupported content type %s", m.String()))
	}

	if prefix = strings.Trim(prefix, "-. /"); prefix == "" {
		prefix = "upload"
	}
	name := fmt.Sprintf("%s-%d.%s", prefix, u.now().Unix(), extension(fh.Filename, m))
	publicURL, err := u.Store.Put(ctx, bucket, name, f)
	if err != nil {
		return nil, err
	}
	log.Printf("📁 Uploaded %s to %s (%s)", name, bucket, m.String())
	return &Uploaded{URL: publicURL, Name: name, Kind: k, MIME: m.String()}, nil
}

// UploadLogo stores the site logo as logo.<ext>, replacing the previous file.
// The old logo is removed when its name differs from the new one.
func (u *Uploader) UploadLogo(ctx context.Context, fh *multipart.FileHeader, previousURL string) (*Uploaded, error) {
	f, m, err := u.open(fh)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if kind(m) != model.MediaImage {
		return nil, appErrors.NewValidation("file", fmt.Errorf("logo must be an image, got %s", m.String()))
	}
	name := "logo." + extension(fh.Filename, m)
	publicURL, err := u.Store.Put(ctx, BucketSiteAssets, name, f)
	if err != nil {
		return nil, err
	}

	if old := ObjectName(previousURL); old != "" && old != name {
		if err := u.Store.Delete(ctx, BucketSiteAssets, old); err != nil {
			log.Printf("⚠️ failed to remove previous logo %s: %v", old, err)
		}
	}
	return &Uploaded{URL: publicURL, Name: name, Kind: model.MediaImage, MIME: m.String()}, nil
}

// ObjectName returns the last path segment of a public URL.
func ObjectName(publicURL string) string {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return ""
	}
	p := publicURL
	if parsed, err := url.Parse(publicURL); err == nil {
		p = parsed.Path
	}
	name := path.Base(strings.TrimRight(p, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func (u *Uploader) DeleteByURL(ctx context.Context, bucket, publicURL string) error {
	name := ObjectName(publicURL)
	if name == "" {
		return appErrors.NewValidation("url", errors.New("does not name a file"))
	}
	return u.Store.Delete(ctx, bucket, name)
}
