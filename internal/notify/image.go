package notify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// MaxImageBytes caps how much of a remote image is downloaded.
const MaxImageBytes = 10 << 20

// DefaultImageTimeout bounds a single image download.
const DefaultImageTimeout = 10 * time.Second

var errNotImage = errors.New("not an image")

// ImageResolver turns an image reference (URL or path) into a local file path.
// Remote images are cached under cacheDir, keyed by the sha256 of the URL.
type ImageResolver struct {
	httpClient *http.Client
	cacheDir   string
	log        zerolog.Logger
}

// NewImageResolver creates a resolver. A nil client gets DefaultImageTimeout.
func NewImageResolver(client *http.Client, cacheDir string, log zerolog.Logger) *ImageResolver {
	if client == nil {
		client = &http.Client{Timeout: DefaultImageTimeout}
	}
	return &ImageResolver{httpClient: client, cacheDir: cacheDir, log: log}
}

// Resolve returns an absolute path to a local image, or "" if ref cannot be
// resolved. Failures are logged at debug level and never returned.
//
// Resolution order: http(s) URL (downloaded), file:// URL, filesystem path.
func (r *ImageResolver) Resolve(ctx context.Context, ref string) string {
	if ref == "" {
		return ""
	}

	if u, err := url.Parse(ref); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			p, err := r.fetch(ctx, u)
			if err == nil {
				return p
			}
			r.log.Debug().Err(err).Str("image", ref).Msg("image URL could not be fetched, trying as path")
		case "file":
			if p := r.local(u.Path); p != "" {
				return p
			}
		}
	}

	if p := r.local(ref); p != "" {
		return p
	}

	r.log.Debug().Str("image", ref).Msg("image dropped: not a reachable URL or existing image file")
	return ""
}

// local verifies that p is an existing regular image file.
func (r *ImageResolver) local(p string) string {
	if p == "" {
		return ""
	}
	p = expandHome(p)

	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return ""
	}

	if err := checkImage(p); err != nil {
		r.log.Debug().Err(err).Str("path", p).Msg("image file rejected")
		return ""
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// fetch downloads u into the cache and returns the cached path.
func (r *ImageResolver) fetch(ctx context.Context, u *url.URL) (string, error) {
	if r.cacheDir == "" {
		return "", errors.New("no image cache directory")
	}

	dest := filepath.Join(r.cacheDir, cacheKey(u))
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		r.log.Debug().Str("path", dest).Msg("image cache hit")
		return dest, nil
	}

	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating image cache: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp(r.cacheDir, "download-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmpFile.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	n, err := io.Copy(tmpFile, io.LimitReader(resp.Body, MaxImageBytes+1))
	closeErr := tmpFile.Close()
	if err != nil {
		return "", fmt.Errorf("writing image: %w", err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("writing image: %w", closeErr)
	}
	if n > MaxImageBytes {
		return "", fmt.Errorf("image larger than %d bytes", MaxImageBytes)
	}

	if err := checkImage(tmpName); err != nil {
		return "", err
	}

	if err := os.Rename(tmpName, dest); err != nil {
		return "", fmt.Errorf("caching image: %w", err)
	}
	r.log.Debug().Str("url", u.String()).Str("path", dest).Int64("bytes", n).Msg("image downloaded")
	return dest, nil
}

// cacheKey is sha256(url) plus the URL's extension when it looks like an image.
func cacheKey(u *url.URL) string {
	sum := sha256.Sum256([]byte(u.String()))
	key := hex.EncodeToString(sum[:])

	ext := strings.ToLower(path.Ext(u.Path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".svg", ".ico", ".tif", ".tiff":
		return key + ext
	default:
		return key
	}
}

// checkImage sniffs the file contents and rejects anything that is not an image.
func checkImage(p string) error {
	mtype, err := mimetype.DetectFile(p)
	if err != nil {
		return fmt.Errorf("detecting type: %w", err)
	}
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errNotImage, mtype.String())
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
