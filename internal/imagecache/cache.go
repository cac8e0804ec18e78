// Package imagecache keeps a single local copy of each remote image, keyed by
// the owning record's ID, so pages can serve images from a stable path.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultPublicPrefix = "/cached-images"
	DefaultExt          = ".jpg"

	// tempDirName holds in-progress downloads. It lives inside the cache dir
	// so renames stay on one filesystem; the dot prefix keeps it unserved.
	tempDirName  = ".incoming"
	staleTempAge = time.Hour
	tempFileGlob = "*.tmp"
)

var (
	validExt     = regexp.MustCompile(`^\.[A-Za-z0-9]{1,5}$`)
	unsafeOwner  = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	errNoOwnerID = errors.New("empty owner id")
)

// Config holds image cache configuration.
type Config struct {
	Dir             string
	PublicPrefix    string
	DefaultExt      string
	DownloadTimeout time.Duration
}

type Option func(*Cache)

// WithFs replaces the filesystem the cache writes to.
func WithFs(fs afero.Fs) Option {
	return func(c *Cache) { c.fs = fs }
}

// WithHTTPClient replaces the client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Cache) { c.httpClient = client }
}

type Cache struct {
	fs              afero.Fs
	httpClient      *http.Client
	dir             string
	tempDir         string
	publicPrefix    string
	defaultExt      string
	downloadTimeout time.Duration
	inflight        singleflight.Group
	logger          *slog.Logger
}

// New creates the cache directory if needed and returns a ready cache.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Cache, error) {
	c := &Cache{
		fs:              afero.NewOsFs(),
		httpClient:      &http.Client{Timeout: cfg.DownloadTimeout},
		dir:             cfg.Dir,
		tempDir:         filepath.Join(cfg.Dir, tempDirName),
		publicPrefix:    cfg.PublicPrefix,
		defaultExt:      cfg.DefaultExt,
		downloadTimeout: cfg.DownloadTimeout,
		logger:          logger.With("component", "imagecache"),
	}
	if c.publicPrefix == "" {
		c.publicPrefix = DefaultPublicPrefix
	}
	if !validExt.MatchString(c.defaultExt) {
		c.defaultExt = DefaultExt
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.fs.MkdirAll(c.tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	c.sweepStaleTemp(time.Now())
	return c, nil
}

// sweepStaleTemp removes downloads abandoned by a crashed process. Recent
// files are left alone since another process may still be writing them.
func (c *Cache) sweepStaleTemp(now time.Time) {
	infos, err := afero.ReadDir(c.fs, c.tempDir)
	if err != nil {
		c.logger.Warn("failed to list temp dir", "path", c.tempDir, "error", err)
		return
	}
	for _, fi := range infos {
		if fi.IsDir() || now.Sub(fi.ModTime()) < staleTempAge {
			continue
		}
		if ok, _ := filepath.Match(tempFileGlob, fi.Name()); !ok {
			continue
		}
		c.removeTemp(filepath.Join(c.tempDir, fi.Name()))
	}
}

// Dir returns the directory holding cached files.
func (c *Cache) Dir() string {
	return c.dir
}

// PublicPrefix returns the URL path prefix cached files are served under.
func (c *Cache) PublicPrefix() string {
	return c.publicPrefix
}

// EnsureCached returns the public path of the local copy of remoteURL,
// downloading it first if no copy exists for ownerID. It never fails: an
// empty remoteURL yields "", and any download error yields remoteURL itself.
func (c *Cache) EnsureCached(ctx context.Context, remoteURL, ownerID string) string {
	if remoteURL == "" {
		return ""
	}

	filename, err := c.filename(remoteURL, ownerID)
	if err != nil {
		c.logger.Warn("cannot derive cache filename", "owner_id", ownerID, "error", err)
		return remoteURL
	}
	localPath := filepath.Join(c.dir, filename)
	publicPath := path.Join(c.publicPrefix, filename)

	if c.exists(localPath) {
		return publicPath
	}

	// Concurrent callers for the same file share one download. The download
	// outlives any single caller; each caller stops waiting on its own ctx.
	ch := c.inflight.DoChan(filename, func() (any, error) {
		if c.exists(localPath) {
			return nil, nil
		}
		dlCtx := context.WithoutCancel(ctx)
		if c.downloadTimeout > 0 {
			var cancel context.CancelFunc
			dlCtx, cancel = context.WithTimeout(dlCtx, c.downloadTimeout)
			defer cancel()
		}
		return nil, c.download(dlCtx, remoteURL, localPath)
	})

	select {
	case <-ctx.Done():
		c.logger.Debug("caller gave up waiting for image", "owner_id", ownerID, "error", ctx.Err())
		return remoteURL
	case res := <-ch:
		if res.Err != nil {
			c.logger.Warn("image download failed, serving remote url",
				"owner_id", ownerID,
				"error", res.Err,
			)
			return remoteURL
		}
		c.logger.Debug("image cached", "owner_id", ownerID, "path", publicPath, "shared", res.Shared)
		return publicPath
	}
}

func (c *Cache) filename(remoteURL, ownerID string) (string, error) {
	if ownerID == "" {
		return "", errNoOwnerID
	}
	u, err := url.Parse(remoteURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	ext := path.Ext(u.Path)
	if !validExt.MatchString(ext) {
		ext = c.defaultExt
	}
	return unsafeOwner.ReplaceAllString(ownerID, "_") + ext, nil
}

func (c *Cache) exists(localPath string) bool {
	ok, err := afero.Exists(c.fs, localPath)
	return err == nil && ok
}

// download streams the body to a file in the temp dir and renames it into
// place once complete, so localPath never holds a partial image.
func (c *Cache) download(ctx context.Context, remoteURL, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	tmp, err := afero.TempFile(c.fs, c.tempDir, filepath.Base(localPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		c.removeTemp(tmpName)
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		c.removeTemp(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := c.fs.Rename(tmpName, localPath); err != nil {
		c.removeTemp(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (c *Cache) removeTemp(name string) {
	if err := c.fs.Remove(name); err != nil && !errors.Is(err, afero.ErrFileNotFound) {
		c.logger.Warn("failed to remove temp file", "path", name, "error", err)
	}
}
