package imagecache

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

const cacheDir = "/srv/public/cached-images"

type CacheTestSuite struct {
	suite.Suite
	fs     afero.Fs
	hits   atomic.Int32
	status atomic.Int32
	srv    *httptest.Server
	cache  *Cache
}

func (s *CacheTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.hits.Store(0)
	s.status.Store(http.StatusOK)

	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		w.WriteHeader(int(s.status.Load()))
		_, _ = io.WriteString(w, "png-bytes")
	}))

	cache, err := New(Config{
		Dir:             cacheDir,
		DownloadTimeout: time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), WithFs(s.fs))
	s.Require().NoError(err)
	s.cache = cache
}

func (s *CacheTestSuite) TearDownTest() {
	s.srv.Close()
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) readCached(name string) string {
	data, err := afero.ReadFile(s.fs, filepath.Join(cacheDir, name))
	s.Require().NoError(err)
	return string(data)
}

func (s *CacheTestSuite) dirEntries() []string {
	infos, err := afero.ReadDir(s.fs, cacheDir)
	s.Require().NoError(err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		names = append(names, fi.Name())
	}
	return names
}

func (s *CacheTestSuite) tempEntries() []string {
	infos, err := afero.ReadDir(s.fs, filepath.Join(cacheDir, tempDirName))
	s.Require().NoError(err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names
}

func (s *CacheTestSuite) TestEnsureCached_DownloadsOnce() {
	url := s.srv.URL + "/images/cover.png?X-Amz-Signature=abc"

	first := s.cache.EnsureCached(s.T().Context(), url, "page-1")
	second := s.cache.EnsureCached(s.T().Context(), url, "page-1")

	s.Equal("/cached-images/page-1.png", first)
	s.Equal(first, second)
	s.Equal(int32(1), s.hits.Load())
	s.Equal("png-bytes", s.readCached("page-1.png"))
}

func (s *CacheTestSuite) TestEnsureCached_EmptyURL() {
	s.Equal("", s.cache.EnsureCached(s.T().Context(), "", "page-1"))
	s.Equal(int32(0), s.hits.Load())
}

func (s *CacheTestSuite) TestEnsureCached_ExistingFileSkipsNetwork() {
	s.Require().NoError(afero.WriteFile(s.fs, filepath.Join(cacheDir, "page-2.webp"), []byte("old"), 0o644))

	got := s.cache.EnsureCached(s.T().Context(), s.srv.URL+"/x/photo.webp", "page-2")

	s.Equal("/cached-images/page-2.webp", got)
	s.Equal(int32(0), s.hits.Load())
	s.Equal("old", s.readCached("page-2.webp"))
}

func (s *CacheTestSuite) TestEnsureCached_DefaultExtension() {
	got := s.cache.EnsureCached(s.T().Context(), s.srv.URL+"/download", "page-3")
	s.Equal("/cached-images/page-3.jpg", got)

	got = s.cache.EnsureCached(s.T().Context(), s.srv.URL+"/v1.2/image.original-size", "page-4")
	s.Equal("/cached-images/page-4.jpg", got)
}

func (s *CacheTestSuite) TestEnsureCached_NonOKFallsBackToRemote() {
	s.status.Store(http.StatusForbidden)
	url := s.srv.URL + "/expired.png"

	got := s.cache.EnsureCached(s.T().Context(), url, "page-5")

	s.Equal(url, got)
	s.Empty(s.dirEntries())

	// A later success is not masked by the failure.
	s.status.Store(http.StatusOK)
	s.Equal("/cached-images/page-5.png", s.cache.EnsureCached(s.T().Context(), url, "page-5"))
	s.Equal(int32(2), s.hits.Load())
}

func (s *CacheTestSuite) TestEnsureCached_TruncatedBodyLeavesNoFile() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "partial")
	}))
	defer srv.Close()
	url := srv.URL + "/big.png"

	got := s.cache.EnsureCached(s.T().Context(), url, "page-6")

	s.Equal(url, got)
	s.Empty(s.dirEntries())
	s.Empty(s.tempEntries())
}

func (s *CacheTestSuite) TestEnsureCached_UnreachableHost() {
	url := "http://127.0.0.1:1/nothing.png"
	s.Equal(url, s.cache.EnsureCached(s.T().Context(), url, "page-7"))
	s.Empty(s.dirEntries())
}

func (s *CacheTestSuite) TestEnsureCached_MissingOwnerID() {
	url := s.srv.URL + "/a.png"
	s.Equal(url, s.cache.EnsureCached(s.T().Context(), url, ""))
	s.Equal(int32(0), s.hits.Load())
}

func (s *CacheTestSuite) TestEnsureCached_SanitizesOwnerID() {
	got := s.cache.EnsureCached(s.T().Context(), s.srv.URL+"/a.png", "../../etc/passwd")
	s.Equal("/cached-images/______etc_passwd.png", got)
	s.Equal([]string{"______etc_passwd.png"}, s.dirEntries())
}

func (s *CacheTestSuite) TestEnsureCached_ConcurrentCallersShareDownload() {
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = io.WriteString(w, "shared")
	}))
	defer srv.Close()
	url := srv.URL + "/shared.gif"

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = s.cache.EnsureCached(s.T().Context(), url, "page-8")
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		s.Equal("/cached-images/page-8.gif", r)
	}
	s.Equal(int32(1), hits.Load())
	s.Equal("shared", s.readCached("page-8.gif"))
}

func (s *CacheTestSuite) TestEnsureCached_CancelledCallerDoesNotFailOthers() {
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = io.WriteString(w, "survivor")
	}))
	defer srv.Close()
	url := srv.URL + "/a.png"

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	first := make(chan string, 1)
	go func() { first <- s.cache.EnsureCached(firstCtx, url, "page-9") }()

	s.Require().Eventually(func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan string, 1)
	go func() { second <- s.cache.EnsureCached(context.Background(), url, "page-9") }()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	s.Equal(url, <-first)

	close(release)
	s.Equal("/cached-images/page-9.png", <-second)
	s.Equal(int32(1), hits.Load())
	s.Equal("survivor", s.readCached("page-9.png"))
}

func (s *CacheTestSuite) TestEnsureCached_TempFilesStayOutOfServedDir() {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "head")
		w.(http.Flusher).Flush()
		<-release
		_, _ = io.WriteString(w, "-tail")
	}))
	defer srv.Close()

	done := make(chan string, 1)
	go func() { done <- s.cache.EnsureCached(context.Background(), srv.URL+"/slow.png", "page-10") }()

	s.Require().Eventually(func() bool { return len(s.tempEntries()) == 1 }, time.Second, 5*time.Millisecond)
	s.Empty(s.dirEntries())

	close(release)
	s.Equal("/cached-images/page-10.png", <-done)
	s.Equal([]string{"page-10.png"}, s.dirEntries())
	s.Empty(s.tempEntries())
	s.Equal("head-tail", s.readCached("page-10.png"))
}

func (s *CacheTestSuite) TestNew_SweepsStaleTempFiles() {
	tempDir := filepath.Join(cacheDir, tempDirName)
	stale := filepath.Join(tempDir, "page-11.png.123.tmp")
	fresh := filepath.Join(tempDir, "page-12.png.456.tmp")
	s.Require().NoError(afero.WriteFile(s.fs, stale, []byte("x"), 0o644))
	s.Require().NoError(afero.WriteFile(s.fs, fresh, []byte("x"), 0o644))
	old := time.Now().Add(-2 * staleTempAge)
	s.Require().NoError(s.fs.Chtimes(stale, old, old))

	_, err := New(Config{Dir: cacheDir}, slog.New(slog.NewTextHandler(io.Discard, nil)), WithFs(s.fs))
	s.Require().NoError(err)

	s.Equal([]string{"page-12.png.456.tmp"}, s.tempEntries())
}
