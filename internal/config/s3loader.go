package config

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3LoaderConfig configures an S3-backed config loader.
type S3LoaderConfig struct {
	S3Client     *s3.Client
	Bucket       string
	Key          string
	CacheTTL     time.Duration // how often to re-check the object (default 5m)
	ErrorBackoff time.Duration // wait after a failed fetch (default 1m)
	Logger       *slog.Logger
}

// S3LoadResult is the outcome of one fetch.
type S3LoadResult struct {
	Data       []byte
	Etag       string
	NotChanged bool // object unchanged since the last fetch (etag match)
}

// S3Loader fetches a JSON config object from S3-compatible storage with
// ETag-conditional requests and TTL caching. A missing object is not an
// error; callers keep their built-in defaults.
type S3Loader struct {
	client *s3.Client
	bucket string
	key    string

	mu           sync.Mutex
	etag         string
	lastCheck    time.Time
	lastError    time.Time
	initialized  bool
	cacheTTL     time.Duration
	errorBackoff time.Duration
	logger       *slog.Logger
}

// NewS3Loader creates a loader with the given config.
func NewS3Loader(cfg S3LoaderConfig) *S3Loader {
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.ErrorBackoff == 0 {
		cfg.ErrorBackoff = time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &S3Loader{
		client:       cfg.S3Client,
		bucket:       cfg.Bucket,
		key:          cfg.Key,
		cacheTTL:     cfg.CacheTTL,
		errorBackoff: cfg.ErrorBackoff,
		logger:       cfg.Logger,
	}
}

// IsEnabled reports whether S3 is configured.
func (l *S3Loader) IsEnabled() bool {
	return l.client != nil
}

// NeedsRefresh reports whether the object should be re-checked.
func (l *S3Loader) NeedsRefresh() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.lastError.IsZero() && time.Since(l.lastError) < l.errorBackoff {
		return false
	}
	return !l.initialized || time.Since(l.lastCheck) > l.cacheTTL
}

// Fetch retrieves the object, honoring the cached ETag. Returns (nil, nil)
// when S3 is not configured or the object does not exist.
func (l *S3Loader) Fetch(ctx context.Context) (*S3LoadResult, error) {
	if l.client == nil {
		return nil, nil
	}

	l.mu.Lock()
	currentEtag := l.etag
	l.mu.Unlock()

	input := &s3.GetObjectInput{Bucket: &l.bucket, Key: &l.key}
	if currentEtag != "" {
		quoted := "\"" + currentEtag + "\""
		input.IfNoneMatch = &quoted
	}

	resp, err := l.client.GetObject(ctx, input)
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			l.markChecked(true)
			l.logger.Debug("S3 config object not found, using defaults",
				"bucket", l.bucket, "key", l.key)
			return nil, nil
		}

		var coded interface{ ErrorCode() string }
		if errors.As(err, &coded) && coded.ErrorCode() == "NotModified" {
			l.markChecked(false)
			return &S3LoadResult{NotChanged: true}, nil
		}

		l.markChecked(true)
		l.logger.Error("failed to fetch S3 config",
			"error", err, "bucket", l.bucket, "key", l.key)
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		l.markChecked(true)
		return nil, err
	}

	newEtag := ""
	if resp.ETag != nil {
		newEtag = strings.Trim(*resp.ETag, "\"")
	}

	l.mu.Lock()
	l.initialized = true
	l.lastCheck = time.Now()
	l.lastError = time.Time{}
	l.etag = newEtag
	l.mu.Unlock()

	l.logger.Debug("S3 config fetched",
		"bucket", l.bucket, "key", l.key, "etag", newEtag, "size", len(data))

	return &S3LoadResult{Data: data, Etag: newEtag}, nil
}

func (l *S3Loader) markChecked(failed bool) {
	l.mu.Lock()
	l.initialized = true
	l.lastCheck = time.Now()
	if failed {
		l.lastError = time.Now()
	}
	l.mu.Unlock()
}
