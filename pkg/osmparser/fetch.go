package osmparser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gojek/heimdall/v7"
	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/sirupsen/logrus"
)

const (
	downloadTimeout = 10 * time.Minute
	retryCount      = 3
	backoffInterval = 2 * time.Second
	maxJitter       = 500 * time.Millisecond
)

type Downloader struct {
	client heimdall.Doer
}

type DownloaderOption func(*downloaderConfig)

type downloaderConfig struct {
	timeout         time.Duration
	retryCount      int
	backoffInterval time.Duration
}

func WithRetry(count int, backoff time.Duration) DownloaderOption {
	return func(c *downloaderConfig) {
		c.retryCount = count
		c.backoffInterval = backoff
	}
}

func WithTimeout(timeout time.Duration) DownloaderOption {
	return func(c *downloaderConfig) {
		c.timeout = timeout
	}
}

func NewDownloader(opts ...DownloaderOption) *Downloader {
	cfg := downloaderConfig{
		timeout:         downloadTimeout,
		retryCount:      retryCount,
		backoffInterval: backoffInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	jitter := maxJitter
	if cfg.backoffInterval < jitter {
		jitter = cfg.backoffInterval
	}
	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(cfg.timeout),
		httpclient.WithRetryCount(cfg.retryCount),
		httpclient.WithRetrier(heimdall.NewRetrier(heimdall.NewConstantBackoff(cfg.backoffInterval, jitter))),
	)
	return &Downloader{client: client}
}

// DownloadExtract download road network extract (misal .osm.pbf dari geofabrik) ke dst.
func (d *Downloader) DownloadExtract(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download %s: unexpected status %d", url, resp.StatusCode)
	}

	tmp := dst + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	logrus.WithFields(logrus.Fields{
		"url":   url,
		"file":  dst,
		"bytes": n,
	}).Info("road network extract downloaded")
	return nil
}

// DownloadExtract pakai Downloader default.
func DownloadExtract(ctx context.Context, url, dst string) error {
	return NewDownloader().DownloadExtract(ctx, url, dst)
}
