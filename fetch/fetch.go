// Package fetch retrieves the remote satellite image and persists it
// locally.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ErrBadStatus marks a response outside the 2xx range.
var ErrBadStatus = goerr.New("unexpected HTTP status")

// Client downloads images over HTTP. It remembers the Last-Modified value
// of the previous successful download so that repeated calls can skip an
// unchanged upstream image.
type Client struct {
	http         *http.Client
	lastModified string
}

// New returns a Client whose requests are bounded by timeout.
func New(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Download retrieves url into dest, creating the destination directory if
// absent. The body is streamed to a temporary file and renamed into place,
// so a partial download is never visible at dest and a failed download
// leaves any existing file untouched. Returns false when the server reports
// the resource unchanged since the previous call on this Client.
func (c *Client) Download(ctx context.Context, url, dest string) (bool, error) {
	logger := ctxlog.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, goerr.Wrap(err, "build request", goerr.V("url", url))
	}
	if c.lastModified != "" {
		req.Header.Set("If-Modified-Since", c.lastModified)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, goerr.Wrap(err, "download image", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		logger.Info("image unchanged upstream", "url", url)
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, goerr.Wrap(ErrBadStatus, "download image",
			goerr.V("url", url), goerr.V("status", resp.Status))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, goerr.Wrap(err, "create image directory",
			goerr.V("dir", filepath.Dir(dest)))
	}

	n, err := writeAtomic(dest, resp.Body)
	if err != nil {
		return false, err
	}

	c.lastModified = resp.Header.Get("Last-Modified")
	logger.Info("image downloaded", "url", url, "dest", dest, "bytes", n)
	return true, nil
}

func writeAtomic(dest string, r io.Reader) (int64, error) {
	tmp := dest + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, goerr.Wrap(err, "create temp file", goerr.V("path", tmp))
	}
	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, goerr.Wrap(err, "write image", goerr.V("path", tmp))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return 0, goerr.Wrap(err, "flush image", goerr.V("path", tmp))
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return 0, goerr.Wrap(err, "replace image", goerr.V("path", dest))
	}
	return n, nil
}
