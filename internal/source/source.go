package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/klauern/rulegen/internal/logging"
	"github.com/klauern/rulegen/internal/util"
)

// Reader resolves a path or URL into the raw text of a rules document.
type Reader interface {
	Read(ctx context.Context, location string) (string, error)
}

// HTTPError is returned when a URL source answers with a non-2xx status.
type HTTPError struct {
	URL        string
	StatusCode int
	Reason     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP fetch failed for %s: %d %s", e.URL, e.StatusCode, e.Reason)
}

// ReadError is returned when a local source cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("local read failed for %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsURL reports whether location uses an http or https scheme.
func IsURL(location string) bool {
	return util.IsRemote(location)
}

// Default reads local files and fetches URLs. HTML responses are converted to
// Markdown.
type Default struct {
	client    *http.Client
	converter *md.Converter
}

// Option configures a Default reader.
type Option func(*Default)

// WithHTTPClient sets the client used for URL sources.
func WithHTTPClient(c *http.Client) Option {
	return func(d *Default) { d.client = c }
}

// New creates the default reader.
func New(opts ...Option) *Default {
	d := &Default{
		client:    http.DefaultClient,
		converter: md.NewConverter("", true, nil),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Read implements Reader.
func (d *Default) Read(ctx context.Context, location string) (string, error) {
	if IsURL(location) {
		return d.fetch(ctx, strings.TrimSpace(location))
	}
	return readFile(location)
}

func readFile(path string) (string, error) {
	// #nosec G304 - reading a user-supplied rules file is the purpose of this function
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	logging.Debug("read local source", logging.Path(path), logging.Bytes(len(data)))
	return string(data), nil
}

func (d *Default) fetch(ctx context.Context, url string) (string, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &HTTPError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		markdown, err := d.converter.ConvertString(string(body))
		if err != nil {
			return "", fmt.Errorf("converting HTML to markdown: %w", err)
		}
		log.Debug("fetched HTML source", logging.Path(url), logging.Bytes(len(body)))
		return markdown, nil
	}

	log.Debug("fetched source", logging.Path(url), logging.Bytes(len(body)))
	return string(body), nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

// IsNotFound reports whether err means the source does not exist, locally or
// remotely.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, os.ErrNotExist)
}
