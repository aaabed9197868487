package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/googleapis/gax-go/v2/callctx"
	"google.golang.org/api/option"
)

const (
	DefaultUserAgent = "gameshelf/1.0"
	maxErrorBody     = 4096

	noCacheControl = "no-cache, no-store"
	noCachePragma  = "no-cache"
)

// Source retrieves the raw catalog document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// SourceOptions configures the sources built by NewSource.
type SourceOptions struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string

	// GCSCredentialsFile is a service account key for private buckets. Public
	// buckets are read without authentication when it is empty.
	GCSCredentialsFile string
	// GCSClientOptions are appended to the options used to build the storage client.
	GCSClientOptions []option.ClientOption
}

// NewSource picks a source by the scheme of raw: http(s), gs, file or a
// plain filesystem path.
func NewSource(raw string, opts SourceOptions) (Source, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("catalog location is required")
	}

	if !strings.Contains(raw, "://") {
		return &FileSource{Path: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog location: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return nil, fmt.Errorf("catalog url %q has no host", raw)
		}
		return NewHTTPSource(u.String(), opts), nil
	case "gs":
		bucket := u.Host
		object := strings.TrimPrefix(u.Path, "/")
		if bucket == "" || object == "" {
			return nil, fmt.Errorf("catalog location %q must look like gs://bucket/object", raw)
		}
		return &GCSSource{Bucket: bucket, Object: object, opts: opts}, nil
	case "file":
		path := u.Path
		if u.Host != "" && u.Host != "localhost" {
			path = filepath.Join(u.Host, u.Path)
		}
		if path == "" {
			return nil, fmt.Errorf("catalog location %q has no path", raw)
		}
		return &FileSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported catalog scheme %q", u.Scheme)
	}
}

// HTTPSource performs a single GET that bypasses every cache on the way.
type HTTPSource struct {
	url       string
	userAgent string
	http      *http.Client
}

func NewHTTPSource(rawURL string, opts SourceOptions) *HTTPSource {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPSource{url: rawURL, userAgent: userAgent, http: httpClient}
}

func (s *HTTPSource) String() string { return s.url }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := s.newRequest(ctx)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: err}
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &FetchError{Source: s.url, Err: fmt.Errorf("catalog request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var bodyErr error
		if text := strings.TrimSpace(string(body)); text != "" {
			bodyErr = errors.New(text)
		}
		return nil, &FetchError{Source: s.url, Status: resp.StatusCode, Err: bodyErr}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: s.url, Status: resp.StatusCode, Err: fmt.Errorf("read catalog body: %w", err)}
	}
	return data, nil
}

func (s *HTTPSource) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", noCacheControl)
	req.Header.Set("Pragma", noCachePragma)
	req.Header.Set("User-Agent", s.userAgent)
	return req, nil
}

// GCSSource reads the catalog from a Cloud Storage object.
type GCSSource struct {
	Bucket string
	Object string
	opts   SourceOptions
}

func (s *GCSSource) String() string { return "gs://" + s.Bucket + "/" + s.Object }

func (s *GCSSource) clientOptions() []option.ClientOption {
	var out []option.ClientOption
	if s.opts.GCSCredentialsFile != "" {
		out = append(out, option.WithCredentialsFile(s.opts.GCSCredentialsFile))
	} else {
		out = append(out, option.WithoutAuthentication())
	}
	if s.opts.UserAgent != "" {
		out = append(out, option.WithUserAgent(s.opts.UserAgent))
	}
	return append(out, s.opts.GCSClientOptions...)
}

func (s *GCSSource) Fetch(ctx context.Context) ([]byte, error) {
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	// Public objects are edge cached; ask for the live object.
	ctx = callctx.SetHeaders(ctx, "Cache-Control", noCacheControl, "Pragma", noCachePragma)

	client, err := storage.NewClient(ctx, s.clientOptions()...)
	if err != nil {
		return nil, &FetchError{Source: s.String(), Err: fmt.Errorf("create storage client: %w", err)}
	}
	defer client.Close()

	reader, err := client.Bucket(s.Bucket).Object(s.Object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, &FetchError{Source: s.String(), Status: http.StatusNotFound, Err: err}
		}
		return nil, &FetchError{Source: s.String(), Err: fmt.Errorf("open object: %w", err)}
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, &FetchError{Source: s.String(), Err: fmt.Errorf("read object: %w", err)}
	}
	return data, nil
}

// FileSource reads the catalog from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) String() string { return s.Path }

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: s.Path, Err: err}
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &FetchError{Source: s.Path, Err: err}
	}
	return data, nil
}
