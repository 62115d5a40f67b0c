package lucid

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"github.com/lucidkit/lucidkit/pkg/document"
	"github.com/lucidkit/lucidkit/pkg/errors"
	"github.com/lucidkit/lucidkit/pkg/httputil"
)

const (
	// DefaultBaseURL is the production Lucid API endpoint.
	DefaultBaseURL = "https://api.lucid.co"

	// apiVersion is sent in the Lucid-Api-Version header on every request.
	apiVersion = "1"

	// ProductLucidchart selects the Lucidchart product on document import.
	ProductLucidchart = "lucidchart"

	// importContentType is the content type of the uploaded import file.
	importContentType = "x-application/vnd.lucid.standardImport"

	httpTimeout = 30 * time.Second
)

// Client talks to the Lucid REST API. It handles authentication headers,
// retries with backoff on transient failures, and response caching for
// reads. Use [NewClient] to create one.
type Client struct {
	http          *http.Client
	cache         *httputil.Cache
	apiKey        string
	baseURL       string
	retryAttempts int
	retryDelay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint, typically a
// test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache enables response caching for document reads.
func WithCache(cache *httputil.Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRetryPolicy overrides the default retry behavior of 3 attempts with
// a 1 second initial delay.
func WithRetryPolicy(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// NewClient creates a client authenticated with the given API key.
// Returns an UNAUTHORIZED error for an empty key; use [LoadAPIKey] to
// resolve one from the environment or a config file.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized, "API key must not be empty")
	}
	c := &Client{
		http:          &http.Client{Timeout: httpTimeout},
		apiKey:        apiKey,
		baseURL:       DefaultBaseURL,
		retryAttempts: 3,
		retryDelay:    time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateDocumentRequest describes a document import. Exactly one of
// Document and JSON must be set: Document is serialized by the client,
// JSON is an already-serialized standard-import payload.
type CreateDocumentRequest struct {
	Title    string
	Document *document.Document
	JSON     []byte
	Product  string // defaults to ProductLucidchart
}

// DocumentResult is the API's description of a stored document.
type DocumentResult struct {
	DocumentID string `json:"documentId"`
	Title      string `json:"title"`
	EditURL    string `json:"editUrl"`
	ViewURL    string `json:"viewUrl"`
	Version    int    `json:"version,omitempty"`
}

// CreateDocument uploads a document and returns the identifier the
// service assigned. Returns AMBIGUOUS_INPUT when both or neither of
// req.Document and req.JSON are set. Serialization failures surface
// before any network traffic; transient upload failures are retried.
func (c *Client) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*DocumentResult, error) {
	if req.Document != nil && req.JSON != nil {
		return nil, errors.New(errors.ErrCodeAmbiguousInput, "only one of document or json must be provided")
	}
	if req.Document == nil && req.JSON == nil {
		return nil, errors.New(errors.ErrCodeAmbiguousInput, "either document or json must be provided")
	}

	payload := req.JSON
	if req.Document != nil {
		var err error
		if payload, err = document.MarshalDocument(req.Document); err != nil {
			return nil, err
		}
	}

	product := req.Product
	if product == "" {
		product = ProductLucidchart
	}

	body, contentType, err := importForm(req.Title, product, payload)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build import form")
	}

	var result DocumentResult
	err = c.retry(ctx, func() error {
		return c.do(ctx, http.MethodPost, c.baseURL+"/documents", contentType, body, &result)
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDocument fetches a stored document's metadata by its remote
// identifier. With a cache configured, fresh responses are served from
// disk; pass refresh to bypass it.
func (c *Client) GetDocument(ctx context.Context, documentID string, refresh bool) (*DocumentResult, error) {
	key := "document:" + documentID

	var result DocumentResult
	if c.cache != nil && !refresh {
		if ok, _ := c.cache.Get(key, &result); ok {
			return &result, nil
		}
	}

	err := c.retry(ctx, func() error {
		return c.do(ctx, http.MethodGet, c.baseURL+"/documents/"+documentID, "", nil, &result)
	})
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(key, &result)
	}
	return &result, nil
}

// TrashDocument moves a stored document to the trash.
func (c *Client) TrashDocument(ctx context.Context, documentID string) error {
	err := c.retry(ctx, func() error {
		return c.do(ctx, http.MethodDelete, c.baseURL+"/documents/"+documentID+"/trash", "", nil, nil)
	})
	if err != nil {
		return err
	}
	if c.cache != nil {
		_ = c.cache.Delete("document:" + documentID)
	}
	return nil
}

func (c *Client) retry(ctx context.Context, fn func() error) error {
	return httputil.Retry(ctx, c.retryAttempts, c.retryDelay, fn)
}

// do performs one HTTP request with the client's auth headers and decodes
// the JSON response into v (if non-nil). The body is passed as bytes so
// retries can replay it.
func (c *Client) do(ctx context.Context, method, url, contentType string, body []byte, v any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Lucid-Api-Version", apiVersion)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s %s", method, url)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "decode response")
	}
	return nil
}

// checkStatus maps HTTP status codes to structured errors.
func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return errors.New(errors.ErrCodeUnauthorized, "invalid or missing API key")
	case code == http.StatusForbidden:
		return errors.New(errors.ErrCodeForbidden, "API key lacks access to this resource")
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "document not found")
	case code == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &errors.RateLimitedError{RetryAfter: retryAfter}
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "server error: status %d", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}

// importForm builds the multipart body the import endpoint expects: the
// serialized document as a file part plus title and product fields.
func importForm(title, product string, payload []byte) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="document.lucid"`)
	h.Set("Content-Type", importContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("title", title); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("product", product); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
