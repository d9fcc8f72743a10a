package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tinylink/internal/client/models"
	"github.com/dmitrijs2005/tinylink/internal/logging"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// TokenProvider supplies the current bearer token, or "" when anonymous.
type TokenProvider func() string

// HTTPClient talks JSON over HTTP to the backend.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokenFn TokenProvider
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokenFn TokenProvider, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
		tokenFn: tokenFn,
		log:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) ListLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := c.do(ctx, http.MethodGet, "/api/link", nil, &links, false); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *HTTPClient) CreateLink(ctx context.Context, req models.CreateLinkRequest) (*models.Link, error) {
	// fail locally before issuing any request
	if err := req.Validate(); err != nil {
		return nil, &Error{Kind: ErrValidation, Message: err.Error()}
	}
	var link models.Link
	if err := c.do(ctx, http.MethodPost, "/api/link", req, &link, false); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *HTTPClient) UpdateLink(ctx context.Context, id string, req models.UpdateLinkRequest) (*models.Link, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Kind: ErrValidation, Message: err.Error()}
	}
	var link models.Link
	if err := c.do(ctx, http.MethodPut, "/api/link/"+id, req, &link, false); err != nil {
		return nil, err
	}
	return &link, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	creds := models.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return "", &Error{Kind: ErrValidation, Message: err.Error()}
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &resp, true); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (string, error) {
	reg := models.Registration{Username: username, Email: email, Password: password}
	if err := reg.Validate(); err != nil {
		return "", &Error{Kind: ErrValidation, Message: err.Error()}
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", reg, &resp, true); err != nil {
		return "", err
	}
	return resp.Token, nil
}

type authResponse struct {
	Token string `json:"token"`
}

// do sends one JSON request and decodes the JSON response into out.
// authCall switches 4xx classification between the auth and link resources.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authCall bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: ErrUnknown, Message: fmt.Sprintf("failed to encode request: %v", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: ErrUnknown, Message: fmt.Sprintf("failed to build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if tok := c.tokenFn(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		// no response at all: timeout, DNS failure, connection refused
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Kind: ErrNetwork, Message: "server unavailable, check your connection"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.log.Warn(ctx, "failed to read response", "method", method, "path", path, "request_id", requestID, "error", err)
		return &Error{Kind: ErrNetwork, Message: "server unavailable, check your connection"}
	}

	if resp.StatusCode >= 400 {
		return classify(resp.StatusCode, data, authCall)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Kind: ErrUnknown, Message: "unexpected response from server", StatusCode: resp.StatusCode}
		}
	}
	return nil
}

// classify maps an error response to a failure kind. The server's message
// field, when present, is carried verbatim for display.
func classify(status int, body []byte, authCall bool) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	e := &Error{Message: payload.Message, StatusCode: status}
	switch {
	case status == http.StatusNotFound:
		e.Kind = ErrNotFound
		if e.Message == "" {
			e.Message = "resource not found"
		}
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = ErrAuth
		if e.Message == "" {
			e.Message = "invalid credentials"
		}
	case status >= 400 && status < 500 && authCall:
		// duplicate account, malformed credentials
		e.Kind = ErrAuth
		if e.Message == "" {
			e.Message = "authentication failed"
		}
	case status >= 400 && status < 500:
		e.Kind = ErrValidation
		if e.Message == "" {
			e.Message = "invalid request"
		}
	default:
		e.Kind = ErrUnknown
		if e.Message == "" {
			e.Message = "something went wrong, try again later"
		}
	}
	return e
}
