// Package apiclient talks to the delivery-admin REST API on behalf of the
// console.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"delivery-admin/internal/pkg/errs"
	"delivery-admin/internal/pkg/i18n"

	"golang.org/x/text/language"
)

const msgRequestFailed = "the request could not be completed"

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Language string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tr         *i18n.Translator
	lang       language.Tag
	logger     *slog.Logger
}

func New(cfg Config, tr *i18n.Translator, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tr:     tr,
		lang:   i18n.Match(cfg.Language, language.English),
		logger: logger,
	}
}

// Error is a non-2xx answer. Message is already localized and ready to show.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errs.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errs.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.lang.String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return &Error{Message: c.generic()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode response")
	}
	return nil
}

// decodeError prefers the backend detail, then its message, then a generic
// localized message.
func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: c.generic()}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		c.logger.Debug("unexpected error body", "status", resp.StatusCode, "body", string(data))
		return apiErr
	}

	if detail, ok := body.Detail.(string); ok && strings.TrimSpace(detail) != "" {
		apiErr.Message = detail
	} else if body.Error.Message != "" {
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

func (c *Client) generic() string {
	if c.tr == nil {
		return msgRequestFailed
	}
	return c.tr.In(c.lang, msgRequestFailed)
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
