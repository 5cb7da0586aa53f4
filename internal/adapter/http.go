package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deck-reader/internal/config"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/utils"
	"github.com/MKhiriev/go-deck-reader/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu       sync.RWMutex
	token    string
	deviceID string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout. The initial bearer token is taken
// from appCfg.Token; it may be empty for offline-only use.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	// Users often paste the whole Authorization header value from the web
	// app, so accept both "Bearer <token>" and a bare token.
	token := strings.TrimSpace(appCfg.Token)
	if strings.HasPrefix(token, "Bearer ") {
		if bare, err := utils.ParseBearerToken(token); err == nil {
			token = bare
		}
	}

	return &httpServerAdapter{
		client: client,
		token:  token,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SetDeviceID implements [ServerAdapter]. The id is attached as X-Device-ID
// to every subsequent request.
func (h *httpServerAdapter) SetDeviceID(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceID = strings.TrimSpace(id)
}

// GetState implements [ServerAdapter]. It GETs /api/profile/:key with an
// optional If-None-Match header and since query parameter. A 304 answer maps
// to [ErrNotModified]. An expired stored token short-circuits without a
// network attempt.
func (h *httpServerAdapter) GetState(ctx context.Context, key, etag string, since int64) (models.StateResponse, string, error) {
	if err := h.checkToken(); err != nil {
		return models.StateResponse{}, "", err
	}

	req := h.authedRequest(ctx)
	if etag != "" {
		req.SetHeader("If-None-Match", etag)
	}
	if since > 0 {
		req.SetQueryParam("since", strconv.FormatInt(since, 10))
	}

	resp, err := req.Get("/api/profile/" + url.PathEscape(key))
	if err != nil {
		return models.StateResponse{}, "", fmt.Errorf("get state request (key=%s): %w", key, err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		return models.StateResponse{}, etag, ErrNotModified
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StateResponse{}, "", err
	}

	var state models.StateResponse
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.StateResponse{}, "", fmt.Errorf("decode state response (key=%s): %w", key, err)
	}

	return state, resp.Header().Get("ETag"), nil
}

// PushOperations implements [ServerAdapter]. It POSTs the chunk to
// POST /api/profile and decodes the per-operation verdicts. An expired
// stored token short-circuits without a network attempt.
func (h *httpServerAdapter) PushOperations(ctx context.Context, ops []models.PendingOperation) (models.BatchResult, error) {
	if err := h.checkToken(); err != nil {
		return models.BatchResult{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.BatchRequest{Operations: ops}).
		Post("/api/profile")
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("push operations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchResult{}, err
	}

	var result models.BatchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.BatchResult{}, fmt.Errorf("decode batch response: %w", err)
	}

	return result, nil
}

// RefreshFeed implements [ServerAdapter]. It POSTs the since watermark to
// POST /api/refresh. 429 maps to [ErrTooManyRequests].
func (h *httpServerAdapter) RefreshFeed(ctx context.Context, since int64) (models.RefreshResponse, error) {
	if err := h.checkToken(); err != nil {
		return models.RefreshResponse{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{Since: since}).
		Post("/api/refresh")
	if err != nil {
		return models.RefreshResponse{}, fmt.Errorf("refresh feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RefreshResponse{}, err
	}

	var refresh models.RefreshResponse
	if err = json.Unmarshal(resp.Body(), &refresh); err != nil {
		return models.RefreshResponse{}, fmt.Errorf("decode refresh response: %w", err)
	}

	return refresh, nil
}

// ListItems implements [ServerAdapter]. It POSTs the guid list to
// POST /api/list and decodes the full item bodies.
func (h *httpServerAdapter) ListItems(ctx context.Context, guids []string) ([]models.FeedItem, error) {
	if err := h.checkToken(); err != nil {
		return nil, err
	}
	if len(guids) == 0 {
		return nil, nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ListRequest{GUIDs: guids}).
		Post("/api/list")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.FeedItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return items, nil
}

// Ping implements [ServerAdapter]. It GETs /api/ping without any token
// requirement so the probe also works for unlinked devices.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	h.mu.RLock()
	token, deviceID := h.token, h.deviceID
	h.mu.RUnlock()

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if deviceID != "" {
		req.SetHeader("X-Device-ID", deviceID)
	}
	return req
}

// checkToken fails fast when the stored token is missing or already expired,
// saving a round trip that could only end in 401.
func (h *httpServerAdapter) checkToken() error {
	token := h.Token()
	if token == "" {
		return ErrUnauthorized
	}
	if utils.TokenExpired(token) {
		return ErrTokenExpired
	}
	return nil
}
