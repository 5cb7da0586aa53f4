// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deck-reader/internal/config"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/models"
)

func freshToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	log := logger.Nop()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{Token: token}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, log)
	require.NoError(t, err)
	a.SetDeviceID("device-1")
	return a.(*httpServerAdapter)
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: "  "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter base url")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url", "https://reader.example.com", "https://reader.example.com", false},
		{"trailing slash trimmed", "https://reader.example.com/", "https://reader.example.com", false},
		{"bare host gets scheme", "localhost:8080", "http://localhost:8080", false},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetState ─────────────────────────────────────────────────────────────────

func TestGetState_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile/read", r.URL.Path)
		assert.Equal(t, "device-1", r.Header.Get("X-Device-ID"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		w.Header().Set("ETag", `"v42"`)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StateResponse{
			Value:        json.RawMessage(`[{"guid":"item-1","readAt":"2026-08-30T10:00:00Z"}]`),
			LastModified: "2026-08-30T10:00:00Z",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	state, etag, err := a.GetState(context.Background(), "read", "", 0)

	require.NoError(t, err)
	assert.Equal(t, `"v42"`, etag)
	assert.Equal(t, "2026-08-30T10:00:00Z", state.LastModified)
	assert.JSONEq(t, `[{"guid":"item-1","readAt":"2026-08-30T10:00:00Z"}]`, string(state.Value))
}

func TestGetState_NotModified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, `"v42"`, r.Header.Get("If-None-Match"))
		w.WriteHeader(http.StatusNotModified)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	_, etag, err := a.GetState(context.Background(), "read", `"v42"`, 0)

	require.ErrorIs(t, err, ErrNotModified)
	assert.Equal(t, `"v42"`, etag)
}

func TestGetState_SinceParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1756500000000", r.URL.Query().Get("since"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StateResponse{
			Value:   json.RawMessage(`[]`),
			Partial: true,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	state, _, err := a.GetState(context.Background(), "read", "", 1756500000000)

	require.NoError(t, err)
	assert.True(t, state.Partial)
}

func TestGetState_ExpiredTokenShortCircuits(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, expiredToken(t))
	_, _, err := a.GetState(context.Background(), "read", "", 0)

	require.ErrorIs(t, err, ErrTokenExpired)
	assert.Zero(t, requests, "no network attempt should have been made")
}

func TestGetState_NoToken(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", "")
	_, _, err := a.GetState(context.Background(), "read", "", 0)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── PushOperations ───────────────────────────────────────────────────────────

func TestPushOperations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)

		var req models.BatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Operations, 2)
		assert.Equal(t, models.OpReadDelta, req.Operations[0].Type)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.BatchResult{
			Results: []models.OperationResult{
				{ID: 1, Status: models.OperationStatusSuccess},
				{ID: 2, Status: models.OperationStatusSuccess},
			},
			ServerTime: "2026-08-30T10:00:00Z",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	result, err := a.PushOperations(context.Background(), []models.PendingOperation{
		{LocalID: 1, Type: models.OpReadDelta, GUID: "item-1", Action: models.ActionAdd},
		{LocalID: 2, Type: models.OpSimpleUpdate, Key: models.KeyTheme, Value: "dark"},
	})

	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, models.OperationStatusSuccess, result.Results[0].Status)
}

func TestPushOperations_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	_, err := a.PushOperations(context.Background(), []models.PendingOperation{
		{LocalID: 1, Type: models.OpReadDelta, GUID: "item-1", Action: models.ActionAdd},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── RefreshFeed ──────────────────────────────────────────────────────────────

func TestRefreshFeed_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/refresh", r.URL.Path)

		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(1756500000000), req.Since)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.RefreshResponse{
			Items: []models.ItemHeader{{GUID: "item-9", Timestamp: 1756500100000}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	refresh, err := a.RefreshFeed(context.Background(), 1756500000000)

	require.NoError(t, err)
	require.Len(t, refresh.Items, 1)
	assert.Equal(t, "item-9", refresh.Items[0].GUID)
}

func TestRefreshFeed_TooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("refresh is rate limited"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	_, err := a.RefreshFeed(context.Background(), 0)

	require.ErrorIs(t, err, ErrTooManyRequests)
}

// ── ListItems ────────────────────────────────────────────────────────────────

func TestListItems_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/list", r.URL.Path)

		var req models.ListRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"item-1", "item-2"}, req.GUIDs)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.FeedItem{
			{GUID: "item-1", Title: "First"},
			{GUID: "item-2", Title: "Second"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, freshToken(t))
	items, err := a.ListItems(context.Background(), []string{"item-1", "item-2"})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Title)
}

func TestListItems_EmptyInput(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1", freshToken(t))
	items, err := a.ListItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	assert.NoError(t, a.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", "")
	assert.Error(t, a.Ping(context.Background()))
}
