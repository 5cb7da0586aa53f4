// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/mock"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

func newTestPullSvc(ctrl *gomock.Controller) (
	*clientPullService,
	*mock.MockSettingsRepository,
	*mock.MockArrayRepository,
	*mock.MockPendingOperationRepository,
	*mock.MockServerAdapter,
) {
	mockSettings := mock.NewMockSettingsRepository(ctrl)
	mockArrays := mock.NewMockArrayRepository(ctrl)
	mockPending := mock.NewMockPendingOperationRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientPullService(mockSettings, mockArrays, mockPending, mockAdapter, NewConnectivity()).(*clientPullService)
	svc.sleep = func(time.Duration) {}
	return svc, mockSettings, mockArrays, mockPending, mockAdapter
}

// noStoredSettings makes every settings read fall back to registry defaults.
func noStoredSettings(mockSettings *mock.MockSettingsRepository) {
	mockSettings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(models.SimpleStateRecord{}, store.ErrSettingNotFound).
		AnyTimes()
}

// ── PullUserState gating ─────────────────────────────────────────────────────

func TestClientPullService_PullUserState_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockAdapter := newTestPullSvc(ctrl)
	mockAdapter.EXPECT().Token().Return("")

	report, err := svc.PullUserState(context.Background(), false, nil)
	require.NoError(t, err)
	require.NotEmpty(t, report.Outcomes)
	for key, outcome := range report.Outcomes {
		assert.Equal(t, models.PullNoToken, outcome, "key %s", key)
	}
}

func TestClientPullService_PullUserState_ReentrancyGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPullSvc(ctrl)
	svc.pulling = true

	report, err := svc.PullUserState(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestClientPullService_PullUserState_Cooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPullSvc(ctrl)
	svc.lastStart = time.Now()

	report, err := svc.PullUserState(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes, "a pull inside the cooldown window is dropped")
}

func TestClientPullService_PullUserState_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No adapter or repository expectations: an offline device must not
	// reach for anything.
	svc, _, _, _, _ := newTestPullSvc(ctrl)
	svc.net.SetOnline(false)

	report, err := svc.PullUserState(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

func TestClientPullService_PullUserState_SyncDisabledRechecksToggleOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, _, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	mockPending.EXPECT().List(ctx).Return(nil, nil)
	mockSettings.EXPECT().
		Get(gomock.Any(), models.KeySyncEnabled).
		Return(models.SimpleStateRecord{Key: models.KeySyncEnabled, Value: false, LastModified: `"v1"`}, nil).
		AnyTimes()

	// The server still says disabled.
	mockAdapter.EXPECT().
		GetState(gomock.Any(), models.KeySyncEnabled, `"v1"`, int64(0)).
		Return(models.StateResponse{Value: json.RawMessage(`false`), LastModified: "2026-08-30T10:00:00Z"}, `"v2"`, nil)
	mockSettings.EXPECT().
		Set(gomock.Any(), models.SimpleStateRecord{Key: models.KeySyncEnabled, Value: false, LastModified: `"v2"`}).
		Return(nil)

	report, err := svc.PullUserState(ctx, false, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.PullOutcome{models.KeySyncEnabled: models.PullOK}, report.Outcomes,
		"only the toggle itself is refreshed while sync stays disabled")
}

func TestClientPullService_PullUserState_BufferedToggleBlocksRecheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, _, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	mockSettings.EXPECT().
		Get(gomock.Any(), models.KeySyncEnabled).
		Return(models.SimpleStateRecord{Key: models.KeySyncEnabled, Value: false}, nil)

	// The user flipped the toggle off on this device and the push has not
	// landed yet. The recheck must not fetch the server's value over it.
	mockPending.EXPECT().List(ctx).Return([]models.PendingOperation{
		{LocalID: 1, Type: models.OpSimpleUpdate, Key: models.KeySyncEnabled, Value: false},
	}, nil)

	report, err := svc.PullUserState(ctx, false, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]models.PullOutcome{models.KeySyncEnabled: models.PullSkippedPending}, report.Outcomes)
}

// ── Anti-clobber ─────────────────────────────────────────────────────────────

func TestClientPullService_PullUserState_PendingKeySkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	noStoredSettings(mockSettings)
	mockArrays.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	// A buffered delta protects its collection even though the operation
	// itself carries no key field.
	mockPending.EXPECT().List(ctx).Return([]models.PendingOperation{
		{LocalID: 1, Type: models.OpReadDelta, GUID: "item-1", Action: models.ActionAdd},
	}, nil)

	mockAdapter.EXPECT().
		GetState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.StateResponse{}, "", adapter.ErrNotModified).
		AnyTimes()

	report, err := svc.PullUserState(ctx, false, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PullSkippedPending, report.Outcomes[models.KeyRead])
	assert.Equal(t, models.PullNotModified, report.Outcomes[models.KeyStarred])
}

// ── Per-key reconciliation ───────────────────────────────────────────────────

func TestClientPullService_Reconcile_MergeFullSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, _, _ := newTestPullSvc(ctrl)
	ctx := context.Background()

	local := []models.ArrayItem{
		{GUID: "item-a", EventAt: "2026-08-01T00:00:00Z"},
		{GUID: "item-b", EventAt: "2026-08-02T00:00:00Z"},
	}
	mockArrays.EXPECT().List(ctx, models.KeyRead).Return(local, nil)
	mockArrays.EXPECT().
		Add(ctx, models.KeyRead, models.ArrayItem{GUID: "item-c", EventAt: "2026-08-03T00:00:00Z"}).
		Return(nil)
	mockArrays.EXPECT().Remove(ctx, models.KeyRead, "item-a").Return(nil)
	mockSettings.EXPECT().Get(ctx, models.KeyRead).Return(models.SimpleStateRecord{}, store.ErrSettingNotFound)
	mockSettings.EXPECT().
		Set(ctx, models.SimpleStateRecord{Key: models.KeyRead, LastModified: `"v7"`}).
		Return(nil)

	state := models.StateResponse{
		Value: json.RawMessage(`[
			{"guid":"item-b","readAt":"2026-08-02T00:00:00Z"},
			{"guid":"item-c","readAt":"2026-08-03T00:00:00Z"}
		]`),
	}
	err := svc.reconcile(ctx, models.StateKeys[models.KeyRead], state, `"v7"`, false)
	require.NoError(t, err)
}

func TestClientPullService_Reconcile_PartialNeverRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, _, _ := newTestPullSvc(ctrl)
	ctx := context.Background()

	local := []models.ArrayItem{{GUID: "item-a", EventAt: "2026-08-01T00:00:00Z"}}
	mockArrays.EXPECT().List(ctx, models.KeyStarred).Return(local, nil)
	mockArrays.EXPECT().
		Add(ctx, models.KeyStarred, models.ArrayItem{GUID: "item-d", EventAt: "2026-08-04T00:00:00Z"}).
		Return(nil)
	// No Remove expectation: a partial view cannot prove non-existence.
	mockSettings.EXPECT().Get(ctx, models.KeyStarred).Return(models.SimpleStateRecord{}, store.ErrSettingNotFound)
	mockSettings.EXPECT().Set(ctx, gomock.Any()).Return(nil)

	state := models.StateResponse{
		Value:   json.RawMessage(`[{"guid":"item-d","starredAt":"2026-08-04T00:00:00Z"}]`),
		Partial: true,
	}
	err := svc.reconcile(ctx, models.StateKeys[models.KeyStarred], state, `"v8"`, false)
	require.NoError(t, err)
}

func TestClientPullService_Reconcile_ForceReplaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, _, _ := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockArrays.EXPECT().
		Replace(ctx, models.KeyRead, []models.ArrayItem{{GUID: "item-x", EventAt: "2026-08-05T00:00:00Z"}}).
		Return(nil)
	mockSettings.EXPECT().Get(ctx, models.KeyRead).Return(models.SimpleStateRecord{}, store.ErrSettingNotFound)
	mockSettings.EXPECT().Set(ctx, gomock.Any()).Return(nil)

	state := models.StateResponse{
		Value: json.RawMessage(`[{"guid":"ITEM-X","readAt":"2026-08-05T00:00:00Z"}]`),
	}
	err := svc.reconcile(ctx, models.StateKeys[models.KeyRead], state, `"v9"`, true)
	require.NoError(t, err)
}

func TestClientPullService_Reconcile_SimpleKeyOverwrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, _, _, _ := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockSettings.EXPECT().
		Set(ctx, models.SimpleStateRecord{Key: models.KeyTheme, Value: "light", LastModified: `"v3"`}).
		Return(nil)

	state := models.StateResponse{Value: json.RawMessage(`"light"`)}
	err := svc.reconcile(ctx, models.StateKeys[models.KeyTheme], state, `"v3"`, false)
	require.NoError(t, err)
}

// ── Retries ──────────────────────────────────────────────────────────────────

func TestClientPullService_FetchState_RetriesTransportErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockAdapter := newTestPullSvc(ctrl)

	var delays []time.Duration
	svc.sleep = func(d time.Duration) { delays = append(delays, d) }

	gomock.InOrder(
		mockAdapter.EXPECT().
			GetState(gomock.Any(), models.KeyTheme, "", int64(0)).
			Return(models.StateResponse{}, "", errors.New("dial tcp: timeout")),
		mockAdapter.EXPECT().
			GetState(gomock.Any(), models.KeyTheme, "", int64(0)).
			Return(models.StateResponse{}, "", errors.New("dial tcp: timeout")),
		mockAdapter.EXPECT().
			GetState(gomock.Any(), models.KeyTheme, "", int64(0)).
			Return(models.StateResponse{Value: json.RawMessage(`"dark"`)}, `"v1"`, nil),
	)

	state, tag, err := svc.fetchState(context.Background(), models.KeyTheme, "", 0)
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, tag)
	assert.JSONEq(t, `"dark"`, string(state.Value))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays, "linear backoff")
}

func TestClientPullService_FetchState_ServerAnswersAreFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockAdapter := newTestPullSvc(ctrl)

	mockAdapter.EXPECT().
		GetState(gomock.Any(), models.KeyTheme, "", int64(0)).
		Return(models.StateResponse{}, "", adapter.ErrInternalServerError).
		Times(1)

	_, _, err := svc.fetchState(context.Background(), models.KeyTheme, "", 0)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

// ── Connectivity ─────────────────────────────────────────────────────────────

func TestClientPullService_PullUserState_TransportFailureShortCircuitsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, _, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	var sleeps int
	svc.sleep = func(time.Duration) { sleeps++ }

	mockAdapter.EXPECT().Token().Return("token")
	noStoredSettings(mockSettings)
	mockPending.EXPECT().List(ctx).Return(nil, nil)

	// Only the first key in the pass may hit the wire: three attempts, all
	// dying at the transport level.
	mockAdapter.EXPECT().
		GetState(gomock.Any(), models.KeyAnimationSpeed, "", int64(0)).
		Return(models.StateResponse{}, "", errors.New("dial tcp: connection refused")).
		Times(3)

	report, err := svc.PullUserState(ctx, false, nil)
	require.NoError(t, err)

	var failed, offline int
	for _, outcome := range report.Outcomes {
		switch outcome {
		case models.PullError:
			failed++
		case models.PullOffline:
			offline++
		}
	}
	assert.Equal(t, 1, failed, "only the key that hit the wire reports an error")
	assert.Equal(t, len(report.Outcomes)-1, offline, "the rest of the pass is abandoned")
	assert.Equal(t, 2, sleeps, "backoff runs once, not once per key")
	assert.False(t, svc.net.Online(), "exhausted retries mark the device offline")
}

// ── Targeted pulls ───────────────────────────────────────────────────────────

func TestClientPullService_PullKeys_TargetedPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, _, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	mockPending.EXPECT().List(ctx).Return([]models.PendingOperation{
		{LocalID: 2, Type: models.OpReadDelta, GUID: "item-1", Action: models.ActionAdd},
	}, nil)

	mockSettings.EXPECT().
		Get(gomock.Any(), models.KeyTheme).
		Return(models.SimpleStateRecord{}, store.ErrSettingNotFound)
	mockAdapter.EXPECT().
		GetState(gomock.Any(), models.KeyTheme, "", int64(0)).
		Return(models.StateResponse{Value: json.RawMessage(`"light"`)}, `"v3"`, nil)
	mockSettings.EXPECT().
		Set(gomock.Any(), models.SimpleStateRecord{Key: models.KeyTheme, Value: "light", LastModified: `"v3"`}).
		Return(nil)

	report, err := svc.PullKeys(ctx, models.KeyTheme, models.KeyRead, models.KeyFontSize, "unknown")
	require.NoError(t, err)
	assert.Equal(t, map[string]models.PullOutcome{
		models.KeyTheme: models.PullOK,
		models.KeyRead:  models.PullSkippedPending,
	}, report.Outcomes, "local-only and unregistered keys are ignored, buffered keys stay protected")
}

func TestClientPullService_PullKeys_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestPullSvc(ctrl)
	svc.net.SetOnline(false)

	report, err := svc.PullKeys(context.Background(), models.KeyTheme)
	require.NoError(t, err)
	assert.Empty(t, report.Outcomes)
}

// ── Theme canary ─────────────────────────────────────────────────────────────

func TestClientPullService_PullUserState_ThemeCanaryAbandonsDeferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	mockSettings.EXPECT().
		Get(gomock.Any(), models.KeyTheme).
		Return(models.SimpleStateRecord{Key: models.KeyTheme, Value: "dark"}, nil).
		AnyTimes()
	mockSettings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(models.SimpleStateRecord{}, store.ErrSettingNotFound).
		AnyTimes()
	mockSettings.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockArrays.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	mockPending.EXPECT().List(ctx).Return(nil, nil)

	mockAdapter.EXPECT().
		GetState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, _ int64) (models.StateResponse, string, error) {
			if key == models.KeyTheme {
				return models.StateResponse{Value: json.RawMessage(`"light"`)}, `"v2"`, nil
			}
			return models.StateResponse{}, "", adapter.ErrNotModified
		}).
		AnyTimes()

	report, err := svc.PullUserState(ctx, false, []string{models.KeyRSSFeeds, models.KeyKeywordBlacklist})
	require.NoError(t, err)
	assert.NotEqual(t, models.PullSkippedDeferred, report.Outcomes[models.KeyRSSFeeds],
		"divergent theme must abandon the skip list")
}

func TestClientPullService_PullUserState_DeferredKeysSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSettings, mockArrays, mockPending, mockAdapter := newTestPullSvc(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Token().Return("token")
	mockSettings.EXPECT().
		Get(gomock.Any(), models.KeyTheme).
		Return(models.SimpleStateRecord{Key: models.KeyTheme, Value: "dark"}, nil).
		AnyTimes()
	mockSettings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(models.SimpleStateRecord{}, store.ErrSettingNotFound).
		AnyTimes()
	mockSettings.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockArrays.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	mockPending.EXPECT().List(ctx).Return(nil, nil)

	mockAdapter.EXPECT().
		GetState(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key, _ string, _ int64) (models.StateResponse, string, error) {
			if key == models.KeyTheme {
				// Canary agrees with the local value.
				return models.StateResponse{Value: json.RawMessage(`"dark"`)}, `"v1"`, nil
			}
			return models.StateResponse{}, "", adapter.ErrNotModified
		}).
		AnyTimes()

	report, err := svc.PullUserState(ctx, false, []string{models.KeyRSSFeeds})
	require.NoError(t, err)
	assert.Equal(t, models.PullSkippedDeferred, report.Outcomes[models.KeyRSSFeeds])
}

// ── Snapshot decoding ────────────────────────────────────────────────────────

func TestDecodeArrayItems(t *testing.T) {
	raw := json.RawMessage(`[
		{"guid":"Item-A","readAt":"2026-08-01T00:00:00Z"},
		{"guid":"item-a","readAt":"2026-08-02T00:00:00Z"},
		{"guid":"","readAt":"2026-08-03T00:00:00Z"},
		{"readAt":"2026-08-04T00:00:00Z"},
		{"guid":"item-b","readAt":"2026-08-05T00:00:00Z"}
	]`)

	items, err := decodeArrayItems(raw, "readAt")
	require.NoError(t, err)
	assert.Equal(t, []models.ArrayItem{
		{GUID: "item-a", EventAt: "2026-08-01T00:00:00Z"},
		{GUID: "item-b", EventAt: "2026-08-05T00:00:00Z"},
	}, items, "invalid entries dropped, guids lowercased and deduplicated")
}

func TestDecodeArrayItems_Empty(t *testing.T) {
	items, err := decodeArrayItems(nil, "readAt")
	require.NoError(t, err)
	assert.Nil(t, items)
}
