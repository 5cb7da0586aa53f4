// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-deck-reader/internal/mock"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/models"
)

func newTestInteractionSvc(ctrl *gomock.Controller) (
	*clientInteractionService,
	*mock.MockArrayRepository,
	*mock.MockFeedItemRepository,
	*mock.MockClientQueueService,
) {
	mockArrays := mock.NewMockArrayRepository(ctrl)
	mockFeedItems := mock.NewMockFeedItemRepository(ctrl)
	mockQueue := mock.NewMockClientQueueService(ctrl)

	svc := NewClientInteractionService(mockArrays, mockFeedItems, mockQueue).(*clientInteractionService)
	return svc, mockArrays, mockFeedItems, mockQueue
}

func TestClientInteractionService_ToggleRead_MarksUnreadItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockArrays, mockFeedItems, mockQueue := newTestInteractionSvc(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Guids are normalized before anything touches storage.
	mockFeedItems.EXPECT().Get(ctx, "item-1").Return(models.FeedItem{GUID: "item-1"}, nil)
	mockArrays.EXPECT().Contains(ctx, models.KeyRead, "item-1").Return(false, nil)
	mockArrays.EXPECT().
		Add(ctx, models.KeyRead, models.ArrayItem{GUID: "item-1", EventAt: "2026-08-30T12:00:00Z"}).
		Return(nil)
	mockQueue.EXPECT().
		QueueAndAttempt(ctx, models.PendingOperation{
			Type:      models.OpReadDelta,
			GUID:      "item-1",
			Action:    models.ActionAdd,
			Timestamp: now,
		}).
		Return(nil)

	nowRead, err := svc.ToggleRead(ctx, "  Item-1 ")
	require.NoError(t, err)
	assert.True(t, nowRead)
}

func TestClientInteractionService_ToggleRead_UnmarksReadItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockArrays, mockFeedItems, mockQueue := newTestInteractionSvc(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mockFeedItems.EXPECT().Get(ctx, "item-1").Return(models.FeedItem{GUID: "item-1"}, nil)
	mockArrays.EXPECT().Contains(ctx, models.KeyRead, "item-1").Return(true, nil)
	mockArrays.EXPECT().Remove(ctx, models.KeyRead, "item-1").Return(nil)
	mockQueue.EXPECT().
		QueueAndAttempt(ctx, models.PendingOperation{
			Type:      models.OpReadDelta,
			GUID:      "item-1",
			Action:    models.ActionRemove,
			Timestamp: now,
		}).
		Return(nil)

	nowRead, err := svc.ToggleRead(ctx, "item-1")
	require.NoError(t, err)
	assert.False(t, nowRead)
}

func TestClientInteractionService_ToggleStar_QueuesStarDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockArrays, mockFeedItems, mockQueue := newTestInteractionSvc(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	mockFeedItems.EXPECT().Get(ctx, "item-2").Return(models.FeedItem{GUID: "item-2"}, nil)
	mockArrays.EXPECT().Contains(ctx, models.KeyStarred, "item-2").Return(false, nil)
	mockArrays.EXPECT().
		Add(ctx, models.KeyStarred, models.ArrayItem{GUID: "item-2", EventAt: "2026-08-30T12:00:00Z"}).
		Return(nil)
	mockQueue.EXPECT().
		QueueAndAttempt(ctx, models.PendingOperation{
			Type:      models.OpStarDelta,
			GUID:      "item-2",
			Action:    models.ActionAdd,
			Timestamp: now,
		}).
		Return(nil)

	starred, err := svc.ToggleStar(ctx, "item-2")
	require.NoError(t, err)
	assert.True(t, starred)
}

func TestClientInteractionService_Toggle_UnknownItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockFeedItems, _ := newTestInteractionSvc(ctrl)
	ctx := context.Background()

	mockFeedItems.EXPECT().
		Get(ctx, "item-gone").
		Return(models.FeedItem{}, store.ErrFeedItemNotFound)

	_, err := svc.ToggleRead(ctx, "item-gone")
	assert.ErrorIs(t, err, store.ErrFeedItemNotFound)
}

func TestClientInteractionService_Toggle_EmptyGUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestInteractionSvc(ctrl)

	_, err := svc.ToggleStar(context.Background(), "   ")
	assert.ErrorIs(t, err, store.ErrFeedItemNotFound)
}

func TestClientInteractionService_Toggle_BufferFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockArrays, mockFeedItems, mockQueue := newTestInteractionSvc(ctrl)
	ctx := context.Background()

	mockFeedItems.EXPECT().Get(ctx, "item-1").Return(models.FeedItem{GUID: "item-1"}, nil)
	mockArrays.EXPECT().Contains(ctx, models.KeyRead, "item-1").Return(false, nil)
	mockArrays.EXPECT().Add(ctx, models.KeyRead, gomock.Any()).Return(nil)
	mockQueue.EXPECT().
		QueueAndAttempt(ctx, gomock.Any()).
		Return(errors.New("disk full"))

	// The local toggle stands; the caller learns the delta is not durable.
	nowRead, err := svc.ToggleRead(ctx, "item-1")
	require.Error(t, err)
	assert.True(t, nowRead)
}
