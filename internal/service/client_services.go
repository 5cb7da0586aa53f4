package service

import (
	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/store"
)

type ClientServices struct {
	QueueService       ClientQueueService
	PullService        ClientPullService
	FeedService        ClientFeedService
	DeckService        ClientDeckService
	InteractionService ClientInteractionService
	SyncService        ClientSyncService
	SyncJob            ClientSyncJob

	// Connectivity is the shared reachability flag the services gate on.
	// The heartbeat worker drives it.
	Connectivity *Connectivity
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	net := NewConnectivity()
	pullSvc := NewClientPullService(storages.SettingsRepository, storages.ArrayRepository, storages.PendingOperationRepository, serverAdapter, net)
	queueSvc := NewClientQueueService(storages.PendingOperationRepository, storages.SettingsRepository, serverAdapter, pullSvc, net)
	feedSvc := NewClientFeedService(storages.SettingsRepository, storages.ArrayRepository, storages.FeedItemRepository, serverAdapter, net)
	deckSvc := NewClientDeckService(storages.SettingsRepository, storages.ArrayRepository, storages.FeedItemRepository, queueSvc)
	interactionSvc := NewClientInteractionService(storages.ArrayRepository, storages.FeedItemRepository, queueSvc)
	syncSvc := NewClientSyncService(queueSvc, pullSvc, feedSvc, deckSvc, storages.SettingsRepository, net)

	return &ClientServices{
		QueueService:       queueSvc,
		PullService:        pullSvc,
		FeedService:        feedSvc,
		DeckService:        deckSvc,
		InteractionService: interactionSvc,
		SyncService:        syncSvc,
		SyncJob:            NewClientSyncJob(syncSvc),
		Connectivity:       net,
	}
}
