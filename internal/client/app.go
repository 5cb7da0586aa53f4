package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-deck-reader/internal/adapter"
	"github.com/MKhiriev/go-deck-reader/internal/config"
	"github.com/MKhiriev/go-deck-reader/internal/logger"
	"github.com/MKhiriev/go-deck-reader/internal/service"
	"github.com/MKhiriev/go-deck-reader/internal/store"
	"github.com/MKhiriev/go-deck-reader/internal/utils"
	"github.com/MKhiriev/go-deck-reader/internal/workers"
	"github.com/MKhiriev/go-deck-reader/models"
)

// deferredStartupKeys are pulled in the background after startup on a known
// device. Everything here is either cosmetic or already usable from the local
// replica, so the app does not block on it.
var deferredStartupKeys = []string{
	models.KeyRead,
	models.KeyStarred,
	models.KeyRSSFeeds,
	models.KeyKeywordBlacklist,
	models.KeyThemeStyle,
	models.KeyThemeStyleLight,
	models.KeyThemeStyleDark,
	models.KeyAnimationSpeed,
	models.KeyOpenURLsInNewTab,
	models.KeyShuffleCount,
	models.KeyLastShuffleReset,
}

var _ Client = (*App)(nil)

type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	adapter  adapter.ServerAdapter
	services *service.ClientServices
}

func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	log := logger.NewClientLogger("deck-client")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return &App{
		cfg:      cfg,
		log:      log,
		storages: storages,
		adapter:  serverAdapter,
		services: service.NewClientServices(storages, serverAdapter),
	}, nil
}

// Services exposes the wired service layer to CLI commands.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Context returns a base context carrying the application logger. When the
// configured token identifies a linked account, the numeric user ID is
// attached to both the context and the logger so every log line derived from
// this context is scoped to the user.
func (a *App) Context() context.Context {
	ctx := context.Background()
	log := a.log

	if token := a.adapter.Token(); token != "" {
		if userID, err := utils.ParseUserIDFromJWT(token); err == nil {
			ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
			log = &logger.Logger{Logger: log.With().Int64("userID", userID).Logger()}
		}
	}

	return log.WithContext(ctx)
}

// Bootstrap prepares the device for use: it assigns a stable device ID and
// runs the startup sync. A device that has never fetched the feed performs a
// blocking full sync so the user does not face an empty deck; a returning
// device syncs in the background and defers the non-critical keys.
func (a *App) Bootstrap(ctx context.Context) error {
	if err := a.ensureDeviceID(ctx); err != nil {
		return err
	}

	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		a.log.Debug().Int64("userID", userID).Msg("bootstrapping linked device")
	}

	// Launching the app counts as user activity for the idle-gated sync job.
	a.services.SyncService.Touch()

	firstRun, err := a.isFirstRun(ctx)
	if err != nil {
		return err
	}

	if firstRun {
		a.log.Info().Msg("new device, running blocking initial sync")
		report := a.services.SyncService.FullSync(ctx)
		if !report.OK() {
			a.log.Warn().Strs("errors", report.StageErrors).Msg("initial sync finished with issues")
		}
		return nil
	}

	go func() {
		if _, err := a.services.PullService.PullUserState(ctx, false, deferredStartupKeys); err != nil {
			a.log.Warn().Err(err).Msg("startup background pull failed")
		}
		if _, err := a.services.FeedService.RefreshFeed(ctx); err != nil {
			a.log.Warn().Err(err).Msg("startup feed refresh failed")
		}
	}()
	return nil
}

// Run implements Client. It bootstraps the device, starts the background
// workers and blocks until the process receives an interrupt.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(a.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Bootstrap(ctx); err != nil {
		return err
	}

	ws := workers.NewWorkers(
		workers.NewSyncJobRunner(ctx, a.services.SyncJob, a.cfg.Workers.SyncInterval, a.cfg.Workers.IdleTimeout),
		workers.NewHeartbeat(ctx, a.adapter, a.services.SyncService, a.services.Connectivity, a.cfg.Workers.HeartbeatInterval),
	)
	ws.Run()
	defer a.services.SyncJob.Stop()

	a.log.Info().Msg("deck reader client started")
	<-ctx.Done()
	a.log.Info().Msg("shutting down")

	return nil
}

// ensureDeviceID loads the persisted device identifier, creating one on the
// very first launch, and installs it on the transport.
func (a *App) ensureDeviceID(ctx context.Context) error {
	rec, err := a.storages.SettingsRepository.Get(ctx, models.KeyDeviceID)
	deviceID, _ := rec.Value.(string)

	if err != nil || deviceID == "" {
		deviceID = utils.NewUUIDGenerator().Generate()
		record := models.SimpleStateRecord{Key: models.KeyDeviceID, Value: deviceID}
		if err = a.storages.SettingsRepository.Set(ctx, record); err != nil {
			return fmt.Errorf("persist device id: %w", err)
		}
		a.log.Info().Str("deviceID", deviceID).Msg("assigned new device id")
	}

	a.adapter.SetDeviceID(deviceID)
	return nil
}

// isFirstRun reports whether this device has ever completed a feed fetch.
func (a *App) isFirstRun(ctx context.Context) (bool, error) {
	rec, err := a.storages.SettingsRepository.Get(ctx, models.KeyLastFeedSync)
	if err != nil {
		return true, nil
	}
	switch v := rec.Value.(type) {
	case int64:
		return v == 0, nil
	case float64:
		return v == 0, nil
	default:
		return true, nil
	}
}
