package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a sync server base URL (e.g. https://reader.example.com)
//	-d local database DSN
//	-t account bearer token
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "10s", "1m")
//	-sync-interval periodic sync job interval (e.g., "5m")
//	-idle-timeout user inactivity window required before background sync
//	-heartbeat-interval connectivity probe interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var idleTimeout time.Duration
	var heartbeatInterval time.Duration

	flag.StringVar(&baseURL, "a", "", "Sync server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&token, "t", "", "Account bearer token")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.DurationVar(&idleTimeout, "idle-timeout", 0, "Idle window before background sync (e.g., 60s)")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", 0, "Connectivity probe interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Token: token,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:      syncInterval,
			IdleTimeout:       idleTimeout,
			HeartbeatInterval: heartbeatInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
