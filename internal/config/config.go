// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// nft-creator application. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version and log level.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout, and upload limits of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mint holds the external-service parameters required to mint a token.
	// The variable names are unprefixed and match the ones used by the web
	// front-end deployment (TW_ENGINE_URL, TW_SECRET_KEY, ...).
	Mint Mint

	// Adapter holds configuration of outbound HTTP integrations.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration of the temporary upload store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for reading a single
	// inbound request (e.g. "30s", "1m"). Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the multipart body of a mint request, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// AllowedOrigins lists the browser origins allowed by CORS.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Mint holds the parameters of the storage and relay services.
//
// The first five fields are required for a mint to proceed. They are not
// enforced at startup: a request arriving while any of them is unset fails
// with a configuration error instead. See [Mint.Validate].
type Mint struct {
	// EngineURL is the base URL of the transaction relay (thirdweb Engine).
	// Env: TW_ENGINE_URL
	EngineURL string `env:"TW_ENGINE_URL"`

	// AccessToken authenticates calls to the relay.
	// Env: TW_ACCESS_TOKEN
	AccessToken string `env:"TW_ACCESS_TOKEN"`

	// BackendWallet is the relay-held wallet that signs the mint transaction.
	// Env: TW_BACKEND_WALLET
	BackendWallet string `env:"TW_BACKEND_WALLET"`

	// ContractAddress is the ERC-721 contract tokens are minted on.
	// Env: TW_CONTRACT_ADDRESS
	ContractAddress string `env:"TW_CONTRACT_ADDRESS"`

	// SecretKey authenticates uploads to the content-addressed storage.
	// Env: TW_SECRET_KEY
	SecretKey string `env:"TW_SECRET_KEY"`

	// Chain is the relay's chain/network identifier. Defaults to "mumbai".
	// Env: TW_CHAIN
	Chain string `env:"TW_CHAIN"`

	// Description is the fixed description written into every token's
	// metadata.
	// Env: MINT_DESCRIPTION
	Description string `env:"MINT_DESCRIPTION"`
}

// Adapter holds configuration for outbound HTTP integrations.
type Adapter struct {
	// StorageURL is the base URL of the IPFS upload service.
	// Env: ADAPTER_STORAGE_URL
	StorageURL string `env:"STORAGE_URL"`

	// HTTPAddress is the address of the nft-creator server used by the
	// terminal client (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request. Zero keeps the HTTP
	// client's default (no timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// Files holds the temporary upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for uploaded images.
type Files struct {
	// TempDir is the directory temporary upload files are written to.
	// Empty means the operating system's temp directory.
	// Env: STORAGE_FILES_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often stale temp files are swept.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// FileTTL is the age after which a temp upload file is considered
	// abandoned.
	// Env: WORKERS_FILE_TTL
	FileTTL time.Duration `env:"FILE_TTL"`
}

// Client holds settings of the terminal client.
type Client struct {
	// AssetsDir contains the background (bg*.png) and shape (shape*.png)
	// images offered by the compositor.
	// Env: CLIENT_ASSETS_DIR
	AssetsDir string `env:"ASSETS_DIR"`

	// WalletAddress pre-fills the recipient wallet address.
	// Env: CLIENT_WALLET_ADDRESS
	WalletAddress string `env:"WALLET_ADDRESS"`

	// CanvasSize is the width and height of the composited image in pixels.
	// Env: CLIENT_CANVAS_SIZE
	CanvasSize int `env:"CANVAS_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (only fills variables not already set)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
