package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultMaxUploadSize   = 10 << 20
	defaultChain           = "mumbai"
	defaultDescription     = "NFT was created with NFT creator app."
	defaultStorageURL      = "https://storage.thirdweb.com"
	defaultJanitorInterval = 10 * time.Minute
	defaultFileTTL         = time.Hour
	defaultLogLevel        = "debug"
	defaultAssetsDir       = "assets"
	defaultCanvasSize      = 500

	dotEnvPathVariable = "DOTENV"
	defaultDotEnvPath  = ".env"
)

// Defaults of the optional mint settings. Code that builds a [Mint] by hand
// should fall back to these.
const (
	DefaultMintChain       = defaultChain
	DefaultMintDescription = defaultDescription
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv exports variables from a .env file into the process environment
// so that withEnv picks them up. Variables already present in the
// environment are left untouched. A missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := os.Getenv(dotEnvPathVariable)
	if path == "" {
		path = defaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:   defaultHTTPAddress,
			MaxUploadSize: defaultMaxUploadSize,
		},
		Mint: Mint{
			Chain:       defaultChain,
			Description: defaultDescription,
		},
		Adapter: Adapter{
			StorageURL:  defaultStorageURL,
			HTTPAddress: defaultHTTPAddress,
		},
		Workers: Workers{
			JanitorInterval: defaultJanitorInterval,
			FileTTL:         defaultFileTTL,
		},
		Client: Client{
			AssetsDir:  defaultAssetsDir,
			CanvasSize: defaultCanvasSize,
		},
	}
}
