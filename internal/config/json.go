package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Mint struct {
		EngineURL       string `json:"engine_url"`
		AccessToken     string `json:"access_token"`
		BackendWallet   string `json:"backend_wallet"`
		ContractAddress string `json:"contract_address"`
		SecretKey       string `json:"secret_key"`
		Chain           string `json:"chain"`
		Description     string `json:"description"`
	} `json:"mint,omitempty"`

	Adapter struct {
		StorageURL     string   `json:"storage_url"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Files struct {
			TempDir string `json:"temp_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval"`
		FileTTL         Duration `json:"file_ttl"`
	} `json:"workers,omitempty"`

	Client struct {
		AssetsDir     string `json:"assets_dir"`
		WalletAddress string `json:"wallet_address"`
		CanvasSize    int    `json:"canvas_size"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Mint: Mint{
			EngineURL:       jsonCfg.Mint.EngineURL,
			AccessToken:     jsonCfg.Mint.AccessToken,
			BackendWallet:   jsonCfg.Mint.BackendWallet,
			ContractAddress: jsonCfg.Mint.ContractAddress,
			SecretKey:       jsonCfg.Mint.SecretKey,
			Chain:           jsonCfg.Mint.Chain,
			Description:     jsonCfg.Mint.Description,
		},
		Adapter: Adapter{
			StorageURL:     jsonCfg.Adapter.StorageURL,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Files: Files{
				TempDir: jsonCfg.Storage.Files.TempDir,
			},
		},
		Workers: Workers{
			JanitorInterval: time.Duration(jsonCfg.Workers.JanitorInterval),
			FileTTL:         time.Duration(jsonCfg.Workers.FileTTL),
		},
		Client: Client{
			AssetsDir:     jsonCfg.Client.AssetsDir,
			WalletAddress: jsonCfg.Client.WalletAddress,
			CanvasSize:    jsonCfg.Client.CanvasSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
