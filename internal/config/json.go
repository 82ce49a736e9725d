package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		Version          string   `json:"version"`
		DefaultLocale    string   `json:"default_locale"`
		SupportedLocales []string `json:"supported_locales"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		AI struct {
			BaseURL string   `json:"base_url"`
			APIKey  string   `json:"api_key"`
			Model   string   `json:"model"`
			Timeout Duration `json:"timeout"`
		} `json:"ai,omitempty"`
		Translator struct {
			BaseURL string   `json:"base_url"`
			APIKey  string   `json:"api_key"`
			Timeout Duration `json:"timeout"`
		} `json:"translator,omitempty"`
		Fetcher struct {
			Timeout      Duration `json:"timeout"`
			UserAgent    string   `json:"user_agent"`
			MaxBodyBytes int64    `json:"max_body_bytes"`
		} `json:"fetcher,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TranslationInterval  Duration `json:"translation_interval"`
		TranslationBatchSize int      `json:"translation_batch_size"`
	} `json:"workers,omitempty"`

	RateLimit struct {
		ParsePerMinute int `json:"parse_per_minute"`
		ParseBurst     int `json:"parse_burst"`
	} `json:"rate_limit,omitempty"`
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
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			Version:          jsonCfg.App.Version,
			DefaultLocale:    jsonCfg.App.DefaultLocale,
			SupportedLocales: jsonCfg.App.SupportedLocales,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			AI: AI{
				BaseURL: jsonCfg.Adapter.AI.BaseURL,
				APIKey:  jsonCfg.Adapter.AI.APIKey,
				Model:   jsonCfg.Adapter.AI.Model,
				Timeout: time.Duration(jsonCfg.Adapter.AI.Timeout),
			},
			Translator: Translator{
				BaseURL: jsonCfg.Adapter.Translator.BaseURL,
				APIKey:  jsonCfg.Adapter.Translator.APIKey,
				Timeout: time.Duration(jsonCfg.Adapter.Translator.Timeout),
			},
			Fetcher: Fetcher{
				Timeout:      time.Duration(jsonCfg.Adapter.Fetcher.Timeout),
				UserAgent:    jsonCfg.Adapter.Fetcher.UserAgent,
				MaxBodyBytes: jsonCfg.Adapter.Fetcher.MaxBodyBytes,
			},
		},
		Workers: Workers{
			TranslationInterval:  time.Duration(jsonCfg.Workers.TranslationInterval),
			TranslationBatchSize: jsonCfg.Workers.TranslationBatchSize,
		},
		RateLimit: RateLimit{
			ParsePerMinute: jsonCfg.RateLimit.ParsePerMinute,
			ParseBurst:     jsonCfg.RateLimit.ParseBurst,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
