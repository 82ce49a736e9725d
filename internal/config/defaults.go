package config

import "time"

// defaults returns the values used for every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-recipe-keeper",
			TokenDuration:    24 * time.Hour,
			Version:          "dev",
			DefaultLocale:    "en",
			SupportedLocales: []string{"en", "de"},
			LogLevel:         "info",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			AI: AI{
				Model:   "gpt-4o-mini",
				Timeout: 60 * time.Second,
			},
			Translator: Translator{
				Timeout: 10 * time.Second,
			},
			Fetcher: Fetcher{
				Timeout:      15 * time.Second,
				UserAgent:    "go-recipe-keeper/1.0",
				MaxBodyBytes: 2 << 20,
			},
		},
		Workers: Workers{
			TranslationInterval:  10 * time.Minute,
			TranslationBatchSize: 50,
		},
		RateLimit: RateLimit{
			ParsePerMinute: 10,
			ParseBurst:     5,
		},
	}
}
