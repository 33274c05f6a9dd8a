package config

import "time"

// Built-in defaults. These fill in only what was not provided by the
// environment, flags, or the JSON file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: "legacy-keeper",
		},
		Credentials: Credentials{
			FilePath:    "config.yaml",
			CookieName:  "legacy_keeper_auth",
			ExpiresDays: 30,
		},
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    "data.db",
			},
			Blob: Blob{
				Backend: "local",
				Dir:     "uploads",
			},
		},
		LLM: LLM{
			BaseURL:        "https://api.openai.com/v1",
			Model:          "gpt-4o-mini",
			RequestTimeout: 60 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
