package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations so operators can keep a single config file.
type StructuredJSONConfig struct {
	App struct {
		TokenIssuer string `json:"token_issuer"`
	} `json:"app,omitempty"`

	Credentials struct {
		FilePath    string `json:"file"`
		CookieName  string `json:"cookie_name"`
		CookieKey   string `json:"cookie_key"`
		ExpiresDays int    `json:"expires_days"`
	} `json:"credentials,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Backend     string `json:"backend"`
			Dir         string `json:"dir"`
			S3Bucket    string `json:"s3_bucket"`
			S3Region    string `json:"s3_region"`
			S3Endpoint  string `json:"s3_endpoint"`
			S3AccessKey string `json:"s3_access_key"`
			S3SecretKey string `json:"s3_secret_key"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	LLM struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Model          string   `json:"model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"llm,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			TokenIssuer: jsonCfg.App.TokenIssuer,
		},
		Credentials: Credentials{
			FilePath:    jsonCfg.Credentials.FilePath,
			CookieName:  jsonCfg.Credentials.CookieName,
			CookieKey:   jsonCfg.Credentials.CookieKey,
			ExpiresDays: jsonCfg.Credentials.ExpiresDays,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Backend:     jsonCfg.Storage.Blob.Backend,
				Dir:         jsonCfg.Storage.Blob.Dir,
				S3Bucket:    jsonCfg.Storage.Blob.S3Bucket,
				S3Region:    jsonCfg.Storage.Blob.S3Region,
				S3Endpoint:  jsonCfg.Storage.Blob.S3Endpoint,
				S3AccessKey: jsonCfg.Storage.Blob.S3AccessKey,
				S3SecretKey: jsonCfg.Storage.Blob.S3SecretKey,
			},
		},
		LLM: LLM{
			BaseURL:        jsonCfg.LLM.BaseURL,
			APIKey:         jsonCfg.LLM.APIKey,
			Model:          jsonCfg.LLM.Model,
			RequestTimeout: time.Duration(jsonCfg.LLM.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
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
