package config

import (
	"os"
	"strconv"

	"bigpicture_agent/pkg/core/utils"
)

// Config carries every external-service setting the pipeline needs. It is
// built once at process start and passed by reference into the store and LLM
// collaborators, so nothing reads credentials from globals at request time.
type Config struct {
	Port          int
	AllowedOrigin string

	// Record store. DatabaseURL switches the fetcher to direct Postgres;
	// otherwise the Supabase REST endpoint is used.
	SupabaseURL     string
	SupabaseAnonKey string
	DatabaseURL     string

	// LLM credentials. Only the key of the active provider has to be set.
	OpenAIKey   string
	DeepSeekKey string
	GeminiKey   string
	QwenKey     string

	ModelsFile string
}

// Load reads the configuration from the environment. Missing values are not
// fatal here: each collaborator raises a configuration error the first time
// it is actually needed, which keeps e.g. a Postgres-only deployment from
// demanding Supabase keys.
func Load() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8000"))
	return &Config{
		Port:            port,
		AllowedOrigin:   getEnv("ALLOWED_ORIGIN", "*"),
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		DeepSeekKey:     os.Getenv("DEEPSEEK_API_KEY"),
		GeminiKey:       os.Getenv("GEMINI_API_KEY"),
		QwenKey:         os.Getenv("DASHSCOPE_API_KEY"),
		ModelsFile:      getEnv("MODELS_FILE", "config/models.yaml"),
	}
}

// fileOverrides is the subset of settings adjustable from config/app.hjson.
// Credentials stay in the environment on purpose.
type fileOverrides struct {
	Port          int    `json:"port"`
	AllowedOrigin string `json:"allowed_origin"`
	ModelsFile    string `json:"models_file"`
}

// ApplyFile overlays an optional Hjson file onto the env-derived config.
// A missing file is fine; a present-but-broken file is reported.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var ov fileOverrides
	if err := utils.ParseHJSONToStruct(string(data), &ov); err != nil {
		return err
	}
	if ov.Port != 0 {
		c.Port = ov.Port
	}
	if ov.AllowedOrigin != "" {
		c.AllowedOrigin = ov.AllowedOrigin
	}
	if ov.ModelsFile != "" {
		c.ModelsFile = ov.ModelsFile
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
