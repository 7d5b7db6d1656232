package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/velmora/health-assistant/backend/internal/service/ai"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server    ServerConfig
	AI        ai.Config
	Storage   StorageConfig
	Knowledge KnowledgeConfig
}

// Load parses the full configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	aiCfg, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	storage, err := loadStorageConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		AI:        aiCfg,
		Storage:   storage,
		Knowledge: loadKnowledgeConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// allow passing ":8080" or "127.0.0.1:8080" directly
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadAIConfig() (ai.Config, error) {
	timeout, err := parseOptionalIntEnv("GEMINI_TIMEOUT")
	if err != nil {
		return ai.Config{}, err
	}

	cfg := ai.Config{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		BaseURL: getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash-latest"),
	}
	if timeout != nil {
		if *timeout < 1 {
			return ai.Config{}, fmt.Errorf("invalid GEMINI_TIMEOUT value: %d", *timeout)
		}
		cfg.Timeout = time.Duration(*timeout) * time.Second
	}

	return cfg, nil
}

// StorageBackend selects the session persistence implementation.
type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageSQLite StorageBackend = "sqlite"
)

// StorageConfig describes where chat sessions are persisted.
type StorageConfig struct {
	Backend StorageBackend
	Path    string
}

func loadStorageConfig() (StorageConfig, error) {
	backend := StorageBackend(strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", string(StorageFile))))
	switch backend {
	case StorageFile, StorageSQLite:
	default:
		return StorageConfig{}, fmt.Errorf("invalid STORAGE_BACKEND value: %q (want file or sqlite)", backend)
	}

	defaultPath := "data/sessions.json"
	if backend == StorageSQLite {
		defaultPath = "data/sessions.db"
	}

	return StorageConfig{
		Backend: backend,
		Path:    getEnvOrDefault("STORAGE_PATH", defaultPath),
	}, nil
}

// KnowledgeConfig carries tuning knobs for the curated knowledge base.
type KnowledgeConfig struct {
	ExtraPhrases []string
}

func loadKnowledgeConfig() KnowledgeConfig {
	raw := strings.TrimSpace(os.Getenv("KNOWLEDGE_EXTRA_PHRASES"))
	if raw == "" {
		return KnowledgeConfig{}
	}

	var phrases []string
	for _, part := range strings.Split(raw, ",") {
		if phrase := strings.TrimSpace(part); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	return KnowledgeConfig{ExtraPhrases: phrases}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
