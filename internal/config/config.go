package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// CredentialSource selects where proxy endpoints take the access token from:
// the request body ("explicit") or the credential cookie tiers ("stored").
type CredentialSource string

const (
	CredentialSourceStored   CredentialSource = "stored"
	CredentialSourceExplicit CredentialSource = "explicit"
)

type Config struct {
	ServerPort       string
	ServerSecret     string
	Environment      string
	CredentialSource CredentialSource
}

// fileConfig is the optional YAML config file shape. Env vars override it.
type fileConfig struct {
	Port             string `yaml:"port"`
	EncryptionKey    string `yaml:"encryption_key"`
	Environment      string `yaml:"environment"`
	CredentialSource string `yaml:"credential_source"`
}

const (
	defaultPort   = "8080"
	defaultSecret = "default-server-key-change-in-production"
	defaultEnv    = "development"
)

func LoadConfig() (Config, error) {
	var file fileConfig
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	port := getEnv("PORT", orDefault(file.Port, defaultPort))
	secret := getEnv("ENCRYPTION_KEY", orDefault(file.EncryptionKey, defaultSecret))
	environment := getEnv("APP_ENV", orDefault(file.Environment, defaultEnv))
	source := CredentialSource(getEnv("CREDENTIAL_SOURCE",
		orDefault(file.CredentialSource, string(CredentialSourceStored))))

	if source != CredentialSourceStored && source != CredentialSourceExplicit {
		return Config{}, fmt.Errorf("invalid CREDENTIAL_SOURCE %q: must be %q or %q",
			source, CredentialSourceStored, CredentialSourceExplicit)
	}

	return Config{
		ServerPort:       ":" + port,
		ServerSecret:     secret,
		Environment:      environment,
		CredentialSource: source,
	}, nil
}

// IsDevelopment reports whether we run without TLS expectations; it controls
// the Secure flag on server-tier cookies.
func (c Config) IsDevelopment() bool {
	return c.Environment == defaultEnv
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Using default value for %s", key)
	return fallback
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
