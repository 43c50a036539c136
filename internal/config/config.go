package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Tag filter modes. Exactly one is active per deployment.
const (
	TagModeListTags         = "list_tags"
	TagModeCustomProperties = "custom_properties"
)

// Config holds all process-wide settings. It is loaded once in main and
// passed explicitly; nothing reads the environment after startup.
type Config struct {
	APIToken        string        `env:"PACHCA_API_TOKEN,required=true"`
	SecretToken     string        `env:"PACHCA_SECRET_TOKEN,required=true"`
	ExcludedUserIDs string        `env:"EXCLUDED_USER_IDS"`
	TagType         string        `env:"TAG_TYPE,default=list_tags"`
	BaseURL         string        `env:"PACHCA_BASE_URL"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	Port            int           `env:"PORT,default=3000"`
	AMQPURL         string        `env:"AMQP_URL"`
	AMQPExchange    string        `env:"AMQP_EXCHANGE,default=bot.events"`
	DBDSN           string        `env:"DB_DSN"`
	Environment     string        `env:"ENVIRONMENT,default=dev"`
	DebugRoutes     bool          `env:"DEBUG_ROUTES"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load reads .env (when present) and the process environment, then validates
// the fields that are parsed further downstream.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	if cfg.TagType != TagModeListTags && cfg.TagType != TagModeCustomProperties {
		return Config{}, fmt.Errorf("TAG_TYPE must be %q or %q, got %q", TagModeListTags, TagModeCustomProperties, cfg.TagType)
	}
	if _, err := cfg.ExcludedIDs(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ExcludedIDs parses the comma-separated EXCLUDED_USER_IDS value.
func (c Config) ExcludedIDs() ([]int64, error) {
	if strings.TrimSpace(c.ExcludedUserIDs) == "" {
		return nil, nil
	}

	parts := strings.Split(c.ExcludedUserIDs, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("EXCLUDED_USER_IDS: bad id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
