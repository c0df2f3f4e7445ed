package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PORT" envDefault:"5250"`

	// Path to the SQLite database file
	DatabasePath string `env:"DATABASE_PATH" envDefault:"database/vitrine.db"`

	// Origins allowed by the CORS middleware
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Optional JSON seed file loaded into an empty store at startup
	SeedPath string `env:"SEED_PATH"`

	// Import pipeline configuration
	Import struct {
		// Maximum number of batches buffered in the import queue
		QueueSize int `env:"IMPORT_QUEUE_SIZE" envDefault:"16"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"IMPORT_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in seconds
		RetryDelay int `env:"IMPORT_RETRY_DELAY" envDefault:"5"`
	}

	// Telegram lead notifications; disabled unless both values are set
	Telegram struct {
		BotToken string `env:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `env:"TELEGRAM_CHAT_ID"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
