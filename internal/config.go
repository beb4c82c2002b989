package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Host       string `env:"HOST,default=0.0.0.0"`
	Port       int    `env:"PORT,required=true"`
	HealthPort int    `env:"HEALTH_PORT,default=8081"`
	LogLevel   string `env:"LOG_LEVEL,default=INFO"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	JWTSecret      string `env:"JWT_SECRET,required=true"`

	// Redis is optional; without it the change feed stays in process.
	RedisURL           string `env:"REDIS_URL"`
	RedisChangeChannel string `env:"REDIS_CHANGE_CHANNEL,default=collab-hub:changes"`

	OutboxInterval    time.Duration `env:"OUTBOX_INTERVAL,default=2s"`
	OutboxBatchSize   int           `env:"OUTBOX_BATCH_SIZE,default=100"`
	OutboxMaxAttempts int           `env:"OUTBOX_MAX_ATTEMPTS,default=5"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=1s"`
	LatencyThreshold  time.Duration `env:"LATENCY_THRESHOLD,default=5s"`

	MessageWindow          int `env:"MESSAGE_WINDOW,default=100"`
	NotificationFeedWindow int `env:"NOTIFICATION_FEED_WINDOW,default=20"`
	MaxContentLength       int `env:"MAX_CONTENT_LENGTH,default=4000"`

	ModerationEnabled bool   `env:"MODERATION_ENABLED,default=false"`
	CharReplacement   string `env:"CHARACTER_REPLACEMENT,default=*"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT,default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME,default=Collab Hub"`
	AppURL       string `env:"APP_URL,default=http://localhost:3000"`

	OtelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Validate checks the values go-env cannot express as tags.
func (c Config) Validate() error {
	switch {
	case c.Port <= 0:
		return fmt.Errorf("PORT must be positive, got %d", c.Port)
	case c.OutboxBatchSize <= 0:
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.OutboxBatchSize)
	case c.OutboxMaxAttempts <= 0:
		return fmt.Errorf("OUTBOX_MAX_ATTEMPTS must be positive, got %d", c.OutboxMaxAttempts)
	case c.MessageWindow <= 0 || c.NotificationFeedWindow <= 0:
		return fmt.Errorf("MESSAGE_WINDOW and NOTIFICATION_FEED_WINDOW must be positive")
	case c.MaxContentLength <= 0:
		return fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", c.MaxContentLength)
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
