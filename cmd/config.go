package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort            = "8080"
	defaultDBPort              = "5432"
	defaultDBSslMode           = "disable"
	defaultRequestTimeout      = 10 * time.Second
	defaultOrderChangedTopic   = "order.status.changed"
	defaultOutboxRelaySchedule = "* * * * * *"
	defaultOutboxBatchSize     = 100
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret      string
	RequestTimeout time.Duration

	// KafkaHost is a comma separated broker list. Outbox relaying is off when empty.
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxRelaySchedule    string
	OutboxBatchSize        int
}

// LoadConfig reads the configuration from the environment, loading envFile
// first when it exists. Variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	config := Config{
		HTTPPort:               getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 getEnv("DB_PORT", defaultDBPort),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              getEnv("DB_SSLMODE", defaultDBSslMode),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		RequestTimeout:         defaultRequestTimeout,
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", defaultOrderChangedTopic),
		OutboxRelaySchedule:    getEnv("OUTBOX_RELAY_SCHEDULE", defaultOutboxRelaySchedule),
		OutboxBatchSize:        defaultOutboxBatchSize,
	}

	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("REQUEST_TIMEOUT: %q is not a positive duration", raw)
		}
		config.RequestTimeout = timeout
	}
	if raw := os.Getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %q is not a positive integer", raw)
		}
		config.OutboxBatchSize = size
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	var missing []string
	for name, value := range map[string]string{
		"DB_HOST":    c.DBHost,
		"DB_USER":    c.DBUser,
		"DB_NAME":    c.DBName,
		"JWT_SECRET": c.JWTSecret,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// KafkaBrokers splits KafkaHost into broker addresses.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, broker := range strings.Split(c.KafkaHost, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
