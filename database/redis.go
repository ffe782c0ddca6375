package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// InitializeRedis initializes the shared Redis client.
func InitializeRedis() error {
	config, err := LoadRedisConfig()
	if err != nil {
		return fmt.Errorf("failed to load Redis configuration: %w", err)
	}

	RedisClient, err = NewRedisClient(config)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	log.Println("Redis connection initialized successfully.")
	return nil
}

// LoadRedisConfig loads configuration from environment variables with default fallbacks
func LoadRedisConfig() (RedisConfig, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return RedisConfig{}, errors.New("REDIS_URL environment variable is not set")
	}

	return RedisConfig{
		URL:          redisURL,
		PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 30*time.Second),
		MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 10*time.Second),
		MaxRetries:   getEnvAsInt("REDIS_MAX_RETRIES", 3),
	}, nil
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(config RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}

	return client, nil
}
