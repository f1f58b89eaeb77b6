package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Port          string
	Env           string
	BaseDomain    string
	PreviewDomain string
	MarketingURL  string
	APIBaseURL    string
	RedisAddr     string
	KafkaBroker   string
	KafkaTopic    string
	CacheTTL      time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		BaseDomain:    getEnv("BASE_DOMAIN", "platterng.com"),
		PreviewDomain: getEnv("PREVIEW_DOMAIN", "vercel.app"),
		MarketingURL:  os.Getenv("MARKETING_URL"),
		APIBaseURL:    getEnv("API_URL", "https://staging.api.platter.picatech.co/v1"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "order-events"),
		CacheTTL:      5 * time.Minute,
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getEnv("REDIS_PORT", "6379")
	}
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.CacheTTL = parsed
		}
	}
	return cfg
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
