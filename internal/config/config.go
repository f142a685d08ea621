package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

type RedisConfig struct {
	Addr     string
	Password string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type AuthConfig struct {
	AccessSecret []byte
}

// OwnerMatch selects how a caller is matched against a comment's author.
type OwnerMatch string

const (
	OwnerMatchUserID OwnerMatch = "user_id"
	OwnerMatchEmail  OwnerMatch = "email"
)

type CommentsConfig struct {
	OwnerMatch OwnerMatch
}

type CacheConfig struct {
	UserTTL     time.Duration
	UserMissTTL time.Duration
}

type AnalyticsConfig struct {
	Enabled bool
	Timeout time.Duration
}

type ServiceConfig struct {
	Comments  CommentsConfig
	Cache     CacheConfig
	Analytics AnalyticsConfig
}

func NewDBConfig() DBConfig {
	return DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func NewRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

func NewAuthConfig() AuthConfig {
	return AuthConfig{
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
	}
}

// NewServiceConfig reads the service settings from viper, falling back to defaults
// for anything app.yaml leaves out.
func NewServiceConfig() (ServiceConfig, error) {
	viper.SetDefault("comments.owner_match", string(OwnerMatchUserID))
	viper.SetDefault("cache.user_ttl", time.Hour)
	viper.SetDefault("cache.user_miss_ttl", time.Minute)
	viper.SetDefault("analytics.enabled", true)
	viper.SetDefault("analytics.timeout", 3*time.Second)

	ownerMatch := OwnerMatch(viper.GetString("comments.owner_match"))
	if ownerMatch != OwnerMatchUserID && ownerMatch != OwnerMatchEmail {
		return ServiceConfig{}, fmt.Errorf("comments.owner_match must be %q or %q, got %q", OwnerMatchUserID, OwnerMatchEmail, ownerMatch)
	}

	return ServiceConfig{
		Comments: CommentsConfig{
			OwnerMatch: ownerMatch,
		},
		Cache: CacheConfig{
			UserTTL:     viper.GetDuration("cache.user_ttl"),
			UserMissTTL: viper.GetDuration("cache.user_miss_ttl"),
		},
		Analytics: AnalyticsConfig{
			Enabled: viper.GetBool("analytics.enabled"),
			Timeout: viper.GetDuration("analytics.timeout"),
		},
	}, nil
}
