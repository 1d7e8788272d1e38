package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Upload     UploadConfig     `mapstructure:"upload"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	LoginPath string `mapstructure:"login_path"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type PaginationConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type CacheConfig struct {
	// TTL of a cached listing page. A stale page is served until it
	// expires or the cache is cleared explicitly; writes never invalidate it.
	IndexTTL time.Duration `mapstructure:"index_ttl"`
}

type UploadConfig struct {
	StoragePath string `mapstructure:"storage_path"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

var GlobalConfig Config

func Init() error {
	return load("config")
}

// InitTest loads the test configuration (separate database and redis DB).
func InitTest() error {
	return load("config.test")
}

func load(name string) error {
	// Resolve the project root relative to this source file so tests
	// in any package find the config directory.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(filepath.Dir(filepath.Dir(b)))

	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(basepath, "config"))

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if GlobalConfig.Pagination.PageSize <= 0 {
		GlobalConfig.Pagination.PageSize = 10
	}

	return nil
}
