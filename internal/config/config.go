package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageBackendJSON   = "json"
	StorageBackendSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Redis   RedisConfig
	Quiz    QuizConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type StorageConfig struct {
	Backend    string `yaml:"backend"`
	JSONPath   string `yaml:"json_path"`
	SQLitePath string `yaml:"sqlite_path"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QuizConfig struct {
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	MaxNotesLen int           `yaml:"max_notes_len"`
	MaxTitleLen int           `yaml:"max_title_len"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("storage.backend", StorageBackendJSON)
	viper.SetDefault("storage.json_path", "./data/quizzes.json")
	viper.SetDefault("storage.sqlite_path", "./data/quizzes.db")
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("quiz.cache_ttl", 3600)
	viper.SetDefault("quiz.max_notes_len", 100000)
	viper.SetDefault("quiz.max_title_len", 200)

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Storage: StorageConfig{
			Backend:    viper.GetString("storage.backend"),
			JSONPath:   viper.GetString("storage.json_path"),
			SQLitePath: viper.GetString("storage.sqlite_path"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Quiz: QuizConfig{
			CacheTTL:    viper.GetDuration("quiz.cache_ttl") * time.Second,
			MaxNotesLen: viper.GetInt("quiz.max_notes_len"),
			MaxTitleLen: viper.GetInt("quiz.max_title_len"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if env := os.Getenv("LOGGER_ENV"); env != "" {
		config.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
	if path := os.Getenv("QUIZ_DATA_FILE"); path != "" {
		config.Storage.JSONPath = path
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		config.Storage.SQLitePath = path
	}
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		config.Redis.Enabled = true
		config.Redis.Address = address
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageBackendJSON, StorageBackendSQLite:
	default:
		return fmt.Errorf("unsupported storage backend: %q", c.Storage.Backend)
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("redis is enabled but no address is configured")
	}
	return nil
}
