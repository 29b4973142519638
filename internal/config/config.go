// internal/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type LogConfig struct {
	Level        string `mapstructure:"level"`
	RollbarToken string `mapstructure:"rollbar_token"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// ExecutorConfig は外部コード実行サービス (Piston互換) の設定
// Type が "http" 以外の場合は LogExecutor を使う
type ExecutorConfig struct {
	Type          string        `mapstructure:"type"`
	URL           string        `mapstructure:"url"`
	RunTimeout    time.Duration `mapstructure:"run_timeout"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Burst         int           `mapstructure:"burst"`
}

type GradingConfig struct {
	// チャレンジ1回分の採点全体にかける上限時間
	SubmissionTimeout time.Duration `mapstructure:"submission_timeout"`
}

type Config struct {
	Env      string         `mapstructure:"env"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Executor ExecutorConfig `mapstructure:"executor"`
	Grading  GradingConfig  `mapstructure:"grading"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば先に環境変数へ読み込む (無ければ無視)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	v.AutomaticEnv()
	v.BindEnv("env", "APP_ENV")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	v.BindEnv("log.rollbar_token", "ROLLBAR_TOKEN")
	v.BindEnv("executor.url", "EXECUTOR_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// 認証は明示的に無効化されない限り有効
	if !v.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		cfg.Auth.Enabled = true
	}
	applyDefaults(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Executor: type=%s run_timeout=%s", Cfg.Executor.Type, Cfg.Executor.RunTimeout)

	return nil
}

// applyDefaults は未設定の値にデフォルトを入れる
func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Executor.Type == "" {
		cfg.Executor.Type = DefaultExecutorType
	}
	if cfg.Executor.RunTimeout <= 0 {
		cfg.Executor.RunTimeout = DefaultExecutorRunTimeout
	}
	if cfg.Executor.RatePerSecond <= 0 {
		cfg.Executor.RatePerSecond = DefaultExecutorRatePerSecond
	}
	if cfg.Executor.Burst <= 0 {
		cfg.Executor.Burst = 1
	}
	if cfg.Grading.SubmissionTimeout <= 0 {
		cfg.Grading.SubmissionTimeout = DefaultSubmissionTimeout
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}
