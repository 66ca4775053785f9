package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/quizroom/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	HTTP     HTTPConfig     `mapstructure:"http" validate:"required"`
	DB       DBConfig       `mapstructure:"db" validate:"required"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	BotToken string         `mapstructure:"bot_token"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	LoginDelay         time.Duration `mapstructure:"login_delay" validate:"min=0"`
	SecondsPerQuestion int           `mapstructure:"seconds_per_question" validate:"min=1"`
	DemoAdminEmail     string        `mapstructure:"demo_admin_email" validate:"required,email"`
	DemoAdminPassword  string        `mapstructure:"demo_admin_password" validate:"required"`
}

type HTTPConfig struct {
	Port           string        `mapstructure:"port" validate:"required"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type TelegramConfig struct {
	OwnerChatID int64 `mapstructure:"owner_chat_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.login_delay", time.Duration(0))
	v.SetDefault("app.seconds_per_question", 60)
	v.SetDefault("app.demo_admin_email", "admin@example.com")
	v.SetDefault("app.demo_admin_password", "admin123")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "./quizroom.db")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)
}

func Init() (*Config, error) {
	// .env is optional and only feeds the environment.
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("telegram.owner_chat_id", "TELEGRAM_OWNER_CHAT_ID"); err != nil {
		return nil, fmt.Errorf("failed to bind TELEGRAM_OWNER_CHAT_ID: %w", err)
	}
	if err := v.BindEnv("db.driver", "DB_DRIVER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DRIVER: %w", err)
	}
	if err := v.BindEnv("db.dsn", "DB_DSN"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_DSN: %w", err)
	}
	if err := v.BindEnv("http.port", "HTTP_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind HTTP_PORT: %w", err)
	}
	if err := v.BindEnv("env", "APP_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ENV: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
