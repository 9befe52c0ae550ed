package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env              string        `mapstructure:"ENV"`
	Port             string        `mapstructure:"PORT"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	CORSAllowed      string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	SubmitRateLimit  int           `mapstructure:"SUBMIT_RATE_LIMIT"`
	SubmitRateWindow time.Duration `mapstructure:"SUBMIT_RATE_WINDOW"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "5000")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SUBMIT_RATE_LIMIT", 30)
	v.SetDefault("SUBMIT_RATE_WINDOW", "1m")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
