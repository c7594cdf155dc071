package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	Driver   string `mapstructure:"driver"` // sqlite | mysql
	Path     string `mapstructure:"path"`   // sqlite file
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	PoolSize int    `mapstructure:"pool_size"`
}

func (d DBConfig) DSN() string {
	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Name)
	}
	if d.Path == "" {
		return "voicecart.db"
	}
	return d.Path
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"` // empty disables redis
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CommerceConfig struct {
	Currency    string `mapstructure:"currency"`
	SearchLimit int    `mapstructure:"search_limit"`
}

type SimulatorConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	TickSeconds int  `mapstructure:"tick_seconds"`
}

func (s SimulatorConfig) Tick() time.Duration {
	if s.TickSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.TickSeconds) * time.Second
}

type Settings struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Commerce  CommerceConfig  `mapstructure:"commerce"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Env       string          `mapstructure:"env"`
	Debug     bool            `mapstructure:"debug" default:"false"`
}

func Load() (*Settings, error) {
	// Load settings from a configuration file or environment variables
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&settings)
	return &settings, nil
}

func applyDefaults(s *Settings) {
	if s.Server.Port == 0 {
		s.Server.Port = 8080
	}
	if s.DB.Driver == "" {
		s.DB.Driver = "sqlite"
	}
	if s.Commerce.Currency == "" {
		s.Commerce.Currency = "USD"
	}
	if s.Commerce.SearchLimit == 0 {
		s.Commerce.SearchLimit = 20
	}
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
