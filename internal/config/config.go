package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string        `mapstructure:"listen_addr"`
	Port           string        `mapstructure:"port"`
	DatabasePath   string        `mapstructure:"database_path"`
	GinMode        string        `mapstructure:"gin_mode"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFormat      string        `mapstructure:"log_format"`
	Timezone       string        `mapstructure:"timezone"`
	PersistTimeout time.Duration `mapstructure:"persist_timeout"`
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() (AppConfig, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("database_path", "cyclelog.db")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("timezone", "Local")
	v.SetDefault("persist_timeout", 5*time.Second)

	for _, key := range []string{"listen_addr", "port", "database_path", "gin_mode", "log_level", "log_format", "timezone", "persist_timeout"} {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return AppConfig{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.ListenAddr = strings.TrimSpace(cfg.ListenAddr)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fmt.Sprintf(":%s", cfg.Port)
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 5 * time.Second
	}

	return cfg, nil
}

// Location 解析 Timezone，无法识别时回退到 time.Local。
// 用于决定“今天”是哪一天。
func (c AppConfig) Location() *time.Location {
	name := strings.TrimSpace(c.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
