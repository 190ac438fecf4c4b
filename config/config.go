package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	App       AppConfig       `mapstructure:"app"`
	Seed      SeedConfig      `mapstructure:"seed"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port                   string        `mapstructure:"port"`
	Mode                   string        `mapstructure:"mode"`
	ShutdownTimeoutSeconds int           `mapstructure:"shutdown_timeout_seconds"`
	ShutdownTimeout        time.Duration `mapstructure:"-"`
}

// 存储驱动
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"` // sqlite 文件路径
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	Charset      string `mapstructure:"charset"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// AppConfig 业务配置
type AppConfig struct {
	DefaultUserID string `mapstructure:"default_user_id"`
}

// SeedConfig 初始化数据配置
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RateLimitConfig 写接口限流配置
type RateLimitConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxRequests   int           `mapstructure:"max_requests"`
	WindowSeconds int           `mapstructure:"window_seconds"`
	Window        time.Duration `mapstructure:"-"`
}

// LoadConfig 加载配置
// 优先级: 环境变量 > 外部配置文件 > 嵌入的默认配置
// configPath: 可选的外部配置文件路径
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 首先加载嵌入的默认配置
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("读取内置配置失败: %w", err)
	}

	// 2. 尝试加载外部配置文件（可选，用于覆盖默认配置）
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
		}
		log.Printf("已合并外部配置文件: %s", configPath)
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/fintrack")
		externalViper.AddConfigPath("$HOME/.fintrack")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("警告: 合并外部配置失败: %v", err)
			} else {
				log.Printf("已合并外部配置文件: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. 环境变量覆盖，如 FINTRACK_DATABASE_DRIVER=sqlite
	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port != "" && !strings.HasPrefix(c.Server.Port, ":") && !strings.Contains(c.Server.Port, ":") {
		c.Server.Port = ":" + c.Server.Port
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}
	c.Server.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second

	if c.Database.Driver == "" {
		c.Database.Driver = DriverMemory
	}
	if c.App.DefaultUserID == "" {
		c.App.DefaultUserID = "default-user-id"
	}

	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 60
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
	c.RateLimit.Window = time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

// Validate 校验配置
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Database.Path == "" {
			problems = append(problems, "database.path 不能为空（sqlite）")
		}
	case DriverMySQL:
		if c.Database.Host == "" || c.Database.DBName == "" {
			problems = append(problems, "database.host 与 database.dbname 不能为空（mysql）")
		}
	default:
		problems = append(problems, fmt.Sprintf("不支持的 database.driver %q，可选: memory、sqlite、mysql", c.Database.Driver))
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("不支持的 server.mode %q，可选: debug、release、test", c.Server.Mode))
	}

	if len(problems) > 0 {
		return fmt.Errorf("配置校验失败: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PrintConfig 打印当前配置（隐藏敏感信息）
func PrintConfig(cfg *Config) {
	log.Printf("当前配置:")
	log.Printf("  服务器: %s (模式: %s)", cfg.Server.Port, cfg.Server.Mode)
	switch cfg.Database.Driver {
	case DriverMySQL:
		log.Printf("  数据库: mysql %s@%s:%s/%s",
			cfg.Database.Username,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName)
	case DriverSQLite:
		log.Printf("  数据库: sqlite %s", cfg.Database.Path)
	default:
		log.Printf("  数据库: 内存")
	}
	log.Printf("  默认用户: %s", cfg.App.DefaultUserID)
	log.Printf("  初始化数据: %v", cfg.Seed.Enabled)
	log.Printf("  写接口限流: %v (%d 次 / %s)", cfg.RateLimit.Enabled, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
}
