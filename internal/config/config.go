package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	defaultHost           = "0.0.0.0"
	defaultPort           = 1780
	defaultMaxConnections = 10000
	defaultRedisAddr      = "localhost:6379"
	defaultBoardFile      = "data/board.json"
	defaultInitialCash    = 1500
	defaultMonitorPeriod  = 60 // 秒
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"` // 同时在线连接上限
	MonitorPeriod  int    `yaml:"monitor_period"`  // 状态监控间隔（秒）
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	BoardFile   string `yaml:"board_file"`   // 棋盘模板文件
	InitialCash int    `yaml:"initial_cash"` // 玩家初始现金

	// 当前回合玩家断线时是否立即推进回合。
	// 默认 false：回合停留在断线玩家身上，等待其重连。
	AdvanceTurnOnDisconnect bool `yaml:"advance_turn_on_disconnect"`
}

// MonitorPeriodDuration 返回监控间隔时长
func (c *ServerConfig) MonitorPeriodDuration() time.Duration {
	return time.Duration(c.MonitorPeriod) * time.Second
}

// Load 加载配置文件并应用环境变量覆盖
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	loadFromEnv(&cfg)

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults 设置零值字段的默认值
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = defaultMaxConnections
	}
	if cfg.Server.MonitorPeriod == 0 {
		cfg.Server.MonitorPeriod = defaultMonitorPeriod
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = defaultRedisAddr
	}
	if cfg.Game.BoardFile == "" {
		cfg.Game.BoardFile = defaultBoardFile
	}
	if cfg.Game.InitialCash == 0 {
		cfg.Game.InitialCash = defaultInitialCash
	}
}

// loadFromEnv 用环境变量覆盖配置（部署环境优先）
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("GAME_BOARD_FILE"); v != "" {
		cfg.Game.BoardFile = v
	}
	if v := os.Getenv("GAME_INITIAL_CASH"); v != "" {
		if cash, err := strconv.Atoi(v); err == nil {
			cfg.Game.InitialCash = cash
		}
	}
	if v := os.Getenv("GAME_ADVANCE_TURN_ON_DISCONNECT"); v != "" {
		cfg.Game.AdvanceTurnOnDisconnect = strings.EqualFold(v, "true") || v == "1"
	}
}
