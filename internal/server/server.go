package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/boardwalk/monopoly-online/internal/config"
	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/game/room"
	"github.com/boardwalk/monopoly-online/internal/server/handler"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
	// 房间消息都是小 JSON，压缩收益抵不上 CPU 开销
	EnableCompression: false,
}

// Server WebSocket 服务器
type Server struct {
	config     *config.Config
	redis      *redis.Client
	redisStore *storage.RedisStore
	registry   *room.Registry
	clients    map[string]*Client
	clientsMu  sync.RWMutex
	handler    *handler.Handler

	// 连接控制
	maxConnections int
	semaphore      chan struct{} // 信号量控制并发连接数

	// 维护模式
	maintenanceMode bool
	maintenanceMu   sync.RWMutex
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	// 加载棋盘数据，每个房间会拿到一份独立副本
	boardData, err := board.Load(cfg.Game.BoardFile)
	if err != nil {
		return nil, fmt.Errorf("加载棋盘失败: %w", err)
	}

	s := &Server{
		config:     cfg,
		redis:      rdb,
		redisStore: storage.NewRedisStore(rdb),
		clients:    make(map[string]*Client),
		// 初始化连接控制
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}

	// 初始化房间目录
	s.registry = room.NewRegistry(cfg, boardData, s.redisStore)

	// 初始化消息处理器
	s.handler = handler.NewHandler(handler.HandlerDeps{
		Server:   s,
		Registry: s.registry,
		Store:    s.redisStore,
	})

	log.Printf("🎲 棋盘已加载: %d 个地块, 初始资金=%d, 最大连接数=%d",
		boardData.Size(), cfg.Game.InitialCash, cfg.Server.MaxConnections)

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	http.HandleFunc("/ws", s.handleWebSocket)
	http.HandleFunc("/health", s.handleHealth)

	// 启动监控 goroutine
	go s.monitorStats()

	log.Printf("🚀 服务器启动在 ws://%s/ws (CPU核心数: %d)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           nil,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return server.ListenAndServe()
}
