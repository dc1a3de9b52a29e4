package handler

import (
	"errors"
	"log"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/game/room"
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// HandlerDeps 处理器依赖
type HandlerDeps struct {
	Server   types.ServerInterface
	Registry *room.Registry
	Store    *storage.RedisStore
}

// Handler 消息处理器
type Handler struct {
	server   types.ServerInterface
	registry *room.Registry
	store    *storage.RedisStore
	handlers map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		server:   deps.Server,
		registry: deps.Registry,
		store:    deps.Store,
	}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 会话操作
		protocol.MsgHostGame: h.handleHostGame,
		protocol.MsgJoinGame: h.handleJoinGame,

		// 游戏操作
		protocol.MsgTriggerTurn:       func(c types.ClientInterface, _ *protocol.Message) { h.handleTriggerTurn(c) },
		protocol.MsgPropertyDecision:  h.handlePropertyDecision,
		protocol.MsgTradeProposal:     h.handleTradeProposal,
		protocol.MsgTradeResponse:     h.handleTradeResponse,
		protocol.MsgRequestMortgage:   h.handleRequestMortgage,
		protocol.MsgRequestUnmortgage: h.handleRequestUnmortgage,
		protocol.MsgDeclareBankruptcy: func(c types.ClientInterface, _ *protocol.Message) { h.handleDeclareBankruptcy(c) },

		// 聊天与查询
		protocol.MsgChatSent:       h.handleChat,
		protocol.MsgGetStats:       func(c types.ClientInterface, _ *protocol.Message) { h.handleGetStats(c) },
		protocol.MsgGetLeaderboard: h.handleGetLeaderboard,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// currentRoom 解析客户端所在的房间
func (h *Handler) currentRoom(client types.ClientInterface) *room.Room {
	roomID := client.GetRoom()
	if roomID == "" {
		return nil
	}
	return h.registry.GetRoom(roomID)
}

// sendGameError 把游戏错误映射为协议错误下发
func sendGameError(client types.ClientInterface, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
