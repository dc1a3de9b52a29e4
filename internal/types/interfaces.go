package types

import (
	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// ServerInterface 定义服务器接口（用于打破循环依赖）
type ServerInterface interface {
	IsMaintenanceMode() bool
	GetOnlineCount() int
	BroadcastToLobby(msg *protocol.Message)
	GetClientByID(id string) ClientInterface
	RegisterClient(id string, client ClientInterface)
	UnregisterClient(id string)
}

// ClientInterface 定义客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	GetPlayerID() string      // 绑定的游戏玩家 ID，未入局时为空
	SetPlayerID(playerID string)
	GetRoom() string
	SetRoom(id string)
	SendMessage(msg *protocol.Message)
	Close()
}
