package apperrors

import (
	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// GameError 游戏错误（房间和会话共享）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound      = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrNotInRoom         = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrHostNotFound      = &GameError{Code: protocol.ErrCodeHostNotFound, Message: "房主不存在"}
	ErrSessionNotFound   = &GameError{Code: protocol.ErrCodeSessionNotFound, Message: "会话不存在"}
	ErrNotYourTurn       = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrNoPendingPurchase = &GameError{Code: protocol.ErrCodeNoPendingBuy, Message: "当前没有待决定的购买"}
	ErrTradePending      = &GameError{Code: protocol.ErrCodeTradePending, Message: "已有一笔进行中的交易"}
	ErrInvalidTrade      = &GameError{Code: protocol.ErrCodeInvalidTrade, Message: "无效的交易提议"}
	ErrNotTradePartner   = &GameError{Code: protocol.ErrCodeNotTradePartner, Message: "您不是本次交易的对象"}
	ErrPlayerBankrupt    = &GameError{Code: protocol.ErrCodePlayerBankrupt, Message: "玩家已破产"}
	ErrPurchasePending   = &GameError{Code: protocol.ErrCodeBuyPending, Message: "请先决定是否购买地产"}
)
