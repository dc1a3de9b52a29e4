package protocol

// 错误码
const (
	ErrCodeUnknown           = 1000
	ErrCodeInvalidMsg        = 1001
	ErrCodeRoomNotFound      = 2001
	ErrCodeNotInRoom         = 2002
	ErrCodeHostNotFound      = 2003
	ErrCodeSessionNotFound   = 2004
	ErrCodeNotYourTurn       = 3001
	ErrCodeNoPendingBuy      = 3002 // 没有待决定的购买
	ErrCodeTradePending      = 3003 // 已有进行中的交易
	ErrCodeInvalidTrade      = 3004
	ErrCodeNotTradePartner   = 3005
	ErrCodePlayerBankrupt    = 3006 // 玩家已破产
	ErrCodeBuyPending        = 3007 // 有待决定的购买
	ErrCodeServerMaintenance = 5003 // 服务器维护中
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:           "未知错误",
	ErrCodeInvalidMsg:        "无效的消息格式",
	ErrCodeRoomNotFound:      "房间不存在",
	ErrCodeNotInRoom:         "您不在房间中",
	ErrCodeHostNotFound:      "房主不存在",
	ErrCodeSessionNotFound:   "会话不存在",
	ErrCodeNotYourTurn:       "还没轮到您",
	ErrCodeNoPendingBuy:      "当前没有待决定的购买",
	ErrCodeTradePending:      "已有一笔进行中的交易",
	ErrCodeInvalidTrade:      "无效的交易提议",
	ErrCodeNotTradePartner:   "您不是本次交易的对象",
	ErrCodePlayerBankrupt:    "玩家已破产",
	ErrCodeBuyPending:        "请先决定是否购买地产",
	ErrCodeServerMaintenance: "服务器维护中",
}
