package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgPing MessageType = "PING" // 心跳 ping

	// 会话操作
	MsgHostGame MessageType = "HOST_GAME" // 创建并加入新房间
	MsgJoinGame MessageType = "JOIN_GAME" // 加入指定房主的房间

	// 游戏操作
	MsgTriggerTurn       MessageType = "TRIGGER_TURN"              // 掷骰子并移动
	MsgPropertyDecision  MessageType = "PROPERTY_PURCHASED"        // 购买地产的决定（接受/拒绝）
	MsgTradeProposal     MessageType = "TRADE_PROPOSAL_INITIATED"  // 发起交易
	MsgTradeResponse     MessageType = "TRADE_PROPOSAL_RESPONDED"  // 回应交易
	MsgRequestMortgage   MessageType = "REQUEST_MORTGAGE"          // 抵押地产
	MsgRequestUnmortgage MessageType = "REQUEST_UNMORTGAGE"        // 赎回地产
	MsgDeclareBankruptcy MessageType = "DECLARE_BANKRUPTCY"        // 宣告破产

	// 聊天与查询
	MsgChatSent       MessageType = "CHAT_MESSAGE_SENT" // 发送聊天消息
	MsgGetStats       MessageType = "GET_STATS"         // 获取个人统计
	MsgGetLeaderboard MessageType = "GET_LEADERBOARD"   // 获取财富排行榜
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnected MessageType = "CONNECTED" // 连接成功
	MsgPong      MessageType = "PONG"      // 心跳 pong

	// 会话相关
	MsgGameCreated     MessageType = "GAME_CREATED"      // 房间创建成功
	MsgGameJoined      MessageType = "GAME_JOINED"       // 加入房间成功
	MsgSessionNotFound MessageType = "SESSION_NOT_FOUND" // 房间不存在
	MsgHostNotFound    MessageType = "HOST_NOT_FOUND"    // 房主不存在
	MsgJoinedSession   MessageType = "JOINED_SESSION"    // 有玩家加入房间

	// 游戏流程
	MsgInvalidTurn         MessageType = "INVALID_TURN"            // 不是该玩家的回合
	MsgPlayerMoved         MessageType = "PLAYER_MOVED"            // 玩家移动
	MsgOfferBuyProperty    MessageType = "OFFER_BUY_PROPERTY"      // 询问是否购买地产
	MsgPropertyPurchased   MessageType = "PROPERTY_PURCHASED"      // 地产购买成功
	MsgRentPaid            MessageType = "RENT_PAID"               // 支付租金
	MsgTradeReceived       MessageType = "TRADE_PROPOSAL_RECEIVED" // 收到交易提议
	MsgTradeSuccessful     MessageType = "TRADE_SUCCESSFUL"        // 交易成功
	MsgPropertyMortgaged   MessageType = "PROPERTY_MORTGAGED"      // 地产已抵押
	MsgPropertyUnmortgaged MessageType = "PROPERTY_UNMORTGAGED"    // 地产已赎回
	MsgPlayerBankrupt      MessageType = "PLAYER_BANKRUPT"         // 玩家破产

	// 聊天与查询
	MsgChatReceived      MessageType = "CHAT_MESSAGE_RECEIVED" // 收到聊天消息
	MsgStatsResult       MessageType = "STATS_RESULT"          // 个人统计结果
	MsgLeaderboardResult MessageType = "LEADERBOARD_RESULT"    // 排行榜结果

	// 错误
	MsgError MessageType = "ERROR" // 错误消息
)
