package protocol

// 线上协议沿用原客户端的 camelCase 字段命名。

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// HostGamePayload 创建房间请求
type HostGamePayload struct {
	PlayerID string `json:"playerId"`
}

// JoinGamePayload 加入房间请求
type JoinGamePayload struct {
	PlayerID     string `json:"playerId"`
	HostPlayerID string `json:"hostPlayerId"` // 要加入的房主 ID
}

// ChatPayload 聊天消息（服务端转发时填充 sender）
type ChatPayload struct {
	Sender string `json:"sender,omitempty"` // 发送者 ID（服务端填充）
	Msg    string `json:"msg"`              // 消息内容
}

// PurchaseDecisionPayload 购买地产的决定
type PurchaseDecisionPayload struct {
	Response bool `json:"response"` // true = 购买, false = 放弃
}

// TradeBundle 交易的一侧：现金 + 一组地块
type TradeBundle struct {
	Cash    int   `json:"cash"`
	Squares []int `json:"squares"`
}

// TradeProposalPayload 发起交易请求
type TradeProposalPayload struct {
	TradeWithPlayerID string      `json:"tradeWithPlayerId"` // 交易对象
	Offered           TradeBundle `json:"offered"`           // 发起方给出的
	Requested         TradeBundle `json:"requested"`         // 发起方索要的
}

// TradeResponsePayload 回应交易请求
type TradeResponsePayload struct {
	Response bool `json:"response"` // true = 接受, false = 拒绝
}

// MortgagePayload 抵押/赎回请求
type MortgagePayload struct {
	Squares []int `json:"squares"` // 地块 ID 列表
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Offset int `json:"offset"` // 偏移量
	Limit  int `json:"limit"`  // 数量
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ConnID   string `json:"connId"`   // 连接 ID
	Nickname string `json:"nickname"` // 服务端分配的昵称
}

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"clientTimestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"serverTimestamp"` // 服务器时间戳（毫秒）
}

// GameCreatedPayload 房间创建成功响应
type GameCreatedPayload struct {
	Msg  string   `json:"msg"`
	Room RoomInfo `json:"room"`
}

// GameJoinedPayload 加入房间成功响应
type GameJoinedPayload struct {
	Msg  string   `json:"msg"`
	Room RoomInfo `json:"room"`
}

// NotFoundPayload 房主/房间不存在响应
type NotFoundPayload struct {
	Msg string `json:"msg"`
}

// JoinedSessionPayload 新玩家加入房间通知
type JoinedSessionPayload struct {
	PlayerID string       `json:"playerId"`
	Players  []PlayerInfo `json:"players"` // 房间内所有玩家（按加入顺序）
	Msg      string       `json:"msg"`
}

// PlayerMovedPayload 玩家移动通知
type PlayerMovedPayload struct {
	Player   string `json:"player"`
	Position int    `json:"position"`
	Msg      string `json:"msg"`
}

// OfferBuyPropertyPayload 询问购买地产（仅发给当前玩家）
type OfferBuyPropertyPayload struct {
	SquareID int `json:"squareId"`
}

// PropertyPurchasedPayload 地产购买成功通知
type PropertyPurchasedPayload struct {
	Buyer    string `json:"buyer"`
	SquareID int    `json:"squareId"`
	Msg      string `json:"msg"`
}

// RentPaidPayload 租金支付通知
type RentPaidPayload struct {
	Owner string `json:"owner"` // 收租方
	Payee string `json:"payee"` // 付租方
	Rent  int    `json:"rent"`
	Msg   string `json:"msg"`
}

// TradeInfo 交易详情（提议通知与成交通知共用）
type TradeInfo struct {
	ProposedBy string      `json:"proposedBy"`
	ProposedTo string      `json:"proposedTo"`
	Offered    TradeBundle `json:"offered"`
	Requested  TradeBundle `json:"requested"`
	Msg        string      `json:"msg"`
}

// TradeSuccessfulPayload 交易成功通知
type TradeSuccessfulPayload struct {
	TradeData TradeInfo `json:"tradeData"`
	Msg       string    `json:"msg"`
}

// MortgageResultPayload 抵押/赎回结果通知
type MortgageResultPayload struct {
	PlayerID string `json:"playerId"`
	Squares  []int  `json:"squares"` // 实际处理的地块
	Cash     int    `json:"cash"`    // 获得/支付的现金总额
	Msg      string `json:"msg"`
}

// PlayerBankruptPayload 玩家破产通知
type PlayerBankruptPayload struct {
	PlayerID string `json:"playerId"`
	Msg      string `json:"msg"`
}

// StatsResultPayload 个人统计结果
type StatsResultPayload struct {
	PlayerID         string `json:"playerId"`
	GamesHosted      int    `json:"gamesHosted"`
	GamesJoined      int    `json:"gamesJoined"`
	PropertiesBought int    `json:"propertiesBought"`
	RentPaid         int    `json:"rentPaid"`
	RentCollected    int    `json:"rentCollected"`
	TradesCompleted  int    `json:"tradesCompleted"`
	Bankruptcies     int    `json:"bankruptcies"`
}

// LeaderboardResultPayload 财富排行榜结果
type LeaderboardResultPayload struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Cash     int    `json:"cash"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- 通用数据结构 ---

// PlayerInfo 玩家信息
type PlayerInfo struct {
	ID       string `json:"id"`
	Position int    `json:"position"` // 所在地块索引
	Cash     int    `json:"cash"`
	Active   bool   `json:"active"` // false = 已破产
}

// SquareInfo 地块信息
type SquareInfo struct {
	ID          int    `json:"id"`
	Type        string `json:"type"` // PROPERTY / OTHER
	Name        string `json:"propertyName,omitempty"`
	Price       int    `json:"price,omitempty"`
	Rent        int    `json:"rent,omitempty"`
	Mortgage    int    `json:"mortgage,omitempty"`
	Unmortgage  int    `json:"unmortgage,omitempty"`
	Owner       string `json:"owner,omitempty"`
	IsMortgaged bool   `json:"isMortgaged,omitempty"`
}

// RoomInfo 房间快照（创建/加入房间时下发）
type RoomInfo struct {
	ID       string       `json:"id"`
	Players  []PlayerInfo `json:"players"`  // 按加入顺序
	NextTurn string       `json:"nextTurn"` // 当前回合玩家
	Squares  []SquareInfo `json:"squares"`  // 本房间的棋盘副本
}
