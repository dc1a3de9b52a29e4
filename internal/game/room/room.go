package room

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// RoomPlayer 房间中的玩家
type RoomPlayer struct {
	Client   types.ClientInterface
	Position int  // 所在地块下标
	Cash     int  // 现金，交易中可能为负
	Active   bool // false = 已破产，仍保留记录
}

// Room 游戏房间。所有命令方法内部加锁，保证同一房间的命令不交错执行。
type Room struct {
	ID          string
	Players     map[string]*RoomPlayer
	PlayerOrder []string // 回合顺序 = 加入顺序
	Squares     []board.Square
	NextTurn    string
	CreatedAt   time.Time

	currentTrade *TradeProposal
	pendingBuy   int // 待购买决定的地块下标，-1 表示没有

	initialCash int
	dice        func() (int, int)
	store       *storage.RedisStore

	mu sync.RWMutex
}

// NewRoom 创建房间，创建者即首个回合持有者
func NewRoom(id string, founder types.ClientInterface, founderID string, squares []board.Square, initialCash int, store *storage.RedisStore) *Room {
	r := &Room{
		ID:          id,
		Players:     make(map[string]*RoomPlayer),
		PlayerOrder: make([]string, 0, 4),
		Squares:     squares,
		NextTurn:    founderID,
		CreatedAt:   time.Now(),
		pendingBuy:  -1,
		initialCash: initialCash,
		dice:        rollDice,
		store:       store,
	}
	r.addPlayer(founder, founderID)
	return r
}

// rollDice 掷两个独立的骰子
func rollDice() (int, int) {
	return rand.Intn(6) + 1, rand.Intn(6) + 1
}

// addPlayer 调用方需持有锁（NewRoom 例外，此时房间尚未发布）
func (r *Room) addPlayer(client types.ClientInterface, playerID string) {
	if _, exists := r.Players[playerID]; !exists {
		r.PlayerOrder = append(r.PlayerOrder, playerID)
	}
	r.Players[playerID] = &RoomPlayer{
		Client:   client,
		Position: 0,
		Cash:     r.initialCash,
		Active:   true,
	}
}

// AddPlayer 加入玩家，初始现金与位置重置
func (r *Room) AddPlayer(client types.ClientInterface, playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addPlayer(client, playerID)
}

// PlayerCount 返回房间人数
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Players)
}

// GetPlayer 返回玩家快照，不存在时 ok 为 false
func (r *Room) GetPlayer(playerID string) (RoomPlayer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.Players[playerID]
	if !ok {
		return RoomPlayer{}, false
	}
	return *p, true
}

// GetSquare 返回地块快照
func (r *Room) GetSquare(id int) (board.Square, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= len(r.Squares) {
		return board.Square{}, false
	}
	return r.Squares[id], true
}

// broadcast 广播消息给房间内所有玩家，调用方需持有锁
func (r *Room) broadcast(msg *protocol.Message) {
	for _, player := range r.Players {
		if player.Client != nil {
			player.Client.SendMessage(msg)
		}
	}
}

// broadcastExcept 广播消息给除指定玩家外的所有玩家，调用方需持有锁
func (r *Room) broadcastExcept(excludeID string, msg *protocol.Message) {
	for id, player := range r.Players {
		if id != excludeID && player.Client != nil {
			player.Client.SendMessage(msg)
		}
	}
}

// Broadcast 广播消息给房间内所有玩家
func (r *Room) Broadcast(msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcast(msg)
}

// BroadcastExcept 广播消息给除指定玩家外的所有玩家
func (r *Room) BroadcastExcept(excludeID string, msg *protocol.Message) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcastExcept(excludeID, msg)
}

// AnnounceJoin 向房间内所有玩家（含新玩家自己）通告新玩家加入
func (r *Room) AnnounceJoin(playerID string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.broadcast(protocol.MustNewMessage(protocol.MsgJoinedSession, protocol.JoinedSessionPayload{
		PlayerID: playerID,
		Players:  r.allPlayersInfo(),
		Msg:      "玩家 " + playerID + " 加入了房间 " + r.ID,
	}))
}

// playerInfo 调用方需持有锁
func (r *Room) playerInfo(playerID string) protocol.PlayerInfo {
	p := r.Players[playerID]
	return protocol.PlayerInfo{
		ID:       playerID,
		Position: p.Position,
		Cash:     p.Cash,
		Active:   p.Active,
	}
}

// allPlayersInfo 按加入顺序返回所有玩家信息，调用方需持有锁
func (r *Room) allPlayersInfo() []protocol.PlayerInfo {
	infos := make([]protocol.PlayerInfo, 0, len(r.Players))
	for _, id := range r.PlayerOrder {
		infos = append(infos, r.playerInfo(id))
	}
	return infos
}

// Info 返回房间快照，供创建/加入响应下发
func (r *Room) Info() protocol.RoomInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	squares := make([]protocol.SquareInfo, 0, len(r.Squares))
	for _, sq := range r.Squares {
		squares = append(squares, protocol.SquareInfo{
			ID:          sq.ID,
			Type:        string(sq.Type),
			Name:        sq.Name,
			Price:       sq.Price,
			Rent:        sq.Rent,
			Mortgage:    sq.Mortgage,
			Unmortgage:  sq.Unmortgage,
			Owner:       sq.Owner,
			IsMortgaged: sq.IsMortgaged,
		})
	}

	return protocol.RoomInfo{
		ID:       r.ID,
		Players:  r.allPlayersInfo(),
		NextTurn: r.NextTurn,
		Squares:  squares,
	}
}

// saveAsync 异步保存房间快照，store 为空时跳过（测试场景）
func (r *Room) saveAsync() {
	if r.store == nil {
		return
	}
	go func() { _ = r.store.SaveRoom(context.Background(), r.ID, r.ToRoomData()) }()
}
