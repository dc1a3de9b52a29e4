package room

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/config"
	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
	"github.com/boardwalk/monopoly-online/internal/types"
)

const (
	roomIDPrefix = "r"          // 房间号前缀
	roomIDLength = 7            // 房间号数字位数
	roomIDChars  = "0123456789" // 房间号字符集
)

// Registry 房间与在线玩家目录
type Registry struct {
	cfg   *config.Config
	board *board.Board
	store *storage.RedisStore

	rooms  map[string]*Room
	online map[string][]string // playerID -> 所在房间号（按加入顺序）
	mu     sync.RWMutex
}

// NewRegistry 创建房间目录
func NewRegistry(cfg *config.Config, b *board.Board, store *storage.RedisStore) *Registry {
	return &Registry{
		cfg:    cfg,
		board:  b,
		store:  store,
		rooms:  make(map[string]*Room),
		online: make(map[string][]string),
	}
}

// HostGame 创建房间并加入，创建者持有首个回合
func (reg *Registry) HostGame(client types.ClientInterface, playerID string) (*Room, error) {
	reg.mu.Lock()

	id := reg.generateRoomID()
	r := NewRoom(id, client, playerID, reg.board.Copy(), reg.cfg.Game.InitialCash, reg.store)
	reg.rooms[id] = r
	reg.online[playerID] = append(reg.online[playerID], id)

	reg.mu.Unlock()

	client.SetPlayerID(playerID)
	client.SetRoom(id)

	log.Printf("🏠 房间 %s 已创建，房主 %s", id, playerID)

	r.saveAsync()
	if reg.store != nil {
		go func() { _ = reg.store.RecordGameHosted(context.Background(), playerID) }()
	}

	return r, nil
}

// JoinGame 加入指定房主的房间。房主不在线返回 ErrHostNotFound，
// 房主登记的房间已不存在返回 ErrSessionNotFound。
func (reg *Registry) JoinGame(client types.ClientInterface, playerID, hostPlayerID string) (*Room, error) {
	reg.mu.Lock()

	roomIDs, ok := reg.online[hostPlayerID]
	if !ok || len(roomIDs) == 0 {
		reg.mu.Unlock()
		return nil, apperrors.ErrHostNotFound
	}

	roomID := roomIDs[0]
	r, ok := reg.rooms[roomID]
	if !ok {
		reg.mu.Unlock()
		return nil, apperrors.ErrSessionNotFound
	}

	// 入座必须发生在目录锁内，否则最后一人同时断线会把房间
	// 从目录里解散掉，新玩家落在一个孤儿房间中
	reg.online[playerID] = append(reg.online[playerID], roomID)
	r.AddPlayer(client, playerID)
	reg.mu.Unlock()

	client.SetPlayerID(playerID)
	client.SetRoom(roomID)

	log.Printf("👤 玩家 %s 加入房间 %s", playerID, roomID)

	r.saveAsync()
	if reg.store != nil {
		go func() { _ = reg.store.RecordGameJoined(context.Background(), playerID) }()
	}

	return r, nil
}

// Disconnect 处理玩家断线：移出房间和在线目录，房间空了则解散
func (reg *Registry) Disconnect(client types.ClientInterface) {
	playerID := client.GetPlayerID()
	roomID := client.GetRoom()
	if playerID == "" {
		return
	}

	reg.mu.Lock()
	r := reg.rooms[roomID]

	if roomIDs, ok := reg.online[playerID]; ok {
		for i, id := range roomIDs {
			if id == roomID {
				roomIDs = append(roomIDs[:i], roomIDs[i+1:]...)
				break
			}
		}
		if len(roomIDs) == 0 {
			delete(reg.online, playerID)
		} else {
			reg.online[playerID] = roomIDs
		}
	}
	reg.mu.Unlock()

	if r == nil {
		return
	}

	empty := r.RemovePlayer(playerID, reg.cfg.Game.AdvanceTurnOnDisconnect)
	client.SetRoom("")

	log.Printf("👋 玩家 %s 离开房间 %s", playerID, roomID)

	if empty {
		// 锁内再确认一次人数：RemovePlayer 之后可能已有新玩家加入
		reg.mu.Lock()
		if r.PlayerCount() == 0 {
			delete(reg.rooms, roomID)
			reg.mu.Unlock()
			if reg.store != nil {
				go func() { _ = reg.store.DeleteRoom(context.Background(), roomID) }()
			}
			log.Printf("🏠 房间 %s 已解散", roomID)
			return
		}
		reg.mu.Unlock()
	}
	r.saveAsync()
}

// GetRoom 获取房间
func (reg *Registry) GetRoom(id string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[id]
}

// RoomCount 返回存活房间数
func (reg *Registry) RoomCount() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// generateRoomID 生成唯一房间号，调用方需持有锁
func (reg *Registry) generateRoomID() string {
	for {
		code := make([]byte, roomIDLength)
		for i := range code {
			code[i] = roomIDChars[rand.Intn(len(roomIDChars))]
		}
		id := roomIDPrefix + string(code)
		if _, exists := reg.rooms[id]; !exists {
			return id
		}
	}
}

// RemovePlayer 将玩家移出房间，返回房间是否已空。
// advanceTurn 为 true 且轮到该玩家时先推进回合再移除，
// 否则保留原有行为：nextTurn 停留在离开的玩家身上。
func (r *Room) RemovePlayer(playerID string, advanceTurn bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Players[playerID]; !ok {
		return len(r.Players) == 0
	}

	// 离开的玩家有待决定的购买时清掉
	if r.NextTurn == playerID && r.pendingBuy >= 0 {
		r.pendingBuy = -1
	}

	// 涉及离开玩家的交易作废
	if r.currentTrade != nil &&
		(r.currentTrade.ProposedBy == playerID || r.currentTrade.ProposedTo == playerID) {
		r.currentTrade = nil
	}

	if advanceTurn && r.NextTurn == playerID && len(r.Players) > 1 {
		r.advanceTurn()
	}

	delete(r.Players, playerID)
	for i, id := range r.PlayerOrder {
		if id == playerID {
			r.PlayerOrder = append(r.PlayerOrder[:i], r.PlayerOrder[i+1:]...)
			break
		}
	}

	return len(r.Players) == 0
}
