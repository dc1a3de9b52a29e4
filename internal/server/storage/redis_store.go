package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boardwalk/monopoly-online/internal/game/board"
)

const (
	// Redis key 前缀
	roomKeyPrefix     = "room:"
	playerStatsKey    = "player:stats:"
	wealthLeaderboard = "leaderboard:wealth"

	// 房间快照过期时间
	roomExpiration = 2 * time.Hour
)

// RoomData 房间快照（用于 Redis 序列化）
type RoomData struct {
	ID          string         `json:"id"`
	Players     []PlayerData   `json:"players"`
	PlayerOrder []string       `json:"playerOrder"`
	NextTurn    string         `json:"nextTurn"`
	Squares     []board.Square `json:"squares"`
	CreatedAt   int64          `json:"createdAt"`
}

// PlayerData 玩家快照
type PlayerData struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Cash     int    `json:"cash"`
	Active   bool   `json:"active"`
}

// PlayerStats 玩家生涯统计
type PlayerStats struct {
	PlayerID         string `json:"playerId"`
	GamesHosted      int    `json:"gamesHosted"`
	GamesJoined      int    `json:"gamesJoined"`
	PropertiesBought int    `json:"propertiesBought"`
	RentPaid         int    `json:"rentPaid"`
	RentCollected    int    `json:"rentCollected"`
	TradesCompleted  int    `json:"tradesCompleted"`
	Bankruptcies     int    `json:"bankruptcies"`
}

// WealthEntry 财富排行榜条目
type WealthEntry struct {
	Rank     int
	PlayerID string
	Cash     int
}

// RedisStore Redis 存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建 Redis 存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close 关闭底层连接
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}

// Ping 检查 Redis 连通性
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// --- 房间快照 ---

// SaveRoom 保存房间快照
func (rs *RedisStore) SaveRoom(ctx context.Context, roomID string, data *RoomData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化房间数据失败: %w", err)
	}

	key := roomKeyPrefix + roomID
	return rs.client.Set(ctx, key, jsonData, roomExpiration).Err()
}

// LoadRoom 加载房间快照（仅返回数据，需要外部重建）
func (rs *RedisStore) LoadRoom(ctx context.Context, roomID string) (*RoomData, error) {
	key := roomKeyPrefix + roomID
	data, err := rs.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // 房间不存在
		}
		return nil, err
	}

	var roomData RoomData
	if err := json.Unmarshal(data, &roomData); err != nil {
		return nil, fmt.Errorf("反序列化房间数据失败: %w", err)
	}

	return &roomData, nil
}

// DeleteRoom 删除房间快照
func (rs *RedisStore) DeleteRoom(ctx context.Context, roomID string) error {
	key := roomKeyPrefix + roomID
	return rs.client.Del(ctx, key).Err()
}

// GetAllRoomIDs 获取所有有快照的房间号
func (rs *RedisStore) GetAllRoomIDs(ctx context.Context) ([]string, error) {
	keys, err := rs.client.Keys(ctx, roomKeyPrefix+"*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key[len(roomKeyPrefix):]
	}
	return ids, nil
}

// --- 玩家统计 ---

// RecordGameHosted 记录创建房间
func (rs *RedisStore) RecordGameHosted(ctx context.Context, playerID string) error {
	return rs.client.HIncrBy(ctx, playerStatsKey+playerID, "gamesHosted", 1).Err()
}

// RecordGameJoined 记录加入房间
func (rs *RedisStore) RecordGameJoined(ctx context.Context, playerID string) error {
	return rs.client.HIncrBy(ctx, playerStatsKey+playerID, "gamesJoined", 1).Err()
}

// RecordPropertyBought 记录购买地产
func (rs *RedisStore) RecordPropertyBought(ctx context.Context, playerID string) error {
	return rs.client.HIncrBy(ctx, playerStatsKey+playerID, "propertiesBought", 1).Err()
}

// RecordRent 记录一次租金划转：付租方与收租方各记一笔
func (rs *RedisStore) RecordRent(ctx context.Context, payerID, ownerID string, amount int) error {
	pipe := rs.client.Pipeline()
	pipe.HIncrBy(ctx, playerStatsKey+payerID, "rentPaid", int64(amount))
	pipe.HIncrBy(ctx, playerStatsKey+ownerID, "rentCollected", int64(amount))
	_, err := pipe.Exec(ctx)
	return err
}

// RecordTradeCompleted 记录交易达成，双方各计一次
func (rs *RedisStore) RecordTradeCompleted(ctx context.Context, proposerID, counterpartyID string) error {
	pipe := rs.client.Pipeline()
	pipe.HIncrBy(ctx, playerStatsKey+proposerID, "tradesCompleted", 1)
	pipe.HIncrBy(ctx, playerStatsKey+counterpartyID, "tradesCompleted", 1)
	_, err := pipe.Exec(ctx)
	return err
}

// RecordBankruptcy 记录破产
func (rs *RedisStore) RecordBankruptcy(ctx context.Context, playerID string) error {
	return rs.client.HIncrBy(ctx, playerStatsKey+playerID, "bankruptcies", 1).Err()
}

// GetPlayerStats 获取玩家生涯统计，从未有记录时返回零值统计
func (rs *RedisStore) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := rs.client.HGetAll(ctx, playerStatsKey+playerID).Result()
	if err != nil {
		return nil, err
	}

	stats := &PlayerStats{PlayerID: playerID}
	stats.GamesHosted = parseIntField(data, "gamesHosted")
	stats.GamesJoined = parseIntField(data, "gamesJoined")
	stats.PropertiesBought = parseIntField(data, "propertiesBought")
	stats.RentPaid = parseIntField(data, "rentPaid")
	stats.RentCollected = parseIntField(data, "rentCollected")
	stats.TradesCompleted = parseIntField(data, "tradesCompleted")
	stats.Bankruptcies = parseIntField(data, "bankruptcies")
	return stats, nil
}

func parseIntField(data map[string]string, field string) int {
	n, _ := strconv.Atoi(data[field])
	return n
}

// --- 财富排行榜 ---

// UpdateWealth 更新玩家在财富排行榜上的现金
func (rs *RedisStore) UpdateWealth(ctx context.Context, playerID string, cash int) error {
	return rs.client.ZAdd(ctx, wealthLeaderboard, redis.Z{
		Score:  float64(cash),
		Member: playerID,
	}).Err()
}

// TopWealth 获取财富排行榜（从高到低）
func (rs *RedisStore) TopWealth(ctx context.Context, offset, limit int) ([]WealthEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	results, err := rs.client.ZRevRangeWithScores(ctx, wealthLeaderboard, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]WealthEntry, 0, len(results))
	for i, result := range results {
		playerID, ok := result.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, WealthEntry{
			Rank:     offset + i + 1,
			PlayerID: playerID,
			Cash:     int(result.Score),
		})
	}

	return entries, nil
}
