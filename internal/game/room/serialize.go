package room

import (
	"slices"

	"github.com/boardwalk/monopoly-online/internal/server/storage"
)

// ToRoomData 将 Room 转换为可序列化的 RoomData。
// 快照持有独立副本：异步保存时序列化不能再触碰房间的底层数组。
func (r *Room) ToRoomData() *storage.RoomData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := &storage.RoomData{
		ID:          r.ID,
		Players:     make([]storage.PlayerData, 0, len(r.Players)),
		PlayerOrder: slices.Clone(r.PlayerOrder),
		NextTurn:    r.NextTurn,
		Squares:     slices.Clone(r.Squares),
		CreatedAt:   r.CreatedAt.Unix(),
	}

	for _, id := range r.PlayerOrder {
		player := r.Players[id]
		data.Players = append(data.Players, storage.PlayerData{
			ID:       id,
			Position: player.Position,
			Cash:     player.Cash,
			Active:   player.Active,
		})
	}

	return data
}
