package room

import "log"

// IsPlayersTurn 判断是否轮到该玩家
func (r *Room) IsPlayersTurn(playerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.NextTurn == playerID
}

// GetNextTurn 返回当前回合玩家
func (r *Room) GetNextTurn() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.NextTurn
}

// advanceTurn 按加入顺序推进到下一个未破产的玩家，调用方需持有锁。
// 全员破产时最多绕场两圈后停下，避免死循环。
func (r *Room) advanceTurn() {
	if len(r.PlayerOrder) == 0 {
		return
	}

	index := -1
	for i, id := range r.PlayerOrder {
		if id == r.NextTurn {
			index = i
			break
		}
	}

	cycles := 0
	for {
		if index+1 < len(r.PlayerOrder) {
			index++
		} else {
			index = 0
		}
		r.NextTurn = r.PlayerOrder[index]
		if index == 0 {
			cycles++
		}
		if r.Players[r.NextTurn].Active || cycles >= 2 {
			break
		}
	}

	log.Printf("🎲 房间 %s 下一回合: %s", r.ID, r.NextTurn)
}
