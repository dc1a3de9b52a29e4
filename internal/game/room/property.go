package room

import (
	"context"
	"fmt"
	"log"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// Mortgage 抵押地产换取现金。逐块过滤：不属于该玩家或已抵押的地块
// 跳过并继续处理其余地块，至少成功一块时才一次性入账。
// 不受回合限制。
func (r *Room) Mortgage(playerID string, squareIDs []int) ([]int, int, error) {
	r.mu.Lock()

	player, ok := r.Players[playerID]
	if !ok {
		r.mu.Unlock()
		return nil, 0, apperrors.ErrNotInRoom
	}

	var mortgaged []int
	total := 0
	for _, id := range squareIDs {
		if id < 0 || id >= len(r.Squares) {
			log.Printf("🏦 房间 %s 忽略无效地块 %d", r.ID, id)
			continue
		}
		square := &r.Squares[id]
		if square.Owner != playerID {
			log.Printf("🏦 房间 %s 地块 %d 不属于玩家 %s", r.ID, id, playerID)
			continue
		}
		if square.IsMortgaged {
			log.Printf("🏦 房间 %s 地块 %d 已处于抵押状态", r.ID, id)
			continue
		}
		square.IsMortgaged = true
		total += square.Mortgage
		mortgaged = append(mortgaged, id)
	}

	if len(mortgaged) > 0 {
		player.Cash += total

		log.Printf("🏦 房间 %s 玩家 %s 抵押 %v 获得 %d", r.ID, playerID, mortgaged, total)

		r.broadcast(protocol.MustNewMessage(protocol.MsgPropertyMortgaged, protocol.MortgageResultPayload{
			PlayerID: playerID,
			Squares:  mortgaged,
			Cash:     total,
			Msg:      fmt.Sprintf("玩家 %s 抵押地产 %v 获得 %d", playerID, mortgaged, total),
		}))
	}

	cash := player.Cash
	r.mu.Unlock()

	if len(mortgaged) > 0 {
		r.saveAsync()
		if r.store != nil {
			go func() { _ = r.store.UpdateWealth(context.Background(), playerID, cash) }()
		}
	}

	return mortgaged, total, nil
}

// Unmortgage 赎回抵押的地产。先过滤出可赎回的地块并求出总费用，
// 现金不足以支付全部费用时整个操作放弃，不做任何部分赎回。
// 不受回合限制。
func (r *Room) Unmortgage(playerID string, squareIDs []int) ([]int, int, error) {
	r.mu.Lock()

	player, ok := r.Players[playerID]
	if !ok {
		r.mu.Unlock()
		return nil, 0, apperrors.ErrNotInRoom
	}

	// 第一遍只筛选，不改状态
	var candidates []int
	cost := 0
	for _, id := range squareIDs {
		if id < 0 || id >= len(r.Squares) {
			log.Printf("🏦 房间 %s 忽略无效地块 %d", r.ID, id)
			continue
		}
		square := &r.Squares[id]
		if square.Owner != playerID {
			log.Printf("🏦 房间 %s 地块 %d 不属于玩家 %s", r.ID, id, playerID)
			continue
		}
		if !square.IsMortgaged {
			log.Printf("🏦 房间 %s 地块 %d 未处于抵押状态", r.ID, id)
			continue
		}
		candidates = append(candidates, id)
		cost += square.Unmortgage
	}

	if len(candidates) == 0 {
		r.mu.Unlock()
		return nil, 0, nil
	}

	if player.Cash < cost {
		log.Printf("🏦 房间 %s 玩家 %s 现金 %d 不足以支付赎回费用 %d", r.ID, playerID, player.Cash, cost)
		r.mu.Unlock()
		return nil, 0, nil
	}

	for _, id := range candidates {
		r.Squares[id].IsMortgaged = false
	}
	player.Cash -= cost

	log.Printf("🏦 房间 %s 玩家 %s 赎回 %v 花费 %d", r.ID, playerID, candidates, cost)

	r.broadcast(protocol.MustNewMessage(protocol.MsgPropertyUnmortgaged, protocol.MortgageResultPayload{
		PlayerID: playerID,
		Squares:  candidates,
		Cash:     cost,
		Msg:      fmt.Sprintf("玩家 %s 赎回地产 %v 花费 %d", playerID, candidates, cost),
	}))

	cash := player.Cash
	r.mu.Unlock()

	r.saveAsync()
	if r.store != nil {
		go func() { _ = r.store.UpdateWealth(context.Background(), playerID, cash) }()
	}

	return candidates, cost, nil
}
