package handler

import (
	"context"

	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// --- 统计与排行榜 ---

// handleGetStats 获取个人生涯统计
func (h *Handler) handleGetStats(client types.ClientInterface) {
	if h.store == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "统计服务不可用"))
		return
	}

	playerID := client.GetPlayerID()
	if playerID == "" {
		// 尚未进入对局，没有可查的统计
		client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{}))
		return
	}

	stats, err := h.store.GetPlayerStats(context.Background(), playerID)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取统计失败"))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgStatsResult, protocol.StatsResultPayload{
		PlayerID:         stats.PlayerID,
		GamesHosted:      stats.GamesHosted,
		GamesJoined:      stats.GamesJoined,
		PropertiesBought: stats.PropertiesBought,
		RentPaid:         stats.RentPaid,
		RentCollected:    stats.RentCollected,
		TradesCompleted:  stats.TradesCompleted,
		Bankruptcies:     stats.Bankruptcies,
	}))
}

// handleGetLeaderboard 获取财富排行榜
func (h *Handler) handleGetLeaderboard(client types.ClientInterface, msg *protocol.Message) {
	if h.store == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "排行榜服务不可用"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg)
	if err != nil {
		// 默认取前 10
		payload = &protocol.GetLeaderboardPayload{Offset: 0, Limit: 10}
	}

	// 限制请求数量
	if payload.Limit <= 0 || payload.Limit > 50 {
		payload.Limit = 10
	}
	if payload.Offset < 0 {
		payload.Offset = 0
	}

	entries, err := h.store.TopWealth(context.Background(), payload.Offset, payload.Limit)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeUnknown, "获取排行榜失败"))
		return
	}

	protocolEntries := make([]protocol.LeaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		protocolEntries = append(protocolEntries, protocol.LeaderboardEntry{
			Rank:     entry.Rank,
			PlayerID: entry.PlayerID,
			Cash:     entry.Cash,
		})
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboardResult, protocol.LeaderboardResultPayload{
		Entries: protocolEntries,
	}))
}
