package room

import (
	"context"
	"fmt"
	"log"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/protocol"
)

// TradeProposal 一笔进行中的交易，每个房间同一时刻至多一笔
type TradeProposal struct {
	ProposedBy string
	ProposedTo string
	Offered    protocol.TradeBundle
	Requested  protocol.TradeBundle
}

// ProposeTrade 发起交易提议。已有进行中的交易或提议不合法时拒绝。
// 提议通过后通知房间内除发起方外的所有玩家。
func (r *Room) ProposeTrade(playerID string, payload *protocol.TradeProposalPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Players[playerID]; !ok {
		return apperrors.ErrNotInRoom
	}
	if r.currentTrade != nil {
		return apperrors.ErrTradePending
	}
	if err := r.validateTrade(playerID, payload); err != nil {
		return err
	}

	r.currentTrade = &TradeProposal{
		ProposedBy: playerID,
		ProposedTo: payload.TradeWithPlayerID,
		Offered:    payload.Offered,
		Requested:  payload.Requested,
	}

	log.Printf("🤝 房间 %s 玩家 %s 向 %s 发起交易", r.ID, playerID, payload.TradeWithPlayerID)

	r.broadcastExcept(playerID, protocol.MustNewMessage(protocol.MsgTradeReceived, protocol.TradeInfo{
		ProposedBy: playerID,
		ProposedTo: payload.TradeWithPlayerID,
		Offered:    payload.Offered,
		Requested:  payload.Requested,
		Msg:        fmt.Sprintf("玩家 %s 向 %s 发起了交易", playerID, payload.TradeWithPlayerID),
	}))

	return nil
}

// validateTrade 校验交易提议，调用方需持有锁。
// 注意：不校验发起方现金是否足以支付 offered.cash，沿用既有经济规则。
func (r *Room) validateTrade(playerID string, payload *protocol.TradeProposalPayload) error {
	partnerID := payload.TradeWithPlayerID
	if partnerID == "" || partnerID == playerID {
		return apperrors.ErrInvalidTrade
	}
	if _, ok := r.Players[partnerID]; !ok {
		return apperrors.ErrInvalidTrade
	}
	if payload.Offered.Cash < 0 || payload.Requested.Cash < 0 {
		log.Printf("🤝 房间 %s 交易金额不能为负", r.ID)
		return apperrors.ErrInvalidTrade
	}

	for _, id := range payload.Offered.Squares {
		if id < 0 || id >= len(r.Squares) || r.Squares[id].Owner != playerID {
			log.Printf("🤝 房间 %s 地块 %d 不属于玩家 %s", r.ID, id, playerID)
			return apperrors.ErrInvalidTrade
		}
	}
	for _, id := range payload.Requested.Squares {
		if id < 0 || id >= len(r.Squares) || r.Squares[id].Owner != partnerID {
			log.Printf("🤝 房间 %s 地块 %d 不属于玩家 %s", r.ID, id, partnerID)
			return apperrors.ErrInvalidTrade
		}
	}

	return nil
}

// RespondTrade 回应交易提议，只有被提议方可以回应。
// 无论接受与否，当前交易随后清空。
func (r *Room) RespondTrade(playerID string, accept bool) error {
	r.mu.Lock()

	trade := r.currentTrade
	if trade == nil || trade.ProposedTo != playerID {
		r.mu.Unlock()
		return apperrors.ErrNotTradePartner
	}

	// 发起方已离开房间，交易作废
	if _, ok := r.Players[trade.ProposedBy]; !ok {
		r.currentTrade = nil
		r.mu.Unlock()
		return apperrors.ErrInvalidTrade
	}

	r.currentTrade = nil

	if !accept {
		log.Printf("🤝 房间 %s 玩家 %s 拒绝了 %s 的交易", r.ID, playerID, trade.ProposedBy)
		r.mu.Unlock()
		return nil
	}

	r.executeTrade(trade)

	log.Printf("🤝 房间 %s 玩家 %s 接受了 %s 的交易", r.ID, playerID, trade.ProposedBy)

	r.broadcast(protocol.MustNewMessage(protocol.MsgTradeSuccessful, protocol.TradeSuccessfulPayload{
		TradeData: protocol.TradeInfo{
			ProposedBy: trade.ProposedBy,
			ProposedTo: trade.ProposedTo,
			Offered:    trade.Offered,
			Requested:  trade.Requested,
		},
		Msg: fmt.Sprintf("玩家 %s 接受了 %s 的交易", trade.ProposedTo, trade.ProposedBy),
	}))

	byCash := r.Players[trade.ProposedBy].Cash
	toCash := r.Players[trade.ProposedTo].Cash
	r.mu.Unlock()

	r.saveAsync()
	if r.store != nil {
		go func() {
			ctx := context.Background()
			_ = r.store.RecordTradeCompleted(ctx, trade.ProposedBy, trade.ProposedTo)
			_ = r.store.UpdateWealth(ctx, trade.ProposedBy, byCash)
			_ = r.store.UpdateWealth(ctx, trade.ProposedTo, toCash)
		}()
	}

	return nil
}

// executeTrade 执行交易：现金双向划转，地块所有权互换。调用方需持有锁。
func (r *Room) executeTrade(trade *TradeProposal) {
	proposer := r.Players[trade.ProposedBy]
	counterparty := r.Players[trade.ProposedTo]

	if trade.Offered.Cash > 0 {
		proposer.Cash -= trade.Offered.Cash
		counterparty.Cash += trade.Offered.Cash
	}
	if trade.Requested.Cash > 0 {
		counterparty.Cash -= trade.Requested.Cash
		proposer.Cash += trade.Requested.Cash
	}

	for _, id := range trade.Offered.Squares {
		r.Squares[id].Owner = trade.ProposedTo
	}
	for _, id := range trade.Requested.Squares {
		r.Squares[id].Owner = trade.ProposedBy
	}
}

// CurrentTrade 返回当前交易提议的副本，没有时返回 nil
func (r *Room) CurrentTrade() *TradeProposal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currentTrade == nil {
		return nil
	}
	trade := *r.currentTrade
	return &trade
}
