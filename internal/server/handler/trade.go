package handler

import (
	"log"

	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// handleTradeProposal 处理发起交易
func (h *Handler) handleTradeProposal(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.TradeProposalPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	// 无效的交易提议不回传错误，只记录日志
	if err := r.ProposeTrade(client.GetPlayerID(), payload); err != nil {
		log.Printf("🤝 交易提议被拒: 房间=%s 玩家=%s 原因=%v", r.ID, client.GetPlayerID(), err)
	}
}

// handleTradeResponse 处理回应交易
func (h *Handler) handleTradeResponse(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.TradeResponsePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if err := r.RespondTrade(client.GetPlayerID(), payload.Response); err != nil {
		log.Printf("🤝 交易回应被拒: 房间=%s 玩家=%s 原因=%v", r.ID, client.GetPlayerID(), err)
	}
}
