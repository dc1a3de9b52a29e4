package handler

import (
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// handleRequestMortgage 处理抵押地产
func (h *Handler) handleRequestMortgage(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.MortgagePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if _, _, err := r.Mortgage(client.GetPlayerID(), payload.Squares); err != nil {
		sendGameError(client, err)
	}
}

// handleRequestUnmortgage 处理赎回地产
func (h *Handler) handleRequestUnmortgage(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.MortgagePayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if _, _, err := r.Unmortgage(client.GetPlayerID(), payload.Squares); err != nil {
		sendGameError(client, err)
	}
}
