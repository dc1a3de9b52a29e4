package handler

import (
	"errors"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// handleTriggerTurn 处理掷骰子
func (h *Handler) handleTriggerTurn(client types.ClientInterface) {
	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if err := r.TriggerTurn(client.GetPlayerID()); err != nil {
		if errors.Is(err, apperrors.ErrNotYourTurn) {
			client.SendMessage(protocol.MustNewMessage(protocol.MsgInvalidTurn, nil))
			return
		}
		sendGameError(client, err)
	}
}

// handlePropertyDecision 处理购买地产的决定
func (h *Handler) handlePropertyDecision(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PurchaseDecisionPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if err := r.DecidePurchase(client.GetPlayerID(), payload.Response); err != nil {
		if errors.Is(err, apperrors.ErrNotYourTurn) {
			client.SendMessage(protocol.MustNewMessage(protocol.MsgInvalidTurn, nil))
			return
		}
		sendGameError(client, err)
	}
}

// handleDeclareBankruptcy 处理宣告破产
func (h *Handler) handleDeclareBankruptcy(client types.ClientInterface) {
	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeNotInRoom))
		return
	}

	if err := r.DeclareBankruptcy(client.GetPlayerID()); err != nil {
		if errors.Is(err, apperrors.ErrNotYourTurn) {
			client.SendMessage(protocol.MustNewMessage(protocol.MsgInvalidTurn, nil))
			return
		}
		sendGameError(client, err)
	}
}
