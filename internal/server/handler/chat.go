package handler

import (
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// handleChat 处理聊天消息，转发给房间内除发送者外的所有人
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil || payload.Msg == "" {
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		client.SendMessage(protocol.NewErrorMessageWithText(protocol.ErrCodeNotInRoom, "不在房间中，无法发送消息"))
		return
	}

	// 填充发送者信息
	sender := client.GetPlayerID()
	if sender == "" {
		sender = client.GetName()
	}
	payload.Sender = sender

	r.BroadcastExcept(sender, protocol.MustNewMessage(protocol.MsgChatReceived, payload))
}
