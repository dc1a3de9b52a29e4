package handler

import (
	"errors"
	"log"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// handleHostGame 处理创建房间
func (h *Handler) handleHostGame(client types.ClientInterface, msg *protocol.Message) {
	// 维护模式检查
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停创建房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.HostGamePayload](msg)
	if err != nil || payload.PlayerID == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.registry.Disconnect(client)
	}

	r, err := h.registry.HostGame(client, payload.PlayerID)
	if err != nil {
		sendGameError(client, err)
		return
	}

	// 先回创建成功，再向全房间（此时只有房主）通告加入
	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameCreated, protocol.GameCreatedPayload{
		Msg:  "房间 " + r.ID + " 创建成功",
		Room: r.Info(),
	}))
	r.AnnounceJoin(payload.PlayerID)
}

// handleJoinGame 处理加入房间
func (h *Handler) handleJoinGame(client types.ClientInterface, msg *protocol.Message) {
	// 维护模式检查
	if h.server.IsMaintenanceMode() {
		client.SendMessage(protocol.NewErrorMessageWithText(
			protocol.ErrCodeServerMaintenance, "服务器维护中，暂停加入房间"))
		return
	}

	payload, err := protocol.ParsePayload[protocol.JoinGamePayload](msg)
	if err != nil || payload.PlayerID == "" || payload.HostPlayerID == "" {
		client.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	// 如果已在房间中，先离开
	if client.GetRoom() != "" {
		h.registry.Disconnect(client)
	}

	r, err := h.registry.JoinGame(client, payload.PlayerID, payload.HostPlayerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrHostNotFound):
			client.SendMessage(protocol.MustNewMessage(protocol.MsgHostNotFound, protocol.NotFoundPayload{
				Msg: "找不到房主 " + payload.HostPlayerID,
			}))
		case errors.Is(err, apperrors.ErrSessionNotFound):
			client.SendMessage(protocol.MustNewMessage(protocol.MsgSessionNotFound, protocol.NotFoundPayload{
				Msg: "房主 " + payload.HostPlayerID + " 的房间已不存在",
			}))
		default:
			log.Printf("⚠️ 加入房间失败: %v", err)
			sendGameError(client, err)
		}
		return
	}

	// 先回加入成功，再向全房间通告
	client.SendMessage(protocol.MustNewMessage(protocol.MsgGameJoined, protocol.GameJoinedPayload{
		Msg:  "已加入房间 " + r.ID,
		Room: r.Info(),
	}))
	r.AnnounceJoin(payload.PlayerID)
}
