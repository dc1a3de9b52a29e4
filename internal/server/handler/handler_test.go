package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwalk/monopoly-online/internal/config"
	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/game/room"
	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
	"github.com/boardwalk/monopoly-online/internal/testutil"
	"github.com/boardwalk/monopoly-online/internal/types"
)

// fakeServer 实现 types.ServerInterface 的测试替身
type fakeServer struct {
	maintenance bool
}

func (f *fakeServer) IsMaintenanceMode() bool                              { return f.maintenance }
func (f *fakeServer) GetOnlineCount() int                                  { return 0 }
func (f *fakeServer) BroadcastToLobby(msg *protocol.Message)               {}
func (f *fakeServer) GetClientByID(id string) types.ClientInterface        { return nil }
func (f *fakeServer) RegisterClient(id string, c types.ClientInterface)    {}
func (f *fakeServer) UnregisterClient(id string)                           {}

func testBoard() *board.Board {
	return &board.Board{Squares: []board.Square{
		{ID: 0, Type: board.SquareOther, Name: "GO"},
		{ID: 1, Type: board.SquareProperty, Name: "Gdynia", Price: 60, Rent: 2, Mortgage: 30, Unmortgage: 33},
		{ID: 2, Type: board.SquareProperty, Name: "Taipei", Price: 200, Rent: 16, Mortgage: 100, Unmortgage: 110},
		{ID: 3, Type: board.SquareOther, Name: "Chance"},
		{ID: 4, Type: board.SquareProperty, Name: "Cape Town", Price: 100, Rent: 6, Mortgage: 50, Unmortgage: 55},
		{ID: 5, Type: board.SquareProperty, Name: "Belgrade", Price: 120, Rent: 8, Mortgage: 60, Unmortgage: 66},
	}}
}

// newTestHandler 创建处理器及其依赖，store 为空时统计相关功能降级
func newTestHandler(t *testing.T, store *storage.RedisStore) (*Handler, *fakeServer, *room.Registry) {
	t.Helper()
	srv := &fakeServer{}
	reg := room.NewRegistry(config.Default(), testBoard(), store)
	h := NewHandler(HandlerDeps{Server: srv, Registry: reg, Store: store})
	return h, srv, reg
}

// hostGame 通过处理器创建房间
func hostGame(t *testing.T, h *Handler, client *testutil.SimpleClient, playerID string) {
	t.Helper()
	h.Handle(client, protocol.MustNewMessage(protocol.MsgHostGame, protocol.HostGamePayload{PlayerID: playerID}))
	require.NotEmpty(t, client.RoomID)
}

// joinGame 通过处理器加入房间
func joinGame(t *testing.T, h *Handler, client *testutil.SimpleClient, playerID, hostID string) {
	t.Helper()
	h.Handle(client, protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		PlayerID:     playerID,
		HostPlayerID: hostID,
	}))
	require.NotEmpty(t, client.RoomID)
}

func TestHandleHostGame(t *testing.T) {
	t.Parallel()

	h, _, reg := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1"}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgHostGame, protocol.HostGamePayload{PlayerID: "alice"}))

	require.Len(t, client.Messages, 2)
	// 先收到创建成功，再收到入场通告
	assert.Equal(t, protocol.MsgGameCreated, client.Messages[0].Type)
	assert.Equal(t, protocol.MsgJoinedSession, client.Messages[1].Type)

	created, err := protocol.ParsePayload[protocol.GameCreatedPayload](client.Messages[0])
	require.NoError(t, err)
	assert.Equal(t, client.RoomID, created.Room.ID)
	assert.Equal(t, "alice", created.Room.NextTurn)
	require.Len(t, created.Room.Players, 1)
	assert.Equal(t, 1500, created.Room.Players[0].Cash)
	assert.Len(t, created.Room.Squares, 6)

	assert.Equal(t, "alice", client.PlayerID)
	assert.Equal(t, 1, reg.RoomCount())
}

func TestHandleHostGame_MaintenanceMode(t *testing.T) {
	t.Parallel()

	h, srv, reg := newTestHandler(t, nil)
	srv.maintenance = true
	client := &testutil.SimpleClient{ID: "conn-1"}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgHostGame, protocol.HostGamePayload{PlayerID: "alice"}))

	msgs := client.MessagesOfType(protocol.MsgError)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeServerMaintenance, payload.Code)
	assert.Equal(t, 0, reg.RoomCount())
}

func TestHandleHostGame_MissingPlayerID(t *testing.T) {
	t.Parallel()

	h, _, reg := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1"}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgHostGame, protocol.HostGamePayload{}))

	msgs := client.MessagesOfType(protocol.MsgError)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
	assert.Equal(t, 0, reg.RoomCount())
}

func TestHandleHostGame_LeavesCurrentRoomFirst(t *testing.T) {
	t.Parallel()

	h, _, reg := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1"}

	hostGame(t, h, client, "alice")
	first := client.RoomID

	hostGame(t, h, client, "alice")

	// 旧房间只剩 alice 一人，会随离开而解散
	assert.NotEqual(t, first, client.RoomID)
	assert.Equal(t, 1, reg.RoomCount())
	assert.Nil(t, reg.GetRoom(first))
}

func TestHandleJoinGame(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t, nil)
	host := &testutil.SimpleClient{ID: "conn-1"}
	hostGame(t, h, host, "alice")

	joiner := &testutil.SimpleClient{ID: "conn-2"}
	h.Handle(joiner, protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		PlayerID:     "bob",
		HostPlayerID: "alice",
	}))

	require.Len(t, joiner.Messages, 2)
	assert.Equal(t, protocol.MsgGameJoined, joiner.Messages[0].Type)
	assert.Equal(t, protocol.MsgJoinedSession, joiner.Messages[1].Type)

	joined, err := protocol.ParsePayload[protocol.GameJoinedPayload](joiner.Messages[0])
	require.NoError(t, err)
	assert.Equal(t, host.RoomID, joined.Room.ID)
	require.Len(t, joined.Room.Players, 2)
	assert.Equal(t, "alice", joined.Room.Players[0].ID)
	assert.Equal(t, "bob", joined.Room.Players[1].ID)

	// 房主也收到入场通告（创建时一条，加入时一条）
	assert.Len(t, host.MessagesOfType(protocol.MsgJoinedSession), 2)
}

func TestHandleJoinGame_HostNotFound(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1"}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgJoinGame, protocol.JoinGamePayload{
		PlayerID:     "bob",
		HostPlayerID: "nobody",
	}))

	require.Len(t, client.MessagesOfType(protocol.MsgHostNotFound), 1)
	assert.Empty(t, client.RoomID)
}

func TestHandleUnknownMessageType(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1", Name: "测试玩家"}

	h.Handle(client, &protocol.Message{Type: "NO_SUCH_TYPE"})

	msgs := client.MessagesOfType(protocol.MsgError)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.ErrorPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeInvalidMsg, payload.Code)
}

func TestHandlePing(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHandler(t, nil)
	client := &testutil.SimpleClient{ID: "conn-1"}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgPing, protocol.PingPayload{Timestamp: 12345}))

	msgs := client.MessagesOfType(protocol.MsgPong)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.PongPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, int64(12345), payload.ClientTimestamp)
	assert.Positive(t, payload.ServerTimestamp)
}
