package room

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwalk/monopoly-online/internal/apperrors"
	"github.com/boardwalk/monopoly-online/internal/config"
	"github.com/boardwalk/monopoly-online/internal/game/board"
	"github.com/boardwalk/monopoly-online/internal/testutil"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := config.Default()
	return NewRegistry(cfg, &board.Board{Squares: testSquares()}, nil)
}

func TestRegistry_HostGame(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	client := &testutil.SimpleClient{ID: "conn-1"}

	r, err := reg.HostGame(client, "alice")
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.True(t, strings.HasPrefix(r.ID, "r"))
	assert.Len(t, r.ID, 1+roomIDLength)
	assert.Equal(t, "alice", r.GetNextTurn())
	assert.Equal(t, 1, r.PlayerCount())
	assert.Equal(t, 1, reg.RoomCount())

	// 客户端绑定了玩家和房间
	assert.Equal(t, "alice", client.PlayerID)
	assert.Equal(t, r.ID, client.RoomID)
	assert.Same(t, r, reg.GetRoom(r.ID))
}

func TestRegistry_HostGame_UniqueIDs(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		r, err := reg.HostGame(&testutil.SimpleClient{}, "alice")
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "房间号重复: %s", r.ID)
		seen[r.ID] = true
	}
}

func TestRegistry_JoinGame(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	host := &testutil.SimpleClient{ID: "conn-1"}
	hosted, err := reg.HostGame(host, "alice")
	require.NoError(t, err)

	joiner := &testutil.SimpleClient{ID: "conn-2"}
	joined, err := reg.JoinGame(joiner, "bob", "alice")
	require.NoError(t, err)
	assert.Same(t, hosted, joined)

	assert.Equal(t, 2, joined.PlayerCount())
	assert.Equal(t, []string{"alice", "bob"}, joined.PlayerOrder)
	// 加入不改变回合持有者
	assert.Equal(t, "alice", joined.GetNextTurn())

	p, ok := joined.GetPlayer("bob")
	require.True(t, ok)
	assert.Equal(t, 1500, p.Cash)
	assert.Equal(t, "bob", joiner.PlayerID)
	assert.Equal(t, joined.ID, joiner.RoomID)
}

func TestRegistry_JoinGame_HostNotFound(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	_, err := reg.JoinGame(&testutil.SimpleClient{}, "bob", "nobody")
	assert.ErrorIs(t, err, apperrors.ErrHostNotFound)
}

func TestRegistry_JoinGame_SessionNotFound(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)

	// 房主在线目录里有登记，但对应房间已不存在
	reg.mu.Lock()
	reg.online["alice"] = []string{"r9999999"}
	reg.mu.Unlock()

	_, err := reg.JoinGame(&testutil.SimpleClient{}, "bob", "alice")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestRegistry_Disconnect(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	host := &testutil.SimpleClient{ID: "conn-1"}
	r, err := reg.HostGame(host, "alice")
	require.NoError(t, err)

	joiner := &testutil.SimpleClient{ID: "conn-2"}
	_, err = reg.JoinGame(joiner, "bob", "alice")
	require.NoError(t, err)

	reg.Disconnect(joiner)

	assert.Equal(t, 1, r.PlayerCount())
	_, ok := r.GetPlayer("bob")
	assert.False(t, ok)
	assert.Empty(t, joiner.RoomID)
	assert.Equal(t, 1, reg.RoomCount())

	// 最后一个玩家断开后房间解散
	reg.Disconnect(host)
	assert.Equal(t, 0, reg.RoomCount())
	assert.Nil(t, reg.GetRoom(r.ID))
}

func TestRegistry_Disconnect_UnknownPlayer(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	// 从未入局的连接断开不应有任何影响
	reg.Disconnect(&testutil.SimpleClient{ID: "conn-x"})
	assert.Equal(t, 0, reg.RoomCount())
}

func TestRegistry_Disconnect_TurnHolderStaysByDefault(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	host := &testutil.SimpleClient{ID: "conn-1"}
	r, err := reg.HostGame(host, "alice")
	require.NoError(t, err)
	_, err = reg.JoinGame(&testutil.SimpleClient{ID: "conn-2"}, "bob", "alice")
	require.NoError(t, err)

	reg.Disconnect(host)

	// 默认配置：回合停留在断线玩家身上
	assert.Equal(t, "alice", r.GetNextTurn())
}

func TestRegistry_Disconnect_AdvanceTurnWhenConfigured(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Game.AdvanceTurnOnDisconnect = true
	reg := NewRegistry(cfg, &board.Board{Squares: testSquares()}, nil)

	host := &testutil.SimpleClient{ID: "conn-1"}
	r, err := reg.HostGame(host, "alice")
	require.NoError(t, err)
	_, err = reg.JoinGame(&testutil.SimpleClient{ID: "conn-2"}, "bob", "alice")
	require.NoError(t, err)

	reg.Disconnect(host)
	assert.Equal(t, "bob", r.GetNextTurn())
}

func TestRegistry_DisconnectDuringJoin(t *testing.T) {
	t.Parallel()

	// 最后一人断线与新玩家加入同时发生：加入要么明确失败，
	// 要么落在一个仍登记在目录里的房间，不能被解散动作遗弃
	for i := 0; i < 100; i++ {
		reg := newTestRegistry(t)
		host := &testutil.SimpleClient{ID: "conn-1"}
		_, err := reg.HostGame(host, "alice")
		require.NoError(t, err)

		joiner := &testutil.SimpleClient{ID: "conn-2"}
		var (
			joined  *Room
			joinErr error
			wg      sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Disconnect(host)
		}()
		go func() {
			defer wg.Done()
			joined, joinErr = reg.JoinGame(joiner, "bob", "alice")
		}()
		wg.Wait()

		if joinErr != nil {
			assert.True(t,
				errors.Is(joinErr, apperrors.ErrHostNotFound) ||
					errors.Is(joinErr, apperrors.ErrSessionNotFound))
			continue
		}
		require.NotNil(t, joined)
		assert.Same(t, joined, reg.GetRoom(joined.ID))
		_, ok := joined.GetPlayer("bob")
		assert.True(t, ok)
	}
}

func TestRegistry_RoomsGetIndependentBoards(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	r1, err := reg.HostGame(&testutil.SimpleClient{}, "alice")
	require.NoError(t, err)
	r2, err := reg.HostGame(&testutil.SimpleClient{}, "bob")
	require.NoError(t, err)

	r1.mu.Lock()
	r1.Squares[1].Owner = "alice"
	r1.mu.Unlock()

	sq, _ := r2.GetSquare(1)
	assert.Empty(t, sq.Owner, "房间之间的棋盘互不影响")
}
