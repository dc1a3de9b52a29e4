package handler

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardwalk/monopoly-online/internal/protocol"
	"github.com/boardwalk/monopoly-online/internal/server/storage"
	"github.com/boardwalk/monopoly-online/internal/testutil"
)

func newTestStore(t *testing.T) *storage.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return storage.NewRedisStore(client)
}

func TestHandleGetStats(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	h, _, _ := newTestHandler(t, store)

	ctx := context.Background()
	require.NoError(t, store.RecordGameHosted(ctx, "alice"))
	require.NoError(t, store.RecordPropertyBought(ctx, "alice"))
	require.NoError(t, store.RecordPropertyBought(ctx, "alice"))

	client := &testutil.SimpleClient{ID: "conn-1", PlayerID: "alice"}
	h.Handle(client, protocol.MustNewMessage(protocol.MsgGetStats, nil))

	msgs := client.MessagesOfType(protocol.MsgStatsResult)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.StatsResultPayload](msgs[0])
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.PlayerID)
	assert.Equal(t, 1, payload.GamesHosted)
	assert.Equal(t, 2, payload.PropertiesBought)
}

func TestHandleGetStats_NoPlayerID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	h, _, _ := newTestHandler(t, store)

	// 未进入对局的连接也能查询，返回零值统计
	client := &testutil.SimpleClient{ID: "conn-1"}
	h.Handle(client, protocol.MustNewMessage(protocol.MsgGetStats, nil))

	msgs := client.MessagesOfType(protocol.MsgStatsResult)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.StatsResultPayload](msgs[0])
	require.NoError(t, err)
	assert.Zero(t, payload.GamesHosted)
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	h, _, _ := newTestHandler(t, store)

	ctx := context.Background()
	require.NoError(t, store.UpdateWealth(ctx, "alice", 2200))
	require.NoError(t, store.UpdateWealth(ctx, "bob", 900))
	require.NoError(t, store.UpdateWealth(ctx, "carol", 1500))

	client := &testutil.SimpleClient{ID: "conn-1"}
	h.Handle(client, protocol.MustNewMessage(protocol.MsgGetLeaderboard, protocol.GetLeaderboardPayload{Limit: 2}))

	msgs := client.MessagesOfType(protocol.MsgLeaderboardResult)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.LeaderboardResultPayload](msgs[0])
	require.NoError(t, err)
	require.Len(t, payload.Entries, 2)
	assert.Equal(t, "alice", payload.Entries[0].PlayerID)
	assert.Equal(t, 1, payload.Entries[0].Rank)
	assert.Equal(t, 2200, payload.Entries[0].Cash)
	assert.Equal(t, "carol", payload.Entries[1].PlayerID)
}

func TestHandleGetLeaderboard_DefaultLimit(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	h, _, _ := newTestHandler(t, store)

	require.NoError(t, store.UpdateWealth(context.Background(), "alice", 1500))

	client := &testutil.SimpleClient{ID: "conn-1"}
	// 缺省 payload 取前 10
	h.Handle(client, &protocol.Message{Type: protocol.MsgGetLeaderboard})

	msgs := client.MessagesOfType(protocol.MsgLeaderboardResult)
	require.Len(t, msgs, 1)
	payload, err := protocol.ParsePayload[protocol.LeaderboardResultPayload](msgs[0])
	require.NoError(t, err)
	assert.Len(t, payload.Entries, 1)
}
