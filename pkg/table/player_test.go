package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestCreatePlayer(t *testing.T) {
	a := assert.New(t)

	player, err := CreatePlayer(ctx, "alice", "127.0.0.1")
	require.NoError(t, err)
	a.Greater(player.ID, int64(0))
	a.Equal("alice", player.DisplayName)
	a.False(player.Created.IsZero())

	fetched, err := GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	a.Equal(player.ID, fetched.ID)
	a.Equal("alice", fetched.DisplayName)
}

func TestPlayer_Save(t *testing.T) {
	a := assert.New(t)

	player, err := CreatePlayer(ctx, "before", "127.0.0.1")
	require.NoError(t, err)

	player.DisplayName = "after"
	a.NoError(player.Save(ctx))

	fetched, err := GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	a.Equal("after", fetched.DisplayName)
}

func TestLastPlayerCreatedAt(t *testing.T) {
	a := assert.New(t)

	created, err := LastPlayerCreatedAt(ctx, "10.1.2.3")
	a.NoError(err)
	a.True(created.IsZero())

	_, err = CreatePlayer(ctx, "carol", "10.1.2.3")
	require.NoError(t, err)

	created, err = LastPlayerCreatedAt(ctx, "10.1.2.3")
	a.NoError(err)
	a.False(created.IsZero())
}

func TestPlayer_Join(t *testing.T) {
	a := assert.New(t)

	owner, tbl := createTestTable(t)

	player, err := CreatePlayer(ctx, "dave", "127.0.0.1")
	require.NoError(t, err)

	pt, err := player.Join(ctx, tbl)
	require.NoError(t, err)
	a.Equal(player.ID, pt.PlayerID)
	a.Equal(tbl.UUID, pt.TableUUID)
	a.False(pt.IsTableAdmin)
	a.False(pt.IsSeated())

	// joining twice is rejected
	_, err = player.Join(ctx, tbl)
	a.Equal(ErrDuplicateKey, err)

	// the creator is already at the table
	ownerPT, err := owner.GetPlayerTable(ctx, tbl)
	require.NoError(t, err)
	a.True(ownerPT.IsTableAdmin)
}

func TestPlayer_GetPlayerTable_notAtTable(t *testing.T) {
	a := assert.New(t)

	_, tbl := createTestTable(t)

	stranger, err := CreatePlayer(ctx, "stranger", "127.0.0.1")
	require.NoError(t, err)

	_, err = stranger.GetPlayerTable(ctx, tbl)
	a.Equal(ErrPlayerNotAtTable, err)
}

func TestPlayer_GetTables(t *testing.T) {
	a := assert.New(t)

	player, tbl := createTestTable(t)

	tables, err := player.GetTables(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	a.Equal(tbl.UUID, tables[0].UUID)
	a.Equal(NoSeat, tables[0].Seat)
}
