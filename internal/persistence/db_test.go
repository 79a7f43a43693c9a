package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/mini-pet/internal/catalog"
	"github.com/talgya/mini-pet/internal/engine"
	"github.com/talgya/mini-pet/internal/pet"
	"github.com/talgya/mini-pet/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEmpty(t *testing.T) {
	db := openTestDB(t)

	assert.False(t, db.HasGameState())
	gs, err := db.Load()
	require.NoError(t, err)
	assert.Nil(t, gs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	db := openTestDB(t)

	gs := world.NewGameState(cat)
	p, err := engine.NewPet(cat, "sprout", "Nibble", time.Now())
	require.NoError(t, err)
	p.Cooldowns = map[pet.CooldownKey]uint64{
		{LocationID: "meadow", ActivityID: "forage"}: 1240,
	}
	gs.Pet = p
	gs.Player.Gold = 120
	gs.Player.Inventory["berry"] = 3
	gs.Player.Skills["foraging"] = engine.Skill{ID: "foraging", Level: 2, XP: 40}
	gs.Player.CompletedQuests["lantern_quest"] = true
	gs.World.CurrentLocationID = "riverbank"
	gs.World.Travel = &world.TravelState{DestinationID: "caverns", TicksRemaining: 200}
	gs.World.Activities = []world.QueuedActivity{{ActivityID: "berry_harvest", TicksRemaining: 500}}
	gs.TickCount = 4242
	gs.LastSaveTime = time.Now().UTC().Truncate(time.Millisecond)

	require.NoError(t, db.Save(gs))
	assert.True(t, db.HasGameState())

	got, err := db.Load()
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NotNil(t, got.Pet)
	assert.Equal(t, p.ID, got.Pet.ID)
	assert.Equal(t, "Nibble", got.Pet.Name)
	assert.Equal(t, p.Energy, got.Pet.Energy)
	assert.Equal(t, uint64(1240), got.Pet.CooldownEnd("meadow", "forage"))

	assert.Equal(t, uint64(120), got.Player.Gold)
	assert.Equal(t, 3, got.Player.Inventory["berry"])
	assert.Equal(t, engine.Skill{ID: "foraging", Level: 2, XP: 40}, got.Player.Skills["foraging"])
	assert.True(t, got.Player.CompletedQuests["lantern_quest"])

	assert.Equal(t, "riverbank", got.World.CurrentLocationID)
	require.NotNil(t, got.World.Travel)
	assert.Equal(t, "caverns", got.World.Travel.DestinationID)
	assert.Len(t, got.World.Activities, 1)

	assert.Equal(t, uint64(4242), got.TickCount)
	assert.True(t, got.LastSaveTime.Equal(gs.LastSaveTime))
}

func TestSaveWithoutPet(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	db := openTestDB(t)

	gs := world.NewGameState(cat)
	gs.TickCount = 7
	require.NoError(t, db.Save(gs))

	got, err := db.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Pet)
	assert.Equal(t, uint64(7), got.TickCount)
	assert.NotNil(t, got.Player.Inventory, "maps are repaired on load")
}

func TestSaveReplacesExisting(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	db := openTestDB(t)

	gs := world.NewGameState(cat)
	gs.TickCount = 1
	require.NoError(t, db.Save(gs))
	gs.TickCount = 2
	require.NoError(t, db.Save(gs))

	got, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.TickCount)
}

func TestMeta(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveMeta("schema_version", "1"))
	got, err := db.GetMeta("schema_version")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	require.NoError(t, db.SaveMeta("schema_version", "2"))
	got, err = db.GetMeta("schema_version")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	_, err = db.GetMeta("missing")
	assert.Error(t, err)
}
