package level

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCampaign(t *testing.T) {
	cat, err := LoadEmbedded()
	require.NoError(t, err)
	require.Equal(t, 5, cat.Len())
	assert.Equal(t, 1, cat.First())
	assert.Equal(t, 5, cat.Max())

	for i, d := range cat.Levels() {
		assert.Equal(t, i+1, d.Number)
		require.NoError(t, d.Validate())
	}

	l1, ok := cat.Get(1)
	require.True(t, ok)
	assert.Equal(t, Box{X: 0, Y: 560, W: 800, H: 40}, l1.Platforms[0])
	assert.Equal(t, TrapDef{Kind: TrapSpike, X: 250, Y: 480, CycleMS: 3000, ActiveMS: 1000}, l1.Traps[0])
	assert.Equal(t, PlateDef{X: 320, Y: 280, Channel: ChannelRed}, l1.Plates[0])
	assert.Equal(t, GateDef{X: 650, Y: 100, Height: 100, Channel: ChannelRed}, l1.Gates[0])
	assert.Equal(t, "next", l1.Checkpoints[2].Tag)

	l5, ok := cat.Get(5)
	require.True(t, ok)
	last := l5.Checkpoints[len(l5.Checkpoints)-1]
	assert.Equal(t, CheckpointDef{X: 770, Y: 20, Tag: "win"}, last)

	next, ok := cat.Next(2)
	require.True(t, ok)
	assert.Equal(t, 3, next.Number)
	_, ok = cat.Next(5)
	assert.False(t, ok)
}

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		tag     string
		want    CheckpointKind
		wantErr bool
	}{
		{"1", CheckpointStart, false},
		{"12", CheckpointStart, false},
		{"mid3", CheckpointMid, false},
		{"next", CheckpointNext, false},
		{"win", CheckpointWin, false},
		{"midway", 0, true},
		{"boss", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			got, err := ClassifyTag(tc.tag)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.True(t, CheckpointMid.Respawn())
	assert.False(t, CheckpointNext.Respawn())
}

func TestValidateRejectsBadDefinitions(t *testing.T) {
	base := func() Definition {
		return Definition{
			ID:        "t",
			Number:    1,
			Platforms: []Box{{X: 0, Y: 560, W: 800, H: 40}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Definition)
	}{
		{"active not below cycle", func(d *Definition) {
			d.Traps = []TrapDef{{Kind: TrapSpike, CycleMS: 1000, ActiveMS: 1000}}
		}},
		{"unknown trap", func(d *Definition) {
			d.Traps = []TrapDef{{Kind: "laser", CycleMS: 1000, ActiveMS: 10}}
		}},
		{"unknown channel", func(d *Definition) {
			d.Plates = []PlateDef{{Channel: "purple"}}
		}},
		{"zero gate", func(d *Definition) {
			d.Gates = []GateDef{{Channel: ChannelRed}}
		}},
		{"patrol bounds reversed", func(d *Definition) {
			d.Enemies = []EnemyDef{{Kind: EnemyPatrol, Left: 300, Right: 200}}
		}},
		{"bad checkpoint", func(d *Definition) {
			d.Checkpoints = []CheckpointDef{{Tag: "boss"}}
		}},
		{"no platforms", func(d *Definition) {
			d.Platforms = nil
		}},
		{"zero number", func(d *Definition) {
			d.Number = 0
		}},
	}

	require.NoError(t, base().Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(&d)
			assert.Error(t, d.Validate())
		})
	}
}

func TestNewCatalogDuplicateNumbers(t *testing.T) {
	d := Definition{ID: "a", Number: 1, Platforms: []Box{{W: 10, H: 10}}}
	e := d
	e.ID = "b"
	_, err := NewCatalog([]Definition{d, e})
	assert.Error(t, err)

	_, err = NewCatalog(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

const tinyLevel = `
number: %d
platforms:
  - {x: 0, y: 560, w: 800, h: 40}
checkpoints:
  - {x: 700, y: 520, tag: win}
`

func writeLevel(t *testing.T, dir, name string, number int) string {
	t.Helper()
	p := filepath.Join(dir, name)
	data := []byte(fmt.Sprintf(tinyLevel, number))
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.yaml", 2)
	writeLevel(t, dir, "a.yml", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	cat, err := LoadDir(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	assert.Equal(t, "level1", cat.Levels()[0].ID)
	assert.Equal(t, filepath.Join(dir, "a.yml"), cat.Levels()[0].FilePath)

	_, err = LoadDir(t.TempDir())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := writeLevel(t, dir, "level9.yaml", 9)

	select {
	case got := <-w.Events:
		assert.Equal(t, path, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no watch event for written level file")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	_, open := <-w.Events
	assert.False(t, open)
}
