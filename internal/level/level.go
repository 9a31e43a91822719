// Package level provides the static level bundles the simulation builds its
// worlds from. Levels are YAML documents; the campaign is embedded and a
// directory of overrides can be loaded at runtime.
package level

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel links pressure plates to gates.
type Channel string

const (
	ChannelRed   Channel = "red"
	ChannelBlue  Channel = "blue"
	ChannelGreen Channel = "green"
	ChannelCyan  Channel = "cyan"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelRed, ChannelBlue, ChannelGreen, ChannelCyan:
		return true
	}
	return false
}

// TrapKind selects the hazard type of a TrapDef.
type TrapKind string

const (
	TrapSpike  TrapKind = "spike"
	TrapSlicer TrapKind = "slicer"
)

// EnemyKind selects the enemy behavior of an EnemyDef.
type EnemyKind string

const (
	EnemyGuard  EnemyKind = "guard"
	EnemyPatrol EnemyKind = "patrol"
	EnemyChase  EnemyKind = "chase"
)

// CheckpointKind classifies a checkpoint tag.
type CheckpointKind int

const (
	CheckpointStart CheckpointKind = iota // numeric level-start marker
	CheckpointMid                         // "mid<N>"
	CheckpointNext                        // advances to the next level
	CheckpointWin                         // ends the run with a win
)

// String returns the kind name.
func (k CheckpointKind) String() string {
	switch k {
	case CheckpointStart:
		return "start"
	case CheckpointMid:
		return "mid"
	case CheckpointNext:
		return "next"
	case CheckpointWin:
		return "win"
	default:
		return "unknown"
	}
}

// Respawn reports whether reaching this kind updates the respawn point.
func (k CheckpointKind) Respawn() bool {
	return k == CheckpointStart || k == CheckpointMid
}

// ClassifyTag parses a checkpoint tag.
func ClassifyTag(tag string) (CheckpointKind, error) {
	switch {
	case tag == "next":
		return CheckpointNext, nil
	case tag == "win":
		return CheckpointWin, nil
	case strings.HasPrefix(tag, "mid"):
		if _, err := strconv.Atoi(strings.TrimPrefix(tag, "mid")); err != nil {
			return 0, fmt.Errorf("bad mid checkpoint tag %q", tag)
		}
		return CheckpointMid, nil
	default:
		if _, err := strconv.Atoi(tag); err != nil {
			return 0, fmt.Errorf("unknown checkpoint tag %q", tag)
		}
		return CheckpointStart, nil
	}
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Box is a static rectangle.
type Box struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// TrapDef places a timed hazard. Times are authored in milliseconds.
type TrapDef struct {
	Kind     TrapKind `yaml:"kind"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	CycleMS  float64  `yaml:"cycle_ms"`
	ActiveMS float64  `yaml:"active_ms"`
}

// PlateDef places a pressure plate.
type PlateDef struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Channel Channel `yaml:"channel"`
}

// GateDef places a gate of the given closed height.
type GateDef struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Height  float64 `yaml:"height"`
	Channel Channel `yaml:"channel"`
}

// CheckpointDef places a checkpoint. Tag is a number, "mid<N>", "next" or "win".
type CheckpointDef struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Tag string  `yaml:"tag"`
}

// EnemyDef places an enemy. Left/Right bound patrols; Detection sets a
// chaser's range (0 uses the configured default).
type EnemyDef struct {
	Kind      EnemyKind `yaml:"kind"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Left      float64   `yaml:"left,omitempty"`
	Right     float64   `yaml:"right,omitempty"`
	Detection float64   `yaml:"detection,omitempty"`
}

// Definition is one level bundle.
type Definition struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Number      int             `yaml:"number"`
	PlayerStart *Point          `yaml:"player_start,omitempty"`
	Platforms   []Box           `yaml:"platforms"`
	Traps       []TrapDef       `yaml:"traps"`
	Plates      []PlateDef      `yaml:"plates"`
	Gates       []GateDef       `yaml:"gates"`
	Potions     []Point         `yaml:"potions"`
	Checkpoints []CheckpointDef `yaml:"checkpoints"`
	Enemies     []EnemyDef      `yaml:"enemies"`

	// FilePath is set by the loader and not part of the document.
	FilePath string `yaml:"-"`
}

// Start returns the player start, falling back to def when unset.
func (d Definition) Start(def Point) Point {
	if d.PlayerStart == nil {
		return def
	}
	return *d.PlayerStart
}
