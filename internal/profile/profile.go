// Package profile holds the persistent player record: banked score, shop
// upgrades, best level times and which tutorial hints were already shown.
// It performs no I/O; storage.Store reads and writes it.
package profile

import (
	"errors"
	"maps"
)

// Upgrades are the permanent shop purchases.
type Upgrades struct {
	ExtraLife      bool `json:"extraLife"`
	DoubleAmmo     bool `json:"doubleAmmo"`
	StartingShield bool `json:"startingShield"`
	CheckpointHeal bool `json:"checkpointHeal"`
}

// SaveData is the persistence record exchanged with storage.
//
// StoredScore is the total score as storage last reported it. Storage
// persists TotalScore-StoredScore as a change, so several holders of the
// same record can bank points without overwriting each other.
type SaveData struct {
	TotalScore   int                `json:"totalScore"`
	StoredScore  int                `json:"-"`
	Upgrades     Upgrades           `json:"upgrades"`
	BestTimes    map[string]float64 `json:"bestTimes"`
	TutorialSeen map[string]bool    `json:"tutorialSeen"`
}

// Default returns an empty record with no upgrades.
func Default() SaveData {
	return SaveData{
		BestTimes:    make(map[string]float64),
		TutorialSeen: make(map[string]bool),
	}
}

// Clone returns a deep copy so callers can mutate maps independently.
func (s SaveData) Clone() SaveData {
	out := s
	out.BestTimes = maps.Clone(s.BestTimes)
	if out.BestTimes == nil {
		out.BestTimes = make(map[string]float64)
	}
	out.TutorialSeen = maps.Clone(s.TutorialSeen)
	if out.TutorialSeen == nil {
		out.TutorialSeen = make(map[string]bool)
	}
	return out
}

// ScoreChange is the score banked or spent since the record was stored.
func (s SaveData) ScoreChange() int {
	return s.TotalScore - s.StoredScore
}

// MarkTutorial records a tutorial as seen and reports whether it was new.
func (s *SaveData) MarkTutorial(id string) bool {
	if s.TutorialSeen == nil {
		s.TutorialSeen = make(map[string]bool)
	}
	if s.TutorialSeen[id] {
		return false
	}
	s.TutorialSeen[id] = true
	return true
}

// RecordBestTime keeps the larger remaining time for a key and reports
// whether it improved.
func (s *SaveData) RecordBestTime(key string, remaining float64) bool {
	if s.BestTimes == nil {
		s.BestTimes = make(map[string]float64)
	}
	if prev, ok := s.BestTimes[key]; ok && prev >= remaining {
		return false
	}
	s.BestTimes[key] = remaining
	return true
}

// ItemID identifies a shop item.
type ItemID string

const (
	ItemExtraLife      ItemID = "extraLife"
	ItemDoubleAmmo     ItemID = "doubleAmmo"
	ItemStartingShield ItemID = "startingShield"
	ItemCheckpointHeal ItemID = "checkpointHeal"
)

// Item is one entry of the shop catalog.
type Item struct {
	ID    ItemID
	Name  string
	Desc  string
	Price int
}

// Shop is the catalog in display order.
var Shop = []Item{
	{ID: ItemExtraLife, Name: "Extra Life", Desc: "Start with +1 life", Price: 500},
	{ID: ItemDoubleAmmo, Name: "Double Ammo", Desc: "Start with 40 max ammo", Price: 800},
	{ID: ItemStartingShield, Name: "Starting Shield", Desc: "3s invincibility on start", Price: 1000},
	{ID: ItemCheckpointHeal, Name: "Checkpoint Heal", Desc: "+1 HP at checkpoints", Price: 1200},
}

// Purchase errors.
var (
	ErrUnknownItem       = errors.New("profile: unknown shop item")
	ErrOwned             = errors.New("profile: upgrade already owned")
	ErrInsufficientScore = errors.New("profile: not enough total score")
)

// Lookup finds an item by id.
func Lookup(id ItemID) (Item, bool) {
	for _, it := range Shop {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Owns reports whether the upgrade for id has been bought.
func (u Upgrades) Owns(id ItemID) bool {
	switch id {
	case ItemExtraLife:
		return u.ExtraLife
	case ItemDoubleAmmo:
		return u.DoubleAmmo
	case ItemStartingShield:
		return u.StartingShield
	case ItemCheckpointHeal:
		return u.CheckpointHeal
	}
	return false
}

// Grant marks the upgrade for id as owned without charging for it.
func (u *Upgrades) Grant(id ItemID) {
	switch id {
	case ItemExtraLife:
		u.ExtraLife = true
	case ItemDoubleAmmo:
		u.DoubleAmmo = true
	case ItemStartingShield:
		u.StartingShield = true
	case ItemCheckpointHeal:
		u.CheckpointHeal = true
	}
}

// CanAfford reports whether the record can buy id right now.
func (s SaveData) CanAfford(id ItemID) bool {
	it, ok := Lookup(id)
	return ok && !s.Upgrades.Owns(id) && s.TotalScore >= it.Price
}

// Purchase spends total score on an upgrade. The record is unchanged on error.
func (s *SaveData) Purchase(id ItemID) error {
	it, ok := Lookup(id)
	if !ok {
		return ErrUnknownItem
	}
	if s.Upgrades.Owns(id) {
		return ErrOwned
	}
	if s.TotalScore < it.Price {
		return ErrInsufficientScore
	}
	s.TotalScore -= it.Price
	s.Upgrades.Grant(id)
	return nil
}
