package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchase(t *testing.T) {
	s := Default()
	s.TotalScore = 1300

	require.NoError(t, s.Purchase(ItemExtraLife))
	assert.True(t, s.Upgrades.ExtraLife)
	assert.Equal(t, 800, s.TotalScore)

	require.ErrorIs(t, s.Purchase(ItemExtraLife), ErrOwned)
	assert.Equal(t, 800, s.TotalScore)

	require.NoError(t, s.Purchase(ItemDoubleAmmo))
	assert.Equal(t, 0, s.TotalScore)

	require.ErrorIs(t, s.Purchase(ItemStartingShield), ErrInsufficientScore)
	assert.False(t, s.Upgrades.StartingShield)

	require.ErrorIs(t, s.Purchase("jetpack"), ErrUnknownItem)
}

func TestCanAfford(t *testing.T) {
	s := Default()
	s.TotalScore = 1000
	assert.True(t, s.CanAfford(ItemStartingShield))
	assert.False(t, s.CanAfford(ItemCheckpointHeal))
	s.Upgrades.StartingShield = true
	assert.False(t, s.CanAfford(ItemStartingShield))
}

func TestMarkTutorial(t *testing.T) {
	var s SaveData
	assert.True(t, s.MarkTutorial("move"))
	assert.False(t, s.MarkTutorial("move"))
	assert.True(t, s.TutorialSeen["move"])
}

func TestRecordBestTime(t *testing.T) {
	s := Default()
	assert.True(t, s.RecordBestTime("normal", 120))
	assert.False(t, s.RecordBestTime("normal", 90))
	assert.True(t, s.RecordBestTime("normal", 150))
	assert.Equal(t, 150.0, s.BestTimes["normal"])
}

func TestCloneIsDeep(t *testing.T) {
	s := Default()
	s.MarkTutorial("shoot")
	c := s.Clone()
	c.MarkTutorial("plates")
	assert.False(t, s.TutorialSeen["plates"])
	assert.True(t, c.TutorialSeen["shoot"])
}
