package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petden/internal/config"
	"petden/internal/game"
	"petden/internal/item"
	"petden/internal/quest"
	"petden/internal/save"
	"petden/internal/species"
	"petden/internal/world"
)

func testModel(t *testing.T) Model {
	t.Helper()
	e := game.Engine{
		Species:    species.NewRegistry(species.Defaults()),
		Items:      item.NewRegistry(item.Defaults()),
		Quests:     quest.NewRegistry(quest.Seed()),
		Locations:  world.NewRegistry(world.Defaults(), "meadow_hollow"),
		Facilities: game.NewFacilityRegistry(game.DefaultFacilities()),
		Balance:    config.Default(),
	}
	s, ok := e.NewGame("Fern", "florabit", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	require.True(t, ok)
	return NewModel(e, s, save.NewMemoryRepo(), nil)
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFirstOfKind(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, "food_apple", m.firstOfKind(item.KindFood))
	assert.Equal(t, "water_flask", m.firstOfKind(item.KindDrink))
	assert.Equal(t, "", m.firstOfKind(item.KindToy))
}

func TestMenuNavigationBounds(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(key("k"))
	m = next.(Model)
	assert.Equal(t, menuFeed, m.Choice)

	for i := 0; i < 20; i++ {
		next, _ = m.Update(key("j"))
		m = next.(Model)
	}
	assert.Equal(t, menuQuit, m.Choice)
}

func TestTickAdvancesAndSaves(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tickMsg(time.Date(2026, 3, 10, 9, 0, 30, 0, time.UTC)))
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.State.TotalTicks)

	loaded, found, err := m.Repo.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, loaded.TotalTicks)
}

func TestWelcomeBackDismissedByKey(t *testing.T) {
	m := testModel(t)
	m.OfflineReport = &game.OfflineReport{PetName: "Fern", ElapsedMs: 3600000}

	view := m.View()
	assert.True(t, strings.Contains(view, "Welcome back"))

	next, _ := m.Update(key(" "))
	m = next.(Model)
	assert.Nil(t, m.OfflineReport)
}

func TestViewRendersStats(t *testing.T) {
	m := testModel(t)
	view := m.View()
	assert.Contains(t, view, "Fern")
	assert.Contains(t, view, "Satiety")
	assert.Contains(t, view, "Feed")
}
