// Package ui is the terminal front end: a bubbletea model that drives the
// engine on a real-time tick and maps key presses to care actions.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petden/internal/clock"
	"petden/internal/game"
	"petden/internal/item"
	"petden/internal/save"
)

type menuEntry int

const (
	menuFeed menuEntry = iota
	menuDrink
	menuPlay
	menuClean
	menuSleep
	menuExplore
	menuTrain
	menuTravel
	menuQuit
	menuCount
)

var menuLabels = [menuCount]string{
	"Feed", "Drink", "Play", "Clean", "Sleep", "Explore", "Train", "Travel", "Quit",
}

// Model is the TUI state. The game state lives inside it as a value and is
// swapped wholesale after every engine call.
type Model struct {
	Engine game.Engine
	State  game.State
	Repo   save.Repository

	Choice         menuEntry
	Message        string
	MessageExpires time.Time
	Quitting       bool

	// Welcome-back screen after an offline catch-up; dismissed by any key.
	OfflineReport *game.OfflineReport

	// Travel submenu over the current location's connections.
	InTravelMenu bool
	TravelChoice int
}

type tickMsg time.Time

// NewModel wraps an engine and a loaded state.
func NewModel(e game.Engine, s game.State, repo save.Repository, report *game.OfflineReport) Model {
	return Model{Engine: e, State: s, Repo: repo, OfflineReport: report}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(clock.TickDuration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.OfflineReport != nil {
			if msg.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			m.OfflineReport = nil
			return m, nil
		}

		if m.InTravelMenu {
			return m.updateTravelMenu(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			m.persist()
			return m, tea.Quit
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < menuCount-1 {
				m.Choice++
			}
		case "enter", " ":
			return m.selectEntry()
		}

	case tickMsg:
		m.State = m.Engine.ProcessGameTick(m.State, time.Time(msg))
		if r := m.State.LastExplorationResult; r != nil {
			m.setMessage(exploreSummary(m.Engine, *r))
		}
		m.persist()
		return m, tick()
	}

	return m, nil
}

func (m Model) selectEntry() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case menuFeed:
		m.apply(m.Engine.Feed(m.State, m.firstOfKind(item.KindFood)))
	case menuDrink:
		m.apply(m.Engine.GiveDrink(m.State, m.firstOfKind(item.KindDrink)))
	case menuPlay:
		m.apply(m.Engine.Play(m.State, m.firstOfKind(item.KindToy)))
	case menuClean:
		m.apply(m.Engine.CleanPoop(m.State))
	case menuSleep:
		if m.State.Pet != nil && m.State.Pet.IsAsleep() {
			m.apply(m.Engine.WakeUp(m.State))
		} else {
			m.apply(m.Engine.StartSleep(m.State, time.Now()))
		}
	case menuExplore:
		if m.State.Pet != nil && m.State.Pet.ActiveExploration != nil {
			m.apply(m.Engine.CancelExploration(m.State))
		} else {
			m.apply(m.Engine.StartExploration(m.State))
		}
	case menuTrain:
		m.apply(m.trainHere())
	case menuTravel:
		m.InTravelMenu = true
		m.TravelChoice = 0
	case menuQuit:
		m.Quitting = true
		m.persist()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateTravelMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	conns := m.connections()
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc", "t":
		m.InTravelMenu = false
	case "up", "k":
		if m.TravelChoice > 0 {
			m.TravelChoice--
		}
	case "down", "j":
		if m.TravelChoice < len(conns)-1 {
			m.TravelChoice++
		}
	case "enter", " ":
		if len(conns) > 0 {
			m.apply(m.Engine.Travel(m.State, conns[m.TravelChoice]))
		}
		m.InTravelMenu = false
	}
	return m, nil
}

// trainHere starts the first facility at the current location, or cancels an
// in-progress session.
func (m Model) trainHere() game.ActionResult {
	if m.State.Pet != nil && m.State.Pet.ActiveTraining != nil {
		return m.Engine.CancelTraining(m.State)
	}
	for _, id := range m.Engine.Facilities.IDs() {
		f, _ := m.Engine.Facilities.Get(id)
		if f.LocationID == m.State.Player.Location {
			return m.Engine.StartTraining(m.State, id)
		}
	}
	return game.ActionResult{Success: false, State: m.State, Message: "nowhere to train here"}
}

func (m *Model) apply(res game.ActionResult) {
	m.State = res.State
	m.setMessage(res.Message)
	if res.Success {
		m.persist()
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = time.Now().Add(5 * time.Second)
}

func (m *Model) persist() {
	if m.Repo == nil {
		return
	}
	if err := m.Repo.Save(m.State); err != nil {
		m.setMessage("save failed: " + err.Error())
	}
}

// firstOfKind picks the first held item of a kind, in id order.
func (m Model) firstOfKind(kind item.Kind) string {
	for _, id := range m.State.Player.Inventory.IDs() {
		if def, ok := m.Engine.Items.Get(id); ok && def.Kind == kind {
			return id
		}
	}
	return ""
}

func (m Model) connections() []string {
	loc, ok := m.Engine.Locations.Get(m.State.Player.Location)
	if !ok {
		return nil
	}
	return loc.Connections
}
