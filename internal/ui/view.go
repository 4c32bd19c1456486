package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"petden/internal/game"
	"petden/internal/pet"
)

var styles = struct {
	title   lipgloss.Style
	stats   lipgloss.Style
	status  lipgloss.Style
	menuBox lipgloss.Style
	warn    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7BC96F")).
		Padding(0, 1),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#A8D8B9")).
		Width(34),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7BC96F")).
		Width(40),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	warn: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E5C07B")),
}

func (m Model) View() string {
	if m.Quitting {
		return "See you soon!\n"
	}
	if m.OfflineReport != nil {
		return m.welcomeBackView()
	}
	if m.State.Pet == nil {
		return styles.status.Render("No pet yet. Restart with --new to hatch one.")
	}

	p := m.State.Pet
	title := styles.title.Render("(`I') " + p.Name + " the " + p.SpeciesID)

	sections := []string{
		title,
		"",
		m.renderStats(),
		"",
		m.renderActivity(),
	}

	if m.Message != "" && time.Now().Before(m.MessageExpires) {
		sections = append(sections, "", styles.status.Render(m.Message))
	}

	if m.InTravelMenu {
		sections = append(sections, "", m.renderTravelMenu())
	} else {
		sections = append(sections, "", m.renderMenu())
	}

	sections = append(sections, "", styles.status.Render("arrows to move / enter to select / q to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStats() string {
	p := m.State.Pet
	max, _ := pet.MaxFor(*p, m.Engine.Species)

	loc := m.State.Player.Location
	if l, ok := m.Engine.Locations.Get(loc); ok {
		loc = l.Name
	}

	rows := []struct {
		name, value string
	}{
		{"Stage", fmt.Sprintf("%s (%s)", p.Growth.Stage, p.Growth.Substage)},
		{"Satiety", bar(p.CareStats.Satiety.Display(), max.Satiety.Display())},
		{"Hydration", bar(p.CareStats.Hydration.Display(), max.Hydration.Display())},
		{"Happiness", bar(p.CareStats.Happiness.Display(), max.Happiness.Display())},
		{"Energy", bar(p.EnergyStats.Energy.Display(), max.Energy.Display())},
		{"Care life", bar(p.CareLifeStats.CareLife.Display(), max.CareLife.Display())},
		{"Poop", strings.Repeat("*", p.Poop.Count)},
		{"Coins", fmt.Sprintf("%d", m.State.Player.Coins)},
		{"Location", loc},
	}

	var lines []string
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-11s %s", r.name+":", r.value))
	}
	return styles.stats.Render(strings.Join(lines, "\n"))
}

func bar(val, max int) string {
	if max <= 0 {
		return fmt.Sprintf("%d", val)
	}
	filled := val * 10 / max
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("[%s%s] %d/%d", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), val, max)
}

func (m Model) renderActivity() string {
	p := m.State.Pet
	switch {
	case p.ActiveExploration != nil:
		return styles.status.Render(fmt.Sprintf("Exploring, back in %d ticks", p.ActiveExploration.TicksRemaining))
	case p.ActiveTraining != nil:
		return styles.status.Render(fmt.Sprintf("Training %s, %d ticks left", p.ActiveTraining.Stat, p.ActiveTraining.TicksRemaining))
	case p.IsAsleep():
		return styles.status.Render(fmt.Sprintf("Sleeping (%d ticks today)", p.Sleep.SleepTicksToday))
	default:
		return styles.status.Render("Idle")
	}
}

func (m Model) renderMenu() string {
	var items []string
	for i, label := range menuLabels {
		cursor := " "
		if m.Choice == menuEntry(i) {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %s", cursor, label))
	}
	return styles.menuBox.Render(strings.Join(items, "\n"))
}

func (m Model) renderTravelMenu() string {
	conns := m.connections()
	if len(conns) == 0 {
		return styles.status.Render("Nowhere to go from here.")
	}
	var items []string
	for i, id := range conns {
		name := id
		if l, ok := m.Engine.Locations.Get(id); ok {
			name = l.Name
		}
		cursor := " "
		if m.TravelChoice == i {
			cursor = ">"
		}
		items = append(items, fmt.Sprintf("%s %s", cursor, name))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.warn.Render("Travel to:"),
		styles.menuBox.Render(strings.Join(items, "\n")),
		styles.status.Render("esc to cancel"),
	)
}

func (m Model) welcomeBackView() string {
	r := m.OfflineReport
	away := time.Duration(r.ElapsedMs) * time.Millisecond

	lines := []string{
		styles.title.Render("Welcome back!"),
		"",
		styles.status.Render(fmt.Sprintf("%s kept busy while you were away for %s.", r.PetName, away.Round(time.Minute))),
		"",
		styles.stats.Render(fmt.Sprintf("Satiety    %d -> %d", r.Before.Satiety, r.After.Satiety)),
		styles.stats.Render(fmt.Sprintf("Hydration  %d -> %d", r.Before.Hydration, r.After.Hydration)),
		styles.stats.Render(fmt.Sprintf("Happiness  %d -> %d", r.Before.Happiness, r.After.Happiness)),
		styles.stats.Render(fmt.Sprintf("Energy     %d -> %d", r.Before.Energy, r.After.Energy)),
		styles.stats.Render(fmt.Sprintf("Care life  %d -> %d", r.Before.CareLife, r.After.CareLife)),
		styles.stats.Render(fmt.Sprintf("Poops      %d -> %d", r.Before.PoopCount, r.After.PoopCount)),
	}

	for _, ex := range r.ExplorationResults {
		lines = append(lines, styles.status.Render(exploreSummary(m.Engine, ex)))
	}

	lines = append(lines, "", styles.status.Render("press any key to continue"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func exploreSummary(e game.Engine, r game.ExplorationResult) string {
	locName := r.LocationID
	if l, ok := e.Locations.Get(r.LocationID); ok {
		locName = l.Name
	}
	if len(r.Drops) == 0 {
		return "Came back from " + locName + " empty-pawed."
	}
	var parts []string
	for _, d := range r.Drops {
		name := d.ItemID
		if def, ok := e.Items.Get(d.ItemID); ok {
			name = def.Name
		}
		parts = append(parts, fmt.Sprintf("%dx %s", d.Amount, name))
	}
	return "Brought back " + strings.Join(parts, ", ") + " from " + locName + "."
}
