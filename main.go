package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petden/internal/clock"
	"petden/internal/config"
	"petden/internal/game"
	"petden/internal/item"
	"petden/internal/quest"
	"petden/internal/save"
	"petden/internal/species"
	"petden/internal/ui"
	"petden/internal/world"
)

func main() {
	var (
		dbPath     = flag.String("db", defaultDBPath(), "path to the save database")
		configPath = flag.String("config", "", "optional YAML config file")
		newGame    = flag.Bool("new", false, "abandon the current save and hatch a new pet")
		petName    = flag.String("name", "Sprig", "pet name for a new game")
		speciesID  = flag.String("species", "florabit", "species for a new game")
	)
	flag.Parse()

	logFile, err := os.OpenFile("petden.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	logger := log.New(logFile, "", log.LstdFlags)

	bal := config.FromEnv()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		bal = cfg.Balance
	}

	engine := game.Engine{
		Species:    species.NewRegistry(species.Defaults()),
		Items:      item.NewRegistry(item.Defaults()),
		Quests:     quest.NewRegistry(quest.Seed()),
		Locations:  world.NewRegistry(world.Defaults(), "meadow_hollow"),
		Facilities: game.NewFacilityRegistry(game.DefaultFacilities()),
		Balance:    bal,
		Logger:     logger,
	}

	repo, err := save.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatalf("open save: %v", err)
	}
	defer repo.Close()

	state, report, err := loadOrCreate(engine, repo, *newGame, *petName, *speciesID)
	if err != nil {
		log.Fatalf("%v", err)
	}

	p := tea.NewProgram(ui.NewModel(engine, state, repo, report))
	if _, err := p.Run(); err != nil {
		log.Fatalf("run ui: %v", err)
	}
}

// loadOrCreate resumes the save, replaying the time spent away, or starts a
// new game when asked or when no save exists.
func loadOrCreate(e game.Engine, repo save.Repository, fresh bool, petName, speciesID string) (game.State, *game.OfflineReport, error) {
	now := time.Now()

	if !fresh {
		s, found, err := repo.Load()
		if err != nil {
			return game.State{}, nil, fmt.Errorf("load save: %w", err)
		}
		if found && s.IsInitialized {
			elapsed := clock.ElapsedTicks(s.LastSaveTime, now)
			if elapsed == 0 {
				return s, nil, nil
			}
			res := e.ProcessOfflineCatchup(s, elapsed, e.Balance.MaxOfflineTicks, now.Sub(s.LastSaveTime).Milliseconds())
			if err := repo.Save(res.State); err != nil {
				return game.State{}, nil, fmt.Errorf("save after catch-up: %w", err)
			}
			return res.State, &res.Report, nil
		}
	}

	s, ok := e.NewGame(petName, speciesID, now)
	if !ok {
		return game.State{}, nil, fmt.Errorf("unknown species %q", speciesID)
	}
	if err := repo.Save(s); err != nil {
		return game.State{}, nil, fmt.Errorf("save new game: %w", err)
	}
	return s, nil, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "petden.db"
	}
	return home + "/.petden.db"
}
