// Command simulate runs the engine headless: it hatches a pet, replays a
// number of ticks through the offline catch-up driver, and prints the report.
// Useful for balance tuning without sitting through real time.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"petden/internal/config"
	"petden/internal/game"
	"petden/internal/item"
	"petden/internal/quest"
	"petden/internal/species"
	"petden/internal/world"
)

func main() {
	var (
		ticks      = flag.Int("ticks", 2880, "ticks to simulate (2880 = one day)")
		petName    = flag.String("name", "Probe", "pet name")
		speciesID  = flag.String("species", "florabit", "species id")
		difficulty = flag.String("difficulty", "", "balance preset: gentle or harsh")
		asleep     = flag.Bool("asleep", false, "put the pet to sleep before the replay")
		exploring  = flag.Bool("exploring", false, "send the pet foraging before the replay")
	)
	flag.Parse()

	bal := config.Default()
	switch *difficulty {
	case "gentle":
		bal = config.Gentle()
	case "harsh":
		bal = config.Harsh()
	case "":
	default:
		log.Fatalf("unknown difficulty %q", *difficulty)
	}

	engine := game.Engine{
		Species:    species.NewRegistry(species.Defaults()),
		Items:      item.NewRegistry(item.Defaults()),
		Quests:     quest.NewRegistry(quest.Seed()),
		Locations:  world.NewRegistry(world.Defaults(), "meadow_hollow"),
		Facilities: game.NewFacilityRegistry(game.DefaultFacilities()),
		Balance:    bal,
		Logger:     log.New(os.Stderr, "", 0),
	}

	start := time.Date(2026, 1, 5, 8, 0, 0, 0, time.Local)
	s, ok := engine.NewGame(*petName, *speciesID, start)
	if !ok {
		log.Fatalf("unknown species %q", *speciesID)
	}

	if *asleep {
		if res := engine.StartSleep(s, start); res.Success {
			s = res.State
		}
	}
	if *exploring {
		if res := engine.StartExploration(s); res.Success {
			s = res.State
		} else {
			fmt.Fprintln(os.Stderr, res.Message)
		}
	}

	res := engine.ProcessOfflineCatchup(s, *ticks, bal.MaxOfflineTicks, 0)
	printReport(res)
	printSummary(res.State)
}

func printReport(res game.CatchupResult) {
	rep := res.Report
	fmt.Printf("replayed %d ticks (%.1f hours)", res.TicksProcessed, float64(res.TicksProcessed)/120)
	if res.WasCapped {
		fmt.Printf(" [capped]")
	}
	fmt.Println()
	fmt.Printf("satiety:    %d -> %d\n", rep.Before.Satiety, rep.After.Satiety)
	fmt.Printf("hydration:  %d -> %d\n", rep.Before.Hydration, rep.After.Hydration)
	fmt.Printf("happiness:  %d -> %d\n", rep.Before.Happiness, rep.After.Happiness)
	fmt.Printf("energy:     %d -> %d\n", rep.Before.Energy, rep.After.Energy)
	fmt.Printf("care life:  %d -> %d\n", rep.Before.CareLife, rep.After.CareLife)
	fmt.Printf("poops:      %d -> %d\n", rep.Before.PoopCount, rep.After.PoopCount)
	for _, ex := range rep.ExplorationResults {
		fmt.Printf("exploration at %s: %d drop(s), +%d xp\n", ex.LocationID, len(ex.Drops), ex.SkillXP)
	}
}

func printSummary(s game.State) {
	if s.Pet == nil {
		fmt.Println("no pet")
		return
	}
	p := s.Pet
	fmt.Printf("pet:        %s (%s)\n", p.Name, p.SpeciesID)
	fmt.Printf("stage:      %s/%s, age %d ticks\n", p.Growth.Stage, p.Growth.Substage, p.Growth.AgeTicks)
	bs := p.EffectiveBattleStats()
	fmt.Printf("battle:     str %d / agi %d / vit %d / wis %d\n", bs.Strength, bs.Agility, bs.Vitality, bs.Wisdom)
	fmt.Printf("coins:      %d\n", s.Player.Coins)
	fmt.Printf("sleep today: %d ticks\n", p.Sleep.SleepTicksToday)
}
