package quest

import "petden/internal/species"

// Seed returns the built-in quest set.
func Seed() []Quest {
	return []Quest{
		{
			ID:          "tutorial_first_steps",
			Title:       "First Steps",
			Description: "Learn the basics: keep your new companion fed and watered.",
			Type:        TypeStory,
			Objectives: []Objective{
				{ID: "feed_pet", Action: ActionFeedPet, Target: TargetAny, Quantity: 1, Description: "Feed your pet"},
				{ID: "give_water", Action: ActionGiveWater, Target: TargetAny, Quantity: 1, Description: "Give your pet a drink"},
			},
			Reward: Reward{
				Coins: 50,
				Items: []RewardItem{{ItemID: "food_apple", Amount: 3}},
			},
		},
		{
			ID:           "forage_basics",
			Title:        "Forage Basics",
			Description:  "Send your pet out to forage around the hollow.",
			Type:         TypeStory,
			Prerequisite: "tutorial_first_steps",
			Objectives: []Objective{
				{ID: "forage_trips", Action: ActionForage, Target: TargetAny, Quantity: 3, Description: "Complete three foraging trips"},
			},
			Reward: Reward{
				Coins:   75,
				SkillXP: map[string]int{"foraging": 25},
			},
		},
		{
			ID:           "woods_delivery",
			Title:        "Woods Delivery",
			Description:  "Gather a glimmer cap in the woods and deliver it at the market.",
			Type:         TypeStory,
			Prerequisite: "forage_basics",
			Requirements: []Requirement{
				{Type: ReqGrowthStage, Stage: species.StageChild},
				{Type: ReqLocationVisited, LocationID: "whispering_woods"},
			},
			Objectives: []Objective{
				{ID: "find_cap", Action: ActionAcquireItem, Target: "glimmer_cap", Quantity: 1, Description: "Acquire a glimmer cap"},
			},
			TurnInLocation: "riverbend_market",
			Reward: Reward{
				Coins:   120,
				Items:   []RewardItem{{ItemID: "chime_ball", Amount: 1}},
				Unlocks: []string{"market_stall"},
			},
		},
		{
			ID:            "sprout_watch",
			Title:         "Sprout Watch",
			Description:   "A market gardener needs quick help: three training drills before the day is out.",
			Type:          TypeTimed,
			StartLocation: "riverbend_market",
			DurationTicks: 2880,
			Requirements: []Requirement{
				{Type: ReqQuestCompleted, QuestID: "tutorial_first_steps"},
			},
			Objectives: []Objective{
				{ID: "drills", Action: ActionCompleteTraining, Target: TargetAny, Quantity: 3, Description: "Complete three training sessions"},
			},
			Reward: Reward{
				Coins:   200,
				SkillXP: map[string]int{"training": 40},
			},
		},
		{
			ID:          "daily_care",
			Title:       "Daily Care",
			Description: "Keep up the routine: feed twice and clean up once today.",
			Type:        TypeDaily,
			Objectives: []Objective{
				{ID: "feed", Action: ActionFeedPet, Target: TargetAny, Quantity: 2, Description: "Feed your pet twice"},
				{ID: "clean", Action: ActionCleanPoop, Target: TargetAny, Quantity: 1, Description: "Clean up after your pet"},
				{ID: "play", Action: ActionPlayWithPet, Target: TargetAny, Quantity: 1, Optional: true, Description: "Play together"},
			},
			Reward: Reward{
				Coins: 25,
				Items: []RewardItem{{ItemID: "water_flask", Amount: 1}},
			},
		},
		{
			ID:          "weekly_wanderer",
			Title:       "Weekly Wanderer",
			Description: "Complete ten foraging trips this week.",
			Type:        TypeWeekly,
			Objectives: []Objective{
				{ID: "trips", Action: ActionForage, Target: TargetAny, Quantity: 10, Description: "Complete ten foraging trips"},
			},
			Reward: Reward{
				Coins:   150,
				Items:   []RewardItem{{ItemID: "food_honey_loaf", Amount: 2}},
				SkillXP: map[string]int{"foraging": 50},
			},
		},
	}
}
