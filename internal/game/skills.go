package game

import "petden/internal/config"

// grantSkillXP adds XP and applies level-ups. XP to reach the next level is
// current level * SkillXPPerLevel; leftover XP carries over.
func grantSkillXP(s Skills, skill string, xp int, bal config.Balance) Skills {
	if xp <= 0 {
		return s
	}
	out := s.clone()
	out.XP[skill] += xp

	level := out.Level(skill)
	for out.XP[skill] >= level*bal.SkillXPPerLevel {
		out.XP[skill] -= level * bal.SkillXPPerLevel
		level++
		out.Levels[skill] = level
	}
	return out
}
