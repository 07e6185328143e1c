package achievements

import "github.com/nicoespa/mentalgym/internal/store"

// Achievement is a named milestone shown on the progress screen.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Input carries the profile and aggregate stats the rules are checked against.
type Input struct {
	Profile         store.Profile
	Sessions        int
	TopicsCompleted int
	TotalTopics     int
}

type rule struct {
	achievement Achievement
	unlocked    func(Input) bool
}

var rules = []rule{
	{
		achievement: Achievement{
			ID:          "first-session",
			Title:       "Primer día",
			Description: "Completa tu primera sesión",
			Icon:        "🌱",
		},
		unlocked: func(in Input) bool { return in.Sessions >= 1 },
	},
	{
		achievement: Achievement{
			ID:          "streak-3",
			Title:       "Racha de 3 días",
			Description: "Entrena 3 días seguidos",
			Icon:        "🔥",
		},
		unlocked: func(in Input) bool { return in.Profile.Streak >= 3 },
	},
	{
		achievement: Achievement{
			ID:          "xp-100",
			Title:       "100 XP",
			Description: "Acumula 100 puntos de experiencia",
			Icon:        "⚡",
		},
		unlocked: func(in Input) bool { return in.Profile.XP >= 100 },
	},
	{
		achievement: Achievement{
			ID:          "all-topics",
			Title:       "Mente completa",
			Description: "Completa todos los temas",
			Icon:        "🏆",
		},
		unlocked: func(in Input) bool {
			return in.TotalTopics > 0 && in.TopicsCompleted >= in.TotalTopics
		},
	},
}

// All returns every achievement in display order.
func All() []Achievement {
	out := make([]Achievement, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.achievement)
	}
	return out
}

// Unlocked returns the achievements earned for the given input, in the same
// order as All.
func Unlocked(in Input) []Achievement {
	var out []Achievement
	for _, r := range rules {
		if r.unlocked(in) {
			out = append(out, r.achievement)
		}
	}
	return out
}

// IsUnlocked reports whether the achievement with the given id is earned.
func IsUnlocked(id string, in Input) bool {
	for _, r := range rules {
		if r.achievement.ID == id {
			return r.unlocked(in)
		}
	}
	return false
}
