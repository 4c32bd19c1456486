// Package save persists the game state as a single JSON document. The whole
// state tree is replaced on every save, matching the engine's replace-wholesale
// update model.
package save

import "petden/internal/game"

// Repository stores and retrieves the one game state per save slot.
type Repository interface {
	// Load returns the stored state. The second return is false when no
	// save exists yet.
	Load() (game.State, bool, error)
	// Save replaces the stored state.
	Save(game.State) error
	Close() error
}
