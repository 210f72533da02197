// Package save persists game progress with a checksum and upgrades saves
// written by older builds.
package save

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/automoto/betrothed/stats"
	"github.com/automoto/betrothed/weapon"
)

// CurrentVersion is the schema version this build writes.
const CurrentVersion = 102040

var (
	ErrNoSave         = errors.New("save: no save in slot")
	ErrCorruptSave    = errors.New("save: corrupt save")
	ErrUnknownVersion = errors.New("save: unknown save version")
)

// State is everything a save slot holds.
type State struct {
	Version        int             `json:"version"`
	Pools          stats.Snapshot  `json:"pools"`
	Level          int             `json:"level"`
	Part           int             `json:"part"`
	Subpart        int             `json:"subpart"`
	Unlocked       int             `json:"unlocked"`
	Loadout        *weapon.Loadout `json:"loadout"`
	RNG            []byte          `json:"rng"`
	LoadedFromSave bool            `json:"loaded_from_save"`
}

// NewState returns the state of a fresh game.
func NewState() *State {
	return &State{
		Version: CurrentVersion,
		Pools:   stats.NewPools().Snapshot(),
		Loadout: weapon.NewLoadout(),
	}
}

// Source restores the saved random generator. A save without one gets a
// generator seeded from seed.
func (s *State) Source(seed uint64) (*rand.PCG, error) {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	if len(s.RNG) == 0 {
		return src, nil
	}
	if err := src.UnmarshalBinary(s.RNG); err != nil {
		return nil, fmt.Errorf("%w: rng state: %v", ErrCorruptSave, err)
	}
	return src, nil
}

// SetSource records the generator state.
func (s *State) SetSource(src *rand.PCG) error {
	b, err := src.MarshalBinary()
	if err != nil {
		return fmt.Errorf("save: rng state: %w", err)
	}
	s.RNG = b
	return nil
}

func (s *State) validate() error {
	if s.Loadout == nil {
		return fmt.Errorf("%w: no loadout", ErrCorruptSave)
	}
	if err := s.Loadout.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if s.Unlocked < 0 || s.Level < 0 {
		return fmt.Errorf("%w: negative progress", ErrCorruptSave)
	}
	return nil
}
