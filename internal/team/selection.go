package team

import (
	"fmt"

	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/species"
	"monster_arena/internal/util"
)

// selectRandomly draws a team size in [1, TeamLimit], then draws each member
// uniformly from the spawnable species in table order.
func (t *Team) selectRandomly(reg *species.Registry, rng util.Rand) error {
	if reg == nil || rng == nil {
		return apperrors.New(apperrors.CodeInvalidConfiguration, "random selection needs a species registry and a random generator")
	}
	spawnable := reg.Spawnable()
	if len(spawnable) == 0 {
		return apperrors.New(apperrors.CodeInvalidConfiguration, "no spawnable species")
	}
	teamSize := rng.UniformInt(1, TeamLimit)
	for i := 0; i < teamSize; i++ {
		idx := rng.UniformInt(0, len(spawnable)-1)
		if idx < 0 || idx >= len(spawnable) {
			return fmt.Errorf("spawn index %d outside [0, %d]", idx, len(spawnable)-1)
		}
		if err := t.recruit(spawnable[idx]); err != nil {
			return err
		}
	}
	return nil
}

// selectProvided instantiates the given species in order. The whole list is
// validated before anything is added.
func (t *Team) selectProvided(provided []*species.Species) error {
	if len(provided) < 1 || len(provided) > TeamLimit {
		return apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
			fmt.Sprintf("provided team must have between 1 and %d monsters, got %d", TeamLimit, len(provided)),
			map[string]string{"count": fmt.Sprint(len(provided))})
	}
	for i, sp := range provided {
		if sp == nil {
			return apperrors.New(apperrors.CodeInvalidConfiguration, fmt.Sprintf("provided slot %d is empty", i+1))
		}
		if !sp.Spawnable {
			return apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("%s cannot be spawned", sp.Name), map[string]string{"species": sp.ID})
		}
	}
	for _, sp := range provided {
		if err := t.recruit(sp); err != nil {
			return err
		}
	}
	return nil
}
