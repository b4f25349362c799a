package world

import (
	"errors"
	"fmt"
)

// ErrNoWalkableTile is matched by every GenerationError.
var ErrNoWalkableTile = errors.New("no walkable tile found")

// GenerationError reports that a region could not be generated because no
// walkable spawn tile was found within the attempt budget.
type GenerationError struct {
	Biome    Biome
	Entrance Entrance
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s region (entrance %s): %v after %d attempts",
		e.Biome, e.Entrance, ErrNoWalkableTile, e.Attempts)
}

// Is makes errors.Is(err, ErrNoWalkableTile) succeed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrNoWalkableTile
}
